// Package pkgrouter wraps HTTP routing and the middleware shared by the API.
//
// Handlers return a payload or an error; the router encodes payloads in a
// {message, data, meta} envelope and maps *pkgerror.Error values to HTTP
// statuses. Every route gets panic recovery, correlation IDs and
// request/response logging with sensitive fields masked.
package pkgrouter
