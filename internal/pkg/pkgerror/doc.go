// Package pkgerror defines the error types shared by the service.
//
// Use-case code returns *Error values carrying a user-facing message, a type,
// and a stable code; the router maps the code to an HTTP status. Storage code
// returns sentinels such as ErrNotFound, checked with errors.Is.
package pkgerror
