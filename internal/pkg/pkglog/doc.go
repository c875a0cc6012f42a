// Package pkglog contains the slog setup shared by the service.
//
// InitLogging installs a JSON handler with stable keys ("ts", "severity",
// "file") wrapped in a handler that stamps every record with the service
// name and, when present, the request correlation ID.
package pkglog
