package pkgrouter

import "net/http"

// Middleware wraps an http.Handler, typically to add cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in order, returning the final wrapped handler.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// MaxBodyBytes caps the request body at limit bytes. Reads past the limit fail
// with *http.MaxBytesError. A non-positive limit leaves the body untouched.
func MaxBodyBytes(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
