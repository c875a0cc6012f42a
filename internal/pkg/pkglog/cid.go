package pkglog

import "context"

const invalidCorrelationID = "[invalid_chain_id]"

type chainIDContextKey struct{}

// GetCorrelationID returns the correlation ID stored in the context.
//
// Middleware sets it early in the request lifecycle; background work started
// from a request keeps it so its logs can be joined with the request's.
func GetCorrelationID(ctx context.Context) string {
	cid, ok := ctx.Value(chainIDContextKey{}).(string)
	if !ok {
		return invalidCorrelationID
	}
	return cid
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, chainIDContextKey{}, cid)
}

// DetachCorrelationID copies the correlation ID of src onto dst.
//
// It is used when work outlives the request context but should still be
// logged under the same correlation ID.
func DetachCorrelationID(dst, src context.Context) context.Context {
	cid := GetCorrelationID(src)
	if cid == invalidCorrelationID {
		return dst
	}
	return SetCorrelationID(dst, cid)
}
