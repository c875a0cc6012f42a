package pkgrouter

import (
	"context"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter stored by httprouter, trimmed of surrounding spaces.
func GetParam(ctx context.Context, key string) string {
	return strings.TrimSpace(httprouter.ParamsFromContext(ctx).ByName(key))
}

// RoutePattern returns the registered pattern that matched the request
// (e.g. "/summaries/:id"), or fallback when none was recorded.
func RoutePattern(ctx context.Context, fallback string) string {
	if pattern := httprouter.ParamsFromContext(ctx).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return fallback
}
