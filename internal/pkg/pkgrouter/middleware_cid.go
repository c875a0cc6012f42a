package pkgrouter

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/shandysiswandi/goconfirm/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is accepted when a proxy sets it instead.
	HeaderRequestID = "X-Request-ID"

	maxCorrelationIDLen = 128
)

//nolint:gochecknoglobals // header lookup order
var correlationHeaders = []string{HeaderCorrelationID, HeaderRequestID}

// normalizeCID trims v and returns "" when it holds control characters.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if strings.IndexFunc(v, unicode.IsControl) != -1 {
		return ""
	}
	if len(v) > maxCorrelationIDLen {
		v = v[:maxCorrelationIDLen]
	}
	return v
}

func incomingCID(r *http.Request) string {
	for _, header := range correlationHeaders {
		if cid := normalizeCID(r.Header.Get(header)); cid != "" {
			return cid
		}
	}
	return ""
}

func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := incomingCID(r)
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
