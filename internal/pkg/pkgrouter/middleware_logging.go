package pkgrouter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxLoggedBodyBytes = 64 * 1024
	maskedValue        = "***"
)

//nolint:gochecknoglobals // read-only lookup table
var sensitiveKeys = map[string]struct{}{
	"password":         {},
	"new_password":     {},
	"current_password": {},
	"access_token":     {},
	"refresh_token":    {},
	"authorization":    {},
	"cookie":           {},
	"set-cookie":       {},
	"x-api-key":        {},
}

func isSensitive(key string) bool {
	_, found := sensitiveKeys[strings.ToLower(key)]
	return found
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, maskedValue)
		}
	}
	return result
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if isSensitive(k) {
				masked[k] = maskedValue
				continue
			}
			masked[k] = maskData(inner)
		}
		return masked
	case []any:
		masked := make([]any, len(val))
		for i, inner := range val {
			masked[i] = maskData(inner)
		}
		return masked
	default:
		return v
	}
}

// captureWriter records the status, size and a bounded copy of the response body.
type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	body   bytes.Buffer
	capped bool
}

func (w *captureWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if room := maxLoggedBodyBytes - w.body.Len(); room < len(p) {
		w.body.Write(p[:max(room, 0)])
		w.capped = true
	} else {
		w.body.Write(p)
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *captureWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *captureWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (w *captureWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func isMultipart(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "multipart/")
}

// describeBody turns a captured body into something safe to log.
func describeBody(contentType string, body []byte, capped bool) any {
	if len(body) == 0 {
		return nil
	}

	var out any
	var decoded any
	switch {
	case json.Unmarshal(body, &decoded) == nil:
		out = maskData(decoded)
	case strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded"):
		out = describeForm(body)
	case !utf8.Valid(body):
		out = "<binary body omitted>"
	default:
		out = string(body)
	}

	if capped {
		return map[string]any{"body": out, "truncated": true}
	}
	return out
}

func describeForm(body []byte) any {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return string(body)
	}

	masked := make(map[string]any, len(values))
	for k, v := range values {
		switch {
		case isSensitive(k):
			masked[k] = maskedValue
		case len(v) == 1:
			masked[k] = v[0]
		default:
			masked[k] = v
		}
	}
	return masked
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		route := RoutePattern(ctx, r.URL.Path)
		contentType := r.Header.Get("Content-Type")

		// Multipart uploads stream to the handler, which enforces its own limits.
		var reqBody any
		switch {
		case isMultipart(contentType):
			reqBody = fmt.Sprintf("<multipart body omitted, content-length=%d>", r.ContentLength)
		case r.Body != nil && r.Body != http.NoBody:
			raw, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1)) //nolint:errcheck // logging only
			r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(raw), r.Body), Closer: r.Body}
			capped := len(raw) > maxLoggedBodyBytes
			if capped {
				raw = raw[:maxLoggedBodyBytes]
			}
			reqBody = describeBody(contentType, raw, capped)
		}

		slog.InfoContext(ctx, "request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"headers", maskHeaders(r.Header),
			"body", reqBody,
		)

		cw := &captureWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)

		status := cw.status
		if status == 0 {
			status = http.StatusOK
		}

		slog.Log(ctx, levelForStatus(status), "response sent",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", cw.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"body", describeBody(cw.Header().Get("Content-Type"), cw.body.Bytes(), cw.capped),
		)
	})
}

type readCloser struct {
	io.Reader
	io.Closer
}
