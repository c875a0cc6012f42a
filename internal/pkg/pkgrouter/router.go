package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"

	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Optional interfaces a response payload may implement to shape the envelope.
type (
	statusCoder interface{ StatusCode() int }
	messager    interface{ Message() string }
	metaCarrier interface{ Meta() map[string]any }
)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr  *httprouter.Router
	mws []Middleware
}

// NewRouter builds the application router with recovery, correlation-id and
// logging middleware. uuid generates correlation IDs for requests that do not
// carry one.
func NewRouter(uuid Generator) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound:               messageHandler("endpoint not found", http.StatusNotFound),
		MethodNotAllowed:       messageHandler("method not allowed", http.StatusMethodNotAllowed),
	}

	ro := &Router{
		hr: hr,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uuid),
			middlewareLogging,
		},
	}

	ro.Handle(http.MethodGet, "/", messageHandler("hi from goconfirm", http.StatusOK))
	ro.Handle(http.MethodGet, "/health", messageHandler("server is running well", http.StatusOK))

	return ro
}

// Use appends middleware to the stack applied to routes registered afterwards.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, slices.Concat(r.mws, mws)...))
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.Handle(method, path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		resp, err := h(ctx, req)
		if err != nil {
			encodeError(ctx, w, err)
			return
		}
		encodeSuccess(w, resp)
	}), mws...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// encodeError writes err as JSON. Anything that is not a *pkgerror.Error is
// hidden behind a generic 500.
func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "request failed with unclassified error", "error", err)
		writeJSON(w, errorResponse{
			Message: "Internal server error",
			Error:   map[string]string{"code": pkgerror.CodeInternal.String()},
		}, http.StatusInternalServerError)
		return
	}

	status := gerr.StatusCode()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "error", gerr.String())
	}

	writeJSON(w, errorResponse{
		Message: gerr.Msg(),
		Error:   map[string]string{"code": gerr.Code().String()},
	}, status)
}

func encodeSuccess(w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(statusCoder); ok {
		code = sc.StatusCode()
	}

	if resp == nil || code == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	envelope := successResponse{Message: "request processed successfully", Data: resp}
	if m, ok := resp.(messager); ok {
		envelope.Message = m.Message()
	}
	if m, ok := resp.(metaCarrier); ok {
		envelope.Meta = m.Meta()
	}

	writeJSON(w, envelope, code)
}

func messageHandler(msg string, code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": msg}, code)
	})
}

type errorResponse struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

type successResponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
