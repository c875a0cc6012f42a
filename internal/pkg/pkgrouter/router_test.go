package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
)

type acceptedPayload struct {
	ID string `json:"id"`
}

func (acceptedPayload) StatusCode() int { return http.StatusAccepted }

func (acceptedPayload) Message() string { return "queued" }

func (acceptedPayload) Meta() map[string]any { return map[string]any{"runs": 1} }

func serve(t *testing.T, r http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouterEncodesSuccessEnvelope(t *testing.T) {
	r := NewRouter(&staticGenerator{value: "cid"})
	r.GET("/items/:id", func(ctx context.Context, _ *http.Request) (any, error) {
		return acceptedPayload{ID: GetParam(ctx, "id")}, nil
	})

	rec, body := serve(t, r, http.MethodGet, "/items/42")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "queued", body["message"])
	assert.Equal(t, map[string]any{"id": "42"}, body["data"])
	assert.Equal(t, map[string]any{"runs": float64(1)}, body["meta"])
	assert.Equal(t, "cid", rec.Header().Get(HeaderCorrelationID))
}

func TestRouterMapsErrors(t *testing.T) {
	r := NewRouter(nil)
	r.GET("/missing", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewBusiness("summary not found", pkgerror.CodeNotFound)
	})
	r.GET("/opaque", func(context.Context, *http.Request) (any, error) {
		return nil, errors.New("leaky detail")
	})

	rec, body := serve(t, r, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "summary not found", body["message"])
	assert.Equal(t, map[string]any{"code": "ERROR_CODE_NOT_FOUND"}, body["error"])

	rec, body = serve(t, r, http.MethodGet, "/opaque")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestRouterNoContentAndFallbacks(t *testing.T) {
	r := NewRouter(nil)
	r.POST("/items/:id", func(context.Context, *http.Request) (any, error) {
		return nil, nil
	})

	rec, _ := serve(t, r, http.MethodPost, "/items/1")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, body := serve(t, r, http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "endpoint not found", body["message"])

	rec, body = serve(t, r, http.MethodPut, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", body["message"])

	rec, body = serve(t, r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "server is running well", body["message"])
}

func TestRouterRecoversPanics(t *testing.T) {
	r := NewRouter(nil)
	r.GET("/panic", func(context.Context, *http.Request) (any, error) {
		panic("boom")
	})

	rec, body := serve(t, r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body["message"])
}
