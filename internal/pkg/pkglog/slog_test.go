package pkglog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	attrs map[string]slog.Value
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	if h.attrs == nil {
		h.attrs = make(map[string]slog.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func TestContextHandlerAddsServiceAndCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "goconfirm"}

	ctx := SetCorrelationID(context.Background(), "cid-abc")
	require.NoError(t, handler.Handle(ctx, slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)))

	assert.Equal(t, "goconfirm", capture.attrs["service"].String())
	assert.Equal(t, "cid-abc", capture.attrs["_cID"].String())
}

func TestContextHandlerSkipsInvalidCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "goconfirm"}

	require.NoError(t, handler.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)))

	assert.NotContains(t, capture.attrs, "_cID")
	assert.Equal(t, "goconfirm", capture.attrs["service"].String())
}

func TestInitLoggingWritesJSONAndHonoursLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	InitLogging(Options{Writer: buf, Service: "svc-test"})

	slog.Debug("hidden")
	assert.Zero(t, buf.Len())

	require.NoError(t, SetLevel("debug"))
	slog.Debug("visible", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["msg"])
	assert.Equal(t, "DEBUG", line["severity"])
	assert.Equal(t, "svc-test", line["service"])
	assert.Contains(t, line, "ts")

	assert.Error(t, SetLevel("loud"))
	require.NoError(t, SetLevel("info"))
}
