package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultService is the service attribute used when Options.Service is empty.
const DefaultService = "goconfirm"

//nolint:gochecknoglobals // shared so the level can change after config loads
var level = new(slog.LevelVar)

// Options tunes InitLogging. Zero values fall back to stdout, INFO and DefaultService.
type Options struct {
	Writer  io.Writer
	Level   slog.Level
	Service string
}

// InitLogging configures the default slog logger for the application.
func InitLogging(opts Options) {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	service := opts.Service
	if service == "" {
		service = DefaultService
	}

	level.Set(opts.Level)

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	})

	slog.SetDefault(slog.New(&contextHandler{Handler: jsonHandler, service: service}))
}

// SetLevel changes the minimum level of the logger installed by InitLogging.
//
// Unknown names are ignored and reported as an error.
func SetLevel(name string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}

	level.Set(lvl)
	return nil
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		if !strings.Contains(src.File, "/internal/") {
			return slog.Attr{}
		}
		relPath := filepath.Join("internal", strings.SplitAfterN(src.File, "/internal/", 2)[1])
		return slog.String("file", fmt.Sprintf("%s:%d", relPath, src.Line))
	}
	return a
}

type contextHandler struct {
	slog.Handler
	service string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cID := GetCorrelationID(ctx); cID != "" && cID != invalidCorrelationID {
		r.AddAttrs(slog.String("_cID", cID))
	}
	r.AddAttrs(slog.String("service", h.service))

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), service: h.service}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), service: h.service}
}
