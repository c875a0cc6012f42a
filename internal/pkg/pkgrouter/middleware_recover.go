package pkgrouter

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
)

//nolint:contextcheck // recovery runs on the request context
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			//nolint:err113,errorlint // this must compare directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server",
				"because", rvr,
				"stack", internalFrames(debug.Stack()),
			)

			if r.Header.Get("Connection") == "Upgrade" {
				return
			}

			writeJSON(w, errorResponse{
				Message: "Internal server error",
				Error:   map[string]string{"code": pkgerror.CodeInternal.String()},
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// internalFrames keeps the "internal/<file>.go:<line>" frames of a stack dump.
func internalFrames(stack []byte) []string {
	var frames []string
	for line := range strings.Lines(string(stack)) {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if end := strings.IndexByte(frame, ' '); end != -1 {
			frame = frame[:end]
		}
		frames = append(frames, frame)
	}
	return frames
}
