package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP in the background. The returned channel closes on the
// first termination signal.
func (a *App) Start() <-chan struct{} {
	terminate := make(chan struct{})

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		sigCtx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		<-sigCtx.Done()
		slog.Info("termination signal received")
		close(terminate)
	}()

	return terminate
}

// Stop shuts the server down, waits for in-flight summarizations, then runs
// the registered closers.
func (a *App) Stop(ctx context.Context) {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}

	if a.cancel != nil {
		a.cancel()
	}

	for _, c := range a.closers {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", c.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
