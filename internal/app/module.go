package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/goconfirm/internal/confirm"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.confirm.enabled") {
		closer, err := confirm.New(confirm.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
			EventID:   a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module confirm", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			a.addCloser("Confirm", closer)
		}
	}
}
