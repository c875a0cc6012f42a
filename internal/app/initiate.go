package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkglog"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}
	if custom := os.Getenv(pkgconfig.EnvPrefix + "_CONFIG"); custom != "" {
		path = custom
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	if lvl := cfg.GetString("log.level"); lvl != "" {
		if err := pkglog.SetLevel(lvl); err != nil {
			slog.Warn("keeping default log level", "error", err)
		}
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	maxGoroutine := int(a.config.GetInt("goroutine.max"))
	if maxGoroutine <= 0 {
		maxGoroutine = 100
	}
	a.goroutine = pkgroutine.NewManager(maxGoroutine)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake(a.config.GetInt("snowflake.node"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	a.addCloser("Config", func(context.Context) error {
		return a.config.Close()
	})
}
