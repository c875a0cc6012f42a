package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkglog"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkguid"
)

type closer struct {
	name string
	fn   func(context.Context) error
}

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// closers run in registration order after the server and goroutines stop
	closers []closer
}

func New() *App {
	pkglog.InitLogging(pkglog.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}
