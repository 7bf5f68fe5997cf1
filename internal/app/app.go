package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkglog"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkguid"
)

type closer struct {
	name string
	fn   func(context.Context) error
}

// App is the flight gateway process: configuration, tracing, the HTTP server
// and the mounted modules.
type App struct {
	config     pkgconfig.Config
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	httpServer *http.Server
	modules    []string
	closers    []closer
}

func New() *App {
	app := &App{}
	pkglog.InitLogging()
	app.initConfig()
	app.initTracing()
	app.initHTTPServer()
	app.initModules()
	return app
}

// onStop registers a resource released by Stop. Resources are released in
// reverse registration order, after the HTTP server has drained.
func (a *App) onStop(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}
