package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgtrace"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
	a.onStop("config", func(context.Context) error { return cfg.Close() })
}

func (a *App) initTracing() {
	if !a.config.GetBool("app.tracing.enabled") {
		return
	}

	shutdown, err := pkgtrace.Init(context.Background(), pkgtrace.Config{
		ServiceName: a.config.GetString("app.name"),
		Version:     a.config.GetString("app.version"),
	})
	if err != nil {
		slog.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}

	a.onStop("tracer", shutdown)
}

func (a *App) initHTTPServer() {
	a.uuid = pkguid.NewUUID()
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
