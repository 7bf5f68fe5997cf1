package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch"
)

const moduleFlightSearch = "flight-search"

func (a *App) initModules() {
	if !a.config.GetBool("modules." + moduleFlightSearch + ".enabled") {
		slog.Warn("module disabled", "module", moduleFlightSearch)
		return
	}

	if err := flightsearch.New(flightsearch.Dependency{
		Config: a.config,
		Router: a.router,
	}); err != nil {
		slog.Error("failed to init module", "module", moduleFlightSearch, "error", err)
		os.Exit(1)
	}
	a.modules = append(a.modules, moduleFlightSearch)
}
