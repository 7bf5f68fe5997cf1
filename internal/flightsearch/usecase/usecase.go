package usecase

import (
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/shandysiswandi/goflightgateway/internal/flightsearch/usecase"

type Dependency struct {
	Providers []provider.Provider
}

type Usecase struct {
	providers []provider.Provider
	tracer    trace.Tracer
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		providers: dep.Providers,
		tracer:    otel.Tracer(tracerName),
	}
}
