package inbound

import (
	"context"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/usecase"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgrouter"
)

type uc interface {
	SearchFlights(ctx context.Context, params entity.SearchParams) (*usecase.SearchOutput, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, currency string) {
	end := &HTTPEndpoint{
		rpc:      NewRPCDispatcher(uc),
		currency: currency,
	}

	r.POST("/rpc", end.RPC)
	r.GET("/health", end.Health)
}
