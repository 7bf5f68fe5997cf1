package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/jsonrpc"
)

const MethodSearchFlights = "searchFlights"

type RPCDispatcher struct {
	uc uc
}

func NewRPCDispatcher(uc uc) *RPCDispatcher {
	return &RPCDispatcher{uc: uc}
}

// Dispatch routes a request by method name. Protocol errors come back inside
// the Response; the returned error is reserved for unclassified faults.
func (d *RPCDispatcher) Dispatch(ctx context.Context, req jsonrpc.Request) (jsonrpc.Response, error) {
	var (
		result any
		err    error
	)

	switch req.Method {
	case MethodSearchFlights:
		result, err = d.searchFlights(ctx, req.Params)
	default:
		err = jsonrpc.NewMethodNotFound()
	}

	if err != nil {
		var rpcErr *jsonrpc.Error
		if errors.As(err, &rpcErr) {
			slog.WarnContext(ctx, "rpc request rejected", "method", req.Method, "id", req.ID.String(), "code", rpcErr.Code)
			return jsonrpc.NewError(req.ID, rpcErr), nil
		}
		return jsonrpc.Response{}, err
	}

	return jsonrpc.NewResult(req.ID, result), nil
}

func (d *RPCDispatcher) searchFlights(ctx context.Context, raw json.RawMessage) (any, error) {
	params, err := entity.DecodeSearchParams(raw)
	if err != nil {
		return nil, jsonrpc.NewInvalidParams(err.Error())
	}

	out, err := d.uc.SearchFlights(ctx, params)
	if err != nil {
		return nil, err
	}

	flights := out.Flights
	if flights == nil {
		flights = []entity.Flight{}
	}

	return SearchFlightsResult{Flights: flights, Cheapest: out.Cheapest}, nil
}
