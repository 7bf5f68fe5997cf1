package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/jsonrpc"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgerror"
)

const maxRequestBody = 1 << 20

type HTTPEndpoint struct {
	rpc      *RPCDispatcher
	currency string
}

// RPC decodes one JSON-RPC envelope and dispatches it. Protocol faults are
// answered with an error object; any other failure is returned so the router
// renders it as a server fault.
func (h *HTTPEndpoint) RPC(ctx context.Context, r *http.Request) (any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, pkgerror.NewBusiness("request body too large", pkgerror.CodeInvalidInput)
		}
		return nil, pkgerror.NewBusiness("failed to read request body", pkgerror.CodeInvalidInput)
	}

	req, rpcErr := decodeRequest(body)
	if rpcErr != nil {
		return jsonrpc.NewError(req.ID, rpcErr), nil
	}

	return h.rpc.Dispatch(ctx, req)
}

func (h *HTTPEndpoint) Health(context.Context, *http.Request) (any, error) {
	return HealthResponse{Status: "ok", Currency: h.currency}, nil
}

func decodeRequest(body []byte) (jsonrpc.Request, *jsonrpc.Error) {
	var req jsonrpc.Request
	if !json.Valid(body) {
		return req, jsonrpc.NewParseError()
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return jsonrpc.Request{}, jsonrpc.NewInvalidRequest(err.Error())
	}
	if req.JSONRPC != "" && req.JSONRPC != jsonrpc.Version {
		return req, jsonrpc.NewInvalidRequest("unsupported jsonrpc version")
	}
	if req.Method == "" {
		return req, jsonrpc.NewInvalidRequest("method is required")
	}
	return req, nil
}
