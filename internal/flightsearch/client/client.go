// Package client calls the searchFlights method of a flight gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/jsonrpc"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/provider"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkguid"
)

const (
	methodSearchFlights = "searchFlights"
	FallbackAirline     = "Demo Airline"
)

var ErrUnexpectedStatus = errors.New("unexpected http status")

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	// Fallback answers a failed or empty search with a single placeholder
	// flight echoing the request instead of an error.
	Fallback bool
}

type Client struct {
	url      string
	apiKey   string
	fallback bool
	http     *http.Client
	uid      pkguid.StringID
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:      cfg.URL,
		apiKey:   cfg.APIKey,
		fallback: cfg.Fallback,
		http:     &http.Client{Timeout: timeout},
		uid:      pkguid.NewUUID(),
	}
}

// SearchFlights returns the merged flights of the gateway. Fields missing
// from a record fall back to the request values. An error object in the
// response is returned as *jsonrpc.Error unless fallback is enabled.
func (c *Client) SearchFlights(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error) {
	flights, err := c.call(ctx, params)
	if !c.fallback {
		return flights, err
	}
	if err != nil {
		slog.WarnContext(ctx, "gateway search failed, using fallback flight", "error", err)
	}
	if err != nil || len(flights) == 0 {
		return []entity.Flight{fallbackFlight(params)}, nil
	}
	return flights, nil
}

func fallbackFlight(params entity.SearchParams) entity.Flight {
	return entity.Flight{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
		Airline:       FallbackAirline,
		Price:         entity.IntPtr(0),
	}
}

func (c *Client) call(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error) {
	rpcReq, err := jsonrpc.NewRequest(jsonrpc.StringID(c.uid.Generate()), methodSearchFlights, params)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, bytes.TrimSpace(body))
	}

	var rpcResp jsonrpc.Response
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if rpcErr := rpcResp.Err(); rpcErr != nil {
		return nil, rpcErr
	}

	var result json.RawMessage
	if err := rpcResp.DecodeResult(&result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return provider.NormalizeFlights(result, "flights", params)
}
