package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
)

const maxErrorBody = 512

// get issues a GET bounded by timeout and returns the body of a 2xx response.
func get(ctx context.Context, client *http.Client, timeout time.Duration, endpoint string, query url.Values, header http.Header) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", redactURL(err, u))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// redactURL drops the query string from a transport error. Provider
// credentials may travel as query parameters and must not reach the logs.
func redactURL(err error, u *url.URL) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	safe := *u
	safe.RawQuery = ""
	safe.User = nil
	ue.URL = safe.String()
	return err
}

// recoverCall applies the fallback policy after a failed provider call:
// synthetic data when mock fallback is on, otherwise the wrapped failure.
func recoverCall(ctx context.Context, name string, s Settings, params entity.SearchParams, fares []mockFare, cause error) ([]entity.Flight, error) {
	slog.ErrorContext(ctx, "provider api call failed", "provider", name, "mock_fallback", s.MockFallback, "error", cause)
	if s.MockFallback {
		return mockFlights(params, fares), nil
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrProviderCall, name, cause)
}

// withoutKey handles a provider that has no credential configured. It never fails.
func withoutKey(ctx context.Context, name string, s Settings, params entity.SearchParams, fares []mockFare) []entity.Flight {
	slog.WarnContext(ctx, "provider api key missing", "provider", name, "mock_fallback", s.MockFallback)
	if s.MockFallback {
		return mockFlights(params, fares)
	}
	return []entity.Flight{}
}
