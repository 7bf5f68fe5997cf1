package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/analyzer"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/provider"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var ErrAllProvidersFailed = errors.New("all providers failed")

type SearchOutput struct {
	Flights  []entity.Flight
	Cheapest *entity.Flight
	// AveragePrice is nil when no flight carries a price.
	AveragePrice *float64
}

func (u *Usecase) SearchFlights(ctx context.Context, params entity.SearchParams) (*SearchOutput, error) {
	start := time.Now()

	flights, err := u.SearchAll(ctx, params)
	if err != nil {
		return nil, err
	}

	out := &SearchOutput{
		Flights:  flights,
		Cheapest: analyzer.Cheapest(flights),
	}
	if avg, ok := analyzer.Average(flights); ok {
		out.AveragePrice = &avg
	}

	attrs := []any{
		"origin", params.Origin,
		"destination", params.Destination,
		"total_results", len(flights),
		"search_time_ms", time.Since(start).Milliseconds(),
	}
	if out.AveragePrice != nil {
		attrs = append(attrs, "average_price", *out.AveragePrice)
	}
	if out.Cheapest != nil && out.Cheapest.Price != nil {
		attrs = append(attrs, "cheapest_price", *out.Cheapest.Price)
	}
	slog.InfoContext(ctx, "flight search completed", attrs...)

	return out, nil
}

type providerResult struct {
	flights []entity.Flight
	err     error
}

// SearchAll queries every provider concurrently and waits for all of them.
// Results are concatenated in registration order. A failing provider
// contributes nothing; only when every provider fails is an error returned.
func (u *Usecase) SearchAll(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error) {
	ctx, span := u.tracer.Start(ctx, "flightsearch.SearchAll")
	defer span.End()

	results := make([]providerResult, len(u.providers))

	// errgroup.Group without WithContext: one failure must not cancel the others.
	var g errgroup.Group
	for i, p := range u.providers {
		g.Go(func() error {
			flights, err := u.searchProvider(ctx, p, params)
			results[i] = providerResult{flights: flights, err: err}
			return nil
		})
	}
	//nolint:errcheck // workers never return an error
	g.Wait()

	flights := make([]entity.Flight, 0)
	var errs []error
	for i, res := range results {
		if res.err != nil {
			slog.ErrorContext(ctx, "provider search failed", "provider", u.providers[i].Name(), "error", res.err)
			errs = append(errs, res.err)
			continue
		}
		flights = append(flights, res.flights...)
	}

	span.SetAttributes(
		attribute.Int("flightsearch.providers_queried", len(u.providers)),
		attribute.Int("flightsearch.providers_failed", len(errs)),
		attribute.Int("flightsearch.total_results", len(flights)),
	)

	if len(u.providers) > 0 && len(errs) == len(u.providers) {
		err := fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return flights, nil
}

func (u *Usecase) searchProvider(ctx context.Context, p provider.Provider, params entity.SearchParams) (flights []entity.Flight, err error) {
	ctx, span := u.tracer.Start(ctx, "flightsearch.provider.Search")
	defer span.End()
	span.SetAttributes(attribute.String("flightsearch.provider", p.Name()))

	defer func() {
		if r := recover(); r != nil {
			flights, err = nil, fmt.Errorf("%w: %s: panic: %v", provider.ErrProviderCall, p.Name(), r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		span.SetAttributes(attribute.Int("flightsearch.results", len(flights)))
	}()

	return p.Search(ctx, params)
}
