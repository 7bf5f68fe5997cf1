package provider

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
)

const DefaultProviderBURL = "https://provider-b.example.com/api/flights"

var providerBFares = []mockFare{
	{airline: "ProviderB Mock Express", price: 810_000},
}

// Result is the outcome of an asynchronous search.
type Result struct {
	Flights []entity.Flight
	Err     error
}

// ProviderBProvider queries Provider B without blocking the caller: the call
// runs on its own goroutine and is awaited through a future.
type ProviderBProvider struct {
	settings Settings
	client   *http.Client
}

func NewProviderBProvider(settings Settings) *ProviderBProvider {
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultProviderBURL
	}
	return &ProviderBProvider{settings: settings, client: newHTTPClient(settings.timeout())}
}

func (p *ProviderBProvider) Name() string {
	return "ProviderB"
}

// SearchAsync starts the search and returns immediately. The channel yields
// exactly one Result and is then closed.
func (p *ProviderBProvider) SearchAsync(ctx context.Context, params entity.SearchParams) <-chan Result {
	future := make(chan Result, 1)
	go func() {
		defer close(future)
		flights, err := p.search(ctx, params)
		future <- Result{Flights: flights, Err: err}
	}()
	return future
}

// Search awaits the future. The call itself honours ctx, so a cancelled
// context surfaces as a failed call and goes through the fallback policy.
func (p *ProviderBProvider) Search(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error) {
	res := <-p.SearchAsync(ctx, params)
	return res.Flights, res.Err
}

func (p *ProviderBProvider) search(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error) {
	if p.settings.APIKey == "" {
		return withoutKey(ctx, p.Name(), p.settings, params, providerBFares), nil
	}

	query := params.Values()
	query.Set("api_key", p.settings.APIKey)

	body, err := get(ctx, p.client, p.settings.timeout(), p.settings.BaseURL, query, nil)
	if err != nil {
		return recoverCall(ctx, p.Name(), p.settings, params, providerBFares, err)
	}

	flights, err := NormalizeFlights(body, "results", params)
	if err != nil {
		return recoverCall(ctx, p.Name(), p.settings, params, providerBFares, err)
	}
	return flights, nil
}
