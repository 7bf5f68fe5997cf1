package provider

import (
	"context"
	"net/http"
	"strings"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
)

const DefaultSkyScannerURL = "https://partners.api.skyscanner.net/apiservices"

var skyScannerFares = []mockFare{
	{airline: "SkyScanner Mock Air", price: 750_000},
	{airline: "SkyScanner Mock Saver", price: 690_000},
}

// SkyScannerProvider queries SkyScanner with a blocking call.
type SkyScannerProvider struct {
	settings Settings
	client   *http.Client
}

func NewSkyScannerProvider(settings Settings) *SkyScannerProvider {
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultSkyScannerURL
	}
	return &SkyScannerProvider{settings: settings, client: newHTTPClient(settings.timeout())}
}

func (s *SkyScannerProvider) Name() string {
	return "SkyScanner"
}

func (s *SkyScannerProvider) Search(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error) {
	if s.settings.APIKey == "" {
		return withoutKey(ctx, s.Name(), s.settings, params, skyScannerFares), nil
	}

	header := http.Header{}
	header.Set("x-api-key", s.settings.APIKey)

	endpoint := strings.TrimSuffix(s.settings.BaseURL, "/") + "/flights/live/search"
	body, err := get(ctx, s.client, s.settings.timeout(), endpoint, params.Values(), header)
	if err != nil {
		return recoverCall(ctx, s.Name(), s.settings, params, skyScannerFares, err)
	}

	flights, err := NormalizeFlights(body, "itineraries", params)
	if err != nil {
		return recoverCall(ctx, s.Name(), s.settings, params, skyScannerFares, err)
	}
	return flights, nil
}
