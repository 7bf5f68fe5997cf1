package flightsearch

import (
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/inbound"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/provider"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/usecase"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgrouter"
)

const defaultCurrency = "USD"

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	timeout := provider.DefaultTimeout
	if seconds := dep.Config.GetInt("modules.flight-search.provider.timeout_seconds"); seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	mockFallback := true
	if dep.Config.IsSet("modules.flight-search.provider.enable_mock") {
		mockFallback = dep.Config.GetBool("modules.flight-search.provider.enable_mock")
	}

	settings := func(name string) provider.Settings {
		return provider.Settings{
			APIKey:       dep.Config.GetString("modules.flight-search.provider." + name + ".api_key"),
			BaseURL:      dep.Config.GetString("modules.flight-search.provider." + name + ".base_url"),
			Timeout:      timeout,
			MockFallback: mockFallback,
		}
	}

	providers := []provider.Provider{
		provider.NewSkyScannerProvider(settings("skyscanner")),
		provider.NewProviderBProvider(settings("provider_b")),
	}

	uc := usecase.New(usecase.Dependency{Providers: providers})

	currency := dep.Config.GetString("modules.flight-search.default_currency")
	if currency == "" {
		currency = defaultCurrency
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc, currency)

	return nil
}
