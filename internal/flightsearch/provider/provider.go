package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
)

const DefaultTimeout = 10 * time.Second

var ErrProviderCall = errors.New("provider call failed")

type Provider interface {
	Name() string
	Search(ctx context.Context, params entity.SearchParams) ([]entity.Flight, error)
}

// Settings is the per-deployment configuration of one provider. It is built
// once at start-up and shared read-only.
type Settings struct {
	APIKey       string
	BaseURL      string
	Timeout      time.Duration
	MockFallback bool
}

func (s Settings) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}
	return s.Timeout
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
