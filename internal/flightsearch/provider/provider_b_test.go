package provider

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderBProvider_Search_NoKey(t *testing.T) {
	p := NewProviderBProvider(Settings{MockFallback: true})

	flights, err := p.Search(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "ProviderB Mock Express", flights[0].Airline)
	assert.Equal(t, 810_000, *flights[0].Price)
	assert.Equal(t, "ICN", flights[0].Origin)
	assert.Equal(t, "NRT", flights[0].Destination)
}

func TestProviderBProvider_Search_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		assert.Equal(t, "ICN", r.URL.Query().Get("origin"))
		_, _ = w.Write([]byte(`{"results":[{"origin":"ICN","destination":"NRT","airline":"Asiana","price":455000}]}`))
	}))
	defer srv.Close()

	p := NewProviderBProvider(Settings{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second})

	flights, err := p.Search(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "Asiana", flights[0].Airline)
	assert.Equal(t, 455_000, *flights[0].Price)
}

func TestProviderBProvider_Search_MissingResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	p := NewProviderBProvider(Settings{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second})

	flights, err := p.Search(context.Background(), testParams())
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestProviderBProvider_Search_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProviderBProvider(Settings{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second})

	_, err := p.Search(context.Background(), testParams())
	assert.ErrorIs(t, err, ErrProviderCall)
}

func TestProviderBProvider_SearchAsync(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"results":[{"airline":"Asiana","price":455000}]}`))
	}))
	defer srv.Close()

	p := NewProviderBProvider(Settings{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second})

	future := p.SearchAsync(context.Background(), testParams())
	select {
	case <-future:
		t.Fatal("future resolved before the provider answered")
	default:
	}

	close(release)
	res, ok := <-future
	require.True(t, ok)
	require.NoError(t, res.Err)
	require.Len(t, res.Flights, 1)

	_, ok = <-future
	assert.False(t, ok)
}

func TestProviderBProvider_Search_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	p := NewProviderBProvider(Settings{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Search(ctx, testParams())
	assert.Error(t, err)
}

func TestProviderBProvider_Search_ContextCanceledFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	p := NewProviderBProvider(Settings{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second, MockFallback: true})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	flights, err := p.Search(ctx, testParams())
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "ProviderB Mock Express", flights[0].Airline)
}

func TestProviderBProvider_Search_KeyNotLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, mock := range []bool{false, true} {
		p := NewProviderBProvider(Settings{
			APIKey:       "TOPSECRET",
			BaseURL:      "http://127.0.0.1:1/api",
			Timeout:      200 * time.Millisecond,
			MockFallback: mock,
		})

		_, err := p.Search(context.Background(), testParams())
		if !mock {
			require.ErrorIs(t, err, ErrProviderCall)
			assert.NotContains(t, err.Error(), "TOPSECRET")
			assert.Contains(t, err.Error(), "127.0.0.1:1/api")
		}
	}

	require.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "TOPSECRET")
}
