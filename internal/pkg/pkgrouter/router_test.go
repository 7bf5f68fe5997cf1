package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestRouter_Success(t *testing.T) {
	r := NewRouter(fixedID("req-1"))
	r.GET("/health", func(ctx context.Context, _ *http.Request) (any, error) {
		return map[string]string{"status": "ok", "request_id": RequestID(ctx)}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-1", rec.Header().Get(HeaderRequestID))
	assert.JSONEq(t, `{"status":"ok","request_id":"req-1"}`, rec.Body.String())
}

func TestRouter_KeepsIncomingRequestID(t *testing.T) {
	r := NewRouter(fixedID("generated"))
	r.GET("/health", func(ctx context.Context, _ *http.Request) (any, error) {
		return RequestID(ctx), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "upstream")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "upstream", rec.Header().Get(HeaderRequestID))
	assert.JSONEq(t, `"upstream"`, rec.Body.String())
}

func TestRouter_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "business error",
			err:        pkgerror.NewBusiness("invalid body", pkgerror.CodeInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid body",
		},
		{
			name:       "unclassified error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(fixedID("req-2"))
			r.POST("/rpc", func(context.Context, *http.Request) (any, error) {
				return nil, tt.err
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)
			assert.Equal(t, "req-2", body.RequestID)
		})
	}
}

func TestRouter_MethodMismatch(t *testing.T) {
	r := NewRouter(fixedID("req-3"))
	r.POST("/rpc", func(context.Context, *http.Request) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Routes(t *testing.T) {
	r := NewRouter(fixedID("id"))
	noop := func(context.Context, *http.Request) (any, error) { return nil, nil }
	r.POST("/rpc", noop)
	r.GET("/health", noop)

	assert.Equal(t, []string{"POST /rpc", "GET /health"}, r.Routes())
}
