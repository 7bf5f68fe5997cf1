package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkguid"
)

const HeaderRequestID = "X-Request-ID"

// Endpoint handles one route. The returned value is encoded as the JSON body
// with status 200; a returned error is rendered through pkgerror.
type Endpoint func(ctx context.Context, r *http.Request) (any, error)

type ctxKey struct{}

type Router struct {
	mux    *http.ServeMux
	uuid   pkguid.StringID
	routes []string
}

func NewRouter(uuid pkguid.StringID) *Router {
	return &Router{mux: http.NewServeMux(), uuid: uuid}
}

func (r *Router) GET(path string, e Endpoint) {
	r.handle(http.MethodGet, path, e)
}

func (r *Router) POST(path string, e Endpoint) {
	r.handle(http.MethodPost, path, e)
}

// Routes lists the registered patterns in registration order.
func (r *Router) Routes() []string {
	return append([]string(nil), r.routes...)
}

func (r *Router) handle(method, path string, e Endpoint) {
	r.routes = append(r.routes, method+" "+path)
	r.mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		resp, err := e(ctx, req)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, resp)
	})
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	id := req.Header.Get(HeaderRequestID)
	if id == "" {
		id = r.uuid.Generate()
	}
	w.Header().Set(HeaderRequestID, id)

	r.mux.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), ctxKey{}, id)))
}

// RequestID returns the id assigned to the request being served, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	e := pkgerror.From(err)
	status := e.Code().StatusCode()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "request_id", RequestID(ctx), "error", err)
	}

	writeJSON(ctx, w, status, errorResponse{Error: e.Msg(), RequestID: RequestID(ctx)})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "request_id", RequestID(ctx), "error", err)
	}
}
