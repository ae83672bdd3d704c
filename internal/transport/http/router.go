package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"parcelsort/internal/platform/metrics"
	"parcelsort/internal/platform/middleware"
	dErrors "parcelsort/pkg/domain-errors"
	"parcelsort/pkg/platform/httputil"
	"parcelsort/pkg/platform/middleware/metadata"
	"parcelsort/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by module handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// RouterDeps collects what NewRouter needs. Metrics may be nil, in which case
// /metrics is not mounted.
type RouterDeps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Info     Info
	Handlers []Registrar
}

// NewRouter wires the middleware chain, the platform endpoints and every module
// handler.
func NewRouter(deps RouterDeps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Observe(deps.Logger, deps.Metrics))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no route for "+r.URL.Path))
	})

	h := newPlatformHandler(deps.Info)
	r.Get("/health", h.handleHealth)
	r.Get("/api/v1/packages/health", h.handleHealth)
	r.Get("/api/v1/packages/info", h.handleInfo)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	for _, reg := range deps.Handlers {
		reg.Register(r)
	}
	return r
}
