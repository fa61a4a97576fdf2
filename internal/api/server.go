// Package api provides the REST API server of the crane dashboard.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plantops/crane-dashboard/internal/api/dashboard"
	"github.com/plantops/crane-dashboard/internal/api/ingest"
	"github.com/plantops/crane-dashboard/internal/api/system"
	"github.com/plantops/crane-dashboard/internal/service"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/sync/coordinator"
)

// ServerOption configures the dashboard API server
type ServerOption func(*serverConfig)

// serverConfig holds the server configuration
type serverConfig struct {
	middlewares    []func(http.Handler) http.Handler
	syncManager    pkgsync.Manager
	coordinator    coordinator.Coordinator
	metricsHandler http.Handler
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithSyncManager enables the spreadsheet ingest endpoints
func WithSyncManager(m pkgsync.Manager) ServerOption {
	return func(cfg *serverConfig) {
		cfg.syncManager = m
	}
}

// WithCoordinator enables the cache and sync status endpoints
func WithCoordinator(c coordinator.Coordinator) ServerOption {
	return func(cfg *serverConfig) {
		cfg.coordinator = c
	}
}

// WithMetricsHandler serves h at GET /metrics
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metricsHandler = h
	}
}

// NewServer creates and configures the HTTP router with the given service and options
func NewServer(svc service.DashboardService, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{
		middlewares: []func(http.Handler) http.Handler{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Mount("/", system.Router(svc, cfg.metricsHandler))

	r.Route("/api", func(r chi.Router) {
		dashboard.NewRoutes(svc).Register(r)
		ingest.NewRoutes(cfg.syncManager, cfg.coordinator).Register(r)
	})

	return r
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.DebugContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
