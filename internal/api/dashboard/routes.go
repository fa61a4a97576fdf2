// Package dashboard provides the read and record-keeping endpoints of the crane dashboard.
package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plantops/crane-dashboard/internal/api/common"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/store"
)

// Routes handles HTTP requests for the dashboard endpoints.
type Routes struct {
	service service.DashboardService
}

// NewRoutes creates a new Routes instance with the given service.
func NewRoutes(svc service.DashboardService) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates and configures the HTTP router for the dashboard endpoints.
// It is meant to be mounted under /api.
func Router(svc service.DashboardService) http.Handler {
	r := chi.NewRouter()
	NewRoutes(svc).Register(r)
	return r
}

// Register adds the dashboard endpoints to r
func (routes *Routes) Register(r chi.Router) {
	r.Get("/dashboard/summary", routes.getDashboardSummary)
	r.Get("/factories", routes.listFactories)
	r.Get("/crane-names", routes.listCraneNames)
	r.Get("/cranes-with-failure-data", routes.listCranesWithFailureData)
	r.Get("/crane-details", routes.getCraneDetails)

	r.Route("/cranes", func(r chi.Router) {
		r.Get("/", routes.listCranes)
		r.Post("/", routes.createCrane)
		r.Get("/filtered", routes.listFilteredCranes)
		r.Get("/by-crane-id/{craneId}", routes.getCraneByCraneID)
		r.Get("/{id}", routes.getCrane)
		r.Patch("/{id}", routes.updateCrane)
	})

	r.Route("/maintenance-records", func(r chi.Router) {
		r.Get("/", routes.listMaintenanceRecords)
		r.Post("/", routes.createMaintenanceRecord)
		r.Get("/{id}", routes.getMaintenanceRecord)
	})

	r.Route("/failure-records", func(r chi.Router) {
		r.Get("/", routes.listFailureRecords)
		r.Post("/", routes.createFailureRecord)
		r.Get("/{id}", routes.getFailureRecord)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/maintenance-stats", routes.getMaintenanceStats)
		r.Get("/failure-stats", routes.getFailureStats)
		r.Get("/monthly-trends", routes.getMonthlyTrends)
	})

	r.Route("/alerts", func(r chi.Router) {
		r.Get("/", routes.listActiveAlerts)
		r.Get("/all", routes.listAllAlerts)
		r.Post("/", routes.createAlert)
		r.Post("/{id}/deactivate", routes.deactivateAlert)
	})
}

// writeServiceError maps service-layer errors to HTTP responses.
// Unclassified errors are logged and answered with fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCraneNotFound),
		errors.Is(err, service.ErrMaintenanceRecordNotFound),
		errors.Is(err, service.ErrFailureRecordNotFound):
		common.WriteErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, store.ErrMissingCraneID):
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrDuplicateCraneID):
		common.WriteErrorResponse(w, err.Error(), http.StatusConflict)
	default:
		slog.ErrorContext(r.Context(), fallback, "path", r.URL.Path, "error", err)
		common.WriteErrorResponse(w, fallback, http.StatusInternalServerError)
	}
}
