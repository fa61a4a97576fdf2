// Package ingest provides the endpoints that pull spreadsheet data into the dashboard
// and drive the background sync.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/plantops/crane-dashboard/internal/api/common"
	"github.com/plantops/crane-dashboard/internal/sources"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/sync/coordinator"
)

const defaultSheetLabel = "default sheet"

// Routes handles HTTP requests for ingest and sync endpoints.
type Routes struct {
	manager     pkgsync.Manager
	coordinator coordinator.Coordinator
	now         func() time.Time
}

// NewRoutes creates a new Routes instance. Either dependency may be nil.
func NewRoutes(manager pkgsync.Manager, coord coordinator.Coordinator) *Routes {
	return &Routes{
		manager:     manager,
		coordinator: coord,
		now:         time.Now,
	}
}

// Router creates the router for the ingest endpoints, meant to be mounted under /api.
// Sheet endpoints need a manager and cache endpoints need a coordinator; the
// endpoints of a missing dependency are not registered.
func Router(manager pkgsync.Manager, coord coordinator.Coordinator) http.Handler {
	r := chi.NewRouter()
	NewRoutes(manager, coord).Register(r)
	return r
}

// Register adds the ingest endpoints to r
func (routes *Routes) Register(r chi.Router) {
	if routes.manager != nil {
		r.Post("/sync-sheets", routes.syncSheets)
		r.Post("/test-sheets", routes.testSheets)
		r.Post("/sync-crane-specs", routes.syncCraneSpecs)
	}
	r.Post("/refresh-data", routes.refreshData)

	if routes.coordinator != nil {
		r.Post("/cache/force-sync", routes.forceSync)
		r.Post("/cache/refresh", routes.refreshCache)
		r.Get("/sync/status", routes.syncStatus)
	}
}

// syncSheets handles POST /api/sync-sheets
//
// @Summary		Ingest spreadsheet data
// @Description	Replace every record with the rows of the named sheets. Failure and maintenance sheets are optional.
// @Tags			ingest
// @Accept			json
// @Produce		json
// @Param			request	body		SyncSheetsRequest	true	"Sheets to ingest"
// @Success		200		{object}	SyncSheetsResponse
// @Failure		400		{object}	common.ErrorResponse
// @Failure		500		{object}	common.ErrorResponse
// @Router			/api/sync-sheets [post]
func (routes *Routes) syncSheets(w http.ResponseWriter, r *http.Request) {
	var req SyncSheetsRequest
	if err := common.DecodeJSONBody(r, &req, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CranesSpreadsheetID) == "" {
		common.WriteErrorResponse(w, "cranesSpreadsheetId is required", http.StatusBadRequest)
		return
	}

	result, err := routes.manager.Ingest(r.Context(), req.toIngestRequest())
	if err != nil {
		writeSyncError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, SyncSheetsResponse{
		Message:      "Data synced successfully",
		IngestResult: result,
	}, http.StatusOK)
}

// refreshData handles POST /api/refresh-data
//
// @Summary		Refresh dashboard data
// @Description	With all three sheets named, re-ingest them. Otherwise drop cached reads and run a sync pass.
// @Tags			ingest
// @Accept			json
// @Produce		json
// @Param			request	body		SyncSheetsRequest	false	"Sheets to ingest"
// @Success		200		{object}	RefreshResponse
// @Failure		500		{object}	common.ErrorResponse
// @Router			/api/refresh-data [post]
func (routes *Routes) refreshData(w http.ResponseWriter, r *http.Request) {
	var req SyncSheetsRequest
	if err := common.DecodeJSONBody(r, &req, true); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.complete() || routes.manager == nil {
		if routes.coordinator != nil {
			if err := routes.coordinator.Refresh(r.Context()); err != nil {
				writeSyncError(w, r, err)
				return
			}
		}
		common.WriteJSONResponse(w, RefreshResponse{
			Message:   "Data refreshed. Configure the spreadsheets to pull new data.",
			Timestamp: routes.now().UTC(),
		}, http.StatusOK)
		return
	}

	result, err := routes.manager.Ingest(r.Context(), req.toIngestRequest())
	if err != nil {
		writeSyncError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, RefreshResponse{
		Message:   "Data refreshed successfully",
		Timestamp: result.SyncedAt,
		Result:    result,
	}, http.StatusOK)
}

// testSheets handles POST /api/test-sheets
//
// @Summary		Test a sheet connection
// @Description	Read a sheet and report its row count, headers and the first rows without storing anything
// @Tags			ingest
// @Accept			json
// @Produce		json
// @Param			request	body		SheetRequest	true	"Sheet to read"
// @Success		200		{object}	TestSheetsResponse
// @Failure		400		{object}	common.ErrorResponse
// @Failure		500		{object}	common.ErrorResponse
// @Router			/api/test-sheets [post]
func (routes *Routes) testSheets(w http.ResponseWriter, r *http.Request) {
	var req SheetRequest
	if err := common.DecodeJSONBody(r, &req, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		common.WriteErrorResponse(w, "spreadsheetId is required", http.StatusBadRequest)
		return
	}

	report, err := routes.manager.TestConnection(r.Context(), req.ref())
	if err != nil {
		writeSyncError(w, r, err)
		return
	}

	sheetName := req.SheetName
	if sheetName == "" {
		sheetName = defaultSheetLabel
	}
	message := "Connection successful"
	if report.RowCount == 0 {
		message = "No data found"
	}

	common.WriteJSONResponse(w, TestSheetsResponse{
		Success:          true,
		Message:          message,
		SpreadsheetID:    req.SpreadsheetID,
		SheetName:        sheetName,
		ConnectionReport: report,
	}, http.StatusOK)
}

// syncCraneSpecs handles POST /api/sync-crane-specs
//
// @Summary		Update crane specifications
// @Description	Copy grade, drive type and unmanned operation from a crane list sheet onto existing cranes
// @Tags			ingest
// @Accept			json
// @Produce		json
// @Param			request	body		SheetRequest	true	"Crane list sheet, CraneList when unnamed"
// @Success		200		{object}	SyncCraneSpecsResponse
// @Failure		400		{object}	common.ErrorResponse
// @Failure		404		{object}	common.ErrorResponse	"Sheet has no rows"
// @Failure		500		{object}	common.ErrorResponse
// @Router			/api/sync-crane-specs [post]
func (routes *Routes) syncCraneSpecs(w http.ResponseWriter, r *http.Request) {
	var req SheetRequest
	if err := common.DecodeJSONBody(r, &req, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		common.WriteErrorResponse(w, "spreadsheetId is required", http.StatusBadRequest)
		return
	}

	result, err := routes.manager.SyncCraneSpecs(r.Context(), req.ref())
	if err != nil {
		writeSyncError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, SyncCraneSpecsResponse{
		Message:        fmt.Sprintf("Specifications of %d cranes updated", result.UpdatedCount),
		SpecSyncResult: result,
	}, http.StatusOK)
}

// forceSync handles POST /api/cache/force-sync
//
// @Summary		Force a sync pass
// @Description	Clear the in-progress guard and run a pass now
// @Tags			sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		409	{object}	common.ErrorResponse
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/cache/force-sync [post]
func (routes *Routes) forceSync(w http.ResponseWriter, r *http.Request) {
	if err := routes.coordinator.ForceSync(r.Context()); err != nil {
		writeSyncError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, SyncResponse{
		Message: "Sync completed",
		Status:  routes.coordinator.Status(),
	}, http.StatusOK)
}

// refreshCache handles POST /api/cache/refresh
//
// @Summary		Refresh the read cache
// @Description	Drop every cached read and run a pass
// @Tags			sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/cache/refresh [post]
func (routes *Routes) refreshCache(w http.ResponseWriter, r *http.Request) {
	if err := routes.coordinator.Refresh(r.Context()); err != nil {
		writeSyncError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, SyncResponse{
		Message: "Cache refreshed",
		Status:  routes.coordinator.Status(),
	}, http.StatusOK)
}

// syncStatus handles GET /api/sync/status
//
// @Summary		Sync status
// @Tags			sync
// @Produce		json
// @Success		200	{object}	status.SyncStatus
// @Router			/api/sync/status [get]
func (routes *Routes) syncStatus(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, routes.coordinator.Status(), http.StatusOK)
}

// writeSyncError maps ingest and sync errors to HTTP responses
func writeSyncError(w http.ResponseWriter, r *http.Request, err error) {
	var syncErr *pkgsync.Error
	switch {
	case errors.As(err, &syncErr) && syncErr.Reason == pkgsync.ReasonInvalidRequest:
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pkgsync.ErrNoRows):
		common.WriteErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, coordinator.ErrSyncInProgress):
		common.WriteErrorResponse(w, err.Error(), http.StatusConflict)
	default:
		slog.ErrorContext(r.Context(), "Sync request failed", "path", r.URL.Path, "error", err)
		common.WriteErrorResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

func sheetRef(spreadsheetID, sheetName string) sources.SheetRef {
	return sources.SheetRef{
		SpreadsheetID: strings.TrimSpace(spreadsheetID),
		SheetName:     strings.TrimSpace(sheetName),
	}
}
