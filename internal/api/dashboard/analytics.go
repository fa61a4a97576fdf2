package dashboard

import (
	"net/http"

	"github.com/plantops/crane-dashboard/internal/api/common"
	"github.com/plantops/crane-dashboard/internal/store"
)

// getMaintenanceStats handles GET /api/analytics/maintenance-stats
//
// @Summary		Maintenance counts by type
// @Tags			analytics
// @Produce		json
// @Success		200	{array}		store.TypeCount
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/analytics/maintenance-stats [get]
func (routes *Routes) getMaintenanceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := routes.service.GetMaintenanceStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch maintenance statistics")
		return
	}
	common.WriteJSONResponse(w, stats, http.StatusOK)
}

// getFailureStats handles GET /api/analytics/failure-stats
//
// @Summary		Failure counts by type
// @Tags			analytics
// @Produce		json
// @Success		200	{array}		store.TypeCount
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/analytics/failure-stats [get]
func (routes *Routes) getFailureStats(w http.ResponseWriter, r *http.Request) {
	stats, err := routes.service.GetFailureStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch failure statistics")
		return
	}
	common.WriteJSONResponse(w, stats, http.StatusOK)
}

// getMonthlyTrends handles GET /api/analytics/monthly-trends
//
// @Summary		Maintenance counts by month
// @Tags			analytics
// @Produce		json
// @Success		200	{array}		store.MonthlyTrend
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/analytics/monthly-trends [get]
func (routes *Routes) getMonthlyTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := routes.service.GetMonthlyTrends(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch monthly trends")
		return
	}
	common.WriteJSONResponse(w, trends, http.StatusOK)
}

// listActiveAlerts handles GET /api/alerts
//
// @Summary		List active alerts
// @Tags			alerts
// @Produce		json
// @Success		200	{array}		store.Alert
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/alerts [get]
func (routes *Routes) listActiveAlerts(w http.ResponseWriter, r *http.Request) {
	routes.listAlerts(w, r, false)
}

// listAllAlerts handles GET /api/alerts/all
//
// @Summary		List all alerts
// @Description	Active and deactivated alerts
// @Tags			alerts
// @Produce		json
// @Success		200	{array}		store.Alert
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/alerts/all [get]
func (routes *Routes) listAllAlerts(w http.ResponseWriter, r *http.Request) {
	routes.listAlerts(w, r, true)
}

func (routes *Routes) listAlerts(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	alerts, err := routes.service.GetAlerts(r.Context(), includeInactive)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch alerts")
		return
	}
	common.WriteJSONResponse(w, alerts, http.StatusOK)
}

// createAlert handles POST /api/alerts
//
// @Summary		Create alert
// @Tags			alerts
// @Accept			json
// @Produce		json
// @Param			alert	body		store.AlertInput	true	"Alert to create"
// @Success		201		{object}	store.Alert
// @Failure		400		{object}	common.ErrorResponse
// @Router			/api/alerts [post]
func (routes *Routes) createAlert(w http.ResponseWriter, r *http.Request) {
	var in store.AlertInput
	if err := common.DecodeJSONBody(r, &in, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	alert, err := routes.service.CreateAlert(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create alert")
		return
	}
	common.WriteJSONResponse(w, alert, http.StatusCreated)
}

// deactivateAlert handles POST /api/alerts/{id}/deactivate
//
// @Summary		Deactivate alert
// @Description	Unknown ids are accepted and change nothing
// @Tags			alerts
// @Produce		json
// @Param			id	path	int	true	"Alert id"
// @Success		204
// @Failure		400	{object}	common.ErrorResponse
// @Router			/api/alerts/{id}/deactivate [post]
func (routes *Routes) deactivateAlert(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetIDURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := routes.service.DeactivateAlert(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to deactivate alert")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

