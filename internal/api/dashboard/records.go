package dashboard

import (
	"net/http"

	"github.com/plantops/crane-dashboard/internal/api/common"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/store"
)

// listMaintenanceRecords handles GET /api/maintenance-records
//
// @Summary		List maintenance records
// @Tags			records
// @Produce		json
// @Param			craneId	query		string	false	"Restrict to one crane"
// @Success		200		{array}		store.MaintenanceRecord
// @Failure		500		{object}	common.ErrorResponse
// @Router			/api/maintenance-records [get]
func (routes *Routes) listMaintenanceRecords(w http.ResponseWriter, r *http.Request) {
	records, err := routes.service.GetMaintenanceRecords(r.Context(), r.URL.Query().Get("craneId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch maintenance records")
		return
	}
	common.WriteJSONResponse(w, records, http.StatusOK)
}

// getMaintenanceRecord handles GET /api/maintenance-records/{id}
//
// @Summary		Get maintenance record
// @Tags			records
// @Produce		json
// @Param			id	path		int	true	"Record id"
// @Success		200	{object}	store.MaintenanceRecord
// @Failure		400	{object}	common.ErrorResponse
// @Failure		404	{object}	common.ErrorResponse
// @Router			/api/maintenance-records/{id} [get]
func (routes *Routes) getMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetIDURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := routes.service.GetMaintenanceRecord(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch maintenance record")
		return
	}
	common.WriteJSONResponse(w, record, http.StatusOK)
}

// createMaintenanceRecord handles POST /api/maintenance-records
//
// @Summary		Create maintenance record
// @Tags			records
// @Accept			json
// @Produce		json
// @Param			record	body		store.MaintenanceRecordInput	true	"Record to create"
// @Success		201		{object}	store.MaintenanceRecord
// @Failure		400		{object}	common.ErrorResponse
// @Router			/api/maintenance-records [post]
func (routes *Routes) createMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	var in store.MaintenanceRecordInput
	if err := common.DecodeJSONBody(r, &in, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := routes.service.CreateMaintenanceRecord(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create maintenance record")
		return
	}
	common.WriteJSONResponse(w, record, http.StatusCreated)
}

// listFailureRecords handles GET /api/failure-records
//
// @Summary		List failure records
// @Description	The date range applies only when both bounds are given
// @Tags			records
// @Produce		json
// @Param			craneName	query		string	false	"Crane name; unknown names are ignored"
// @Param			startDate	query		string	false	"Range start"
// @Param			endDate		query		string	false	"Range end"
// @Success		200			{array}		store.FailureRecord
// @Failure		400			{object}	common.ErrorResponse
// @Failure		500			{object}	common.ErrorResponse
// @Router			/api/failure-records [get]
func (routes *Routes) listFailureRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := routes.service.GetFailureRecords(r.Context(), service.FailureRecordQuery{
		CraneName: query.Get("craneName"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch failure records")
		return
	}
	common.WriteJSONResponse(w, records, http.StatusOK)
}

// getFailureRecord handles GET /api/failure-records/{id}
//
// @Summary		Get failure record
// @Tags			records
// @Produce		json
// @Param			id	path		int	true	"Record id"
// @Success		200	{object}	store.FailureRecord
// @Failure		400	{object}	common.ErrorResponse
// @Failure		404	{object}	common.ErrorResponse
// @Router			/api/failure-records/{id} [get]
func (routes *Routes) getFailureRecord(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetIDURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := routes.service.GetFailureRecord(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch failure record")
		return
	}
	common.WriteJSONResponse(w, record, http.StatusOK)
}

// createFailureRecord handles POST /api/failure-records
//
// @Summary		Create failure record
// @Tags			records
// @Accept			json
// @Produce		json
// @Param			record	body		store.FailureRecordInput	true	"Record to create"
// @Success		201		{object}	store.FailureRecord
// @Failure		400		{object}	common.ErrorResponse
// @Router			/api/failure-records [post]
func (routes *Routes) createFailureRecord(w http.ResponseWriter, r *http.Request) {
	var in store.FailureRecordInput
	if err := common.DecodeJSONBody(r, &in, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := routes.service.CreateFailureRecord(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create failure record")
		return
	}
	common.WriteJSONResponse(w, record, http.StatusCreated)
}
