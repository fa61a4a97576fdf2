package dashboard

import (
	"net/http"

	"github.com/plantops/crane-dashboard/internal/api/common"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/store"
)

// getDashboardSummary handles GET /api/dashboard/summary
//
// @Summary		Dashboard summary
// @Description	Crane counts by operational status
// @Tags			dashboard
// @Produce		json
// @Success		200	{object}	store.DashboardSummary
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/dashboard/summary [get]
func (routes *Routes) getDashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := routes.service.GetDashboardSummary(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch dashboard summary")
		return
	}
	common.WriteJSONResponse(w, summary, http.StatusOK)
}

// listCranes handles GET /api/cranes
//
// @Summary		List cranes
// @Tags			cranes
// @Produce		json
// @Success		200	{array}		store.Crane
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/cranes [get]
func (routes *Routes) listCranes(w http.ResponseWriter, r *http.Request) {
	cranes, err := routes.service.GetCranes(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch cranes")
		return
	}
	common.WriteJSONResponse(w, cranes, http.StatusOK)
}

// listFilteredCranes handles GET /api/cranes/filtered
//
// @Summary		Filter cranes
// @Description	Filter cranes by plant section and name; "all" or an empty value matches everything
// @Tags			cranes
// @Produce		json
// @Param			factory		query		string	false	"Plant section"
// @Param			craneName	query		string	false	"Crane name"
// @Success		200			{array}		store.Crane
// @Failure		500			{object}	common.ErrorResponse
// @Router			/api/cranes/filtered [get]
func (routes *Routes) listFilteredCranes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	cranes, err := routes.service.GetCranesByFactoryAndName(r.Context(), query.Get("factory"), query.Get("craneName"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch filtered cranes")
		return
	}
	common.WriteJSONResponse(w, cranes, http.StatusOK)
}

// getCrane handles GET /api/cranes/{id}
//
// @Summary		Get crane
// @Tags			cranes
// @Produce		json
// @Param			id	path		int	true	"Crane record id"
// @Success		200	{object}	store.Crane
// @Failure		400	{object}	common.ErrorResponse
// @Failure		404	{object}	common.ErrorResponse
// @Router			/api/cranes/{id} [get]
func (routes *Routes) getCrane(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetIDURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	crane, err := routes.service.GetCrane(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch crane")
		return
	}
	common.WriteJSONResponse(w, crane, http.StatusOK)
}

// getCraneByCraneID handles GET /api/cranes/by-crane-id/{craneId}
//
// @Summary		Get crane by crane id
// @Tags			cranes
// @Produce		json
// @Param			craneId	path		string	true	"Crane id, e.g. CR-001"
// @Success		200		{object}	store.Crane
// @Failure		400		{object}	common.ErrorResponse
// @Failure		404		{object}	common.ErrorResponse
// @Router			/api/cranes/by-crane-id/{craneId} [get]
func (routes *Routes) getCraneByCraneID(w http.ResponseWriter, r *http.Request) {
	craneID, err := common.GetAndValidateURLParam(r, "craneId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	crane, err := routes.service.GetCraneByCraneID(r.Context(), craneID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch crane")
		return
	}
	common.WriteJSONResponse(w, crane, http.StatusOK)
}

// createCrane handles POST /api/cranes
//
// @Summary		Create crane
// @Tags			cranes
// @Accept			json
// @Produce		json
// @Param			crane	body		store.CraneInput	true	"Crane to create"
// @Success		201		{object}	store.Crane
// @Failure		400		{object}	common.ErrorResponse
// @Failure		409		{object}	common.ErrorResponse	"Crane id already exists"
// @Router			/api/cranes [post]
func (routes *Routes) createCrane(w http.ResponseWriter, r *http.Request) {
	var in store.CraneInput
	if err := common.DecodeJSONBody(r, &in, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	crane, err := routes.service.CreateCrane(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create crane")
		return
	}
	common.WriteJSONResponse(w, crane, http.StatusCreated)
}

// updateCrane handles PATCH /api/cranes/{id}
//
// @Summary		Update crane
// @Description	Merge the given fields onto an existing crane
// @Tags			cranes
// @Accept			json
// @Produce		json
// @Param			id		path		int					true	"Crane record id"
// @Param			crane	body		store.CraneUpdate	true	"Fields to change"
// @Success		200		{object}	store.Crane
// @Failure		400		{object}	common.ErrorResponse
// @Failure		404		{object}	common.ErrorResponse
// @Router			/api/cranes/{id} [patch]
func (routes *Routes) updateCrane(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetIDURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch store.CraneUpdate
	if err := common.DecodeJSONBody(r, &patch, false); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	crane, err := routes.service.UpdateCrane(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update crane")
		return
	}
	common.WriteJSONResponse(w, crane, http.StatusOK)
}

// listFactories handles GET /api/factories
//
// @Summary		List plant sections
// @Tags			cranes
// @Produce		json
// @Success		200	{array}		string
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/factories [get]
func (routes *Routes) listFactories(w http.ResponseWriter, r *http.Request) {
	factories, err := routes.service.GetUniqueFactories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch factories")
		return
	}
	common.WriteJSONResponse(w, factories, http.StatusOK)
}

// listCraneNames handles GET /api/crane-names
//
// @Summary		List crane names
// @Tags			cranes
// @Produce		json
// @Param			factory	query		string	false	"Plant section"
// @Success		200		{array}		string
// @Failure		500		{object}	common.ErrorResponse
// @Router			/api/crane-names [get]
func (routes *Routes) listCraneNames(w http.ResponseWriter, r *http.Request) {
	names, err := routes.service.GetCraneNamesByFactory(r.Context(), r.URL.Query().Get("factory"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch crane names")
		return
	}
	common.WriteJSONResponse(w, names, http.StatusOK)
}

// listCranesWithFailureData handles GET /api/cranes-with-failure-data
//
// @Summary		Cranes with failure records
// @Description	Cranes that have at least one failure record, most failures first
// @Tags			cranes
// @Produce		json
// @Success		200	{array}		service.CraneFailureSummary
// @Failure		500	{object}	common.ErrorResponse
// @Router			/api/cranes-with-failure-data [get]
func (routes *Routes) listCranesWithFailureData(w http.ResponseWriter, r *http.Request) {
	summaries, err := routes.service.GetCranesWithFailureData(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch cranes with failure data")
		return
	}
	common.WriteJSONResponse(w, summaries, http.StatusOK)
}

// getCraneDetails handles GET /api/crane-details
//
// @Summary		Crane repair profile
// @Tags			cranes
// @Produce		json
// @Param			craneName	query		string	false	"Crane name; empty or all returns an empty profile"
// @Param			factory		query		string	false	"Plant section"
// @Param			startDate	query		string	false	"Window start, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Window end, YYYY-MM-DD"
// @Success		200			{object}	service.CraneDetails
// @Failure		404			{object}	common.ErrorResponse
// @Router			/api/crane-details [get]
func (routes *Routes) getCraneDetails(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	details, err := routes.service.GetCraneDetails(r.Context(), service.CraneDetailsQuery{
		CraneName: query.Get("craneName"),
		Factory:   query.Get("factory"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch crane details")
		return
	}
	common.WriteJSONResponse(w, details, http.StatusOK)
}
