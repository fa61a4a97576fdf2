package dashboard_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/plantops/crane-dashboard/internal/api/dashboard"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/service/mocks"
	"github.com/plantops/crane-dashboard/internal/store"
)

func strPtr(s string) *string { return &s }

func newRouter(t *testing.T) (http.Handler, *mocks.MockDashboardService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	return dashboard.Router(svc), svc
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestDashboardSummary(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetDashboardSummary(gomock.Any()).Return(store.DashboardSummary{
		TotalCranes: 5, OperatingCranes: 3, MaintenanceCranes: 1, UrgentCranes: 2,
	}, nil)

	rr := serve(router, http.MethodGet, "/dashboard/summary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"totalCranes":5,"operatingCranes":3,"maintenanceCranes":1,"urgentCranes":2}`,
		rr.Body.String())
}

func TestListCranes(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetCranes(gomock.Any()).Return([]store.Crane{
		{ID: 1, CraneID: "CR-001", CraneName: strPtr("Gantry A"), Status: store.CraneStatusOperating},
	}, nil)

	rr := serve(router, http.MethodGet, "/cranes", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var cranes []store.Crane
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cranes))
	require.Len(t, cranes, 1)
	assert.Equal(t, "CR-001", cranes[0].CraneID)
}

func TestFilteredCranesPassesQuery(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetCranesByFactoryAndName(gomock.Any(), "Plant 1", "all").Return([]store.Crane{}, nil)

	rr := serve(router, http.MethodGet, "/cranes/filtered?factory=Plant+1&craneName=all", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetCrane(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setup      func(svc *mocks.MockDashboardService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "by id",
			path: "/cranes/7",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().GetCrane(gomock.Any(), 7).Return(store.Crane{ID: 7, CraneID: "CR-007"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown id",
			path: "/cranes/99",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().GetCrane(gomock.Any(), 99).
					Return(store.Crane{}, fmt.Errorf("%w: id 99", service.ErrCraneNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"crane not found: id 99"}`,
		},
		{
			name:       "non numeric id",
			path:       "/cranes/abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"id must be a positive integer"}`,
		},
		{
			name: "by crane id",
			path: "/cranes/by-crane-id/CR-001",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().GetCraneByCraneID(gomock.Any(), "CR-001").Return(store.Crane{ID: 1, CraneID: "CR-001"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown crane id",
			path: "/cranes/by-crane-id/CR-404",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().GetCraneByCraneID(gomock.Any(), "CR-404").Return(store.Crane{}, service.ErrCraneNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc := newRouter(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rr := serve(router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestCreateCrane(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockDashboardService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"craneId":"CR-010","craneName":"Jib C","status":"operating"}`,
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().CreateCrane(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, in store.CraneInput) (store.Crane, error) {
						assert.Equal(t, "CR-010", in.CraneID)
						assert.Equal(t, "Jib C", *in.CraneName)
						return store.Crane{ID: 11, CraneID: in.CraneID}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate crane id",
			body: `{"craneId":"CR-001"}`,
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().CreateCrane(gomock.Any(), gomock.Any()).
					Return(store.Crane{}, fmt.Errorf("failed to create crane: %w", store.ErrDuplicateCraneID))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "invalid input",
			body: `{"craneId":""}`,
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().CreateCrane(gomock.Any(), gomock.Any()).
					Return(store.Crane{}, fmt.Errorf("%w: craneId is required", service.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"craneId":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc := newRouter(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rr := serve(router, http.MethodPost, "/cranes", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateCrane(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().UpdateCrane(gomock.Any(), 3, gomock.Any()).DoAndReturn(
		func(_ any, _ int, patch store.CraneUpdate) (store.Crane, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, store.CraneStatusMaintenance, *patch.Status)
			assert.Nil(t, patch.CraneName)
			return store.Crane{ID: 3, CraneID: "CR-003", Status: *patch.Status}, nil
		})
	svc.EXPECT().UpdateCrane(gomock.Any(), 4, gomock.Any()).Return(store.Crane{}, service.ErrCraneNotFound)
	svc.EXPECT().UpdateCrane(gomock.Any(), 5, gomock.Any()).
		Return(store.Crane{}, fmt.Errorf("failed to update crane: %w", store.ErrDuplicateCraneID))

	rr := serve(router, http.MethodPatch, "/cranes/3", `{"status":"maintenance"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodPatch, "/cranes/4", `{"status":"maintenance"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, http.MethodPatch, "/cranes/5", `{"craneId":"CR-003"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCraneNames(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetCraneNamesByFactory(gomock.Any(), "Plant 2").Return([]string{"Gantry A"}, nil)
	svc.EXPECT().GetUniqueFactories(gomock.Any()).Return([]string{"Plant 1", "Plant 2"}, nil)

	rr := serve(router, http.MethodGet, "/crane-names?factory=Plant%202", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Gantry A"]`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/factories", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Plant 1","Plant 2"]`, rr.Body.String())
}

func TestCraneDetails(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetCraneDetails(gomock.Any(), service.CraneDetailsQuery{
		CraneName: "Gantry A",
		Factory:   "Plant 1",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-31",
	}).Return(&service.CraneDetails{DailyRepairCount: 2, FailureHeatmap: map[string]int{}}, nil)
	svc.EXPECT().GetCraneDetails(gomock.Any(), service.CraneDetailsQuery{CraneName: "Tower Z"}).
		Return(nil, service.ErrCraneNotFound)

	rr := serve(router, http.MethodGet,
		"/crane-details?craneName=Gantry+A&factory=Plant+1&startDate=2024-05-01&endDate=2024-05-31", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var details service.CraneDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &details))
	assert.Equal(t, 2, details.DailyRepairCount)
	assert.Nil(t, details.Crane)

	rr = serve(router, http.MethodGet, "/crane-details?craneName=Tower+Z", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFailureRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		query      service.FailureRecordQuery
		err        error
		wantStatus int
	}{
		{
			name:       "unfiltered",
			path:       "/failure-records",
			wantStatus: http.StatusOK,
		},
		{
			name:       "filtered",
			path:       "/failure-records?craneName=Jib+B&startDate=2024-05-01&endDate=2024-05-31",
			query:      service.FailureRecordQuery{CraneName: "Jib B", StartDate: "2024-05-01", EndDate: "2024-05-31"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unparseable bound",
			path:       "/failure-records?startDate=yesterday&endDate=2024-05-31",
			query:      service.FailureRecordQuery{StartDate: "yesterday", EndDate: "2024-05-31"},
			err:        fmt.Errorf("%w: startDate \"yesterday\" is not a date", service.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected failure",
			path:       "/failure-records",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc := newRouter(t)
			svc.EXPECT().GetFailureRecords(gomock.Any(), tt.query).Return([]store.FailureRecord{}, tt.err)

			rr := serve(router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"message":"Failed to fetch failure records"}`, rr.Body.String())
			}
		})
	}
}

func TestRecordsByID(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetMaintenanceRecord(gomock.Any(), 1).Return(store.MaintenanceRecord{ID: 1, CraneID: "CR-001"}, nil)
	svc.EXPECT().GetMaintenanceRecord(gomock.Any(), 2).Return(store.MaintenanceRecord{}, service.ErrMaintenanceRecordNotFound)
	svc.EXPECT().GetFailureRecord(gomock.Any(), 5).Return(store.FailureRecord{}, service.ErrFailureRecordNotFound)
	svc.EXPECT().GetMaintenanceRecords(gomock.Any(), "CR-001").Return([]store.MaintenanceRecord{{ID: 1}}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/maintenance-records/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/maintenance-records/2", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/failure-records/5", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/maintenance-records?craneId=CR-001", "").Code)
}

func TestCreateRecords(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().CreateMaintenanceRecord(gomock.Any(), gomock.Any()).
		Return(store.MaintenanceRecord{ID: 9, CraneID: "CR-001"}, nil)
	svc.EXPECT().CreateFailureRecord(gomock.Any(), gomock.Any()).
		Return(store.FailureRecord{}, fmt.Errorf("%w: date is required", service.ErrInvalidInput))

	rr := serve(router, http.MethodPost, "/maintenance-records", `{"craneId":"CR-001","date":"2024-06-01"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(router, http.MethodPost, "/failure-records", `{"craneId":"CR-001"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"invalid input: date is required"}`, rr.Body.String())

	rr = serve(router, http.MethodPost, "/failure-records", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAnalytics(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetMaintenanceStats(gomock.Any()).Return([]store.TypeCount{{Type: "routine", Count: 2}}, nil)
	svc.EXPECT().GetFailureStats(gomock.Any()).Return(nil, errors.New("boom"))
	svc.EXPECT().GetMonthlyTrends(gomock.Any()).Return([]store.MonthlyTrend{{Month: "2024-05", Count: 3}}, nil)
	svc.EXPECT().GetCranesWithFailureData(gomock.Any()).Return([]service.CraneFailureSummary{}, nil)

	rr := serve(router, http.MethodGet, "/analytics/maintenance-stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"type":"routine","count":2}]`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/analytics/failure-stats", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch failure statistics"}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/analytics/monthly-trends", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"month":"2024-05","count":3}]`, rr.Body.String())

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/cranes-with-failure-data", "").Code)
}

func TestAlerts(t *testing.T) {
	t.Parallel()

	router, svc := newRouter(t)
	svc.EXPECT().GetAlerts(gomock.Any(), false).Return([]store.Alert{{ID: 1, IsActive: true}}, nil)
	svc.EXPECT().GetAlerts(gomock.Any(), true).Return([]store.Alert{{ID: 1, IsActive: true}, {ID: 2}}, nil)
	svc.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(store.Alert{ID: 3, IsActive: true}, nil)
	svc.EXPECT().DeactivateAlert(gomock.Any(), 1).Return(nil)

	var alerts []store.Alert
	rr := serve(router, http.MethodGet, "/alerts", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 1)

	rr = serve(router, http.MethodGet, "/alerts/all", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 2)

	rr = serve(router, http.MethodPost, "/alerts",
		`{"craneId":"CR-001","type":"overdue","message":"late","severity":"high"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(router, http.MethodPost, "/alerts/1/deactivate", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(router, http.MethodPost, "/alerts/x/deactivate", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
