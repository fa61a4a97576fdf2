package ingest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/plantops/crane-dashboard/internal/api/ingest"
	"github.com/plantops/crane-dashboard/internal/sources"
	"github.com/plantops/crane-dashboard/internal/status"
	"github.com/plantops/crane-dashboard/internal/store"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/sync/coordinator"
	coordmocks "github.com/plantops/crane-dashboard/internal/sync/coordinator/mocks"
	syncmocks "github.com/plantops/crane-dashboard/internal/sync/mocks"
)

var syncedAt = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (http.Handler, *syncmocks.MockManager, *coordmocks.MockCoordinator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	manager := syncmocks.NewMockManager(ctrl)
	coord := coordmocks.NewMockCoordinator(ctrl)
	return ingest.Router(manager, coord), manager, coord
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSyncSheets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(m *syncmocks.MockManager)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "crane sheet only",
			body: `{"cranesSpreadsheetId":"doc-1","cranesSheetName":"Cranes"}`,
			setup: func(m *syncmocks.MockManager) {
				m.EXPECT().Ingest(gomock.Any(), pkgsync.IngestRequest{
					Cranes: sources.SheetRef{SpreadsheetID: "doc-1", SheetName: "Cranes"},
				}).Return(&pkgsync.IngestResult{SyncedAt: syncedAt}, nil)
			},
			wantStatus: http.StatusOK,
			wantMsg:    "Data synced successfully",
		},
		{
			name: "all sheets",
			body: `{"cranesSpreadsheetId":"doc-1","failureSpreadsheetId":"doc-2","failureSheetName":"Failures",` +
				`"maintenanceSpreadsheetId":"doc-3"}`,
			setup: func(m *syncmocks.MockManager) {
				m.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req pkgsync.IngestRequest) (*pkgsync.IngestResult, error) {
						require.NotNil(t, req.Failures)
						assert.Equal(t, sources.SheetRef{SpreadsheetID: "doc-2", SheetName: "Failures"}, *req.Failures)
						require.NotNil(t, req.Maintenance)
						assert.Equal(t, "doc-3", req.Maintenance.SpreadsheetID)
						return &pkgsync.IngestResult{Warnings: []string{"maintenance sheet not available: 404"}}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantMsg:    "Data synced successfully",
		},
		{
			name:       "missing crane spreadsheet",
			body:       `{"cranesSheetName":"Cranes"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "cranesSpreadsheetId is required",
		},
		{
			name: "fetch failure",
			body: `{"cranesSpreadsheetId":"doc-1"}`,
			setup: func(m *syncmocks.MockManager) {
				m.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(nil, &pkgsync.Error{
					Err:     errors.New("status 403"),
					Message: "failed to fetch crane sheet: status 403",
					Reason:  pkgsync.ReasonFetchFailed,
				})
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "failed to fetch crane sheet: status 403",
		},
		{
			name: "invalid request from manager",
			body: `{"cranesSpreadsheetId":"doc-1"}`,
			setup: func(m *syncmocks.MockManager) {
				m.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(nil, &pkgsync.Error{
					Err:     pkgsync.ErrMissingSpreadsheetID,
					Message: "crane spreadsheet id is required",
					Reason:  pkgsync.ReasonInvalidRequest,
				})
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "crane spreadsheet id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, manager, _ := newRouter(t)
			if tt.setup != nil {
				tt.setup(manager)
			}

			rr := post(router, "/sync-sheets", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestRefreshData(t *testing.T) {
	t.Parallel()

	t.Run("incomplete config refreshes through the coordinator", func(t *testing.T) {
		t.Parallel()

		router, _, coord := newRouter(t)
		coord.EXPECT().Refresh(gomock.Any()).Return(nil)

		rr := post(router, "/refresh-data", `{"cranesSpreadsheetId":"doc-1"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ingest.RefreshResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Nil(t, resp.Result)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		router, _, coord := newRouter(t)
		coord.EXPECT().Refresh(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh-data", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("refresh failure", func(t *testing.T) {
		t.Parallel()

		router, _, coord := newRouter(t)
		coord.EXPECT().Refresh(gomock.Any()).Return(errors.New("failed to clear read cache: redis down"))

		rr := post(router, "/refresh-data", `{}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"failed to clear read cache: redis down"}`, rr.Body.String())
	})

	t.Run("complete config re-ingests", func(t *testing.T) {
		t.Parallel()

		router, manager, _ := newRouter(t)
		manager.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req pkgsync.IngestRequest) (*pkgsync.IngestResult, error) {
				assert.NotNil(t, req.Failures)
				assert.NotNil(t, req.Maintenance)
				return &pkgsync.IngestResult{
					Report:   store.IngestReport{Cranes: store.CollectionReport{Accepted: 4}},
					SyncedAt: syncedAt,
				}, nil
			})

		rr := post(router, "/refresh-data",
			`{"cranesSpreadsheetId":"a","failureSpreadsheetId":"b","maintenanceSpreadsheetId":"c"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ingest.RefreshResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Result)
		assert.Equal(t, 4, resp.Result.Report.Cranes.Accepted)
		assert.True(t, syncedAt.Equal(resp.Timestamp))
	})
}

func TestTestSheets(t *testing.T) {
	t.Parallel()

	router, manager, _ := newRouter(t)
	manager.EXPECT().TestConnection(gomock.Any(), sources.SheetRef{SpreadsheetID: "doc-1"}).
		Return(&pkgsync.ConnectionReport{
			RowCount:   12,
			Headers:    []string{"설비코드", "CraneName"},
			SampleRows: []store.Row{{"설비코드": "CR-001", "CraneName": "Gantry A"}},
		}, nil)

	rr := post(router, "/test-sheets", `{"spreadsheetId":"doc-1"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "default sheet", body["sheetName"])
	assert.EqualValues(t, 12, body["rowCount"])
	assert.Len(t, body["sampleData"], 1)

	rr = post(router, "/test-sheets", `{"sheetName":"Cranes"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSyncCraneSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{
			name: "no rows",
			err: &pkgsync.Error{
				Err: pkgsync.ErrNoRows, Message: `no rows found in sheet "CraneList"`, Reason: pkgsync.ReasonNoRows,
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch failure",
			err:        &pkgsync.Error{Err: errors.New("timeout"), Message: "timeout", Reason: pkgsync.ReasonFetchFailed},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, manager, _ := newRouter(t)
			var result *pkgsync.SpecSyncResult
			if tt.err == nil {
				result = &pkgsync.SpecSyncResult{UpdatedCount: 2, TotalRows: 5}
			}
			manager.EXPECT().SyncCraneSpecs(gomock.Any(), sources.SheetRef{SpreadsheetID: "doc-1"}).
				Return(result, tt.err)

			rr := post(router, "/sync-crane-specs", `{"spreadsheetId":"doc-1"}`)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				assert.JSONEq(t,
					`{"message":"Specifications of 2 cranes updated","updatedCount":2,"totalRows":5}`,
					rr.Body.String())
			}
		})
	}
}

func TestCacheEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(c *coordmocks.MockCoordinator)
		wantStatus int
	}{
		{
			name:   "force sync",
			method: http.MethodPost,
			path:   "/cache/force-sync",
			setup: func(c *coordmocks.MockCoordinator) {
				c.EXPECT().ForceSync(gomock.Any()).Return(nil)
				c.EXPECT().Status().Return(status.SyncStatus{Phase: status.SyncPhaseComplete})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "force sync lost the race",
			method: http.MethodPost,
			path:   "/cache/force-sync",
			setup: func(c *coordmocks.MockCoordinator) {
				c.EXPECT().ForceSync(gomock.Any()).Return(coordinator.ErrSyncInProgress)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "force sync failed",
			method: http.MethodPost,
			path:   "/cache/force-sync",
			setup: func(c *coordmocks.MockCoordinator) {
				c.EXPECT().ForceSync(gomock.Any()).Return(errors.New("failed to warm cranes: boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "refresh",
			method: http.MethodPost,
			path:   "/cache/refresh",
			setup: func(c *coordmocks.MockCoordinator) {
				c.EXPECT().Refresh(gomock.Any()).Return(nil)
				c.EXPECT().Status().Return(status.SyncStatus{Phase: status.SyncPhaseComplete})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "status",
			method: http.MethodGet,
			path:   "/sync/status",
			setup: func(c *coordmocks.MockCoordinator) {
				c.EXPECT().Status().Return(status.SyncStatus{Phase: status.SyncPhaseIdle, SyncSchedule: "3m0s"})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, _, coord := newRouter(t)
			tt.setup(coord)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouterWithoutDependencies(t *testing.T) {
	t.Parallel()

	router := ingest.Router(nil, nil)

	rr := post(router, "/sync-sheets", `{"cranesSpreadsheetId":"doc-1"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = post(router, "/refresh-data", `{}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sync/status", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
