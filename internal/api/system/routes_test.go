package system_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/plantops/crane-dashboard/internal/api/system"
	"github.com/plantops/crane-dashboard/internal/service/mocks"
	"github.com/plantops/crane-dashboard/internal/versions"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# HELP crane_dashboard_records_total\n"))
	})

	tests := []struct {
		name       string
		path       string
		metrics    http.Handler
		readyErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK, wantBody: `{"status":"healthy"}`},
		{name: "ready", path: "/readiness", wantStatus: http.StatusOK, wantBody: `{"status":"ready"}`},
		{
			name:       "not ready",
			path:       "/readiness",
			readyErr:   errors.New("redis: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"service not ready: redis: connection refused"}`,
		},
		{name: "metrics disabled", path: "/metrics", wantStatus: http.StatusNotFound},
		{name: "metrics enabled", path: "/metrics", metrics: metrics, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := mocks.NewMockDashboardService(ctrl)
			svc.EXPECT().CheckReadiness(gomock.Any()).Return(tt.readyErr).AnyTimes()

			rr := httptest.NewRecorder()
			system.Router(svc, tt.metrics).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)

	rr := httptest.NewRecorder()
	system.Router(svc, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var info versions.VersionInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, versions.GetVersionInfo(), info)
}
