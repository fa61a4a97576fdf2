package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dashboard "github.com/plantops/crane-dashboard/internal/app"
	"github.com/plantops/crane-dashboard/internal/service"
	mocksvc "github.com/plantops/crane-dashboard/internal/service/mocks"
	"github.com/plantops/crane-dashboard/internal/sources"
	"github.com/plantops/crane-dashboard/internal/store"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	syncmocks "github.com/plantops/crane-dashboard/internal/sync/mocks"
)

func strPtr(s string) *string { return &s }

func testReport() *summaryReport {
	return &summaryReport{
		Summary: store.DashboardSummary{TotalCranes: 3, OperatingCranes: 1, MaintenanceCranes: 1, UrgentCranes: 1},
		Ingest: store.IngestReport{
			Cranes:   store.CollectionReport{Accepted: 3},
			Failures: store.CollectionReport{Accepted: 4, Skipped: 1},
		},
		Warnings: []string{"maintenance sheet not configured"},
		Failures: []service.CraneFailureSummary{
			{CraneID: "CR-002", CraneName: strPtr("Jib B"), FailureCount: 3, HasData: true},
			{CraneID: "CR-001", CraneName: strPtr("Gantry A"), PlantSection: strPtr("Plant 1"), FailureCount: 1, HasData: true},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		report   *summaryReport
		format   string
		contains []string
		wantErr  bool
	}{
		{
			name:     "table",
			report:   testReport(),
			format:   "table",
			contains: []string{"OPERATING", "CR-002", "Jib B", "Plant 1", "warning: maintenance sheet not configured"},
		},
		{
			name:     "table without failures",
			report:   &summaryReport{},
			format:   "",
			contains: []string{"No failures recorded"},
		},
		{
			name:     "json",
			report:   testReport(),
			format:   "json",
			contains: []string{`"totalCranes": 3`, `"craneId": "CR-001"`},
		},
		{
			name:    "unknown format",
			report:  testReport(),
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := writeSummary(&buf, tt.report, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, strings.ToUpper(buf.String()), strings.ToUpper(want))
			}
			if tt.format == "json" {
				assert.True(t, json.Valid(buf.Bytes()))
			}
		})
	}
}

func TestCollectSummary(t *testing.T) {
	t.Parallel()

	req := pkgsync.IngestRequest{Cranes: sources.SheetRef{SpreadsheetID: "sheet-1", SheetName: "CraneList"}}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		manager := syncmocks.NewMockManager(ctrl)
		svc := mocksvc.NewMockDashboardService(ctrl)
		manager.EXPECT().Ingest(gomock.Any(), req).Return(&pkgsync.IngestResult{
			Report: store.IngestReport{Cranes: store.CollectionReport{Accepted: 2}},
		}, nil)
		svc.EXPECT().GetDashboardSummary(gomock.Any()).Return(store.DashboardSummary{TotalCranes: 2}, nil)
		svc.EXPECT().GetCranesWithFailureData(gomock.Any()).Return([]service.CraneFailureSummary{}, nil)

		report, err := collectSummary(context.Background(),
			&dashboard.AppComponents{SyncManager: manager, DashboardService: svc}, req)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Summary.TotalCranes)
		assert.Equal(t, 2, report.Ingest.Cranes.Accepted)
	})

	t.Run("ingest error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		manager := syncmocks.NewMockManager(ctrl)
		manager.EXPECT().Ingest(gomock.Any(), req).Return(nil, errors.New("no api key"))

		_, err := collectSummary(context.Background(),
			&dashboard.AppComponents{SyncManager: manager, DashboardService: mocksvc.NewMockDashboardService(ctrl)}, req)
		require.ErrorContains(t, err, "failed to import spreadsheets")
	})
}
