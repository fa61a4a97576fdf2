package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/plantops/crane-dashboard/internal/sources"
	"github.com/plantops/crane-dashboard/internal/store"
)

func strPtr(s string) *string { return &s }

func TestTestConnection(t *testing.T) {
	t.Parallel()

	rows := []store.Row{{"A": "1"}, {"A": "2"}, {"A": "3"}, {"A": "4"}}
	tests := []struct {
		name        string
		sheet       *sources.Sheet
		wantCount   int
		wantSamples int
		wantHeaders []string
	}{
		{
			name:        "samples capped at three",
			sheet:       &sources.Sheet{Headers: []string{"A"}, Rows: rows},
			wantCount:   4,
			wantSamples: 3,
			wantHeaders: []string{"A"},
		},
		{
			name:        "short sheet",
			sheet:       &sources.Sheet{Headers: []string{"A"}, Rows: rows[:1]},
			wantCount:   1,
			wantSamples: 1,
			wantHeaders: []string{"A"},
		},
		{
			name:        "headers only",
			sheet:       &sources.Sheet{Headers: []string{"A", "B"}, Rows: []store.Row{}},
			wantHeaders: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, deps := newTestManager(t)
			deps.source.EXPECT().FetchSheet(gomock.Any(), cranesRef).Return(tt.sheet, nil)

			report, err := m.TestConnection(context.Background(), cranesRef)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, report.RowCount)
			assert.Len(t, report.SampleRows, tt.wantSamples)
			assert.Equal(t, tt.wantHeaders, report.Headers)
		})
	}
}

func TestTestConnection_Errors(t *testing.T) {
	t.Parallel()

	m, deps := newTestManager(t)

	_, err := m.TestConnection(context.Background(), sources.SheetRef{SheetName: "Cranes"})
	require.ErrorIs(t, err, ErrMissingSpreadsheetID)

	deps.source.EXPECT().FetchSheet(gomock.Any(), cranesRef).Return(nil, sources.ErrBadRequest)
	_, err = m.TestConnection(context.Background(), cranesRef)
	require.ErrorIs(t, err, sources.ErrBadRequest)
	assert.Contains(t, err.Error(), "connection test failed")
}

func TestSyncCraneSpecs(t *testing.T) {
	t.Parallel()

	m, deps := newTestManager(t)
	ctx := context.Background()

	_, err := deps.store.CreateCrane(store.CraneInput{CraneID: "CR-001", Grade: strPtr("B")})
	require.NoError(t, err)
	_, err = deps.store.CreateCrane(store.CraneInput{CraneID: "CR-002", Grade: strPtr("C"), DriveType: strPtr("cabin")})
	require.NoError(t, err)

	sheet := &sources.Sheet{
		Headers: []string{"설비코드", "Grade", "운전방식", "유무인"},
		Rows: []store.Row{
			{"설비코드": "CR-001", "Grade": "A", "운전방식": "remote", "유무인": "unmanned"},
			{"설비코드": "CR-002", "Grade": "", "운전방식": "", "유무인": "manned"},
			{"설비코드": "CR-404", "Grade": "A"},
			{"설비코드": "", "Grade": "A"},
		},
	}
	specRef := sources.SheetRef{SpreadsheetID: "doc-1", SheetName: DefaultSpecSheetName}
	deps.source.EXPECT().FetchSheet(gomock.Any(), specRef).Return(sheet, nil)
	deps.hotPath.EXPECT().InvalidateCache(gomock.Any()).Return(nil).Times(1)

	result, err := m.SyncCraneSpecs(ctx, sources.SheetRef{SpreadsheetID: "doc-1"})
	require.NoError(t, err)
	assert.Equal(t, &SpecSyncResult{UpdatedCount: 2, TotalRows: 4}, result)

	first, ok := deps.store.GetCraneByCraneID("CR-001")
	require.True(t, ok)
	assert.Equal(t, "A", *first.Grade)
	assert.Equal(t, "remote", *first.DriveType)
	assert.Equal(t, "unmanned", *first.UnmannedOperation)

	second, ok := deps.store.GetCraneByCraneID("CR-002")
	require.True(t, ok)
	assert.Equal(t, "C", *second.Grade)
	assert.Equal(t, "cabin", *second.DriveType)
	assert.Equal(t, "manned", *second.UnmannedOperation)
}

func TestSyncCraneSpecs_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ref        sources.SheetRef
		sheet      *sources.Sheet
		fetchErr   error
		wantErr    error
		wantReason string
	}{
		{
			name:       "missing document",
			ref:        sources.SheetRef{SheetName: "CraneList"},
			wantErr:    ErrMissingSpreadsheetID,
			wantReason: ReasonInvalidRequest,
		},
		{
			name:       "fetch failure",
			ref:        cranesRef,
			fetchErr:   sources.ErrUpstream,
			wantErr:    sources.ErrUpstream,
			wantReason: ReasonFetchFailed,
		},
		{
			name:       "empty sheet",
			ref:        cranesRef,
			sheet:      &sources.Sheet{Headers: []string{"CraneId"}, Rows: []store.Row{}},
			wantErr:    ErrNoRows,
			wantReason: ReasonNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, deps := newTestManager(t)
			if tt.ref.SpreadsheetID != "" {
				deps.source.EXPECT().FetchSheet(gomock.Any(), tt.ref).Return(tt.sheet, tt.fetchErr)
			}

			_, err := m.SyncCraneSpecs(context.Background(), tt.ref)
			require.ErrorIs(t, err, tt.wantErr)
			var syncErr *Error
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, tt.wantReason, syncErr.Reason)
		})
	}
}
