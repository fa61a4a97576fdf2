package sync

import (
	"context"
	"log/slog"

	"github.com/plantops/crane-dashboard/internal/otel"
	"github.com/plantops/crane-dashboard/internal/sources"
	"github.com/plantops/crane-dashboard/internal/store"
)

const (
	// DefaultSpecSheetName is read by SyncCraneSpecs when no sheet is named
	DefaultSpecSheetName = "CraneList"

	sampleRowCount = 3
)

var (
	specGradeKeys     = []string{"Grade", "grade"}
	specDriveTypeKeys = []string{"DriveType", "drive_type", "운전방식"}
	specUnmannedKeys  = []string{"UnmannedOperation", "unmanned_operation", "유무인"}
)

// TestConnection implements Manager.TestConnection
func (m *defaultManager) TestConnection(ctx context.Context, ref sources.SheetRef) (*ConnectionReport, error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "sync.TestConnection", spanAttrs(ref))
	defer span.End()

	if ref.SpreadsheetID == "" {
		return nil, newError(ReasonInvalidRequest, ErrMissingSpreadsheetID, "spreadsheet id is required")
	}

	sheet, err := m.source.FetchSheet(ctx, ref)
	if err != nil {
		otel.RecordError(span, err)
		return nil, newError(ReasonFetchFailed, err, "connection test failed: %v", err)
	}

	report := &ConnectionReport{
		RowCount:   len(sheet.Rows),
		Headers:    sheet.Headers,
		SampleRows: sheet.Rows[:min(sampleRowCount, len(sheet.Rows))],
	}
	if len(sheet.Rows) == 0 {
		report.Headers = []string{}
	}
	return report, nil
}

// SyncCraneSpecs implements Manager.SyncCraneSpecs.
// Rows whose crane id does not resolve are ignored; blank cells keep the stored value.
func (m *defaultManager) SyncCraneSpecs(ctx context.Context, ref sources.SheetRef) (*SpecSyncResult, error) {
	if ref.SheetName == "" {
		ref.SheetName = DefaultSpecSheetName
	}

	ctx, span := otel.StartSpan(ctx, m.tracer, "sync.SyncCraneSpecs", spanAttrs(ref))
	defer span.End()

	if ref.SpreadsheetID == "" {
		return nil, newError(ReasonInvalidRequest, ErrMissingSpreadsheetID, "spreadsheet id is required")
	}

	sheet, err := m.source.FetchSheet(ctx, ref)
	if err != nil {
		otel.RecordError(span, err)
		return nil, newError(ReasonFetchFailed, err, "failed to fetch crane spec sheet: %v", err)
	}
	if len(sheet.Rows) == 0 {
		return nil, newError(ReasonNoRows, ErrNoRows, "no rows found in sheet %q", ref.SheetName)
	}

	result := &SpecSyncResult{TotalRows: len(sheet.Rows)}
	for _, row := range sheet.Rows {
		craneID := store.CraneIDFromRow(row)
		if craneID == "" {
			continue
		}
		crane, ok := m.store.GetCraneByCraneID(craneID)
		if !ok {
			slog.DebugContext(ctx, "Spec row references unknown crane", "crane_id", craneID)
			continue
		}

		patch := store.CraneUpdate{
			Grade:             optional(store.RowString(row, specGradeKeys...)),
			DriveType:         optional(store.RowString(row, specDriveTypeKeys...)),
			UnmannedOperation: optional(store.RowString(row, specUnmannedKeys...)),
		}
		if _, err := m.store.UpdateCrane(crane.ID, patch); err != nil {
			slog.WarnContext(ctx, "Failed to apply crane spec", "crane_id", craneID, "error", err)
			continue
		}
		result.UpdatedCount++
	}

	if result.UpdatedCount > 0 {
		if err := m.hotPath.InvalidateCache(ctx); err != nil {
			slog.WarnContext(ctx, "Failed to invalidate read cache after spec sync", "error", err)
		}
	}

	slog.InfoContext(ctx, "Crane specs synced",
		"updated", result.UpdatedCount, "total_rows", result.TotalRows)
	return result, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
