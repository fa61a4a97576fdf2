package sources

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/store"
)

// writeWorkbook saves a workbook with the given sheets, in order, and returns its path
func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "cranes.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelHandler_FetchSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"CraneList": {
			{"Crane ID", "Crane Name", "Plant Section"},
			{"CR-001", "Gantry A", "Plant 1"},
			{"CR-002", "Jib B"},
		},
		"Failures": {
			{"Crane ID", "Date"},
			{"CR-002", "2024-05-05"},
		},
	}, "CraneList", "Failures")

	h := NewExcelHandler(&config.ExcelConfig{Path: path})
	ctx := context.Background()

	sheet, err := h.FetchSheet(ctx, SheetRef{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Crane ID", "Crane Name", "Plant Section"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, store.Row{"Crane ID": "CR-002", "Crane Name": "Jib B", "Plant Section": ""}, sheet.Rows[1])

	failures, err := h.FetchSheet(ctx, SheetRef{SpreadsheetID: path, SheetName: "Failures"})
	require.NoError(t, err)
	require.Len(t, failures.Rows, 1)
	assert.Equal(t, "2024-05-05", failures.Rows[0]["Date"])
}

func TestExcelHandler_FetchSheet_Errors(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"CraneList": {{"Crane ID"}},
	}, "CraneList")
	ctx := context.Background()

	_, err := NewExcelHandler(nil).FetchSheet(ctx, SheetRef{})
	require.ErrorIs(t, err, ErrMissingSpreadsheetID)

	_, err = NewExcelHandler(nil).FetchSheet(ctx, SheetRef{SpreadsheetID: filepath.Join(t.TempDir(), "missing.xlsx")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")

	_, err = NewExcelHandler(&config.ExcelConfig{Path: path}).FetchSheet(ctx, SheetRef{SheetName: "Maintenance"})
	require.ErrorIs(t, err, ErrSpreadsheetNotFound)

	sheet, err := NewExcelHandler(&config.ExcelConfig{Path: path}).FetchSheet(ctx, SheetRef{})
	require.NoError(t, err)
	assert.Empty(t, sheet.Rows)
}
