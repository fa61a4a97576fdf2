package sources

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/plantops/crane-dashboard/internal/config"
)

// excelHandler reads sheets from local .xlsx workbooks
type excelHandler struct {
	defaultPath string
}

// NewExcelHandler creates a workbook source handler.
// References without a path read the configured workbook.
func NewExcelHandler(cfg *config.ExcelConfig) SourceHandler {
	h := &excelHandler{}
	if cfg != nil {
		h.defaultPath = cfg.Path
	}
	return h
}

// FetchSheet implements SourceHandler.FetchSheet
func (h *excelHandler) FetchSheet(ctx context.Context, ref SheetRef) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := ref.SpreadsheetID
	if path == "" {
		path = h.defaultPath
	}
	if path == "" {
		return nil, ErrMissingSpreadsheetID
	}

	f, err := excelize.OpenFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", "path", path, "error", err)
		}
	}()

	sheetName := ref.SheetName
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: no sheet named %q in %s", ErrSpreadsheetNotFound, sheetName, path)
	}

	grid, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheetName, err)
	}
	return shapeRows(grid)
}
