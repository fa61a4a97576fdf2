package sources

import (
	"fmt"

	"github.com/plantops/crane-dashboard/internal/config"
)

// NewSourceHandler creates the source handler for the configured source type
func NewSourceHandler(cfg *config.SourceConfig) (SourceHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source configuration cannot be nil")
	}

	switch cfg.GetSourceType() {
	case config.SourceTypeSheets:
		return NewSheetsHandler(cfg.Sheets), nil
	case config.SourceTypeExcel:
		return NewExcelHandler(cfg.Excel), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", cfg.Type)
	}
}
