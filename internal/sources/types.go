package sources

import (
	"context"
	"errors"
	"strings"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/store"
)

var (
	// ErrSpreadsheetNotFound is returned when the document or sheet does not exist
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	// ErrAccessDenied is returned when the API key may not read the document
	ErrAccessDenied = errors.New("access to spreadsheet denied")
	// ErrBadRequest is returned when the upstream rejects the request
	ErrBadRequest = errors.New("bad spreadsheet request")
	// ErrUpstream is returned for any other upstream failure
	ErrUpstream = errors.New("spreadsheet API error")
	// ErrMissingAPIKey is returned when no Sheets API key is configured
	ErrMissingAPIKey = errors.New("google sheets API key not configured")
	// ErrMissingHeaders is returned when the first row of a sheet is empty
	ErrMissingHeaders = errors.New("sheet has no header row")
	// ErrMissingSpreadsheetID is returned when a sheet reference carries no document
	ErrMissingSpreadsheetID = errors.New("spreadsheet id is required")
)

//go:generate mockgen -destination=mocks/mock_source_handler.go -package=mocks -source=types.go SourceHandler

// SourceHandler reads one sheet of a tabular source
type SourceHandler interface {
	// FetchSheet reads the sheet ref points at
	FetchSheet(ctx context.Context, ref SheetRef) (*Sheet, error)
}

// SheetRef points at one sheet of a spreadsheet or workbook
type SheetRef struct {
	// SpreadsheetID is the Sheets document id or URL, or a workbook path
	SpreadsheetID string `json:"spreadsheetId"`
	// SheetName selects the tab; the first tab when empty
	SheetName string `json:"sheetName,omitempty"`
}

// NewSheetRef converts a configured sheet reference
func NewSheetRef(cfg config.SheetRefConfig) SheetRef {
	return SheetRef{
		SpreadsheetID: strings.TrimSpace(cfg.SpreadsheetID),
		SheetName:     strings.TrimSpace(cfg.SheetName),
	}
}

// Sheet is the content of one sheet
type Sheet struct {
	Headers []string
	Rows    []store.Row
}

// shapeRows turns a cell grid into a Sheet. The first row holds the headers.
func shapeRows(grid [][]string) (*Sheet, error) {
	if len(grid) == 0 {
		return &Sheet{Headers: []string{}, Rows: []store.Row{}}, nil
	}

	headers := make([]string, 0, len(grid[0]))
	for _, h := range grid[0] {
		headers = append(headers, strings.TrimSpace(h))
	}
	if len(headers) == 0 {
		return nil, ErrMissingHeaders
	}

	rows := make([]store.Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(store.Row, len(headers))
		for i, h := range headers {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			row[h] = value
		}
		rows = append(rows, row)
	}
	return &Sheet{Headers: headers, Rows: rows}, nil
}
