package ingest

import (
	"time"

	"github.com/plantops/crane-dashboard/internal/sources"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/status"
)

// SyncSheetsRequest names the sheets of an ingest. Only the crane sheet is required.
type SyncSheetsRequest struct {
	CranesSpreadsheetID      string `json:"cranesSpreadsheetId"`
	CranesSheetName          string `json:"cranesSheetName,omitempty"`
	FailureSpreadsheetID     string `json:"failureSpreadsheetId,omitempty"`
	FailureSheetName         string `json:"failureSheetName,omitempty"`
	MaintenanceSpreadsheetID string `json:"maintenanceSpreadsheetId,omitempty"`
	MaintenanceSheetName     string `json:"maintenanceSheetName,omitempty"`
}

// complete reports whether all three sheets are named
func (req SyncSheetsRequest) complete() bool {
	return req.CranesSpreadsheetID != "" && req.FailureSpreadsheetID != "" && req.MaintenanceSpreadsheetID != ""
}

// toIngestRequest converts the flat body into an ingest request.
// Optional sheets without a document id are left out.
func (req SyncSheetsRequest) toIngestRequest() pkgsync.IngestRequest {
	out := pkgsync.IngestRequest{
		Cranes: sheetRef(req.CranesSpreadsheetID, req.CranesSheetName),
	}
	if req.FailureSpreadsheetID != "" {
		ref := sheetRef(req.FailureSpreadsheetID, req.FailureSheetName)
		out.Failures = &ref
	}
	if req.MaintenanceSpreadsheetID != "" {
		ref := sheetRef(req.MaintenanceSpreadsheetID, req.MaintenanceSheetName)
		out.Maintenance = &ref
	}
	return out
}

// SheetRequest names a single sheet
type SheetRequest struct {
	SpreadsheetID string `json:"spreadsheetId"`
	SheetName     string `json:"sheetName,omitempty"`
}

func (req SheetRequest) ref() sources.SheetRef {
	return sheetRef(req.SpreadsheetID, req.SheetName)
}

// SyncSheetsResponse is returned by a successful ingest
type SyncSheetsResponse struct {
	Message string `json:"message"`
	*pkgsync.IngestResult
}

// RefreshResponse is returned by POST /api/refresh-data
type RefreshResponse struct {
	Message   string                `json:"message"`
	Timestamp time.Time             `json:"timestamp"`
	Result    *pkgsync.IngestResult `json:"result,omitempty"`
}

// TestSheetsResponse previews a sheet
type TestSheetsResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SpreadsheetID string `json:"spreadsheetId"`
	SheetName     string `json:"sheetName"`
	*pkgsync.ConnectionReport
}

// SyncCraneSpecsResponse is returned by POST /api/sync-crane-specs
type SyncCraneSpecsResponse struct {
	Message string `json:"message"`
	*pkgsync.SpecSyncResult
}

// SyncResponse is returned by the cache endpoints
type SyncResponse struct {
	Message string            `json:"message"`
	Status  status.SyncStatus `json:"status"`
}
