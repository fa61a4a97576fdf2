package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Collection names used in ingest reports
const (
	CollectionCranes      = "cranes"
	CollectionMaintenance = "maintenance"
	CollectionFailures    = "failures"
)

// Skip reasons reported for rejected rows
const (
	ReasonMissingCraneID   = "missing crane id"
	ReasonMissingDate      = "missing date"
	ReasonDuplicateCraneID = "duplicate crane id"
)

// Row keys accepted for each field, first non-empty value wins
var (
	craneIDKeys       = []string{"crane_id", "CraneID", "CraneId", "craneId", "EquipmentCode", "equipment_code", "설비코드"}
	plantSectionKeys  = []string{"Plant/Secsion", "Plant/Section", "PlantSection", "plant_section", "Factory", "공장"}
	craneNameKeys     = []string{"CraneName", "crane_name", "Name", "name", "크레인명"}
	statusKeys        = []string{"Status", "status"}
	locationKeys      = []string{"Location", "location"}
	modelKeys         = []string{"Model", "model"}
	gradeKeys         = []string{"Grade", "grade"}
	driveTypeKeys     = []string{"DriveType", "drive_type", "운전방식"}
	unmannedKeys      = []string{"UnmannedOperation", "unmanned_operation", "유무인"}
	lastMaintKeys     = []string{"LastMaintenanceDate", "last_maintenance_date"}
	nextMaintKeys     = []string{"NextMaintenanceDate", "next_maintenance_date"}
	urgentKeys        = []string{"IsUrgent", "is_urgent"}
	installationKeys  = []string{"InstallationDate", "installation_date"}
	inspectionRefKeys = []string{"InspectionReferenceDate", "inspection_reference_date"}
	inspectionCycKeys = []string{"InspectionCycle", "inspection_cycle"}
	leadTimeKeys      = []string{"LeadTime\n(Days)", "LeadTime", "lead_time"}

	maintenanceDateKeys = []string{"Date", "date", "MaintenanceDate", "maintenance_date"}
	typeKeys            = []string{"Type", "type"}
	technicianKeys      = []string{"Technician", "technician"}
	notesKeys           = []string{"Notes", "notes"}
	durationKeys        = []string{"Duration", "duration"}
	costKeys            = []string{"Cost", "cost"}
	relatedFailureKeys  = []string{"RelatedFailureId", "related_failure_id"}

	failureDateKeys = []string{"Date", "date", "FailureDate", "failure_date"}
	failureTypeKeys = []string{"FailureType", "failure_type"}
	descriptionKeys = []string{"Description", "description"}
	severityKeys    = []string{"Severity", "severity"}
	downtimeKeys    = []string{"Downtime", "downtime"}
	causeKeys       = []string{"Cause", "cause"}
	reportedByKeys  = []string{"ReportedBy", "reported_by"}
)

// SkippedRow describes one row rejected during a bulk replace
type SkippedRow struct {
	// Row is the zero-based index of the row in its input batch
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// CollectionReport summarises the ingest of one collection
type CollectionReport struct {
	Accepted int          `json:"accepted"`
	Skipped  int          `json:"skipped"`
	Reasons  []SkippedRow `json:"reasons,omitempty"`
}

func (r *CollectionReport) skip(row int, reason string) {
	r.Skipped++
	r.Reasons = append(r.Reasons, SkippedRow{Row: row, Reason: reason})
}

// IngestReport is the outcome of a bulk replace
type IngestReport struct {
	Cranes          CollectionReport `json:"cranes"`
	Maintenance     CollectionReport `json:"maintenance"`
	Failures        CollectionReport `json:"failures"`
	AlertsGenerated int              `json:"alertsGenerated"`
}

// Accepted returns the number of rows stored across all collections
func (r IngestReport) Accepted() int {
	return r.Cranes.Accepted + r.Maintenance.Accepted + r.Failures.Accepted
}

// Skipped returns the number of rows rejected across all collections
func (r IngestReport) Skipped() int {
	return r.Cranes.Skipped + r.Maintenance.Skipped + r.Failures.Skipped
}

// SyncDataFromSheets implements RecordStore.SyncDataFromSheets
func (s *memStore) SyncDataFromSheets(craneRows, maintenanceRows []Row) IngestReport {
	return s.SyncDataset(Dataset{Cranes: craneRows, Maintenance: maintenanceRows})
}

// SyncDataset implements RecordStore.SyncDataset.
// The whole replacement happens under one write lock. Crane ids stay unique:
// a crane row repeating an earlier row's id is skipped with ReasonDuplicateCraneID,
// so GetCranes can return fewer cranes than there were rows carrying an id.
func (s *memStore) SyncDataset(ds Dataset) IngestReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()

	var report IngestReport
	for i, row := range ds.Cranes {
		if _, err := s.createCraneLocked(craneInputFromRow(row)); err != nil {
			reason := ReasonMissingCraneID
			if errors.Is(err, ErrDuplicateCraneID) {
				reason = ReasonDuplicateCraneID
			}
			report.Cranes.skip(i, reason)
			continue
		}
		report.Cranes.Accepted++
	}

	for i, row := range ds.Failures {
		in, reason := failureInputFromRow(row)
		if reason != "" {
			report.Failures.skip(i, reason)
			continue
		}
		s.createFailureRecordLocked(in)
		report.Failures.Accepted++
	}

	for i, row := range ds.Maintenance {
		in, reason := maintenanceInputFromRow(row)
		if reason != "" {
			report.Maintenance.skip(i, reason)
			continue
		}
		s.createMaintenanceRecordLocked(in)
		report.Maintenance.Accepted++
	}

	report.AlertsGenerated = s.generateAlertsLocked()

	slog.Info("Replaced record store contents",
		"cranes", report.Cranes.Accepted,
		"maintenance_records", report.Maintenance.Accepted,
		"failure_records", report.Failures.Accepted,
		"skipped", report.Skipped(),
		"alerts", report.AlertsGenerated)

	return report
}

func craneInputFromRow(row Row) CraneInput {
	return CraneInput{
		CraneID:                 rowString(row, craneIDKeys...),
		CraneName:               rowOptString(row, craneNameKeys...),
		PlantSection:            rowOptString(row, plantSectionKeys...),
		Status:                  CraneStatus(rowString(row, statusKeys...)),
		Location:                rowString(row, locationKeys...),
		Model:                   rowString(row, modelKeys...),
		Grade:                   rowOptString(row, gradeKeys...),
		DriveType:               rowOptString(row, driveTypeKeys...),
		UnmannedOperation:       rowOptString(row, unmannedKeys...),
		LastMaintenanceDate:     rowOptString(row, lastMaintKeys...),
		NextMaintenanceDate:     rowOptString(row, nextMaintKeys...),
		IsUrgent:                rowBool(row, urgentKeys...),
		InstallationDate:        rowOptString(row, installationKeys...),
		InspectionReferenceDate: rowOptString(row, inspectionRefKeys...),
		InspectionCycle:         rowInt(row, inspectionCycKeys...),
		LeadTime:                rowInt(row, leadTimeKeys...),
	}
}

func maintenanceInputFromRow(row Row) (MaintenanceRecordInput, string) {
	craneID := rowString(row, craneIDKeys...)
	if craneID == "" {
		return MaintenanceRecordInput{}, ReasonMissingCraneID
	}
	date := rowString(row, maintenanceDateKeys...)
	if date == "" {
		return MaintenanceRecordInput{}, ReasonMissingDate
	}
	return MaintenanceRecordInput{
		CraneID:          craneID,
		Date:             date,
		Type:             MaintenanceType(rowString(row, typeKeys...)),
		Technician:       rowString(row, technicianKeys...),
		Status:           MaintenanceStatus(rowString(row, statusKeys...)),
		Notes:            rowOptString(row, notesKeys...),
		Duration:         rowInt(row, durationKeys...),
		Cost:             rowInt(row, costKeys...),
		RelatedFailureID: rowInt(row, relatedFailureKeys...),
	}, ""
}

func failureInputFromRow(row Row) (FailureRecordInput, string) {
	craneID := rowString(row, craneIDKeys...)
	if craneID == "" {
		return FailureRecordInput{}, ReasonMissingCraneID
	}
	date := rowString(row, failureDateKeys...)
	if date == "" {
		return FailureRecordInput{}, ReasonMissingDate
	}
	return FailureRecordInput{
		CraneID:     craneID,
		Date:        date,
		FailureType: rowString(row, failureTypeKeys...),
		Description: rowString(row, descriptionKeys...),
		Severity:    Severity(rowString(row, severityKeys...)),
		Downtime:    rowInt(row, downtimeKeys...),
		Cause:       rowOptString(row, causeKeys...),
		ReportedBy:  rowOptString(row, reportedByKeys...),
	}, ""
}

// RowString returns the first non-empty value stored under any of keys
func RowString(row Row, keys ...string) string {
	return rowString(row, keys...)
}

// CraneIDFromRow returns the crane id of a row, trying every known column alias
func CraneIDFromRow(row Row) string {
	return rowString(row, craneIDKeys...)
}

func rowString(row Row, keys ...string) string {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch tv := v.(type) {
		case string:
			s = tv
		case float64:
			s = strconv.FormatFloat(tv, 'f', -1, 64)
		default:
			s = fmt.Sprint(tv)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func rowOptString(row Row, keys ...string) *string {
	s := rowString(row, keys...)
	if s == "" {
		return nil
	}
	return &s
}

func rowBool(row Row, keys ...string) bool {
	for _, k := range keys {
		switch v := row[k].(type) {
		case bool:
			if v {
				return true
			}
		case string:
			if strings.EqualFold(strings.TrimSpace(v), "true") {
				return true
			}
		}
	}
	return false
}

// rowInt reads the leading integer of a cell, so "12.5" and "12h" both yield 12
func rowInt(row Row, keys ...string) *int {
	s := rowString(row, keys...)
	if s == "" {
		return nil
	}
	end := 0
	if s[0] == '-' || s[0] == '+' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
