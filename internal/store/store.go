// Package store provides the authoritative in-memory record store for cranes,
// maintenance records, failure records and alerts, together with the analytics
// derived from them.
package store

import (
	"errors"
)

var (
	// ErrMissingCraneID is returned when a crane is created without a crane id
	ErrMissingCraneID = errors.New("crane id is required")
	// ErrDuplicateCraneID is returned when a crane id is already taken
	ErrDuplicateCraneID = errors.New("crane id already exists")
	// ErrCraneNotFound is returned when no crane has the given numeric id
	ErrCraneNotFound = errors.New("crane not found")
)

// RecordStore defines the operations of the crane record store.
// Every method returns copies; callers never hold references into the store.
type RecordStore interface {
	// GetCranes returns all cranes
	GetCranes() []Crane
	// GetCrane returns the crane with the given numeric id
	GetCrane(id int) (Crane, bool)
	// GetCraneByCraneID returns the crane with the given crane id
	GetCraneByCraneID(craneID string) (Crane, bool)
	// GetCranesByFactoryAndName filters cranes by plant section and name; empty filters match all
	GetCranesByFactoryAndName(factory, craneName string) []Crane
	// CreateCrane stores a new crane and returns it
	CreateCrane(in CraneInput) (Crane, error)
	// UpdateCrane merges the non-nil fields of patch onto the crane with the given id.
	// A crane id change to an id held by another crane fails with ErrDuplicateCraneID.
	UpdateCrane(id int, patch CraneUpdate) (Crane, error)

	// GetMaintenanceRecords returns all maintenance records
	GetMaintenanceRecords() []MaintenanceRecord
	// GetMaintenanceRecord returns the maintenance record with the given id
	GetMaintenanceRecord(id int) (MaintenanceRecord, bool)
	// GetMaintenanceRecordsByCraneID returns the maintenance records of one crane
	GetMaintenanceRecordsByCraneID(craneID string) []MaintenanceRecord
	// CreateMaintenanceRecord stores a new maintenance record and returns it
	CreateMaintenanceRecord(in MaintenanceRecordInput) MaintenanceRecord

	// GetFailureRecords returns all failure records
	GetFailureRecords() []FailureRecord
	// GetFailureRecord returns the failure record with the given id
	GetFailureRecord(id int) (FailureRecord, bool)
	// GetFailureRecordsByCraneID returns the failure records of one crane
	GetFailureRecordsByCraneID(craneID string) []FailureRecord
	// CreateFailureRecord stores a new failure record and returns it
	CreateFailureRecord(in FailureRecordInput) FailureRecord

	// GetAlerts returns all alerts
	GetAlerts() []Alert
	// GetActiveAlerts returns the alerts that are still active
	GetActiveAlerts() []Alert
	// CreateAlert stores a new alert and returns it
	CreateAlert(in AlertInput) Alert
	// DeactivateAlert marks an alert inactive; unknown ids are ignored
	DeactivateAlert(id int)

	// GetDashboardSummary aggregates crane counts by status
	GetDashboardSummary() DashboardSummary
	// GetMaintenanceStats group-counts maintenance records by type
	GetMaintenanceStats() []TypeCount
	// GetFailureStats group-counts failure records by failure type
	GetFailureStats() []TypeCount
	// GetMonthlyTrends group-counts maintenance records by month
	GetMonthlyTrends() []MonthlyTrend
	// GetUniqueFactories returns the sorted distinct plant sections
	GetUniqueFactories() []string
	// GetUniqueCraneNames returns the sorted distinct crane names
	GetUniqueCraneNames() []string
	// GetCraneNamesByFactory returns the sorted distinct crane names of one plant section
	GetCraneNamesByFactory(factory string) []string

	// SyncDataFromSheets atomically replaces cranes and maintenance records and regenerates alerts
	SyncDataFromSheets(craneRows, maintenanceRows []Row) IngestReport
	// SyncDataset atomically replaces every collection and regenerates alerts.
	// Crane rows repeating an earlier crane id are skipped and counted in the report.
	SyncDataset(ds Dataset) IngestReport
}
