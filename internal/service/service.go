// Package service provides the business logic behind the crane dashboard API
package service

import (
	"context"
	"errors"

	"github.com/plantops/crane-dashboard/internal/store"
)

var (
	// ErrCraneNotFound is returned when a crane is not found
	ErrCraneNotFound = errors.New("crane not found")
	// ErrMaintenanceRecordNotFound is returned when a maintenance record is not found
	ErrMaintenanceRecordNotFound = errors.New("maintenance record not found")
	// ErrFailureRecordNotFound is returned when a failure record is not found
	ErrFailureRecordNotFound = errors.New("failure record not found")
	// ErrInvalidInput wraps every validation failure of a write
	ErrInvalidInput = errors.New("invalid input")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go DashboardService

// DashboardService defines every operation the HTTP API needs
type DashboardService interface {
	HotPathService

	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// GetCrane returns a crane by numeric id
	GetCrane(ctx context.Context, id int) (store.Crane, error)

	// GetCraneByCraneID returns a crane by its crane id
	GetCraneByCraneID(ctx context.Context, craneID string) (store.Crane, error)

	// GetCranesByFactoryAndName filters cranes; empty filters match everything
	GetCranesByFactoryAndName(ctx context.Context, factory, craneName string) ([]store.Crane, error)

	// CreateCrane validates and stores a new crane
	CreateCrane(ctx context.Context, in store.CraneInput) (store.Crane, error)

	// UpdateCrane merges patch onto an existing crane
	UpdateCrane(ctx context.Context, id int, patch store.CraneUpdate) (store.Crane, error)

	// GetCraneNamesByFactory returns the sorted distinct crane names of one plant section
	GetCraneNamesByFactory(ctx context.Context, factory string) ([]string, error)

	// GetCranesWithFailureData returns the cranes that have failure records, most failures first
	GetCranesWithFailureData(ctx context.Context) ([]CraneFailureSummary, error)

	// GetCraneDetails returns the repair profile of one crane
	GetCraneDetails(ctx context.Context, query CraneDetailsQuery) (*CraneDetails, error)

	// GetMaintenanceRecords returns maintenance records, of one crane when craneID is set
	GetMaintenanceRecords(ctx context.Context, craneID string) ([]store.MaintenanceRecord, error)

	// GetMaintenanceRecord returns a maintenance record by id
	GetMaintenanceRecord(ctx context.Context, id int) (store.MaintenanceRecord, error)

	// CreateMaintenanceRecord validates and stores a maintenance record
	CreateMaintenanceRecord(ctx context.Context, in store.MaintenanceRecordInput) (store.MaintenanceRecord, error)

	// GetFailureRecord returns a failure record by id
	GetFailureRecord(ctx context.Context, id int) (store.FailureRecord, error)

	// CreateFailureRecord validates and stores a failure record
	CreateFailureRecord(ctx context.Context, in store.FailureRecordInput) (store.FailureRecord, error)

	// GetMaintenanceStats group-counts maintenance records by type
	GetMaintenanceStats(ctx context.Context) ([]store.TypeCount, error)

	// GetFailureStats group-counts failure records by failure type
	GetFailureStats(ctx context.Context) ([]store.TypeCount, error)

	// GetMonthlyTrends group-counts maintenance records by month
	GetMonthlyTrends(ctx context.Context) ([]store.MonthlyTrend, error)

	// GetAlerts returns active alerts, or every alert when includeInactive is set
	GetAlerts(ctx context.Context, includeInactive bool) ([]store.Alert, error)

	// CreateAlert validates and stores an alert
	CreateAlert(ctx context.Context, in store.AlertInput) (store.Alert, error)

	// DeactivateAlert marks an alert inactive; unknown ids are ignored
	DeactivateAlert(ctx context.Context, id int) error
}
