package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/plantops/crane-dashboard/internal/store"
)

var (
	craneStatuses       = []store.CraneStatus{store.CraneStatusOperating, store.CraneStatusMaintenance, store.CraneStatusUrgent}
	maintenanceTypes    = []store.MaintenanceType{store.MaintenanceTypeRoutine, store.MaintenanceTypeEmergency, store.MaintenanceTypePreventive, store.MaintenanceTypeRepair, store.MaintenanceTypeInspection}
	maintenanceStatuses = []store.MaintenanceStatus{store.MaintenanceStatusCompleted, store.MaintenanceStatusInProgress, store.MaintenanceStatusScheduled}
	severities          = []store.Severity{store.SeverityLow, store.SeverityMedium, store.SeverityHigh, store.SeverityCritical}
	alertTypes          = []store.AlertType{store.AlertTypeOverdue, store.AlertTypeDueSoon, store.AlertTypeHighFrequency}
)

// ValidateCraneInput checks a crane before it is created
func ValidateCraneInput(in store.CraneInput) error {
	var errs []error
	if strings.TrimSpace(in.CraneID) == "" {
		errs = append(errs, fmt.Errorf("craneId is required"))
	}
	if in.Status != "" && !slices.Contains(craneStatuses, in.Status) {
		errs = append(errs, fmt.Errorf("status must be one of %v, got %q", craneStatuses, in.Status))
	}
	return wrapInvalid(errs)
}

// ValidateMaintenanceRecordInput checks a maintenance record before it is created
func ValidateMaintenanceRecordInput(in store.MaintenanceRecordInput) error {
	var errs []error
	if strings.TrimSpace(in.CraneID) == "" {
		errs = append(errs, fmt.Errorf("craneId is required"))
	}
	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, fmt.Errorf("date is required"))
	}
	if in.Type != "" && !slices.Contains(maintenanceTypes, in.Type) {
		errs = append(errs, fmt.Errorf("type must be one of %v, got %q", maintenanceTypes, in.Type))
	}
	if in.Status != "" && !slices.Contains(maintenanceStatuses, in.Status) {
		errs = append(errs, fmt.Errorf("status must be one of %v, got %q", maintenanceStatuses, in.Status))
	}
	return wrapInvalid(errs)
}

// ValidateFailureRecordInput checks a failure record before it is created
func ValidateFailureRecordInput(in store.FailureRecordInput) error {
	var errs []error
	if strings.TrimSpace(in.CraneID) == "" {
		errs = append(errs, fmt.Errorf("craneId is required"))
	}
	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, fmt.Errorf("date is required"))
	}
	if in.Severity != "" && !slices.Contains(severities, in.Severity) {
		errs = append(errs, fmt.Errorf("severity must be one of %v, got %q", severities, in.Severity))
	}
	return wrapInvalid(errs)
}

// ValidateAlertInput checks an alert before it is created
func ValidateAlertInput(in store.AlertInput) error {
	var errs []error
	if strings.TrimSpace(in.CraneID) == "" {
		errs = append(errs, fmt.Errorf("craneId is required"))
	}
	if !slices.Contains(alertTypes, in.Type) {
		errs = append(errs, fmt.Errorf("type must be one of %v, got %q", alertTypes, in.Type))
	}
	if !slices.Contains(severities, in.Severity) {
		errs = append(errs, fmt.Errorf("severity must be one of %v, got %q", severities, in.Severity))
	}
	return wrapInvalid(errs)
}

func wrapInvalid(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
}
