package service

import (
	"github.com/plantops/crane-dashboard/internal/store"
)

// AllFilter is the filter value the dashboard sends to mean "no filter"
const AllFilter = "all"

// FailureRecordQuery filters failure records
type FailureRecordQuery struct {
	// CraneName restricts the result to the crane with this name.
	// Unknown names leave the result unfiltered.
	CraneName string

	// StartDate and EndDate bound the record date, inclusive.
	// Both must be set for the range to apply.
	StartDate string
	EndDate   string
}

// IsZero reports whether the query matches every record
func (q FailureRecordQuery) IsZero() bool {
	return (q.CraneName == "" || q.CraneName == AllFilter) && (q.StartDate == "" || q.EndDate == "")
}

// CraneDetailsQuery selects one crane and an optional date window
type CraneDetailsQuery struct {
	CraneName string
	Factory   string
	StartDate string
	EndDate   string
}

// CraneFailureSummary is one row of the cranes-with-failure-data view
type CraneFailureSummary struct {
	CraneID      string  `json:"craneId"`
	CraneName    *string `json:"craneName"`
	PlantSection *string `json:"plantSection"`
	FailureCount int     `json:"failureCount"`
	HasData      bool    `json:"hasData"`
}

// DailyRepairBreakdown counts scheduled maintenance by type
type DailyRepairBreakdown struct {
	Routine    int `json:"routine"`
	Preventive int `json:"preventive"`
	Inspection int `json:"inspection"`
}

// EmergencyRepairBreakdown counts failures by failure type
type EmergencyRepairBreakdown struct {
	Hydraulic  int `json:"hydraulic"`
	Electrical int `json:"electrical"`
	Mechanical int `json:"mechanical"`
	Structural int `json:"structural"`
}

// CraneDetails is the repair profile of a single crane
type CraneDetails struct {
	Crane                    *store.Crane             `json:"crane"`
	DailyRepairCount         int                      `json:"dailyRepairCount"`
	EmergencyRepairCount     int                      `json:"emergencyRepairCount"`
	LastMaintenanceDate      *string                  `json:"lastMaintenanceDate"`
	NextInspectionDate       *string                  `json:"nextInspectionDate"`
	DaysUntilInspection      int                      `json:"daysUntilInspection"`
	DailyRepairHours         int                      `json:"dailyRepairHours"`
	EmergencyRepairHours     int                      `json:"emergencyRepairHours"`
	DailyRepairBreakdown     DailyRepairBreakdown     `json:"dailyRepairBreakdown"`
	EmergencyRepairBreakdown EmergencyRepairBreakdown `json:"emergencyRepairBreakdown"`
	FailureHeatmap           map[string]int           `json:"failureHeatmap"`
}
