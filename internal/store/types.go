package store

// CraneStatus is the operational status of a crane
type CraneStatus string

const (
	// CraneStatusOperating means the crane is in service
	CraneStatusOperating CraneStatus = "operating"

	// CraneStatusMaintenance means the crane is under maintenance
	CraneStatusMaintenance CraneStatus = "maintenance"

	// CraneStatusUrgent means the crane requires urgent attention
	CraneStatusUrgent CraneStatus = "urgent"
)

// MaintenanceType classifies a maintenance record
type MaintenanceType string

// Maintenance record types
const (
	MaintenanceTypeRoutine    MaintenanceType = "routine"
	MaintenanceTypeEmergency  MaintenanceType = "emergency"
	MaintenanceTypePreventive MaintenanceType = "preventive"
	MaintenanceTypeRepair     MaintenanceType = "repair"
	MaintenanceTypeInspection MaintenanceType = "inspection"
)

// MaintenanceStatus is the progress of a maintenance record
type MaintenanceStatus string

// Maintenance record statuses
const (
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
)

// AlertType is the rule that produced an alert
type AlertType string

// Alert types
const (
	AlertTypeOverdue       AlertType = "overdue"
	AlertTypeDueSoon       AlertType = "due_soon"
	AlertTypeHighFrequency AlertType = "high_frequency"
)

// Severity ranks alerts and failures
type Severity string

// Severities
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const (
	// DefaultFailureType is used when a failure record carries no type
	DefaultFailureType = "mechanical"
)

// Crane is a single piece of lifting equipment
type Crane struct {
	ID                      int         `json:"id"`
	CraneID                 string      `json:"craneId"`
	CraneName               *string     `json:"craneName"`
	PlantSection            *string     `json:"plantSection"`
	Status                  CraneStatus `json:"status"`
	Location                string      `json:"location"`
	Model                   string      `json:"model"`
	Grade                   *string     `json:"grade"`
	DriveType               *string     `json:"driveType"`
	UnmannedOperation       *string     `json:"unmannedOperation"`
	LastMaintenanceDate     *string     `json:"lastMaintenanceDate"`
	NextMaintenanceDate     *string     `json:"nextMaintenanceDate"`
	IsUrgent                bool        `json:"isUrgent"`
	InstallationDate        *string     `json:"installationDate"`
	InspectionReferenceDate *string     `json:"inspectionReferenceDate"`
	InspectionCycle         *int        `json:"inspectionCycle"`
	LeadTime                *int        `json:"leadTime"`
}

// CraneInput carries the fields of a crane to be created
type CraneInput struct {
	CraneID                 string      `json:"craneId"`
	CraneName               *string     `json:"craneName,omitempty"`
	PlantSection            *string     `json:"plantSection,omitempty"`
	Status                  CraneStatus `json:"status,omitempty"`
	Location                string      `json:"location,omitempty"`
	Model                   string      `json:"model,omitempty"`
	Grade                   *string     `json:"grade,omitempty"`
	DriveType               *string     `json:"driveType,omitempty"`
	UnmannedOperation       *string     `json:"unmannedOperation,omitempty"`
	LastMaintenanceDate     *string     `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate     *string     `json:"nextMaintenanceDate,omitempty"`
	IsUrgent                bool        `json:"isUrgent,omitempty"`
	InstallationDate        *string     `json:"installationDate,omitempty"`
	InspectionReferenceDate *string     `json:"inspectionReferenceDate,omitempty"`
	InspectionCycle         *int        `json:"inspectionCycle,omitempty"`
	LeadTime                *int        `json:"leadTime,omitempty"`
}

// CraneUpdate is a partial crane. Nil fields are left untouched.
type CraneUpdate struct {
	CraneID                 *string      `json:"craneId,omitempty"`
	CraneName               *string      `json:"craneName,omitempty"`
	PlantSection            *string      `json:"plantSection,omitempty"`
	Status                  *CraneStatus `json:"status,omitempty"`
	Location                *string      `json:"location,omitempty"`
	Model                   *string      `json:"model,omitempty"`
	Grade                   *string      `json:"grade,omitempty"`
	DriveType               *string      `json:"driveType,omitempty"`
	UnmannedOperation       *string      `json:"unmannedOperation,omitempty"`
	LastMaintenanceDate     *string      `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate     *string      `json:"nextMaintenanceDate,omitempty"`
	IsUrgent                *bool        `json:"isUrgent,omitempty"`
	InstallationDate        *string      `json:"installationDate,omitempty"`
	InspectionReferenceDate *string      `json:"inspectionReferenceDate,omitempty"`
	InspectionCycle         *int         `json:"inspectionCycle,omitempty"`
	LeadTime                *int         `json:"leadTime,omitempty"`
}

// MaintenanceRecord is a single repair or service event for a crane
type MaintenanceRecord struct {
	ID               int               `json:"id"`
	CraneID          string            `json:"craneId"`
	Date             string            `json:"date"`
	Type             MaintenanceType   `json:"type"`
	Technician       string            `json:"technician"`
	Status           MaintenanceStatus `json:"status"`
	Notes            *string           `json:"notes"`
	Duration         *int              `json:"duration"`
	Cost             *int              `json:"cost"`
	RelatedFailureID *int              `json:"relatedFailureId"`
}

// MaintenanceRecordInput carries the fields of a maintenance record to be created
type MaintenanceRecordInput struct {
	CraneID          string            `json:"craneId"`
	Date             string            `json:"date"`
	Type             MaintenanceType   `json:"type,omitempty"`
	Technician       string            `json:"technician,omitempty"`
	Status           MaintenanceStatus `json:"status,omitempty"`
	Notes            *string           `json:"notes,omitempty"`
	Duration         *int              `json:"duration,omitempty"`
	Cost             *int              `json:"cost,omitempty"`
	RelatedFailureID *int              `json:"relatedFailureId,omitempty"`
}

// FailureRecord is a reported breakdown of a crane
type FailureRecord struct {
	ID          int      `json:"id"`
	CraneID     string   `json:"craneId"`
	Date        string   `json:"date"`
	FailureType string   `json:"failureType"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Downtime    *int     `json:"downtime"`
	Cause       *string  `json:"cause"`
	ReportedBy  *string  `json:"reportedBy"`
}

// FailureRecordInput carries the fields of a failure record to be created
type FailureRecordInput struct {
	CraneID     string   `json:"craneId"`
	Date        string   `json:"date"`
	FailureType string   `json:"failureType,omitempty"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
	Downtime    *int     `json:"downtime,omitempty"`
	Cause       *string  `json:"cause,omitempty"`
	ReportedBy  *string  `json:"reportedBy,omitempty"`
}

// Alert is a derived warning about a crane
type Alert struct {
	ID        int       `json:"id"`
	CraneID   string    `json:"craneId"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`
}

// AlertInput carries the fields of an alert to be created.
// IsActive defaults to true when nil.
type AlertInput struct {
	CraneID   string    `json:"craneId"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	IsActive  *bool     `json:"isActive,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
}

// DashboardSummary aggregates crane counts by status
type DashboardSummary struct {
	TotalCranes       int `json:"totalCranes"`
	OperatingCranes   int `json:"operatingCranes"`
	MaintenanceCranes int `json:"maintenanceCranes"`
	UrgentCranes      int `json:"urgentCranes"`
}

// TypeCount is one bucket of a group-count by type
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// MonthlyTrend is the number of maintenance records in one month
type MonthlyTrend struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Row is a loosely typed record produced by an ingestion source.
// Keys are column headers, values are usually strings.
type Row map[string]any

// Dataset is a full set of rows to replace the store contents with
type Dataset struct {
	Cranes      []Row
	Failures    []Row
	Maintenance []Row
}
