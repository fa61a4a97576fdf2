package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// memStore implements RecordStore in process memory
type memStore struct {
	mu sync.RWMutex // Protects every field below

	cranes      []Crane
	craneIndex  map[string]int // craneId -> position in cranes
	maintenance []MaintenanceRecord
	failures    []FailureRecord
	alerts      []Alert

	nextCraneID       int
	nextMaintenanceID int
	nextFailureID     int
	nextAlertID       int

	now func() time.Time
}

var _ RecordStore = (*memStore)(nil)

// Option is a functional option for configuring the memory store
type Option func(*memStore)

// WithClock sets the clock used for alert generation and alert timestamps
func WithClock(now func() time.Time) Option {
	return func(s *memStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory record store
func NewMemoryStore(opts ...Option) RecordStore {
	s := &memStore{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetLocked()
	return s
}

// resetLocked drops every collection and restarts the id counters.
// Caller must hold s.mu write lock.
func (s *memStore) resetLocked() {
	s.cranes = nil
	s.craneIndex = make(map[string]int)
	s.maintenance = nil
	s.failures = nil
	s.alerts = nil
	s.nextCraneID = 1
	s.nextMaintenanceID = 1
	s.nextFailureID = 1
	s.nextAlertID = 1
}

// GetCranes implements RecordStore.GetCranes
func (s *memStore) GetCranes() []Crane {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Crane, 0, len(s.cranes))
	for _, c := range s.cranes {
		out = append(out, c.clone())
	}
	return out
}

// GetCrane implements RecordStore.GetCrane
func (s *memStore) GetCrane(id int) (Crane, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.craneByIDLocked(id)
	if !ok {
		return Crane{}, false
	}
	return s.cranes[idx].clone(), true
}

// craneByIDLocked returns the position of a crane by numeric id.
// Ids are dense because cranes are never removed outside a full reset.
func (s *memStore) craneByIDLocked(id int) (int, bool) {
	idx := id - 1
	if idx < 0 || idx >= len(s.cranes) || s.cranes[idx].ID != id {
		return 0, false
	}
	return idx, true
}

// GetCraneByCraneID implements RecordStore.GetCraneByCraneID
func (s *memStore) GetCraneByCraneID(craneID string) (Crane, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.craneIndex[craneID]
	if !ok {
		return Crane{}, false
	}
	return s.cranes[idx].clone(), true
}

// GetCranesByFactoryAndName implements RecordStore.GetCranesByFactoryAndName
func (s *memStore) GetCranesByFactoryAndName(factory, craneName string) []Crane {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Crane, 0)
	for _, c := range s.cranes {
		if factory != "" && deref(c.PlantSection) != factory {
			continue
		}
		if craneName != "" && deref(c.CraneName) != craneName {
			continue
		}
		out = append(out, c.clone())
	}
	return out
}

// CreateCrane implements RecordStore.CreateCrane
func (s *memStore) CreateCrane(in CraneInput) (Crane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCraneLocked(in)
}

// createCraneLocked inserts a crane. Caller must hold s.mu write lock.
func (s *memStore) createCraneLocked(in CraneInput) (Crane, error) {
	craneID := strings.TrimSpace(in.CraneID)
	if craneID == "" {
		return Crane{}, ErrMissingCraneID
	}
	if _, exists := s.craneIndex[craneID]; exists {
		return Crane{}, ErrDuplicateCraneID
	}

	status := in.Status
	if status == "" {
		status = CraneStatusOperating
	}

	c := Crane{
		ID:                      s.nextCraneID,
		CraneID:                 craneID,
		CraneName:               nonEmpty(in.CraneName),
		PlantSection:            nonEmpty(in.PlantSection),
		Status:                  status,
		Location:                in.Location,
		Model:                   in.Model,
		Grade:                   nonEmpty(in.Grade),
		DriveType:               nonEmpty(in.DriveType),
		UnmannedOperation:       nonEmpty(in.UnmannedOperation),
		LastMaintenanceDate:     nonEmpty(in.LastMaintenanceDate),
		NextMaintenanceDate:     nonEmpty(in.NextMaintenanceDate),
		IsUrgent:                in.IsUrgent,
		InstallationDate:        nonEmpty(in.InstallationDate),
		InspectionReferenceDate: nonEmpty(in.InspectionReferenceDate),
		InspectionCycle:         copyPtr(in.InspectionCycle),
		LeadTime:                copyPtr(in.LeadTime),
	}
	s.nextCraneID++

	s.craneIndex[craneID] = len(s.cranes)
	s.cranes = append(s.cranes, c)
	return c.clone(), nil
}

// UpdateCrane implements RecordStore.UpdateCrane
func (s *memStore) UpdateCrane(id int, patch CraneUpdate) (Crane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.craneByIDLocked(id)
	if !ok {
		return Crane{}, ErrCraneNotFound
	}

	c := &s.cranes[idx]
	if patch.CraneID != nil {
		craneID := strings.TrimSpace(*patch.CraneID)
		if craneID == "" {
			return Crane{}, ErrMissingCraneID
		}
		if craneID != c.CraneID {
			if _, taken := s.craneIndex[craneID]; taken {
				return Crane{}, ErrDuplicateCraneID
			}
			delete(s.craneIndex, c.CraneID)
			c.CraneID = craneID
			s.craneIndex[craneID] = idx
		}
	}
	mergeString(&c.CraneName, patch.CraneName)
	mergeString(&c.PlantSection, patch.PlantSection)
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Location != nil {
		c.Location = *patch.Location
	}
	if patch.Model != nil {
		c.Model = *patch.Model
	}
	mergeString(&c.Grade, patch.Grade)
	mergeString(&c.DriveType, patch.DriveType)
	mergeString(&c.UnmannedOperation, patch.UnmannedOperation)
	mergeString(&c.LastMaintenanceDate, patch.LastMaintenanceDate)
	mergeString(&c.NextMaintenanceDate, patch.NextMaintenanceDate)
	if patch.IsUrgent != nil {
		c.IsUrgent = *patch.IsUrgent
	}
	mergeString(&c.InstallationDate, patch.InstallationDate)
	mergeString(&c.InspectionReferenceDate, patch.InspectionReferenceDate)
	if patch.InspectionCycle != nil {
		c.InspectionCycle = copyPtr(patch.InspectionCycle)
	}
	if patch.LeadTime != nil {
		c.LeadTime = copyPtr(patch.LeadTime)
	}

	return c.clone(), nil
}

// GetMaintenanceRecords implements RecordStore.GetMaintenanceRecords
func (s *memStore) GetMaintenanceRecords() []MaintenanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MaintenanceRecord, 0, len(s.maintenance))
	for _, r := range s.maintenance {
		out = append(out, r.clone())
	}
	return out
}

// GetMaintenanceRecord implements RecordStore.GetMaintenanceRecord
func (s *memStore) GetMaintenanceRecord(id int) (MaintenanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := id - 1
	if idx < 0 || idx >= len(s.maintenance) {
		return MaintenanceRecord{}, false
	}
	return s.maintenance[idx].clone(), true
}

// GetMaintenanceRecordsByCraneID implements RecordStore.GetMaintenanceRecordsByCraneID
func (s *memStore) GetMaintenanceRecordsByCraneID(craneID string) []MaintenanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MaintenanceRecord, 0)
	for _, r := range s.maintenance {
		if r.CraneID == craneID {
			out = append(out, r.clone())
		}
	}
	return out
}

// CreateMaintenanceRecord implements RecordStore.CreateMaintenanceRecord
func (s *memStore) CreateMaintenanceRecord(in MaintenanceRecordInput) MaintenanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createMaintenanceRecordLocked(in)
}

// createMaintenanceRecordLocked inserts a maintenance record. Caller must hold s.mu write lock.
func (s *memStore) createMaintenanceRecordLocked(in MaintenanceRecordInput) MaintenanceRecord {
	recordType := in.Type
	if recordType == "" {
		recordType = MaintenanceTypeRoutine
	}
	status := in.Status
	if status == "" {
		status = MaintenanceStatusCompleted
	}

	r := MaintenanceRecord{
		ID:               s.nextMaintenanceID,
		CraneID:          in.CraneID,
		Date:             in.Date,
		Type:             recordType,
		Technician:       in.Technician,
		Status:           status,
		Notes:            nonEmpty(in.Notes),
		Duration:         copyPtr(in.Duration),
		Cost:             copyPtr(in.Cost),
		RelatedFailureID: copyPtr(in.RelatedFailureID),
	}
	s.nextMaintenanceID++
	s.maintenance = append(s.maintenance, r)
	return r.clone()
}

// GetFailureRecords implements RecordStore.GetFailureRecords
func (s *memStore) GetFailureRecords() []FailureRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]FailureRecord, 0, len(s.failures))
	for _, r := range s.failures {
		out = append(out, r.clone())
	}
	return out
}

// GetFailureRecord implements RecordStore.GetFailureRecord
func (s *memStore) GetFailureRecord(id int) (FailureRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := id - 1
	if idx < 0 || idx >= len(s.failures) {
		return FailureRecord{}, false
	}
	return s.failures[idx].clone(), true
}

// GetFailureRecordsByCraneID implements RecordStore.GetFailureRecordsByCraneID
func (s *memStore) GetFailureRecordsByCraneID(craneID string) []FailureRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]FailureRecord, 0)
	for _, r := range s.failures {
		if r.CraneID == craneID {
			out = append(out, r.clone())
		}
	}
	return out
}

// CreateFailureRecord implements RecordStore.CreateFailureRecord
func (s *memStore) CreateFailureRecord(in FailureRecordInput) FailureRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createFailureRecordLocked(in)
}

// createFailureRecordLocked inserts a failure record. Caller must hold s.mu write lock.
func (s *memStore) createFailureRecordLocked(in FailureRecordInput) FailureRecord {
	failureType := in.FailureType
	if failureType == "" {
		failureType = DefaultFailureType
	}
	severity := in.Severity
	if severity == "" {
		severity = SeverityMedium
	}

	r := FailureRecord{
		ID:          s.nextFailureID,
		CraneID:     in.CraneID,
		Date:        in.Date,
		FailureType: failureType,
		Description: in.Description,
		Severity:    severity,
		Downtime:    copyPtr(in.Downtime),
		Cause:       nonEmpty(in.Cause),
		ReportedBy:  nonEmpty(in.ReportedBy),
	}
	s.nextFailureID++
	s.failures = append(s.failures, r)
	return r.clone()
}

// GetAlerts implements RecordStore.GetAlerts
func (s *memStore) GetAlerts() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// GetActiveAlerts implements RecordStore.GetActiveAlerts
func (s *memStore) GetActiveAlerts() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// CreateAlert implements RecordStore.CreateAlert
func (s *memStore) CreateAlert(in AlertInput) Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAlertLocked(in)
}

// createAlertLocked inserts an alert. Caller must hold s.mu write lock.
func (s *memStore) createAlertLocked(in AlertInput) Alert {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	createdAt := in.CreatedAt
	if createdAt == "" {
		createdAt = s.now().UTC().Format(time.RFC3339Nano)
	}

	a := Alert{
		ID:        s.nextAlertID,
		CraneID:   in.CraneID,
		Type:      in.Type,
		Message:   in.Message,
		Severity:  in.Severity,
		IsActive:  active,
		CreatedAt: createdAt,
	}
	s.nextAlertID++
	s.alerts = append(s.alerts, a)
	return a
}

// DeactivateAlert implements RecordStore.DeactivateAlert
func (s *memStore) DeactivateAlert(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := id - 1
	if idx < 0 || idx >= len(s.alerts) {
		slog.Debug("Ignoring deactivation of unknown alert", "alert_id", id)
		return
	}
	s.alerts[idx].IsActive = false
}

func (c Crane) clone() Crane {
	out := c
	out.CraneName = copyPtr(c.CraneName)
	out.PlantSection = copyPtr(c.PlantSection)
	out.Grade = copyPtr(c.Grade)
	out.DriveType = copyPtr(c.DriveType)
	out.UnmannedOperation = copyPtr(c.UnmannedOperation)
	out.LastMaintenanceDate = copyPtr(c.LastMaintenanceDate)
	out.NextMaintenanceDate = copyPtr(c.NextMaintenanceDate)
	out.InstallationDate = copyPtr(c.InstallationDate)
	out.InspectionReferenceDate = copyPtr(c.InspectionReferenceDate)
	out.InspectionCycle = copyPtr(c.InspectionCycle)
	out.LeadTime = copyPtr(c.LeadTime)
	return out
}

func (r MaintenanceRecord) clone() MaintenanceRecord {
	out := r
	out.Notes = copyPtr(r.Notes)
	out.Duration = copyPtr(r.Duration)
	out.Cost = copyPtr(r.Cost)
	out.RelatedFailureID = copyPtr(r.RelatedFailureID)
	return out
}

func (r FailureRecord) clone() FailureRecord {
	out := r
	out.Downtime = copyPtr(r.Downtime)
	out.Cause = copyPtr(r.Cause)
	out.ReportedBy = copyPtr(r.ReportedBy)
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// nonEmpty maps nil and blank strings to nil
func nonEmpty(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return copyPtr(p)
}

func mergeString(dst **string, src *string) {
	if src != nil {
		*dst = copyPtr(src)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
