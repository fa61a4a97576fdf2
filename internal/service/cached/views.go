package cached

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/store"
)

const (
	// inspectionInterval is the time between the last completed maintenance and the next inspection
	inspectionInterval = 90 * 24 * time.Hour

	// unknownCause buckets failures without a recorded cause in the heatmap
	unknownCause = "Unknown"

	inspectionDateLayout = "2006-01-02"
)

// GetFailureRecords implements HotPathService.GetFailureRecords.
// Only the unfiltered listing goes through the cache.
func (s *dashboardSvc) GetFailureRecords(
	ctx context.Context,
	query service.FailureRecordQuery,
) ([]store.FailureRecord, error) {
	if query.IsZero() {
		return readThrough(ctx, s, keyFailureRecords, s.store.GetFailureRecords)
	}

	records := s.store.GetFailureRecords()

	if name := normalizeFilter(query.CraneName); name != "" {
		if craneID, ok := s.craneIDByName(name); ok {
			records = filterRecords(records, func(r store.FailureRecord) bool { return r.CraneID == craneID })
		} else {
			slog.DebugContext(ctx, "Unknown crane name in failure record filter, returning all records",
				"crane_name", name)
		}
	}

	if query.StartDate != "" && query.EndDate != "" {
		start, ok := store.ParseDate(query.StartDate)
		if !ok {
			return nil, fmt.Errorf("%w: startDate %q is not a date", service.ErrInvalidInput, query.StartDate)
		}
		end, ok := store.ParseDate(query.EndDate)
		if !ok {
			return nil, fmt.Errorf("%w: endDate %q is not a date", service.ErrInvalidInput, query.EndDate)
		}
		records = filterRecords(records, func(r store.FailureRecord) bool {
			date, ok := store.ParseDate(r.Date)
			return ok && !date.Before(start) && !date.After(end)
		})
	}

	return records, nil
}

// craneIDByName resolves a crane name to the crane id of the first crane carrying it
func (s *dashboardSvc) craneIDByName(name string) (string, bool) {
	for _, c := range s.store.GetCranes() {
		if c.CraneName != nil && *c.CraneName == name {
			return c.CraneID, true
		}
	}
	return "", false
}

// GetCranesWithFailureData implements DashboardService.GetCranesWithFailureData
func (s *dashboardSvc) GetCranesWithFailureData(_ context.Context) ([]service.CraneFailureSummary, error) {
	counts := make(map[string]int)
	for _, r := range s.store.GetFailureRecords() {
		counts[r.CraneID]++
	}

	result := make([]service.CraneFailureSummary, 0, len(counts))
	for _, c := range s.store.GetCranes() {
		count := counts[c.CraneID]
		if count == 0 {
			continue
		}
		result = append(result, service.CraneFailureSummary{
			CraneID:      c.CraneID,
			CraneName:    c.CraneName,
			PlantSection: c.PlantSection,
			FailureCount: count,
			HasData:      true,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FailureCount > result[j].FailureCount
	})
	return result, nil
}

// GetCraneDetails implements DashboardService.GetCraneDetails
func (s *dashboardSvc) GetCraneDetails(
	ctx context.Context,
	query service.CraneDetailsQuery,
) (*service.CraneDetails, error) {
	details := &service.CraneDetails{FailureHeatmap: map[string]int{}}

	name := normalizeFilter(query.CraneName)
	if name == "" {
		return details, nil
	}

	crane, ok := s.findCrane(name, normalizeFilter(query.Factory))
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrCraneNotFound, name)
	}
	details.Crane = &crane

	maintenance := s.store.GetMaintenanceRecordsByCraneID(crane.CraneID)
	daily := filterRecords(maintenance, func(r store.MaintenanceRecord) bool {
		switch r.Type {
		case store.MaintenanceTypeRoutine, store.MaintenanceTypePreventive, store.MaintenanceTypeInspection:
			return true
		default:
			return false
		}
	})
	emergency := s.store.GetFailureRecordsByCraneID(crane.CraneID)

	if query.StartDate != "" && query.EndDate != "" {
		inRange := func(date string) bool { return date >= query.StartDate && date <= query.EndDate }
		daily = filterRecords(daily, func(r store.MaintenanceRecord) bool { return inRange(r.Date) })
		emergency = filterRecords(emergency, func(r store.FailureRecord) bool { return inRange(r.Date) })
	}

	details.DailyRepairCount = len(daily)
	details.EmergencyRepairCount = len(emergency)

	if last, ok := lastCompletedMaintenance(maintenance); ok {
		lastDate := last.record.Date
		details.LastMaintenanceDate = &lastDate

		next := last.date.Add(inspectionInterval)
		nextDate := next.Format(inspectionDateLayout)
		details.NextInspectionDate = &nextDate
		details.DaysUntilInspection = max(0, ceilDays(next.Sub(s.now())))
	}

	for _, r := range daily {
		if r.Duration != nil {
			details.DailyRepairHours += *r.Duration
		}
		switch r.Type {
		case store.MaintenanceTypeRoutine:
			details.DailyRepairBreakdown.Routine++
		case store.MaintenanceTypePreventive:
			details.DailyRepairBreakdown.Preventive++
		case store.MaintenanceTypeInspection:
			details.DailyRepairBreakdown.Inspection++
		}
	}

	for _, r := range emergency {
		if r.Downtime != nil {
			details.EmergencyRepairHours += *r.Downtime
		}
		switch r.FailureType {
		case "hydraulic":
			details.EmergencyRepairBreakdown.Hydraulic++
		case "electrical":
			details.EmergencyRepairBreakdown.Electrical++
		case "mechanical":
			details.EmergencyRepairBreakdown.Mechanical++
		case "structural":
			details.EmergencyRepairBreakdown.Structural++
		}

		cause := unknownCause
		if r.Cause != nil && *r.Cause != "" {
			cause = *r.Cause
		}
		details.FailureHeatmap[cause]++
	}

	slog.DebugContext(ctx, "Crane details computed",
		"crane_id", crane.CraneID,
		"daily_repairs", details.DailyRepairCount,
		"emergency_repairs", details.EmergencyRepairCount)
	return details, nil
}

// findCrane returns the first crane with the given name, restricted to factory when set
func (s *dashboardSvc) findCrane(name, factory string) (store.Crane, bool) {
	for _, c := range s.store.GetCranes() {
		if c.CraneName == nil || *c.CraneName != name {
			continue
		}
		if factory != "" && (c.PlantSection == nil || *c.PlantSection != factory) {
			continue
		}
		return c, true
	}
	return store.Crane{}, false
}

type datedMaintenance struct {
	record store.MaintenanceRecord
	date   time.Time
}

// lastCompletedMaintenance returns the completed record with the latest parseable date
func lastCompletedMaintenance(records []store.MaintenanceRecord) (datedMaintenance, bool) {
	var (
		latest datedMaintenance
		found  bool
	)
	for _, r := range records {
		if r.Status != store.MaintenanceStatusCompleted {
			continue
		}
		date, ok := store.ParseDate(r.Date)
		if !ok {
			continue
		}
		if !found || date.After(latest.date) {
			latest = datedMaintenance{record: r, date: date}
			found = true
		}
	}
	return latest, found
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

func filterRecords[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
