package store

import (
	"fmt"
	"strings"
	"time"
)

const (
	day = 24 * time.Hour

	// overdueCriticalDays is the number of overdue days after which an overdue alert becomes critical
	overdueCriticalDays = 7
	// dueSoonDays is the look-ahead window, inclusive, for due-soon alerts
	dueSoonDays = 3
	// highFrequencyWindow is the trailing window counted for high-frequency alerts
	highFrequencyWindow = 30 * day
	// highFrequencyThreshold is the minimum number of records in the window that raises an alert
	highFrequencyThreshold = 4
)

// dateLayouts are the date formats accepted from spreadsheet cells, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"2006.1.2",
	"2006. 1. 2.",
	"2006. 1. 2",
	"1/2/2006",
}

// parseDate parses a spreadsheet date. Dates without a zone are read as UTC.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate exposes the store's date parsing to other packages
func ParseDate(value string) (time.Time, bool) {
	return parseDate(value)
}

// floorDays returns the whole number of days in d, rounded toward negative infinity
func floorDays(d time.Duration) int {
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

// generateAlertsLocked derives alerts from the current cranes and maintenance records.
// Caller must hold s.mu write lock. Returns the number of alerts created.
func (s *memStore) generateAlertsLocked() int {
	now := s.now()
	createdAt := now.UTC().Format(time.RFC3339Nano)
	windowStart := now.Add(-highFrequencyWindow)

	recent := make(map[string]int)
	for _, r := range s.maintenance {
		if date, ok := parseDate(r.Date); ok && !date.Before(windowStart) {
			recent[r.CraneID]++
		}
	}

	created := 0
	emit := func(in AlertInput) {
		in.CreatedAt = createdAt
		s.createAlertLocked(in)
		created++
	}

	for _, c := range s.cranes {
		if alert, ok := maintenanceDateAlert(c, now); ok {
			emit(alert)
		}

		if count := recent[c.CraneID]; count >= highFrequencyThreshold {
			emit(AlertInput{
				CraneID:  c.CraneID,
				Type:     AlertTypeHighFrequency,
				Message:  fmt.Sprintf("Crane %s has required maintenance %d times this month", c.CraneID, count),
				Severity: SeverityMedium,
			})
		}
	}

	return created
}

// maintenanceDateAlert checks a crane's next maintenance date against now
func maintenanceDateAlert(c Crane, now time.Time) (AlertInput, bool) {
	if c.NextMaintenanceDate == nil {
		return AlertInput{}, false
	}
	next, ok := parseDate(*c.NextMaintenanceDate)
	if !ok {
		return AlertInput{}, false
	}

	if next.Before(now) {
		daysPastDue := floorDays(now.Sub(next))
		severity := SeverityHigh
		if daysPastDue > overdueCriticalDays {
			severity = SeverityCritical
		}
		return AlertInput{
			CraneID:  c.CraneID,
			Type:     AlertTypeOverdue,
			Message:  fmt.Sprintf("Crane %s is %d days overdue for maintenance", c.CraneID, daysPastDue),
			Severity: severity,
		}, true
	}

	daysUntilDue := floorDays(next.Sub(now))
	if daysUntilDue > dueSoonDays {
		return AlertInput{}, false
	}
	return AlertInput{
		CraneID:  c.CraneID,
		Type:     AlertTypeDueSoon,
		Message:  fmt.Sprintf("Crane %s has maintenance due in %d days", c.CraneID, daysUntilDue),
		Severity: SeverityMedium,
	}, true
}
