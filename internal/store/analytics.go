package store

import (
	"slices"
)

// monthLabelLayout renders trend buckets as e.g. "Jan 2024"
const monthLabelLayout = "Jan 2006"

// GetDashboardSummary implements RecordStore.GetDashboardSummary
func (s *memStore) GetDashboardSummary() DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := DashboardSummary{TotalCranes: len(s.cranes)}
	for _, c := range s.cranes {
		switch c.Status {
		case CraneStatusOperating:
			summary.OperatingCranes++
		case CraneStatusMaintenance:
			summary.MaintenanceCranes++
		}
		if c.Status == CraneStatusUrgent || c.IsUrgent {
			summary.UrgentCranes++
		}
	}
	return summary
}

// GetMaintenanceStats implements RecordStore.GetMaintenanceStats
func (s *memStore) GetMaintenanceStats() []TypeCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counter orderedCounter
	for _, r := range s.maintenance {
		counter.add(string(r.Type))
	}
	return counter.typeCounts()
}

// GetFailureStats implements RecordStore.GetFailureStats
func (s *memStore) GetFailureStats() []TypeCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counter orderedCounter
	for _, r := range s.failures {
		counter.add(r.FailureType)
	}
	return counter.typeCounts()
}

// GetMonthlyTrends implements RecordStore.GetMonthlyTrends
func (s *memStore) GetMonthlyTrends() []MonthlyTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counter orderedCounter
	for _, r := range s.maintenance {
		date, ok := parseDate(r.Date)
		if !ok {
			continue
		}
		counter.add(date.Format(monthLabelLayout))
	}

	out := make([]MonthlyTrend, 0, len(counter.keys))
	for _, k := range counter.keys {
		out = append(out, MonthlyTrend{Month: k, Count: counter.counts[k]})
	}
	return out
}

// GetUniqueFactories implements RecordStore.GetUniqueFactories
func (s *memStore) GetUniqueFactories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uniqueSorted(s.cranes, func(c Crane) string { return deref(c.PlantSection) })
}

// GetUniqueCraneNames implements RecordStore.GetUniqueCraneNames
func (s *memStore) GetUniqueCraneNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uniqueSorted(s.cranes, func(c Crane) string { return deref(c.CraneName) })
}

// GetCraneNamesByFactory implements RecordStore.GetCraneNamesByFactory
func (s *memStore) GetCraneNamesByFactory(factory string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uniqueSorted(s.cranes, func(c Crane) string {
		if deref(c.PlantSection) != factory {
			return ""
		}
		return deref(c.CraneName)
	})
}

// orderedCounter counts keys and remembers the order they were first seen in
type orderedCounter struct {
	keys   []string
	counts map[string]int
}

func (o *orderedCounter) add(key string) {
	if o.counts == nil {
		o.counts = make(map[string]int)
	}
	if _, seen := o.counts[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.counts[key]++
}

func (o *orderedCounter) typeCounts() []TypeCount {
	out := make([]TypeCount, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, TypeCount{Type: k, Count: o.counts[k]})
	}
	return out
}

func uniqueSorted(cranes []Crane, value func(Crane) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range cranes {
		v := value(c)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
