package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncDataFromSheets_ReplacesEverything(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(WithClock(fixedClock(testNow)))

	_, err := s.CreateCrane(CraneInput{CraneID: "OLD-1"})
	require.NoError(t, err)
	_, err = s.CreateCrane(CraneInput{CraneID: "OLD-2"})
	require.NoError(t, err)
	s.CreateMaintenanceRecord(MaintenanceRecordInput{CraneID: "OLD-1", Date: "2024-01-01"})
	s.CreateFailureRecord(FailureRecordInput{CraneID: "OLD-1", Date: "2024-01-01"})
	s.CreateAlert(AlertInput{CraneID: "OLD-1", Type: AlertTypeOverdue})

	report := s.SyncDataFromSheets(
		[]Row{
			{"crane_id": "CR-001", "Status": "maintenance"},
			{"Location": "no id"},
			{"CraneID": "CR-002"},
		},
		[]Row{
			{"crane_id": "CR-001", "date": "2024-03-01"},
			{"crane_id": "CR-002"},
		},
	)

	cranes := s.GetCranes()
	require.Len(t, cranes, 2)
	assert.Equal(t, "CR-001", cranes[0].CraneID)
	assert.Equal(t, CraneStatusMaintenance, cranes[0].Status)
	assert.Equal(t, "CR-002", cranes[1].CraneID)
	assert.Equal(t, CraneStatusOperating, cranes[1].Status)

	// Counters restart after a bulk replace
	assert.Equal(t, 1, cranes[0].ID)
	assert.Equal(t, 2, cranes[1].ID)

	records := s.GetMaintenanceRecords()
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "CR-001", records[0].CraneID)

	assert.Empty(t, s.GetFailureRecords())
	assert.Empty(t, s.GetAlerts())

	_, ok := s.GetCraneByCraneID("OLD-1")
	assert.False(t, ok)

	assert.Equal(t, CollectionReport{
		Accepted: 2,
		Skipped:  1,
		Reasons:  []SkippedRow{{Row: 1, Reason: ReasonMissingCraneID}},
	}, report.Cranes)
	assert.Equal(t, CollectionReport{
		Accepted: 1,
		Skipped:  1,
		Reasons:  []SkippedRow{{Row: 1, Reason: ReasonMissingDate}},
	}, report.Maintenance)
	assert.Equal(t, 3, report.Accepted())
	assert.Equal(t, 2, report.Skipped())
}

func TestSyncDataFromSheets_SecondPassLeavesNothingFromFirst(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	s.SyncDataFromSheets(
		[]Row{{"crane_id": "A"}, {"crane_id": "B"}},
		[]Row{{"crane_id": "A", "date": "2024-01-01"}},
	)
	s.SyncDataFromSheets(
		[]Row{{"crane_id": "C"}},
		nil,
	)

	cranes := s.GetCranes()
	require.Len(t, cranes, 1)
	assert.Equal(t, "C", cranes[0].CraneID)
	assert.Empty(t, s.GetMaintenanceRecords())

	// New cranes continue from the reset counter
	created, err := s.CreateCrane(CraneInput{CraneID: "D"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestSyncDataset_Report(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(WithClock(fixedClock(testNow)))
	report := s.SyncDataset(Dataset{
		Cranes: []Row{
			{"crane_id": "CR-001", "next_maintenance_date": "2024-06-01"},
			{"crane_id": "CR-001"},
			{"crane_id": ""},
		},
		Failures: []Row{
			{"crane_id": "CR-001", "date": "2024-05-01", "failure_type": "electrical"},
			{"date": "2024-05-02"},
			{"crane_id": "CR-001"},
		},
		Maintenance: []Row{
			{"crane_id": "CR-001", "MaintenanceDate": "2024-05-03"},
		},
	})

	assert.Equal(t, 1, report.Cranes.Accepted)
	cranes := s.GetCranes()
	require.Len(t, cranes, 1, "the repeated crane id row is not stored")
	assert.Equal(t, "2024-06-01", *cranes[0].NextMaintenanceDate)
	assert.Equal(t, []SkippedRow{
		{Row: 1, Reason: ReasonDuplicateCraneID},
		{Row: 2, Reason: ReasonMissingCraneID},
	}, report.Cranes.Reasons)

	assert.Equal(t, 1, report.Failures.Accepted)
	assert.Equal(t, []SkippedRow{
		{Row: 1, Reason: ReasonMissingCraneID},
		{Row: 2, Reason: ReasonMissingDate},
	}, report.Failures.Reasons)

	assert.Equal(t, 1, report.Maintenance.Accepted)
	assert.Zero(t, report.Maintenance.Skipped)
	assert.Equal(t, 1, report.AlertsGenerated)

	failures := s.GetFailureRecords()
	require.Len(t, failures, 1)
	assert.Equal(t, "electrical", failures[0].FailureType)
}

func TestCraneInputFromRow_Aliases(t *testing.T) {
	t.Parallel()

	row := Row{
		"설비코드":             " CR-777 ",
		"Plant/Secsion":    "Plant 3",
		"크레인명":             "Overhead",
		"운전방식":             "remote",
		"유무인":              "unmanned",
		"Grade":            "B",
		"IsUrgent":         "TRUE",
		"InspectionCycle":  float64(180),
		"LeadTime\n(Days)": "12.5",
		"Model":            "",
		"model":            "KoneCranes",
	}

	in := craneInputFromRow(row)
	assert.Equal(t, "CR-777", in.CraneID)
	assert.Equal(t, "Plant 3", *in.PlantSection)
	assert.Equal(t, "Overhead", *in.CraneName)
	assert.Equal(t, "remote", *in.DriveType)
	assert.Equal(t, "unmanned", *in.UnmannedOperation)
	assert.Equal(t, "B", *in.Grade)
	assert.True(t, in.IsUrgent)
	assert.Equal(t, 180, *in.InspectionCycle)
	assert.Equal(t, 12, *in.LeadTime)
	assert.Equal(t, "KoneCranes", in.Model)
	assert.Nil(t, in.LastMaintenanceDate)
	assert.Empty(t, in.Status)
}

func TestRowHelpers(t *testing.T) {
	t.Parallel()

	t.Run("rowInt", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			value any
			want  *int
		}{
			{value: "42", want: intPtr(42)},
			{value: "12h", want: intPtr(12)},
			{value: "-3", want: intPtr(-3)},
			{value: float64(7), want: intPtr(7)},
			{value: "n/a", want: nil},
			{value: "", want: nil},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, rowInt(Row{"v": tt.value}, "v"), "%v", tt.value)
		}
	})

	t.Run("rowBool", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rowBool(Row{"v": true}, "v"))
		assert.True(t, rowBool(Row{"v": " True "}, "v"))
		assert.False(t, rowBool(Row{"v": "yes"}, "v"))
		assert.False(t, rowBool(Row{"v": false}, "v"))
		assert.False(t, rowBool(Row{}, "v"))
	})

	t.Run("rowString", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "b", RowString(Row{"a": "  ", "b": "b"}, "a", "b"))
		assert.Equal(t, "1.5", RowString(Row{"a": 1.5}, "a"))
		assert.Equal(t, "", RowString(Row{"a": nil}, "a"))
		assert.Equal(t, "CR-9", CraneIDFromRow(Row{"EquipmentCode": "CR-9"}))
	})
}
