package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/store"
)

func TestCleanSpreadsheetID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare_id", in: "1AbCdEf", want: "1AbCdEf"},
		{name: "edit_url", in: "https://docs.google.com/spreadsheets/d/1AbCdEf/edit#gid=0", want: "1AbCdEf"},
		{name: "edit_suffix_only", in: "1AbCdEf/edit?usp=sharing", want: "1AbCdEf"},
		{name: "view_url", in: "https://docs.google.com/spreadsheets/d/1AbCdEf/view", want: "1AbCdEf"},
		{name: "trailing_slash", in: "1AbCdEf/", want: "1AbCdEf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanSpreadsheetID(tt.in))
		})
	}
}

func TestShapeRows(t *testing.T) {
	t.Parallel()

	sheet, err := shapeRows([][]string{
		{" Crane ID ", "Crane Name", "Grade"},
		{"CR-001", "Gantry A", "A"},
		{"CR-002"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Crane ID", "Crane Name", "Grade"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, store.Row{"Crane ID": "CR-001", "Crane Name": "Gantry A", "Grade": "A"}, sheet.Rows[0])
	assert.Equal(t, store.Row{"Crane ID": "CR-002", "Crane Name": "", "Grade": ""}, sheet.Rows[1])
}

func TestShapeRows_EmptyAndHeaderless(t *testing.T) {
	t.Parallel()

	sheet, err := shapeRows(nil)
	require.NoError(t, err)
	assert.Empty(t, sheet.Headers)
	assert.Empty(t, sheet.Rows)

	_, err = shapeRows([][]string{{}, {"CR-001"}})
	require.ErrorIs(t, err, ErrMissingHeaders)
}

func TestNewSheetRef(t *testing.T) {
	t.Parallel()

	ref := NewSheetRef(config.SheetRefConfig{SpreadsheetID: " 1AbC ", SheetName: " CraneList "})
	assert.Equal(t, SheetRef{SpreadsheetID: "1AbC", SheetName: "CraneList"}, ref)
}
