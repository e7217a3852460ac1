package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intptr(i int64) *int64   { return &i }
func strptr(s string) *string { return &s }

func TestEntryDisplayName(t *testing.T) {
	assigned := Entry{EmployeeName: strptr("Jane Doe")}
	assert.Equal(t, "Jane Doe", assigned.DisplayName())

	open := Entry{}
	assert.Equal(t, "Open Shift", open.DisplayName())
}

func TestEntryConsistent(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected bool
	}{
		{"assigned with employee", Entry{Status: StatusAssigned, EmployeeID: intptr(3)}, true},
		{"assigned without employee", Entry{Status: StatusAssigned}, false},
		{"assigned but still flagged open", Entry{Status: StatusAssigned, EmployeeID: intptr(3), IsOpenShift: true}, false},
		{"open without employee", Entry{Status: StatusOpen, IsOpenShift: true}, true},
		{"open with employee", Entry{Status: StatusOpen, IsOpenShift: true, EmployeeID: intptr(3)}, false},
		{"requested without employee", Entry{Status: StatusRequested, IsOpenShift: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.Consistent())
		})
	}
}

func TestNewEntryNormalization(t *testing.T) {
	t.Run("open shift drops the employee", func(t *testing.T) {
		req := CreateEntryRequest{
			EmployeeID:   intptr(5),
			StoreName:    "Shalom Pizza",
			ShiftName:    "Morning",
			StartTime:    "08:00",
			EndTime:      "16:00",
			ScheduleDate: "2025-03-10",
			IsOpenShift:  true,
		}
		entry := req.NewEntry(strptr("Jane Doe"))

		assert.Nil(t, entry.EmployeeID)
		assert.Nil(t, entry.EmployeeName)
		assert.Equal(t, StatusOpen, entry.Status)
		assert.True(t, entry.Consistent())
	})

	t.Run("assigned entry keeps the employee", func(t *testing.T) {
		req := CreateEntryRequest{
			EmployeeID:   intptr(5),
			StoreName:    "Shalom Pizza",
			ShiftName:    "Morning",
			StartTime:    "08:00",
			EndTime:      "16:00",
			ScheduleDate: "2025-03-10",
		}
		entry := req.NewEntry(strptr("Jane Doe"))

		require.NotNil(t, entry.EmployeeID)
		assert.Equal(t, int64(5), *entry.EmployeeID)
		assert.Equal(t, StatusAssigned, entry.Status)
		assert.Equal(t, "2025-03-10", entry.ScheduleDate.Format("2006-01-02"))
		assert.True(t, entry.Consistent())
	})
}
