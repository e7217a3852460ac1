package unavailability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWindowCovers(t *testing.T) {
	w := Window{StartDate: date("2025-03-10"), EndDate: date("2025-03-14")}

	assert.True(t, w.Covers(date("2025-03-10")), "start bound is inclusive")
	assert.True(t, w.Covers(date("2025-03-12")))
	assert.True(t, w.Covers(date("2025-03-14")), "end bound is inclusive")
	assert.False(t, w.Covers(date("2025-03-09")))
	assert.False(t, w.Covers(date("2025-03-15")))
}

func TestWindowCoversSingleDay(t *testing.T) {
	w := Window{StartDate: date("2025-03-10"), EndDate: date("2025-03-10")}

	assert.True(t, w.Covers(date("2025-03-10")))
	assert.False(t, w.Covers(date("2025-03-11")))
}

func TestWindowReason(t *testing.T) {
	remarks := "family trip"
	assert.Equal(t, "family trip", Window{Remarks: &remarks}.Reason())

	empty := ""
	assert.Equal(t, "Unavailable", Window{Remarks: &empty}.Reason())
	assert.Equal(t, "Unavailable", Window{}.Reason())
}
