package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		start string
		end   string
	}{
		{"wednesday midweek", "2025-03-12", "2025-03-10", "2025-03-16"},
		{"monday is its own start", "2025-03-10", "2025-03-10", "2025-03-16"},
		{"sunday belongs to the prior monday", "2025-03-16", "2025-03-10", "2025-03-16"},
		{"week spanning month boundary", "2025-04-01", "2025-03-31", "2025-04-06"},
		{"week spanning year boundary", "2026-01-02", "2025-12-29", "2026-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.Parse("2006-01-02", tt.in)
			assert.NoError(t, err)

			start, end := WeekBounds(in.Add(13 * time.Hour))
			assert.Equal(t, tt.start, start.Format("2006-01-02"))
			assert.Equal(t, tt.end, end.Format("2006-01-02"))
		})
	}
}
