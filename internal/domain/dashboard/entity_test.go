package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRatePct(t *testing.T) {
	tests := []struct {
		name     string
		shifts   int64
		unavail  int64
		expected float64
	}{
		{"no shifts", 0, 0, 0},
		{"no shifts with unavailability", 0, 9, 0},
		{"no unavailability", 12, 0, 100},
		{"rounds down", 1, 2, 33},
		{"rounds up", 2, 1, 67},
		{"busy week", 118, 7, 94},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FillRatePct(tt.shifts, tt.unavail))
		})
	}
}
