package dashboard

import (
	"context"
	"time"
)

// Repository aggregates counters for the dashboard views. Week bounds are
// passed as an inclusive date range.
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountShiftsBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountShiftsForEmployeeBetween(ctx context.Context, employeeID int64, start, end time.Time) (int64, error)
	CountUnavailabilities(ctx context.Context) (int64, error)
	CountUnavailabilitiesForEmployee(ctx context.Context, employeeID int64) (int64, error)
}
