package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/dashboard"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (d *dashboardRepositoryImpl) count(ctx context.Context, query string, args ...any) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}

	return n, nil
}

// CountEmployees implements dashboard.Repository.
func (d *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`)
}

// CountShiftsBetween implements dashboard.Repository.
func (d *dashboardRepositoryImpl) CountShiftsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM schedules
		WHERE schedule_date BETWEEN $1 AND $2
	`

	return d.count(ctx, query, start, end)
}

// CountShiftsForEmployeeBetween implements dashboard.Repository.
func (d *dashboardRepositoryImpl) CountShiftsForEmployeeBetween(ctx context.Context, employeeID int64, start, end time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM schedules
		WHERE employee_id = $1 AND schedule_date BETWEEN $2 AND $3
	`

	return d.count(ctx, query, employeeID, start, end)
}

// CountUnavailabilities implements dashboard.Repository.
func (d *dashboardRepositoryImpl) CountUnavailabilities(ctx context.Context) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM unavailabilities`)
}

// CountUnavailabilitiesForEmployee implements dashboard.Repository.
func (d *dashboardRepositoryImpl) CountUnavailabilitiesForEmployee(ctx context.Context, employeeID int64) (int64, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM unavailabilities WHERE employee_id = $1`, employeeID)
}
