package dashboard

import (
	"context"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/dashboard"
)

type Service interface {
	AdminStats(ctx context.Context) (*dashboard.AdminStats, error)
	EmployeeStats(ctx context.Context, employeeID int64) (*dashboard.EmployeeStats, error)
}

type ServiceImpl struct {
	dashboardRepo dashboard.Repository

	// now is swapped in tests.
	now func() time.Time
}

func NewService(dashboardRepo dashboard.Repository) Service {
	return &ServiceImpl{dashboardRepo: dashboardRepo, now: time.Now}
}

// AdminStats implements Service.
func (s *ServiceImpl) AdminStats(ctx context.Context) (*dashboard.AdminStats, error) {
	start, end := WeekBounds(s.now())

	totalEmployees, err := s.dashboardRepo.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}
	shifts, err := s.dashboardRepo.CountShiftsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	unavail, err := s.dashboardRepo.CountUnavailabilities(ctx)
	if err != nil {
		return nil, err
	}

	return &dashboard.AdminStats{
		TotalEmployees:      totalEmployees,
		TotalShiftsThisWeek: shifts,
		FillRatePct:         dashboard.FillRatePct(shifts, unavail),
		UnavailCount:        unavail,
	}, nil
}

// EmployeeStats implements Service.
func (s *ServiceImpl) EmployeeStats(ctx context.Context, employeeID int64) (*dashboard.EmployeeStats, error) {
	start, end := WeekBounds(s.now())

	shifts, err := s.dashboardRepo.CountShiftsForEmployeeBetween(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	unavail, err := s.dashboardRepo.CountUnavailabilitiesForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &dashboard.EmployeeStats{
		UserShiftsThisWeek: shifts,
		UserUnavailCount:   unavail,
	}, nil
}

// WeekBounds returns the Monday and Sunday of the ISO week containing t,
// truncated to dates.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	start := t.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}
