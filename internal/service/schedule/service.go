package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/unavailability"
)

type Service interface {
	List(ctx context.Context, filter schedule.Filter) ([]schedule.Entry, error)
	ListOpen(ctx context.Context) ([]schedule.Entry, error)
	Get(ctx context.Context, id int64) (*schedule.Entry, error)
	Create(ctx context.Context, req schedule.CreateEntryRequest) (*schedule.Entry, error)
	Update(ctx context.Context, req schedule.UpdateEntryRequest) (*schedule.Entry, error)
	Delete(ctx context.Context, id int64) error
	Reassign(ctx context.Context, req schedule.ReassignRequest) (*schedule.Entry, error)
	BulkCreate(ctx context.Context, req schedule.BulkCreateRequest) (*schedule.BulkCreateResult, error)
	Export(ctx context.Context) ([]byte, error)
}

type ServiceImpl struct {
	scheduleRepo schedule.Repository
	employeeRepo employee.Repository
	unavailRepo  unavailability.Repository
}

func NewService(scheduleRepo schedule.Repository, employeeRepo employee.Repository, unavailRepo unavailability.Repository) Service {
	return &ServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		unavailRepo:  unavailRepo,
	}
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, filter schedule.Filter) ([]schedule.Entry, error) {
	return s.scheduleRepo.List(ctx, filter)
}

// ListOpen implements Service.
func (s *ServiceImpl) ListOpen(ctx context.Context) ([]schedule.Entry, error) {
	return s.scheduleRepo.ListOpen(ctx)
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64) (*schedule.Entry, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

// Create implements Service. The assignee must exist; open shifts skip the
// lookup because they carry no employee.
func (s *ServiceImpl) Create(ctx context.Context, req schedule.CreateEntryRequest) (*schedule.Entry, error) {
	var employeeName *string
	if !req.IsOpenShift && req.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		employeeName = &emp.Name
	}

	entry := req.NewEntry(employeeName)
	if err := s.scheduleRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req schedule.UpdateEntryRequest) (*schedule.Entry, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	entry.StoreName = req.StoreName
	entry.ShiftName = req.ShiftName
	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime
	if date, ok := parseDate(req.ScheduleDate); ok {
		entry.ScheduleDate = date
	}

	if req.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		entry.EmployeeID = req.EmployeeID
		entry.EmployeeName = &emp.Name
		entry.IsOpenShift = false
		entry.Status = schedule.StatusAssigned
	} else {
		entry.EmployeeID = nil
		entry.EmployeeName = nil
		entry.IsOpenShift = true
		entry.Status = schedule.StatusOpen
	}

	if err := s.scheduleRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.scheduleRepo.Delete(ctx, id)
}

// Reassign implements Service.
func (s *ServiceImpl) Reassign(ctx context.Context, req schedule.ReassignRequest) (*schedule.Entry, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.NewEmployeeID); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Reassign(ctx, req.ScheduleID, req.NewEmployeeID); err != nil {
		return nil, err
	}

	return s.scheduleRepo.GetByID(ctx, req.ScheduleID)
}

// BulkCreate implements Service. It expands the weekday/month pattern into
// candidate dates, skips dates the employee is unavailable, and inserts the
// rest one by one. Partial success is expected and reported per date.
func (s *ServiceImpl) BulkCreate(ctx context.Context, req schedule.BulkCreateRequest) (*schedule.BulkCreateResult, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	windows, err := s.unavailRepo.ListForEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("list unavailability: %w", err)
	}

	dates := schedule.DatesMatchingWeekday(req.Year, time.Month(req.Month), time.Weekday(req.DayOfWeek))
	result := &schedule.BulkCreateResult{Candidates: len(dates)}

	for _, date := range dates {
		if reason, blocked := blockedBy(windows, date); blocked {
			result.Skipped = append(result.Skipped, schedule.BulkSkip{
				Date:   date.Format("2006-01-02"),
				Reason: reason,
			})
			continue
		}

		entry := schedule.Entry{
			EmployeeID:   &req.EmployeeID,
			EmployeeName: &emp.Name,
			StoreName:    req.StoreName,
			ShiftName:    req.ShiftName,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			ScheduleDate: date,
			Status:       schedule.StatusAssigned,
		}
		if err := s.scheduleRepo.Create(ctx, &entry); err != nil {
			result.Skipped = append(result.Skipped, schedule.BulkSkip{
				Date:   date.Format("2006-01-02"),
				Reason: err.Error(),
			})
			continue
		}

		result.Created = append(result.Created, date.Format("2006-01-02"))
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func blockedBy(windows []unavailability.Window, date time.Time) (string, bool) {
	for _, w := range windows {
		if w.Covers(date) {
			return w.Reason(), true
		}
	}
	return "", false
}

func parseDate(s string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
