package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/unavailability"
)

type fakeScheduleRepo struct {
	schedule.Repository

	created []*schedule.Entry
}

func (f *fakeScheduleRepo) Create(ctx context.Context, entry *schedule.Entry) error {
	entry.ID = int64(len(f.created) + 1)
	f.created = append(f.created, entry)
	return nil
}

type fakeEmployeeRepo struct {
	employee.Repository

	employees map[int64]*employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeUnavailRepo struct {
	unavailability.Repository

	windows []unavailability.Window
}

func (f *fakeUnavailRepo) ListForEmployee(ctx context.Context, employeeID int64) ([]unavailability.Window, error) {
	return f.windows, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestBulkCreate_SkipsUnavailableDates(t *testing.T) {
	remarks := "vacation"
	scheduleRepo := &fakeScheduleRepo{}
	svc := &ServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: &fakeEmployeeRepo{employees: map[int64]*employee.Employee{
			7: {ID: 7, Name: "Daniel Shachar"},
		}},
		unavailRepo: &fakeUnavailRepo{windows: []unavailability.Window{
			{EmployeeID: 7, StartDate: day("2025-03-08"), EndDate: day("2025-03-12"), Remarks: &remarks},
		}},
	}

	// March 2025 has five Mondays; the 10th falls inside the window.
	result, err := svc.BulkCreate(context.Background(), schedule.BulkCreateRequest{
		EmployeeID: 7,
		StoreName:  "Shalom Pizza",
		ShiftName:  "Morning",
		StartTime:  "09:00",
		EndTime:    "17:00",
		DayOfWeek:  1,
		Month:      3,
		Year:       2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Candidates)
	assert.Equal(t, []string{"2025-03-03", "2025-03-17", "2025-03-24", "2025-03-31"}, result.Created)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "2025-03-10", result.Skipped[0].Date)
	assert.Equal(t, "vacation", result.Skipped[0].Reason)
	assert.Equal(t, len(result.Created)+len(result.Skipped), result.Candidates)

	for _, entry := range scheduleRepo.created {
		require.NotNil(t, entry.EmployeeID)
		assert.Equal(t, int64(7), *entry.EmployeeID)
		assert.Equal(t, schedule.StatusAssigned, entry.Status)
		assert.False(t, entry.IsOpenShift)
	}
}

func TestBulkCreate_UnknownEmployee(t *testing.T) {
	svc := &ServiceImpl{
		scheduleRepo: &fakeScheduleRepo{},
		employeeRepo: &fakeEmployeeRepo{},
		unavailRepo:  &fakeUnavailRepo{},
	}

	_, err := svc.BulkCreate(context.Background(), schedule.BulkCreateRequest{
		EmployeeID: 99,
		StoreName:  "Shalom Pizza",
		ShiftName:  "Morning",
		StartTime:  "09:00",
		EndTime:    "17:00",
		DayOfWeek:  1,
		Month:      3,
		Year:       2025,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
