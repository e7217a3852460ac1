package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
)

type fakeEmployeeRepo struct {
	employee.Repository

	deleted []int64
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeScheduleRepo struct {
	schedule.Repository

	entries map[int64]*schedule.Entry
}

func (f *fakeScheduleRepo) ReopenForEmployee(ctx context.Context, employeeID int64) (int64, error) {
	var reopened int64
	for _, entry := range f.entries {
		if entry.EmployeeID == nil || *entry.EmployeeID != employeeID {
			continue
		}
		entry.EmployeeID = nil
		entry.IsOpenShift = true
		entry.Status = schedule.StatusOpen
		reopened++
	}
	return reopened, nil
}

func newTestService(employeeRepo *fakeEmployeeRepo, scheduleRepo *fakeScheduleRepo) *ServiceImpl {
	return &ServiceImpl{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func intp(v int64) *int64 { return &v }

func TestDelete_ReopensAssignedSchedules(t *testing.T) {
	mine := &schedule.Entry{ID: 10, EmployeeID: intp(7), Status: schedule.StatusAssigned}
	theirs := &schedule.Entry{ID: 11, EmployeeID: intp(9), Status: schedule.StatusAssigned}
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{10: mine, 11: theirs}}
	employeeRepo := &fakeEmployeeRepo{}
	svc := newTestService(employeeRepo, scheduleRepo)

	err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, employeeRepo.deleted)

	assert.Nil(t, mine.EmployeeID)
	assert.True(t, mine.IsOpenShift)
	assert.Equal(t, schedule.StatusOpen, mine.Status)
	assert.True(t, mine.Consistent())

	require.NotNil(t, theirs.EmployeeID)
	assert.Equal(t, int64(9), *theirs.EmployeeID)
	assert.Equal(t, schedule.StatusAssigned, theirs.Status)
}

func TestDelete_NoSchedulesStillDeletes(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{}
	svc := newTestService(employeeRepo, &fakeScheduleRepo{})

	err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, employeeRepo.deleted)
}
