package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/request"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
)

// The fakes embed the repository interfaces so only the methods a test
// path touches need real bodies; hitting anything else panics loudly.

type fakeScheduleRepo struct {
	schedule.Repository

	entries        map[int64]*schedule.Entry
	assignResult   bool
	exchangeResult bool

	assigned  [][2]int64
	reopened  []int64
	exchanged [][2]int64
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*schedule.Entry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, schedule.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeScheduleRepo) AssignIfAvailable(ctx context.Context, scheduleID, employeeID int64) (bool, error) {
	f.assigned = append(f.assigned, [2]int64{scheduleID, employeeID})
	if !f.assignResult {
		return false, nil
	}
	// Mirror the conditional UPDATE: a winning assignment also clears the
	// open-shift flag so the row stays consistent.
	if entry, ok := f.entries[scheduleID]; ok {
		entry.EmployeeID = &employeeID
		entry.Status = schedule.StatusAssigned
		entry.IsOpenShift = false
	}
	return true, nil
}

func (f *fakeScheduleRepo) Reopen(ctx context.Context, id int64) error {
	f.reopened = append(f.reopened, id)
	return nil
}

func (f *fakeScheduleRepo) ExchangeAssignees(ctx context.Context, firstID, secondID int64) (bool, error) {
	f.exchanged = append(f.exchanged, [2]int64{firstID, secondID})
	return f.exchangeResult, nil
}

type fakeRequestRepo struct {
	request.Repository

	requests map[int64]*request.Request
	created  []*request.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, req *request.Request) error {
	req.ID = int64(len(f.created) + 1)
	f.created = append(f.created, req)
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*request.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, request.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) GetByIDForUpdate(ctx context.Context, id int64) (*request.Request, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id int64, status request.Status, adminNotes *string) error {
	req, ok := f.requests[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	req.Status = status
	req.AdminNotes = adminNotes
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

func newTestService(scheduleRepo *fakeScheduleRepo, requestRepo *fakeRequestRepo, employeeRepo *fakeEmployeeRepo) *ServiceImpl {
	return &ServiceImpl{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func intp(v int64) *int64 { return &v }

func strp(s string) *string { return &s }

func assignedEntry(id, employeeID int64) *schedule.Entry {
	return &schedule.Entry{ID: id, EmployeeID: &employeeID, Status: schedule.StatusAssigned}
}

func TestSubmit_TimeOff(t *testing.T) {
	requestRepo := &fakeRequestRepo{}
	svc := newTestService(&fakeScheduleRepo{}, requestRepo, &fakeEmployeeRepo{})

	created, err := svc.Submit(context.Background(), request.CreateRequest{
		EmployeeID: 7,
		Type:       string(request.TypeTimeOff),
		StartDate:  strp("2026-09-01"),
		EndDate:    strp("2026-09-03"),
		Remarks:    strp("family trip"),
	})
	require.NoError(t, err)

	assert.Equal(t, request.TypeTimeOff, created.Type)
	assert.Equal(t, request.StatusPending, created.Status)
	require.NotNil(t, created.StartDate)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2026-09-01", created.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-09-03", created.EndDate.Format("2006-01-02"))
	assert.Nil(t, created.SwapState)
	assert.Len(t, requestRepo.created, 1)
}

func TestSubmit_ShiftSwap_ProposesToPartner(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: assignedEntry(10, 7),
		11: assignedEntry(11, 9),
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[int64]*employee.Employee{
		9: {ID: 9, Name: "Dana"},
	}}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, employeeRepo)

	created, err := svc.Submit(context.Background(), request.CreateRequest{
		EmployeeID:         7,
		Type:               string(request.TypeShiftSwap),
		ScheduleID:         intp(10),
		RequestedShiftID:   intp(11),
		SwapWithEmployeeID: intp(9),
		Remarks:            strp("doctor appointment"),
	})
	require.NoError(t, err)

	require.NotNil(t, created.SwapState)
	assert.Equal(t, request.SwapProposed, *created.SwapState)
	assert.Equal(t, request.StatusPending, created.Status)
}

func TestSubmit_ShiftSwap_UnknownPartner(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: assignedEntry(10, 7),
		11: assignedEntry(11, 9),
	}}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Submit(context.Background(), request.CreateRequest{
		EmployeeID:         7,
		Type:               string(request.TypeShiftSwap),
		ScheduleID:         intp(10),
		RequestedShiftID:   intp(11),
		SwapWithEmployeeID: intp(99),
		Remarks:            strp("swap please"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSubmit_MissShift_UnknownSchedule(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Submit(context.Background(), request.CreateRequest{
		EmployeeID: 7,
		Type:       string(request.TypeMissShift),
		ScheduleID: intp(404),
		Remarks:    strp("sick"),
	})
	assert.ErrorIs(t, err, schedule.ErrEntryNotFound)
}

func TestApplyApproval_FillOpenShift_Assigns(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{assignResult: true}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	err := svc.applyApproval(context.Background(), &request.Request{
		EmployeeID:      7,
		Type:            request.TypeFillOpenShift,
		OriginalShiftID: intp(10),
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{10, 7}}, scheduleRepo.assigned)
}

func TestApplyApproval_FillOpenShift_LosesRace(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{assignResult: false}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	err := svc.applyApproval(context.Background(), &request.Request{
		EmployeeID:      7,
		Type:            request.TypeFillOpenShift,
		OriginalShiftID: intp(10),
	})
	assert.ErrorIs(t, err, request.ErrShiftTaken)
}

func TestApplyApproval_MissShift_Reopens(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	err := svc.applyApproval(context.Background(), &request.Request{
		EmployeeID:      7,
		Type:            request.TypeMissShift,
		OriginalShiftID: intp(10),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, scheduleRepo.reopened)
}

func TestApplyApproval_ShiftSwap_RequiresAcceptedState(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	proposed := request.SwapProposed
	err := svc.applyApproval(context.Background(), &request.Request{
		EmployeeID:       7,
		Type:             request.TypeShiftSwap,
		OriginalShiftID:  intp(10),
		RequestedShiftID: intp(11),
		SwapState:        &proposed,
	})
	assert.ErrorIs(t, err, request.ErrSwapNotAccepted)
}

func TestApplyApproval_ShiftSwap_Exchanges(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{exchangeResult: true}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	accepted := request.SwapAccepted
	err := svc.applyApproval(context.Background(), &request.Request{
		EmployeeID:       7,
		Type:             request.TypeShiftSwap,
		OriginalShiftID:  intp(10),
		RequestedShiftID: intp(11),
		SwapState:        &accepted,
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{10, 11}}, scheduleRepo.exchanged)
}

func TestApplyApproval_TimeOff_LeavesScheduleAlone(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	err := svc.applyApproval(context.Background(), &request.Request{
		EmployeeID: 7,
		Type:       request.TypeTimeOff,
	})
	require.NoError(t, err)
	assert.Empty(t, scheduleRepo.assigned)
	assert.Empty(t, scheduleRepo.reopened)
	assert.Empty(t, scheduleRepo.exchanged)
}

func TestResolve_ApproveFill_AssignsAndClearsOpenFlag(t *testing.T) {
	entry := &schedule.Entry{ID: 10, IsOpenShift: true, Status: schedule.StatusRequested}
	scheduleRepo := &fakeScheduleRepo{
		entries:      map[int64]*schedule.Entry{10: entry},
		assignResult: true,
	}
	requestRepo := &fakeRequestRepo{requests: map[int64]*request.Request{
		1: {ID: 1, EmployeeID: 7, Type: request.TypeFillOpenShift, Status: request.StatusPending, OriginalShiftID: intp(10)},
	}}
	svc := newTestService(scheduleRepo, requestRepo, &fakeEmployeeRepo{})

	resolved, err := svc.Resolve(context.Background(), 1, request.ActionApprove, nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, resolved.Status)

	require.NotNil(t, entry.EmployeeID)
	assert.Equal(t, int64(7), *entry.EmployeeID)
	assert.Equal(t, schedule.StatusAssigned, entry.Status)
	assert.False(t, entry.IsOpenShift)
	assert.True(t, entry.Consistent())
}

func TestResolve_SecondDecisionConflicts(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		entries:      map[int64]*schedule.Entry{10: {ID: 10, IsOpenShift: true, Status: schedule.StatusOpen}},
		assignResult: true,
	}
	requestRepo := &fakeRequestRepo{requests: map[int64]*request.Request{
		1: {ID: 1, EmployeeID: 7, Type: request.TypeFillOpenShift, Status: request.StatusPending, OriginalShiftID: intp(10)},
	}}
	svc := newTestService(scheduleRepo, requestRepo, &fakeEmployeeRepo{})

	_, err := svc.Resolve(context.Background(), 1, request.ActionApprove, nil)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), 1, request.ActionApprove, nil)
	assert.ErrorIs(t, err, request.ErrAlreadyProcessed)
	assert.Len(t, scheduleRepo.assigned, 1)
}

func TestResolve_ApproveFill_LostRaceSurfacesConflict(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{assignResult: false}
	requestRepo := &fakeRequestRepo{requests: map[int64]*request.Request{
		1: {ID: 1, EmployeeID: 7, Type: request.TypeFillOpenShift, Status: request.StatusPending, OriginalShiftID: intp(10)},
	}}
	svc := newTestService(scheduleRepo, requestRepo, &fakeEmployeeRepo{})

	_, err := svc.Resolve(context.Background(), 1, request.ActionApprove, nil)
	assert.ErrorIs(t, err, request.ErrShiftTaken)
}

func TestOfferShift_RejectsAssignedEntry(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: assignedEntry(10, 7),
	}}
	svc := newTestService(scheduleRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	_, err := svc.OfferShift(context.Background(), request.OfferShiftRequest{
		ShiftID:    10,
		EmployeeID: 9,
	})
	assert.ErrorIs(t, err, schedule.ErrShiftNotOpen)
}

func TestOfferShift_CreatesPendingOffer(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: {ID: 10, IsOpenShift: true, Status: schedule.StatusOpen},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[int64]*employee.Employee{
		9: {ID: 9, Name: "Dana"},
	}}
	requestRepo := &fakeRequestRepo{}
	svc := newTestService(scheduleRepo, requestRepo, employeeRepo)

	created, err := svc.OfferShift(context.Background(), request.OfferShiftRequest{
		ShiftID:    10,
		EmployeeID: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, request.TypeAdminOfferShift, created.Type)
	assert.Equal(t, request.StatusPending, created.Status)
	require.NotNil(t, created.OriginalShiftID)
	assert.Equal(t, int64(10), *created.OriginalShiftID)
	assert.Len(t, requestRepo.created, 1)
}
