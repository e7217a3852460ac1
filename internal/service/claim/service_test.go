package claim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/claim"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
)

type fakeClaimRepo struct {
	claim.Repository

	pending bool
	claims  map[int64]*claim.Claim
	created []*claim.Claim
}

func (f *fakeClaimRepo) HasPendingClaim(ctx context.Context, scheduleID, employeeID int64) (bool, error) {
	return f.pending, nil
}

func (f *fakeClaimRepo) Create(ctx context.Context, c *claim.Claim) error {
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return nil
}

func (f *fakeClaimRepo) GetByID(ctx context.Context, id int64) (*claim.Claim, error) {
	c, ok := f.claims[id]
	if !ok {
		return nil, claim.ErrClaimNotFound
	}
	return c, nil
}

func (f *fakeClaimRepo) GetByIDForUpdate(ctx context.Context, id int64) (*claim.Claim, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeClaimRepo) ResolvePending(ctx context.Context, id int64, status claim.Status, adminNotes *string) (bool, error) {
	c, ok := f.claims[id]
	if !ok || c.Status != claim.StatusPending {
		return false, nil
	}
	c.Status = status
	c.AdminNotes = adminNotes
	return true, nil
}

func (f *fakeClaimRepo) RejectSiblings(ctx context.Context, scheduleID, approvedID int64) (int64, error) {
	var rejected int64
	for _, c := range f.claims {
		if c.ScheduleID != scheduleID || c.ID == approvedID || c.Status != claim.StatusPending {
			continue
		}
		note := claim.SiblingRejectionNote
		c.Status = claim.StatusRejected
		c.AdminNotes = &note
		rejected++
	}
	return rejected, nil
}

type fakeScheduleRepo struct {
	schedule.Repository

	entries      map[int64]*schedule.Entry
	assignResult bool
	assigned     [][2]int64
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*schedule.Entry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, schedule.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeScheduleRepo) AssignIfOpen(ctx context.Context, scheduleID, employeeID int64) (bool, error) {
	f.assigned = append(f.assigned, [2]int64{scheduleID, employeeID})
	if !f.assignResult {
		return false, nil
	}
	if entry, ok := f.entries[scheduleID]; ok {
		entry.EmployeeID = &employeeID
		entry.Status = schedule.StatusAssigned
		entry.IsOpenShift = false
	}
	return true, nil
}

func newTestService(claimRepo *fakeClaimRepo, scheduleRepo *fakeScheduleRepo) *ServiceImpl {
	return &ServiceImpl{
		claimRepo:    claimRepo,
		scheduleRepo: scheduleRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func TestSubmit_CreatesPendingClaim(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: {ID: 10, IsOpenShift: true, Status: schedule.StatusOpen},
	}}
	claimRepo := &fakeClaimRepo{}
	svc := &ServiceImpl{claimRepo: claimRepo, scheduleRepo: scheduleRepo}

	remarks := "available that day"
	created, err := svc.Submit(context.Background(), claim.CreateClaimRequest{
		ScheduleID:          10,
		RequesterEmployeeID: 7,
		Remarks:             &remarks,
	})
	require.NoError(t, err)

	assert.Equal(t, claim.StatusPending, created.Status)
	assert.Equal(t, int64(10), created.ScheduleID)
	assert.Equal(t, int64(7), created.RequesterEmployeeID)
	assert.Len(t, claimRepo.created, 1)
}

func TestSubmit_RejectsAssignedEntry(t *testing.T) {
	employeeID := int64(3)
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: {ID: 10, EmployeeID: &employeeID, Status: schedule.StatusAssigned},
	}}
	svc := &ServiceImpl{claimRepo: &fakeClaimRepo{}, scheduleRepo: scheduleRepo}

	_, err := svc.Submit(context.Background(), claim.CreateClaimRequest{
		ScheduleID:          10,
		RequesterEmployeeID: 7,
	})
	assert.ErrorIs(t, err, schedule.ErrShiftNotOpen)
}

func TestSubmit_RejectsDuplicatePendingClaim(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{entries: map[int64]*schedule.Entry{
		10: {ID: 10, IsOpenShift: true, Status: schedule.StatusOpen},
	}}
	svc := &ServiceImpl{claimRepo: &fakeClaimRepo{pending: true}, scheduleRepo: scheduleRepo}

	_, err := svc.Submit(context.Background(), claim.CreateClaimRequest{
		ScheduleID:          10,
		RequesterEmployeeID: 7,
	})
	assert.ErrorIs(t, err, claim.ErrAlreadyClaimed)
}

func TestSubmit_UnknownSchedule(t *testing.T) {
	svc := &ServiceImpl{claimRepo: &fakeClaimRepo{}, scheduleRepo: &fakeScheduleRepo{}}

	_, err := svc.Submit(context.Background(), claim.CreateClaimRequest{
		ScheduleID:          404,
		RequesterEmployeeID: 7,
	})
	assert.ErrorIs(t, err, schedule.ErrEntryNotFound)
}

func TestResolve_ApproveAssignsAndRejectsSiblings(t *testing.T) {
	entry := &schedule.Entry{ID: 10, IsOpenShift: true, Status: schedule.StatusOpen}
	scheduleRepo := &fakeScheduleRepo{
		entries:      map[int64]*schedule.Entry{10: entry},
		assignResult: true,
	}
	claimRepo := &fakeClaimRepo{claims: map[int64]*claim.Claim{
		1: {ID: 1, ScheduleID: 10, RequesterEmployeeID: 7, Status: claim.StatusPending},
		2: {ID: 2, ScheduleID: 10, RequesterEmployeeID: 9, Status: claim.StatusPending},
	}}
	svc := newTestService(claimRepo, scheduleRepo)

	resolved, err := svc.Resolve(context.Background(), 1, true, nil)
	require.NoError(t, err)
	assert.Equal(t, claim.StatusApproved, resolved.Status)

	require.NotNil(t, entry.EmployeeID)
	assert.Equal(t, int64(7), *entry.EmployeeID)
	assert.False(t, entry.IsOpenShift)
	assert.True(t, entry.Consistent())

	sibling := claimRepo.claims[2]
	assert.Equal(t, claim.StatusRejected, sibling.Status)
	require.NotNil(t, sibling.AdminNotes)
	assert.Equal(t, claim.SiblingRejectionNote, *sibling.AdminNotes)
}

func TestResolve_SecondDecisionConflicts(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		entries:      map[int64]*schedule.Entry{10: {ID: 10, IsOpenShift: true, Status: schedule.StatusOpen}},
		assignResult: true,
	}
	claimRepo := &fakeClaimRepo{claims: map[int64]*claim.Claim{
		1: {ID: 1, ScheduleID: 10, RequesterEmployeeID: 7, Status: claim.StatusPending},
	}}
	svc := newTestService(claimRepo, scheduleRepo)

	_, err := svc.Resolve(context.Background(), 1, true, nil)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), 1, true, nil)
	assert.ErrorIs(t, err, claim.ErrClaimNotPending)
	assert.Len(t, scheduleRepo.assigned, 1)
}

func TestResolve_ApproveLostRaceSurfacesConflict(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		entries: map[int64]*schedule.Entry{10: {ID: 10, IsOpenShift: true, Status: schedule.StatusOpen}},
	}
	claimRepo := &fakeClaimRepo{claims: map[int64]*claim.Claim{
		1: {ID: 1, ScheduleID: 10, RequesterEmployeeID: 7, Status: claim.StatusPending},
	}}
	svc := newTestService(claimRepo, scheduleRepo)

	_, err := svc.Resolve(context.Background(), 1, true, nil)
	assert.ErrorIs(t, err, schedule.ErrShiftTaken)
}
