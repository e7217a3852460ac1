package claim

import (
	"context"
	"errors"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/claim"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/metrics"
	"github.com/shalomhq/shiftboard-backend-go/internal/repository/postgresql"
)

type Service interface {
	Submit(ctx context.Context, req claim.CreateClaimRequest) (*claim.Claim, error)
	List(ctx context.Context, filter claim.Filter) ([]claim.Claim, error)
	Get(ctx context.Context, id int64) (*claim.Claim, error)
	// Resolve applies the admin decision; an approval also assigns the
	// schedule entry and rejects every competing pending claim.
	Resolve(ctx context.Context, id int64, approve bool, adminNotes *string) (*claim.Claim, error)
	UpdateNotes(ctx context.Context, id int64, adminNotes *string) (*claim.Claim, error)
}

type ServiceImpl struct {
	claimRepo    claim.Repository
	scheduleRepo schedule.Repository
	inTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, claimRepo claim.Repository, scheduleRepo schedule.Repository) Service {
	return &ServiceImpl{
		claimRepo:    claimRepo,
		scheduleRepo: scheduleRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Submit implements Service.
func (s *ServiceImpl) Submit(ctx context.Context, req claim.CreateClaimRequest) (*claim.Claim, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if !entry.IsOpenShift || entry.EmployeeID != nil {
		return nil, schedule.ErrShiftNotOpen
	}

	pending, err := s.claimRepo.HasPendingClaim(ctx, req.ScheduleID, req.RequesterEmployeeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, claim.ErrAlreadyClaimed
	}

	c := &claim.Claim{
		ScheduleID:          req.ScheduleID,
		RequesterEmployeeID: req.RequesterEmployeeID,
		Status:              claim.StatusPending,
		Remarks:             req.Remarks,
	}
	if err := s.claimRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	metrics.ClaimSubmitted.Inc()

	return c, nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, filter claim.Filter) ([]claim.Claim, error) {
	return s.claimRepo.List(ctx, filter)
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64) (*claim.Claim, error) {
	return s.claimRepo.GetByID(ctx, id)
}

// Resolve implements Service. Arbitration rests on the pending-status
// guard: the first admin decision flips the row, later ones see zero rows
// and fail. An approval that finds the shift already assigned rolls the
// whole transaction back.
func (s *ServiceImpl) Resolve(ctx context.Context, id int64, approve bool, adminNotes *string) (*claim.Claim, error) {
	status := claim.StatusRejected
	if approve {
		status = claim.StatusApproved
	}

	err := s.inTx(ctx, func(txCtx context.Context) error {
		c, err := s.claimRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		resolved, err := s.claimRepo.ResolvePending(txCtx, id, status, adminNotes)
		if err != nil {
			return err
		}
		if !resolved {
			return claim.ErrClaimNotPending
		}

		if !approve {
			return nil
		}

		assigned, err := s.scheduleRepo.AssignIfOpen(txCtx, c.ScheduleID, c.RequesterEmployeeID)
		if err != nil {
			return err
		}
		if !assigned {
			return schedule.ErrShiftTaken
		}

		_, err = s.claimRepo.RejectSiblings(txCtx, c.ScheduleID, id)
		return err
	})
	if err != nil {
		if errors.Is(err, schedule.ErrShiftTaken) {
			metrics.AssignmentConflicts.Inc()
		}
		return nil, err
	}
	metrics.ClaimResolved.WithLabelValues(string(status)).Inc()

	return s.claimRepo.GetByID(ctx, id)
}

// UpdateNotes implements Service.
func (s *ServiceImpl) UpdateNotes(ctx context.Context, id int64, adminNotes *string) (*claim.Claim, error) {
	if err := s.claimRepo.UpdateNotes(ctx, id, adminNotes); err != nil {
		return nil, err
	}
	return s.claimRepo.GetByID(ctx, id)
}
