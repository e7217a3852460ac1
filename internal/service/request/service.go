package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/request"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/metrics"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"
	"github.com/shalomhq/shiftboard-backend-go/internal/repository/postgresql"
)

type Service interface {
	Submit(ctx context.Context, req request.CreateRequest) (*request.Request, error)
	List(ctx context.Context, filter request.Filter) ([]request.Request, error)
	Get(ctx context.Context, id int64) (*request.Request, error)
	// Resolve applies an admin decision to a pending request inside one
	// transaction, dispatching the type-specific schedule mutation on
	// approval.
	Resolve(ctx context.Context, id int64, action request.Action, adminNotes *string) (*request.Request, error)
	// RespondToSwap records the swap partner's accept/decline.
	RespondToSwap(ctx context.Context, id, responderID int64, accept bool) (*request.Request, error)
	// OfferShift lets an admin offer an open shift to a specific employee.
	OfferShift(ctx context.Context, req request.OfferShiftRequest) (*request.Request, error)
	// ClaimOpenShift files a fill_open_shift request and marks the
	// schedule entry as requested.
	ClaimOpenShift(ctx context.Context, scheduleID, employeeID int64, remarks *string) (*request.Request, error)
}

type ServiceImpl struct {
	requestRepo  request.Repository
	scheduleRepo schedule.Repository
	employeeRepo employee.Repository
	inTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, requestRepo request.Repository, scheduleRepo schedule.Repository, employeeRepo employee.Repository) Service {
	return &ServiceImpl{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Submit implements Service.
func (s *ServiceImpl) Submit(ctx context.Context, req request.CreateRequest) (*request.Request, error) {
	entity := &request.Request{
		EmployeeID:         req.EmployeeID,
		Type:               request.Type(req.Type),
		Status:             request.StatusPending,
		RequestDate:        time.Now(),
		OriginalShiftID:    req.ScheduleID,
		RequestedShiftID:   req.RequestedShiftID,
		SwapWithEmployeeID: req.SwapWithEmployeeID,
		Remarks:            req.Remarks,
	}

	switch entity.Type {
	case request.TypeTimeOff:
		start, _ := validator.IsValidDate(*req.StartDate)
		end, _ := validator.IsValidDate(*req.EndDate)
		entity.StartDate = &start
		entity.EndDate = &end
	case request.TypeMissShift:
		if _, err := s.scheduleRepo.GetByID(ctx, *req.ScheduleID); err != nil {
			return nil, err
		}
	case request.TypeShiftSwap:
		if _, err := s.scheduleRepo.GetByID(ctx, *req.ScheduleID); err != nil {
			return nil, err
		}
		if _, err := s.scheduleRepo.GetByID(ctx, *req.RequestedShiftID); err != nil {
			return nil, err
		}
		if _, err := s.employeeRepo.GetByID(ctx, *req.SwapWithEmployeeID); err != nil {
			return nil, err
		}
		proposed := request.SwapProposed
		entity.SwapState = &proposed
	}

	if err := s.requestRepo.Create(ctx, entity); err != nil {
		return nil, err
	}
	metrics.RequestSubmitted.WithLabelValues(string(entity.Type)).Inc()

	return entity, nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, filter request.Filter) ([]request.Request, error) {
	return s.requestRepo.List(ctx, filter)
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64) (*request.Request, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// Resolve implements Service. The request row is locked first so
// concurrent admins serialize; the status guard then makes the second
// decision fail with a conflict instead of double-applying.
func (s *ServiceImpl) Resolve(ctx context.Context, id int64, action request.Action, adminNotes *string) (*request.Request, error) {
	err := s.inTx(ctx, func(txCtx context.Context) error {
		req, err := s.requestRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !req.CanResolve() {
			return request.ErrAlreadyProcessed
		}

		if err := s.requestRepo.UpdateStatus(txCtx, id, action.Resolved(), adminNotes); err != nil {
			return err
		}

		if action == request.ActionApprove {
			if err := s.applyApproval(txCtx, req); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, request.ErrShiftTaken) {
			metrics.AssignmentConflicts.Inc()
		}
		return nil, err
	}

	resolved, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.RequestResolved.WithLabelValues(string(resolved.Type), string(resolved.Status)).Inc()

	return resolved, nil
}

// applyApproval dispatches the schedule mutation for an approved request.
// Runs inside the resolve transaction.
func (s *ServiceImpl) applyApproval(ctx context.Context, req *request.Request) error {
	switch req.Type {
	case request.TypeFillOpenShift, request.TypeAdminOfferShift:
		if req.OriginalShiftID == nil {
			return request.ErrShiftTaken
		}
		assigned, err := s.scheduleRepo.AssignIfAvailable(ctx, *req.OriginalShiftID, req.EmployeeID)
		if err != nil {
			return err
		}
		if !assigned {
			return request.ErrShiftTaken
		}
		return nil

	case request.TypeMissShift:
		if req.OriginalShiftID == nil {
			return nil
		}
		return s.scheduleRepo.Reopen(ctx, *req.OriginalShiftID)

	case request.TypeShiftSwap:
		if !req.SwapReady() {
			return request.ErrSwapNotAccepted
		}
		if req.OriginalShiftID == nil || req.RequestedShiftID == nil {
			return request.ErrShiftTaken
		}
		swapped, err := s.scheduleRepo.ExchangeAssignees(ctx, *req.OriginalShiftID, *req.RequestedShiftID)
		if err != nil {
			return err
		}
		if !swapped {
			return request.ErrShiftTaken
		}
		return nil

	case request.TypeTimeOff:
		// Advisory only; the schedule is untouched.
		return nil
	}

	return fmt.Errorf("%w: %s", request.ErrInvalidType, req.Type)
}

// RespondToSwap implements Service. Declining also rejects the request so
// it never reaches the admin queue.
func (s *ServiceImpl) RespondToSwap(ctx context.Context, id, responderID int64, accept bool) (*request.Request, error) {
	err := s.inTx(ctx, func(txCtx context.Context) error {
		req, err := s.requestRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if req.Type != request.TypeShiftSwap {
			return request.ErrSwapNotOpen
		}
		if req.SwapWithEmployeeID == nil || *req.SwapWithEmployeeID != responderID {
			return request.ErrNotSwapPartner
		}
		if !req.CanRespondToSwap() {
			return request.ErrSwapNotOpen
		}

		if accept {
			return s.requestRepo.SetSwapState(txCtx, id, request.SwapAccepted)
		}

		if err := s.requestRepo.SetSwapState(txCtx, id, request.SwapDeclined); err != nil {
			return err
		}
		note := "Swap declined by the requested employee."
		return s.requestRepo.UpdateStatus(txCtx, id, request.StatusRejected, &note)
	})
	if err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, id)
}

// OfferShift implements Service.
func (s *ServiceImpl) OfferShift(ctx context.Context, req request.OfferShiftRequest) (*request.Request, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	if !entry.IsOpenShift || entry.EmployeeID != nil {
		return nil, schedule.ErrShiftNotOpen
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	entity := &request.Request{
		EmployeeID:      req.EmployeeID,
		Type:            request.TypeAdminOfferShift,
		Status:          request.StatusPending,
		RequestDate:     time.Now(),
		OriginalShiftID: &req.ShiftID,
		Remarks:         req.Remarks,
	}
	if err := s.requestRepo.Create(ctx, entity); err != nil {
		return nil, err
	}
	metrics.RequestSubmitted.WithLabelValues(string(entity.Type)).Inc()

	return entity, nil
}

// ClaimOpenShift implements Service. The entry must still be open and
// unassigned; the claim flips it to requested so the board shows the
// contention.
func (s *ServiceImpl) ClaimOpenShift(ctx context.Context, scheduleID, employeeID int64, remarks *string) (*request.Request, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !entry.IsOpenShift || entry.EmployeeID != nil {
		return nil, schedule.ErrShiftNotOpen
	}

	var entity *request.Request
	err = s.inTx(ctx, func(txCtx context.Context) error {
		entity = &request.Request{
			EmployeeID:      employeeID,
			Type:            request.TypeFillOpenShift,
			Status:          request.StatusPending,
			RequestDate:     time.Now(),
			OriginalShiftID: &scheduleID,
			Remarks:         remarks,
		}
		if err := s.requestRepo.Create(txCtx, entity); err != nil {
			return err
		}
		return s.scheduleRepo.MarkRequested(txCtx, scheduleID)
	})
	if err != nil {
		return nil, err
	}
	metrics.RequestSubmitted.WithLabelValues(string(request.TypeFillOpenShift)).Inc()

	return entity, nil
}
