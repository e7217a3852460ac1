package claim

import "context"

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	List(ctx context.Context, filter Filter) ([]Claim, error)
	GetByID(ctx context.Context, id int64) (*Claim, error)
	// GetByIDForUpdate locks the claim row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id int64) (*Claim, error)
	// HasPendingClaim reports whether the employee already has a pending
	// claim on the schedule entry.
	HasPendingClaim(ctx context.Context, scheduleID, employeeID int64) (bool, error)
	// ResolvePending moves a pending claim to a terminal status. It returns
	// false when the claim was no longer pending.
	ResolvePending(ctx context.Context, id int64, status Status, adminNotes *string) (bool, error)
	UpdateNotes(ctx context.Context, id int64, adminNotes *string) error
	// RejectSiblings rejects every other pending claim on the same schedule
	// entry, stamping them with SiblingRejectionNote. It returns the number
	// of claims rejected.
	RejectSiblings(ctx context.Context, scheduleID, approvedID int64) (int64, error)
}
