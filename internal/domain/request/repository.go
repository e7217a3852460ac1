package request

import "context"

type Repository interface {
	// Create inserts the request and writes the generated id back into req.
	Create(ctx context.Context, req *Request) error
	List(ctx context.Context, filter Filter) ([]Request, error)
	GetByID(ctx context.Context, id int64) (*Request, error)
	// GetByIDForUpdate locks the row (SELECT ... FOR UPDATE) so concurrent
	// approvals of the same request serialize inside the transaction.
	GetByIDForUpdate(ctx context.Context, id int64) (*Request, error)
	UpdateStatus(ctx context.Context, id int64, status Status, adminNotes *string) error
	SetSwapState(ctx context.Context, id int64, state SwapState) error
}
