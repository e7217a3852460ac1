package unavailability

import "context"

type Repository interface {
	List(ctx context.Context) ([]Window, error)
	ListForEmployee(ctx context.Context, employeeID int64) ([]Window, error)
	GetByID(ctx context.Context, id int64) (*Window, error)
	// Create inserts the window and writes the generated id back into w.
	Create(ctx context.Context, w *Window) error
	Update(ctx context.Context, w *Window) error
	Delete(ctx context.Context, id int64) error
}
