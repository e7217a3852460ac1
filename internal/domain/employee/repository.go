package employee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	// GetActiveByEmail matches email case-insensitively and only returns
	// active accounts; used by the login path.
	GetActiveByEmail(ctx context.Context, email string) (*Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create inserts the employee and writes the generated id back into emp.
	Create(ctx context.Context, emp *Employee) error
	UpdateProfile(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id int64) error
	// ListWithoutCredentials returns employees with no password set.
	ListWithoutCredentials(ctx context.Context) ([]Employee, error)
	SetCredentials(ctx context.Context, id int64, email, passwordHash string) error
}
