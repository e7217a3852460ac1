package shift

import "context"

type Repository interface {
	List(ctx context.Context) ([]Template, error)
	GetByID(ctx context.Context, id int64) (*Template, error)
	// Create inserts the template and writes the generated id back into tmpl.
	Create(ctx context.Context, tmpl *Template) error
	Update(ctx context.Context, tmpl *Template) error
	Delete(ctx context.Context, id int64) error
}
