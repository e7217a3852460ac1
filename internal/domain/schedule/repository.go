package schedule

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Entry, error)
	ListOpen(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
	// Create inserts the entry and writes the generated id back into entry.
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id int64) error

	// MarkRequested moves an open entry to the requested status once an
	// employee has asked to fill it.
	MarkRequested(ctx context.Context, id int64) error

	// AssignIfAvailable conditionally assigns the entry to the employee:
	// the UPDATE only matches while employee_id is still NULL and the
	// status is open or requested. It returns false (affecting zero rows)
	// when a concurrent approval got there first.
	AssignIfAvailable(ctx context.Context, scheduleID, employeeID int64) (bool, error)

	// AssignIfOpen is the stricter variant used by open-shift claims: the
	// row must still be is_open_shift = TRUE with no employee.
	AssignIfOpen(ctx context.Context, scheduleID, employeeID int64) (bool, error)

	// Reopen clears the assignee and returns the entry to the open pool.
	Reopen(ctx context.Context, id int64) error

	// ReopenForEmployee releases every entry assigned to the employee back
	// to the open pool. Returns the number of entries reopened.
	ReopenForEmployee(ctx context.Context, employeeID int64) (int64, error)

	// Reassign force-assigns an employee regardless of current state
	// (admin override).
	Reassign(ctx context.Context, scheduleID, employeeID int64) error

	// ExchangeAssignees swaps the employees of two assigned entries.
	// Returns false when either row is missing or not assigned.
	ExchangeAssignees(ctx context.Context, firstID, secondID int64) (bool, error)
}
