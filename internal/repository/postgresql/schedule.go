package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleSelect = `
	SELECT s.id, s.employee_id, e.name, s.store_name, s.shift_name,
		s.start_time, s.end_time, s.schedule_date, s.is_open_shift, s.status
	FROM schedules s
	LEFT JOIN employees e ON e.id = s.employee_id
`

func scanEntry(row pgx.Row) (*schedule.Entry, error) {
	var entry schedule.Entry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.EmployeeName, &entry.StoreName,
		&entry.ShiftName, &entry.StartTime, &entry.EndTime, &entry.ScheduleDate,
		&entry.IsOpenShift, &entry.Status,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *scheduleRepositoryImpl) queryEntries(ctx context.Context, query string, args ...any) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// List implements schedule.Repository.
func (s *scheduleRepositoryImpl) List(ctx context.Context, filter schedule.Filter) ([]schedule.Entry, error) {
	query := scheduleSelect + ` WHERE 1=1`
	var args []any

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND s.employee_id = $%d", len(args))
	}
	if filter.IsOpenShift != nil {
		args = append(args, *filter.IsOpenShift)
		query += fmt.Sprintf(" AND s.is_open_shift = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND s.status = $%d", len(args))
	}

	query += ` ORDER BY s.schedule_date ASC, s.start_time ASC`

	return s.queryEntries(ctx, query, args...)
}

// ListOpen implements schedule.Repository. Open means unassigned and still
// claimable, requested entries included so employees can see contested shifts.
func (s *scheduleRepositoryImpl) ListOpen(ctx context.Context) ([]schedule.Entry, error) {
	query := scheduleSelect + `
		WHERE s.is_open_shift = TRUE AND s.employee_id IS NULL
			AND s.status IN ($1, $2)
		ORDER BY s.schedule_date ASC, s.start_time ASC
	`

	return s.queryEntries(ctx, query, schedule.StatusOpen, schedule.StatusRequested)
}

// GetByID implements schedule.Repository.
func (s *scheduleRepositoryImpl) GetByID(ctx context.Context, id int64) (*schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	entry, err := scanEntry(q.QueryRow(ctx, scheduleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEntryNotFound
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}

	return entry, nil
}

// Create implements schedule.Repository.
func (s *scheduleRepositoryImpl) Create(ctx context.Context, entry *schedule.Entry) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedules (employee_id, store_name, shift_name, start_time, end_time, schedule_date, is_open_shift, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.StoreName, entry.ShiftName, entry.StartTime,
		entry.EndTime, entry.ScheduleDate, entry.IsOpenShift, entry.Status,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}

	return nil
}

// Update implements schedule.Repository.
func (s *scheduleRepositoryImpl) Update(ctx context.Context, entry *schedule.Entry) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET employee_id = $1, store_name = $2, shift_name = $3, start_time = $4,
			end_time = $5, schedule_date = $6, is_open_shift = $7, status = $8
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		entry.EmployeeID, entry.StoreName, entry.ShiftName, entry.StartTime,
		entry.EndTime, entry.ScheduleDate, entry.IsOpenShift, entry.Status, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

// Delete implements schedule.Repository.
func (s *scheduleRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

// MarkRequested implements schedule.Repository. It flips an open entry to
// requested so the board shows it as contested.
func (s *scheduleRepositoryImpl) MarkRequested(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	if _, err := q.Exec(ctx, query, schedule.StatusRequested, id, schedule.StatusOpen); err != nil {
		return fmt.Errorf("mark schedule requested: %w", err)
	}

	return nil
}

// AssignIfAvailable implements schedule.Repository. The conditional WHERE
// clause arbitrates concurrent approvals: only one caller wins the row.
func (s *scheduleRepositoryImpl) AssignIfAvailable(ctx context.Context, id, employeeID int64) (bool, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET employee_id = $1, status = $2, is_open_shift = FALSE
		WHERE id = $3 AND employee_id IS NULL AND status IN ($4, $5)
	`

	tag, err := q.Exec(ctx, query, employeeID, schedule.StatusAssigned, id, schedule.StatusOpen, schedule.StatusRequested)
	if err != nil {
		return false, fmt.Errorf("assign schedule: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// AssignIfOpen implements schedule.Repository. Stricter than
// AssignIfAvailable: the entry must still be flagged as an open shift.
func (s *scheduleRepositoryImpl) AssignIfOpen(ctx context.Context, id, employeeID int64) (bool, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET employee_id = $1, status = $2, is_open_shift = FALSE
		WHERE id = $3 AND is_open_shift = TRUE AND employee_id IS NULL
	`

	tag, err := q.Exec(ctx, query, employeeID, schedule.StatusAssigned, id)
	if err != nil {
		return false, fmt.Errorf("assign open schedule: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Reopen implements schedule.Repository. It releases the entry back to the
// open board, used when a miss-shift request is approved.
func (s *scheduleRepositoryImpl) Reopen(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET employee_id = NULL, is_open_shift = TRUE, status = $1
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, schedule.StatusOpen, id)
	if err != nil {
		return fmt.Errorf("reopen schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

// ReopenForEmployee implements schedule.Repository. Used when an employee
// is deleted so their shifts return to the open board instead of lingering
// as assigned rows without an assignee.
func (s *scheduleRepositoryImpl) ReopenForEmployee(ctx context.Context, employeeID int64) (int64, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET employee_id = NULL, is_open_shift = TRUE, status = $1
		WHERE employee_id = $2
	`

	tag, err := q.Exec(ctx, query, schedule.StatusOpen, employeeID)
	if err != nil {
		return 0, fmt.Errorf("reopen schedules for employee: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Reassign implements schedule.Repository.
func (s *scheduleRepositoryImpl) Reassign(ctx context.Context, id, newEmployeeID int64) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET employee_id = $1, is_open_shift = FALSE, status = $2
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, newEmployeeID, schedule.StatusAssigned, id)
	if err != nil {
		return fmt.Errorf("reassign schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

// ExchangeAssignees implements schedule.Repository. Both entries must be
// assigned; it returns false when either side lost its assignee.
func (s *scheduleRepositoryImpl) ExchangeAssignees(ctx context.Context, firstID, secondID int64) (bool, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules AS s
		SET employee_id = o.employee_id
		FROM schedules AS o
		WHERE s.id IN ($1, $2) AND o.id IN ($1, $2) AND s.id <> o.id
			AND s.employee_id IS NOT NULL AND o.employee_id IS NOT NULL
	`

	tag, err := q.Exec(ctx, query, firstID, secondID)
	if err != nil {
		return false, fmt.Errorf("exchange assignees: %w", err)
	}

	return tag.RowsAffected() == 2, nil
}
