package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/unavailability"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type unavailabilityRepositoryImpl struct {
	db *database.DB
}

func NewUnavailabilityRepository(db *database.DB) unavailability.Repository {
	return &unavailabilityRepositoryImpl{db: db}
}

const unavailabilitySelect = `
	SELECT u.id, u.employee_id, e.name, u.start_date, u.end_date, u.remarks
	FROM unavailabilities u
	JOIN employees e ON e.id = u.employee_id
`

func (u *unavailabilityRepositoryImpl) queryWindows(ctx context.Context, query string, args ...any) ([]unavailability.Window, error) {
	q := GetQuerier(ctx, u.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []unavailability.Window
	for rows.Next() {
		var w unavailability.Window
		err := rows.Scan(&w.ID, &w.EmployeeID, &w.EmployeeName, &w.StartDate, &w.EndDate, &w.Remarks)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return windows, nil
}

// List implements unavailability.Repository.
func (u *unavailabilityRepositoryImpl) List(ctx context.Context) ([]unavailability.Window, error) {
	return u.queryWindows(ctx, unavailabilitySelect+` ORDER BY u.start_date ASC`)
}

// ListForEmployee implements unavailability.Repository.
func (u *unavailabilityRepositoryImpl) ListForEmployee(ctx context.Context, employeeID int64) ([]unavailability.Window, error) {
	return u.queryWindows(ctx, unavailabilitySelect+` WHERE u.employee_id = $1 ORDER BY u.start_date ASC`, employeeID)
}

// GetByID implements unavailability.Repository.
func (u *unavailabilityRepositoryImpl) GetByID(ctx context.Context, id int64) (*unavailability.Window, error) {
	q := GetQuerier(ctx, u.db)

	var w unavailability.Window
	err := q.QueryRow(ctx, unavailabilitySelect+` WHERE u.id = $1`, id).
		Scan(&w.ID, &w.EmployeeID, &w.EmployeeName, &w.StartDate, &w.EndDate, &w.Remarks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, unavailability.ErrWindowNotFound
		}
		return nil, fmt.Errorf("get unavailability by id: %w", err)
	}

	return &w, nil
}

// Create implements unavailability.Repository.
func (u *unavailabilityRepositoryImpl) Create(ctx context.Context, w *unavailability.Window) error {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO unavailabilities (employee_id, start_date, end_date, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, w.EmployeeID, w.StartDate, w.EndDate, w.Remarks).Scan(&w.ID); err != nil {
		return fmt.Errorf("create unavailability: %w", err)
	}

	return nil
}

// Update implements unavailability.Repository.
func (u *unavailabilityRepositoryImpl) Update(ctx context.Context, w *unavailability.Window) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE unavailabilities
		SET employee_id = $1, start_date = $2, end_date = $3, remarks = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, w.EmployeeID, w.StartDate, w.EndDate, w.Remarks, w.ID)
	if err != nil {
		return fmt.Errorf("update unavailability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return unavailability.ErrWindowNotFound
	}

	return nil
}

// Delete implements unavailability.Repository.
func (u *unavailabilityRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `DELETE FROM unavailabilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unavailability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return unavailability.ErrWindowNotFound
	}

	return nil
}
