package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/shift"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

// List implements shift.Repository.
func (s *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Template, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, shift_name, start_time, end_time, remarks
		FROM shifts
		ORDER BY start_time ASC, shift_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []shift.Template
	for rows.Next() {
		var t shift.Template
		if err := rows.Scan(&t.ID, &t.ShiftName, &t.StartTime, &t.EndTime, &t.Remarks); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// GetByID implements shift.Repository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id int64) (*shift.Template, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, shift_name, start_time, end_time, remarks
		FROM shifts
		WHERE id = $1
	`

	var t shift.Template
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.ShiftName, &t.StartTime, &t.EndTime, &t.Remarks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get shift by id: %w", err)
	}

	return &t, nil
}

// Create implements shift.Repository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, t *shift.Template) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (shift_name, start_time, end_time, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, t.ShiftName, t.StartTime, t.EndTime, t.Remarks).Scan(&t.ID); err != nil {
		return fmt.Errorf("create shift: %w", err)
	}

	return nil
}

// Update implements shift.Repository.
func (s *shiftRepositoryImpl) Update(ctx context.Context, t *shift.Template) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET shift_name = $1, start_time = $2, end_time = $3, remarks = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, t.ShiftName, t.StartTime, t.EndTime, t.Remarks, t.ID)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrTemplateNotFound
	}

	return nil
}

// Delete implements shift.Repository.
func (s *shiftRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrTemplateNotFound
	}

	return nil
}
