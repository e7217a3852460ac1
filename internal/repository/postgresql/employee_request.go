package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/request"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.Repository {
	return &requestRepositoryImpl{db: db}
}

const requestSelect = `
	SELECT r.id, r.employee_id, r.request_type, r.status, r.request_date,
		r.start_date, r.end_date, r.original_shift_id, r.requested_shift_id,
		r.swap_with_employee_id, r.swap_state, r.remarks, r.admin_notes,
		e.name,
		os.shift_name, os.schedule_date,
		rs.shift_name, rs.schedule_date,
		se.name
	FROM employee_requests r
	JOIN employees e ON e.id = r.employee_id
	LEFT JOIN schedules os ON os.id = r.original_shift_id
	LEFT JOIN schedules rs ON rs.id = r.requested_shift_id
	LEFT JOIN employees se ON se.id = r.swap_with_employee_id
`

func scanRequest(row pgx.Row) (*request.Request, error) {
	var req request.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.Status, &req.RequestDate,
		&req.StartDate, &req.EndDate, &req.OriginalShiftID, &req.RequestedShiftID,
		&req.SwapWithEmployeeID, &req.SwapState, &req.Remarks, &req.AdminNotes,
		&req.EmployeeName,
		&req.OriginalShiftName, &req.OriginalShiftDate,
		&req.RequestedShiftName, &req.RequestedShiftDate,
		&req.SwapWithEmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create implements request.Repository.
func (r *requestRepositoryImpl) Create(ctx context.Context, req *request.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_requests (
			employee_id, request_type, status, request_date,
			start_date, end_date, original_shift_id, requested_shift_id,
			swap_with_employee_id, swap_state, remarks, admin_notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Type, req.Status, req.RequestDate,
		req.StartDate, req.EndDate, req.OriginalShiftID, req.RequestedShiftID,
		req.SwapWithEmployeeID, req.SwapState, req.Remarks, req.AdminNotes,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("create employee request: %w", err)
	}

	return nil
}

// List implements request.Repository.
func (r *requestRepositoryImpl) List(ctx context.Context, filter request.Filter) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := requestSelect + ` WHERE 1=1`
	var args []any

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND r.employee_id = $%d", len(args))
	}

	query += ` ORDER BY r.request_date DESC, r.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetByID implements request.Repository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id int64) (*request.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanRequest(q.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, request.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get employee request by id: %w", err)
	}

	return req, nil
}

// GetByIDForUpdate implements request.Repository. It locks the request row
// so concurrent approvals serialize on it; display joins are skipped here.
func (r *requestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id int64) (*request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, request_type, status, request_date,
			start_date, end_date, original_shift_id, requested_shift_id,
			swap_with_employee_id, swap_state, remarks, admin_notes
		FROM employee_requests
		WHERE id = $1
		FOR UPDATE
	`

	var req request.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.Status, &req.RequestDate,
		&req.StartDate, &req.EndDate, &req.OriginalShiftID, &req.RequestedShiftID,
		&req.SwapWithEmployeeID, &req.SwapState, &req.Remarks, &req.AdminNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, request.ErrRequestNotFound
		}
		return nil, fmt.Errorf("lock employee request: %w", err)
	}

	return &req, nil
}

// UpdateStatus implements request.Repository.
func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status request.Status, adminNotes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_requests
		SET status = $1, admin_notes = $2
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, status, adminNotes, id)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// SetSwapState implements request.Repository.
func (r *requestRepositoryImpl) SetSwapState(ctx context.Context, id int64, state request.SwapState) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_requests
		SET swap_state = $1
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, state, id)
	if err != nil {
		return fmt.Errorf("set swap state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}
