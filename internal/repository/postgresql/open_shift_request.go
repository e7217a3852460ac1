package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/claim"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type claimRepositoryImpl struct {
	db *database.DB
}

func NewClaimRepository(db *database.DB) claim.Repository {
	return &claimRepositoryImpl{db: db}
}

const claimSelect = `
	SELECT c.id, c.schedule_id, c.requester_employee_id, c.status, c.remarks, c.admin_notes,
		s.schedule_date, s.shift_name, s.store_name, e.name
	FROM open_shift_requests c
	JOIN schedules s ON s.id = c.schedule_id
	JOIN employees e ON e.id = c.requester_employee_id
`

func scanClaim(row pgx.Row) (*claim.Claim, error) {
	var c claim.Claim
	err := row.Scan(
		&c.ID, &c.ScheduleID, &c.RequesterEmployeeID, &c.Status, &c.Remarks, &c.AdminNotes,
		&c.ScheduleDate, &c.ShiftName, &c.StoreName, &c.RequesterName,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements claim.Repository.
func (r *claimRepositoryImpl) Create(ctx context.Context, c *claim.Claim) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO open_shift_requests (schedule_id, requester_employee_id, status, remarks, admin_notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, c.ScheduleID, c.RequesterEmployeeID, c.Status, c.Remarks, c.AdminNotes).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create open shift request: %w", err)
	}

	return nil
}

// List implements claim.Repository.
func (r *claimRepositoryImpl) List(ctx context.Context, filter claim.Filter) ([]claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := claimSelect + ` WHERE 1=1`
	var args []any

	if filter.RequesterEmployeeID != nil {
		args = append(args, *filter.RequesterEmployeeID)
		query += fmt.Sprintf(" AND c.requester_employee_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND c.status = $%d", len(args))
	}

	query += ` ORDER BY c.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []claim.Claim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

// GetByID implements claim.Repository.
func (r *claimRepositoryImpl) GetByID(ctx context.Context, id int64) (*claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanClaim(q.QueryRow(ctx, claimSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, claim.ErrClaimNotFound
		}
		return nil, fmt.Errorf("get open shift request by id: %w", err)
	}

	return c, nil
}

// GetByIDForUpdate implements claim.Repository.
func (r *claimRepositoryImpl) GetByIDForUpdate(ctx context.Context, id int64) (*claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, schedule_id, requester_employee_id, status, remarks, admin_notes
		FROM open_shift_requests
		WHERE id = $1
		FOR UPDATE
	`

	var c claim.Claim
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ScheduleID, &c.RequesterEmployeeID, &c.Status, &c.Remarks, &c.AdminNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, claim.ErrClaimNotFound
		}
		return nil, fmt.Errorf("lock open shift request: %w", err)
	}

	return &c, nil
}

// HasPendingClaim implements claim.Repository.
func (r *claimRepositoryImpl) HasPendingClaim(ctx context.Context, scheduleID, employeeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM open_shift_requests
			WHERE schedule_id = $1 AND requester_employee_id = $2 AND status = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, scheduleID, employeeID, claim.StatusPending).Scan(&exists); err != nil {
		return false, fmt.Errorf("check pending claim: %w", err)
	}

	return exists, nil
}

// ResolvePending implements claim.Repository. The status guard in the WHERE
// clause makes resolution idempotent under concurrent admins.
func (r *claimRepositoryImpl) ResolvePending(ctx context.Context, id int64, status claim.Status, adminNotes *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE open_shift_requests
		SET status = $1, admin_notes = $2
		WHERE id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, status, adminNotes, id, claim.StatusPending)
	if err != nil {
		return false, fmt.Errorf("resolve open shift request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateNotes implements claim.Repository.
func (r *claimRepositoryImpl) UpdateNotes(ctx context.Context, id int64, adminNotes *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE open_shift_requests SET admin_notes = $1 WHERE id = $2`, adminNotes, id)
	if err != nil {
		return fmt.Errorf("update open shift request notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return claim.ErrClaimNotFound
	}

	return nil
}

// RejectSiblings implements claim.Repository.
func (r *claimRepositoryImpl) RejectSiblings(ctx context.Context, scheduleID, approvedID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE open_shift_requests
		SET status = $1, admin_notes = $2
		WHERE schedule_id = $3 AND id <> $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query,
		claim.StatusRejected, claim.SiblingRejectionNote, scheduleID, approvedID, claim.StatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("reject sibling claims: %w", err)
	}

	return tag.RowsAffected(), nil
}
