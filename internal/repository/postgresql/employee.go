package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, email, password_hash, role, position, is_active, gender, date_of_birth, phone`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.Role,
		&emp.Position, &emp.IsActive, &emp.Gender, &emp.DateOfBirth, &emp.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// List implements employee.Repository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}

	return emp, nil
}

// GetActiveByEmail implements employee.Repository. The lookup is
// case-insensitive and skips deactivated accounts.
func (e *employeeRepositoryImpl) GetActiveByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE LOWER(email) = LOWER($1) AND is_active = TRUE
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}

	return emp, nil
}

// ExistsByEmail implements employee.Repository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1))`

	var exists bool
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

// Create implements employee.Repository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (name, email, password_hash, role, position, is_active, gender, date_of_birth, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		emp.Name, emp.Email, emp.PasswordHash, emp.Role, emp.Position,
		emp.IsActive, emp.Gender, emp.DateOfBirth, emp.Phone,
	).Scan(&emp.ID)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	return nil
}

// UpdateProfile implements employee.Repository.
func (e *employeeRepositoryImpl) UpdateProfile(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, password_hash = $3, position = $4,
			gender = $5, date_of_birth = $6, phone = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		emp.Name, emp.Email, emp.PasswordHash, emp.Position,
		emp.Gender, emp.DateOfBirth, emp.Phone, emp.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.Repository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListWithoutCredentials implements employee.Repository. It returns active
// employees that cannot log in yet.
func (e *employeeRepositoryImpl) ListWithoutCredentials(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE AND (email IS NULL OR password_hash IS NULL)
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// SetCredentials implements employee.Repository.
func (e *employeeRepositoryImpl) SetCredentials(ctx context.Context, id int64, email, passwordHash string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET email = $1, password_hash = $2
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, email, passwordHash, id)
	if err != nil {
		return fmt.Errorf("set credentials: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
