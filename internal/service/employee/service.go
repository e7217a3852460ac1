package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
	"github.com/shalomhq/shiftboard-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 12

	// defaultPassword is set for accounts provisioned through the
	// credential setup flow; employees change it on first login.
	defaultPassword = "12345678"
)

type Service interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Get(ctx context.Context, id int64) (*employee.Employee, error)
	UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (*employee.Employee, error)
	Delete(ctx context.Context, id int64) error
	SetupCredentials(ctx context.Context) (*employee.SetupCredentialsResult, error)
}

type ServiceImpl struct {
	employeeRepo employee.Repository
	scheduleRepo schedule.Repository
	inTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, employeeRepo employee.Repository, scheduleRepo schedule.Repository) Service {
	return &ServiceImpl{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// UpdateProfile implements Service. A present password replaces the stored
// hash; everything else is a plain field update.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (*employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	emp.Name = req.Name
	emp.Phone = req.Phone
	emp.Gender = req.Gender
	emp.Position = req.Position
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("parse date_of_birth: %w", err)
		}
		emp.DateOfBirth = &dob
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		emp.PasswordHash = &hashed
	}

	if err := s.employeeRepo.UpdateProfile(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// Delete implements Service. The employee's assigned schedules go back to
// the open pool in the same transaction so no entry is left marked assigned
// without an assignee.
func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(txCtx context.Context) error {
		if _, err := s.scheduleRepo.ReopenForEmployee(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
}

// SetupCredentials implements Service. For every active employee without
// login credentials it derives an email address from the name and sets the
// default password. Failures on individual employees do not abort the run.
func (s *ServiceImpl) SetupCredentials(ctx context.Context) (*employee.SetupCredentialsResult, error) {
	pending, err := s.employeeRepo.ListWithoutCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees without credentials: %w", err)
	}

	result := &employee.SetupCredentialsResult{}
	if len(pending) == 0 {
		return result, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}
	hashed := string(hash)

	for _, emp := range pending {
		email := emp.Email
		if email == nil || *email == "" {
			generated, err := s.uniqueEmail(ctx, emp)
			if err != nil {
				result.Skipped = append(result.Skipped, employee.CredentialFailure{
					Name:  emp.Name,
					Error: err.Error(),
				})
				continue
			}
			email = &generated
		}

		if err := s.employeeRepo.SetCredentials(ctx, emp.ID, *email, hashed); err != nil {
			result.Skipped = append(result.Skipped, employee.CredentialFailure{
				Name:  emp.Name,
				Error: err.Error(),
			})
			continue
		}

		result.Updated = append(result.Updated, employee.CredentialSummary{
			ID:    emp.ID,
			Name:  emp.Name,
			Email: *email,
		})
	}

	return result, nil
}

// uniqueEmail derives an address from the name and falls back to an
// id-suffixed form when the plain one is taken.
func (s *ServiceImpl) uniqueEmail(ctx context.Context, emp employee.Employee) (string, error) {
	email := GenerateEmailFromName(emp.Name, 0)

	exists, err := s.employeeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("check generated email: %w", err)
	}
	if !exists {
		return email, nil
	}

	return GenerateEmailFromName(emp.Name, emp.ID), nil
}
