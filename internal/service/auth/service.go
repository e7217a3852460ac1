package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, int64, error)
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, int64, error)
	Me(ctx context.Context, employeeID int64) (*employee.Employee, error)
}

type ServiceImpl struct {
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewService(employeeRepo employee.Repository, jwtService jwt.Service) Service {
	return &ServiceImpl{employeeRepo: employeeRepo, jwtService: jwtService}
}

// Login implements Service. There is no bypass path: every login goes
// through the bcrypt comparison.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, int64, error) {
	emp, err := s.employeeRepo.GetActiveByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, 0, auth.ErrInvalidCredentials
		}
		return nil, 0, fmt.Errorf("login lookup: %w", err)
	}

	if emp.PasswordHash == nil {
		return nil, 0, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, 0, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(emp)
	if err != nil {
		return nil, 0, fmt.Errorf("generate token: %w", err)
	}

	return &auth.LoginResponse{Token: token, Employee: emp}, expiresAt, nil
}

// Register implements Service. New accounts always get the employee role;
// admin accounts are provisioned out of band.
func (s *ServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, int64, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.employeeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, 0, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, 0, employee.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, 0, fmt.Errorf("hash password: %w", err)
	}
	hashed := string(hash)

	emp := &employee.Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        &email,
		PasswordHash: &hashed,
		Role:         employee.RoleEmployee,
		Position:     req.Position,
		IsActive:     true,
	}
	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, 0, fmt.Errorf("create employee: %w", err)
	}

	token, expiresAt, err := s.jwtService.GenerateToken(emp)
	if err != nil {
		return nil, 0, fmt.Errorf("generate token: %w", err)
	}

	return &auth.LoginResponse{Token: token, Employee: emp}, expiresAt, nil
}

// Me implements Service.
func (s *ServiceImpl) Me(ctx context.Context, employeeID int64) (*employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, employeeID)
}
