package unavailability

import (
	"context"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/unavailability"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"
)

type Service interface {
	List(ctx context.Context, filter unavailability.Filter) ([]unavailability.Window, error)
	Get(ctx context.Context, id int64) (*unavailability.Window, error)
	Create(ctx context.Context, req unavailability.CreateWindowRequest) (*unavailability.Window, error)
	Update(ctx context.Context, req unavailability.UpdateWindowRequest) (*unavailability.Window, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	unavailRepo  unavailability.Repository
	employeeRepo employee.Repository
}

func NewService(unavailRepo unavailability.Repository, employeeRepo employee.Repository) Service {
	return &ServiceImpl{unavailRepo: unavailRepo, employeeRepo: employeeRepo}
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, filter unavailability.Filter) ([]unavailability.Window, error) {
	if filter.EmployeeID != nil {
		return s.unavailRepo.ListForEmployee(ctx, *filter.EmployeeID)
	}
	return s.unavailRepo.List(ctx)
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64) (*unavailability.Window, error) {
	return s.unavailRepo.GetByID(ctx, id)
}

// Create implements Service. Overlapping windows for one employee are
// allowed; only the employee itself must exist.
func (s *ServiceImpl) Create(ctx context.Context, req unavailability.CreateWindowRequest) (*unavailability.Window, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	w := &unavailability.Window{
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.Name,
		StartDate:    start,
		EndDate:      end,
		Remarks:      req.Remarks,
	}
	if err := s.unavailRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req unavailability.UpdateWindowRequest) (*unavailability.Window, error) {
	w, err := s.unavailRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if start, ok := validator.IsValidDate(req.StartDate); ok {
		w.StartDate = start
	}
	if end, ok := validator.IsValidDate(req.EndDate); ok {
		w.EndDate = end
	}
	w.Remarks = req.Remarks

	if err := s.unavailRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.unavailRepo.Delete(ctx, id)
}
