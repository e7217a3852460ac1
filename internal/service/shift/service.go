package shift

import (
	"context"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/shift"
)

type Service interface {
	List(ctx context.Context) ([]shift.Template, error)
	Get(ctx context.Context, id int64) (*shift.Template, error)
	Create(ctx context.Context, req shift.CreateTemplateRequest) (*shift.Template, error)
	Update(ctx context.Context, req shift.UpdateTemplateRequest) (*shift.Template, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	shiftRepo shift.Repository
}

func NewService(shiftRepo shift.Repository) Service {
	return &ServiceImpl{shiftRepo: shiftRepo}
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context) ([]shift.Template, error) {
	return s.shiftRepo.List(ctx)
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64) (*shift.Template, error) {
	return s.shiftRepo.GetByID(ctx, id)
}

// Create implements Service.
func (s *ServiceImpl) Create(ctx context.Context, req shift.CreateTemplateRequest) (*shift.Template, error) {
	t := &shift.Template{
		ShiftName: req.ShiftName,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Remarks:   req.Remarks,
	}
	if err := s.shiftRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req shift.UpdateTemplateRequest) (*shift.Template, error) {
	t, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	t.ShiftName = req.ShiftName
	t.StartTime = req.StartTime
	t.EndTime = req.EndTime
	t.Remarks = req.Remarks

	if err := s.shiftRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.shiftRepo.Delete(ctx, id)
}
