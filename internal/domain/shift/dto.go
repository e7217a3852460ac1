package shift

import "github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"

type CreateTemplateRequest struct {
	ShiftName string  `json:"shift_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Remarks   *string `json:"remarks"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftName) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_name",
			Message: "shift_name is required",
		})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTemplateRequest struct {
	ID        int64   `json:"-"`
	ShiftName string  `json:"shift_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Remarks   *string `json:"remarks"`
}

func (r *UpdateTemplateRequest) Validate() error {
	create := CreateTemplateRequest{
		ShiftName: r.ShiftName,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
	return create.Validate()
}
