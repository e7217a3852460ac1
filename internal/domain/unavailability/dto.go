package unavailability

import "github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"

type Filter struct {
	EmployeeID *int64
}

type CreateWindowRequest struct {
	EmployeeID int64   `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Remarks    *string `json:"remarks"`
}

func (r *CreateWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWindowRequest struct {
	ID        int64   `json:"-"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Remarks   *string `json:"remarks"`
}

func (r *UpdateWindowRequest) Validate() error {
	create := CreateWindowRequest{
		EmployeeID: 1, // not updatable, skip that check
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
	return create.Validate()
}
