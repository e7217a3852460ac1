package request

import "github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"

type Filter struct {
	EmployeeID *int64
}

// CreateRequest carries an employee's submission. Required fields depend
// on the request type:
//
//	time_off:   start_date, end_date, remarks
//	miss_shift: schedule_id, remarks
//	shift_swap: schedule_id, requested_shift_id, swap_with_employee_id, remarks
type CreateRequest struct {
	EmployeeID         int64   `json:"-"`
	Type               string  `json:"request_type"`
	ScheduleID         *int64  `json:"schedule_id"`
	StartDate          *string `json:"start_date"`
	EndDate            *string `json:"end_date"`
	RequestedShiftID   *int64  `json:"requested_shift_id"`
	SwapWithEmployeeID *int64  `json:"swap_with_employee_id"`
	Remarks            *string `json:"remarks"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Type(r.Type) {
	case TypeTimeOff:
		if r.StartDate == nil {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required for time_off"})
		} else if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
		if r.EndDate == nil {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required for time_off"})
		} else if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
		if r.Remarks == nil || validator.IsEmpty(*r.Remarks) {
			errs = append(errs, validator.ValidationError{Field: "remarks", Message: "remarks is required for time_off"})
		}
	case TypeMissShift:
		if r.ScheduleID == nil {
			errs = append(errs, validator.ValidationError{Field: "schedule_id", Message: "schedule_id is required for miss_shift"})
		}
		if r.Remarks == nil || validator.IsEmpty(*r.Remarks) {
			errs = append(errs, validator.ValidationError{Field: "remarks", Message: "remarks is required for miss_shift"})
		}
	case TypeShiftSwap:
		if r.ScheduleID == nil {
			errs = append(errs, validator.ValidationError{Field: "schedule_id", Message: "schedule_id is required for shift_swap"})
		}
		if r.RequestedShiftID == nil {
			errs = append(errs, validator.ValidationError{Field: "requested_shift_id", Message: "requested_shift_id is required for shift_swap"})
		}
		if r.SwapWithEmployeeID == nil {
			errs = append(errs, validator.ValidationError{Field: "swap_with_employee_id", Message: "swap_with_employee_id is required for shift_swap"})
		}
		if r.Remarks == nil || validator.IsEmpty(*r.Remarks) {
			errs = append(errs, validator.ValidationError{Field: "remarks", Message: "remarks is required for shift_swap"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "request_type", Message: "request_type must be one of time_off, miss_shift, shift_swap"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

type SwapResponseRequest struct {
	// Accept true accepts the proposal, false declines it.
	Accept bool `json:"accept"`
}

type OfferShiftRequest struct {
	EmployeeID int64   `json:"employee_id"`
	ShiftID    int64   `json:"shift_id"`
	Remarks    *string `json:"remarks"`
}

func (r *OfferShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.ShiftID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
