package schedule

import (
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID  *int64
	IsOpenShift *bool
	Status      *Status
}

type CreateEntryRequest struct {
	EmployeeID   *int64  `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	StoreName    string  `json:"store_name"`
	ShiftName    string  `json:"shift_name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	ScheduleDate string  `json:"schedule_date"`
	IsOpenShift  bool    `json:"is_open_shift"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreName) {
		errs = append(errs, validator.ValidationError{Field: "store_name", Message: "store_name is required"})
	}
	if validator.IsEmpty(r.ShiftName) {
		errs = append(errs, validator.ValidationError{Field: "shift_name", Message: "shift_name is required"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
	}
	if _, ok := validator.IsValidDate(r.ScheduleDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "schedule_date", Message: "schedule_date must be in YYYY-MM-DD format"})
	}
	if !r.IsOpenShift && r.EmployeeID == nil {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required unless is_open_shift is true"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NewEntry normalizes the request into an Entry that satisfies the
// assignment invariants: open shifts carry no employee and start open,
// everything else starts assigned.
func (r *CreateEntryRequest) NewEntry(employeeName *string) Entry {
	date, _ := validator.IsValidDate(r.ScheduleDate)
	entry := Entry{
		StoreName:    r.StoreName,
		ShiftName:    r.ShiftName,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		ScheduleDate: date,
		IsOpenShift:  r.IsOpenShift,
	}
	if r.IsOpenShift {
		entry.Status = StatusOpen
		return entry
	}
	entry.EmployeeID = r.EmployeeID
	entry.EmployeeName = employeeName
	entry.Status = StatusAssigned
	return entry
}

type UpdateEntryRequest struct {
	ID           int64   `json:"-"`
	EmployeeID   *int64  `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	StoreName    string  `json:"store_name"`
	ShiftName    string  `json:"shift_name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	ScheduleDate string  `json:"schedule_date"`
}

func (r *UpdateEntryRequest) Validate() error {
	create := CreateEntryRequest{
		EmployeeID:   r.EmployeeID,
		StoreName:    r.StoreName,
		ShiftName:    r.ShiftName,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		ScheduleDate: r.ScheduleDate,
		IsOpenShift:  r.EmployeeID == nil,
	}
	return create.Validate()
}

type ReassignRequest struct {
	ScheduleID    int64 `json:"-"`
	NewEmployeeID int64 `json:"new_employee_id"`
}

func (r *ReassignRequest) Validate() error {
	if r.NewEmployeeID <= 0 {
		return validator.ValidationErrors{{Field: "new_employee_id", Message: "new_employee_id is required"}}
	}
	return nil
}

// BulkCreateRequest expands into one entry per calendar date in the given
// month that falls on DayOfWeek (0 = Sunday, matching the UI picker).
type BulkCreateRequest struct {
	EmployeeID int64  `json:"employee_id"`
	StoreName  string `json:"store_name"`
	ShiftName  string `json:"shift_name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	DayOfWeek  int    `json:"day_of_week"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *BulkCreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.StoreName) {
		errs = append(errs, validator.ValidationError{Field: "store_name", Message: "store_name is required"})
	}
	if validator.IsEmpty(r.ShiftName) {
		errs = append(errs, validator.ValidationError{Field: "shift_name", Message: "shift_name is required"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
	}
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		errs = append(errs, validator.ValidationError{Field: "day_of_week", Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkCreateResult struct {
	Candidates int        `json:"candidates"`
	Created    []string   `json:"created"`
	Skipped    []BulkSkip `json:"skipped"`
	Entries    []Entry    `json:"-"`
}

type BulkSkip struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}
