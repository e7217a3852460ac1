package schedule

import "time"

type Status string

const (
	StatusOpen      Status = "open"
	StatusRequested Status = "requested"
	StatusAssigned  Status = "assigned"
)

var StatusValues = []string{
	string(StatusOpen),
	string(StatusRequested),
	string(StatusAssigned),
}

// Entry is one shift instance on the calendar, either assigned to an
// employee or published as an open shift. Invariants:
// status = assigned iff employee_id is set; an open shift never carries an
// employee_id.
type Entry struct {
	ID           int64     `json:"id"`
	EmployeeID   *int64    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name"`
	StoreName    string    `json:"store_name"`
	ShiftName    string    `json:"shift_name"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	ScheduleDate time.Time `json:"schedule_date"`
	IsOpenShift  bool      `json:"is_open_shift"`
	Status       Status    `json:"status"`
}

// DisplayName returns the employee name with the open-shift placeholder
// the calendar UI expects for unassigned rows.
func (e Entry) DisplayName() string {
	if e.EmployeeName == nil {
		return "Open Shift"
	}
	return *e.EmployeeName
}

// Consistent reports whether the entry satisfies the assignment
// invariants.
func (e Entry) Consistent() bool {
	if e.Status == StatusAssigned {
		return e.EmployeeID != nil && !e.IsOpenShift
	}
	return e.EmployeeID == nil
}
