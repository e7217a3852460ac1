package unavailability

import "time"

// Window is a closed date range in which the employee must not be
// scheduled. Enforced at schedule-creation time, not as a database
// constraint; overlapping windows for the same employee are allowed.
type Window struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Remarks      *string   `json:"remarks"`
}

// Covers reports whether date falls inside the window, bounds included.
func (w Window) Covers(date time.Time) bool {
	return !date.Before(w.StartDate) && !date.After(w.EndDate)
}

// Reason returns the remark shown when a schedule date is skipped because
// of this window.
func (w Window) Reason() string {
	if w.Remarks != nil && *w.Remarks != "" {
		return *w.Remarks
	}
	return "Unavailable"
}
