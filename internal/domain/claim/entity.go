package claim

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// SiblingRejectionNote is written onto every competing pending claim when
// one claim for the same schedule is approved.
const SiblingRejectionNote = "Rejected as another request for this shift was approved."

// Claim is one employee's request to fill one open schedule entry.
type Claim struct {
	ID                  int64   `json:"id"`
	ScheduleID          int64   `json:"schedule_id"`
	RequesterEmployeeID int64   `json:"requester_employee_id"`
	Status              Status  `json:"status"`
	Remarks             *string `json:"remarks"`
	AdminNotes          *string `json:"admin_notes"`

	// Display fields joined for listings.
	ScheduleDate  *time.Time `json:"schedule_date,omitempty"`
	ShiftName     *string    `json:"shift_name,omitempty"`
	StoreName     *string    `json:"store_name,omitempty"`
	RequesterName *string    `json:"requester_name,omitempty"`
}
