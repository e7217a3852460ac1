package request

import "time"

type Type string

const (
	TypeTimeOff         Type = "time_off"
	TypeMissShift       Type = "miss_shift"
	TypeShiftSwap       Type = "shift_swap"
	TypeFillOpenShift   Type = "fill_open_shift"
	TypeAdminOfferShift Type = "admin_offer_shift"
)

var TypeValues = []string{
	string(TypeTimeOff),
	string(TypeMissShift),
	string(TypeShiftSwap),
	string(TypeFillOpenShift),
	string(TypeAdminOfferShift),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// SwapState tracks the shift-swap sub-workflow: the requester proposes,
// the swap partner accepts or declines, and only an accepted swap can be
// finalized by an admin.
type SwapState string

const (
	SwapProposed SwapState = "proposed"
	SwapAccepted SwapState = "accepted"
	SwapDeclined SwapState = "declined"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ParseAction maps the URL action segment onto an Action.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionApprove, ActionReject:
		return Action(s), true
	}
	return "", false
}

// Resolved returns the terminal status an action produces.
func (a Action) Resolved() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}

type Request struct {
	ID                 int64      `json:"id"`
	EmployeeID         int64      `json:"employee_id"`
	Type               Type       `json:"request_type"`
	Status             Status     `json:"status"`
	RequestDate        time.Time  `json:"request_date"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	OriginalShiftID    *int64     `json:"original_shift_id"`
	RequestedShiftID   *int64     `json:"requested_shift_id"`
	SwapWithEmployeeID *int64     `json:"swap_with_employee_id"`
	SwapState          *SwapState `json:"swap_state,omitempty"`
	Remarks            *string    `json:"remarks"`
	AdminNotes         *string    `json:"admin_notes"`

	// Display fields joined for listings.
	EmployeeName         *string    `json:"employee_name,omitempty"`
	OriginalShiftName    *string    `json:"original_shift_name,omitempty"`
	OriginalShiftDate    *time.Time `json:"original_shift_date,omitempty"`
	RequestedShiftName   *string    `json:"requested_shift_name,omitempty"`
	RequestedShiftDate   *time.Time `json:"requested_shift_date,omitempty"`
	SwapWithEmployeeName *string    `json:"swap_with_employee_name,omitempty"`
}

// CanResolve reports whether the request is still open for an admin
// decision. Resolved requests are immutable.
func (r Request) CanResolve() bool {
	return r.Status == StatusPending
}

// SwapReady reports whether a shift_swap request has been accepted by the
// swap partner and may be finalized.
func (r Request) SwapReady() bool {
	return r.Type == TypeShiftSwap && r.SwapState != nil && *r.SwapState == SwapAccepted
}

// CanRespondToSwap reports whether the swap partner can still accept or
// decline the proposal.
func (r Request) CanRespondToSwap() bool {
	return r.Type == TypeShiftSwap &&
		r.Status == StatusPending &&
		r.SwapState != nil && *r.SwapState == SwapProposed
}
