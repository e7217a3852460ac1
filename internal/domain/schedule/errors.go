package schedule

import "errors"

var (
	ErrEntryNotFound = errors.New("schedule not found")
	// ErrShiftNotOpen covers claim and assignment attempts against a row
	// that is no longer an unassigned open shift.
	ErrShiftNotOpen     = errors.New("shift is not open or already assigned")
	ErrShiftTaken       = errors.New("shift was already taken or no longer open")
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
	ErrEmployeeRequired = errors.New("employee is required unless the entry is an open shift")
)
