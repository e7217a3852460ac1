package shift

// Template is a reusable shift window ("Morning", "Closing") that schedule
// entries are stamped from.
type Template struct {
	ID        int64   `json:"id"`
	ShiftName string  `json:"shift_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Remarks   *string `json:"remarks"`
}
