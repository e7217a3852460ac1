package dashboard

// AdminStats summarizes the whole roster for the admin landing view.
type AdminStats struct {
	TotalEmployees      int64   `json:"totalEmployees"`
	TotalShiftsThisWeek int64   `json:"totalShiftsThisWeek"`
	FillRatePct         float64 `json:"fillRatePct"`
	UnavailCount        int64   `json:"unavailCount"`
}

// EmployeeStats scopes the same view to one employee.
type EmployeeStats struct {
	UserShiftsThisWeek int64 `json:"userShiftsThisWeek"`
	UserUnavailCount   int64 `json:"userUnavailCount"`
}

// FillRatePct weighs this week's shifts against the standing
// unavailability count, rounded to the nearest whole percent. Zero shifts
// yields zero.
func FillRatePct(shifts, unavail int64) float64 {
	if shifts == 0 {
		return 0
	}
	total := shifts + unavail
	return float64((shifts*100 + total/2) / total)
}
