package schedule

import "time"

// DatesMatchingWeekday lists every date in the given month that falls on
// the weekday, in calendar order.
func DatesMatchingWeekday(year int, month time.Month, weekday time.Weekday) []time.Time {
	var dates []time.Time
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == weekday {
			dates = append(dates, d)
		}
	}
	return dates
}
