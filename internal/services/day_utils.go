package services

import "time"

// DateAtLocation truncates a timestamp to local midnight in the given
// location (UTC when nil).
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the [start, end) bounds of a calendar day.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole calendar days from a to b; negative when b is
// before a. Dates are compared in UTC so DST transitions never skew the
// count.
func DaysBetween(a time.Time, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	startA := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	startB := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(startB.Sub(startA).Hours() / 24)
}

// MonthBounds returns the first day of the month containing value and the
// first day of the following month.
func MonthBounds(value time.Time, location *time.Location) (time.Time, time.Time) {
	local := DateAtLocation(value, location)
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, local.Location())
	return first, first.AddDate(0, 1, 0)
}
