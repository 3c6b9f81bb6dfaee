package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// EndOfDay is the last representable instant of the value's calendar date.
func EndOfDay(value time.Time) time.Time {
	return StartOfDay(value).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfISOWeek is midnight of the Monday of the value's week.
// Weeks start Monday, not Sunday.
func StartOfISOWeek(value time.Time) time.Time {
	day := StartOfDay(value)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func EndOfISOWeek(value time.Time) time.Time {
	return StartOfISOWeek(value).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

func StartOfMonth(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
}

// EndOfMonth handles variable month lengths and leap years via AddDate.
func EndOfMonth(value time.Time) time.Time {
	return StartOfMonth(value).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func StartOfYear(value time.Time) time.Time {
	return time.Date(value.Year(), time.January, 1, 0, 0, 0, 0, value.Location())
}

func EndOfYear(value time.Time) time.Time {
	return StartOfYear(value).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
