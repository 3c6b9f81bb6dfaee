package report

import (
	"fmt"
	"strings"
	"time"

	"tempo/internal/timeutil"
)

// Kind is a calendar-aligned bucket size.
type Kind string

const (
	Day   Kind = "day"
	Week  Kind = "week"
	Month Kind = "month"
	Year  Kind = "year"
)

// KindFromString accepts both the bucket name and the report command
// spelling (daily/weekly/monthly/yearly).
func KindFromString(value string) (Kind, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "day", "daily":
		return Day, nil
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "year", "yearly":
		return Year, nil
	default:
		return "", fmt.Errorf("unsupported period %q (supported: daily, weekly, monthly, yearly)", value)
	}
}

// Bounds returns the inclusive calendar range containing the anchor.
// Weeks run Monday through Sunday.
func (k Kind) Bounds(anchor time.Time) (time.Time, time.Time) {
	switch k {
	case Week:
		return timeutil.StartOfISOWeek(anchor), timeutil.EndOfISOWeek(anchor)
	case Month:
		return timeutil.StartOfMonth(anchor), timeutil.EndOfMonth(anchor)
	case Year:
		return timeutil.StartOfYear(anchor), timeutil.EndOfYear(anchor)
	default:
		return timeutil.StartOfDay(anchor), timeutil.EndOfDay(anchor)
	}
}

// Title renders the period label used as the report heading.
func (k Kind) Title(start, end time.Time) string {
	switch k {
	case Week:
		return fmt.Sprintf("Weekly report for %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	case Month:
		return fmt.Sprintf("Monthly report for %s", start.Format("2006-01"))
	case Year:
		return fmt.Sprintf("Yearly report for %s", start.Format("2006"))
	default:
		return fmt.Sprintf("Daily report for %s", start.Format("2006-01-02"))
	}
}
