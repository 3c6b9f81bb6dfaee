package timeutil

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestStartOfISOWeek_WeeksStartMonday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		anchor string
		want   string
	}{
		{name: "monday maps to itself", anchor: "2026-08-24 10:00:00", want: "2026-08-24 00:00:00"},
		{name: "wednesday maps back to monday", anchor: "2026-08-26 23:59:59", want: "2026-08-24 00:00:00"},
		{name: "sunday maps back six days", anchor: "2026-08-30 00:00:01", want: "2026-08-24 00:00:00"},
		{name: "preceding sunday is the prior week", anchor: "2026-08-23 12:00:00", want: "2026-08-17 00:00:00"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := StartOfISOWeek(mustParse(t, tc.anchor))
			want := mustParse(t, tc.want)
			if !got.Equal(want) {
				t.Fatalf("start of week for %s: want %s, got %s", tc.anchor, want, got)
			}
		})
	}
}

func TestEndOfISOWeek_CoversSundayLastSecond(t *testing.T) {
	t.Parallel()

	end := EndOfISOWeek(mustParse(t, "2026-08-24 00:00:00"))
	lastSecond := mustParse(t, "2026-08-30 23:59:59")
	if end.Before(lastSecond) {
		t.Fatalf("week end %s excludes Sunday 23:59:59", end)
	}
	nextMonday := mustParse(t, "2026-08-31 00:00:00")
	if !end.Before(nextMonday) {
		t.Fatalf("week end %s reaches into the next week", end)
	}
}

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		anchor    string
		wantStart string
		wantLast  string
	}{
		{name: "31 day month", anchor: "2026-08-15 12:00:00", wantStart: "2026-08-01 00:00:00", wantLast: "2026-08-31 23:59:59"},
		{name: "30 day month", anchor: "2026-04-01 00:00:00", wantStart: "2026-04-01 00:00:00", wantLast: "2026-04-30 23:59:59"},
		{name: "february non-leap", anchor: "2026-02-28 08:00:00", wantStart: "2026-02-01 00:00:00", wantLast: "2026-02-28 23:59:59"},
		{name: "february leap year", anchor: "2028-02-10 08:00:00", wantStart: "2028-02-01 00:00:00", wantLast: "2028-02-29 23:59:59"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			anchor := mustParse(t, tc.anchor)
			start := StartOfMonth(anchor)
			end := EndOfMonth(anchor)

			if want := mustParse(t, tc.wantStart); !start.Equal(want) {
				t.Fatalf("month start: want %s, got %s", want, start)
			}
			lastSecond := mustParse(t, tc.wantLast)
			if end.Before(lastSecond) {
				t.Fatalf("month end %s excludes %s", end, lastSecond)
			}
			if !end.Before(start.AddDate(0, 1, 0)) {
				t.Fatalf("month end %s reaches into the next month", end)
			}
		})
	}
}

func TestYearBounds(t *testing.T) {
	t.Parallel()

	anchor := mustParse(t, "2026-06-15 09:30:00")
	start := StartOfYear(anchor)
	end := EndOfYear(anchor)

	if want := mustParse(t, "2026-01-01 00:00:00"); !start.Equal(want) {
		t.Fatalf("year start: want %s, got %s", want, start)
	}
	if lastSecond := mustParse(t, "2026-12-31 23:59:59"); end.Before(lastSecond) {
		t.Fatalf("year end %s excludes Dec 31 23:59:59", end)
	}
	if !end.Before(mustParse(t, "2027-01-01 00:00:00")) {
		t.Fatalf("year end %s reaches into the next year", end)
	}
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	anchor := mustParse(t, "2026-08-25 13:45:12")
	start := StartOfDay(anchor)
	end := EndOfDay(anchor)

	if want := mustParse(t, "2026-08-25 00:00:00"); !start.Equal(want) {
		t.Fatalf("day start: want %s, got %s", want, start)
	}
	if end.Before(mustParse(t, "2026-08-25 23:59:59")) {
		t.Fatalf("day end %s excludes 23:59:59", end)
	}
	if !end.Before(mustParse(t, "2026-08-26 00:00:00")) {
		t.Fatalf("day end %s reaches into the next day", end)
	}
}
