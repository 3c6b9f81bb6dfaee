package report

import (
	"strings"
	"testing"
)

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 0, want: "0m"},
		{minutes: 45, want: "45m"},
		{minutes: 60, want: "1h 0m"},
		{minutes: 90, want: "1h 30m"},
		{minutes: 330, want: "5h 30m"},
	}

	for _, tc := range tests {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Fatalf("FormatMinutes(%d): want %q, got %q", tc.minutes, tc.want, got)
		}
	}
}

func TestRender_FullReport(t *testing.T) {
	t.Parallel()

	result := Result{
		Kind:         Day,
		PeriodStart:  mustParse(t, "2026-08-25T00:00:00Z"),
		PeriodEnd:    mustParse(t, "2026-08-25T23:59:59Z"),
		TotalMinutes: 150,
		EntryCount:   3,
		ByActivity:   map[string]int{"write report": 75, "review": 75, "email": 0},
		Suggestions:  []string{"first hint", "second hint"},
	}

	rendered := Render(result)

	for _, want := range []string{
		"# Daily report for 2026-08-25",
		"Total: 2h 30m (150 minutes)",
		"Entries: 3",
		"## Breakdown",
		"## Suggestions",
		"- first hint",
		"- second hint",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, rendered)
		}
	}

	// descending minutes, ties alphabetical
	reviewIdx := strings.Index(rendered, "- review:")
	writeIdx := strings.Index(rendered, "- write report:")
	emailIdx := strings.Index(rendered, "- email:")
	if !(reviewIdx < writeIdx && writeIdx < emailIdx) {
		t.Fatalf("breakdown order wrong (review=%d write=%d email=%d):\n%s", reviewIdx, writeIdx, emailIdx, rendered)
	}
}

func TestRender_EmptyPeriod(t *testing.T) {
	t.Parallel()

	result := Result{
		Kind:        Week,
		PeriodStart: mustParse(t, "2026-08-24T00:00:00Z"),
		PeriodEnd:   mustParse(t, "2026-08-30T23:59:59Z"),
		Suggestions: []string{"No activity recorded in this period. Log entries with 'tempo log' to build your report."},
	}

	rendered := Render(result)

	if !strings.Contains(rendered, "Weekly report for 2026-08-24 to 2026-08-30") {
		t.Fatalf("missing weekly title:\n%s", rendered)
	}
	if !strings.Contains(rendered, "No activity recorded") {
		t.Fatalf("missing no-activity indication:\n%s", rendered)
	}
	if strings.Contains(rendered, "## Breakdown") {
		t.Fatalf("empty report should not render a breakdown:\n%s", rendered)
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	result := Result{
		Kind:         Month,
		PeriodStart:  mustParse(t, "2026-08-01T00:00:00Z"),
		PeriodEnd:    mustParse(t, "2026-08-31T23:59:59Z"),
		TotalMinutes: 300,
		EntryCount:   5,
		ByActivity:   map[string]int{"a": 100, "b": 100, "c": 100},
		Suggestions:  []string{"hint"},
	}

	if Render(result) != Render(result) {
		t.Fatal("rendering the same result twice produced different output")
	}
}
