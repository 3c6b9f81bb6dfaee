package parse

import (
	"errors"
	"testing"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "minutes", input: "45m", want: 45},
		{name: "hours", input: "2h", want: 120},
		{name: "combined", input: "1h30m", want: 90},
		{name: "decimal hours", input: "1.5h", want: 90},
		{name: "decimal hours with minutes", input: "1.5h15m", want: 105},
		{name: "bare integer is minutes", input: "90", want: 90},
		{name: "uppercase", input: "1H30M", want: 90},
		{name: "surrounding whitespace", input: "  45m  ", want: 45},
		{name: "zero minutes", input: "0m", want: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "words", input: "soon", wantErr: true},
		{name: "minutes before hours", input: "30m1h", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Duration(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("unexpected minutes for %q: want %d, got %d", tc.input, tc.want, got)
			}
		})
	}
}

func TestLogText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		want        LogInput
		wantNoDur   bool
		wantErr     bool
	}{
		{
			name:  "for token with note",
			input: "write report for 45m note: done",
			want:  LogInput{Description: "write report", DurationMinutes: 45, Note: "done"},
		},
		{
			name:  "combined token",
			input: "pair programming for 1h30m",
			want:  LogInput{Description: "pair programming", DurationMinutes: 90},
		},
		{
			name:  "bare minutes after for",
			input: "review PRs for 90",
			want:  LogInput{Description: "review PRs", DurationMinutes: 90},
		},
		{
			name:  "token without for",
			input: "standup 15m",
			want:  LogInput{Description: "standup", DurationMinutes: 15},
		},
		{
			name:  "token mid-sentence",
			input: "debug 2h the flaky test",
			want:  LogInput{Description: "debug the flaky test", DurationMinutes: 120},
		},
		{
			name:      "no duration",
			input:     "thinking about architecture",
			want:      LogInput{Description: "thinking about architecture"},
			wantNoDur: true,
		},
		{
			name:  "case insensitive markers",
			input: "write docs FOR 30m NOTE: first draft",
			want:  LogInput{Description: "write docs", DurationMinutes: 30, Note: "first draft"},
		},
		{
			name:  "note text never leaks into description",
			input: "plan sprint for 1h note: carry over 2h of spillover",
			want:  LogInput{Description: "plan sprint", DurationMinutes: 60, Note: "carry over 2h of spillover"},
		},
		{
			name:    "empty description",
			input:   "for 45m",
			wantErr: true,
		},
		{
			name:    "only whitespace",
			input:   "   ",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := LogText(tc.input)
			if tc.wantErr {
				if err == nil || errors.Is(err, ErrNoDuration) {
					t.Fatalf("expected fatal error for %q, got %v", tc.input, err)
				}
				return
			}
			if tc.wantNoDur {
				if !errors.Is(err, ErrNoDuration) {
					t.Fatalf("expected ErrNoDuration for %q, got %v", tc.input, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("unexpected result for %q:\nwant %+v\ngot  %+v", tc.input, tc.want, got)
			}
		})
	}
}
