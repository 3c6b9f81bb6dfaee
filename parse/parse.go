package parse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoDuration signals that the log text carried no recognizable duration
// token. The entry is still usable with zero minutes; callers decide whether
// to warn or reject.
var ErrNoDuration = errors.New("no duration detected")

// LogInput is the result of parsing one free-text log line.
type LogInput struct {
	Description     string
	DurationMinutes int
	Note            string
}

// durationMatcher converts one shorthand form into minutes. Matchers are
// tried in order; the first full match wins.
type durationMatcher struct {
	pattern *regexp.Regexp
	minutes func(groups []string) (int, error)
}

var durationMatchers = []durationMatcher{
	{
		// combined hours+minutes: 1h30m
		pattern: regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)h(\d+)m$`),
		minutes: func(groups []string) (int, error) {
			hours, err := strconv.ParseFloat(groups[1], 64)
			if err != nil {
				return 0, err
			}
			mins, err := strconv.Atoi(groups[2])
			if err != nil {
				return 0, err
			}
			return int(math.Round(hours*60)) + mins, nil
		},
	},
	{
		// hours only, decimals allowed: 2h, 1.5h
		pattern: regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)h$`),
		minutes: func(groups []string) (int, error) {
			hours, err := strconv.ParseFloat(groups[1], 64)
			if err != nil {
				return 0, err
			}
			return int(math.Round(hours * 60)), nil
		},
	},
	{
		// minutes only: 45m
		pattern: regexp.MustCompile(`(?i)^(\d+)m$`),
		minutes: func(groups []string) (int, error) {
			return strconv.Atoi(groups[1])
		},
	},
}

// Duration parses one shorthand token ("45m", "2h", "1h30m", "1.5h", "90")
// into whole minutes. Bare integers are read as minutes.
func Duration(raw string) (int, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return 0, fmt.Errorf("empty duration token")
	}

	if bareMinutes.MatchString(token) {
		minutes, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("parse minutes %q: %w", raw, err)
		}
		return minutes, nil
	}

	for _, matcher := range durationMatchers {
		groups := matcher.pattern.FindStringSubmatch(token)
		if groups == nil {
			continue
		}
		minutes, err := matcher.minutes(groups)
		if err != nil {
			return 0, fmt.Errorf("parse duration %q: %w", raw, err)
		}
		if minutes < 0 {
			return 0, fmt.Errorf("duration must not be negative")
		}
		return minutes, nil
	}

	return 0, fmt.Errorf("unsupported duration format: %q", raw)
}

var (
	bareMinutes = regexp.MustCompile(`^\d+$`)
	notePattern = regexp.MustCompile(`(?i)\bnote:\s*`)
	forPattern  = regexp.MustCompile(`(?i)\bfor\s+(\S+)\s*`)
	// standalone shorthand token without a leading "for"
	tokenPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?h\d+m|\d+(?:\.\d+)?h|\d+m)\b\s*`)
)

// LogText parses a full log line like "write report for 45m note: done".
// The duration token (and a leading "for") is removed from the description,
// everything after a "note:" marker becomes the note. When no duration token
// is present the returned input has zero minutes and the error is
// ErrNoDuration; the rest of the input is still valid.
func LogText(text string) (LogInput, error) {
	working := text
	note := ""
	if loc := notePattern.FindStringIndex(working); loc != nil {
		note = strings.TrimSpace(working[loc[1]:])
		working = working[:loc[0]]
	}

	input := LogInput{Note: note}

	found := false
	if groups := forPattern.FindStringSubmatchIndex(working); groups != nil {
		token := working[groups[2]:groups[3]]
		if minutes, err := Duration(token); err == nil {
			input.DurationMinutes = minutes
			working = working[:groups[0]] + working[groups[1]:]
			found = true
		}
	}
	if !found {
		if groups := tokenPattern.FindStringSubmatchIndex(working); groups != nil {
			minutes, err := Duration(working[groups[2]:groups[3]])
			if err == nil {
				input.DurationMinutes = minutes
				working = working[:groups[0]] + working[groups[1]:]
				found = true
			}
		}
	}

	input.Description = strings.TrimSpace(working)
	if input.Description == "" {
		return LogInput{}, fmt.Errorf("activity description must not be empty")
	}
	if !found {
		return input, ErrNoDuration
	}
	return input, nil
}
