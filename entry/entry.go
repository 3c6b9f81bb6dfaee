package entry

import (
	"strings"
	"time"
)

// TimeEntry is one logged activity. The timestamp is fixed at creation and
// entries are only ever appended or removed by id, never edited in place.
type TimeEntry struct {
	ID              int64     `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Note            string    `json:"note,omitempty"`
}

// BrainstormNote is one idea capture grouped under a topic.
type BrainstormNote struct {
	Timestamp time.Time `json:"timestamp"`
	Topic     string    `json:"topic"`
	Ideas     []string  `json:"ideas"`
}

// Document is the persisted top-level shape of the data file.
type Document struct {
	Entries    []TimeEntry      `json:"entries"`
	Brainstorm []BrainstormNote `json:"brainstorm"`
}

// ActivityKey normalizes a description for aggregation grouping:
// lowercased, trimmed, inner whitespace collapsed.
func ActivityKey(description string) string {
	return strings.Join(strings.Fields(strings.ToLower(description)), " ")
}
