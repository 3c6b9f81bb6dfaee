package report

import (
	"time"

	"tempo/entry"
)

// Result is the derived aggregation for one calendar period. It is never
// persisted; every report request recomputes it.
type Result struct {
	Kind         Kind
	PeriodStart  time.Time
	PeriodEnd    time.Time
	TotalMinutes int
	ByActivity   map[string]int
	EntryCount   int
	Suggestions  []string
}

// EntryQuerier is the slice of the store the engine needs.
type EntryQuerier interface {
	Query(start, end time.Time) []entry.TimeEntry
}

// Engine buckets entries into calendar periods and derives totals and
// suggestions. Thresholds are fixed per engine so identical input always
// produces identical output.
type Engine struct {
	// DominantShare is the fraction of total minutes above which a single
	// activity triggers a diversification hint.
	DominantShare float64
	// OverworkMinutes is the per-period total above which a rest hint fires.
	OverworkMinutes int
}

func NewEngine() *Engine {
	return &Engine{
		DominantShare:   0.6,
		OverworkMinutes: 600,
	}
}

// Aggregate computes the Result for the period of the given kind containing
// the anchor instant. The anchor is always passed in explicitly; the engine
// never reads the clock.
func (g *Engine) Aggregate(store EntryQuerier, kind Kind, anchor time.Time) Result {
	start, end := kind.Bounds(anchor)
	entries := store.Query(start, end)
	total, byActivity := Breakdown(entries)

	result := Result{
		Kind:         kind,
		PeriodStart:  start,
		PeriodEnd:    end,
		TotalMinutes: total,
		ByActivity:   byActivity,
		EntryCount:   len(entries),
	}
	result.Suggestions = g.Suggest(result)
	return result
}

// Breakdown sums minutes overall and per normalized activity label.
func Breakdown(entries []entry.TimeEntry) (int, map[string]int) {
	total := 0
	byActivity := make(map[string]int, len(entries))
	for _, e := range entries {
		total += e.DurationMinutes
		byActivity[entry.ActivityKey(e.Description)] += e.DurationMinutes
	}
	return total, byActivity
}
