package report

import (
	"fmt"
	"sort"
)

const maxSuggestions = 5

// Suggest derives up to five ordered hints from the aggregation alone.
// Rules fire in a fixed order and use only the result and the engine
// thresholds, so the output is a pure function of its input.
func (g *Engine) Suggest(result Result) []string {
	if result.EntryCount == 0 || result.TotalMinutes == 0 {
		return []string{"No activity recorded in this period. Log entries with 'tempo log' to build your report."}
	}

	suggestions := make([]string, 0, maxSuggestions)

	topActivity, topMinutes := dominantActivity(result.ByActivity)
	if float64(topMinutes) > float64(result.TotalMinutes)*g.DominantShare {
		share := topMinutes * 100 / result.TotalMinutes
		suggestions = append(suggestions, fmt.Sprintf(
			"%q takes %d%% of the tracked time. Consider mixing in other tasks or breaks.", topActivity, share))
	}
	if result.TotalMinutes > g.OverworkMinutes {
		suggestions = append(suggestions, fmt.Sprintf(
			"More than %s tracked in this period. Plan time to rest and recover.", FormatMinutes(g.OverworkMinutes)))
	}
	if len(result.ByActivity) <= 2 {
		suggestions = append(suggestions,
			"Few distinct activities were logged. Record more categories to see how your time balances.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Time is spread evenly across activities. Keep the current rhythm and watch your key projects.")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// dominantActivity picks the activity with the most minutes; ties resolve
// alphabetically so the result is stable.
func dominantActivity(byActivity map[string]int) (string, int) {
	labels := make([]string, 0, len(byActivity))
	for label := range byActivity {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	top := ""
	topMinutes := -1
	for _, label := range labels {
		if byActivity[label] > topMinutes {
			top = label
			topMinutes = byActivity[label]
		}
	}
	return top, topMinutes
}
