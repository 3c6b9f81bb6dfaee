package report

import (
	"fmt"
	"sort"
	"strings"
)

// FormatMinutes renders whole minutes as hours+minutes shorthand.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Render turns an aggregation result into the textual report. It touches no
// clock and no external state: the same result always renders the same text.
func Render(result Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", result.Kind.Title(result.PeriodStart, result.PeriodEnd))
	fmt.Fprintf(&b, "Total: %s (%d minutes)\n", FormatMinutes(result.TotalMinutes), result.TotalMinutes)
	fmt.Fprintf(&b, "Entries: %d\n", result.EntryCount)

	if result.EntryCount == 0 {
		b.WriteString("\nNo activity recorded.\n")
	} else {
		b.WriteString("\n## Breakdown\n\n")
		for _, line := range BreakdownLines(result.ByActivity) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("\n## Suggestions\n\n")
		for _, hint := range result.Suggestions {
			fmt.Fprintf(&b, "- %s\n", hint)
		}
	}

	return b.String()
}

// BreakdownLines lists activities by descending minutes, ties broken
// alphabetically on the label.
func BreakdownLines(byActivity map[string]int) []string {
	labels := make([]string, 0, len(byActivity))
	for label := range byActivity {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if byActivity[labels[i]] == byActivity[labels[j]] {
			return labels[i] < labels[j]
		}
		return byActivity[labels[i]] > byActivity[labels[j]]
	})

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		minutes := byActivity[label]
		lines = append(lines, fmt.Sprintf("%s: %s (%d minutes)", label, FormatMinutes(minutes), minutes))
	}
	return lines
}
