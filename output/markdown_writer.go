package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"tempo/entry"
	"tempo/report"
)

// MarkdownWriter renders an all-time summary followed by the raw entries
// and brainstorm notes.
type MarkdownWriter struct{}

func (w *MarkdownWriter) Write(path string, doc entry.Document) error {
	var b strings.Builder

	total, byActivity := report.Breakdown(doc.Entries)

	b.WriteString("# All-time summary\n\n")
	fmt.Fprintf(&b, "Total: %s (%d minutes)\n", report.FormatMinutes(total), total)
	fmt.Fprintf(&b, "Entries: %d\n", len(doc.Entries))

	if len(doc.Entries) > 0 {
		b.WriteString("\n## Breakdown\n\n")
		for _, line := range report.BreakdownLines(byActivity) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	suggestions := report.NewEngine().Suggest(report.Result{
		TotalMinutes: total,
		ByActivity:   byActivity,
		EntryCount:   len(doc.Entries),
	})
	if len(suggestions) > 0 {
		b.WriteString("\n## Suggestions\n\n")
		for _, hint := range suggestions {
			fmt.Fprintf(&b, "- %s\n", hint)
		}
	}

	if len(doc.Entries) > 0 {
		b.WriteString("\n## Entries\n\n")
		for _, e := range doc.Entries {
			fmt.Fprintf(&b, "- %s | %s | %s", e.Timestamp.Format(time.RFC3339), e.Description, report.FormatMinutes(e.DurationMinutes))
			if e.Note != "" {
				fmt.Fprintf(&b, " | note: %s", e.Note)
			}
			b.WriteString("\n")
		}
	}

	if len(doc.Brainstorm) > 0 {
		b.WriteString("\n## Brainstorm notes\n\n")
		for _, n := range doc.Brainstorm {
			fmt.Fprintf(&b, "### %s (%s)\n\n", n.Topic, n.Timestamp.Format("2006-01-02"))
			for _, idea := range n.Ideas {
				fmt.Fprintf(&b, "- %s\n", idea)
			}
			b.WriteString("\n")
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown output %s: %w", path, err)
	}
	return nil
}
