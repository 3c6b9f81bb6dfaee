package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"tempo/entry"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func sampleDocument(t *testing.T) entry.Document {
	t.Helper()
	return entry.Document{
		Entries: []entry.TimeEntry{
			{
				ID:              1,
				Timestamp:       mustParse(t, "2026-08-25T09:00:00Z"),
				Description:     "write report",
				DurationMinutes: 45,
				Note:            "done",
			},
			{
				ID:              2,
				Timestamp:       mustParse(t, "2026-08-25T14:00:00Z"),
				Description:     "review",
				DurationMinutes: 30,
			},
		},
		Brainstorm: []entry.BrainstormNote{
			{
				Timestamp: mustParse(t, "2026-08-25T15:00:00Z"),
				Topic:     "Focus",
				Ideas:     []string{"idea1", "idea2"},
			},
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "csv", "markdown", "md", "xlsx", "excel", " JSON "} {
		if _, err := WriterForFormat(format); err != nil {
			t.Fatalf("expected writer for %q, got error: %v", format, err)
		}
	}
	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "out.json", want: "json"},
		{path: "out.csv", want: "csv"},
		{path: "out.md", want: "markdown"},
		{path: "out.markdown", want: "markdown"},
		{path: "out.xlsx", want: "xlsx"},
		{path: "out", want: "json"},
	}

	for _, tc := range tests {
		if got := DetectFormat(tc.path); got != tc.want {
			t.Fatalf("DetectFormat(%q): want %q, got %q", tc.path, tc.want, got)
		}
	}
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "export.json")

	if err := (&JSONWriter{}).Write(path, doc); err != nil {
		t.Fatalf("write json export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var reloaded entry.Document
	if err := json.Unmarshal(raw, &reloaded); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(reloaded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reloaded.Entries))
	}
	got := reloaded.Entries[0]
	if got.Description != "write report" || got.DurationMinutes != 45 || got.Note != "done" {
		t.Fatalf("entry did not round-trip: %+v", got)
	}
	if !reflect.DeepEqual(reloaded.Brainstorm, doc.Brainstorm) {
		t.Fatalf("brainstorm notes did not round-trip:\nwant %+v\ngot  %+v", doc.Brainstorm, reloaded.Brainstorm)
	}
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.csv")
	if err := (&CSVWriter{}).Write(path, sampleDocument(t)); err != nil {
		t.Fatalf("write csv export: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	wantHeader := []string{"id", "timestamp", "description", "duration_minutes", "note"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "write report" || rows[1][3] != "45" || rows[1][4] != "done" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.md")
	if err := (&MarkdownWriter{}).Write(path, sampleDocument(t)); err != nil {
		t.Fatalf("write markdown export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	text := string(raw)

	for _, want := range []string{
		"# All-time summary",
		"Total: 1h 15m (75 minutes)",
		"## Breakdown",
		"- write report: 45m (45 minutes)",
		"## Entries",
		"note: done",
		"## Brainstorm notes",
		"### Focus (2026-08-25)",
		"- idea1",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("markdown export missing %q:\n%s", want, text)
		}
	}
}

func TestMarkdownWriter_EmptyDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.md")
	if err := (&MarkdownWriter{}).Write(path, entry.Document{}); err != nil {
		t.Fatalf("write markdown export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(raw), "No activity recorded") {
		t.Fatalf("empty export missing no-activity suggestion:\n%s", raw)
	}
}

func TestExcelWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.xlsx")
	if err := (&ExcelWriter{}).Write(path, sampleDocument(t)); err != nil {
		t.Fatalf("write excel export: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat export: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("excel export is empty")
	}
}
