package output

import (
	"encoding/json"
	"fmt"
	"os"

	"tempo/entry"
)

// JSONWriter emits the document in the same shape as the persisted data
// file, so an export can be loaded back without loss.
type JSONWriter struct{}

func (w *JSONWriter) Write(path string, doc entry.Document) error {
	if doc.Entries == nil {
		doc.Entries = []entry.TimeEntry{}
	}
	if doc.Brainstorm == nil {
		doc.Brainstorm = []entry.BrainstormNote{}
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write json output %s: %w", path, err)
	}
	return nil
}
