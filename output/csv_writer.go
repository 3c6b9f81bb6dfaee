package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"tempo/entry"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, doc entry.Document) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"id", "timestamp", "description", "duration_minutes", "note"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, e := range doc.Entries {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Timestamp.Format(time.RFC3339),
			e.Description,
			strconv.Itoa(e.DurationMinutes),
			e.Note,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
