package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tempo/entry"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, doc entry.Document) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, "Entries"); err != nil {
		return fmt.Errorf("rename entries sheet: %w", err)
	}

	headers := []string{"ID", "Timestamp", "Description", "DurationMinutes", "Note"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue("Entries", cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, e := range doc.Entries {
		row := i + 2
		values := []string{
			strconv.FormatInt(e.ID, 10),
			e.Timestamp.Format(time.RFC3339),
			e.Description,
			strconv.Itoa(e.DurationMinutes),
			e.Note,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue("Entries", cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if len(doc.Brainstorm) > 0 {
		if _, err := file.NewSheet("Brainstorm"); err != nil {
			return fmt.Errorf("create brainstorm sheet: %w", err)
		}
		brainstormHeaders := []string{"Timestamp", "Topic", "Ideas"}
		for col, header := range brainstormHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := file.SetCellValue("Brainstorm", cell, header); err != nil {
				return fmt.Errorf("set excel header %s: %w", cell, err)
			}
		}
		for i, n := range doc.Brainstorm {
			row := i + 2
			values := []string{
				n.Timestamp.Format(time.RFC3339),
				n.Topic,
				strings.Join(n.Ideas, "; "),
			}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := file.SetCellValue("Brainstorm", cell, value); err != nil {
					return fmt.Errorf("set excel value %s: %w", cell, err)
				}
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
