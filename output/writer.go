package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"tempo/entry"
)

// Writer serializes the full document to one output file.
type Writer interface {
	Write(path string, doc entry.Document) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "json":
		return &JSONWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s (supported: json, csv, markdown, xlsx)", format)
	}
}

// DetectFormat infers the export format from the output file extension,
// defaulting to json.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "csv":
		return "csv"
	case "md", "markdown":
		return "markdown"
	case "xlsx", "xlsm", "xls":
		return "xlsx"
	default:
		return "json"
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
