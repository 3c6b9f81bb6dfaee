package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tempo/entry"
	"tempo/output"
)

var exportCmd = &cobra.Command{
	Use:   "export [format] <path>",
	Short: "Write the full data set to a file in json, csv, markdown, or xlsx",
	Long: `Serialize all entries and brainstorm notes to the given path.

Formats:
- json: the full document, loadable back as a data file
- csv: one row per entry
- markdown: all-time summary plus entries and brainstorm notes
- xlsx: Entries and Brainstorm sheets

When the format argument is omitted it is inferred from the path extension.`,
	Example: `
  # Explicit format
  tempo export json ./backup.json
  tempo export markdown ./worklog.md

  # Format inferred from the extension
  tempo export ./worklog.csv
  tempo export ./worklog.xlsx
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var format, path string
		if len(args) == 2 {
			format, path = args[0], args[1]
		} else {
			path = args[0]
			format = output.DetectFormat(path)
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return inputErrf("%w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		doc := entry.Document{
			Entries:    store.Entries(),
			Brainstorm: store.BrainstormNotes(),
		}
		if err := writer.Write(path, doc); err != nil {
			return err
		}

		fmt.Printf("Export completed. Entries: %d, Notes: %d, Format: %s, File: %s\n",
			len(doc.Entries), len(doc.Brainstorm), format, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
