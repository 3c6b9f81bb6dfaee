package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tempo/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Render today's aggregation",
	Long:  `Aggregate and render all entries logged on the current calendar day.`,
	Example: `
  # Today's totals, breakdown, and suggestions
  tempo summary
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		result := engineFromConfig(cfg).Aggregate(store, report.Day, time.Now())
		fmt.Print(report.Render(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
