package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tempo/report"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   "report {daily|weekly|monthly|yearly}",
	Short: "Render the aggregation for one calendar period",
	Long: `Aggregate entries into the calendar period containing the anchor date and
render the report: total time, per-activity breakdown, and suggestions.

Weeks run Monday through Sunday. The anchor defaults to today and can be set
explicitly with --date.`,
	Example: `
  # This week's report
  tempo report weekly

  # Report for the month containing a given date
  tempo report monthly --date 2026-02-14
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := report.KindFromString(args[0])
		if err != nil {
			return inputErrf("%w", err)
		}

		anchor := time.Now()
		if strings.TrimSpace(reportDate) != "" {
			anchor, err = time.ParseInLocation("2006-01-02", reportDate, time.Local)
			if err != nil {
				return inputErrf("parse --date %q (expected YYYY-MM-DD): %w", reportDate, err)
			}
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

		result := engineFromConfig(cfg).Aggregate(store, kind, anchor)
		fmt.Print(report.Render(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDate, "date", "", "Anchor date YYYY-MM-DD (default: today)")
}
