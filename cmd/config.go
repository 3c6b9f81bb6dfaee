package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tempo configuration file values.",
	Long: `Create, edit, and display the tempo configuration file.

The configuration stores application-wide values:
- storage.path
- report.dominant_share / report.overwork_minutes
- voice.command / voice.timeout_seconds`,
	Example: `
  # Create default config in $HOME/.tempo.yaml
  tempo config create

  # Show active config and source file
  tempo config show

  # Open active config in editor (creates example if missing)
  tempo config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
