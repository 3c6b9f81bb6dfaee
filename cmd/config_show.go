package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tempo/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  tempo config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("storage.path: %s\n", cfg.Storage.Path)
		fmt.Printf("report.dominant_share: %.2f\n", cfg.Report.DominantShare)
		fmt.Printf("report.overwork_minutes: %d\n", cfg.Report.OverworkMinutes)
		fmt.Printf("voice.command: %s\n", cfg.Voice.Command)
		fmt.Printf("voice.timeout_seconds: %d\n", cfg.Voice.TimeoutSeconds)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
