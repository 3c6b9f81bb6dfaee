package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tempo/brainstorm"
	"tempo/entry"
)

var brainstormCmd = &cobra.Command{
	Use:   "brainstorm <topic> <idea...>",
	Short: "Record ideas under a topic and print five follow-up prompts",
	Long: `Append one brainstorm note group to the data file and print exactly five
follow-up prompts derived from the topic and ideas. Prompts are fixed
templates: the same topic and ideas always produce the same prompts.`,
	Example: `
  tempo brainstorm "Focus" "fewer meetings" "deep work blocks"
`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(args[0])
		if topic == "" {
			return inputErrf("brainstorm topic must not be empty")
		}
		ideas := args[1:]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		store.AppendBrainstorm(entry.BrainstormNote{
			Timestamp: time.Now(),
			Topic:     topic,
			Ideas:     ideas,
		})
		if err := store.Flush(); err != nil {
			return err
		}

		fmt.Printf("Recorded %d idea(s) under %q.\n\nPrompts:\n", len(ideas), topic)
		for _, prompt := range brainstorm.Prompts(topic, ideas) {
			fmt.Printf("- %s\n", prompt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(brainstormCmd)
}
