package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tempo/storage"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove one entry by its id",
	Long: `Remove a single entry by the id shown when it was logged (also visible in
csv/json exports). Entries are never edited in place; removal is the only
mutation besides append.`,
	Example: `
  tempo remove 12
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return inputErrf("entry id must be a positive integer, got %q", args[0])
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

		if err := store.Remove(id); err != nil {
			if errors.Is(err, storage.ErrEntryNotFound) {
				return inputErrf("no entry with id %d", id)
			}
			return err
		}
		if err := store.Flush(); err != nil {
			return err
		}

		fmt.Printf("Removed entry %d.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
