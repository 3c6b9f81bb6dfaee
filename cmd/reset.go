package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tempo/storage"
)

var (
	resetPromptInput  io.Reader = os.Stdin
	resetPromptOutput io.Writer = os.Stdout
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the complete data file",
	Long: `Destructive cleanup command.

This command deletes the complete JSON data file, entries and brainstorm
notes included. Before deletion, an interactive security prompt requires
typing exactly "Y".`,
	Example: `
  # Delete the data file (requires interactive confirmation)
  tempo reset --data ./data.json
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := storage.ResolvePath(dataFile, cfg.Storage.Path)
		if err != nil {
			return err
		}

		confirmed, err := confirmResetPrompt(resetPromptInput, resetPromptOutput, path)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("reset aborted: confirmation was not 'Y'")
		}

		if err := removeDataFile(path); err != nil {
			return err
		}
		fmt.Printf("Deleted data file: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func confirmResetPrompt(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("reset confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete data file %q? Type Y to confirm: ", path); err != nil {
		return false, fmt.Errorf("write reset confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			line = strings.TrimSpace(line)
			return line == "Y", nil
		}
		return false, fmt.Errorf("read reset confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}

func removeDataFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("data file not found: %s", path)
		}
		return fmt.Errorf("stat data file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("data path is a directory: %s", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete data file: %w", err)
	}
	return nil
}
