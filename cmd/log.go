package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tempo/entry"
	"tempo/parse"
	"tempo/report"
	"tempo/voice"
)

var logUseVoice bool

var logCmd = &cobra.Command{
	Use:   "log [text]",
	Short: "Parse and append one activity entry",
	Long: `Append one activity entry to the data file.

The text carries an optional duration shorthand (45m, 2h, 1h30m, 1.5h, or
"for 90") and an optional trailing "note:" marker. The duration token is
removed from the description. Without a duration the entry is still logged
with zero minutes and a warning.

With --voice the text is captured through the configured speech recognizer
(voice.command) instead of the arguments.`,
	Example: `
  # Shorthand duration and note
  tempo log "write report for 45m note: status update"

  # Duration token without "for"
  tempo log "standup 15m"

  # Capture text through the speech recognizer
  tempo log --voice
`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		if logUseVoice {
			text, err = captureVoiceText(cfg.Voice.Command, time.Duration(cfg.Voice.TimeoutSeconds)*time.Second)
			if err != nil {
				return err
			}
		}
		if text == "" {
			return inputErrf("log text is required (or use --voice)")
		}

		input, err := parse.LogText(text)
		if err != nil && !errors.Is(err, parse.ErrNoDuration) {
			return inputErrf("parse log text: %w", err)
		}
		if errors.Is(err, parse.ErrNoDuration) {
			fmt.Fprintln(os.Stderr, "Warning: no duration detected, logging 0 minutes.")
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		stored := store.Append(entry.TimeEntry{
			Timestamp:       time.Now(),
			Description:     input.Description,
			DurationMinutes: input.DurationMinutes,
			Note:            input.Note,
		})
		if err := store.Flush(); err != nil {
			return err
		}

		fmt.Printf("Logged: %s (%s, id %d)\n", stored.Description, report.FormatMinutes(stored.DurationMinutes), stored.ID)
		return nil
	},
}

// captureVoiceText runs one bounded listen on the configured recognizer.
// Unavailability degrades to a clear message, never a crash.
func captureVoiceText(command string, timeout time.Duration) (string, error) {
	recognizer := voice.NewCommandRecognizer(command, timeout)

	fmt.Fprintln(os.Stderr, "Listening...")
	text, err := recognizer.Listen(context.Background())
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrUnavailable):
			return "", fmt.Errorf("voice unavailable (set voice.command in the config); type the text instead: %w", err)
		case errors.Is(err, voice.ErrNoSpeech):
			return "", fmt.Errorf("no speech recognized; type the text instead: %w", err)
		default:
			return "", fmt.Errorf("voice capture failed: %w", err)
		}
	}
	return text, nil
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVar(&logUseVoice, "voice", false, "Capture the log text via the configured speech recognizer")
}
