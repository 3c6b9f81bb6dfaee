// Package voice is the optional speech capture collaborator. The core never
// depends on a specific backend: a Recognizer is injected into the CLI and
// must report ErrUnavailable instead of failing hard when no engine exists.
package voice

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrUnavailable means no speech engine is configured or reachable. Callers
// fall back to typed text.
var ErrUnavailable = errors.New("voice capture unavailable")

// ErrNoSpeech means the engine ran but recognized nothing.
var ErrNoSpeech = errors.New("no speech recognized")

// Recognizer listens once and returns the recognized text. Implementations
// must respect the context deadline and never block indefinitely.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// CommandRecognizer shells out to a configured external recognizer command
// that prints the recognized text on stdout.
type CommandRecognizer struct {
	// Command is the recognizer invocation, e.g. "my-stt --lang en".
	Command string
	// Timeout bounds one capture.
	Timeout time.Duration
}

func NewCommandRecognizer(command string, timeout time.Duration) *CommandRecognizer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CommandRecognizer{Command: command, Timeout: timeout}
}

func (r *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	fields := strings.Fields(r.Command)
	if len(fields) == 0 {
		return "", ErrUnavailable
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return "", fmt.Errorf("recognizer command %q not found: %w", fields[0], ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, fields[0], fields[1:]...).Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("voice capture timed out after %s: %w", r.Timeout, ErrNoSpeech)
		}
		return "", fmt.Errorf("recognizer command failed: %w", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}
