package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataPathEnv overrides every other data-path source when set.
const DataPathEnv = "TEMPO_DATA"

// ResolvePath picks the data file location: explicit flag value, then the
// TEMPO_DATA environment override, then the configured path, then the
// default under the user's home directory.
func ResolvePath(flagValue, configValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, nil
	}
	if env := strings.TrimSpace(os.Getenv(DataPathEnv)); env != "" {
		return env, nil
	}
	if strings.TrimSpace(configValue) != "" {
		return configValue, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tempo", "data.json"), nil
}
