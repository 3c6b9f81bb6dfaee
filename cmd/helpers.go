package cmd

import (
	"fmt"

	"tempo/config"
	"tempo/report"
	"tempo/storage"
)

// usageError marks bad user input so Execute can pick a distinct exit code.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func inputErrf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func loadConfig() (*config.Config, error) {
	return config.LoadAndValidate()
}

// openStore resolves the data file path and opens the locked JSON store.
func openStore(cfg *config.Config) (*storage.JSONStore, error) {
	path, err := storage.ResolvePath(dataFile, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

func engineFromConfig(cfg *config.Config) *report.Engine {
	engine := report.NewEngine()
	if cfg.Report.DominantShare > 0 {
		engine.DominantShare = cfg.Report.DominantShare
	}
	if cfg.Report.OverworkMinutes > 0 {
		engine.OverworkMinutes = cfg.Report.OverworkMinutes
	}
	return engine
}
