package app

import (
	"log/slog"
	"os"

	"combinator/internal/crypto"
	"combinator/internal/domain"
	"combinator/internal/logging"
	"combinator/internal/store"
)

// Wire bundles the logger, oracle and store used by the commands.
type Wire struct {
	Log     *slog.Logger
	Oracle  *crypto.Oracle
	Results domain.ResultStore
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Wire{
		Log:     logging.New(level, stderr),
		Oracle:  crypto.NewOracle(nil),
		Results: store.NewResultFileStore(cfg.Output),
	}, nil
}
