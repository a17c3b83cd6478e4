package app

import (
	"context"
	"fmt"
	"math/big"

	"combinator/internal/combinatorics"
	"combinator/internal/domain"
	"combinator/internal/progress"
	"combinator/internal/services/search"
)

// App runs the operations behind the CLI commands.
type App struct {
	cfg  Config
	wire *Wire

	// newReporter builds the progress reporter for a run from its total.
	newReporter func(total *big.Int, description string) *progress.Reporter
}

// New builds an App from cfg.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, wire: w}
	a.newReporter = func(total *big.Int, description string) *progress.Reporter {
		return progress.New(total, progress.Options{Writer: cfg.Progress, Description: description})
	}
	return a, nil
}

// Wire exposes the constructed dependencies.
func (a *App) Wire() *Wire { return a.wire }

// Count returns the size of the configured search space.
func (a *App) Count() (*big.Int, error) {
	sc, err := a.cfg.CountConfig()
	if err != nil {
		return nil, err
	}
	return combinatorics.Size(sc)
}

// Run searches the configured space and persists the outcome. The progress
// total is the size of the space, known before the first candidate is tried. An interrupted
// search is returned with its error and is not persisted.
func (a *App) Run(ctx context.Context) (domain.Result, error) {
	sc, err := a.cfg.SearchConfig()
	if err != nil {
		return domain.Result{}, err
	}
	total, err := combinatorics.Size(sc)
	if err != nil {
		return domain.Result{}, err
	}

	rep := a.newReporter(total, sc.Strategy.String())
	rep.Start()

	svc := search.New(sc, a.wire.Oracle, search.Options{
		Workers:  a.cfg.Workers,
		Progress: rep,
		Logger:   a.wire.Log,
	})
	res, err := svc.Result(ctx)
	if err != nil {
		return res, err
	}

	if err := a.wire.Results.SaveResult(res, a.cfg.SealKey); err != nil {
		return res, fmt.Errorf("saving result: %w", err)
	}
	return res, nil
}

// Fingerprint returns the master fingerprint for the configured seed and the
// given passphrase.
func (a *App) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	seed, err := a.cfg.seed()
	if err != nil {
		return domain.Fingerprint{}, err
	}
	return a.wire.Oracle.Fingerprint(seed, passphrase)
}

// XPub returns the m/84'/0'/0' account xpub for the configured seed and the
// given passphrase.
func (a *App) XPub(passphrase string) (string, error) {
	seed, err := a.cfg.seed()
	if err != nil {
		return "", err
	}
	return a.wire.Oracle.AccountXPub(seed, passphrase)
}

// Reveal opens a sealed result file.
func (a *App) Reveal() (domain.Result, error) {
	return a.wire.Results.LoadResult(a.cfg.SealKey)
}
