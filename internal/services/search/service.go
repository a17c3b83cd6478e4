package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"combinator/internal/combinatorics"
	"combinator/internal/domain"
	"combinator/internal/progress"
)

// Options tunes a Service. The zero value is usable.
type Options struct {
	Workers  int             // parallel workers; <= 0 means runtime.NumCPU()
	Progress domain.Progress // receives one tick per evaluated candidate; nil disables
	Logger   *slog.Logger    // nil means slog.Default()
}

// Service searches a configured candidate space for a target fingerprint.
type Service struct {
	cfg      domain.SearchConfig
	oracle   domain.FingerprintOracle
	workers  int
	progress domain.Progress
	log      *slog.Logger

	evaluated atomic.Uint64
}

// New returns a search service for cfg backed by oracle.
func New(cfg domain.SearchConfig, oracle domain.FingerprintOracle, opts Options) *Service {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Progress == nil {
		opts.Progress = progress.Noop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		oracle:   oracle,
		workers:  opts.Workers,
		progress: opts.Progress,
		log:      opts.Logger,
	}
}

// Evaluated returns how many candidates the current or last Run has checked.
func (s *Service) Evaluated() uint64 { return s.evaluated.Load() }

// Run searches until a candidate's fingerprint equals the target or the space
// is exhausted. It returns the matching candidate and true, or false when
// nothing matched. Progress is closed before Run returns, so later runs of the
// same Service report to a closed reporter and only Evaluated restarts.
func (s *Service) Run(ctx context.Context) (domain.Candidate, bool, error) {
	defer s.progress.Close()
	s.evaluated.Store(0)

	if err := combinatorics.Validate(s.cfg); err != nil {
		return nil, false, err
	}
	seq, err := combinatorics.Enumerate(s.cfg)
	if err != nil {
		return nil, false, err
	}
	size, err := combinatorics.Size(s.cfg)
	if err != nil {
		return nil, false, err
	}
	s.log.Info("starting search",
		"strategy", s.cfg.Strategy,
		"candidates", size.String(),
		"workers", s.workers,
		"target", s.cfg.Target,
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	candidates := make(chan domain.Candidate, s.workers*4)
	g.Go(func() error {
		defer close(candidates)
		for c := range seq {
			select {
			case candidates <- c:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	var match atomic.Pointer[domain.Candidate]
	for i := 0; i < s.workers; i++ {
		g.Go(func() error {
			for c := range candidates {
				if gctx.Err() != nil {
					return nil
				}
				fp, err := s.oracle.Fingerprint(s.cfg.Seed, c.Compact())
				if err != nil {
					return fmt.Errorf("%w: after %d candidates: %w", domain.ErrDerivation, s.evaluated.Load(), err)
				}
				s.evaluated.Add(1)
				s.progress.Tick()
				if fp != s.cfg.Target {
					continue
				}
				if match.CompareAndSwap(nil, &c) {
					s.log.Debug("match claimed", "worker", i)
					cancel()
				}
				return nil
			}
			return nil
		})
	}

	err = g.Wait()
	if m := match.Load(); m != nil {
		s.log.Info("passphrase found", "evaluated", s.evaluated.Load())
		return *m, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.log.Info("search exhausted", "evaluated", s.evaluated.Load())
	return nil, false, nil
}

// Result runs the search and wraps the outcome in a domain.Result.
func (s *Service) Result(ctx context.Context) (domain.Result, error) {
	c, found, err := s.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return domain.Result{}, err
	}
	res := domain.Result{
		Found:      found,
		Passphrase: c,
		Strategy:   s.cfg.Strategy,
		Target:     s.cfg.Target,
		Evaluated:  s.evaluated.Load(),
	}
	return res, err
}
