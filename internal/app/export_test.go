package app

import (
	"math/big"

	"combinator/internal/progress"
)

// CaptureReporters records every progress reporter Run builds.
func (a *App) CaptureReporters() *[]*progress.Reporter {
	var reps []*progress.Reporter
	next := a.newReporter
	a.newReporter = func(total *big.Int, description string) *progress.Reporter {
		r := next(total, description)
		reps = append(reps, r)
		return r
	}
	return &reps
}
