// Package search runs the parallel passphrase search.
//
// A single producer goroutine walks the lazy candidate sequence and feeds a
// bounded channel; a pool of workers (one per CPU by default) pulls from it,
// derives each candidate's fingerprint through the configured oracle and
// compares it with the target.
//
// # Semantics
//
//   - Find-any: the first worker to see a match claims the result slot with a
//     compare-and-swap and cancels the run. If several candidates match, which
//     one is returned is unspecified.
//   - Exhaustion is not an error: Run returns found == false and a nil error.
//   - Oracle failures are fatal and abort the whole run.
//   - Every evaluated candidate produces exactly one progress tick.
package search
