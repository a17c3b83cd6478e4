package domain

// FingerprintOracle derives the master public key fingerprint for a mnemonic
// and passphrase. Implementations must be safe for concurrent use.
type FingerprintOracle interface {
	Fingerprint(seed Seed, passphrase string) (Fingerprint, error)
}

// Progress receives one tick per evaluated candidate. Close is called once the
// search has finished or aborted.
type Progress interface {
	Tick()
	Close()
}

// ResultStore persists the outcome of a search.
type ResultStore interface {
	SaveResult(res Result, sealKey string) error
	LoadResult(sealKey string) (Result, error)
}
