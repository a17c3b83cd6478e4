package domain

import "errors"

// Configuration errors. They are reported before any search work starts.
var (
	ErrNoWords            = errors.New("no word groups configured")
	ErrEmptyGroup         = errors.New("word group is empty")
	ErrInvalidWords       = errors.New("word groups are malformed")
	ErrInvalidFingerprint = errors.New("fingerprint must be 4 bytes of hex")
	ErrInvalidMnemonic    = errors.New("seed is not a valid BIP39 mnemonic")
	ErrLengthExceedsWords = errors.New("passphrase length exceeds the number of words")
	ErrInvalidLength      = errors.New("passphrase length must not be negative")
)

// ErrDerivation marks a key derivation failure for a candidate. It aborts the
// whole search.
var ErrDerivation = errors.New("key derivation failed")

// ErrWrongSealKey is returned when a sealed result cannot be opened.
var ErrWrongSealKey = errors.New("wrong seal key or corrupted result")
