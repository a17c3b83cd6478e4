package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // hash160 is defined on RIPEMD-160

	"combinator/internal/domain"
)

// Hash160 returns RIPEMD-160(SHA-256(b)).
func Hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	_, _ = h.Write(sum[:])
	return h.Sum(nil)
}

// Fingerprint returns the BIP32 fingerprint of a compressed public key: the
// first four bytes of its hash160.
func Fingerprint(compressedPub []byte) domain.Fingerprint {
	var fp domain.Fingerprint
	copy(fp[:], Hash160(compressedPub))
	return fp
}
