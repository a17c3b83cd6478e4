// Package crypto exposes the key derivation used to test passphrase guesses.
//
// Contents
//
//   - BIP39 mnemonic validation and seed stretching (ValidateMnemonic, Oracle)
//   - BIP32 master key derivation and its 4-byte public key fingerprint
//     (Oracle.Fingerprint, Fingerprint)
//   - hash160, the SHA-256 then RIPEMD-160 digest behind fingerprints (Hash160)
//   - Account-level xpub derivation at m/84'/0'/0' (Oracle.AccountXPub)
//
// # Notes
//
// Mnemonics and passphrases are NFKD-normalised before stretching, as BIP39
// requires. The stretched seed is wiped once the master key is built. An Oracle
// holds no mutable state and may be shared by any number of goroutines.
package crypto
