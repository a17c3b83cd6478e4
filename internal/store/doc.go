// Package store persists search results to disk.
//
// Plain results are written as the single line the operator reads
// ("Passphrase FOUND!: ..." or "No passphrase found"). Sealed results are a
// JSON envelope whose payload is encrypted with ChaCha20-Poly1305 under a key
// stretched from the seal key with scrypt. All writes go through a temp file
// and rename, with mode 0600.
package store
