package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"combinator/internal/domain"
	"combinator/internal/util/memzero"
)

// envelopeVersion is written into every sealed result and bound into its
// additional data.
const envelopeVersion = 1

const (
	saltSize = 16
	// maxScryptN caps the cost read back from a file so a crafted envelope
	// cannot demand gigabytes of memory.
	maxScryptN = 1 << 20
)

var errMalformedEnvelope = errors.New("malformed sealed result")

// envelope is the on-disk JSON form of a sealed result.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// additionalData authenticates every header field, so a version or cost
// change is detected rather than silently reinterpreted.
func (e *envelope) additionalData() []byte {
	ad := fmt.Appendf(nil, "combinator/result v=%d scrypt N=%d r=%d p=%d salt=", e.V, e.N, e.R, e.P)
	return append(ad, e.Salt...)
}

func (e *envelope) check() error {
	switch {
	case e.V < 1 || e.V > envelopeVersion:
		return fmt.Errorf("%w: unsupported version %d", errMalformedEnvelope, e.V)
	case len(e.Salt) != saltSize:
		return fmt.Errorf("%w: salt is %d bytes", errMalformedEnvelope, len(e.Salt))
	case len(e.Nonce) != chacha20poly1305.NonceSizeX:
		return fmt.Errorf("%w: nonce is %d bytes", errMalformedEnvelope, len(e.Nonce))
	case e.N < 2 || e.N > maxScryptN || e.N&(e.N-1) != 0:
		return fmt.Errorf("%w: scrypt N=%d", errMalformedEnvelope, e.N)
	case e.R < 1 || e.P < 1 || e.R*e.P >= 1<<30/128:
		return fmt.Errorf("%w: scrypt r=%d p=%d", errMalformedEnvelope, e.R, e.P)
	}
	return nil
}

// key derives the AEAD key for e from sealKey. Callers zero it.
func (e *envelope) key(sealKey string) ([]byte, error) {
	return scrypt.Key([]byte(sealKey), e.Salt, e.N, e.R, e.P, chacha20poly1305.KeySize)
}

// seal encrypts raw under a key derived from sealKey and returns the JSON
// envelope.
func seal(sealKey string, raw []byte, N, r, p int) ([]byte, error) {
	env := envelope{
		V:     envelopeVersion,
		Salt:  make([]byte, saltSize),
		N:     N,
		R:     r,
		P:     p,
		Nonce: make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, err
	}
	if err := env.check(); err != nil {
		return nil, err
	}

	key, err := env.key(sealKey)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	env.Cipher = aead.Seal(nil, env.Nonce, raw, env.additionalData())
	return json.Marshal(env)
}

// open checks and decrypts a JSON envelope written by seal.
func open(sealKey string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedEnvelope, err)
	}
	if err := env.check(); err != nil {
		return nil, err
	}

	key, err := env.key(sealKey)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, env.additionalData())
	if err != nil {
		return nil, domain.ErrWrongSealKey
	}
	return pt, nil
}

// scryptParamsDefault returns the cost used for new sealed results.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
