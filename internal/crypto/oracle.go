package crypto

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"combinator/internal/domain"
	"combinator/internal/util/memzero"
)

// accountPath is m/84'/0'/0', the native segwit account used by AccountXPub.
var accountPath = []uint32{
	hdkeychain.HardenedKeyStart + 84,
	hdkeychain.HardenedKeyStart + 0,
	hdkeychain.HardenedKeyStart + 0,
}

// Oracle derives BIP32 master fingerprints from a mnemonic and passphrase.
type Oracle struct {
	net *chaincfg.Params
}

// NewOracle returns an Oracle for net. A nil net means Bitcoin mainnet.
func NewOracle(net *chaincfg.Params) *Oracle {
	if net == nil {
		net = &chaincfg.MainNetParams
	}
	return &Oracle{net: net}
}

// ValidateMnemonic reports whether seed is a well-formed English BIP39
// mnemonic, checksum included.
func ValidateMnemonic(seed domain.Seed) error {
	if !bip39.IsMnemonicValid(normalizeMnemonic(seed)) {
		return domain.ErrInvalidMnemonic
	}
	return nil
}

// Fingerprint returns the fingerprint of the master public key derived from
// seed and passphrase.
func (o *Oracle) Fingerprint(seed domain.Seed, passphrase string) (domain.Fingerprint, error) {
	master, err := o.masterKey(seed, passphrase)
	if err != nil {
		return domain.Fingerprint{}, err
	}
	pub, err := master.ECPubKey()
	if err != nil {
		return domain.Fingerprint{}, fmt.Errorf("%w: public key: %v", domain.ErrDerivation, err)
	}
	return Fingerprint(pub.SerializeCompressed()), nil
}

// AccountXPub returns the serialised extended public key at m/84'/0'/0'.
func (o *Oracle) AccountXPub(seed domain.Seed, passphrase string) (string, error) {
	key, err := o.masterKey(seed, passphrase)
	if err != nil {
		return "", err
	}
	for _, idx := range accountPath {
		if key, err = key.Derive(idx); err != nil {
			return "", fmt.Errorf("%w: child %d: %v", domain.ErrDerivation, idx, err)
		}
	}
	pub, err := key.Neuter()
	if err != nil {
		return "", fmt.Errorf("%w: neuter: %v", domain.ErrDerivation, err)
	}
	return pub.String(), nil
}

func (o *Oracle) masterKey(seed domain.Seed, passphrase string) (*hdkeychain.ExtendedKey, error) {
	stretched, err := bip39.NewSeedWithErrorChecking(normalizeMnemonic(seed), norm.NFKD.String(passphrase))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMnemonic, err)
	}
	defer memzero.Zero(stretched)

	master, err := hdkeychain.NewMaster(stretched, o.net)
	if err != nil {
		return nil, fmt.Errorf("%w: master key: %v", domain.ErrDerivation, err)
	}
	return master, nil
}

func normalizeMnemonic(seed domain.Seed) string {
	return strings.Join(strings.Fields(norm.NFKD.String(seed.String())), " ")
}

// Compile-time assertion that Oracle implements domain.FingerprintOracle.
var _ domain.FingerprintOracle = (*Oracle)(nil)
