// Package chaocipher implements John F. Byrne's Chaocipher.
//
// The cipher keeps two mutable wheels, each a permutation of A-Z. After every
// symbol both wheels are rotated so that the symbol just used sits at the
// zenith, then one symbol of each wheel is extracted and reinserted at the
// nadir. The two wheels extract at different offsets (zenith+1 for the
// ciphertext wheel, zenith+2 for the plaintext wheel, after one extra turn).
//
// The wheel state persists across calls: encrypting "A" then "A" is the same
// as encrypting "AA". Call Reset to start a new message. A Cipher must not be
// used from several goroutines at once.
package chaocipher

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const (
	name = "chaocipher"

	zenith = 0
	nadir  = 13
	size   = 26
)

// Cipher holds the keyed wheels and the evolving state.
type Cipher struct {
	plainKey  [size]byte
	cipherKey [size]byte

	pw, cw [size]byte
	tmp    [size]byte
}

var (
	_ oldcrypto.Block    = (*Cipher)(nil)
	_ oldcrypto.Resetter = (*Cipher)(nil)
)

// New returns a Chaocipher keyed by the starting plaintext and ciphertext
// wheels. Each key must be a permutation of A-Z.
func New(plainKey, cipherKey string) (*Cipher, error) {
	if !utils.IsPermutation(plainKey, utils.Alphabet) {
		return nil, oldcrypto.InvalidKeyf(name, "plaintext wheel %q is not a permutation of A-Z", plainKey)
	}
	if !utils.IsPermutation(cipherKey, utils.Alphabet) {
		return nil, oldcrypto.InvalidKeyf(name, "ciphertext wheel %q is not a permutation of A-Z", cipherKey)
	}
	c := &Cipher{}
	copy(c.plainKey[:], plainKey)
	copy(c.cipherKey[:], cipherKey)
	c.Reset()
	return c, nil
}

// NewWithPassphrase derives both wheels from passphrase with SHAKE256.
func NewWithPassphrase(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, oldcrypto.InvalidKeyf(name, "empty passphrase")
	}
	w := utils.DeriveWheels(passphrase, utils.Alphabet, 2)
	return New(w[0], w[1])
}

// Reset restores the wheels built from the key.
func (c *Cipher) Reset() {
	c.pw = c.plainKey
	c.cw = c.cipherKey
}

// Wheels returns the current plaintext and ciphertext wheels.
func (c *Cipher) Wheels() (plain, cipher string) {
	return string(c.pw[:]), string(c.cw[:])
}

func (c *Cipher) BlockSize() int { return 1 }

// Encrypt enciphers src, continuing from the current wheel state.
func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	if err := validate(src); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	for i, ch := range src {
		idx := index(&c.pw, ch)
		dst[i] = c.cw[idx]
		c.advance(idx)
	}
	return dst, nil
}

// Decrypt deciphers src, continuing from the current wheel state.
func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	if err := validate(src); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	for i, ch := range src {
		idx := index(&c.cw, ch)
		dst[i] = c.pw[idx]
		c.advance(idx)
	}
	return dst, nil
}

// validate checks the whole input before any wheel moves.
func validate(src []byte) error {
	for i, ch := range src {
		if ch < 'A' || ch > 'Z' {
			return oldcrypto.InvalidSymbol(name, ch, i)
		}
	}
	return nil
}

func index(w *[size]byte, ch byte) int {
	for i, v := range w {
		if v == ch {
			return i
		}
	}
	return -1
}

// advance permutes both wheels after the symbol at idx was used.
func (c *Cipher) advance(idx int) {
	c.rotate(&c.cw, idx)
	c.pluck(&c.cw, zenith+1)

	c.rotate(&c.pw, (idx+1)%size)
	c.pluck(&c.pw, zenith+2)
}

// rotate turns w left by n positions.
func (c *Cipher) rotate(w *[size]byte, n int) {
	copy(c.tmp[:], w[n:])
	copy(c.tmp[size-n:], w[:n])
	*w = c.tmp
}

// pluck extracts w[from] and reinserts it at the nadir.
func (c *Cipher) pluck(w *[size]byte, from int) {
	l := w[from]
	copy(w[from:nadir], w[from+1:nadir+1])
	w[nadir] = l
}
