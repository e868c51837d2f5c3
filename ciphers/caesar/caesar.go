// Package caesar implements the Caesar shift cipher over a configurable alphabet.
//
// Symbols outside the alphabet are rejected with ErrInvalidSymbol unless the
// cipher is built WithPassThrough(true), in which case they are copied
// unchanged by both Encrypt and Decrypt.
package caesar

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const name = "caesar"

// Cipher is an immutable Caesar cipher.
type Cipher struct {
	alphabet    string
	shift       int
	passThrough bool
	enc, dec    [256]int16
}

var _ oldcrypto.Block = (*Cipher)(nil)

type config struct {
	alphabet    string
	passThrough bool
}

// Option configures a Caesar cipher.
type Option func(*config) error

// WithAlphabet replaces the default A-Z alphabet.
func WithAlphabet(alphabet string) Option {
	return func(c *config) error {
		if alphabet == "" || !utils.Unique(alphabet) {
			return oldcrypto.InvalidConfigf(name, "alphabet %q must be non-empty with unique symbols", alphabet)
		}
		c.alphabet = alphabet
		return nil
	}
}

// WithPassThrough copies non-alphabet symbols instead of rejecting them.
func WithPassThrough(on bool) Option {
	return func(c *config) error {
		c.passThrough = on
		return nil
	}
}

// New returns a Caesar cipher. Any integer shift is accepted and reduced
// modulo the alphabet size, so -1 and 25 are the same key over A-Z.
func New(shift int, opts ...Option) (*Cipher, error) {
	cfg := config{alphabet: utils.Alphabet}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	n := len(cfg.alphabet)
	c := &Cipher{
		alphabet:    cfg.alphabet,
		shift:       ((shift % n) + n) % n,
		passThrough: cfg.passThrough,
	}
	for i := range c.enc {
		c.enc[i], c.dec[i] = -1, -1
	}
	for i := 0; i < n; i++ {
		c.enc[cfg.alphabet[i]] = int16(cfg.alphabet[(i+c.shift)%n])
		c.dec[cfg.alphabet[i]] = int16(cfg.alphabet[(i-c.shift+n)%n])
	}
	return c, nil
}

// Shift returns the normalised shift.
func (c *Cipher) Shift() int { return c.shift }

func (c *Cipher) BlockSize() int { return 1 }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	return c.transform(src, &c.enc)
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	return c.transform(src, &c.dec)
}

func (c *Cipher) transform(src []byte, table *[256]int16) ([]byte, error) {
	dst := make([]byte, len(src))
	for i, ch := range src {
		v := table[ch]
		if v < 0 {
			if !c.passThrough {
				return nil, oldcrypto.InvalidSymbol(name, ch, i)
			}
			dst[i] = ch
			continue
		}
		dst[i] = byte(v)
	}
	return dst, nil
}
