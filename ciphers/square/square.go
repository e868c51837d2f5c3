// Package square implements the Polybius square as a bigrammatic cipher.
//
// Each plaintext symbol is replaced by its row and column in a keyed n x n
// grid, each written with one of n coordinate symbols. With the coordinates
// "ADFGVX" this is the first stage of ADFGVX.
package square

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/grid"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const name = "square"

// Common coordinate sets.
const (
	Digits5 = "12345"
	Digits6 = "123456"
	ADFGX   = "ADFGX"
	ADFGVX  = "ADFGVX"
)

// Cipher is an immutable Polybius square.
type Cipher struct {
	grid   *grid.Grid
	coords string
	cidx   [256]int
}

var _ oldcrypto.Block = (*Cipher)(nil)

type config struct {
	alphabet    string
	conflate    bool
	conflateSet bool
}

// Option configures a square.
type Option func(*config) error

// WithAlphabet sets the grid alphabet; it must hold n*n unique symbols.
func WithAlphabet(alphabet string) Option {
	return func(c *config) error {
		c.alphabet = alphabet
		return nil
	}
}

// WithConflation toggles J->I merging. Only meaningful for alphabets
// without J.
func WithConflation(on bool) Option {
	return func(c *config) error {
		c.conflate = on
		c.conflateSet = true
		return nil
	}
}

// New builds a square keyed by key with len(coords) rows and columns.
// Without WithAlphabet, 5 coordinates select the 25 letter alphabet with
// J written as I and 6 coordinates select A-Z0-9.
func New(key, coords string, opts ...Option) (*Cipher, error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	n := len(coords)
	if n < 2 || !utils.Unique(coords) {
		return nil, oldcrypto.InvalidConfigf(name, "coordinates %q must be at least two unique symbols", coords)
	}

	spec, err := specFor(n, cfg)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(key, spec)
	if err != nil {
		return nil, err
	}
	return &Cipher{grid: g, coords: coords, cidx: utils.IndexTable(coords)}, nil
}

func specFor(n int, cfg config) (grid.Spec, error) {
	var spec grid.Spec
	switch {
	case cfg.alphabet != "":
		spec = grid.Spec{Alphabet: cfg.alphabet, Rows: n, Cols: n}
		if cfg.conflate {
			spec.Conflate = map[byte]byte{'J': 'I'}
		}
	case n == 5:
		spec = grid.Polybius5x5
		if cfg.conflateSet && !cfg.conflate {
			spec = spec.WithoutConflation()
		}
	case n == 6:
		spec = grid.Base36x6
		if cfg.conflate {
			return spec, oldcrypto.InvalidConfigf(name, "the 6x6 square does not conflate letters")
		}
	default:
		return spec, oldcrypto.InvalidConfigf(name, "no default alphabet for a %dx%d square", n, n)
	}
	return spec, spec.Validate()
}

// Grid returns the key square.
func (c *Cipher) Grid() *grid.Grid { return c.grid }

func (c *Cipher) BlockSize() int { return 1 }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	dst := make([]byte, 0, 2*len(src))
	for i, ch := range src {
		r, col, ok := c.grid.Locate(ch)
		if !ok {
			return nil, oldcrypto.InvalidSymbol(name, ch, i)
		}
		dst = append(dst, c.coords[r], c.coords[col])
	}
	return dst, nil
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, oldcrypto.InvalidSymbolf(name, src[len(src)-1], len(src)-1, "odd ciphertext length")
	}
	dst := make([]byte, len(src)/2)
	for i := 0; i < len(src); i += 2 {
		r, col := c.cidx[src[i]], c.cidx[src[i+1]]
		if r < 0 {
			return nil, oldcrypto.InvalidSymbol(name, src[i], i)
		}
		if col < 0 {
			return nil, oldcrypto.InvalidSymbol(name, src[i+1], i+1)
		}
		dst[i/2] = c.grid.At(r, col)
	}
	return dst, nil
}
