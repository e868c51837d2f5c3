// Package playfair implements the Playfair digram cipher.
//
// Plaintext is split into digrams. A digram of two identical letters gets
// the filler inserted between them and the second letter is carried into the
// next digram; a trailing single letter is padded with the filler. When the
// doubled (or trailing) letter is the filler itself the alternate filler is
// used instead, so a filler never pairs with itself.
//
// Encrypt/Decrypt implement the historical behaviour: Decrypt returns the
// filler-expanded text. EncryptBlock/DecryptBlock additionally carry the
// filler positions so the exact plaintext can be recovered.
package playfair

import (
	"sort"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/grid"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const name = "playfair"

// Default fillers.
const (
	DefaultFiller    = 'X'
	DefaultAltFiller = 'Q'
)

// Cipher is an immutable Playfair cipher.
type Cipher struct {
	grid   *grid.Grid
	filler byte
	alt    byte
}

var (
	_ oldcrypto.Block  = (*Cipher)(nil)
	_ oldcrypto.Padder = (*Cipher)(nil)
)

type config struct {
	spec     grid.Spec
	filler   byte
	alt      byte
	conflate bool
}

// Option configures a Playfair cipher.
type Option func(*config) error

// WithFiller sets the filler inserted between doubled letters.
func WithFiller(b byte) Option {
	return func(c *config) error {
		c.filler = upper(b)
		return nil
	}
}

// WithAltFiller sets the filler used when the filler itself is doubled.
func WithAltFiller(b byte) Option {
	return func(c *config) error {
		c.alt = upper(b)
		return nil
	}
}

// WithConflation toggles merging J into I. Without conflation J is not
// part of the default grid and is rejected.
func WithConflation(on bool) Option {
	return func(c *config) error {
		c.conflate = on
		return nil
	}
}

// WithGrid replaces the 5x5 table with any rectangular grid.
func WithGrid(spec grid.Spec) Option {
	return func(c *config) error {
		c.spec = spec
		return nil
	}
}

// New returns a Playfair cipher keyed by key.
func New(key string, opts ...Option) (*Cipher, error) {
	cfg := config{
		spec:     grid.Playfair5x5,
		filler:   DefaultFiller,
		alt:      DefaultAltFiller,
		conflate: true,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if !cfg.conflate {
		cfg.spec = cfg.spec.WithoutConflation()
	}

	g, err := grid.New(key, cfg.spec)
	if err != nil {
		return nil, err
	}
	if !g.Contains(cfg.filler) || !g.Contains(cfg.alt) {
		return nil, oldcrypto.InvalidConfigf(name, "fillers %q and %q must be grid letters", cfg.filler, cfg.alt)
	}
	filler, _ := g.Normalize(cfg.filler)
	alt, _ := g.Normalize(cfg.alt)
	if filler == alt {
		return nil, oldcrypto.InvalidConfigf(name, "filler and alternate filler must differ")
	}
	return &Cipher{grid: g, filler: filler, alt: alt}, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Grid returns the key table.
func (c *Cipher) Grid() *grid.Grid { return c.grid }

func (c *Cipher) BlockSize() int { return 2 }

// Encrypt prepares src into digrams and enciphers them.
func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	res, err := c.EncryptBlock(src)
	if err != nil {
		return nil, err
	}
	return res.Text, nil
}

// Decrypt deciphers digrams. Fillers inserted during encryption remain.
func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, oldcrypto.InvalidSymbolf(name, src[len(src)-1], len(src)-1, "odd ciphertext length")
	}
	return c.digrams(src, -1)
}

// EncryptBlock enciphers src and records where fillers were inserted.
func (c *Cipher) EncryptBlock(src []byte) (*oldcrypto.BlockResult, error) {
	prepared, fillers, err := c.prepare(src)
	if err != nil {
		return nil, err
	}
	ct, err := c.digrams(prepared, 1)
	if err != nil {
		return nil, err
	}
	return &oldcrypto.BlockResult{Text: ct, Fillers: fillers}, nil
}

// DecryptBlock deciphers res.Text and removes the recorded fillers.
func (c *Cipher) DecryptBlock(res *oldcrypto.BlockResult) ([]byte, error) {
	if res == nil {
		return nil, oldcrypto.InvalidConfigf(name, "nil block result")
	}
	pt, err := c.Decrypt(res.Text)
	if err != nil {
		return nil, err
	}
	fillers := append([]int(nil), res.Fillers...)
	sort.Ints(fillers)
	out := make([]byte, 0, len(pt))
	j := 0
	for i, ch := range pt {
		if j < len(fillers) && fillers[j] == i {
			j++
			continue
		}
		out = append(out, ch)
	}
	if j != len(fillers) {
		return nil, oldcrypto.InvalidConfigf(name, "filler positions out of range")
	}
	return out, nil
}

// prepare normalises src, splits it into digrams and inserts fillers.
func (c *Cipher) prepare(src []byte) ([]byte, []int, error) {
	text := make([]byte, len(src))
	for i, ch := range src {
		n, ok := c.grid.Normalize(upper(ch))
		if !ok {
			return nil, nil, oldcrypto.InvalidSymbol(name, ch, i)
		}
		text[i] = n
	}

	out, fillers := utils.Expand(string(text), c.filler, c.alt)
	return []byte(out), fillers, nil
}

// digrams applies the Playfair rules to each pair; dir is 1 to encrypt and
// -1 to decrypt.
func (c *Cipher) digrams(src []byte, dir int) ([]byte, error) {
	dst := make([]byte, len(src))
	for i := 0; i+1 < len(src); i += 2 {
		r1, c1, ok := c.grid.Locate(src[i])
		if !ok {
			return nil, oldcrypto.InvalidSymbol(name, src[i], i)
		}
		r2, c2, ok := c.grid.Locate(src[i+1])
		if !ok {
			return nil, oldcrypto.InvalidSymbol(name, src[i+1], i+1)
		}
		switch {
		case r1 == r2 && c1 == c2:
			return nil, oldcrypto.InvalidSymbolf(name, src[i+1], i+1, "digram of identical letters")
		case r1 == r2:
			dst[i], dst[i+1] = c.grid.At(r1, c1+dir), c.grid.At(r2, c2+dir)
		case c1 == c2:
			dst[i], dst[i+1] = c.grid.At(r1+dir, c1), c.grid.At(r2+dir, c2)
		default:
			dst[i], dst[i+1] = c.grid.At(r1, c2), c.grid.At(r2, c1)
		}
	}
	return dst, nil
}
