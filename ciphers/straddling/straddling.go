// Package straddling implements the straddling checkerboard.
//
// Eight frequent letters receive single digit codes; every other symbol
// receives a two digit code whose first digit is one of two escape digits.
// The alphabet is mixed with a keyword before codes are assigned. Digits in
// the plaintext are written as marker, d, d, marker where the marker is the
// code of '/'.
package straddling

import (
	"fmt"
	"sort"
	"strings"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const name = "straddling"

const (
	// DefaultFrequent are the letters that receive single digit codes.
	DefaultFrequent = "ESANTIRU"

	// Marker introduces a plaintext digit.
	Marker = '/'

	shortCount = 8
	longCount  = 20
)

// Cipher is an immutable straddling checkerboard.
type Cipher struct {
	key      string
	layout   string
	escapes  [2]byte
	enc      [256]string
	dec1     [10]byte
	dec2     [10][10]byte
	isEscape [10]bool
}

var _ oldcrypto.Block = (*Cipher)(nil)

type config struct {
	frequent string
	alphabet string
}

// Option configures a checkerboard.
type Option func(*config) error

// WithFrequentLetters sets the eight letters with single digit codes.
func WithFrequentLetters(s string) Option {
	return func(c *config) error {
		c.frequent = strings.ToUpper(s)
		return nil
	}
}

// WithAlphabet replaces the default A-Z plus "/-" alphabet.
func WithAlphabet(s string) Option {
	return func(c *config) error {
		c.alphabet = s
		return nil
	}
}

// New builds a checkerboard. escapes holds the two escape digits.
func New(key, escapes string, opts ...Option) (*Cipher, error) {
	cfg := config{frequent: DefaultFrequent, alphabet: utils.AlphabetTxt}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if key == "" {
		return nil, oldcrypto.InvalidKeyf(name, "key can not be empty")
	}
	if err := checkConfig(escapes, cfg); err != nil {
		return nil, err
	}

	c := &Cipher{key: strings.ToUpper(key)}
	c.escapes = [2]byte{escapes[0], escapes[1]}
	c.isEscape[escapes[0]-'0'] = true
	c.isEscape[escapes[1]-'0'] = true

	full := utils.Shuffle(c.key, cfg.alphabet)
	layout := make([]byte, 0, len(cfg.alphabet))
	for i := 0; i < len(full); i++ {
		if strings.IndexByte(cfg.alphabet, full[i]) >= 0 {
			layout = append(layout, full[i])
		}
	}
	c.layout = string(layout)

	short := make([]byte, 0, shortCount)
	for d := byte('0'); d <= '9'; d++ {
		if !c.isEscape[d-'0'] {
			short = append(short, d)
		}
	}
	long := make([]string, 0, longCount)
	for _, e := range c.escapes {
		for d := byte('0'); d <= '9'; d++ {
			long = append(long, string([]byte{e, d}))
		}
	}

	si, li := 0, 0
	for _, ch := range layout {
		if strings.IndexByte(cfg.frequent, ch) >= 0 {
			c.enc[ch] = string(short[si])
			c.dec1[short[si]-'0'] = ch
			si++
			continue
		}
		code := long[li]
		c.enc[ch] = code
		c.dec2[code[0]-'0'][code[1]-'0'] = ch
		li++
	}

	if err := CheckPrefixFree(c.Codes()); err != nil {
		return nil, err
	}
	return c, nil
}

func checkConfig(escapes string, cfg config) error {
	if len(escapes) != 2 || !isDigit(escapes[0]) || !isDigit(escapes[1]) || escapes[0] == escapes[1] {
		return oldcrypto.InvalidConfigf(name, "escapes %q must be two distinct digits", escapes)
	}
	n := len(cfg.alphabet)
	if !utils.Unique(cfg.alphabet) || n <= shortCount || n > shortCount+longCount {
		return oldcrypto.InvalidConfigf(name, "alphabet %q must hold %d to %d unique symbols", cfg.alphabet, shortCount+1, shortCount+longCount)
	}
	if strings.ContainsAny(cfg.alphabet, utils.Digits) {
		return oldcrypto.InvalidConfigf(name, "alphabet %q can not contain digits", cfg.alphabet)
	}
	if len(cfg.frequent) != shortCount || !utils.Unique(cfg.frequent) {
		return oldcrypto.InvalidConfigf(name, "frequent letters %q must be %d unique letters", cfg.frequent, shortCount)
	}
	for i := 0; i < len(cfg.frequent); i++ {
		if strings.IndexByte(cfg.alphabet, cfg.frequent[i]) < 0 {
			return oldcrypto.InvalidConfigf(name, "frequent letter %q is not in the alphabet", cfg.frequent[i])
		}
	}
	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// CheckPrefixFree verifies that no code is a prefix of another code.
func CheckPrefixFree(codes map[byte]string) error {
	list := make([]string, 0, len(codes))
	owner := make(map[string]byte, len(codes))
	for sym, code := range codes {
		if code == "" {
			return fmt.Errorf("%s: %w: empty code for %q", name, oldcrypto.ErrAmbiguousDecode, sym)
		}
		if other, dup := owner[code]; dup {
			return fmt.Errorf("%s: %w: %q and %q share code %s", name, oldcrypto.ErrAmbiguousDecode, other, sym, code)
		}
		owner[code] = sym
		list = append(list, code)
	}
	// After sorting, a prefix sorts immediately before a code it prefixes.
	sort.Strings(list)
	for i := 1; i < len(list); i++ {
		if strings.HasPrefix(list[i], list[i-1]) {
			return fmt.Errorf("%s: %w: code %s of %q prefixes %s of %q", name, oldcrypto.ErrAmbiguousDecode,
				list[i-1], owner[list[i-1]], list[i], owner[list[i]])
		}
	}
	return nil
}

// Codes returns the code of every symbol.
func (c *Cipher) Codes() map[byte]string {
	m := make(map[byte]string, len(c.layout))
	for i := 0; i < len(c.layout); i++ {
		m[c.layout[i]] = c.enc[c.layout[i]]
	}
	return m
}

// Layout returns the mixed alphabet in code assignment order.
func (c *Cipher) Layout() string { return c.layout }

// Escapes returns the two escape digits.
func (c *Cipher) Escapes() string { return string(c.escapes[:]) }

// BlockSize is 1: symbols are encoded one at a time.
func (c *Cipher) BlockSize() int { return 1 }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	marker := c.enc[Marker]
	dst := make([]byte, 0, 2*len(src))
	for i, ch := range src {
		switch {
		case isDigit(ch):
			if marker == "" {
				return nil, oldcrypto.InvalidSymbolf(name, ch, i, "no numeric marker in alphabet")
			}
			dst = append(dst, marker...)
			dst = append(dst, ch, ch)
			dst = append(dst, marker...)
		case ch == Marker || c.enc[ch] == "":
			return nil, oldcrypto.InvalidSymbol(name, ch, i)
		default:
			dst = append(dst, c.enc[ch]...)
		}
	}
	return dst, nil
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		ch, n, err := c.next(src, i)
		if err != nil {
			return nil, err
		}
		if ch != Marker {
			dst = append(dst, ch)
			i += n
			continue
		}
		// marker d d marker
		j := i + n
		if j+1 >= len(src) || !isDigit(src[j]) || src[j] != src[j+1] {
			return nil, oldcrypto.InvalidSymbolf(name, src[i], i, "malformed numeric group")
		}
		end, m, err := c.next(src, j+2)
		if err != nil || end != Marker {
			return nil, oldcrypto.InvalidSymbolf(name, src[i], i, "unterminated numeric group")
		}
		dst = append(dst, src[j])
		i = j + 2 + m
	}
	return dst, nil
}

// next decodes the symbol starting at src[i] and returns its code length.
func (c *Cipher) next(src []byte, i int) (byte, int, error) {
	if i >= len(src) {
		return 0, 0, oldcrypto.InvalidSymbolf(name, 0, i, "truncated input")
	}
	d := src[i]
	if !isDigit(d) {
		return 0, 0, oldcrypto.InvalidSymbol(name, d, i)
	}
	if !c.isEscape[d-'0'] {
		return c.dec1[d-'0'], 1, nil
	}
	if i+1 >= len(src) {
		return 0, 0, oldcrypto.InvalidSymbolf(name, d, i, "truncated two digit code")
	}
	e := src[i+1]
	if !isDigit(e) {
		return 0, 0, oldcrypto.InvalidSymbol(name, e, i+1)
	}
	ch := c.dec2[d-'0'][e-'0']
	if ch == 0 {
		return 0, 0, oldcrypto.InvalidSymbolf(name, e, i+1, "unassigned code %c%c", d, e)
	}
	return ch, 2, nil
}
