// Package wheatstone implements Charles Wheatstone's cryptograph.
//
// The machine has an outer plaintext wheel of 27 positions (the letters plus
// a "+" word separator) and an inner ciphertext wheel of 26 letters. Both
// hands move together: the outer hand is turned clockwise to the next
// plaintext symbol and the inner hand advances by the same number of steps
// modulo 26, so the substitution depends on every previous symbol.
//
// The machine cannot express a symbol equal to the previous one (the hand
// would not move), so such input is rejected. utils.FixDouble(s, 'Q') is the
// historical preprocessing.
package wheatstone

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const (
	name = "wheatstone"

	// Separator is the extra symbol of the plaintext wheel.
	Separator = '+'

	lenPlain  = 27
	lenCipher = 26
)

// Cipher is an immutable Wheatstone cryptograph. The hand positions are
// reset at the start of every Encrypt and Decrypt call.
type Cipher struct {
	start byte
	plain string
	ciph  string
	ppos  [256]int
	cpos  [256]int
}

var _ oldcrypto.Block = (*Cipher)(nil)

// New builds the wheels from two keywords. start is the indicator letter
// the inner hand points at before the first symbol.
func New(start byte, plainKey, cipherKey string) (*Cipher, error) {
	if err := checkKey("plaintext", plainKey); err != nil {
		return nil, err
	}
	if err := checkKey("ciphertext", cipherKey); err != nil {
		return nil, err
	}
	if start >= 'a' && start <= 'z' {
		start -= 'a' - 'A'
	}
	if start < 'A' || start > 'Z' {
		return nil, oldcrypto.InvalidKeyf(name, "start %q must be a letter", start)
	}

	c := &Cipher{
		start: start,
		plain: string(Separator) + utils.Shuffle(upper(plainKey), utils.Alphabet),
		ciph:  utils.Shuffle(upper(cipherKey), utils.Alphabet),
	}
	c.ppos = utils.IndexTable(c.plain)
	c.cpos = utils.IndexTable(c.ciph)
	return c, nil
}

func checkKey(which, key string) error {
	if key == "" {
		return oldcrypto.InvalidKeyf(name, "%s key can not be empty", which)
	}
	for i := 0; i < len(key); i++ {
		ch := key[i] &^ 0x20
		if ch < 'A' || ch > 'Z' {
			return oldcrypto.InvalidKeyf(name, "%s key symbol %q is not a letter", which, key[i])
		}
	}
	return nil
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] &^= 0x20
	}
	return string(b)
}

// Wheels returns the plaintext and ciphertext wheels.
func (c *Cipher) Wheels() (plain, cipher string) { return c.plain, c.ciph }

func (c *Cipher) BlockSize() int { return 1 }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	cur, ct := 0, c.cpos[c.start]
	for i, ch := range src {
		a := c.ppos[ch]
		if a < 0 {
			return nil, oldcrypto.InvalidSymbol(name, ch, i)
		}
		if a == cur {
			return nil, oldcrypto.InvalidSymbolf(name, ch, i, "repeats the previous symbol")
		}
		off := a - cur
		if a < cur {
			off += lenPlain
		}
		cur = a
		ct = (ct + off) % lenCipher
		dst[i] = c.ciph[ct]
	}
	return dst, nil
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	cur, pt := c.cpos[c.start], 0
	for i, ch := range src {
		a := c.cpos[ch]
		if a < 0 {
			return nil, oldcrypto.InvalidSymbol(name, ch, i)
		}
		off := a - cur
		if a <= cur {
			off += lenCipher
		}
		cur = a
		pt = (pt + off) % lenPlain
		dst[i] = c.plain[pt]
	}
	return dst, nil
}
