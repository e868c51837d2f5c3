// Package transposition implements columnar transposition.
//
// The text is written row by row under the key and read out column by
// column in the order given by the alphabetical rank of the key symbols.
// The last row may be incomplete: no padding is added, so ciphertext and
// plaintext always have the same length and the short columns are
// reconstructed from the length alone.
package transposition

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const name = "transposition"

// Cipher is an immutable columnar transposition.
type Cipher struct {
	key   string
	ranks []int
	order []int // order[rank] = column
}

var _ oldcrypto.Block = (*Cipher)(nil)

// New returns a columnar transposition keyed by key.
func New(key string) (*Cipher, error) {
	if key == "" {
		return nil, oldcrypto.InvalidKeyf(name, "key can not be empty")
	}
	ranks := utils.ToNumeric(key)
	order := make([]int, len(ranks))
	for col, r := range ranks {
		order[r] = col
	}
	return &Cipher{key: key, ranks: ranks, order: order}, nil
}

// Ranks returns the column rank of each key symbol.
func (c *Cipher) Ranks() []int { return append([]int(nil), c.ranks...) }

// BlockSize returns the key length.
func (c *Cipher) BlockSize() int { return len(c.ranks) }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	k := len(c.order)
	dst := make([]byte, 0, len(src))
	for _, col := range c.order {
		for r := col; r < len(src); r += k {
			dst = append(dst, src[r])
		}
	}
	return dst, nil
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	k := len(c.order)
	dst := make([]byte, len(src))
	p := 0
	for _, col := range c.order {
		for r := col; r < len(src); r += k {
			dst[r] = src[p]
			p++
		}
	}
	return dst, nil
}
