// Package additive implements non-carrying digit-wise addition of a
// repeating numeric key, the additive stage of the Nihilist family.
package additive

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
)

const name = "additive"

// Cipher adds key digits modulo 10 without carry.
type Cipher struct {
	key []byte
}

var _ oldcrypto.Block = (*Cipher)(nil)

// New returns an additive stage for the digit string key.
func New(key string) (*Cipher, error) {
	if key == "" {
		return nil, oldcrypto.InvalidKeyf(name, "key can not be empty")
	}
	k := make([]byte, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return nil, oldcrypto.InvalidKeyf(name, "key symbol %q is not a digit", key[i])
		}
		k[i] = key[i] - '0'
	}
	return &Cipher{key: k}, nil
}

// BlockSize returns the key period.
func (c *Cipher) BlockSize() int { return len(c.key) }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	return c.apply(src, 1)
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	return c.apply(src, 9)
}

// apply adds mul*key digit by digit; mul 9 subtracts modulo 10.
func (c *Cipher) apply(src []byte, mul byte) ([]byte, error) {
	dst := make([]byte, len(src))
	for i, ch := range src {
		if ch < '0' || ch > '9' {
			return nil, oldcrypto.InvalidSymbol(name, ch, i)
		}
		dst[i] = '0' + (ch-'0'+mul*c.key[i%len(c.key)])%10
	}
	return dst, nil
}
