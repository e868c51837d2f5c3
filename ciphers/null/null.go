// Package null implements the identity cipher.
package null

import oldcrypto "github.com/BackendStack21/old-crypto-go"

// Cipher copies its input unchanged.
type Cipher struct{}

var _ oldcrypto.Block = (*Cipher)(nil)

// New returns a null cipher.
func New() *Cipher { return &Cipher{} }

func (c *Cipher) BlockSize() int { return 1 }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	return append([]byte{}, src...), nil
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	return append([]byte{}, src...), nil
}
