package additive

import (
	"errors"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	c, err := New("2095")
	require.NoError(t, err)

	ct, err := c.Encrypt([]byte("86154"))
	require.NoError(t, err)
	// 8+2 6+0 1+9 5+5 4+2, no carry
	assert.Equal(t, "06006", string(ct))

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "86154", string(pt))
}

func TestRoundTrip(t *testing.T) {
	c, err := New("741776")
	require.NoError(t, err)
	in := "1037306631738227035749"
	ct, err := c.Encrypt([]byte(in))
	require.NoError(t, err)
	assert.Len(t, ct, len(in))
	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, in, string(pt))
}

func TestErrors(t *testing.T) {
	_, err := New("")
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey))
	_, err = New("12a")
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey))

	c, err := New("1")
	require.NoError(t, err)
	_, err = c.Encrypt([]byte("12A"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))
}
