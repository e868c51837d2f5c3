package playfair

import (
	"errors"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	tests := []struct {
		key  string
		opts []Option
		pt   string
		ct   string
	}{
		{"PLAYFAIREXAMPLE", nil, "HIDETHEGOLDINTHETREXESTUMP", "BMODZBXDNABEKUDMUIXMMOUVIF"},
		{"PLAYFAIREXAMPLE", nil, "HIDETHEGOLDINTHETREESTUMP", "BMODZBXDNABEKUDMUIXMMOUVIF"},
		{"PLAYFAIREXAMPLE", nil, "HID", "BMGE"},
		{"MONARCHY", nil, "HI", "BF"},
		{"MONARCHY", []Option{WithFiller('Z')}, "INSTRUMENTS", "GATLMZCLRQTX"},
		{"MONARCHY", nil, "INSTRUMENTS", "GATLMZCLRQXA"},
	}
	for _, tt := range tests {
		c, err := New(tt.key, tt.opts...)
		require.NoError(t, err)
		ct, err := c.Encrypt([]byte(tt.pt))
		require.NoError(t, err)
		assert.Equal(t, tt.ct, string(ct), "%s/%s", tt.key, tt.pt)
	}
}

func TestDecryptKeepsFillers(t *testing.T) {
	c, err := New("PLAYFAIREXAMPLE")
	require.NoError(t, err)
	pt, err := c.Decrypt([]byte("BMODZBXDNABEKUDMUIXMMOUVIF"))
	require.NoError(t, err)
	assert.Equal(t, "HIDETHEGOLDINTHETREXESTUMP", string(pt))
}

func TestBlockRoundTrip(t *testing.T) {
	c, err := New("PLAYFAIREXAMPLE")
	require.NoError(t, err)

	for _, pt := range []string{"HIDETHEGOLDINTHETREESTUMP", "HID", "BALLOON", "XXA", "X", ""} {
		res, err := c.EncryptBlock([]byte(pt))
		require.NoError(t, err)
		assert.Equal(t, 0, len(res.Text)%2)

		got, err := c.DecryptBlock(res)
		require.NoError(t, err)
		assert.Equal(t, pt, string(got))
	}
}

func TestFillerPositions(t *testing.T) {
	c, err := New("MONARCHY")
	require.NoError(t, err)

	res, err := c.EncryptBlock([]byte("BALLOON"))
	require.NoError(t, err)
	// BA LX LO ON
	assert.Equal(t, []int{3}, res.Fillers)

	res, err = c.EncryptBlock([]byte("XXA"))
	require.NoError(t, err)
	// XQ XA
	assert.Equal(t, []int{1}, res.Fillers)

	pt, err := c.Decrypt(res.Text)
	require.NoError(t, err)
	assert.Equal(t, "XQXA", string(pt))
}

func TestConflation(t *testing.T) {
	c, err := New("MONARCHY")
	require.NoError(t, err)
	res, err := c.EncryptBlock([]byte("jam"))
	require.NoError(t, err)
	pt, err := c.DecryptBlock(res)
	require.NoError(t, err)
	assert.Equal(t, "IAM", string(pt))

	c, err = New("MONARCHY", WithConflation(false))
	require.NoError(t, err)
	_, err = c.Encrypt([]byte("JAM"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))
}

func TestCustomGrid(t *testing.T) {
	c, err := New("PORTABLE", WithGrid(grid.Base36x6))
	require.NoError(t, err)
	res, err := c.EncryptBlock([]byte("MEET"))
	require.NoError(t, err)
	pt, err := c.DecryptBlock(res)
	require.NoError(t, err)
	assert.Equal(t, "MEET", string(pt))

	ct, err := c.Encrypt([]byte("AT0900"))
	require.NoError(t, err)
	pt, err = c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "AT090X0X", string(pt))
}

func TestErrors(t *testing.T) {
	c, err := New("MONARCHY")
	require.NoError(t, err)

	_, err = c.Encrypt([]byte("HELLO WORLD"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))
	_, err = c.Decrypt([]byte("ABC"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))
	_, err = c.Decrypt([]byte("AA"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))

	_, err = New("")
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey))
	_, err = New("MONARCHY", WithFiller('1'))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidConfiguration))
	_, err = New("MONARCHY", WithFiller('Q'))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidConfiguration))
	_, err = New("MONARCHY", WithGrid(grid.Spec{Alphabet: "ABC", Rows: 2, Cols: 2}))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidConfiguration))
}
