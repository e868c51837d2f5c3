package caesar

import (
	"errors"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	tests := []struct {
		shift int
		pt    string
		ct    string
	}{
		{3, "ABCDE", "DEFGH"},
		{4, "COUCOU", "GSYGSY"},
		{13, "COUCOU", "PBHPBH"},
		{1, "Z", "A"},
		{-1, "A", "Z"},
		{27, "A", "B"},
		{-53, "B", "A"},
	}
	for _, tt := range tests {
		c, err := New(tt.shift)
		require.NoError(t, err)

		ct, err := c.Encrypt([]byte(tt.pt))
		require.NoError(t, err)
		assert.Equal(t, tt.ct, string(ct), "shift %d", tt.shift)

		pt, err := c.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, tt.pt, string(pt))
	}
}

func TestNegatedShiftDecrypts(t *testing.T) {
	enc, err := New(7)
	require.NoError(t, err)
	dec, err := New(-7)
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("VENIVIDIVICI"))
	require.NoError(t, err)
	pt, err := dec.Encrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "VENIVIDIVICI", string(pt))
	assert.Equal(t, 19, dec.Shift())
}

func TestRejectsForeignSymbols(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)

	ct, err := c.Encrypt([]byte("ATTACK AT DAWN"))
	assert.Nil(t, ct)
	require.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))

	var se *oldcrypto.SymbolError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, byte(' '), se.Symbol)
	assert.Equal(t, 6, se.Pos)

	_, err = c.Decrypt([]byte("abc"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))
}

func TestPassThrough(t *testing.T) {
	c, err := New(3, WithPassThrough(true))
	require.NoError(t, err)

	ct, err := c.Encrypt([]byte("ATTACK AT DAWN!"))
	require.NoError(t, err)
	assert.Equal(t, "DWWDFN DW GDZQ!", string(ct))

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "ATTACK AT DAWN!", string(pt))
}

func TestCustomAlphabet(t *testing.T) {
	c, err := New(1, WithAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))
	require.NoError(t, err)
	ct, err := c.Encrypt([]byte("Z9A"))
	require.NoError(t, err)
	assert.Equal(t, "0AB", string(ct))

	_, err = New(1, WithAlphabet("AAB"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidConfiguration))
	_, err = New(1, WithAlphabet(""))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidConfiguration))
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(3, "ATTACKATDAWN")
	f.Add(-29, "ZEBRA")
	f.Fuzz(func(t *testing.T, shift int, s string) {
		c, err := New(shift, WithPassThrough(true))
		if err != nil {
			t.Fatal(err)
		}
		ct, err := c.Encrypt([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		pt, err := c.Decrypt(ct)
		if err != nil {
			t.Fatal(err)
		}
		if string(pt) != s {
			t.Fatalf("round trip mismatch: %q != %q", pt, s)
		}
	})
}
