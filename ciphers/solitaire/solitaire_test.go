package solitaire

import (
	"errors"
	"strings"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnkeyedKeystream(t *testing.T) {
	c := NewUnkeyed()
	assert.Equal(t, []int{4, 23, 10, 24, 8, 25, 18, 6, 4, 7}, c.Keystream(10))
	assert.Nil(t, c.Keystream(0))
	assert.Nil(t, c.Keystream(-3))
	assert.Equal(t, []int{4, 23}, c.Keystream(2))
}

func TestUnkeyed(t *testing.T) {
	tests := []struct{ pt, ct string }{
		{"AAAAA", "EXKYI"},
		{"AAAAAAAAAA", "EXKYIZSGEH"},
		{"CLEAN", "GIOYV"},
	}
	for _, tt := range tests {
		c := NewUnkeyed()
		ct, err := c.Encrypt([]byte(tt.pt))
		require.NoError(t, err)
		assert.Equal(t, tt.ct, string(ct))

		pt, err := c.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, tt.pt, string(pt))
	}
}

func TestPassphrase(t *testing.T) {
	tests := []struct{ key, ct string }{
		{"", "EXKYIZSGEHUNTIQ"},
		{"f", "XYIUQBMHKKJBEGY"},
		{"fo", "TUJYMBERLGXNDIW"},
		{"foo", "ITHZUJIWGRFARMW"},
		{"a", "XODALGSCULIQNSC"},
		{"aa", "OHGWMXXCAIMCIQP"},
		{"aaa", "DCSQYHBQZNGDRUT"},
		{"b", "XQEEMOITLZVDSQS"},
		{"bc", "QNGRKQIHCLGWSCE"},
		{"bcd", "FMUBYBMAXHNQXCJ"},
	}
	for _, tt := range tests {
		c := NewWithPassphrase(tt.key)
		ct, err := c.Encrypt([]byte(strings.Repeat("A", 15)))
		require.NoError(t, err)
		assert.Equal(t, tt.ct, string(ct), "passphrase %q", tt.key)
	}
}

func TestCryptonomicon(t *testing.T) {
	c := NewWithPassphrase("cryptonomicon")
	ct, err := c.Encrypt([]byte(strings.Repeat("A", 25)))
	require.NoError(t, err)
	assert.Equal(t, "SUGSRSXSWQRMXOHIPBFPXARYQ", string(ct))

	ct, err = c.Encrypt([]byte("SOLITAIRE"))
	require.NoError(t, err)
	assert.Equal(t, "KIRAKSFJA", string(ct))

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "SOLITAIRE", string(pt))
}

func TestExplicitDeck(t *testing.T) {
	keyed := NewWithPassphrase("foo").Deck()
	c, err := New(keyed[:])
	require.NoError(t, err)
	ct, err := c.Encrypt([]byte(strings.Repeat("A", 15)))
	require.NoError(t, err)
	assert.Equal(t, "ITHZUJIWGRFARMW", string(ct))
}

func TestErrors(t *testing.T) {
	_, err := New([]int{1, 2, 3})
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey))

	deck := make([]int, DeckSize)
	for i := range deck {
		deck[i] = i + 1
	}
	deck[5] = 1
	_, err = New(deck)
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey))

	_, err = NewUnkeyed().Encrypt([]byte("SOLITAIRE!"))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidSymbol))
}
