package core

import (
	"errors"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSamplesRoundTrip(t *testing.T) {
	for _, e := range List() {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			require.NotEmpty(t, e.SampleText)
			require.NoError(t, e.check(e.Sample), "sample uses options outside Fields")

			enc, err := New(e.Sample)
			require.NoError(t, err)
			ct, err := enc.Encrypt([]byte(e.SampleText))
			require.NoError(t, err)

			dec, err := New(e.Sample)
			require.NoError(t, err)
			pt, err := dec.Decrypt(ct)
			require.NoError(t, err)
			assert.Equal(t, e.SampleText, string(pt))
		})
	}
}

func TestCatalogVectors(t *testing.T) {
	tests := []struct {
		params Params
		in     string
		want   string
	}{
		{Params{Cipher: "caesar", Shift: 3}, "ABCXYZ", "DEFABC"},
		{Params{Cipher: "transposition", Key: "SUBWAY"}, "ATTACKATDAWN", "CWTDAATTAAKN"},
		{Params{Cipher: "adfgvx", Key: "PORTABLE", Key2: "SUBWAY"}, "ATTACKATDAWN", "AFDFADAGAAAAVVVVGFGVGGGX"},
		{Params{Cipher: "nihilist", Key: "ARABESQUE", Key2: "SUBWAY", Escapes: "37"}, "IFYOUCANREADTHIS", "1037306631738227035749"},
		{Params{Cipher: "straddling", Key: "ARABESQUE"}, "ATTACKAT2AM", "0770808107972297088"},
		{Params{Cipher: "additive", Key: "2095"}, "86154", "06006"},
		{
			Params{Cipher: "vic", Personal: "89", Indicator: "741776", Phrase: "IDREAMOFJEANNIEWITHT", MessageNumber: "77651"},
			"CETOOTESTCHIFFREAVECADFGVXETLESCLESMASTODONETSOCIALX",
			"267101884359858845026808386325837752296436888812880743987929692397558713",
		},
	}
	for _, tt := range tests {
		t.Run(tt.params.Cipher, func(t *testing.T) {
			b, err := New(tt.params)
			require.NoError(t, err)
			ct, err := b.Encrypt([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(ct))
		})
	}
}

func TestCatalogDefaults(t *testing.T) {
	b, err := New(Params{Cipher: "playfair", Key: "MONARCHY"})
	require.NoError(t, err)
	ct, err := b.Encrypt([]byte("INSTRUMENTS"))
	require.NoError(t, err)
	assert.Equal(t, "GATLMZCLRQXA", string(ct))

	b, err = New(Params{Cipher: "playfair", Key: "MONARCHY", Filler: "Z"})
	require.NoError(t, err)
	ct, err = b.Encrypt([]byte("INSTRUMENTS"))
	require.NoError(t, err)
	assert.Equal(t, "GATLMZCLRQTX", string(ct))

	b, err = New(Params{Cipher: "solitaire"})
	require.NoError(t, err)
	ct, err = b.Encrypt([]byte("AAAAAAAAAA"))
	require.NoError(t, err)
	assert.Equal(t, "EXKYIZSGEH", string(ct))

	b, err = New(Params{Cipher: "square", Key: "PORTABLE", Coords: "ADFGVX"})
	require.NoError(t, err)
	assert.Equal(t, 1, b.BlockSize())

	b, err = New(Params{Cipher: "chaocipher", Passphrase: "byrne"})
	require.NoError(t, err)
	ct, err = b.Encrypt([]byte("HELLO"))
	require.NoError(t, err)
	b.(oldcrypto.Resetter).Reset()
	pt, err := b.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(pt))
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"wheatstone start", Params{Cipher: "wheatstone", Key: "A", Key2: "B", Start: "MM"}, oldcrypto.ErrInvalidConfiguration},
		{"playfair filler", Params{Cipher: "playfair", Key: "MONARCHY", Filler: "XY"}, oldcrypto.ErrInvalidConfiguration},
		{"playfair same fillers", Params{Cipher: "playfair", Key: "MONARCHY", Filler: "Q"}, oldcrypto.ErrInvalidConfiguration},
		{"solitaire passphrase", Params{Cipher: "solitaire", Key: "abc1"}, oldcrypto.ErrInvalidKey},
		{"chaocipher wheel", Params{Cipher: "chaocipher", Key: "ABC", Key2: "DEF"}, oldcrypto.ErrInvalidKey},
		{"chaocipher passphrase and key", Params{Cipher: "chaocipher", Key: "ABC", Passphrase: "byrne"}, oldcrypto.ErrInvalidConfiguration},
		{"passphrase elsewhere", Params{Cipher: "caesar", Passphrase: "byrne"}, oldcrypto.ErrInvalidConfiguration},
		{"transposition key", Params{Cipher: "transposition"}, oldcrypto.ErrInvalidKey},
		{"adfgvx conflation", Params{Cipher: "adfgvx", Key: "A", Key2: "B", NoConflate: true}, oldcrypto.ErrInvalidConfiguration},
		{"vic material", Params{Cipher: "vic", Personal: "8"}, oldcrypto.ErrInvalidKey},
		{"unknown", Params{Cipher: "enigma"}, oldcrypto.ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.params)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
