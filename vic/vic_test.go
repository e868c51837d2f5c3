package vic

import (
	"errors"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = "CETOOTESTCHIFFREAVECADFGVXETLESCLESMASTODONETSOCIALX"

var material = Material{
	Personal:      "89",
	Indicator:     "741776",
	Phrase:        "IDREAMOFJEANNIEWITHT",
	MessageNumber: "77651",
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, []int{0, 1, 4}, AddMod10([]int{9, 9, 1}, []int{1, 2, 3}))
	assert.Equal(t, []int{5, 6, 7}, SubMod10([]int{0, 1, 2}, []int{5, 5, 5}))
	assert.Equal(t, []int{3, 5, 7, 9, 8}, ChainAdd([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, []int{0, 3, 5, 8, 4, 3, 8, 3, 2, 7}, Expand5To10([]int{0, 3, 5, 8, 4}))
	assert.Equal(t,
		[]int{0, 2, 2, 1, 2, 1, 5, 8, 3, 1},
		FirstEncode([]int{6, 5, 5, 1, 5, 1, 7, 8, 9, 1}, []int{1, 6, 7, 4, 2, 0, 5, 8, 3, 9}))

	in := []int{1, 2, 3}
	ChainAdd(in)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestChainScheduleSteps(t *testing.T) {
	s := ChainSchedule{}.Steps(material)
	assert.Equal(t, []int{6, 2, 0, 3, 1, 8, 9, 5, 7, 4}, s.Phrase1)
	assert.Equal(t, []int{1, 6, 7, 4, 2, 0, 5, 8, 3, 9}, s.Phrase2)
	assert.Equal(t, []int{0, 3, 5, 8, 4, 3, 8, 3, 2, 7}, s.First)
	assert.Equal(t, []int{6, 5, 5, 1, 5, 1, 7, 8, 9, 1}, s.Mixed)
	assert.Equal(t, "0221215831", digitString(s.Second))
	assert.Equal(t, "1204339669", digitString(s.Third))
}

func TestKeys(t *testing.T) {
	c, err := New(material)
	require.NoError(t, err)
	assert.Equal(t, Keys{
		Checkerboard: "1205348679",
		First:        "0221215831",
		Second:       "1204339669",
	}, c.Keys())
}

func TestBoard(t *testing.T) {
	c, err := New(material)
	require.NoError(t, err)

	want := map[byte]string{
		'A': "0", 'N': "1", 'E': "2", 'O': "3", 'R': "4", 'I': "5", 'S': "6", 'T': "7",
		'K': "80", 'U': "81", 'B': "82", 'L': "83", 'V': "84", 'C': "85", 'M': "86", 'W': "87",
		'D': "88", 'X': "89", 'Y': "90", 'F': "91", 'P': "92", 'Z': "93", 'G': "94", 'Q': "95",
		'/': "96", 'H': "97", '-': "98", 'J': "99",
	}
	assert.Equal(t, want, c.Board().Codes())

	out, err := c.Board().Encrypt([]byte("ATTACKAT2AM"))
	require.NoError(t, err)
	assert.Equal(t, "0770858007962296086", string(out))
}

func TestEncrypt(t *testing.T) {
	c, err := New(material)
	require.NoError(t, err)

	ct, err := c.Encrypt([]byte(plain))
	require.NoError(t, err)
	assert.Equal(t, "267101884359858845026808386325837752296436888812880743987929692397558713", string(ct))

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, plain, string(pt))
}

func TestEncryptDisrupted(t *testing.T) {
	c, err := New(material, WithDisruptedTransposition())
	require.NoError(t, err)

	ct, err := c.Encrypt([]byte(plain))
	require.NoError(t, err)
	assert.Equal(t, "588876843889243559288497127383573088893609827648731128958590666753122280", string(ct))

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, plain, string(pt))
}

func TestLowercasePhrase(t *testing.T) {
	m := material
	m.Phrase = "idreamofjeanniewitht"
	c, err := New(m)
	require.NoError(t, err)
	assert.Equal(t, "0221215831", c.Keys().First)
}

type fixedSchedule struct{ keys Keys }

func (f fixedSchedule) Derive(Material) (Keys, error) { return f.keys, nil }

type failingSchedule struct{}

func (failingSchedule) Derive(Material) (Keys, error) {
	return Keys{}, oldcrypto.InvalidKeyf("test", "no keys today")
}

func TestWithSchedule(t *testing.T) {
	keys := Keys{Checkerboard: "ARABESQUE", First: "SUBWAY", Second: "PORTABLE"}
	c, err := New(material, WithSchedule(fixedSchedule{keys}))
	require.NoError(t, err)
	assert.Equal(t, keys, c.Keys())

	ct, err := c.Encrypt([]byte(plain))
	require.NoError(t, err)
	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, plain, string(pt))

	_, err = New(material, WithSchedule(failingSchedule{}))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey))

	_, err = New(material, WithSchedule(nil))
	assert.True(t, errors.Is(err, oldcrypto.ErrInvalidConfiguration))
}

func TestInvalidMaterial(t *testing.T) {
	cases := map[string]func(m *Material){
		"personal short":    func(m *Material) { m.Personal = "8" },
		"personal repeated": func(m *Material) { m.Personal = "88" },
		"personal letters":  func(m *Material) { m.Personal = "8a" },
		"indicator short":   func(m *Material) { m.Indicator = "7417" },
		"indicator letters": func(m *Material) { m.Indicator = "74177a" },
		"msgno long":        func(m *Material) { m.MessageNumber = "776510" },
		"msgno letters":     func(m *Material) { m.MessageNumber = "7765x" },
		"phrase short":      func(m *Material) { m.Phrase = "IDREAMOFJEANNIE" },
		"phrase digits":     func(m *Material) { m.Phrase = "IDREAMOFJEANNIEWITH7" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := material
			mutate(&m)
			_, err := New(m)
			assert.True(t, errors.Is(err, oldcrypto.ErrInvalidKey), "got %v", err)
		})
	}
}

func TestDecryptGarbage(t *testing.T) {
	c, err := New(material)
	require.NoError(t, err)
	out, err := c.Decrypt([]byte("12A4"))
	assert.Error(t, err)
	assert.Nil(t, out)
}
