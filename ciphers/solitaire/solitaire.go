// Package solitaire implements Bruce Schneier's Solitaire (Pontifex), a
// keystream cipher driven by a deck of 52 cards and two jokers.
//
// Cards are numbered 1..52 (bridge order: clubs, diamonds, hearts, spades);
// 53 is joker A and 54 is joker B. The keystream is regenerated from the
// keyed deck at the start of every call, so instances are immutable.
package solitaire

import (
	"unicode"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
)

const (
	name = "solitaire"

	// DeckSize is the number of cards including jokers.
	DeckSize = 54

	JokerA = 53
	JokerB = 54
)

// Deck is an ordering of the 54 cards, top first.
type Deck [DeckSize]int

// Cipher is a Solitaire cipher keyed by an initial deck.
type Cipher struct {
	deck Deck
}

var _ oldcrypto.Block = (*Cipher)(nil)

// NewUnkeyed starts from the deck in ascending order.
func NewUnkeyed() *Cipher {
	return &Cipher{deck: orderedDeck()}
}

// New starts from an explicit deck, which must be a permutation of 1..54.
func New(deck []int) (*Cipher, error) {
	if len(deck) != DeckSize {
		return nil, oldcrypto.InvalidKeyf(name, "deck has %d cards, want %d", len(deck), DeckSize)
	}
	var seen [DeckSize + 1]bool
	c := &Cipher{}
	for i, v := range deck {
		if v < 1 || v > DeckSize || seen[v] {
			return nil, oldcrypto.InvalidKeyf(name, "card %d at position %d is invalid or repeated", v, i)
		}
		seen[v] = true
		c.deck[i] = v
	}
	return c, nil
}

// NewWithPassphrase keys the deck with a passphrase: for every letter the
// deck is advanced once and then count cut by the letter value. Non-letters
// are ignored.
func NewWithPassphrase(passphrase string) *Cipher {
	d := orderedDeck()
	for _, r := range passphrase {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		d.advance()
		d.countCut(int(unicode.ToUpper(r)-'A') + 1)
	}
	return &Cipher{deck: d}
}

func orderedDeck() Deck {
	var d Deck
	for i := range d {
		d[i] = i + 1
	}
	return d
}

// Deck returns the keyed starting deck.
func (c *Cipher) Deck() Deck { return c.deck }

// Keystream returns the first n keystream values (1..26), or nil when n is
// not positive.
func (c *Cipher) Keystream(n int) []int {
	if n <= 0 {
		return nil
	}
	d := c.deck
	out := make([]int, n)
	for i := range out {
		out[i] = d.next()
	}
	return out
}

func (c *Cipher) BlockSize() int { return 1 }

func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	return c.apply(src, func(p, k int) int { return (p+k-1)%26 + 1 })
}

func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	return c.apply(src, func(ct, k int) int {
		if ct > k {
			return ct - k
		}
		return ct + 26 - k
	})
}

func (c *Cipher) apply(src []byte, f func(v, k int) int) ([]byte, error) {
	for i, ch := range src {
		if ch < 'A' || ch > 'Z' {
			return nil, oldcrypto.InvalidSymbol(name, ch, i)
		}
	}
	d := c.deck
	dst := make([]byte, len(src))
	for i, ch := range src {
		dst[i] = byte(f(int(ch-'A')+1, d.next())-1) + 'A'
	}
	return dst, nil
}

// next advances the deck until a non-joker output card appears and returns
// its value reduced to 1..26.
func (d *Deck) next() int {
	for {
		d.advance()
		top := d[0]
		if top > JokerA {
			top = JokerA
		}
		out := d[top]
		if out <= 52 {
			if out > 26 {
				out -= 26
			}
			return out
		}
	}
}

// advance performs the joker moves, the triple cut and the count cut.
func (d *Deck) advance() {
	d.moveDown(JokerA, 1)
	d.moveDown(JokerB, 2)
	d.tripleCut()
	bottom := d[DeckSize-1]
	if bottom > JokerA {
		bottom = JokerA
	}
	d.countCut(bottom)
}

// moveDown moves card n positions down; a card at the bottom wraps to just
// below the top card.
func (d *Deck) moveDown(card, n int) {
	for ; n > 0; n-- {
		p := d.index(card)
		if p == DeckSize-1 {
			copy(d[2:], d[1:DeckSize-1])
			d[1] = card
			continue
		}
		d[p], d[p+1] = d[p+1], d[p]
	}
}

func (d *Deck) tripleCut() {
	a, b := d.index(JokerA), d.index(JokerB)
	top, bot := min(a, b), max(a, b)
	var out Deck
	n := copy(out[:], d[bot+1:])
	n += copy(out[n:], d[top:bot+1])
	copy(out[n:], d[:top])
	*d = out
}

// countCut moves the top n cards just above the bottom card.
func (d *Deck) countCut(n int) {
	if n <= 0 || n >= DeckSize-1 {
		return
	}
	var out Deck
	k := copy(out[:], d[n:DeckSize-1])
	k += copy(out[k:], d[:n])
	out[k] = d[DeckSize-1]
	*d = out
}

func (d *Deck) index(card int) int {
	for i, v := range d {
		if v == card {
			return i
		}
	}
	return -1
}
