package utils

import (
	"bytes"
	"sort"
	"testing"
)

func TestRandomInt(t *testing.T) {
	// Test edge cases
	_, err := RandomInt(0)
	if err == nil {
		t.Error("RandomInt(0) should fail")
	}

	val, err := RandomInt(1)
	if err != nil {
		t.Errorf("RandomInt(1) failed: %v", err)
	}
	if val != 0 {
		t.Errorf("RandomInt(1) should return 0, got %d", val)
	}

	// Test range
	max := 100
	for i := 0; i < 1000; i++ {
		val, err := RandomInt(max)
		if err != nil {
			t.Fatalf("RandomInt failed: %v", err)
		}
		if val < 0 || val >= max {
			t.Errorf("RandomInt returned value out of range: %d", val)
		}
	}
}

func TestRandomPermutation(t *testing.T) {
	for i := 0; i < 50; i++ {
		p, err := RandomPermutation(Alphabet)
		if err != nil {
			t.Fatalf("RandomPermutation failed: %v", err)
		}
		if !IsPermutation(p, Alphabet) {
			t.Fatalf("RandomPermutation returned %q, not a permutation", p)
		}
	}
}

func TestRandomDigits(t *testing.T) {
	d, err := RandomDigits(12)
	if err != nil {
		t.Fatalf("RandomDigits failed: %v", err)
	}
	if len(d) != 12 {
		t.Fatalf("RandomDigits length = %d, want 12", len(d))
	}
	for _, c := range d {
		if c < '0' || c > '9' {
			t.Errorf("RandomDigits produced %q", c)
		}
	}
}

func TestHashWithDomain(t *testing.T) {
	a := HashWithDomain("one", []byte("data"))
	b := HashWithDomain("two", []byte("data"))
	if bytes.Equal(a, b) {
		t.Error("domain separation failed")
	}
	if len(a) != 32 {
		t.Errorf("HashWithDomain length = %d, want 32", len(a))
	}
}

func TestDerivePermutation(t *testing.T) {
	p1 := DerivePermutation(DomainDeck, "correct horse", 54)
	p2 := DerivePermutation(DomainDeck, "correct horse", 54)
	p3 := DerivePermutation(DomainDeck, "battery staple", 54)

	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatal("DerivePermutation is not deterministic")
		}
	}
	same := true
	for i := range p1 {
		if p1[i] != p3[i] {
			same = false
		}
	}
	if same {
		t.Error("different passphrases produced the same permutation")
	}

	sorted := append([]int(nil), p1...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("DerivePermutation is not a permutation: %v", p1)
		}
	}
}

func TestDeriveAlphabet(t *testing.T) {
	a := DeriveAlphabet("wheels", Alphabet)
	if !IsPermutation(a, Alphabet) {
		t.Fatalf("DeriveAlphabet returned %q", a)
	}
	if a != DeriveAlphabet("wheels", Alphabet) {
		t.Error("DeriveAlphabet is not deterministic")
	}
}

func TestDeriveWheels(t *testing.T) {
	w := DeriveWheels("byrne", Alphabet, 2)
	if len(w) != 2 {
		t.Fatalf("DeriveWheels returned %d wheels", len(w))
	}
	for _, wheel := range w {
		if !IsPermutation(wheel, Alphabet) {
			t.Fatalf("DeriveWheels returned %q", wheel)
		}
	}
	if w[0] == w[1] {
		t.Error("wheels are not independent")
	}
	again := DeriveWheels("byrne", Alphabet, 2)
	if again[0] != w[0] || again[1] != w[1] {
		t.Error("DeriveWheels is not deterministic")
	}
	if w[0] == DeriveWheels("chaos", Alphabet, 1)[0] {
		t.Error("different passphrases produced the same wheel")
	}
	if w[0] == DeriveAlphabet("byrne", Alphabet) {
		t.Error("wheel and alphabet derivations share a domain")
	}
}

func TestFingerprint(t *testing.T) {
	f := Fingerprint([]byte("MONARCHY"))
	if len(f) != 12 {
		t.Errorf("Fingerprint length = %d, want 12", len(f))
	}
	if f == Fingerprint([]byte("MONARCHZ")) {
		t.Error("Fingerprint collision")
	}
}

func TestDecks(t *testing.T) {
	check := func(name string, deck []int) {
		t.Helper()
		if len(deck) != 54 {
			t.Fatalf("%s: deck has %d cards", name, len(deck))
		}
		sorted := append([]int(nil), deck...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i+1 {
				t.Fatalf("%s: not a deck of 1..54: %v", name, deck)
			}
		}
	}

	d1 := DeriveDeck("correct horse", 54)
	check("DeriveDeck", d1)
	d2 := DeriveDeck("correct horse", 54)
	for i := range d1 {
		if d1[i] != d2[i] {
			t.Fatal("DeriveDeck is not deterministic")
		}
	}

	r, err := RandomDeck(54)
	if err != nil {
		t.Fatalf("RandomDeck failed: %v", err)
	}
	check("RandomDeck", r)
}
