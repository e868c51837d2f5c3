// Package utils provides helpers shared by the old-crypto ciphers.
// This file contains the keyword and text manipulation helpers used by the
// key schedules: alphabet condensing, keyword mixing and column ranking.
package utils

import (
	"sort"
	"strings"
)

const (
	// Alphabet is the 26-letter Latin alphabet.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// AlphabetTxt is the checkerboard alphabet: letters, numeric marker and dash.
	AlphabetTxt = Alphabet + "/-"

	// Base36 is the 6x6 square alphabet.
	Base36 = Alphabet + "0123456789"

	// Digits is the set of decimal digits in ascending order.
	Digits = "0123456789"
)

// Condense removes repeated symbols, keeping the first occurrence of each.
func Condense(s string) string {
	var seen [256]bool
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			out = append(out, s[i])
		}
	}
	return string(out)
}

// Expand splits s into pairs for a digraphic cipher. A pair of equal
// symbols is broken with filler and a trailing odd symbol is padded with
// it; alt takes the place of filler when the symbol itself is filler.
// It also returns the positions of every inserted symbol.
func Expand(s string, filler, alt byte) (string, []int) {
	out := make([]byte, 0, len(s)+len(s)/2+1)
	var added []int
	for i := 0; i < len(s); {
		a := s[i]
		if i+1 < len(s) && s[i+1] != a {
			out = append(out, a, s[i+1])
			i += 2
			continue
		}
		f := filler
		if a == f {
			f = alt
		}
		added = append(added, len(out)+1)
		out = append(out, a, f)
		i++
	}
	return string(out), added
}

// FixDouble inserts filler between every pair of equal neighbours.
func FixDouble(s string, filler byte) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if i+1 < len(s) && s[i] == s[i+1] {
			b.WriteByte(filler)
		}
	}
	return b.String()
}

// Shuffle mixes alphabet with a keyword: the condensed key followed by the
// rest of the alphabet is written in rows under len(Condense(key)) columns,
// then read column by column from the rightmost column to the leftmost.
//
// Symbols of key that are not part of alphabet still shape the columns and
// appear in the result; callers filter them if needed.
func Shuffle(key, alphabet string) string {
	word := []byte(Condense(key + alphabet))
	length := len(Condense(key))
	if length == 0 {
		return string(word)
	}
	height := (len(alphabet) + length - 1) / length

	res := make([]byte, 0, len(word))
	for i := length - 1; i >= 0; i-- {
		for j := 0; j <= height; j++ {
			if len(word) <= height-1 {
				return string(append(res, word...))
			}
			if k := i * j; k < len(word) {
				res = append(res, word[k])
				word = append(word[:k], word[k+1:]...)
			}
		}
	}
	return string(append(res, word...))
}

// ToNumeric returns the column rank of every key symbol. Equal symbols are
// ranked left to right: ARABESQUE gives 0 6 1 2 3 7 5 8 4.
func ToNumeric(key string) []int {
	idx := make([]int, len(key))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return key[idx[a]] < key[idx[b]] })

	ranks := make([]int, len(key))
	for rank, i := range idx {
		ranks[i] = rank
	}
	return ranks
}

// ByN groups s into space separated chunks of n symbols.
func ByN(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+n, len(s))])
	}
	return b.String()
}

// OutputAsBlock formats s in the traditional groups of five.
func OutputAsBlock(s string) string {
	return ByN(s, 5)
}

// Normalize uppercases s and drops every symbol that is not in alphabet.
func Normalize(s, alphabet string) string {
	var keep [256]bool
	for i := 0; i < len(alphabet); i++ {
		keep[alphabet[i]] = true
	}
	up := strings.ToUpper(s)
	out := make([]byte, 0, len(up))
	for i := 0; i < len(up); i++ {
		if keep[up[i]] {
			out = append(out, up[i])
		}
	}
	return string(out)
}

// IndexTable maps every byte to its position in alphabet, or -1.
func IndexTable(alphabet string) [256]int {
	var t [256]int
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = i
	}
	return t
}

// IsPermutation reports whether s contains every symbol of alphabet exactly once.
func IsPermutation(s, alphabet string) bool {
	if len(s) != len(alphabet) {
		return false
	}
	idx := IndexTable(alphabet)
	var seen [256]bool
	for i := 0; i < len(s); i++ {
		if idx[s[i]] < 0 || seen[s[i]] {
			return false
		}
		seen[s[i]] = true
	}
	return true
}

// Unique reports whether s has no repeated symbol.
func Unique(s string) bool {
	return len(Condense(s)) == len(s)
}
