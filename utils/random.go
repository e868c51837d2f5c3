package utils

import (
	"crypto/rand"
	"errors"
	"io"
)

var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(RandReader, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomInt generates a cryptographically secure random integer in [0, max).
// It uses rejection sampling to ensure a uniform distribution.
func RandomInt(max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}
	if max == 1 {
		return 0, nil
	}

	// Calculate number of bytes needed
	bitsNeeded := 0
	for m := max - 1; m > 0; m >>= 1 {
		bitsNeeded++
	}
	bytesNeeded := (bitsNeeded + 7) / 8
	mask := (1 << bitsNeeded) - 1

	for {
		bytes, err := SecureRandomBytes(bytesNeeded)
		if err != nil {
			return 0, err
		}

		var value int
		for i := 0; i < bytesNeeded; i++ {
			value = (value << 8) | int(bytes[i])
		}
		value &= mask

		if value < max {
			return value, nil
		}
	}
}

// RandomPermutation returns a uniformly shuffled copy of alphabet.
func RandomPermutation(alphabet string) (string, error) {
	out := []byte(alphabet)
	for i := len(out) - 1; i > 0; i-- {
		j, err := RandomInt(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// RandomDigits returns n random decimal digits.
func RandomDigits(n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		d, err := RandomInt(10)
		if err != nil {
			return "", err
		}
		out[i] = Digits[d]
	}
	return string(out), nil
}

// RandomDeck returns a uniformly shuffled deck of the cards 1..n.
func RandomDeck(n int) ([]int, error) {
	deck := make([]int, n)
	for i := range deck {
		deck[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j, err := RandomInt(i + 1)
		if err != nil {
			return nil, err
		}
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck, nil
}
