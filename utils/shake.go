package utils

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"strconv"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Domain separation tags for passphrase derived key material.
const (
	DomainAlphabet    = "oldcrypto/alphabet"
	DomainFingerprint = "oldcrypto/fingerprint"
	DomainDeck        = "oldcrypto/deck"
	DomainRecipe      = "oldcrypto/recipe"
	DomainWheel       = "oldcrypto/wheel"
)

var shake256Pool = sync.Pool{
	New: func() interface{} {
		return sha3.NewShake256()
	},
}

// HashWithDomain computes a domain-separated SHA3-256 hash.
// Panics if domain is longer than 255 bytes.
func HashWithDomain(domain string, data []byte) []byte {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	h := sha3.New256()
	h.Write([]byte{byte(len(domainBytes))})
	h.Write(domainBytes)
	h.Write(data)
	return h.Sum(nil)
}

// Fingerprint returns a short hex tag identifying data, suitable for logging
// key material without revealing it.
func Fingerprint(data []byte) string {
	return hex.EncodeToString(HashWithDomain(DomainFingerprint, data)[:6])
}

// DerivePermutation returns a permutation of 0..n-1 derived from passphrase.
// The same passphrase and domain always give the same permutation.
func DerivePermutation(domain, passphrase string, n int) []int {
	if len(domain) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	h := shake256Pool.Get().(sha3.ShakeHash)
	defer func() {
		h.Reset()
		shake256Pool.Put(h)
	}()
	h.Write([]byte{byte(len(domain))})
	h.Write([]byte(domain))
	h.Write([]byte(passphrase))

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates driven by the XOF stream.
	for i := n - 1; i > 0; i-- {
		j := streamInt(h, i+1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// DeriveAlphabet returns a passphrase derived ordering of alphabet.
func DeriveAlphabet(passphrase, alphabet string) string {
	perm := DerivePermutation(DomainAlphabet, passphrase, len(alphabet))
	out := make([]byte, len(alphabet))
	for i, p := range perm {
		out[i] = alphabet[p]
	}
	return string(out)
}

// DeriveWheels returns n independent passphrase derived orderings of
// alphabet, one per wheel of a multi-wheel machine.
func DeriveWheels(passphrase, alphabet string, n int) []string {
	wheels := make([]string, n)
	for w := range wheels {
		perm := DerivePermutation(DomainWheel+"/"+strconv.Itoa(w), passphrase, len(alphabet))
		out := make([]byte, len(alphabet))
		for i, p := range perm {
			out[i] = alphabet[p]
		}
		wheels[w] = string(out)
	}
	return wheels
}

// DeriveDeck returns a passphrase derived ordering of the cards 1..n.
func DeriveDeck(passphrase string, n int) []int {
	deck := DerivePermutation(DomainDeck, passphrase, n)
	for i := range deck {
		deck[i]++
	}
	return deck
}

// streamInt reads a uniform integer in [0, max) from r using rejection sampling.
func streamInt(r io.Reader, max int) int {
	limit := uint32(0xFFFFFFFF - (0xFFFFFFFF % uint32(max)))
	var buf [4]byte
	for {
		_, _ = io.ReadFull(r, buf[:])
		v := binary.LittleEndian.Uint32(buf[:])
		if v < limit {
			return int(v % uint32(max))
		}
	}
}
