package oldcrypto

// =============================================================================
// Block Contract
// =============================================================================

// Block is the contract shared by every cipher.
//
// Encrypt and Decrypt operate on symbol streams (ASCII bytes) and never modify
// src. On failure the returned slice is nil: output is all-or-nothing.
type Block interface {
	// BlockSize returns the natural processing unit in plaintext symbols.
	BlockSize() int
	Encrypt(src []byte) ([]byte, error)
	Decrypt(src []byte) ([]byte, error)
}

// Resetter is implemented by ciphers whose state evolves while encoding.
type Resetter interface {
	// Reset returns the cipher to the state built from its key.
	Reset()
}

// =============================================================================
// Padding
// =============================================================================

// BlockResult is a symbol stream plus the positions of filler symbols that
// were inserted during encryption.
type BlockResult struct {
	Text    []byte `json:"text" yaml:"text"`
	Fillers []int  `json:"fillers,omitempty" yaml:"fillers,omitempty"`
}

// Padder is implemented by ciphers that insert fillers (Playfair). The
// filler positions refer to the preprocessed plaintext, so DecryptBlock can
// strip them deterministically.
type Padder interface {
	EncryptBlock(src []byte) (*BlockResult, error)
	DecryptBlock(res *BlockResult) ([]byte, error)
}

// =============================================================================
// Catalog
// =============================================================================

// Kind groups ciphers by family.
type Kind string

const (
	KindIdentity      Kind = "identity"
	KindSubstitution  Kind = "substitution"
	KindPolygraphic   Kind = "polygraphic"
	KindCheckerboard  Kind = "checkerboard"
	KindTransposition Kind = "transposition"
	KindKeystream     Kind = "keystream"
	KindComposite     Kind = "composite"
)
