package oldcrypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol indicates an input symbol outside the cipher's alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidKey indicates a key that cannot produce valid cipher state.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidConfiguration indicates conflicting, missing or unknown options.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAmbiguousDecode indicates a code table that is not prefix-free.
	ErrAmbiguousDecode = errors.New("ambiguous decode")
)

// SymbolError reports the offending symbol and its position in the input.
type SymbolError struct {
	Cipher string
	Symbol byte
	Pos    int
	Reason string
}

func (e *SymbolError) Error() string {
	msg := fmt.Sprintf("%s: %v %q at position %d", e.Cipher, ErrInvalidSymbol, e.Symbol, e.Pos)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap makes errors.Is(err, ErrInvalidSymbol) hold.
func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }

// InvalidSymbol builds a *SymbolError.
func InvalidSymbol(cipher string, sym byte, pos int) error {
	return &SymbolError{Cipher: cipher, Symbol: sym, Pos: pos}
}

// InvalidSymbolf builds a *SymbolError with an explanation.
func InvalidSymbolf(cipher string, sym byte, pos int, format string, args ...any) error {
	return &SymbolError{Cipher: cipher, Symbol: sym, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

// InvalidKeyf wraps ErrInvalidKey with context.
func InvalidKeyf(cipher, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", cipher, ErrInvalidKey, fmt.Sprintf(format, args...))
}

// InvalidConfigf wraps ErrInvalidConfiguration with context.
func InvalidConfigf(cipher, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", cipher, ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
