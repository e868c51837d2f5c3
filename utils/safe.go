// This file contains size guards used when reading untrusted input.

package utils

import (
	"errors"
	"io"
)

const (
	// MaxMessageSize is the maximum message accepted by the command line tool.
	MaxMessageSize = 1 << 20 // 1MB

	// MaxKeyLength bounds keys, alphabets and phrases.
	MaxKeyLength = 4096
)

var (
	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckPositive validates that value is > 0.
func CheckPositive(value int, name string) error {
	if value <= 0 {
		return errors.New(name + " must be positive")
	}
	return nil
}

// ReadLimited reads all of r, failing with ErrExceedsLimit past maxAllowed bytes.
func ReadLimited(r io.Reader, maxAllowed int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(maxAllowed)+1))
	if err != nil {
		return nil, err
	}
	if err := CheckLength(len(data), maxAllowed); err != nil {
		return nil, err
	}
	return data, nil
}
