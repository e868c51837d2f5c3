// Package adfgvx implements the German ADFGVX and ADFGX field ciphers: a
// Polybius square written with the coordinate letters A D F G V X, followed
// by a columnar transposition of the resulting letter pairs.
package adfgvx

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/ciphers/square"
	"github.com/BackendStack21/old-crypto-go/ciphers/transposition"
	"github.com/BackendStack21/old-crypto-go/pipeline"
)

// Cipher is an ADFGVX (or ADFGX) pipeline.
type Cipher struct {
	*pipeline.Pipeline
	square *square.Cipher
	tp     *transposition.Cipher
}

var _ oldcrypto.Block = (*Cipher)(nil)

type config struct {
	adfgx    bool
	conflate bool
}

// Option configures the cipher.
type Option func(*config)

// WithADFGX selects the earlier 5x5 variant with J written as I.
func WithADFGX() Option {
	return func(c *config) { c.adfgx = true }
}

// WithoutConflation keeps J distinct in the ADFGX variant, which then
// rejects it. Without WithADFGX, New fails.
func WithoutConflation() Option {
	return func(c *config) { c.conflate = false }
}

// New builds the cipher from the square key and the transposition key.
func New(squareKey, transpositionKey string, opts ...Option) (*Cipher, error) {
	cfg := config{conflate: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.adfgx && !cfg.conflate {
		return nil, oldcrypto.InvalidConfigf("adfgvx", "conflation only applies to the 5x5 ADFGX square")
	}

	name, coords := "adfgvx", square.ADFGVX
	var sqOpts []square.Option
	if cfg.adfgx {
		name, coords = "adfgx", square.ADFGX
		sqOpts = append(sqOpts, square.WithConflation(cfg.conflate))
	}

	sq, err := square.New(squareKey, coords, sqOpts...)
	if err != nil {
		return nil, err
	}
	tp, err := transposition.New(transpositionKey)
	if err != nil {
		return nil, err
	}
	p, err := pipeline.New(name,
		pipeline.Stage{Name: "square", Block: sq},
		pipeline.Stage{Name: "transposition", Block: tp},
	)
	if err != nil {
		return nil, err
	}
	return &Cipher{Pipeline: p, square: sq, tp: tp}, nil
}

// Square returns the substitution stage.
func (c *Cipher) Square() *square.Cipher { return c.square }

// Transposition returns the transposition stage.
func (c *Cipher) Transposition() *transposition.Cipher { return c.tp }
