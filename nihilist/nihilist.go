// Package nihilist implements the Nihilist cipher as used by Russian
// revolutionaries and later Soviet agents: a straddling checkerboard, an
// optional non-carrying additive key, then a columnar transposition.
package nihilist

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/ciphers/additive"
	"github.com/BackendStack21/old-crypto-go/ciphers/straddling"
	"github.com/BackendStack21/old-crypto-go/ciphers/transposition"
	"github.com/BackendStack21/old-crypto-go/pipeline"
)

// Cipher is a Nihilist pipeline.
type Cipher struct {
	*pipeline.Pipeline
	board *straddling.Cipher
}

var _ oldcrypto.Block = (*Cipher)(nil)

type config struct {
	additiveKey string
	boardOpts   []straddling.Option
}

// Option configures the cipher.
type Option func(*config)

// WithAdditiveKey inserts a non-carrying additive stage keyed by digits
// between the checkerboard and the transposition.
func WithAdditiveKey(digits string) Option {
	return func(c *config) { c.additiveKey = digits }
}

// WithFrequentLetters forwards the frequent letter set to the checkerboard.
func WithFrequentLetters(s string) Option {
	return func(c *config) { c.boardOpts = append(c.boardOpts, straddling.WithFrequentLetters(s)) }
}

// New builds the cipher. escapes are the checkerboard escape digits.
func New(boardKey, transpositionKey, escapes string, opts ...Option) (*Cipher, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	board, err := straddling.New(boardKey, escapes, cfg.boardOpts...)
	if err != nil {
		return nil, err
	}
	stages := []pipeline.Stage{{Name: "checkerboard", Block: board}}

	if cfg.additiveKey != "" {
		add, err := additive.New(cfg.additiveKey)
		if err != nil {
			return nil, err
		}
		stages = append(stages, pipeline.Stage{Name: "additive", Block: add})
	}

	tp, err := transposition.New(transpositionKey)
	if err != nil {
		return nil, err
	}
	stages = append(stages, pipeline.Stage{Name: "transposition", Block: tp})

	p, err := pipeline.New("nihilist", stages...)
	if err != nil {
		return nil, err
	}
	return &Cipher{Pipeline: p, board: board}, nil
}

// Board returns the checkerboard stage.
func (c *Cipher) Board() *straddling.Cipher { return c.board }
