// Package vic implements a simplified VIC cipher, the hand system carried
// by Soviet agent Reino Häyhänen: a straddling checkerboard followed by two
// columnar transpositions, all keyed from a short set of agent material
// through a chain-addition key schedule.
//
// The schedule is pluggable so the historical derivation can be swapped in.
package vic

import (
	"strings"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/ciphers/straddling"
	"github.com/BackendStack21/old-crypto-go/ciphers/transposition"
	"github.com/BackendStack21/old-crypto-go/pipeline"
)

const name = "vic"

// Frequent is the set of letters given single digit codes on the board.
const Frequent = "ATONESIR"

// Material is the secret an agent carries plus the per-message indicator.
type Material struct {
	Personal      string `json:"personal" yaml:"personal"`             // two distinct digits
	Indicator     string `json:"indicator" yaml:"indicator"`           // at least five digits
	Phrase        string `json:"phrase" yaml:"phrase"`                 // at least twenty letters
	MessageNumber string `json:"message_number" yaml:"message_number"` // five digits
}

// Validate checks the shape of every field.
func (m Material) Validate() error {
	if len(m.Personal) != 2 || !allDigits(m.Personal) || m.Personal[0] == m.Personal[1] {
		return oldcrypto.InvalidKeyf(name, "personal number must be two distinct digits")
	}
	if len(m.Indicator) < 5 || !allDigits(m.Indicator) {
		return oldcrypto.InvalidKeyf(name, "indicator must be at least five digits")
	}
	if len(m.MessageNumber) != 5 || !allDigits(m.MessageNumber) {
		return oldcrypto.InvalidKeyf(name, "message number must be five digits")
	}
	if len(m.Phrase) < 20 {
		return oldcrypto.InvalidKeyf(name, "phrase must be at least twenty letters, got %d", len(m.Phrase))
	}
	for i := 0; i < len(m.Phrase); i++ {
		c := m.Phrase[i] | 0x20
		if c < 'a' || c > 'z' {
			return oldcrypto.InvalidKeyf(name, "phrase symbol %q is not a letter", m.Phrase[i])
		}
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func upper(s string) string { return strings.ToUpper(s) }

type config struct {
	schedule  Schedule
	disrupted bool
}

// Option configures the cipher.
type Option func(*config) error

// WithSchedule replaces the default ChainSchedule.
func WithSchedule(s Schedule) Option {
	return func(c *config) error {
		if s == nil {
			return oldcrypto.InvalidConfigf(name, "schedule can not be nil")
		}
		c.schedule = s
		return nil
	}
}

// WithDisruptedTransposition makes the second transposition a disrupted
// (triangle) one, as in the operational system.
func WithDisruptedTransposition() Option {
	return func(c *config) error {
		c.disrupted = true
		return nil
	}
}

// Cipher is a keyed VIC pipeline.
type Cipher struct {
	*pipeline.Pipeline
	keys  Keys
	board *straddling.Cipher
}

var _ oldcrypto.Block = (*Cipher)(nil)

// New validates the material, derives the keys and assembles the stages.
func New(m Material, opts ...Option) (*Cipher, error) {
	cfg := config{schedule: ChainSchedule{}}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	keys, err := cfg.schedule.Derive(m)
	if err != nil {
		return nil, err
	}

	board, err := straddling.New(keys.Checkerboard, m.Personal, straddling.WithFrequentLetters(Frequent))
	if err != nil {
		return nil, err
	}
	first, err := transposition.New(keys.First)
	if err != nil {
		return nil, err
	}
	var second oldcrypto.Block
	if cfg.disrupted {
		second, err = transposition.NewDisrupted(keys.Second)
	} else {
		second, err = transposition.New(keys.Second)
	}
	if err != nil {
		return nil, err
	}

	p, err := pipeline.New(name,
		pipeline.Stage{Name: "checkerboard", Block: board},
		pipeline.Stage{Name: "transposition-1", Block: first},
		pipeline.Stage{Name: "transposition-2", Block: second},
	)
	if err != nil {
		return nil, err
	}
	return &Cipher{Pipeline: p, keys: keys, board: board}, nil
}

// Keys returns the derived keys.
func (c *Cipher) Keys() Keys { return c.keys }

// Board returns the checkerboard stage.
func (c *Cipher) Board() *straddling.Cipher { return c.board }
