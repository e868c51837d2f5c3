// Package pipeline chains ciphers into super-encipherment pipelines.
//
// Encrypt feeds each stage's output to the next stage; Decrypt runs the
// inverse stages in reverse order. Composite ciphers such as ADFGVX, Nihilist
// and VIC are pipelines, so each stage can be built and tested on its own.
package pipeline

import (
	"fmt"
	"log/slog"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
)

// Stage is one named step of a pipeline.
type Stage struct {
	Name  string
	Block oldcrypto.Block
}

// Pipeline is an ordered list of stages. It implements oldcrypto.Block.
type Pipeline struct {
	name   string
	stages []Stage
	logger *slog.Logger
}

var (
	_ oldcrypto.Block    = (*Pipeline)(nil)
	_ oldcrypto.Resetter = (*Pipeline)(nil)
)

// New returns a pipeline named name. At least one stage is required.
func New(name string, stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, oldcrypto.InvalidConfigf(name, "pipeline needs at least one stage")
	}
	for i, s := range stages {
		if s.Block == nil {
			return nil, oldcrypto.InvalidConfigf(name, "stage %d (%s) has no cipher", i, s.Name)
		}
	}
	return &Pipeline{name: name, stages: append([]Stage(nil), stages...)}, nil
}

// WithLogger makes the pipeline log every stage at debug level.
func (p *Pipeline) WithLogger(l *slog.Logger) *Pipeline {
	p.logger = l
	return p
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Stages returns a copy of the stage list.
func (p *Pipeline) Stages() []Stage { return append([]Stage(nil), p.stages...) }

// BlockSize returns the block size of the last stage.
func (p *Pipeline) BlockSize() int { return p.stages[len(p.stages)-1].Block.BlockSize() }

// Encrypt runs every stage in order.
func (p *Pipeline) Encrypt(src []byte) ([]byte, error) {
	out := src
	for i, s := range p.stages {
		next, err := s.Block.Encrypt(out)
		if err != nil {
			return nil, p.wrap(i, s, err)
		}
		p.log("encrypt", i, s, len(out), len(next))
		out = next
	}
	return out, nil
}

// Decrypt runs the inverse of every stage, last stage first.
func (p *Pipeline) Decrypt(src []byte) ([]byte, error) {
	out := src
	for i := len(p.stages) - 1; i >= 0; i-- {
		s := p.stages[i]
		next, err := s.Block.Decrypt(out)
		if err != nil {
			return nil, p.wrap(i, s, err)
		}
		p.log("decrypt", i, s, len(out), len(next))
		out = next
	}
	return out, nil
}

// Trace encrypts src and returns the output of every stage in order.
func (p *Pipeline) Trace(src []byte) ([][]byte, error) {
	steps := make([][]byte, 0, len(p.stages))
	out := src
	for i, s := range p.stages {
		next, err := s.Block.Encrypt(out)
		if err != nil {
			return nil, p.wrap(i, s, err)
		}
		steps = append(steps, next)
		out = next
	}
	return steps, nil
}

// TraceDecrypt decrypts src and returns the output of every inverse stage
// in the order they run, last stage first.
func (p *Pipeline) TraceDecrypt(src []byte) ([][]byte, error) {
	steps := make([][]byte, 0, len(p.stages))
	out := src
	for i := len(p.stages) - 1; i >= 0; i-- {
		s := p.stages[i]
		next, err := s.Block.Decrypt(out)
		if err != nil {
			return nil, p.wrap(i, s, err)
		}
		steps = append(steps, next)
		out = next
	}
	return steps, nil
}

// Reset resets every stateful stage.
func (p *Pipeline) Reset() {
	for _, s := range p.stages {
		if r, ok := s.Block.(oldcrypto.Resetter); ok {
			r.Reset()
		}
	}
}

func (p *Pipeline) wrap(i int, s Stage, err error) error {
	return fmt.Errorf("%s stage %d (%s): %w", p.name, i, s.Name, err)
}

func (p *Pipeline) log(dir string, i int, s Stage, in, out int) {
	if p.logger == nil {
		return
	}
	p.logger.Debug("pipeline stage",
		"pipeline", p.name,
		"direction", dir,
		"stage", i,
		"name", s.Name,
		"in", in,
		"out", out)
}
