// Package recipe stores named cipher chains on disk and turns them into
// pipelines.
package recipe

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/core"
	"github.com/BackendStack21/old-crypto-go/pipeline"
	"github.com/BackendStack21/old-crypto-go/utils"
)

// Recipe is a saved chain of cipher stages, applied in order on encrypt.
type Recipe struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string      `yaml:"tags,omitempty" json:"tags,omitempty"`
	Stages      []core.Params `yaml:"stages" json:"stages"`
	CreatedAt   string        `yaml:"created_at" json:"created_at"`
	UpdatedAt   string        `yaml:"updated_at" json:"updated_at"`
	// Checksum covers Stages and is set by Store.Save.
	Checksum string `yaml:"checksum,omitempty" json:"checksum,omitempty"`
}

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Validate checks the name and every stage.
func (r *Recipe) Validate() error {
	if !validName.MatchString(r.Name) {
		return fmt.Errorf("recipe: %w: invalid name %q", oldcrypto.ErrInvalidConfiguration, r.Name)
	}
	if len(r.Stages) == 0 {
		return fmt.Errorf("recipe %s: %w: no stages", r.Name, oldcrypto.ErrInvalidConfiguration)
	}
	for i, p := range r.Stages {
		if err := core.ValidateParams(p); err != nil {
			return fmt.Errorf("recipe %s stage %d: %w", r.Name, i, err)
		}
	}
	return nil
}

// Build validates the recipe and assembles a fresh pipeline from it.
func (r *Recipe) Build() (*pipeline.Pipeline, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	stages := make([]pipeline.Stage, len(r.Stages))
	for i, p := range r.Stages {
		b, err := core.New(p)
		if err != nil {
			return nil, fmt.Errorf("recipe %s stage %d: %w", r.Name, i, err)
		}
		stages[i] = pipeline.Stage{Name: p.Normalized().Cipher, Block: b}
	}
	return pipeline.New(r.Name, stages...)
}

// Digest returns the domain separated SHA3-256 of the stage list, hex
// encoded.
func (r *Recipe) Digest() (string, error) {
	data, err := yaml.Marshal(r.Stages)
	if err != nil {
		return "", fmt.Errorf("failed to serialize stages: %w", err)
	}
	return hex.EncodeToString(utils.HashWithDomain(utils.DomainRecipe, data)), nil
}

// VerifyChecksum reports whether the stored checksum matches the stages.
// Recipes without a checksum pass.
func (r *Recipe) VerifyChecksum() error {
	if r.Checksum == "" {
		return nil
	}
	want, err := r.Digest()
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(r.Checksum)) != 1 {
		return fmt.Errorf("recipe %s: %w: checksum mismatch, the stages were modified", r.Name, oldcrypto.ErrInvalidConfiguration)
	}
	return nil
}
