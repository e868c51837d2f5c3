// Package core provides cipher parameters, their validation and the
// registry that turns a parameter set into a ready Block.
package core

import (
	"fmt"
	"strings"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
)

// Params is the flat parameter set accepted by every catalog cipher. Only
// the fields listed by the cipher's Entry may be set.
type Params struct {
	Cipher string `json:"cipher" yaml:"cipher" mapstructure:"cipher"`

	Key  string `json:"key,omitempty" yaml:"key,omitempty" mapstructure:"key"`
	Key2 string `json:"key2,omitempty" yaml:"key2,omitempty" mapstructure:"key2"`

	Passphrase string `json:"passphrase,omitempty" yaml:"passphrase,omitempty" mapstructure:"passphrase"`

	Shift       int    `json:"shift,omitempty" yaml:"shift,omitempty" mapstructure:"shift"`
	Start       string `json:"start,omitempty" yaml:"start,omitempty" mapstructure:"start"`
	Alphabet    string `json:"alphabet,omitempty" yaml:"alphabet,omitempty" mapstructure:"alphabet"`
	PassThrough bool   `json:"pass_through,omitempty" yaml:"pass_through,omitempty" mapstructure:"pass_through"`

	Filler     string `json:"filler,omitempty" yaml:"filler,omitempty" mapstructure:"filler"`
	AltFiller  string `json:"alt_filler,omitempty" yaml:"alt_filler,omitempty" mapstructure:"alt_filler"`
	NoConflate bool   `json:"no_conflate,omitempty" yaml:"no_conflate,omitempty" mapstructure:"no_conflate"`
	Coords     string `json:"coords,omitempty" yaml:"coords,omitempty" mapstructure:"coords"`

	Escapes     string `json:"escapes,omitempty" yaml:"escapes,omitempty" mapstructure:"escapes"`
	Frequent    string `json:"frequent,omitempty" yaml:"frequent,omitempty" mapstructure:"frequent"`
	AdditiveKey string `json:"additive_key,omitempty" yaml:"additive_key,omitempty" mapstructure:"additive_key"`

	Personal      string `json:"personal,omitempty" yaml:"personal,omitempty" mapstructure:"personal"`
	Indicator     string `json:"indicator,omitempty" yaml:"indicator,omitempty" mapstructure:"indicator"`
	Phrase        string `json:"phrase,omitempty" yaml:"phrase,omitempty" mapstructure:"phrase"`
	MessageNumber string `json:"message_number,omitempty" yaml:"message_number,omitempty" mapstructure:"message_number"`

	Disrupted bool `json:"disrupted,omitempty" yaml:"disrupted,omitempty" mapstructure:"disrupted"`
	ADFGX     bool `json:"adfgx,omitempty" yaml:"adfgx,omitempty" mapstructure:"adfgx"`
}

// Field names, as they appear in recipe files.
const (
	FieldKey           = "key"
	FieldKey2          = "key2"
	FieldPassphrase    = "passphrase"
	FieldShift         = "shift"
	FieldStart         = "start"
	FieldAlphabet      = "alphabet"
	FieldPassThrough   = "pass_through"
	FieldFiller        = "filler"
	FieldAltFiller     = "alt_filler"
	FieldNoConflate    = "no_conflate"
	FieldCoords        = "coords"
	FieldEscapes       = "escapes"
	FieldFrequent      = "frequent"
	FieldAdditiveKey   = "additive_key"
	FieldPersonal      = "personal"
	FieldIndicator     = "indicator"
	FieldPhrase        = "phrase"
	FieldMessageNumber = "message_number"
	FieldDisrupted     = "disrupted"
	FieldADFGX         = "adfgx"
)

var fieldChecks = []struct {
	name string
	set  func(p *Params) bool
}{
	{FieldKey, func(p *Params) bool { return p.Key != "" }},
	{FieldKey2, func(p *Params) bool { return p.Key2 != "" }},
	{FieldPassphrase, func(p *Params) bool { return p.Passphrase != "" }},
	{FieldShift, func(p *Params) bool { return p.Shift != 0 }},
	{FieldStart, func(p *Params) bool { return p.Start != "" }},
	{FieldAlphabet, func(p *Params) bool { return p.Alphabet != "" }},
	{FieldPassThrough, func(p *Params) bool { return p.PassThrough }},
	{FieldFiller, func(p *Params) bool { return p.Filler != "" }},
	{FieldAltFiller, func(p *Params) bool { return p.AltFiller != "" }},
	{FieldNoConflate, func(p *Params) bool { return p.NoConflate }},
	{FieldCoords, func(p *Params) bool { return p.Coords != "" }},
	{FieldEscapes, func(p *Params) bool { return p.Escapes != "" }},
	{FieldFrequent, func(p *Params) bool { return p.Frequent != "" }},
	{FieldAdditiveKey, func(p *Params) bool { return p.AdditiveKey != "" }},
	{FieldPersonal, func(p *Params) bool { return p.Personal != "" }},
	{FieldIndicator, func(p *Params) bool { return p.Indicator != "" }},
	{FieldPhrase, func(p *Params) bool { return p.Phrase != "" }},
	{FieldMessageNumber, func(p *Params) bool { return p.MessageNumber != "" }},
	{FieldDisrupted, func(p *Params) bool { return p.Disrupted }},
	{FieldADFGX, func(p *Params) bool { return p.ADFGX }},
}

// SetFields returns the names of every non-zero option, in declaration
// order. Cipher is not an option.
func (p Params) SetFields() []string {
	var out []string
	for _, f := range fieldChecks {
		if f.set(&p) {
			out = append(out, f.name)
		}
	}
	return out
}

// Normalized returns a copy with the cipher name lowercased and trimmed.
func (p Params) Normalized() Params {
	p.Cipher = strings.ToLower(strings.TrimSpace(p.Cipher))
	return p
}

// ValidateParams checks that the cipher is known and that no option
// outside its field list is set. Options are never silently ignored.
func ValidateParams(p Params) error {
	p = p.Normalized()
	if p.Cipher == "" {
		return fmt.Errorf("core: %w: no cipher selected", oldcrypto.ErrInvalidConfiguration)
	}
	e, ok := Lookup(p.Cipher)
	if !ok {
		return fmt.Errorf("core: %w: unknown cipher %q", oldcrypto.ErrInvalidConfiguration, p.Cipher)
	}
	return e.check(p)
}

func (e Entry) check(p Params) error {
	var bad []string
	for _, f := range p.SetFields() {
		if !e.allows(f) {
			bad = append(bad, f)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%s: %w: option(s) %s do not apply", e.Name, oldcrypto.ErrInvalidConfiguration, strings.Join(bad, ", "))
	}
	return nil
}

func (e Entry) allows(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// single converts a one symbol option to a byte. Empty means def.
func single(cipher, field, v string, def byte) (byte, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 1:
		return v[0], nil
	default:
		return 0, oldcrypto.InvalidConfigf(cipher, "%s %q must be a single symbol", field, v)
	}
}
