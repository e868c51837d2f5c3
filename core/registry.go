package core

import (
	"fmt"
	"sort"
	"sync"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
)

// Builder constructs a Block from validated parameters.
type Builder func(p Params) (oldcrypto.Block, error)

// Entry describes one selectable cipher.
type Entry struct {
	Name        string
	Kind        oldcrypto.Kind
	Description string
	// Fields lists the options the cipher accepts.
	Fields []string
	Build  Builder

	// Sample is a working parameter set and SampleText a message it
	// accepts; both feed demos and benchmarks.
	Sample     Params
	SampleText string
}

// Global cipher registry
var (
	entries    = make(map[string]Entry)
	registryMu sync.RWMutex
)

// Register adds an entry to the registry.
func Register(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("core: %w: entry name can not be empty", oldcrypto.ErrInvalidConfiguration)
	}
	if e.Build == nil {
		return fmt.Errorf("core: %w: entry %s has no builder", oldcrypto.ErrInvalidConfiguration, e.Name)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := entries[e.Name]; exists {
		return fmt.Errorf("core: %w: cipher %s is already registered", oldcrypto.ErrInvalidConfiguration, e.Name)
	}
	entries[e.Name] = e
	return nil
}

// MustRegister is Register for init code; it panics on error.
func MustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Lookup retrieves an entry by name.
func Lookup(name string) (Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e, ok := entries[name]
	return e, ok
}

// List returns every entry sorted by name.
func List() []Entry {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted entry names.
func Names() []string {
	list := List()
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

// Unregister removes an entry (mainly for testing). It reports whether the
// entry existed.
func Unregister(name string) bool {
	registryMu.Lock()
	defer registryMu.Unlock()

	_, ok := entries[name]
	delete(entries, name)
	return ok
}

// New validates p and builds the selected cipher.
func New(p Params) (oldcrypto.Block, error) {
	p = p.Normalized()
	if err := ValidateParams(p); err != nil {
		return nil, err
	}
	e, ok := Lookup(p.Cipher)
	if !ok {
		return nil, fmt.Errorf("core: %w: unknown cipher %q", oldcrypto.ErrInvalidConfiguration, p.Cipher)
	}
	b, err := e.Build(p)
	if err != nil {
		return nil, err
	}
	return b, nil
}
