package core

import (
	"errors"
	"sort"
	"testing"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/ciphers/null"
)

func mockEntry(name string) Entry {
	return Entry{
		Name:        name,
		Kind:        oldcrypto.KindIdentity,
		Description: "Mock cipher for testing",
		Fields:      []string{FieldKey},
		Build: func(Params) (oldcrypto.Block, error) {
			return null.New(), nil
		},
	}
}

func TestRegister(t *testing.T) {
	e := mockEntry("mock-register")
	t.Cleanup(func() { Unregister(e.Name) })

	if err := Register(e); err != nil {
		t.Fatalf("failed to register entry: %v", err)
	}

	// Duplicate registration
	if err := Register(e); !errors.Is(err, oldcrypto.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for duplicate, got %v", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	if err := Register(Entry{Build: mockEntry("x").Build}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := Register(Entry{Name: "no-builder"}); err == nil {
		t.Error("expected error for missing builder")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegister should panic on a duplicate name")
		}
	}()
	MustRegister(mockEntry("caesar"))
}

func TestLookupAndUnregister(t *testing.T) {
	e := mockEntry("mock-lookup")
	if err := Register(e); err != nil {
		t.Fatal(err)
	}

	got, ok := Lookup("mock-lookup")
	if !ok {
		t.Fatal("entry should exist")
	}
	if got.Name != "mock-lookup" {
		t.Errorf("expected name 'mock-lookup', got '%s'", got.Name)
	}

	b, err := New(Params{Cipher: "mock-lookup", Key: "anything"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.BlockSize() != 1 {
		t.Errorf("unexpected block size %d", b.BlockSize())
	}

	if !Unregister("mock-lookup") {
		t.Error("Unregister should report an existing entry")
	}
	if Unregister("mock-lookup") {
		t.Error("second Unregister should report nothing removed")
	}
	if _, ok := Lookup("mock-lookup"); ok {
		t.Fatal("entry should be gone")
	}
}

func TestListSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("List is not sorted: %v", names)
	}
	want := []string{
		"additive", "adfgvx", "adfgx", "caesar", "chaocipher", "disrupted", "nihilist",
		"null", "playfair", "solitaire", "square", "straddling", "transposition", "vic", "wheatstone",
	}
	for _, w := range want {
		if _, ok := Lookup(w); !ok {
			t.Errorf("catalog is missing %s", w)
		}
	}
	if len(names) < len(want) {
		t.Errorf("List returned %d entries, want at least %d", len(names), len(want))
	}
}
