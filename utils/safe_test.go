package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckLength(t *testing.T) {
	if err := CheckLength(10, 100); err != nil {
		t.Errorf("CheckLength(10, 100) = %v; want nil", err)
	}
	if err := CheckLength(-1, 100); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("CheckLength(-1, 100) = %v; want ErrInvalidLength", err)
	}
	if err := CheckLength(101, 100); !errors.Is(err, ErrExceedsLimit) {
		t.Errorf("CheckLength(101, 100) = %v; want ErrExceedsLimit", err)
	}
}

func TestCheckPositive(t *testing.T) {
	if err := CheckPositive(1, "count"); err != nil {
		t.Errorf("CheckPositive(1) = %v", err)
	}
	if err := CheckPositive(0, "count"); err == nil {
		t.Error("CheckPositive(0) should fail")
	}
}

func TestReadLimited(t *testing.T) {
	data, err := ReadLimited(strings.NewReader("ATTACKATDAWN"), 12)
	if err != nil || string(data) != "ATTACKATDAWN" {
		t.Errorf("ReadLimited = %q, %v", data, err)
	}
	_, err = ReadLimited(strings.NewReader("ATTACKATDAWN"), 11)
	if !errors.Is(err, ErrExceedsLimit) {
		t.Errorf("ReadLimited over limit = %v; want ErrExceedsLimit", err)
	}
}
