package memzero_test

import (
	"testing"

	"zeroize/internal/memzero"
)

func TestZero_Overwrites(t *testing.T) {
	b := []byte("sensitive-data")
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: got %d", i, v)
		}
	}
}

func TestZero_Empty(t *testing.T) {
	memzero.Zero(nil)
	memzero.Zero([]byte{})
}

func TestZero_KeepsLength(t *testing.T) {
	b := make([]byte, 4096)
	for i := range b {
		b[i] = 0xFF
	}
	memzero.Zero(b)
	if len(b) != 4096 {
		t.Fatalf("length changed: %d", len(b))
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: got %d", i, v)
		}
	}
}
