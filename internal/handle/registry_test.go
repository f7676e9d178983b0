package handle_test

import (
	"errors"
	"testing"

	"zeroize/internal/domain"
	"zeroize/internal/handle"
)

func TestOpenValue_OK(t *testing.T) {
	var vault domain.Vault = handle.NewRegistry()

	h, err := vault.Open("my-secret-password")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got, err := vault.Value(h)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got != "my-secret-password" {
		t.Fatalf("value mismatch: %q", got)
	}
}

func TestOpen_EmptySecret(t *testing.T) {
	vault := handle.NewRegistry()

	h, err := vault.Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got, err := vault.Value(h)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestZeroize_HandleStaysValid(t *testing.T) {
	vault := handle.NewRegistry()

	h, err := vault.Open("secret")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := vault.Zeroize(h); err != nil {
		t.Fatalf("zeroize: %v", err)
	}
	if err := vault.Zeroize(h); err != nil {
		t.Fatalf("second zeroize: %v", err)
	}
	got, err := vault.Value(h)
	if err != nil {
		t.Fatalf("value after zeroize: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty value after zeroize, got %q", got)
	}
}

func TestRelease_ForgetsHandle(t *testing.T) {
	vault := handle.NewRegistry()

	h, err := vault.Open("secret")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := vault.Release(h); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := vault.Value(h); !errors.Is(err, handle.ErrUnknownHandle) {
		t.Fatalf("expected unknown handle after release, got %v", err)
	}
	if err := vault.Release(h); !errors.Is(err, handle.ErrUnknownHandle) {
		t.Fatalf("expected unknown handle on double release, got %v", err)
	}
}

func TestUnknownHandle(t *testing.T) {
	vault := handle.NewRegistry()

	if _, err := vault.Value(42); !errors.Is(err, handle.ErrUnknownHandle) {
		t.Fatalf("value: expected unknown handle, got %v", err)
	}
	if err := vault.Zeroize(42); !errors.Is(err, handle.ErrUnknownHandle) {
		t.Fatalf("zeroize: expected unknown handle, got %v", err)
	}
}

func TestHandles_Independent(t *testing.T) {
	vault := handle.NewRegistry()

	h1, err := vault.Open("password123")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	h2, err := vault.Open("different-password")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if h1 == h2 {
		t.Fatal("handles collide")
	}

	if err := vault.Zeroize(h1); err != nil {
		t.Fatalf("zeroize: %v", err)
	}
	got, err := vault.Value(h2)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got != "different-password" {
		t.Fatalf("sibling secret disturbed: %q", got)
	}
}
