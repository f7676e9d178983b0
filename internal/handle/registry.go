package handle

import (
	"errors"
	"sync"

	"zeroize/internal/domain"
	"zeroize/internal/secure"
)

// ErrUnknownHandle is returned when a handle was never issued or has
// already been released.
var ErrUnknownHandle = errors.New("unknown secret handle")

// Registry issues handles for secure buffers and resolves operations on
// them. The registry serializes its own bookkeeping and the operations
// it forwards; each buffer stays single-owner underneath.
type Registry struct {
	mu      sync.Mutex
	next    domain.Handle
	entries map[domain.Handle]domain.Secret
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.Handle]domain.Secret)}
}

// Open copies value into a new secure buffer and returns its handle.
func (r *Registry) Open(value string) (domain.Handle, error) {
	b, err := secure.New(value)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.entries[r.next] = b
	return r.next, nil
}

// Value returns the text held under h, or the empty string once it has
// been wiped.
func (r *Registry) Value(h domain.Handle) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[h]
	if !ok {
		return "", ErrUnknownHandle
	}
	return s.Value(), nil
}

// Zeroize wipes the secret held under h. The handle stays valid; later
// reads return the empty string.
func (r *Registry) Zeroize(h domain.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[h]
	if !ok {
		return ErrUnknownHandle
	}
	s.Zeroize()
	return nil
}

// Release wipes the secret and forgets the handle.
func (r *Registry) Release(h domain.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[h]
	if !ok {
		return ErrUnknownHandle
	}
	s.Zeroize()
	delete(r.entries, h)
	return nil
}

// Compile-time assertion that Registry implements domain.Vault.
var _ domain.Vault = (*Registry)(nil)
