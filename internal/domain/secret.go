package domain

// Handle is the opaque reference a foreign caller holds to a secret
// container. Callers invoke operations through a Vault with the handle
// and never see the container's representation.
type Handle uint64

// Secret is a zeroizing container for one sensitive string.
type Secret interface {
	// Value returns the held text, or the empty string once wiped.
	Value() string
	// Len reports the byte length of the held text, 0 once wiped.
	Len() int
	// Wiped reports whether the secret has been zeroized.
	Wiped() bool
	// Zeroize overwrites the backing bytes with zeros. Idempotent.
	Zeroize()
}

// Vault is the call contract exposed to an embedding host: construct,
// read, wipe, and release secrets by opaque handle.
type Vault interface {
	Open(value string) (Handle, error)
	Value(h Handle) (string, error)
	Zeroize(h Handle) error
	Release(h Handle) error
}
