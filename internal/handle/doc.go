// Package handle maps opaque numeric handles to live secret containers.
//
// It is the embedding surface for hosts that cannot hold Go pointers
// across a boundary: the registry mints a handle per secret, resolves
// operations on it, and turns container state into caller-visible
// errors.
package handle
