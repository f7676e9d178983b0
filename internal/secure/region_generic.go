//go:build !linux && !darwin

package secure

import "zeroize/internal/memzero"

// region falls back to an ordinary heap allocation on platforms without
// mlock support. The wipe guarantee holds; the swap and core-dump
// exclusions do not.
type region struct {
	data []byte
}

func newRegion(size int) (*region, error) {
	return &region{data: make([]byte, size)}, nil
}

func (r *region) release() {
	if r.data == nil {
		return
	}
	memzero.Zero(r.data)
	if hook := releaseHook(); hook != nil {
		hook(r.data)
	}
	r.data = nil
}
