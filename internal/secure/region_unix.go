//go:build linux || darwin

package secure

import (
	"fmt"

	"golang.org/x/sys/unix"

	"zeroize/internal/memzero"
)

// region is an anonymous mmap outside the Go heap. The garbage collector
// never relocates it, mlock keeps it out of swap, and MADV_DONTDUMP keeps
// it out of core dumps where the kernel supports it.
type region struct {
	data []byte
}

func newRegion(size int) (*region, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	if err := unix.Mlock(data); err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("mlock: %w", err)
	}
	// Best-effort: older kernels reject MADV_DONTDUMP.
	_ = unix.Madvise(data, unix.MADV_DONTDUMP)
	return &region{data: data}, nil
}

// release wipes the region and returns the memory to the kernel. Runs
// from the collection-time cleanup; by then the bytes hold either the
// original secret (no explicit Zeroize happened) or zeros.
func (r *region) release() {
	if r.data == nil {
		return
	}
	memzero.Zero(r.data)
	if hook := releaseHook(); hook != nil {
		hook(r.data)
	}
	_ = unix.Munlock(r.data)
	_ = unix.Munmap(r.data)
	r.data = nil
}
