// Package memzero erases sensitive byte slices. Zero is the single wipe
// primitive used across the module.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. The write goes through
// subtle.ConstantTimeCopy and b is kept live until it completes, so the
// overwrite cannot be elided.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}
