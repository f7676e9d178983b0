package secure

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"zeroize/internal/memzero"
)

// ErrAllocation is returned when backing storage cannot be obtained at
// construction.
var ErrAllocation = errors.New("cannot allocate backing storage")

// beforeRelease, when set, observes a wiped region just before its
// memory is released. Tests hook it to verify the reclaim path zeroes.
// Guarded because releases run on the runtime's cleanup goroutine.
var (
	releaseMu     sync.Mutex
	beforeRelease func([]byte)
)

func setReleaseHook(hook func([]byte)) {
	releaseMu.Lock()
	defer releaseMu.Unlock()
	beforeRelease = hook
}

func releaseHook() func([]byte) {
	releaseMu.Lock()
	defer releaseMu.Unlock()
	return beforeRelease
}

// Buffer owns a copy of a sensitive string and guarantees the copy is
// overwritten with zeros before the memory is given back, whether the
// wipe is requested explicitly or triggered when the Buffer is collected.
//
// A Buffer has two states. Active: Value returns exactly the constructed
// text. Wiped: every backing byte is zero and Value returns the empty
// string. The transition is one-way and fires at most once.
//
// A Buffer is single-owner. Concurrent use of one instance from multiple
// goroutines is not supported; callers that must share an instance
// serialize access themselves.
type Buffer struct {
	region *region
	length int
	wiped  bool
}

// New copies value into fresh backing storage and returns an active
// Buffer. The empty string allocates nothing and is a valid instance.
// The caller's own copy of value is left untouched; callers holding the
// secret as bytes should prefer NewFromBytes, which scrubs its input.
func New(value string) (*Buffer, error) {
	b, r, err := alloc(len(value))
	if err != nil {
		return nil, err
	}
	if r != nil {
		copy(r.data, value)
	}
	return b, nil
}

// NewFromBytes is New for callers that read the secret as bytes. The
// source slice is zeroed after the copy, so only the Buffer holds the
// secret when it returns.
func NewFromBytes(value []byte) (*Buffer, error) {
	b, r, err := alloc(len(value))
	if err != nil {
		return nil, err
	}
	if r != nil {
		copy(r.data, value)
	}
	memzero.Zero(value)
	return b, nil
}

// alloc builds an active Buffer backed by a fresh region of n bytes and
// attaches the collection-time release.
func alloc(n int) (*Buffer, *region, error) {
	b := &Buffer{length: n}
	if n == 0 {
		return b, nil, nil
	}
	r, err := newRegion(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	b.region = r
	// Safety net: wipe and release the region when the Buffer is
	// collected without an explicit Zeroize. Timing is up to the
	// collector; Zeroize is the deterministic path.
	runtime.AddCleanup(b, func(r *region) { r.release() }, r)
	return b, r, nil
}

// Value returns the held text: exactly the bytes supplied at
// construction while active, the empty string once wiped. Reading after
// a wipe is not an error. The result is an ordinary Go string; the
// caller decides how long that copy lives.
func (b *Buffer) Value() string {
	if b.wiped || b.region == nil {
		return ""
	}
	return string(b.region.data[:b.length])
}

// Len reports the byte length of the held text, 0 once wiped.
func (b *Buffer) Len() int {
	if b.wiped {
		return 0
	}
	return b.length
}

// Wiped reports whether Zeroize has run.
func (b *Buffer) Wiped() bool { return b.wiped }

// Zeroize overwrites every backing byte with zeros and moves the Buffer
// to its terminal state. Idempotent; a second call writes nothing. The
// region itself stays mapped (all-zero) until the Buffer is collected,
// so late Value calls stay memory-safe.
func (b *Buffer) Zeroize() {
	if b.wiped {
		return
	}
	b.wiped = true
	if b.region != nil {
		memzero.Zero(b.region.data)
	}
}
