// Package secure implements the zeroizing container for sensitive text.
//
// Contents
//
//   - Buffer, a single-owner copy of a sensitive string, held outside the
//     Go heap where the platform allows (mmap + mlock, excluded from core
//     dumps)
//   - New and NewFromBytes constructors
//   - Zeroize, the explicit wipe, plus a collection-time wipe safety net
//
// # Notes
//
// A wiped Buffer stays readable and returns the empty string; the wiped
// state is terminal. Collection-time wiping depends on garbage collector
// timing and is a safety net only; callers needing deterministic erasure
// call Zeroize themselves. Nothing here protects the copies a caller
// makes of the returned value, nor against swapped pages on platforms
// without mlock.
package secure
