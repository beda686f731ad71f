package dscontainers

import "fmt"

// --- Hashing and equality ---------------------------------------------------

// HashFunc computes a hash for a key. Implementations must be deterministic:
// the same key always yields the same hash.
type HashFunc[K any] func(K) uint64

// EqualsFunc reports whether two keys are to be considered equal.
//
// Containers assume, and never check, that equals(a,b) == true implies
// hash(a) == hash(b). Violating this silently corrupts lookups.
type EqualsFunc[K any] func(K, K) bool

// Equals is an EqualsFunc for comparable types, consistent with ==.
func Equals[T comparable](a, b T) bool {
	return a == b
}

// --- Payload lifecycle ------------------------------------------------------

// Lifecycle bundles the optional payload-management hooks of a container.
// Both hooks may be nil.
//
// Free releases resources held by a payload. Containers invoke it only when
// their ownership policy says they own the payload (see Ownership), or when
// rolling back a partially built deep copy.
//
// Copy produces a deep duplicate of a payload. Operations that require
// duplication (deep copies, deep draining of sequences) fail with
// ErrMissingCapability when Copy is absent; they never degrade to a
// shallow copy.
type Lifecycle[T any] struct {
	Free func(T)
	Copy func(T) (T, error)
}

// CanCopy reports whether a Copy hook is present.
func (lc Lifecycle[T]) CanCopy() bool {
	return lc.Copy != nil
}

// Dispose invokes the Free hook, if any.
func (lc Lifecycle[T]) Dispose(v T) {
	if lc.Free != nil {
		lc.Free(v)
	}
}

// Clone invokes the Copy hook. Without a Copy hook it fails with
// ErrMissingCapability.
func (lc Lifecycle[T]) Clone(v T) (T, error) {
	if lc.Copy == nil {
		var zero T
		return zero, fmt.Errorf("lifecycle without copy hook: %w", ErrMissingCapability)
	}
	return lc.Copy(v)
}

// --- Ownership --------------------------------------------------------------

// Ownership is a container's static policy for freeing stored payloads.
// It is decided once, at construction time. A container owning its keys
// (or values) disposes them via the respective Lifecycle.Free hook whenever
// an entry is destroyed; a container owning nothing never frees payloads.
type Ownership uint8

// Ownership policies.
const (
	OwnNothing Ownership = 0
	OwnKeys    Ownership = 1 << iota
	OwnValues
	OwnAll = OwnKeys | OwnValues
)

// Keys reports whether the policy includes key ownership.
func (o Ownership) Keys() bool {
	return o&OwnKeys != 0
}

// Values reports whether the policy includes value ownership.
func (o Ownership) Values() bool {
	return o&OwnValues != 0
}
