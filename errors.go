package dscontainers

import "errors"

// Error taxonomy shared by all container packages. Failure sites wrap these
// with fmt.Errorf and %w, so callers test with errors.Is.
var (
	// ErrInvalidArgument flags a nil hash function, equality function or
	// container at an API boundary. It is raised before any mutation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound flags an absent key on remove operations. Lookups use the
	// (value, ok) idiom instead.
	ErrNotFound = errors.New("entry not found")

	// ErrMissingCapability flags a requested deep copy for which the
	// required Lifecycle.Copy hook is not configured. Operations fail fast
	// with this error rather than fall back to a shallow copy.
	ErrMissingCapability = errors.New("missing capability")
)
