package hashset

import (
	"fmt"
	"iter"

	dsc "github.com/szmathias/dscontainers"
	"github.com/szmathias/dscontainers/hashmap"
)

// sentinel is the value stored for every member of a set.
type sentinel = struct{}

// Set is a hash set over K, built on a hashmap.Map[K, sentinel].
// Construct with New; the zero value is not usable.
type Set[K any] struct {
	m      *hashmap.Map[K, sentinel]
	hash   dsc.HashFunc[K]
	equals dsc.EqualsFunc[K]
}

// Option configures a Set during construction.
type Option[K any] func(*settings[K])

type settings[K any] struct {
	capacity int
	maxLoad  float64
	keys     dsc.Lifecycle[K]
	ownKeys  bool
}

// WithCapacity sets the initial bucket count of the underlying table.
func WithCapacity[K any](n int) Option[K] {
	return func(s *settings[K]) {
		s.capacity = n
	}
}

// WithMaxLoadFactor sets the growth threshold of the underlying table.
func WithMaxLoadFactor[K any](f float64) Option[K] {
	return func(s *settings[K]) {
		s.maxLoad = f
	}
}

// WithKeyLifecycle installs the free/copy hooks for elements.
func WithKeyLifecycle[K any](lc dsc.Lifecycle[K]) Option[K] {
	return func(s *settings[K]) {
		s.keys = lc
	}
}

// WithOwnedKeys makes the set own its elements: destructive operations
// dispose them through the key Lifecycle.Free hook.
func WithOwnedKeys[K any]() Option[K] {
	return func(s *settings[K]) {
		s.ownKeys = true
	}
}

// New creates an empty set for the given hash and equality functions.
// It fails with ErrInvalidArgument if either function is nil.
func New[K any](hash dsc.HashFunc[K], equals dsc.EqualsFunc[K], opts ...Option[K]) (*Set[K], error) {
	var s settings[K]
	for _, opt := range opts {
		opt(&s)
	}
	mopts := []hashmap.Option[K, sentinel]{
		hashmap.WithKeyLifecycle[K, sentinel](s.keys),
		// the sentinel carries nothing; its copy is the identity, which
		// keeps deep copies possible whenever the element hook is present
		hashmap.WithValueLifecycle[K, sentinel](dsc.Lifecycle[sentinel]{
			Copy: func(v sentinel) (sentinel, error) { return v, nil },
		}),
	}
	if s.capacity > 0 {
		mopts = append(mopts, hashmap.WithCapacity[K, sentinel](s.capacity))
	}
	if s.maxLoad > 0 {
		mopts = append(mopts, hashmap.WithMaxLoadFactor[K, sentinel](s.maxLoad))
	}
	if s.ownKeys {
		mopts = append(mopts, hashmap.WithOwnership[K, sentinel](dsc.OwnKeys))
	}
	m, err := hashmap.New[K, sentinel](hash, equals, mopts...)
	if err != nil {
		return nil, fmt.Errorf("hashset.New: %w", err)
	}
	return &Set[K]{m: m, hash: hash, equals: equals}, nil
}

// FromSlice creates a set holding the given elements.
func FromSlice[K any](hash dsc.HashFunc[K], equals dsc.EqualsFunc[K], elems []K, opts ...Option[K]) (*Set[K], error) {
	s, err := New[K](hash, equals, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		s.Add(e)
	}
	return s, nil
}

// FromSeq creates a set by draining a sequence of elements.
func FromSeq[K any](hash dsc.HashFunc[K], equals dsc.EqualsFunc[K], seq iter.Seq[K], opts ...Option[K]) (*Set[K], error) {
	if seq == nil {
		return nil, fmt.Errorf("hashset.FromSeq: sequence is required: %w", dsc.ErrInvalidArgument)
	}
	s, err := New[K](hash, equals, opts...)
	if err != nil {
		return nil, err
	}
	for e := range seq {
		s.Add(e)
	}
	return s, nil
}

// Add inserts elem. Re-adding a present element is a no-op; Add gives no
// signal either way. Use AddCheck for a novelty signal.
func (s *Set[K]) Add(elem K) {
	s.m.Put(elem, sentinel{})
}

// AddCheck inserts elem and reports whether it was newly added.
func (s *Set[K]) AddCheck(elem K) bool {
	_, existed := s.m.PutReplace(elem, sentinel{})
	return !existed
}

// Contains reports membership.
func (s *Set[K]) Contains(elem K) bool {
	return s != nil && s.m.Contains(elem)
}

// Remove deletes elem, honoring the ownership policy. It fails with
// ErrNotFound if elem is absent.
func (s *Set[K]) Remove(elem K) error {
	return s.m.Remove(elem)
}

// RemoveGet deletes elem and returns the element instance the set stored,
// undisposed. The stored instance may differ from the lookup argument.
func (s *Set[K]) RemoveGet(elem K) (K, error) {
	stored, _, err := s.m.RemoveEntry(elem)
	return stored, err
}

// Size returns the number of elements.
func (s *Set[K]) Size() int {
	if s == nil {
		return 0
	}
	return s.m.Size()
}

// LoadFactor returns the underlying table's load factor.
func (s *Set[K]) LoadFactor() float64 {
	return s.m.LoadFactor()
}

// Clear removes all elements, honoring the ownership policy.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Keys returns a fresh slice holding every element.
func (s *Set[K]) Keys() []K {
	return s.m.Keys()
}

// Copy returns a shallow copy sharing its elements with the source.
// The copy never owns elements.
func (s *Set[K]) Copy() *Set[K] {
	return &Set[K]{m: s.m.Copy(), hash: s.hash, equals: s.equals}
}

// CopyDeep returns a deep copy, duplicating every element through the
// configured Lifecycle.Copy hook. Without the hook it fails with
// ErrMissingCapability.
func (s *Set[K]) CopyDeep() (*Set[K], error) {
	m, err := s.m.CopyDeep()
	if err != nil {
		return nil, err
	}
	return &Set[K]{m: m, hash: s.hash, equals: s.equals}, nil
}

// ForEach applies action to every element. The callback carries whatever
// context it needs as a closure; the set keeps no callback state.
func (s *Set[K]) ForEach(action func(K)) {
	if s == nil || action == nil {
		return
	}
	for k := range s.m.All() {
		action(k)
	}
}

// All returns a sequence over all elements.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *Set[K]) String() string {
	if s == nil {
		return "Set(nil)"
	}
	return fmt.Sprintf("Set(size=%d)", s.Size())
}
