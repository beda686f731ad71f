package hashset

import (
	"fmt"

	dsc "github.com/szmathias/dscontainers"
)

// Set algebra. All operations read their operands through table iteration
// and write through Add, never touching bucket internals. Result sets are
// fresh, share their elements with the operands, and therefore never own
// them. Operands are never mutated.

// resultSet sizes a fresh result for the expected element count.
func (s *Set[K]) resultSet(expected int) *Set[K] {
	opts := []Option[K]{}
	if expected > 0 {
		opts = append(opts, WithCapacity[K](expected))
	}
	out, _ := New[K](s.hash, s.equals, opts...) // hash and equals are known non-nil
	return out
}

// Union returns a ∪ b. Duplicates are absorbed by set semantics.
func Union[K any](a, b *Set[K]) (*Set[K], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("hashset union: both operands are required: %w", dsc.ErrInvalidArgument)
	}
	out := a.resultSet(a.Size() + b.Size())
	for k := range a.All() {
		out.Add(k)
	}
	for k := range b.All() {
		out.Add(k)
	}
	tracer().Debugf("union of %d and %d elements has %d", a.Size(), b.Size(), out.Size())
	return out, nil
}

// Intersection returns a ∩ b. It iterates the smaller operand and probes
// the other.
func Intersection[K any](a, b *Set[K]) (*Set[K], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("hashset intersection: both operands are required: %w", dsc.ErrInvalidArgument)
	}
	small, large := a, b
	if b.Size() < a.Size() {
		small, large = b, a
	}
	out := a.resultSet(small.Size())
	for k := range small.All() {
		if large.Contains(k) {
			out.Add(k)
		}
	}
	return out, nil
}

// Difference returns a ∖ b: the elements of a absent from b.
func Difference[K any](a, b *Set[K]) (*Set[K], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("hashset difference: both operands are required: %w", dsc.ErrInvalidArgument)
	}
	out := a.resultSet(a.Size())
	for k := range a.All() {
		if !b.Contains(k) {
			out.Add(k)
		}
	}
	return out, nil
}

// IsSubset reports whether every element of sub is in sup. An empty (or
// nil) sub is vacuously a subset of anything; the check short-circuits on
// the first miss.
func IsSubset[K any](sub, sup *Set[K]) bool {
	if sub.Size() == 0 {
		return true
	}
	if sup.Size() < sub.Size() {
		return false
	}
	for k := range sub.All() {
		if !sup.Contains(k) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold exactly the same elements, as judged
// by a's equality function.
func Equal[K any](a, b *Set[K]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return IsSubset(a, b)
}
