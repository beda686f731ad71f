/*
Package arraylist implements a growable slice-backed list.

The backing array doubles when full, so appends are amortized O(1) — the
same growth argument the hashmap's bucket array relies on. Element lookup
by value requires an EqualsFunc; ordering operations take a
gods utils.Comparator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package arraylist

import (
	"fmt"
	"iter"
	"sort"

	"github.com/emirpasic/gods/utils"

	dsc "github.com/szmathias/dscontainers"
)

// DefaultCapacity is the initial backing array length for lists created
// without WithCapacity.
const DefaultCapacity = 8

// List is a growable list of T. Construct with New.
type List[T any] struct {
	items  []T
	equals dsc.EqualsFunc[T]
}

// Option configures a List during construction.
type Option[T any] func(*List[T])

// WithCapacity pre-sizes the backing array.
func WithCapacity[T any](n int) Option[T] {
	return func(l *List[T]) {
		if n > 0 {
			l.items = make([]T, 0, n)
		}
	}
}

// WithEquals installs the equality function used by IndexOf and Contains.
func WithEquals[T any](equals dsc.EqualsFunc[T]) Option[T] {
	return func(l *List[T]) {
		l.equals = equals
	}
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	if l.items == nil {
		l.items = make([]T, 0, DefaultCapacity)
	}
	return l
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Add appends values to the end of the list.
func (l *List[T]) Add(values ...T) {
	l.items = append(l.items, values...)
}

// Insert places value at index, shifting later elements right. The index
// may equal Size, which appends. Out-of-range indices fail with
// ErrInvalidArgument.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("arraylist insert at %d of %d: %w", index, len(l.items), dsc.ErrInvalidArgument)
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = value
	return nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, bool) {
	if l == nil || index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

// Set overwrites the element at index.
func (l *List[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("arraylist set at %d of %d: %w", index, len(l.items), dsc.ErrInvalidArgument)
	}
	l.items[index] = value
	return nil
}

// RemoveAt deletes and returns the element at index, shifting later
// elements left.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("arraylist remove at %d of %d: %w", index, len(l.items), dsc.ErrNotFound)
	}
	v := l.items[index]
	copy(l.items[index:], l.items[index+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v, nil
}

// IndexOf returns the index of the first element equal to value, or -1.
// Without an EqualsFunc it always returns -1.
func (l *List[T]) IndexOf(value T) int {
	if l == nil || l.equals == nil {
		return -1
	}
	for i, v := range l.items {
		if l.equals(v, value) {
			return i
		}
	}
	return -1
}

// Contains reports whether value is in the list; see IndexOf.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// Sort orders the list in place by cmp.
func (l *List[T]) Sort(cmp utils.Comparator) {
	sort.SliceStable(l.items, func(i, j int) bool {
		return cmp(l.items[i], l.items[j]) < 0
	})
}

// Clear removes all elements, keeping the backing array.
func (l *List[T]) Clear() {
	var zero T
	for i := range l.items {
		l.items[i] = zero
	}
	l.items = l.items[:0]
}

// Values returns a fresh slice holding every element in order.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// All returns a sequence over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	return fmt.Sprintf("List(size=%d)", l.Size())
}
