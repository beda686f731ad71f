package hashset

import (
	"github.com/szmathias/dscontainers/hashmap"
)

// Iterator is a forward-only cursor over a set's elements. It wraps the
// underlying table's pair cursor and yields only the key half, discarding
// the sentinel value. The table cursor's mutation contract applies
// unchanged.
type Iterator[K any] struct {
	it *hashmap.Iterator[K, sentinel]
}

// Iterator returns a cursor positioned before the first element.
func (s *Set[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{it: s.m.Iterator()}
}

// Reset repositions the cursor before the first element.
func (it *Iterator[K]) Reset() {
	it.it.Reset()
}

// Next advances to the next element and reports whether one exists.
func (it *Iterator[K]) Next() bool {
	return it.it.Next()
}

// HasNext reports whether another element exists, without advancing.
func (it *Iterator[K]) HasNext() bool {
	return it.it.HasNext()
}

// Get returns the current element without advancing.
func (it *Iterator[K]) Get() (K, bool) {
	pair, ok := it.it.Get()
	return pair.First, ok
}

// HasPrev is permanently false: the cursor is forward-only.
func (it *Iterator[K]) HasPrev() bool {
	return false
}

// Prev always fails: the cursor is forward-only.
func (it *Iterator[K]) Prev() bool {
	return false
}

// IsValid reports whether the cursor is attached to a set.
func (it *Iterator[K]) IsValid() bool {
	return it != nil && it.it.IsValid()
}
