package hashmap

import (
	"iter"

	dsc "github.com/szmathias/dscontainers"
)

// Iterator is a forward-only cursor over a map's entries. It consumes
// buckets lazily: Next walks the current collision chain and scans forward
// through subsequent buckets when the chain is exhausted.
//
// A fresh (or Reset) cursor has no current entry; the first Next advances
// to the first entry. Typical traversal:
//
//	it := m.Iterator()
//	for it.Next() {
//	    pair, _ := it.Get()
//	    …
//	}
//
// The cursor holds the bucket index and node pointer directly. A map
// mutation — in particular a resize, which swaps the bucket array and
// relinks every node — invalidates the cursor's position semantics;
// iteration results after such a mutation are unspecified.
type Iterator[K, V any] struct {
	m      *Map[K, V]
	bucket int
	node   *node[K, V]
}

// Iterator returns a cursor positioned before the first entry.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{m: m}
	it.Reset()
	return it
}

// Reset repositions the cursor before the first entry.
func (it *Iterator[K, V]) Reset() {
	it.bucket = -1
	it.node = nil
}

// Next advances to the next entry and reports whether one exists.
func (it *Iterator[K, V]) Next() bool {
	if it.m == nil {
		return false
	}
	if it.node != nil {
		if it.node.next != nil {
			it.node = it.node.next
			return true
		}
		it.node = nil
	}
	for b := it.bucket + 1; b < len(it.m.buckets); b++ {
		if head := it.m.buckets[b]; head != nil {
			it.bucket = b
			it.node = head
			return true
		}
	}
	it.bucket = len(it.m.buckets)
	return false
}

// HasNext reports whether another entry exists after the current position,
// without advancing.
func (it *Iterator[K, V]) HasNext() bool {
	if it.m == nil {
		return false
	}
	if it.node != nil && it.node.next != nil {
		return true
	}
	for b := it.bucket + 1; b < len(it.m.buckets); b++ {
		if it.m.buckets[b] != nil {
			return true
		}
	}
	return false
}

// Get materializes the current entry as a (key, value) pair without
// advancing. It returns false while the cursor has no current entry, i.e.
// before the first Next and after Next returned false.
func (it *Iterator[K, V]) Get() (dsc.Pair[K, V], bool) {
	if it.node == nil {
		return dsc.Pair[K, V]{}, false
	}
	return dsc.MakePair(it.node.key, it.node.value), true
}

// HasPrev is permanently false: the cursor is forward-only.
func (it *Iterator[K, V]) HasPrev() bool {
	return false
}

// Prev always fails: the cursor is forward-only.
func (it *Iterator[K, V]) Prev() bool {
	return false
}

// IsValid reports whether the cursor is attached to a map.
func (it *Iterator[K, V]) IsValid() bool {
	return it != nil && it.m != nil
}

// All returns a sequence over all (key, value) entries. The contract is
// the same as the cursor's: mutating the map mid-iteration yields
// unspecified results.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, head := range m.buckets {
			for n := head; n != nil; n = n.next {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}

// KeysSeq returns a sequence over all keys.
func (m *Map[K, V]) KeysSeq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// ValuesSeq returns a sequence over all values.
func (m *Map[K, V]) ValuesSeq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
