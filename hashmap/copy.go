package hashmap

import (
	"fmt"
	"iter"

	dsc "github.com/szmathias/dscontainers"
)

// emptyClone creates a map with the same hash/equals/load settings as m,
// the given bucket count and the given ownership policy.
func (m *Map[K, V]) emptyClone(buckets int, owns dsc.Ownership) *Map[K, V] {
	return &Map[K, V]{
		buckets: make([]*node[K, V], buckets),
		maxLoad: m.maxLoad,
		hash:    m.hash,
		equals:  m.equals,
		keyLife: m.keyLife,
		valLife: m.valLife,
		owns:    owns,
	}
}

// Copy returns a shallow copy: every entry is reinserted by reference into
// a fresh map of the same bucket count. Chain order within buckets may
// differ from the source. The copy never owns its payloads, since they
// stay shared with the source.
func (m *Map[K, V]) Copy() *Map[K, V] {
	out := m.emptyClone(len(m.buckets), dsc.OwnNothing)
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			out.Put(n.key, n.value)
		}
	}
	return out
}

// CopyDeep returns a deep copy, duplicating every key and value through
// the configured Lifecycle.Copy hooks. Both hooks are required; without
// them CopyDeep fails with ErrMissingCapability instead of degrading to a
// shallow copy. The operation is all-or-nothing: the first failing hook
// disposes every payload copied so far and no partial map escapes.
// The copy inherits the source's ownership policy.
func (m *Map[K, V]) CopyDeep() (*Map[K, V], error) {
	if !m.keyLife.CanCopy() || !m.valLife.CanCopy() {
		return nil, fmt.Errorf("hashmap deep copy: key and value copy hooks required: %w",
			dsc.ErrMissingCapability)
	}
	out := m.emptyClone(len(m.buckets), m.owns)
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			ck, err := m.keyLife.Copy(n.key)
			if err != nil {
				out.disposeAll()
				return nil, fmt.Errorf("hashmap deep copy of key: %w", err)
			}
			cv, err := m.valLife.Copy(n.value)
			if err != nil {
				m.keyLife.Dispose(ck)
				out.disposeAll()
				return nil, fmt.Errorf("hashmap deep copy of value: %w", err)
			}
			out.Put(ck, cv)
		}
	}
	return out, nil
}

// disposeAll rolls back a partially built copy: every payload is disposed
// through its Free hook regardless of the ownership policy, because the
// copies were produced by this map and have not been handed out.
func (m *Map[K, V]) disposeAll() {
	for i, head := range m.buckets {
		for n := head; n != nil; {
			next := n.next
			m.keyLife.Dispose(n.key)
			m.valLife.Dispose(n.value)
			n.next = nil
			n = next
		}
		m.buckets[i] = nil
	}
	m.size = 0
}

// FromSeq drains a (key, value) sequence into a new map. With deep set,
// every key and value is duplicated through the Copy hooks configured via
// options; missing hooks fail immediately with ErrMissingCapability, before
// anything is drained. A failing hook mid-drain disposes all copies made so
// far and returns the error.
func FromSeq[K, V any](seq iter.Seq2[K, V], hash dsc.HashFunc[K], equals dsc.EqualsFunc[K],
	deep bool, opts ...Option[K, V]) (*Map[K, V], error) {
	//
	if seq == nil {
		return nil, fmt.Errorf("hashmap.FromSeq: sequence is required: %w", dsc.ErrInvalidArgument)
	}
	m, err := New[K, V](hash, equals, opts...)
	if err != nil {
		return nil, err
	}
	if deep && (!m.keyLife.CanCopy() || !m.valLife.CanCopy()) {
		return nil, fmt.Errorf("hashmap.FromSeq: deep drain without copy hooks: %w",
			dsc.ErrMissingCapability)
	}
	for k, v := range seq {
		if !deep {
			m.Put(k, v)
			continue
		}
		ck, err := m.keyLife.Copy(k)
		if err != nil {
			m.disposeAll()
			return nil, fmt.Errorf("hashmap.FromSeq: copy of key: %w", err)
		}
		cv, err := m.valLife.Copy(v)
		if err != nil {
			m.keyLife.Dispose(ck)
			m.disposeAll()
			return nil, fmt.Errorf("hashmap.FromSeq: copy of value: %w", err)
		}
		m.Put(ck, cv)
	}
	return m, nil
}

// FromIterator drains a pair cursor into a new map; see FromSeq. The
// cursor is reset before draining.
func FromIterator[K, V any](it *Iterator[K, V], hash dsc.HashFunc[K], equals dsc.EqualsFunc[K],
	deep bool, opts ...Option[K, V]) (*Map[K, V], error) {
	//
	if it == nil || !it.IsValid() {
		return nil, fmt.Errorf("hashmap.FromIterator: valid iterator is required: %w",
			dsc.ErrInvalidArgument)
	}
	it.Reset()
	return FromSeq(func(yield func(K, V) bool) {
		for it.Next() {
			pair, ok := it.Get()
			if !ok || !yield(pair.First, pair.Second) {
				return
			}
		}
	}, hash, equals, deep, opts...)
}
