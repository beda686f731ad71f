package hashmap

import (
	"fmt"

	dsc "github.com/szmathias/dscontainers"
)

// Defaults for maps constructed without the corresponding option.
const (
	DefaultCapacity      = 16
	DefaultMaxLoadFactor = 0.75
)

// Map is a chained hash table from K to V.
// Construct with New; the zero value is not usable.
type Map[K, V any] struct {
	buckets []*node[K, V]
	size    int
	maxLoad float64
	hash    dsc.HashFunc[K]
	equals  dsc.EqualsFunc[K]
	keyLife dsc.Lifecycle[K]
	valLife dsc.Lifecycle[V]
	owns    dsc.Ownership
}

// node is a single entry within a collision chain. next is an exclusive
// link to the sibling in the same bucket.
type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// Option configures a Map during construction.
type Option[K, V any] func(*Map[K, V])

// WithCapacity sets the initial bucket count. Zero or negative values fall
// back to DefaultCapacity.
func WithCapacity[K, V any](n int) Option[K, V] {
	return func(m *Map[K, V]) {
		if n > 0 {
			m.buckets = make([]*node[K, V], n)
		}
	}
}

// WithMaxLoadFactor sets the load factor threshold above which the bucket
// array doubles. Non-positive values are ignored.
func WithMaxLoadFactor[K, V any](f float64) Option[K, V] {
	return func(m *Map[K, V]) {
		if f > 0 {
			m.maxLoad = f
		}
	}
}

// WithKeyLifecycle installs the free/copy hooks for keys.
func WithKeyLifecycle[K, V any](lc dsc.Lifecycle[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.keyLife = lc
	}
}

// WithValueLifecycle installs the free/copy hooks for values.
func WithValueLifecycle[K, V any](lc dsc.Lifecycle[V]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.valLife = lc
	}
}

// WithOwnership fixes the map's ownership policy. The default is
// OwnNothing: payloads are never freed by the map.
func WithOwnership[K, V any](o dsc.Ownership) Option[K, V] {
	return func(m *Map[K, V]) {
		m.owns = o
	}
}

// New creates an empty map for the given hash and equality functions.
// It fails with ErrInvalidArgument if either function is nil.
func New[K, V any](hash dsc.HashFunc[K], equals dsc.EqualsFunc[K], opts ...Option[K, V]) (*Map[K, V], error) {
	if hash == nil || equals == nil {
		return nil, fmt.Errorf("hashmap.New: hash and equals functions are required: %w",
			dsc.ErrInvalidArgument)
	}
	m := &Map[K, V]{
		maxLoad: DefaultMaxLoadFactor,
		hash:    hash,
		equals:  equals,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.buckets == nil {
		m.buckets = make([]*node[K, V], DefaultCapacity)
	}
	return m, nil
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// BucketCount returns the current length of the bucket array.
func (m *Map[K, V]) BucketCount() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// LoadFactor returns size divided by bucket count.
func (m *Map[K, V]) LoadFactor() float64 {
	if m == nil || len(m.buckets) == 0 {
		return 0
	}
	return float64(m.size) / float64(len(m.buckets))
}

// MaxLoadFactor returns the growth threshold.
func (m *Map[K, V]) MaxLoadFactor() float64 {
	return m.maxLoad
}

func (m *Map[K, V]) bucketIndex(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

func (m *Map[K, V]) find(key K) *node[K, V] {
	for n := m.buckets[m.bucketIndex(key)]; n != nil; n = n.next {
		if m.equals(n.key, key) {
			return n
		}
	}
	return nil
}

// Put stores value under key. An existing entry has its value overwritten
// in place — the old value is disposed iff the map owns its values — and
// Put gives no signal whether the key was new; use PutReplace for that.
// A fresh entry is prepended to its collision chain. Put grows the bucket
// array when the insert pushed the load factor above the maximum.
func (m *Map[K, V]) Put(key K, value V) {
	if n := m.find(key); n != nil {
		if m.owns.Values() {
			m.valLife.Dispose(n.value)
		}
		n.value = value
		return
	}
	m.insert(key, value)
}

// PutReplace stores value under key and returns the previously stored
// value, if any. A replaced value is handed to the caller and never
// disposed by the map. The second return is the only O(1) way to learn
// whether the key was already present.
func (m *Map[K, V]) PutReplace(key K, value V) (old V, existed bool) {
	if n := m.find(key); n != nil {
		old = n.value
		n.value = value
		return old, true
	}
	m.insert(key, value)
	return old, false
}

func (m *Map[K, V]) insert(key K, value V) {
	idx := m.bucketIndex(key)
	m.buckets[idx] = &node[K, V]{key: key, value: value, next: m.buckets[idx]}
	m.size++
	if m.LoadFactor() > m.maxLoad {
		m.grow()
	}
}

// grow doubles the bucket array and relinks every node into its new chain.
// Nodes are reused, not reallocated. Key uniqueness is not re-checked here;
// it is enforced at insert time only.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]*node[K, V], len(old)*2)
	for _, head := range old {
		for n := head; n != nil; {
			next := n.next
			idx := m.bucketIndex(n.key)
			n.next = m.buckets[idx]
			m.buckets[idx] = n
			n = next
		}
	}
	tracer().Debugf("hashmap grown from %d to %d buckets (%d entries)",
		len(old), len(m.buckets), m.size)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	if n := m.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m != nil && m.find(key) != nil
}

// unlink removes the node for key from its chain and returns it, or nil.
// Size is decremented; payloads are untouched.
func (m *Map[K, V]) unlink(key K) *node[K, V] {
	idx := m.bucketIndex(key)
	var prev *node[K, V]
	for n := m.buckets[idx]; n != nil; n = n.next {
		if m.equals(n.key, key) {
			if prev == nil {
				m.buckets[idx] = n.next
			} else {
				prev.next = n.next
			}
			n.next = nil
			m.size--
			return n
		}
		prev = n
	}
	return nil
}

// Remove deletes the entry for key, disposing key and value payloads
// according to the ownership policy. It fails with ErrNotFound if the key
// is absent; the map is unchanged in that case.
func (m *Map[K, V]) Remove(key K) error {
	n := m.unlink(key)
	if n == nil {
		return fmt.Errorf("hashmap remove: %w", dsc.ErrNotFound)
	}
	if m.owns.Keys() {
		m.keyLife.Dispose(n.key)
	}
	if m.owns.Values() {
		m.valLife.Dispose(n.value)
	}
	return nil
}

// RemoveGet deletes the entry for key and returns the stored value. The
// value is handed to the caller undisposed; the stored key still honors
// the ownership policy.
func (m *Map[K, V]) RemoveGet(key K) (V, error) {
	n := m.unlink(key)
	if n == nil {
		var zero V
		return zero, fmt.Errorf("hashmap remove: %w", dsc.ErrNotFound)
	}
	if m.owns.Keys() {
		m.keyLife.Dispose(n.key)
	}
	return n.value, nil
}

// RemoveEntry deletes the entry for key and returns the stored key and
// value, both undisposed. Note that the returned key is the key the map
// holds, which may be a different instance than the lookup argument.
func (m *Map[K, V]) RemoveEntry(key K) (K, V, error) {
	n := m.unlink(key)
	if n == nil {
		var zk K
		var zv V
		return zk, zv, fmt.Errorf("hashmap remove: %w", dsc.ErrNotFound)
	}
	return n.key, n.value, nil
}

// Clear removes all entries, disposing payloads according to the ownership
// policy. The bucket array keeps its current length.
func (m *Map[K, V]) Clear() {
	for i, head := range m.buckets {
		for n := head; n != nil; {
			next := n.next
			if m.owns.Keys() {
				m.keyLife.Dispose(n.key)
			}
			if m.owns.Values() {
				m.valLife.Dispose(n.value)
			}
			n.next = nil
			n = next
		}
		m.buckets[i] = nil
	}
	m.size = 0
}

// Keys returns a fresh slice holding every key. The slice is the caller's;
// the keys remain shared with the map.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	if m == nil {
		return keys
	}
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			keys = append(keys, n.key)
		}
	}
	return keys
}

// Values returns a fresh slice holding every value.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Size())
	if m == nil {
		return values
	}
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			values = append(values, n.value)
		}
	}
	return values
}

func (m *Map[K, V]) String() string {
	if m == nil {
		return "Map(nil)"
	}
	return fmt.Sprintf("Map(size=%d, buckets=%d)", m.size, len(m.buckets))
}
