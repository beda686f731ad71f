/*
Package hashmap implements a generic chained hash table.

A Map is constructed from a hash function and an equality function over its
key type. Entries live in collision chains hanging off a bucket array; when
the load factor (size divided by bucket count) exceeds the configured
maximum, the bucket array doubles and every node is relinked into its new
chain. Growth is a synchronous O(n) pass on the calling goroutine, amortized
O(1) per insert across a growing sequence — the same amortization argument
as a doubling dynamic array.

Within a bucket, chains are ordered most-recently-inserted-first: inserts
prepend. Clients must not rely on any iteration order.

Iteration

Map.Iterator returns a forward-only cursor which consumes buckets lazily:

	it := m.Iterator()
	for it.Next() {
	    pair, _ := it.Get()
	    …
	}

Map.All, Map.KeysSeq and Map.ValuesSeq provide the same traversal as
range-over-func sequences. Mutating the map while a cursor or sequence is
live — in particular triggering a resize — yields unspecified iteration
results. This is a documented contract of the cursor, not a bug.

Ownership

A Map never assumes ownership of key or value payloads implicitly. The
ownership policy is fixed at construction (WithOwnership): an owning map
disposes payloads through their Lifecycle.Free hooks whenever entries are
destroyed, a non-owning map never does.

Maps are not safe for concurrent use; external synchronization is the
caller's responsibility.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dsc.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("dsc.hashmap")
}
