/*
Package hashset implements a hash set with set algebra.

A Set delegates every operation to an internal hashmap.Map whose value type
is the empty struct, the per-entry sentinel: never compared, never handed
to callers. Size, load factor and resize behavior are those of the
underlying table.

Set algebra (Union, Intersection, Difference, IsSubset) is expressed
entirely as table iteration plus Add, so its cost is linear in the iterated
operand. Intersection iterates the smaller of its two operands.

Sets are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package hashset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dsc.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("dsc.hashset")
}
