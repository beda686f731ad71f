/*
Package dscontainers is a generic collections library.

The core of the module is a chained hash table engine and a set layer
built on top of it. Package structure is as follows:

■ hashmap: Package hashmap implements the hash table engine: key→value
storage with collision chains, load-factor driven resizing and a
forward-only cross-bucket iterator.

■ hashset: Package hashset implements set semantics and set algebra
(union, intersection, difference, subset) on top of hashmap.

■ arraylist, stack, queue, dll, bst: supplemental container types, each
with a single, simpler invariant.

The base package contains contracts which are used throughout all the
other packages: hash and equality function types, the payload lifecycle
contract (optional free/copy hooks plus a static ownership policy), the
error taxonomy, and a small set of ready-made hash functions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package dscontainers
