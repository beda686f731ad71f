package dscontainers

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/cnf/structhash"
)

// Ready-made hash functions for common key types. All of them are
// deterministic within and across process runs.

// StringHash is a HashFunc for string keys (FNV-1a).
func StringHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// BytesHash is a HashFunc for byte-slice keys (FNV-1a).
func BytesHash(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// IntHash is a HashFunc for int keys.
func IntHash(i int) uint64 {
	return Uint64Hash(uint64(i))
}

// Uint64Hash is a HashFunc for uint64 keys (splitmix64 finalizer).
func Uint64Hash(u uint64) uint64 {
	u ^= u >> 30
	u *= 0xbf58476d1ce4e5b9
	u ^= u >> 27
	u *= 0x94d049bb133111eb
	u ^= u >> 31
	return u
}

// Float64Hash is a HashFunc for float64 keys. Negative zero is
// normalized first: -0.0 == +0.0, so both must hash alike.
func Float64Hash(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return Uint64Hash(math.Float64bits(f))
}

// StructHash is a HashFunc for arbitrary struct keys, including types that
// are not comparable. It hashes the exported fields of the key via
// structhash. Use it together with a field-wise EqualsFunc.
func StructHash[T any](v T) uint64 {
	sum := structhash.Sha1(v, 1)
	return binary.BigEndian.Uint64(sum[:8])
}
