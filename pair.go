package dscontainers

import "fmt"

// Pair is a general purpose 2-tuple. The hashmap iterator materializes its
// current entry as a Pair of (key, value).
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair creates a pair from its two halves.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
