/*
Package queue implements a slice-backed FIFO queue.

Dequeue advances a head index instead of shifting elements; the backing
array is compacted once the dead prefix dominates it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package queue

import (
	"fmt"

	dsc "github.com/szmathias/dscontainers"
)

// Queue is a FIFO queue of T. The zero value is an empty, usable queue.
type Queue[T any] struct {
	items []T
	head  int
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	q.items = append(q.items, value)
}

// Dequeue removes and returns the front element. It fails with ErrNotFound
// on an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head >= len(q.items) {
		var zero T
		return zero, fmt.Errorf("queue dequeue on empty queue: %w", dsc.ErrNotFound)
	}
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head > len(q.items)/2 && q.head > 16 {
		q.compact()
	}
	return v, nil
}

func (q *Queue[T]) compact() {
	n := copy(q.items, q.items[q.head:])
	var zero T
	for i := n; i < len(q.items); i++ {
		q.items[i] = zero
	}
	q.items = q.items[:n]
	q.head = 0
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Size returns the number of elements.
func (q *Queue[T]) Size() int {
	if q == nil {
		return 0
	}
	return len(q.items) - q.head
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.items = q.items[:0]
	q.head = 0
}
