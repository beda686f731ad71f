/*
Package dll implements a doubly linked list with a bidirectional cursor.

Unlike the hashmap cursor, list cursors do support backward traversal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package dll

import (
	"fmt"
	"iter"

	dsc "github.com/szmathias/dscontainers"
)

// List is a doubly linked list of T. The zero value is an empty, usable
// list.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	if l == nil {
		return 0
	}
	return l.size
}

// PushFront inserts value at the front.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends value at the back.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the front element. It fails with
// ErrNotFound on an empty list.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("dll pop front on empty list: %w", dsc.ErrNotFound)
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// PopBack removes and returns the back element. It fails with ErrNotFound
// on an empty list.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, fmt.Errorf("dll pop back on empty list: %w", dsc.ErrNotFound)
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	n.prev = nil
	l.size--
	return n.value, nil
}

// Front returns the front element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l == nil || l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the back element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l == nil || l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head, l.tail = nil, nil
	l.size = 0
}

// All returns a sequence over the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a sequence over the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// --- Cursor -----------------------------------------------------------------

// Cursor is a bidirectional cursor over a list. A fresh (or Reset) cursor
// has no current element; Next advances to the first, Prev to the last.
type Cursor[T any] struct {
	l    *List[T]
	node *node[T]
	// off marks which end the cursor fell off, if any
	off int // -1 before front, +1 behind back, 0 attached
}

// Cursor returns a cursor positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{l: l}
	c.Reset()
	return c
}

// Reset repositions the cursor before the first element.
func (c *Cursor[T]) Reset() {
	c.node = nil
	c.off = -1
}

// Next advances toward the back and reports whether an element is current.
func (c *Cursor[T]) Next() bool {
	switch {
	case c.node != nil:
		c.node = c.node.next
	case c.off < 0:
		c.node = c.l.head
	default: // fell off the back, stay there
		return false
	}
	if c.node == nil {
		c.off = 1
		return false
	}
	c.off = 0
	return true
}

// Prev moves toward the front and reports whether an element is current.
func (c *Cursor[T]) Prev() bool {
	switch {
	case c.node != nil:
		c.node = c.node.prev
	case c.off > 0:
		c.node = c.l.tail
	default: // before the front, stay there
		return false
	}
	if c.node == nil {
		c.off = -1
		return false
	}
	c.off = 0
	return true
}

// HasNext reports whether an element exists toward the back.
func (c *Cursor[T]) HasNext() bool {
	if c.node != nil {
		return c.node.next != nil
	}
	return c.off < 0 && c.l.head != nil
}

// HasPrev reports whether an element exists toward the front.
func (c *Cursor[T]) HasPrev() bool {
	if c.node != nil {
		return c.node.prev != nil
	}
	return c.off > 0 && c.l.tail != nil
}

// Get returns the current element without moving.
func (c *Cursor[T]) Get() (T, bool) {
	if c.node == nil {
		var zero T
		return zero, false
	}
	return c.node.value, true
}

// IsValid reports whether the cursor is attached to a list.
func (c *Cursor[T]) IsValid() bool {
	return c != nil && c.l != nil
}
