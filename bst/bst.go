/*
Package bst implements an unbalanced binary search tree.

The tree is ordered by a gods utils.Comparator. No balancing is performed;
worst-case depth is linear in the insertion order.

Insert reports duplicates distinctly. This deliberately differs from
hashmap.Put, which treats re-insertion of an existing key as a silent
value update.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/
package bst

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/utils"

	dsc "github.com/szmathias/dscontainers"
)

// Tree is a binary search tree of T. Construct with New.
type Tree[T any] struct {
	root *node[T]
	size int
	cmp  utils.Comparator
}

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// New creates an empty tree ordered by cmp. It fails with
// ErrInvalidArgument if cmp is nil.
func New[T any](cmp utils.Comparator) (*Tree[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("bst.New: comparator is required: %w", dsc.ErrInvalidArgument)
	}
	return &Tree[T]{cmp: cmp}, nil
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert adds value and reports whether it was added. A duplicate (an
// element comparing equal to a present one) leaves the tree unchanged and
// returns false.
func (t *Tree[T]) Insert(value T) bool {
	if t.root == nil {
		t.root = &node[T]{value: value}
		t.size++
		return true
	}
	n := t.root
	for {
		c := t.cmp(value, n.value)
		switch {
		case c == 0:
			return false
		case c < 0:
			if n.left == nil {
				n.left = &node[T]{value: value}
				t.size++
				return true
			}
			n = n.left
		default:
			if n.right == nil {
				n.right = &node[T]{value: value}
				t.size++
				return true
			}
			n = n.right
		}
	}
}

// Contains reports whether an element equal to value is present.
func (t *Tree[T]) Contains(value T) bool {
	if t == nil {
		return false
	}
	n := t.root
	for n != nil {
		c := t.cmp(value, n.value)
		if c == 0 {
			return true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Remove deletes the element equal to value. It fails with ErrNotFound if
// no such element exists.
func (t *Tree[T]) Remove(value T) error {
	var parent *node[T]
	n := t.root
	for n != nil {
		c := t.cmp(value, n.value)
		if c == 0 {
			break
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return fmt.Errorf("bst remove: %w", dsc.ErrNotFound)
	}
	if n.left != nil && n.right != nil {
		// two children: replace with the in-order successor
		sparent, succ := n, n.right
		for succ.left != nil {
			sparent, succ = succ, succ.left
		}
		n.value = succ.value
		parent, n = sparent, succ
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
	n.left, n.right = nil, nil
	t.size--
	return nil
}

// Min returns the smallest element.
func (t *Tree[T]) Min() (T, bool) {
	if t == nil || t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest element.
func (t *Tree[T]) Max() (T, bool) {
	if t == nil || t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// InOrder returns a sequence over the elements in ascending order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		// iterative in-order walk with an explicit stack
		stack := make([]*node[T], 0, 16)
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Clear removes all elements.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}
