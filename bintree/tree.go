package bintree

import "cmp"

// Tree is a persistent binary search tree. The zero value is the empty
// tree; Tree values are cheap to copy and share structure.
type Tree[T cmp.Ordered] struct {
	root *node[T]
}

type node[T cmp.Ordered] struct {
	item        T
	left, right *node[T]
}

// New returns an empty tree. Equivalent to the zero value.
func New[T cmp.Ordered]() Tree[T] {
	return Tree[T]{}
}

// IsEmpty reports whether the tree has no elements. Complexity: O(1).
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of elements. Complexity: O(n).
func (t Tree[T]) Len() int {
	return count(t.root)
}

func count[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

// Push returns a new tree containing item. Strictly greater elements go
// right; equal and smaller go left. The receiver is unchanged.
// Complexity: O(h) where h is the tree height.
func (t Tree[T]) Push(item T) Tree[T] {
	return Tree[T]{root: push(t.root, item)}
}

func push[T cmp.Ordered](n *node[T], item T) *node[T] {
	if n == nil {
		return &node[T]{item: item}
	}
	if item > n.item {
		return &node[T]{item: n.item, left: n.left, right: push(n.right, item)}
	}
	return &node[T]{item: n.item, left: push(n.left, item), right: n.right}
}

// Has reports whether item is present. Complexity: O(h).
func (t Tree[T]) Has(item T) bool {
	n := t.root
	for n != nil {
		switch {
		case item > n.item:
			n = n.right
		case item < n.item:
			n = n.left
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest element, or false on an empty tree.
// Complexity: O(h).
func (t Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.item, true
}

// Remove returns one occurrence of item together with a new tree without
// it. When item is absent, the zero value and the original tree come back
// with false. The removed node is replaced by the minimum of its right
// subtree, preserving both subtrees; the ordering of all remaining
// elements is unchanged. Complexity: O(h).
func (t Tree[T]) Remove(item T) (T, Tree[T], bool) {
	removed, root, ok := remove(t.root, item)
	if !ok {
		var zero T
		return zero, t, false
	}
	return removed, Tree[T]{root: root}, true
}

func remove[T cmp.Ordered](n *node[T], item T) (T, *node[T], bool) {
	var zero T
	if n == nil {
		return zero, nil, false
	}
	switch {
	case item > n.item:
		removed, right, ok := remove(n.right, item)
		if !ok {
			return zero, nil, false
		}
		return removed, &node[T]{item: n.item, left: n.left, right: right}, true
	case item < n.item:
		removed, left, ok := remove(n.left, item)
		if !ok {
			return zero, nil, false
		}
		return removed, &node[T]{item: n.item, left: left, right: n.right}, true
	default:
		return n.item, splice(n.left, n.right), true
	}
}

// splice joins the two subtrees of a removed node: the minimum of the
// right subtree becomes the new root, keeping every remaining element.
func splice[T cmp.Ordered](left, right *node[T]) *node[T] {
	if right == nil {
		return left
	}
	if left == nil {
		return right
	}
	min, rest := popMin(right)
	return &node[T]{item: min, left: left, right: rest}
}

func popMin[T cmp.Ordered](n *node[T]) (T, *node[T]) {
	if n.left == nil {
		return n.item, n.right
	}
	min, left := popMin(n.left)
	return min, &node[T]{item: n.item, left: left, right: n.right}
}

// Slice returns the elements in order, smallest first. Complexity: O(n).
func (t Tree[T]) Slice() []T {
	if t.root == nil {
		return nil
	}
	out := make([]T, 0, t.Len())
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.item)
		walk(n.right)
	}
	walk(t.root)
	return out
}
