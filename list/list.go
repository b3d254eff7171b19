package list

import "iter"

// List is a persistent singly linked list. The zero value is the empty
// list. List values are cheap to copy; copies share structure.
type List[T any] struct {
	head *node[T]
}

// node is one cons cell. Cells are immutable after construction, which is
// what makes tail sharing safe.
type node[T any] struct {
	item T
	next *node[T]
}

// New returns an empty list. Equivalent to the zero value.
func New[T any]() List[T] {
	return List[T]{}
}

// FromSlice builds a list by pushing each element in turn, so iteration
// order is the reverse of the slice. Complexity: O(n).
func FromSlice[T any](items []T) List[T] {
	l := List[T]{}
	for _, item := range items {
		l = l.Push(item)
	}
	return l
}

// IsEmpty reports whether the list has no elements. Complexity: O(1).
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements. Complexity: O(n).
func (l List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Push returns a new list with item at the front. The receiver is
// unchanged and shares its entire structure with the result.
// Complexity: O(1).
func (l List[T]) Push(item T) List[T] {
	return List[T]{head: &node[T]{item: item, next: l.head}}
}

// Pop returns the first element and the rest of the list. On an empty
// list it returns the zero value, the empty list, and false.
// Complexity: O(1).
func (l List[T]) Pop() (T, List[T], bool) {
	if l.head == nil {
		var zero T
		return zero, l, false
	}
	return l.head.item, List[T]{head: l.head.next}, true
}

// Insert returns a new list with item inserted at index; the element
// previously at index and everything after it shift one position back.
// Index 0 prepends and index Len() appends. Out of range: the original
// list is returned unchanged together with ErrIndexOutOfRange.
// Complexity: O(index); the prefix before the insertion point is copied,
// the suffix is shared.
func (l List[T]) Insert(index int, item T) (List[T], error) {
	head, ok := insertAt(l.head, index, item)
	if !ok {
		return l, ErrIndexOutOfRange
	}
	return List[T]{head: head}, nil
}

func insertAt[T any](c *node[T], index int, item T) (*node[T], bool) {
	if index == 0 {
		return &node[T]{item: item, next: c}, true
	}
	if c == nil || index < 0 {
		return nil, false
	}
	rest, ok := insertAt(c.next, index-1, item)
	if !ok {
		return nil, false
	}
	return &node[T]{item: c.item, next: rest}, true
}

// Remove returns the element at index and a new list without it; the
// order of the remaining elements is unchanged. Out of range: the zero
// value and the original list are returned together with
// ErrIndexOutOfRange.
// Complexity: O(index); prefix copied, suffix shared.
func (l List[T]) Remove(index int) (T, List[T], error) {
	item, head, ok := removeAt(l.head, index)
	if !ok {
		var zero T
		return zero, l, ErrIndexOutOfRange
	}
	return item, List[T]{head: head}, nil
}

func removeAt[T any](c *node[T], index int) (T, *node[T], bool) {
	var zero T
	if c == nil || index < 0 {
		return zero, nil, false
	}
	if index == 0 {
		return c.item, c.next, true
	}
	item, rest, ok := removeAt(c.next, index-1)
	if !ok {
		return zero, nil, false
	}
	return item, &node[T]{item: c.item, next: rest}, true
}

// All returns an iterator over the elements from front to back.
//
//	for v := range l.All() { ... }
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.head; c != nil; c = c.next {
			if !yield(c.item) {
				return
			}
		}
	}
}

// Slice returns the elements as a fresh slice, front to back.
// Complexity: O(n).
func (l List[T]) Slice() []T {
	if l.head == nil {
		return nil
	}
	out := make([]T, 0, l.Len())
	for c := l.head; c != nil; c = c.next {
		out = append(out, c.item)
	}
	return out
}
