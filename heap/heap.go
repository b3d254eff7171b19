package heap

import "cmp"

// Heap is an array-backed binary min-heap. The zero value is empty and
// ready to use.
type Heap[T cmp.Ordered] struct {
	data []T
}

// New returns an empty heap. Equivalent to the zero value.
func New[T cmp.Ordered]() *Heap[T] {
	return &Heap[T]{}
}

// Len returns the number of elements. Complexity: O(1).
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Push adds item to the heap. Complexity: O(log n).
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the smallest element, or false when empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	min := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return min, true
}

// Peek returns the smallest element without removing it, or false when
// empty. Complexity: O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// siftUp restores the heap property from index i toward the root.
// Parent of i is (i-1)/2.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[i] >= h.data[parent] {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown restores the heap property from index i toward the leaves.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.data[left] < h.data[smallest] {
			smallest = left
		}
		if right < n && h.data[right] < h.data[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
