// Package list provides a persistent singly linked list.
//
// Every mutating operation consumes the list value it is called on and
// returns a new one; the original value continues to describe the list as
// it was. Push shares the entire tail structurally, so holding many
// versions of a list costs one node per divergence, not a full copy.
//
// The out-of-range error path follows the same ownership model: Insert and
// Remove hand the original list back to the caller unchanged alongside
// ErrIndexOutOfRange, so a failed call never loses data.
//
//	l := list.FromSlice([]int{3, 2, 1})
//	l2, err := l.Insert(1, 42) // l is still {1, 2, 3}
//
// The zero value is the empty list and is ready to use. Lists are
// independent peer containers: nothing here depends on the graph core.
//
// Values inside a list are never mutated by the package, but a stored
// pointer is shared by every version of every list that contains it.
package list
