// Package heap provides an array-backed binary min-heap for ordered
// element types.
//
// Unlike the persistent containers in this module, a Heap mutates in
// place: Push and Pop rearrange the backing slice. The smallest element is
// always at the root, so Pop yields elements in ascending order.
//
// The zero value is an empty, ready-to-use heap. Like its peers the heap
// is single-threaded; guard it externally when shared.
package heap
