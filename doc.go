// Package structures collects small, generic, in-memory containers.
//
// The packages are independent peers; none depends on another:
//
//   - keygraph: a key-addressed graph. Nodes live in a key map, edges
//     reference their target by key and are resolved at read time, so a
//     replaced node never leaves a dangling adjacency.
//   - list: a persistent singly linked list whose mutators consume the old
//     list and return a new one, handing the original back on error.
//   - bintree: a persistent, unbalanced binary search tree with the same
//     ownership model as list.
//   - heap: an array-backed binary min-heap.
//
// Everything is single-threaded by design: no container holds a lock, and
// sharing one across goroutines requires external synchronization. No
// container touches anything beyond process memory.
//
// Runnable demos live under examples/.
package structures
