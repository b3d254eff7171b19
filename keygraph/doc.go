// Package keygraph provides a generic, in-memory, key-addressed graph:
// a mapping from caller-supplied keys to nodes, where each node carries a
// value and an ordered list of outgoing edges.
//
// Edges reference their target by key, never by pointer. The target node is
// resolved by re-querying the key map at read time, so an edge stays valid
// even when the node it points at is replaced by a later AddNode. This is
// the property that makes the key-addressed design preferable to an
// index-addressed one: reorganizing node storage can never leave a dangling
// adjacency.
//
// The graph is generic over three type parameters:
//
//   - K, the key: must be comparable (map lookup and edge mirroring).
//   - V, the node value: unconstrained.
//   - W, the edge weight: unconstrained; bidirectional insertion copies the
//     same weight into both mirrored edges, so reference-typed weights are
//     shared between the pair.
//
// Edge insertion order is preserved per node and is the order Edges
// enumerates adjacencies in. Duplicate edges between the same pair of keys
// coexist; there is no deduplication and no weight aggregation.
//
// Error model: there is none. Get reports absence through its second return
// value, and AddEdge/Connect with an unknown endpoint are silent no-ops.
// Callers who need to distinguish "edge created" from "edge dropped" must
// check Has beforehand; see the AddEdge documentation.
//
// Concurrency: a Graph has no internal locking. Every mutation requires
// exclusive access to the whole graph, because an edge insertion may touch
// two node entries. Wrap the graph in a single sync.RWMutex if it is shared
// across goroutines: many concurrent Get/Edges readers, one writer.
package keygraph
