// Package keygraph: central type declarations.
//
// This file declares EdgeType, Edge, Node, Graph, and the New constructor.
// Operations live in graph.go.
package keygraph

import "strconv"

// EdgeType selects whether an edge insertion is mirrored onto the target
// endpoint. It is a per-call policy, not graph state: the same graph may
// mix directional and bidirectional insertions freely.
type EdgeType uint8

const (
	// Directional creates a single edge from source to target.
	Directional EdgeType = iota

	// Bidirectional creates a mirrored pair of edges with the same weight,
	// each endpoint pointing at the other.
	Bidirectional
)

// String returns the constant name, or "EdgeType(n)" for a value outside
// the declared range. AddEdge treats any such value as Directional.
func (t EdgeType) String() string {
	switch t {
	case Directional:
		return "Directional"
	case Bidirectional:
		return "Bidirectional"
	}
	return "EdgeType(" + strconv.Itoa(int(t)) + ")"
}

// Edge is a weighted, key-addressed reference to another node.
//
// To is a back-reference by key, never an ownership relation: resolving the
// target means calling Graph.Get(e.To) at read time. An Edge is immutable
// once created.
type Edge[K comparable, W any] struct {
	// Weight is the payload attached to the edge.
	Weight W

	// To is the key of the target node. The key was present in the graph at
	// the moment the edge was created; nothing re-checks it afterwards.
	To K
}

// Node is a read-only view of a value and its ordered outgoing edges.
//
// Nodes are owned exclusively by their Graph; the views handed out by Get
// are value copies. A view observes the edge list as of the Get call -
// re-read through Get or Graph.Edges to observe later insertions.
type Node[K comparable, V, W any] struct {
	// Value is the payload attached to the node.
	Value V

	edges []Edge[K, W]
}

// Edges returns a copy of the node's outgoing edges in insertion order.
// The copy is safe to retain and mutate.
func (n Node[K, V, W]) Edges() []Edge[K, W] {
	if len(n.edges) == 0 {
		return nil
	}
	out := make([]Edge[K, W], len(n.edges))
	copy(out, n.edges)
	return out
}

// Degree returns the number of outgoing edges, duplicates included.
func (n Node[K, V, W]) Degree() int {
	return len(n.edges)
}

// Graph is an in-memory mapping from keys to nodes.
//
// Nodes are stored by value directly in the key map; there is no per-node
// indirection. Keys are unique. Key insertion order carries no meaning;
// per-node edge order does.
type Graph[K comparable, V, W any] struct {
	nodes map[K]Node[K, V, W]
}

// New returns an empty graph: no nodes, no edges.
// Complexity: O(1).
func New[K comparable, V, W any]() *Graph[K, V, W] {
	return &Graph[K, V, W]{nodes: make(map[K]Node[K, V, W])}
}
