// Package keygraph: Graph operations.
//
// Mutations (AddNode, AddEdge, Connect) require exclusive access to the
// whole graph; queries (Get, Edges, Has, Len, Keys) are read-only. See the
// package documentation for the external locking discipline.
package keygraph

// AddNode inserts or replaces the node at key with a fresh node holding
// value and an empty edge list.
//
// If key already exists, its previous value and its entire edge list are
// discarded - replacement, not merge. Edges elsewhere in the graph that
// point at key are untouched and now resolve to the new node.
// Always succeeds. Complexity: O(1) amortized.
func (g *Graph[K, V, W]) AddNode(key K, value V) {
	g.nodes[key] = Node[K, V, W]{Value: value}
}

// AddEdge appends an edge from a to b with the given weight. When typ is
// Bidirectional, a mirrored edge from b to a with the same weight is
// appended as well; any other EdgeType value behaves as Directional.
//
// If either key is absent the call is a silent no-op: nothing is mutated
// and nothing is reported. Callers that must know whether the edge was
// created should check Has(a) && Has(b) first.
//
// Duplicate edges between the same pair simply coexist in insertion order.
// A bidirectional self-edge (a == b) appends two edges to the same node.
// Complexity: O(1) amortized.
func (g *Graph[K, V, W]) AddEdge(a, b K, weight W, typ EdgeType) {
	na, ok := g.nodes[a]
	if !ok {
		return
	}
	nb, ok := g.nodes[b]
	if !ok {
		return
	}

	na.edges = append(na.edges, Edge[K, W]{Weight: weight, To: b})
	if typ == Bidirectional {
		if a == b {
			// Mirror lands on the same node; nb is a stale copy by now.
			na.edges = append(na.edges, Edge[K, W]{Weight: weight, To: a})
		} else {
			nb.edges = append(nb.edges, Edge[K, W]{Weight: weight, To: a})
			g.nodes[b] = nb
		}
	}
	g.nodes[a] = na
}

// Connect appends mirrored edges between a and b with the same weight.
// It is shorthand for AddEdge(a, b, weight, Bidirectional), including the
// silent no-op when either key is absent.
func (g *Graph[K, V, W]) Connect(a, b K, weight W) {
	g.AddEdge(a, b, weight, Bidirectional)
}

// Get returns a read-only view of the node at key. The second return value
// reports presence; absence is a normal outcome, not an error.
//
// The view is a value copy taken at call time. Edges inserted after the
// call are not visible through it - call Get or Edges again to observe the
// current state. Complexity: O(1).
func (g *Graph[K, V, W]) Get(key K) (Node[K, V, W], bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// Edges returns the node's outgoing edges in insertion order, or nil if
// key is absent. The slice is a fresh copy, safe to retain and mutate;
// each call re-resolves key through the map, so calling again after
// further mutation yields the new state.
// Complexity: O(d) where d is the node's degree.
func (g *Graph[K, V, W]) Edges(key K) []Edge[K, W] {
	n, ok := g.nodes[key]
	if !ok {
		return nil
	}
	return n.Edges()
}

// Has reports whether a node with the given key exists.
// This is the presence check AddEdge and Connect tell callers to use.
// Complexity: O(1).
func (g *Graph[K, V, W]) Has(key K) bool {
	_, ok := g.nodes[key]
	return ok
}

// Len returns the number of nodes. Complexity: O(1).
func (g *Graph[K, V, W]) Len() int {
	return len(g.nodes)
}

// Keys returns every node key in unspecified order.
// Complexity: O(n).
func (g *Graph[K, V, W]) Keys() []K {
	if len(g.nodes) == 0 {
		return nil
	}
	out := make([]K, 0, len(g.nodes))
	for k := range g.nodes {
		out = append(out, k)
	}
	return out
}
