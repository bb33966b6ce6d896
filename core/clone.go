// File: clone.go
// Role: Cloning graph instances, optionally reversing every edge.
// Determinism:
//   - Edges are replayed in global insertion order, so per-vertex adjacency
//     sequences on the clone preserve the original relative order.
package core

// CloneEmpty returns a new Graph with identical vertex count, directedness,
// and vertex payloads, but no edges.
//
// Vertex payloads are copied by reference (they are opaque to core).
//
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		directed: g.directed,
		payloads: make([]any, len(g.payloads)),
		adj:      make([][]arc, len(g.adj)),
	}
	copy(clone.payloads, g.payloads)

	return clone
}

// Clone returns a deep copy of the Graph: vertex count, directedness,
// payloads, and every edge replayed in insertion order.
//
// When reverse is true, each edge is replayed with its endpoints swapped,
// producing the reverse graph. Undirected graphs are invariant under
// reversal: the logical edge multiset is unchanged.
//
// Clone(reverse) applied twice yields a graph with the same logical edge
// multiset as the original.
//
// Complexity: O(V + E)
func (g *Graph) Clone(reverse bool) *Graph {
	clone := g.CloneEmpty()
	for _, rec := range g.edges {
		from, to := rec.from, rec.to
		if reverse {
			from, to = to, from
		}
		clone.appendRecord(&edgeRecord{from: from, to: to, weight: rec.weight, payload: rec.payload})
	}

	return clone
}
