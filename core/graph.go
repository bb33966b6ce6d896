// Package core provides the fundamental in-memory Graph implementation.
//
// This file holds the mutation and query methods: vertex payloads, edge
// insertion with undirected mirroring, adjacency iteration, and counters.
package core

import (
	"fmt"
	"math"
)

// VertexCount returns the number of vertex slots, fixed at construction.
//
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.adj) }

// Directed reports whether the graph was constructed as directed.
//
// Complexity: O(1)
func (g *Graph) Directed() bool { return g.directed }

// checkVertex validates that i is a usable vertex index.
func (g *Graph) checkVertex(i int) error {
	if i < 0 || i >= len(g.adj) {
		return fmt.Errorf("%w: %d (vertex count %d)", ErrVertexOutOfRange, i, len(g.adj))
	}

	return nil
}

// AddVertex attaches payload to vertex slot i.
// Re-attaching replaces the previous payload.
//
// Returns ErrVertexOutOfRange if i is not in [0, VertexCount).
//
// Complexity: O(1)
func (g *Graph) AddVertex(i int, payload any) error {
	if err := g.checkVertex(i); err != nil {
		return err
	}
	g.payloads[i] = payload

	return nil
}

// VertexPayload returns the payload attached to vertex slot i,
// or nil if none was attached.
//
// Returns ErrVertexOutOfRange if i is not in [0, VertexCount).
//
// Complexity: O(1)
func (g *Graph) VertexPayload(i int) (any, error) {
	if err := g.checkVertex(i); err != nil {
		return nil, err
	}

	return g.payloads[i], nil
}

// AddEdge appends an edge from→to with the given weight to the adjacency
// sequence of from. For undirected graphs a mirror arc backed by the same
// record is appended to the adjacency sequence of to (self-loops mirror
// into the same sequence), and the arc count grows by two instead of one.
//
// Parallel edges are allowed and kept in insertion order; there is no
// deduplication and no removal.
//
// Returns ErrVertexOutOfRange if either endpoint is out of range, or
// ErrNonFiniteWeight if weight is NaN or infinite.
//
// Complexity: O(1) amortized per edge insertion.
func (g *Graph) AddEdge(from, to int, weight float64, opts ...EdgeOption) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteWeight, weight)
	}

	// Let options fill in the optional payload.
	e := Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}

	// One owned record per logical edge.
	rec := &edgeRecord{from: from, to: to, weight: weight, payload: e.Payload}
	g.appendRecord(rec)

	return nil
}

// appendRecord wires rec into the adjacency storage. Callers must have
// validated the endpoints already.
func (g *Graph) appendRecord(rec *edgeRecord) {
	g.edges = append(g.edges, rec)
	g.adj[rec.from] = append(g.adj[rec.from], arc{to: rec.to, rec: rec})
	g.arcCount++
	if !g.directed {
		// Mirror arc shares the record; both directions see one payload.
		g.adj[rec.to] = append(g.adj[rec.to], arc{to: rec.from, rec: rec})
		g.arcCount++
	}
}

// EdgeCount returns the total directed arc count. For undirected graphs
// every logical edge contributes two arcs.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return g.arcCount }

// LogicalEdgeCount returns the number of logical edges: the arc count for
// directed graphs, half of it for undirected graphs.
//
// Complexity: O(1)
func (g *Graph) LogicalEdgeCount() int {
	if g.directed {
		return g.arcCount
	}

	return g.arcCount / 2
}

// Neighbors returns value copies of the arcs outgoing from u, in
// insertion order. Each copy is oriented so that From == u; for
// undirected graphs the mirror side of an edge is flipped accordingly.
//
// The returned slice is owned by the caller; mutating it does not affect
// the graph.
//
// Returns ErrVertexOutOfRange if u is not in [0, VertexCount).
//
// Complexity: O(d) where d is the out-degree of u.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adj[u]))
	for i, a := range g.adj[u] {
		out[i] = Edge{From: u, To: a.to, Weight: a.rec.weight, Payload: a.rec.payload}
	}

	return out, nil
}

// Edges returns value copies of every logical edge in global insertion
// order, oriented as originally added. Undirected edges appear once.
//
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, rec := range g.edges {
		out[i] = Edge{From: rec.from, To: rec.to, Weight: rec.weight, Payload: rec.payload}
	}

	return out
}
