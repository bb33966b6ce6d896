// Package core provides the fundamental index-addressed Graph type.
//
// A Graph is a weighted multigraph over a dense vertex index space [0,V)
// fixed at construction. Each vertex slot may carry an opaque payload;
// each edge carries a float64 weight and an optional payload. Adjacency
// is stored as per-vertex edge sequences in insertion order, which is the
// observable tie-breaking order for every algorithm in this module.
//
// Representation:
//
//   - Adjacency list, not a matrix: the algorithms built on core iterate
//     edges rather than test incidence, so storage is O(V + E).
//   - Undirected graphs materialize one owned edge record per logical
//     edge and reference it from both endpoints' adjacency sequences, so
//     payloads are never aliased across two records.
//
// Invariants:
//
//   - VertexCount and directedness are immutable after NewGraph.
//   - Adjacency is append-only; there is no edge or vertex removal.
//   - For undirected graphs, every arc u→v has a mirror arc v→u backed by
//     the same record (self-loops mirror into the same sequence).
//
// Errors:
//
//	ErrBadVertexCount   - negative vertex count passed to NewGraph.
//	ErrVertexOutOfRange - a vertex index outside [0,V).
//	ErrNonFiniteWeight  - NaN or ±Inf edge weight.
package core
