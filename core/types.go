// Package core defines the central Graph and Edge types over dense
// vertex indices, together with sentinel errors and construction options.
package core

import "errors"

// NoVertex is the sentinel vertex index used wherever "no vertex" must be
// representable, e.g. predecessor arrays built by the traversal packages.
const NoVertex = -1

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight.
	ErrNonFiniteWeight = errors.New("core: edge weight must be finite")
)

// Edge is the value-copy view of one directed arc, oriented From→To.
//
// For undirected graphs the same underlying record is visible from both
// endpoints; Neighbors orients the copy so that From is always the queried
// vertex. Payload is shared by reference with the owning record.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost of the edge. Finite; Dijkstra additionally
	// requires it to be non-negative.
	Weight float64

	// Payload is arbitrary user data attached at AddEdge time.
	Payload any
}

// edgeRecord is the single owned representation of one logical edge.
// Undirected graphs reference the same record from two adjacency arcs,
// so payloads exist exactly once regardless of direction.
type edgeRecord struct {
	from    int
	to      int
	weight  float64
	payload any
}

// arc is one adjacency entry: the endpoint opposite the owning vertex
// plus the backing record.
type arc struct {
	to  int
	rec *edgeRecord
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgePayload attaches an opaque payload to the edge being added.
func WithEdgePayload(payload any) EdgeOption {
	return func(e *Edge) { e.Payload = payload }
}

// Graph is the core in-memory graph data structure.
//
// Vertices are the dense indices [0, VertexCount); the count and the
// directedness are fixed at construction. Adjacency sequences grow in
// insertion order and are never reordered or compacted.
type Graph struct {
	// Configuration
	directed bool // directed vs. undirected (mirrored arcs)

	// Storage
	payloads []any         // payloads[i] = opaque payload of vertex i, nil when unset
	adj      [][]arc       // adj[i] = outgoing arcs of vertex i, insertion order
	edges    []*edgeRecord // owned edge records, global insertion order
	arcCount int           // directed arc count (undirected edges count twice)
}

// NewGraph creates an empty Graph with vertexCount vertex slots, all with
// empty payloads, configured by the given options.
// By default the Graph is undirected.
//
// Returns ErrBadVertexCount if vertexCount is negative.
//
// Complexity: O(V)
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{
		payloads: make([]any, vertexCount),
		adj:      make([][]arc, vertexCount),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
