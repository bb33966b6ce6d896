// Package dijkstra implements the weighted single-source shortest path.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecgraph/core"
	"github.com/katalvlaran/vecgraph/ipq"
)

// ShortestPath computes shortest distances from source to every reachable
// vertex of g and reconstructs the shortest vertex path to target.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source and target must be in [0, V) (ErrVertexOutOfRange).
//  3. Options must be well-formed (ErrBadEpsilon, ErrBadHeapDegree).
//  4. No edge in g may have negative weight (ErrNegativeWeight).
//
// The returned Result carries the full distance vector (math.Inf(1) for
// unreachable vertices) and the path, nil when target is unreachable.
//
// Complexity: O((V + E) · log_D V) time, O(V) extra space.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (*Result, error) {
	// 1) Validate graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate endpoints.
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d (vertex count %d)", ErrVertexOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d (vertex count %d)", ErrVertexOutOfRange, target, n)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Allocate the runner state and the indexed priority queue keyed
	//    by vertex index, ordered by the epsilon-aware comparator.
	eps := cfg.Epsilon
	cmp := func(a, b float64) int {
		switch {
		case a < b-eps:
			return -1
		case a > b+eps:
			return 1
		default:
			return 0
		}
	}
	pq, err := ipq.New[float64](cfg.HeapDegree, n, cmp)
	if err != nil {
		return nil, err
	}
	r := &runner{
		g:       g,
		eps:     eps,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      pq,
	}

	// 6) Run the main loop and reconstruct the target path.
	r.init(source)
	if err = r.process(); err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Path: r.reconstruct(source, target)}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph         // read-only input graph
	eps     float64             // distance comparison tolerance
	dist    []float64           // dist[v] = best known distance from source
	prev    []int               // prev[v] = predecessor on the shortest path
	visited []bool              // visited[v] = distance finalized
	pq      *ipq.Queue[float64] // vertex index → distance upper bound
}

// init sets dist[*]=+∞, prev[*]=NoVertex, then seeds the queue with the
// source at distance zero.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = 0
	// Insert on a fresh queue with a valid key cannot fail.
	_ = r.pq.Insert(source, 0)
}

// process repeatedly extracts the nearest unvisited vertex and relaxes
// its outgoing edges, draining the queue so that every reachable vertex
// ends up finalized.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Pop the smallest-distance entry.
		u, err := r.pq.PeekKeyIndex()
		if err != nil {
			return err
		}
		du, err := r.pq.Extract()
		if err != nil {
			return err
		}

		// 2) Stale-entry guard: with true decrease-key the queue never
		//    holds outdated distances, but the guard keeps the loop
		//    correct under a lazy push-duplicates strategy too.
		if du > r.dist[u]+r.eps {
			continue
		}

		// 3) Mark u final and relax its outgoing edges.
		r.visited[u] = true
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge u→w in adjacency insertion order and improves
// dist[w] when the path through u is strictly shorter under epsilon.
//
// Assumes dist[u] is finalized before the call.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: Neighbors(%d): %w", u, err)
	}
	var nd float64
	for _, e := range neighbors {
		// Finalized vertices cannot improve under non-negative weights.
		if r.visited[e.To] {
			continue
		}

		// Strictly-better test under epsilon: equal-length relaxations
		// keep the first-discovered predecessor and never touch the queue.
		nd = r.dist[u] + e.Weight
		if nd >= r.dist[e.To]-r.eps {
			continue
		}

		r.dist[e.To] = nd
		r.prev[e.To] = u
		if r.pq.Contains(e.To) {
			if err = r.pq.Decrease(e.To, nd); err != nil {
				return err
			}
		} else if err = r.pq.Insert(e.To, nd); err != nil {
			return err
		}
	}

	return nil
}

// reconstruct walks the predecessor array backwards from target and
// reverses the walk in place; nil when target was never reached.
func (r *runner) reconstruct(source, target int) []int {
	if math.IsInf(r.dist[target], 1) {
		return nil
	}
	path := []int{}
	for cur := target; cur != core.NoVertex; cur = r.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != source {
		return nil
	}

	return path
}
