// Package bfs implements the unweighted two-terminal shortest path.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/vecgraph/core"
)

// walker encapsulates mutable BFS state for one search.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []int
	prev    []int
	visited []bool
}

// ShortestPath runs breadth-first search on g from source and returns a
// shortest vertex path from source to target, or nil if target is
// unreachable. Edge weights are ignored; path length is the edge count.
//
// When source == target the path is the single vertex [source].
//
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input, the
// context error on cancellation, or any error surfaced by OnVisit.
//
// Complexity: O(V + E) time, O(V) extra space.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d (vertex count %d)", ErrVertexOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d (vertex count %d)", ErrVertexOutOfRange, target, n)
	}

	// Prepare walker state: dense scratch arrays, slice-backed FIFO.
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]int, 0, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for i := range w.prev {
		w.prev[i] = core.NoVertex
	}

	// Seed the queue with the source.
	w.visited[source] = true
	w.queue = append(w.queue, source)

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.reconstruct(source, target), nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u); err != nil {
				return fmt.Errorf("bfs: OnVisit hook at %d: %w", u, err)
			}
		}
		if err := w.enqueueNeighbors(u); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors expands u, marking and enqueueing each unseen
// neighbor in adjacency insertion order.
func (w *walker) enqueueNeighbors(u int) error {
	neighbors, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("bfs: Neighbors(%d): %w", u, err)
	}
	for _, e := range neighbors {
		if w.visited[e.To] {
			continue
		}
		w.visited[e.To] = true
		w.prev[e.To] = u
		w.queue = append(w.queue, e.To)
	}

	return nil
}

// reconstruct walks the predecessor array backwards from target and
// reverses the walk in place. A walk that does not start at source means
// target was never discovered, so the result is nil.
func (w *walker) reconstruct(source, target int) []int {
	if !w.visited[target] {
		return nil
	}
	path := []int{}
	for cur := target; cur != core.NoVertex; cur = w.prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != source {
		return nil
	}

	return path
}
