// Package dfs implements reachable-set counting from a source vertex.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/vecgraph/core"
)

// dfsWalker encapsulates state during one counting traversal.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited []bool
	count   uint64
}

// newWalker checks the shared preconditions of both counting variants
// and returns a ready walker.
func newWalker(g *core.Graph, source int, opts []Option) (*dfsWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d (vertex count %d)", ErrVertexOutOfRange, source, n)
	}

	return &dfsWalker{graph: g, opts: o, visited: make([]bool, n)}, nil
}

// CountReachable counts the vertices reachable from source (source
// included) using recursive depth-first search, visiting neighbors in
// adjacency insertion order. For undirected graphs this is the size of
// source's connected component.
//
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input, the
// context error on cancellation, or any error surfaced by OnVisit.
//
// Complexity: O(V + E) time, O(V) space plus recursion depth.
func CountReachable(g *core.Graph, source int, opts ...Option) (uint64, error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return 0, err
	}
	if err = w.traverse(source); err != nil {
		return 0, err
	}

	return w.count, nil
}

// traverse visits v, then recurses on each unvisited neighbor.
func (w *dfsWalker) traverse(v int) error {
	// cancellation check (once per expansion)
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[v] = true
	w.count++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook at %d: %w", v, err)
		}
	}

	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	for _, e := range neighbors {
		if !w.visited[e.To] {
			if err = w.traverse(e.To); err != nil {
				return err
			}
		}
	}

	return nil
}

// CountReachableIterative counts the vertices reachable from source with
// an explicit stack instead of recursion, so graphs whose reachable-set
// depth would overflow the call stack are handled safely.
//
// A vertex may be pushed once per in-edge; the visited guard on pop
// makes duplicates harmless and keeps the count exact. The stack grows
// as needed (worst case O(E)).
//
// Returns the same count as CountReachable on every graph.
//
// Complexity: O(V + E) time, O(V + E) space worst case.
func CountReachableIterative(g *core.Graph, source int, opts ...Option) (uint64, error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return 0, err
	}

	stack := []int{source}
	var v int
	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[v] {
			continue
		}
		w.visited[v] = true
		w.count++
		if w.opts.OnVisit != nil {
			if err = w.opts.OnVisit(v); err != nil {
				return 0, fmt.Errorf("dfs: OnVisit hook at %d: %w", v, err)
			}
		}

		neighbors, nerr := w.graph.Neighbors(v)
		if nerr != nil {
			return 0, fmt.Errorf("dfs: Neighbors(%d): %w", v, nerr)
		}
		for _, e := range neighbors {
			if !w.visited[e.To] {
				stack = append(stack, e.To)
			}
		}
	}

	return w.count, nil
}
