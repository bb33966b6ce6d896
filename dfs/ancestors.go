// Package dfs implements ancestor enumeration over the reverse graph.
package dfs

import "github.com/katalvlaran/vecgraph/core"

// Ancestors enumerates, for every vertex v in [0, V), the vertices u ≠ v
// from which a directed path u → … → v exists in g.
//
// Strategy: clone g with every edge reversed once, then run one
// reachability DFS from each v in the reverse graph — a vertex reached
// from v along reversed edges is an ancestor of v in the original.
// Each inner list is ascending by vertex index; vertices with no
// ancestors get an empty (non-nil) list. For undirected graphs every
// member of v's component except v itself is an ancestor.
//
// Returns ErrGraphNil for a nil graph, the context error on
// cancellation, or any error surfaced by OnVisit.
//
// Complexity: O(V · (V + E)) time, O(V + E) space.
func Ancestors(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	reverse := g.Clone(true)
	out := make([][]int, n)
	visited := make([]bool, n)
	stack := make([]int, 0, n)

	var v, u int
	for v = 0; v < n; v++ {
		// Reset scratch state for this vertex's reachability sweep.
		for i := range visited {
			visited[i] = false
		}
		stack = append(stack[:0], v)

		for len(stack) > 0 {
			// cancellation check (once per pop)
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[u] {
				continue
			}
			visited[u] = true
			if o.OnVisit != nil {
				if err := o.OnVisit(u); err != nil {
					return nil, err
				}
			}

			neighbors, err := reverse.Neighbors(u)
			if err != nil {
				return nil, err
			}
			for _, e := range neighbors {
				if !visited[e.To] {
					stack = append(stack, e.To)
				}
			}
		}

		// Emit every reached vertex except v itself, ascending by index.
		anc := make([]int, 0)
		for u = 0; u < n; u++ {
			if u != v && visited[u] {
				anc = append(anc, u)
			}
		}
		out[v] = anc
	}

	return out, nil
}
