// Package vecgraph is a compact, index-addressed graph-algorithm core:
// dense integer vertices, adjacency-list storage, and the classic
// single-source machinery built on top of an indexed D-ary heap.
//
// 🚀 What is vecgraph?
//
//	A small, zero-runtime-dependency library that brings together:
//		• Core primitives: a weighted multigraph over vertex indices [0,V)
//		• Indexed priority queue: D-ary min-heap with O(1) key lookup and
//		  O(log_D n) decrease-key via position/inverse maps
//		• Traversals: reachable-set counting (recursive & iterative DFS),
//		  reverse-graph ancestor enumeration
//		• Shortest paths: BFS for unweighted graphs, Dijkstra for
//		  non-negative weights
//
// ✨ Why choose vecgraph?
//
//   - Dense indices – vertices are plain ints, state is flat arrays
//   - Deterministic – adjacency insertion order decides every tie-break
//   - Pure Go – no cgo, no hidden deps
//   - Explicit contracts – every misuse surfaces as a sentinel error
//
// Everything is organized under five subpackages:
//
//	core/     — Graph over dense vertex indices, Clone(reverse), payloads
//	ipq/      — indexed D-ary min priority queue (decrease-key in O(log n))
//	bfs/      — unweighted two-terminal shortest path
//	dijkstra/ — weighted shortest path + full distance vector
//	dfs/      — reachability counting and ancestor enumeration
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	four vertex slots, four undirected edges, indices all the way down.
//
//	go get github.com/katalvlaran/vecgraph
package vecgraph
