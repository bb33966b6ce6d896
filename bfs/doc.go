// Package bfs provides breadth-first shortest paths over an unweighted
// core.Graph.
//
// ShortestPath explores vertices in increasing edge-distance from the
// source, recording a dense predecessor array, and reconstructs the
// vertex path to the target by walking predecessors backwards.
//
// Neighbors are enqueued in adjacency insertion order, so among equal
// length paths the first discovered one wins deterministically.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for the predecessor and visited arrays plus the queue.
//
// "Target unreachable" is not an error: ShortestPath returns a nil path
// and a nil error. Errors are reserved for contract violations (nil
// graph, out-of-range endpoints), cancellation, and hook failures.
package bfs
