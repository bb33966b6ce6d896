// Package dfs provides depth-first reachability utilities over a
// core.Graph: reachable-set counting in both recursive and iterative
// form, and whole-graph ancestor enumeration via the reverse graph.
//
// Key operations:
//
//   - CountReachable(g, source): recursive DFS; counts the vertices
//     reachable from source (the connected component for undirected
//     graphs). Simple, but bounded by the call stack on deep graphs.
//   - CountReachableIterative(g, source): same result with an explicit
//     growable stack. A vertex may sit on the stack once per in-edge;
//     the visited guard on pop keeps the count exact.
//   - Ancestors(g): for every vertex v, the set of vertices u ≠ v with a
//     directed path u → … → v, computed by one reverse clone and a
//     reachability DFS per vertex. Lists are ascending by vertex index.
//
// Complexity:
//
//   - Counting: O(V + E) time, O(V) space (plus O(E) stack worst case
//     for the iterative form).
//   - Ancestors: O(V · (V + E)) by design — one DFS per vertex.
//
// Both counting variants visit neighbors in adjacency insertion order
// and agree on every graph.
package dfs
