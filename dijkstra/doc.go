// Package dijkstra implements Dijkstra's shortest-path algorithm on
// graphs with non-negative float64 edge weights.
//
// ShortestPath computes the minimum-cost distance from a single source
// to every reachable vertex, plus the vertex path to one target. It
// processes vertices in order of increasing distance using the indexed
// D-ary min priority queue from package ipq, which supports true
// decrease-key: when a relaxation improves a vertex already queued, its
// entry is reprioritized in place instead of pushing a duplicate.
//
// Complexity:
//
//   - Time:  O((V + E) · log_D V) — each vertex is extracted at most
//     once, each edge triggers at most one Insert or Decrease.
//   - Space: O(V) for the distance, predecessor, and visited arrays plus
//     the queue (at most one entry per vertex, unlike lazy duplication).
//
// Numeric semantics: distance comparisons treat differences within a
// small epsilon as equal, so repeated float additions that land on a
// numerically identical distance never trigger a spurious Decrease.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights before any state is
//     allocated, failing fast with ErrNegativeWeight.
//   - A stale-entry guard on extraction (popped distance greater than the
//     recorded one) is kept even though true decrease-key cannot produce
//     stale entries; it makes the loop correct under either strategy.
//   - The queue is drained fully, so the returned distance vector is
//     complete for every reachable vertex, not just the target.
//
// "Target unreachable" is not an error: Dist[target] is +Inf and Path is
// nil. Errors are reserved for contract violations.
package dijkstra
