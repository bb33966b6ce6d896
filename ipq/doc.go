// Package ipq implements an indexed D-ary min priority queue.
//
// Every entry is addressed by an external integer key index in [0, N),
// where N is the capacity fixed at construction. A position map (key
// index → heap position) and its inverse (heap position → key index) make
// locating an entry O(1), so reprioritizing it — the decrease-key step at
// the heart of Dijkstra — costs only O(log_D n) instead of the linear
// scan a plain binary heap would need.
//
// The branching factor D ≥ 2 trades tree height against comparisons per
// sift-down; D = 2 is the classic binary heap, D = 4 is a good default
// for decrease-heavy workloads.
//
// Ordering is defined entirely by the caller's CompareFunc. Entries that
// compare equal never swap, so heap shape — and therefore extraction
// order among equals — is deterministic for a fixed operation sequence.
//
// Complexity:
//
//   - Insert, Extract, Delete, Update: O(D · log_D n)
//   - Decrease: O(log_D n) sift-up only
//   - Increase: O(D · log_D n) sift-down only
//   - Contains, ValueOf, Peek, PeekKeyIndex: O(1)
//
// Errors:
//
//	ErrBadDegree     - branching factor < 2.
//	ErrBadCapacity   - negative capacity.
//	ErrNilCompare    - nil comparison function.
//	ErrKeyOutOfRange - key index outside [0, N).
//	ErrKeyExists     - Insert of a key index already present.
//	ErrKeyNotFound   - operation on an absent key index.
//	ErrEmpty         - Peek/Extract on an empty queue.
package ipq
