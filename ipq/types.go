// Package ipq defines the Queue type, its comparison contract, and
// sentinel errors for the indexed D-ary min priority queue.
package ipq

import (
	"errors"
	"fmt"
)

// Sentinel errors for indexed priority queue operations.
var (
	// ErrBadDegree indicates a branching factor smaller than 2.
	ErrBadDegree = errors.New("ipq: degree must be at least 2")

	// ErrBadCapacity indicates a negative capacity.
	ErrBadCapacity = errors.New("ipq: capacity must be non-negative")

	// ErrNilCompare indicates a nil comparison function.
	ErrNilCompare = errors.New("ipq: compare function is nil")

	// ErrKeyOutOfRange indicates a key index outside [0, Capacity).
	ErrKeyOutOfRange = errors.New("ipq: key index out of range")

	// ErrKeyExists indicates an Insert of a key index already present.
	ErrKeyExists = errors.New("ipq: key index already present")

	// ErrKeyNotFound indicates an operation referencing an absent key index.
	ErrKeyNotFound = errors.New("ipq: key index not present")

	// ErrEmpty indicates Peek or Extract on an empty queue.
	ErrEmpty = errors.New("ipq: queue is empty")
)

// CompareFunc establishes a strict weak ordering over values:
// negative if a < b, zero if equal, positive if a > b.
type CompareFunc[T any] func(a, b T) int

// Queue is an indexed D-ary min priority queue over values of type T,
// keyed by dense integer indices in [0, Capacity).
//
// Invariants (after every public operation):
//
//   - pm and im are mutual inverses over the occupied heap prefix:
//     im[pm[ki]] == ki and pm[im[pos]] == pos for every pos in [0, size).
//   - The tree induced by im[0..size) with children D·i+1 .. D·i+D is a
//     min-heap under cmp.
//   - A value slot is occupied iff pm[ki] != -1.
type Queue[T any] struct {
	d    int            // branching factor, ≥ 2
	size int            // current entry count
	cmp  CompareFunc[T] // ordering over values

	values  []T    // values[ki] = value bound to key index ki
	present []bool // present[ki] = whether ki holds a value
	pm      []int  // pm[ki] = heap position of ki, -1 when absent
	im      []int  // im[pos] = key index at heap position pos
}

// New creates an empty indexed min priority queue with the given
// branching factor, capacity, and comparison function.
//
// Returns ErrBadDegree if degree < 2, ErrBadCapacity if capacity is
// negative, or ErrNilCompare if cmp is nil.
//
// Complexity: O(N)
func New[T any](degree, capacity int, cmp CompareFunc[T]) (*Queue[T], error) {
	if degree < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDegree, degree)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}
	q := &Queue[T]{
		d:       degree,
		cmp:     cmp,
		values:  make([]T, capacity),
		present: make([]bool, capacity),
		pm:      make([]int, capacity),
		im:      make([]int, capacity),
	}
	for i := range q.pm {
		q.pm[i] = -1
	}

	return q, nil
}

// Size returns the number of entries currently in the queue.
func (q *Queue[T]) Size() int { return q.size }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Capacity returns the maximum number of distinct key indices.
func (q *Queue[T]) Capacity() int { return len(q.values) }

// Degree returns the branching factor.
func (q *Queue[T]) Degree() int { return q.d }
