// Package dijkstra defines result types, configuration options, and
// sentinel errors for Dijkstra's shortest-path algorithm.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates source or target outside [0, V).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight indicates a negative edge weight in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadEpsilon indicates a negative or non-finite epsilon option.
	ErrBadEpsilon = errors.New("dijkstra: epsilon must be a non-negative finite number")

	// ErrBadHeapDegree indicates a heap branching factor smaller than 2.
	ErrBadHeapDegree = errors.New("dijkstra: heap degree must be at least 2")
)

// DefaultEpsilon is the tolerance under which two distances compare equal.
const DefaultEpsilon = 1e-9

// DefaultHeapDegree is the branching factor of the internal indexed heap.
const DefaultHeapDegree = 4

// Result holds the outcome of one Dijkstra run.
type Result struct {
	// Dist maps each vertex index to its shortest distance from the
	// source; math.Inf(1) for unreachable vertices.
	Dist []float64

	// Path is the shortest vertex path from source to target, or nil if
	// the target is unreachable. When source == target it is the single
	// vertex [source].
	Path []int
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Epsilon is the tolerance under which two distances are equal.
	// Must be ≥ 0 and finite.
	Epsilon float64

	// HeapDegree is the branching factor of the indexed priority queue.
	// Must be ≥ 2.
	HeapDegree int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with DefaultEpsilon and DefaultHeapDegree.
func DefaultOptions() Options {
	return Options{
		Epsilon:    DefaultEpsilon,
		HeapDegree: DefaultHeapDegree,
	}
}

// WithEpsilon sets the distance comparison tolerance. Distances whose
// difference is within eps compare equal, so equal-length relaxations
// never overwrite an established predecessor.
// Negative values surface as ErrBadEpsilon when ShortestPath is invoked.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = ErrBadEpsilon

			return
		}
		o.Epsilon = eps
	}
}

// WithHeapDegree sets the branching factor of the internal indexed heap.
// Values below 2 surface as ErrBadHeapDegree when ShortestPath is invoked.
func WithHeapDegree(d int) Option {
	return func(o *Options) {
		if d < 2 {
			o.err = ErrBadHeapDegree

			return
		}
		o.HeapDegree = d
	}
}
