// Package bfs defines tunable options and error definitions for
// breadth-first shortest paths over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when source or target is outside [0, V).
	ErrVertexOutOfRange = errors.New("bfs: vertex index out of range")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit, if non-nil, is called when a vertex is dequeued for
	// expansion. Returning an error aborts the search with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked when a vertex is expanded;
// returning an error from the callback stops the search.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
