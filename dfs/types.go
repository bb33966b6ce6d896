// Package dfs defines options and error definitions for the depth-first
// reachability utilities.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange is returned when the source index is outside [0, V).
	ErrVertexOutOfRange = errors.New("dfs: vertex index out of range")
)

// Option configures optional behavior of the DFS utilities.
type Option func(*Options)

// Options holds configurable parameters for DFS execution.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per vertex expansion.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first visited.
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook,
// called when a vertex is first marked visited.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
