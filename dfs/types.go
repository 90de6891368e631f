// Package dfs defines visitation states, errors and options for depth-first
// traversals of a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a vertex during DFS.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a directed cycle; the message names one.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates an edge that is not tail–arrow under WithStrictEdges.
	ErrNotDirected = errors.New("dfs: edge is not directed")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx    context.Context // allows cancellation; defaults to Background
	strict bool            // reject any edge that is not tail–arrow
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithStrictEdges makes TopologicalSort fail with ErrNotDirected when the
// graph holds undirected, bidirected or circle-marked edges, instead of
// ignoring them.
func WithStrictEdges() TopoOption {
	return func(o *topoOptions) { o.strict = true }
}
