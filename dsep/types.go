// Package dsep provides tunable options and error definitions for
// reachability queries over a core.Graph.
package dsep

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/causal/core"
)

// Sentinel errors for reachability queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dsep: graph is nil")

	// ErrNodeNotFound is returned when a queried or conditioned node is absent.
	// It wraps core.ErrNodeNotFound, so either sentinel matches.
	ErrNodeNotFound = fmt.Errorf("dsep: %w", core.ErrNodeNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dsep: invalid option supplied")
)

// Option configures a query via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when the query runs.
type Option func(*Options)

// Options holds parameters and callbacks for one query.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued pair.
	Ctx context.Context

	// OnVisit is called for every pair (a, b) taken off the frontier,
	// meaning "b was reached coming from a".
	OnVisit func(a, b string)

	err error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, string) {},
	}
}

// WithContext sets the context used for cancellation. A nil ctx is invalid.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers a hook called for every dequeued pair.
func WithOnVisit(fn func(a, b string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// pair is an ordered frontier entry: b was reached coming from a.
type pair struct {
	a, b string
}
