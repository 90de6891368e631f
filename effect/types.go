// Package effect provides tunable options and error definitions for the
// IDA-style effect-bound estimator.
package effect

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/causal/core"
)

// Sentinel errors for effect estimation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("effect: graph is nil")

	// ErrRegressorNil is returned if a nil regressor is passed to New.
	ErrRegressorNil = errors.New("effect: regressor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("effect: invalid option supplied")

	// ErrNodeNotFound wraps core.ErrNodeNotFound for unknown x or y.
	ErrNodeNotFound = fmt.Errorf("effect: %w", core.ErrNodeNotFound)

	// ErrTooManySiblings is returned when x has more siblings than the
	// configured cap, since the candidate count is 2^siblings.
	ErrTooManySiblings = errors.New("effect: too many siblings")

	// ErrTargetInRegressors is returned by TrueEffect when y is x or one of
	// x's parents in the reference DAG.
	ErrTargetInRegressors = errors.New("effect: target is among the regressors")

	// ErrCoefficientCount is returned when a regression result does not carry
	// one coefficient per regressor (plus the intercept, if fitted).
	ErrCoefficientCount = errors.New("effect: unexpected coefficient count")
)

// Option configures an Estimator. An invalid Option is recorded and
// surfaced as ErrOptionViolation by New.
type Option func(*Estimator)

// WithMaxSiblings caps the number of siblings a node may have. 0 disables
// the cap; negative values are invalid.
func WithMaxSiblings(n int) Option {
	return func(e *Estimator) {
		if n < 0 {
			e.err = fmt.Errorf("%w: MaxSiblings cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		e.maxSiblings = n
	}
}

// WithParallelism bounds how many candidate regressions run at once.
// Values below 1 are invalid.
func WithParallelism(n int) Option {
	return func(e *Estimator) {
		if n < 1 {
			e.err = fmt.Errorf("%w: Parallelism must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		e.parallelism = n
	}
}

// WithLogger sets the logger used for debug records about skipped
// candidates. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NodeEffect pairs a variable with its minimum estimated effect.
type NodeEffect struct {
	Node   string
	Effect float64
}
