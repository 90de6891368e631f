// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil graph or constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadDocument indicates a graph document that fails validation.
var ErrBadDocument = errors.New("builder: invalid graph document")

// builderErrorf prefixes an error with the constructor name. The format may
// use %w to keep the wrapped sentinel reachable.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
