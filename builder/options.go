// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (nil funcs).
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/causal/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node naming scheme: idx -> name. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed RNG with the given seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithCoefficientFn overrides the edge-coefficient generator used by
// BuildModel. The function receives the (possibly nil) RNG. Panics on nil.
func WithCoefficientFn(fn CoefficientFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCoefficientFn(nil)")
	}
	return func(c *builderConfig) {
		c.coefFn = fn
	}
}

// WithNodeKind sets the kind of every node the constructors create.
func WithNodeKind(kind core.VariableKind) BuilderOption {
	return func(c *builderConfig) {
		c.kind = kind
	}
}
