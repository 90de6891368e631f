// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn   = DefaultIDFn        ("0","1","2",...)
//   - rng    = nil                (pure/deterministic unless seeded)
//   - coefFn = DefaultCoefficientFn (constant 1)
//   - kind   = core.Continuous

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/causal/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node name strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Coefficient generator used by BuildModel.
	coefFn CoefficientFn
	// Kind given to every node a constructor creates.
	kind core.VariableKind
}

// newBuilderConfig applies all options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		coefFn: DefaultCoefficientFn,
		kind:   core.Continuous,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNodes inserts n nodes named by cfg.idFn in index order.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id, core.WithKind(cfg.kind)); err != nil {
			return builderErrorf(method, "AddNode(%s): %w", id, err)
		}
	}

	return nil
}
