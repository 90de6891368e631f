// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/sem"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildModel wraps dag in a linear SEM whose edge coefficients are drawn from
// the configured CoefficientFn, edge by edge in dag.Edges() order.
// Returns the sem error if dag is not a DAG of directed edges.
func BuildModel(dag *core.Graph, bopts ...BuilderOption) (*sem.Model, error) {
	if dag == nil {
		return nil, fmt.Errorf("BuildModel: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	m, err := sem.New(dag)
	if err != nil {
		return nil, fmt.Errorf("BuildModel: %w", err)
	}
	for _, e := range dag.Edges() {
		from, to := e.Node1, e.Node2
		if e.PointsTowards(from) {
			from, to = to, from
		}
		if err = m.SetCoefficient(from, to, cfg.coefFn(cfg.rng)); err != nil {
			return nil, fmt.Errorf("BuildModel: %w", err)
		}
	}

	return m, nil
}

// =============================================================================
// Structure factories (declarations) - implemented in impl_*.go
// =============================================================================

// Edges adds every edge written in edge notation ("X --> Y", "X o-o Y"),
// creating missing endpoints with the configured variable kind.
//func Edges(notation ...string) Constructor

// Chain builds 0 → 1 → … → n-1 (n ≥ 2).
//func Chain(n int) Constructor

// Fork builds a common cause 0 → i for i = 1..n-1 (n ≥ 3).
//func Fork(n int) Constructor

// Collider builds a common effect i → n-1 for i = 0..n-2 (n ≥ 3).
//func Collider(n int) Constructor

// RandomDAG samples a DAG over n nodes, adding i → j for i < j with probability p.
//func RandomDAG(n int, p float64) Constructor

// Reorient replaces every mark in the graph, e.g. Tail for the skeleton.
//func Reorient(e core.Endpoint) Constructor
