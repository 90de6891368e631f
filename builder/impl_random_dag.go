// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// impl_random_dag.go - RandomDAG(n, p) constructor.
//
// Model: the index order 0..n-1 is a topological order; each forward pair
// (i, j), i < j, becomes i → j independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism: trials run in i asc, j asc order, so a fixed seed yields a fixed DAG.

package builder

import (
	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dfs"
)

// RandomDAG returns a Constructor that samples a DAG over n nodes.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomDAG, n, MinRandomDAGNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomDAG, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomDAG, "%w", ErrNeedRandSource)
		}
		if err := addNodes(MethodRandomDAG, g, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				var keep bool
				if cfg.rng == nil {
					keep = p == MaxProbability
				} else {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				v := cfg.idFn(j)
				if err := g.AddDirectedEdge(u, v); err != nil {
					return builderErrorf(MethodRandomDAG, "AddDirectedEdge(%s→%s): %w", u, v, err)
				}
			}
		}

		// Other constructors may have run first; the result must still be acyclic.
		if _, err := dfs.TopologicalSort(g); err != nil {
			return builderErrorf(MethodRandomDAG, "%w", err)
		}

		return nil
	}
}
