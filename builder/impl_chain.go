// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// impl_chain.go - the three elementary causal structures.
//
// Contract:
//   - Nodes are added via cfg.idFn in ascending index order (0..n-1).
//   - Edges are directed and emitted in increasing index order.
//   - Parameters are validated before any node is added.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"github.com/katalvlaran/causal/core"
)

// Chain returns a Constructor for 0 → 1 → … → n-1.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodChain, n, MinChainNodes); err != nil {
			return err
		}
		if err := addNodes(MethodChain, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddDirectedEdge(u, v); err != nil {
				return builderErrorf(MethodChain, "AddDirectedEdge(%s→%s): %w", u, v, err)
			}
		}

		return nil
	}
}

// Fork returns a Constructor for the common cause 0 → i, i = 1..n-1.
func Fork(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodFork, n, MinForkNodes); err != nil {
			return err
		}
		if err := addNodes(MethodFork, g, cfg, n); err != nil {
			return err
		}
		root := cfg.idFn(0)
		for i := 1; i < n; i++ {
			v := cfg.idFn(i)
			if err := g.AddDirectedEdge(root, v); err != nil {
				return builderErrorf(MethodFork, "AddDirectedEdge(%s→%s): %w", root, v, err)
			}
		}

		return nil
	}
}

// Collider returns a Constructor for the common effect i → n-1, i = 0..n-2.
func Collider(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCollider, n, MinColliderNodes); err != nil {
			return err
		}
		if err := addNodes(MethodCollider, g, cfg, n); err != nil {
			return err
		}
		sink := cfg.idFn(n - 1)
		for i := 0; i < n-1; i++ {
			u := cfg.idFn(i)
			if err := g.AddDirectedEdge(u, sink); err != nil {
				return builderErrorf(MethodCollider, "AddDirectedEdge(%s→%s): %w", u, sink, err)
			}
		}

		return nil
	}
}
