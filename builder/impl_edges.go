// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// impl_edges.go - Edges(notation...) and Reorient(e) constructors.

package builder

import (
	"github.com/katalvlaran/causal/core"
)

// Edges returns a Constructor that parses every item as edge notation and
// adds it, creating missing endpoints with cfg.kind. All items are parsed
// before the graph is touched.
func Edges(notation ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		edges := make([]core.Edge, len(notation))
		for i, text := range notation {
			e, err := core.ParseEdge(text)
			if err != nil {
				return builderErrorf(MethodEdges, "item %d: %w", i, err)
			}
			edges[i] = e
		}
		for _, e := range edges {
			for _, name := range []string{e.Node1, e.Node2} {
				if g.ContainsNode(name) {
					continue
				}
				if err := g.AddNode(name, core.WithKind(cfg.kind)); err != nil {
					return builderErrorf(MethodEdges, "AddNode(%s): %w", name, err)
				}
			}
			if err := g.AddEdge(e); err != nil {
				return builderErrorf(MethodEdges, "AddEdge(%s): %w", e, err)
			}
		}

		return nil
	}
}

// Reorient returns a Constructor that sets every mark of every edge to e.
// Reorient(core.Tail) yields the skeleton.
func Reorient(e core.Endpoint) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.ReorientAllWith(e); err != nil {
			return builderErrorf(MethodReorient, "%w", err)
		}

		return nil
	}
}
