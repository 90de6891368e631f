// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: Stats, String, graph attributes and edge highlighting.
// Policy:
//   - No algorithms here; presentation metadata never affects reachability or estimation.

package core

import (
	"maps"
	"strconv"
	"strings"
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Nodes        int
	Edges        int
	Directed     int // tail–arrow edges
	Undirected   int
	Bidirected   int
	WithCircles  int // edges carrying at least one circle mark
	Connectivity int
}

// Stats returns a snapshot summary.
//
// Implementation:
//   - Stage 1: Acquire the read lock once.
//   - Stage 2: Walk the upper triangle of the matrix and classify each edge.
//
// Complexity: O(n²).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{Nodes: len(g.nodes), Edges: g.numEdges, Connectivity: g.connectivityLocked()}
	for _, e := range g.edgesLocked() {
		switch {
		case e.IsDirected():
			s.Directed++
		case e.IsUndirected():
			s.Undirected++
		case e.IsBidirected():
			s.Bidirected++
		}
		if e.Endpoint1 == Circle || e.Endpoint2 == Circle {
			s.WithCircles++
		}
	}

	return s
}

// String renders the node list followed by numbered edges:
//
//	Graph Nodes:
//	X;Y;Z
//
//	Graph Edges:
//	1. X --> Y
//	2. Y <-> Z
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Graph Nodes:\n")
	b.WriteString(strings.Join(g.namesLocked(), ";"))
	b.WriteString("\n\nGraph Edges:\n")
	for k, e := range g.edgesLocked() {
		b.WriteString(strconv.Itoa(k + 1))
		b.WriteString(". ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// SetAttribute stores value under key in the graph attribute bag.
func (g *Graph) SetAttribute(key string, value any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attributes[key] = value
}

// Attribute returns the value under key and whether it was set.
func (g *Graph) Attribute(key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.attributes[key]

	return v, ok
}

// RemoveAttribute deletes key; absent keys are ignored.
func (g *Graph) RemoveAttribute(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.attributes, key)
}

// Attributes returns a copy of the attribute bag.
func (g *Graph) Attributes() map[string]any {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return maps.Clone(g.attributes)
}

// SetHighlighted flags or unflags e for presentation. The pair need not be
// adjacent; the flag is keyed by the edge value, written either way round.
// Removing the pair's edge or either node drops the flag, and so does Clear.
func (g *Graph) SetHighlighted(e Edge, on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if on {
		g.highlighted[e.canonical()] = struct{}{}
		return
	}
	delete(g.highlighted, e.canonical())
}

// IsHighlighted reports whether e was flagged by SetHighlighted.
func (g *Graph) IsHighlighted(e Edge) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.highlighted[e.canonical()]

	return ok
}

func (g *Graph) dropHighlightsLocked(drop func(Edge) bool) {
	maps.DeleteFunc(g.highlighted, func(e Edge, _ struct{}) bool { return drop(e) })
}
