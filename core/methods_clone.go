// File: methods_clone.go
// Role: Deep copy, cross-graph transfer and structural equality.
// Determinism:
//   - Clones keep node insertion order, so positions and Edges() order match the source.
// Concurrency:
//   - Sources are snapshotted under their read lock; the receiver is locked only after
//     the snapshot is taken, so g.TransferNodesAndEdges(g) cannot deadlock.

package core

import (
	"fmt"
	"maps"
)

// Clone returns a deep copy: nodes (with copied attribute maps), marks, live
// triples, highlighting and the graph attribute bag.
//
// Complexity: O(n² + T) where T is the number of stored triples.
func (g *Graph) Clone() *Graph {
	g.mu.Lock() // triples are purged before copying
	defer g.mu.Unlock()

	out := &Graph{
		nodes:       make([]*Node, len(g.nodes)),
		index:       maps.Clone(g.index),
		stride:      g.stride,
		marks:       append([]Endpoint(nil), g.marks...),
		numEdges:    g.numEdges,
		highlighted: maps.Clone(g.highlighted),
		attributes:  maps.Clone(g.attributes),
	}
	for i, n := range g.nodes {
		out.nodes[i] = &Node{Name: n.Name, Kind: n.Kind, Attributes: maps.Clone(n.Attributes)}
	}
	g.purgeLocked()
	for k := range g.triples {
		out.triples[k] = make(map[Triple]uint64, len(g.triples[k]))
		for t := range g.triples[k] {
			out.triples[k][t] = 0
		}
	}

	return out
}

// TransferNodesAndEdges copies every node and edge of src into g.
//
// Implementation:
//   - Stage 1: Snapshot src nodes and edges under its read lock.
//   - Stage 2: Under g's write lock, check that no src name is already present.
//   - Stage 3: Append the nodes (same Kind, fresh empty Attributes) and the edges.
//
// Errors:
//   - ErrNodeExists if any src node name is taken in g; g is left unchanged.
//
// Complexity: O(n_src² + n_g) amortized.
func (g *Graph) TransferNodesAndEdges(src *Graph) error {
	src.mu.RLock()
	nodes := make([]Node, len(src.nodes))
	for i, n := range src.nodes {
		nodes[i] = Node{Name: n.Name, Kind: n.Kind}
	}
	edges := src.edgesLocked()
	src.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range nodes {
		if _, taken := g.index[n.Name]; taken {
			return fmt.Errorf("%w: %q", ErrNodeExists, n.Name)
		}
	}
	for _, n := range nodes {
		if err := g.addNodeLocked(&Node{Name: n.Name, Kind: n.Kind, Attributes: make(map[string]any)}); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := g.addEdgeLocked(e); err != nil {
			return err
		}
	}

	return nil
}

// TransferAttributes copies src's graph-level attribute bag into g,
// overwriting keys present in both.
func (g *Graph) TransferAttributes(src *Graph) {
	src.mu.RLock()
	snapshot := maps.Clone(src.attributes)
	src.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	maps.Copy(g.attributes, snapshot)
}

// Equal reports whether g and other have the same node names (any order) and
// the same edges with the same marks. Triples, highlighting and attributes are
// not compared.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	g.mu.RLock()
	names := g.namesLocked()
	edges := g.edgesLocked()
	g.mu.RUnlock()

	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(names) != len(other.nodes) || len(edges) != other.numEdges {
		return false
	}
	for _, name := range names {
		if _, ok := other.index[name]; !ok {
			return false
		}
	}
	for _, e := range edges {
		i, j := other.index[e.Node1], other.index[e.Node2]
		if other.mark(j, i) != e.Endpoint1 || other.mark(i, j) != e.Endpoint2 {
			return false
		}
	}

	return true
}
