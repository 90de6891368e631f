// File: methods_edges.go
// Role: Edge lifecycle & queries: Add*Edge/RemoveEdge/SetEndpoint/Edge/Edges/EdgesOf.
// Determinism:
//   - Edges() lists pairs by (position of Node1, position of Node2), Node1 first in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
// Invariant:
//   - At most one edge per unordered pair; both matrix cells of a pair are set or clear together.

package core

import "fmt"

// AddDirectedEdge adds a → b.
// Returns ErrEdgeExists (no mutation) if a and b are already adjacent.
func (g *Graph) AddDirectedEdge(a, b string) error { return g.AddEdge(DirectedEdge(a, b)) }

// AddUndirectedEdge adds a --- b.
func (g *Graph) AddUndirectedEdge(a, b string) error { return g.AddEdge(UndirectedEdge(a, b)) }

// AddBidirectedEdge adds a <-> b.
func (g *Graph) AddBidirectedEdge(a, b string) error { return g.AddEdge(BidirectedEdge(a, b)) }

// AddPartiallyOrientedEdge adds a o-> b.
func (g *Graph) AddPartiallyOrientedEdge(a, b string) error {
	return g.AddEdge(PartiallyOrientedEdge(a, b))
}

// AddNondirectedEdge adds a o-o b.
func (g *Graph) AddNondirectedEdge(a, b string) error { return g.AddEdge(NondirectedEdge(a, b)) }

// AddEdge stores e.
//
// Errors:
//   - ErrNodeNotFound if either end is missing.
//   - ErrSelfLoop if both ends are the same node.
//   - ErrInvalidEndpoint if a mark is NoEndpoint or out of range.
//   - ErrEdgeExists if the pair is already adjacent; the graph is left unchanged.
//
// Complexity: O(1), plus one pass over stale triples after a removal.
func (g *Graph) AddEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(e)
}

func (g *Graph) addEdgeLocked(e Edge) error {
	if !e.Endpoint1.Valid() || !e.Endpoint2.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidEndpoint, e)
	}
	if e.Node1 == e.Node2 {
		return fmt.Errorf("%w: %q", ErrSelfLoop, e.Node1)
	}
	ps, err := g.positions(e.Node1, e.Node2)
	if err != nil {
		return err
	}
	i, j := ps[0], ps[1]
	if g.mark(i, j) != NoEndpoint || g.mark(j, i) != NoEndpoint {
		return fmt.Errorf("%w: %s–%s", ErrEdgeExists, e.Node1, e.Node2)
	}
	g.purgeLocked()
	g.setMark(j, i, e.Endpoint1)
	g.setMark(i, j, e.Endpoint2)
	g.numEdges++

	return nil
}

// RemoveEdge deletes the edge between a and b.
//
// Returns ErrEdgeNotFound if they are not adjacent, and ErrOverDetermined if
// only one of the two matrix cells is set (a broken invariant, never a
// normal outcome). Bumps the triple generation.
func (g *Graph) RemoveEdge(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return err
	}
	i, j := ps[0], ps[1]
	if err = g.pairState(i, j); err != nil {
		return err
	}
	g.setMark(i, j, NoEndpoint)
	g.setMark(j, i, NoEndpoint)
	g.numEdges--
	g.generation++
	g.dropHighlightsLocked(func(e Edge) bool { return e.Contains(a) && e.Contains(b) })

	return nil
}

// pairState returns nil if exactly one edge joins i and j, ErrEdgeNotFound if
// none does, ErrOverDetermined if the cells disagree.
func (g *Graph) pairState(i, j int) error {
	m1, m2 := g.mark(i, j), g.mark(j, i)
	switch {
	case m1 == NoEndpoint && m2 == NoEndpoint:
		return fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, g.nodes[i].Name, g.nodes[j].Name)
	case m1 == NoEndpoint || m2 == NoEndpoint:
		return fmt.Errorf("%w: %s–%s", ErrOverDetermined, g.nodes[i].Name, g.nodes[j].Name)
	}

	return nil
}

// SetEndpoint sets the mark at `to` on the from–to edge.
//
// With no edge present, it creates from –(Tail … e)– to. With one edge present,
// only the mark at `to` changes; the mark at `from` is kept.
// Returns ErrInvalidEndpoint for NoEndpoint, ErrOverDetermined if the pair is inconsistent.
func (g *Graph) SetEndpoint(from, to string, e Endpoint) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEndpoint, e)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ps, err := g.positions(from, to)
	if err != nil {
		return err
	}
	i, j := ps[0], ps[1]
	if i == j {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	m1, m2 := g.mark(i, j), g.mark(j, i)
	switch {
	case m1 == NoEndpoint && m2 == NoEndpoint:
		return g.addEdgeLocked(NewEdge(from, to, Tail, e))
	case m1 == NoEndpoint || m2 == NoEndpoint:
		return fmt.Errorf("%w: %s–%s", ErrOverDetermined, from, to)
	}
	g.setMark(i, j, e)

	return nil
}

// Endpoint returns the mark at `to` on the from–to edge.
// Returns ErrEdgeNotFound if the nodes are not adjacent.
func (g *Graph) Endpoint(from, to string) (Endpoint, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(from, to)
	if err != nil {
		return NoEndpoint, err
	}
	e := g.mark(ps[0], ps[1])
	if e == NoEndpoint {
		return NoEndpoint, fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, from, to)
	}

	return e, nil
}

// Edge returns the edge between a and b written from a's side (Node1 == a).
func (g *Graph) Edge(a, b string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return Edge{}, err
	}
	if err = g.pairState(ps[0], ps[1]); err != nil {
		return Edge{}, err
	}

	return g.edgeAt(ps[0], ps[1]), nil
}

// edgeAt builds the edge i–j from the matrix; the caller checked adjacency.
func (g *Graph) edgeAt(i, j int) Edge {
	return Edge{
		Node1:     g.nodes[i].Name,
		Node2:     g.nodes[j].Name,
		Endpoint1: g.mark(j, i),
		Endpoint2: g.mark(i, j),
	}
}

// ContainsEdge reports whether an edge Equal to e is stored (same pair, same marks).
func (g *Graph) ContainsEdge(e Edge) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(e.Node1, e.Node2)
	if err != nil || ps[0] == ps[1] {
		return false
	}

	return g.mark(ps[1], ps[0]) == e.Endpoint1 && g.mark(ps[0], ps[1]) == e.Endpoint2
}

// Edges returns every edge once, Node1 preceding Node2 in insertion order.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, g.numEdges)
	n := len(g.nodes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.mark(i, j) != NoEndpoint {
				out = append(out, g.edgeAt(i, j))
			}
		}
	}

	return out
}

// EdgesOf returns the edges incident to name, each written from name's side.
func (g *Graph) EdgesOf(name string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.pos(name)
	if err != nil {
		return nil, err
	}
	var out []Edge
	for j := range g.nodes {
		if g.mark(p, j) != NoEndpoint {
			out = append(out, g.edgeAt(p, j))
		}
	}

	return out, nil
}

// NumEdges returns the number of edges. Complexity: O(1).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// EndpointMatrix returns an n×n copy where [i][j] is the mark at node j on
// the edge between node i and node j (NoEndpoint when absent), rows in
// insertion order.
func (g *Graph) EndpointMatrix() [][]Endpoint {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	out := make([][]Endpoint, n)
	for i := 0; i < n; i++ {
		out[i] = make([]Endpoint, n)
		copy(out[i], g.marks[i*g.stride:i*g.stride+n])
	}

	return out
}

// ReorientAllWith replaces every mark of every existing edge with e.
func (g *Graph) ReorientAllWith(e Endpoint) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEndpoint, e)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.nodes)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.mark(i, j) != NoEndpoint {
				g.setMark(i, j, e)
			}
		}
	}

	return nil
}

// FullyConnect joins every pair of distinct nodes with an e…e edge,
// overwriting any edge already present.
func (g *Graph) FullyConnect(e Endpoint) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEndpoint, e)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeLocked()
	n := len(g.nodes)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.setMark(i, j, e)
			}
		}
	}
	g.numEdges = n * (n - 1) / 2

	return nil
}

// Clear removes every edge and its highlighting; nodes and attributes stay.
// Triples go stale with the edges.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for k := range g.marks {
		g.marks[k] = NoEndpoint
	}
	g.numEdges = 0
	g.generation++
	clear(g.highlighted)
}
