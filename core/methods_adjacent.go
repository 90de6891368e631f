// File: methods_adjacent.go
// Role: Neighborhood queries (parents, children, adjacency, degrees) and local
//       path-shape predicates (definite collider / non-collider).
// Determinism:
//   - All node lists come back in insertion order.
// Concurrency:
//   - Read lock only.

package core

// Parents returns the nodes p with p → name.
func (g *Graph) Parents(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.pos(name)
	if err != nil {
		return nil, err
	}

	return g.namesAt(g.parentsAt(p)), nil
}

// Children returns the nodes c with name → c.
func (g *Graph) Children(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.pos(name)
	if err != nil {
		return nil, err
	}

	return g.namesAt(g.childrenAt(p)), nil
}

// AdjacentNodes returns every node sharing an edge with name.
func (g *Graph) AdjacentNodes(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.pos(name)
	if err != nil {
		return nil, err
	}

	return g.namesAt(g.adjacentAt(p)), nil
}

// parentsAt: i → p means Tail at i and Arrow at p.
func (g *Graph) parentsAt(p int) []int {
	var out []int
	for i := range g.nodes {
		if g.mark(p, i) == Tail && g.mark(i, p) == Arrow {
			out = append(out, i)
		}
	}

	return out
}

// childrenAt: p → j means Tail at p and Arrow at j.
func (g *Graph) childrenAt(p int) []int {
	var out []int
	for j := range g.nodes {
		if g.mark(j, p) == Tail && g.mark(p, j) == Arrow {
			out = append(out, j)
		}
	}

	return out
}

func (g *Graph) adjacentAt(p int) []int {
	var out []int
	for i := range g.nodes {
		if g.mark(i, p) != NoEndpoint {
			out = append(out, i)
		}
	}

	return out
}

// IsAdjacentTo reports whether a and b share an edge. Unknown names ⇒ false.
func (g *Graph) IsAdjacentTo(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}

	return g.mark(ps[0], ps[1]) != NoEndpoint
}

// IsParentOf reports whether a → b.
func (g *Graph) IsParentOf(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}

	return g.directedAt(ps[0], ps[1])
}

// IsChildOf reports whether b → a.
func (g *Graph) IsChildOf(a, b string) bool { return g.IsParentOf(b, a) }

// IsDirectedFromTo reports whether the a–b edge is a → b.
func (g *Graph) IsDirectedFromTo(a, b string) bool { return g.IsParentOf(a, b) }

// IsUndirectedFromTo reports whether the a–b edge is a --- b.
func (g *Graph) IsUndirectedFromTo(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}

	return g.mark(ps[0], ps[1]) == Tail && g.mark(ps[1], ps[0]) == Tail
}

func (g *Graph) directedAt(i, j int) bool {
	return g.mark(j, i) == Tail && g.mark(i, j) == Arrow
}

// Indegree returns the number of parents.
func (g *Graph) Indegree(name string) (int, error) {
	ps, err := g.Parents(name)

	return len(ps), err
}

// Outdegree returns the number of children.
func (g *Graph) Outdegree(name string) (int, error) {
	cs, err := g.Children(name)

	return len(cs), err
}

// Degree returns the number of edges incident to name, whatever their marks.
func (g *Graph) Degree(name string) (int, error) {
	adj, err := g.AdjacentNodes(name)

	return len(adj), err
}

// Connectivity returns the maximum Degree over all nodes (0 for an empty graph).
// Complexity: O(n²).
func (g *Graph) Connectivity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connectivityLocked()
}

func (g *Graph) connectivityLocked() int {
	best := 0
	for p := range g.nodes {
		if d := len(g.adjacentAt(p)); d > best {
			best = d
		}
	}

	return best
}

// IsExogenous reports whether name has no parents.
func (g *Graph) IsExogenous(name string) (bool, error) {
	in, err := g.Indegree(name)

	return in == 0, err
}

// NodesInTo returns the neighbors whose edge to name carries mark e at name.
func (g *Graph) NodesInTo(name string, e Endpoint) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.pos(name)
	if err != nil {
		return nil, err
	}
	var out []int
	for i := range g.nodes {
		if m := g.mark(i, p); m != NoEndpoint && m == e {
			out = append(out, i)
		}
	}

	return g.namesAt(out), nil
}

// NodesOutTo returns the neighbors whose edge to name carries mark e at the neighbor.
func (g *Graph) NodesOutTo(name string, e Endpoint) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.pos(name)
	if err != nil {
		return nil, err
	}
	var out []int
	for j := range g.nodes {
		if m := g.mark(p, j); m != NoEndpoint && m == e {
			out = append(out, j)
		}
	}

	return g.namesAt(out), nil
}

// IsDefCollider reports whether a *→ b ←* c: both marks at b are arrows.
// False when a–b or b–c is missing.
func (g *Graph) IsDefCollider(a, b, c string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b, c)
	if err != nil {
		return false
	}

	return g.colliderAt(ps[0], ps[1], ps[2])
}

func (g *Graph) colliderAt(a, b, c int) bool {
	return g.mark(a, b) == Arrow && g.mark(c, b) == Arrow
}

// IsDefNoncollider reports whether b is a non-collider on a–b–c in every
// member of the equivalence class: b → a, or b → c, or a *-o b o-* c with a
// and c not adjacent.
func (g *Graph) IsDefNoncollider(a, b, c string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b, c)
	if err != nil {
		return false
	}

	return g.noncolliderAt(ps[0], ps[1], ps[2])
}

func (g *Graph) noncolliderAt(a, b, c int) bool {
	if g.mark(a, b) == NoEndpoint || g.mark(c, b) == NoEndpoint {
		return false
	}
	if g.pointsAwayAt(b, a) || g.pointsAwayAt(b, c) {
		return true
	}

	return g.mark(a, b) == Circle && g.mark(c, b) == Circle && g.mark(a, c) == NoEndpoint
}

// pointsAwayAt reports whether the b–x edge points towards x: arrow at x,
// tail or circle at b.
func (g *Graph) pointsAwayAt(b, x int) bool {
	at := g.mark(x, b)

	return g.mark(b, x) == Arrow && (at == Tail || at == Circle)
}
