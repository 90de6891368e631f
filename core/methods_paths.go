// File: methods_paths.go
// Role: Transitive queries: ancestors/descendants, directed/semi-directed/skeleton paths,
//       directed cycles and treks.
// Determinism:
//   - Closures are returned in insertion order.
// Complexity:
//   - Each reachability query is one BFS over positions, O(n²) on the dense matrix.

package core

// stepFunc reports whether a walk may move from u to its neighbor v.
type stepFunc func(g *Graph, u, v int) bool

func stepDirected(g *Graph, u, v int) bool { return g.directedAt(u, v) }

func stepReverseDirected(g *Graph, u, v int) bool { return g.directedAt(v, u) }

// stepSemiDirected allows u *-* v when the mark at u is a tail or a circle.
func stepSemiDirected(g *Graph, u, v int) bool {
	m := g.mark(v, u)

	return m == Tail || m == Circle
}

func stepAny(*Graph, int, int) bool { return true }

// reaches runs a BFS from `from` and reports whether some target is reached
// after at least one step. Visited marks make it cycle-safe.
func (g *Graph) reaches(from int, step stepFunc, target func(int) bool) bool {
	n := len(g.nodes)
	visited := make([]bool, n)
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if g.mark(u, v) == NoEndpoint || !step(g, u, v) {
				continue
			}
			if target(v) {
				return true
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}

// closure returns the seeds plus every node reachable from them by step.
func (g *Graph) closure(seeds []int, step stepFunc) []bool {
	n := len(g.nodes)
	in := make([]bool, n)
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !in[s] {
			in[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if in[v] || g.mark(u, v) == NoEndpoint || !step(g, u, v) {
				continue
			}
			in[v] = true
			queue = append(queue, v)
		}
	}

	return in
}

func (g *Graph) namesIn(set []bool) []string {
	var out []string
	for p, ok := range set {
		if ok {
			out = append(out, g.nodes[p].Name)
		}
	}

	return out
}

// Ancestors returns names together with all their ancestors.
func (g *Graph) Ancestors(names ...string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(names...)
	if err != nil {
		return nil, err
	}

	return g.namesIn(g.closure(ps, stepReverseDirected)), nil
}

// Descendants returns names together with all their descendants.
func (g *Graph) Descendants(names ...string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(names...)
	if err != nil {
		return nil, err
	}

	return g.namesIn(g.closure(ps, stepDirected)), nil
}

// ExistsDirectedPathFromTo reports whether a → … → b with at least one edge.
// With a == b this asks whether a lies on a directed cycle.
func (g *Graph) ExistsDirectedPathFromTo(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}
	to := ps[1]

	return g.reaches(ps[0], stepDirected, func(v int) bool { return v == to })
}

// ExistsUndirectedPathFromTo reports whether a and b are connected in the
// skeleton, marks ignored.
func (g *Graph) ExistsUndirectedPathFromTo(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}
	to := ps[1]

	return g.reaches(ps[0], stepAny, func(v int) bool { return v == to })
}

// ExistsSemiDirectedPathFromTo reports whether a path leaves a and reaches
// any of targets with no arrowhead pointing back towards a along the way:
// every step u *-* v has a tail or a circle at u.
func (g *Graph) ExistsSemiDirectedPathFromTo(a string, targets ...string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	from, err := g.pos(a)
	if err != nil {
		return false
	}
	ts, err := g.positions(targets...)
	if err != nil {
		return false
	}

	return g.semiDirectedAt(from, ts)
}

func (g *Graph) semiDirectedAt(from int, targets []int) bool {
	want := make([]bool, len(g.nodes))
	for _, t := range targets {
		want[t] = true
	}

	return g.reaches(from, stepSemiDirected, func(v int) bool { return want[v] })
}

// PossibleAncestor reports whether a could be an ancestor of b in some member
// of the equivalence class: a == b or a semi-directed path a ⇝ b exists.
func (g *Graph) PossibleAncestor(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}
	if ps[0] == ps[1] {
		return true
	}

	return g.semiDirectedAt(ps[0], ps[1:])
}

// IsAncestorOf reports a == b or a directed path a → … → b.
func (g *Graph) IsAncestorOf(a, b string) bool {
	return a == b && g.ContainsNode(a) || g.ExistsDirectedPathFromTo(a, b)
}

// IsProperAncestorOf reports a directed path a → … → b.
func (g *Graph) IsProperAncestorOf(a, b string) bool { return g.ExistsDirectedPathFromTo(a, b) }

// IsDescendantOf reports a == b or a directed path b → … → a.
func (g *Graph) IsDescendantOf(a, b string) bool { return g.IsAncestorOf(b, a) }

// IsProperDescendantOf reports a directed path b → … → a.
func (g *Graph) IsProperDescendantOf(a, b string) bool { return g.ExistsDirectedPathFromTo(b, a) }

// ExistsDirectedCycle checks every node for a directed path back to itself.
// Complexity: O(n³).
func (g *Graph) ExistsDirectedCycle() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for p := range g.nodes {
		self := p
		if g.reaches(p, stepDirected, func(v int) bool { return v == self }) {
			return true
		}
	}

	return false
}

// ExistsTrek reports whether some node is an ancestor of both a and b.
func (g *Graph) ExistsTrek(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(a, b)
	if err != nil {
		return false
	}
	ancA := g.closure(ps[:1], stepReverseDirected)
	ancB := g.closure(ps[1:], stepReverseDirected)
	for p := range ancA {
		if ancA[p] && ancB[p] {
			return true
		}
	}

	return false
}
