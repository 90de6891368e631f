// Package dsep answers d-separation queries over a core.Graph.
//
// The search walks ordered pairs (a, b) ("b reached from a") breadth-first,
// because whether a path may continue through b depends on the direction it
// arrived from.
package dsep

import (
	"fmt"

	"github.com/katalvlaran/causal/core"
)

// walker encapsulates the mutable state of one d-connection search.
type walker struct {
	graph   *core.Graph
	opts    Options
	cond    map[string]bool // Z
	anc     map[string]bool // Z plus all ancestors of Z
	targets map[string]bool
	queue   []pair
	visited map[pair]bool
}

// IsDConnected reports whether x and y are d-connected given z: some path
// joins them on which every collider is in z or has a descendant in z, and
// no non-collider is in z. A node is always d-connected to itself.
//
// Returns ErrGraphNil, ErrNodeNotFound, ErrOptionViolation, or the context
// error when the search is cancelled.
func IsDConnected(g *core.Graph, x, y string, z []string, opts ...Option) (bool, error) {
	return IsDConnectedSets(g, []string{x}, []string{y}, z, opts...)
}

// IsDSeparated is the negation of IsDConnected. On error it returns false.
func IsDSeparated(g *core.Graph, x, y string, z []string, opts ...Option) (bool, error) {
	ok, err := IsDConnected(g, x, y, z, opts...)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// IsDConnectedSets reports whether some x ∈ xs is d-connected to some y ∈ ys
// given z. It agrees with asking IsDConnected for every (x, y) pair, but runs
// a single search.
func IsDConnectedSets(g *core.Graph, xs, ys, z []string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	for _, names := range [][]string{xs, ys, z} {
		if err = checkNodes(g, names); err != nil {
			return false, err
		}
	}
	anc, err := g.Ancestors(z...)
	if err != nil {
		return false, err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		cond:    setOf(z),
		anc:     setOf(anc),
		targets: setOf(ys),
		visited: make(map[pair]bool),
	}

	return w.run(xs)
}

// IsDSeparatedSets is the negation of IsDConnectedSets. On error it returns false.
func IsDSeparatedSets(g *core.Graph, xs, ys, z []string, opts ...Option) (bool, error) {
	ok, err := IsDConnectedSets(g, xs, ys, z, opts...)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// AncestorClosure returns z together with every ancestor of a node in z,
// in graph order.
func AncestorClosure(g *core.Graph, z []string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := checkNodes(g, z); err != nil {
		return nil, err
	}

	return g.Ancestors(z...)
}

// run seeds the frontier with every edge leaving a source and expands it
// until a target is reached or no unvisited legal pair remains.
func (w *walker) run(sources []string) (bool, error) {
	for _, x := range sources {
		if w.targets[x] {
			return true, nil
		}
		adj, err := w.graph.AdjacentNodes(x)
		if err != nil {
			return false, err
		}
		for _, nb := range adj {
			if w.targets[nb] {
				return true, nil
			}
			w.enqueue(pair{a: x, b: nb})
		}
	}

	for len(w.queue) > 0 {
		// cancellation check (once per pair)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		p := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(p.a, p.b)

		adj, err := w.graph.AdjacentNodes(p.b)
		if err != nil {
			return false, err
		}
		for _, c := range adj {
			if c == p.a || !w.passes(p.a, p.b, c) {
				continue
			}
			if w.targets[c] {
				return true, nil
			}
			w.enqueue(pair{a: p.b, b: c})
		}
	}

	return false, nil
}

// passes reports whether a path a – b – c may continue through b:
// a collider must be in the ancestor closure of Z, a non-collider must not be in Z.
func (w *walker) passes(a, b, c string) bool {
	if w.graph.IsDefCollider(a, b, c) {
		return w.anc[b]
	}

	return !w.cond[b]
}

func (w *walker) enqueue(p pair) {
	if w.visited[p] {
		return
	}
	w.visited[p] = true
	w.queue = append(w.queue, p)
}

func checkNodes(g *core.Graph, names []string) error {
	for _, n := range names {
		if !g.ContainsNode(n) {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, n)
		}
	}

	return nil
}

func setOf(names []string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}

	return s
}
