// Package dfs provides depth-first algorithms on causal graphs, including
// the causal ordering (topological sort over directed edges).
//
// TopologicalSort computes a linear ordering of nodes such that for every
// directed edge u→v, u appears before v. Only tail–arrow edges constrain
// the order. If the directed part contains a cycle, ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(V²) on the endpoint matrix (one Children scan per vertex)
//   - Memory: O(V)  (recursion stack and state map)
package dfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/causal/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options
	state map[string]int // visitation state: White, Gray, Black
	stack []string       // current Gray path, for cycle reporting
	order []string       // recorded post-order sequence
}

// TopologicalSort returns a causal ordering of all nodes of g: every parent
// precedes its children. Ties follow insertion order, so the result is
// deterministic.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrCycleDetected, wrapped with the offending cycle ("A → B → A").
//   - ErrNotDirected under WithStrictEdges.
//   - the context error when cancelled.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if opts.strict {
		for _, e := range g.Edges() {
			if !e.IsDirected() {
				return nil, fmt.Errorf("%w: %s", ErrNotDirected, e)
			}
		}
	}
	// 3. Initialize sorter state
	nodes := g.NodeNames()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	// 4. Drive DFS from every unvisited node, last to first, so that after
	//    reversal unconstrained nodes keep insertion order.
	for i := len(nodes) - 1; i >= 0; i-- {
		if sorter.state[nodes[i]] == White {
			if err := sorter.visit(nodes[i]); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Back-edge to a Gray node closes a cycle
	if t.state[id] == Gray {
		return t.cycleError(id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	// 3. Explore children last to first (mirrors the outer loop)
	children, err := t.graph.Children(id)
	if err != nil {
		return err
	}
	for i := len(children) - 1; i >= 0; i-- {
		if err = t.visit(children[i]); err != nil {
			return err
		}
	}

	// 4. Mark as fully explored and record in post-order
	t.state[id] = Black
	t.stack = t.stack[:len(t.stack)-1]
	t.order = append(t.order, id)

	return nil
}

// cycleError renders the Gray path from the first occurrence of id back to id.
func (t *topoSorter) cycleError(id string) error {
	start := slices.Index(t.stack, id)
	cycle := append(slices.Clone(t.stack[start:]), id)

	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(cycle, " → "))
}
