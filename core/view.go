// File: view.go
// Role: Induced subgraphs.
// Determinism:
//   - Kept nodes follow the source insertion order, not the order of the request.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// Subgraph returns the graph induced by names: those nodes and every edge
// whose two ends are both kept, plus triples that lie entirely inside.
//
// The *Node values are shared with g, so node attributes written through one
// graph are visible in the other. Duplicate names are ignored.
//
// Errors:
//   - ErrNodeNotFound if a name is absent; nothing is built.
//
// Complexity: O(n + k²) for k kept nodes.
func (g *Graph) Subgraph(names ...string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, err := g.positions(names...)
	if err != nil {
		return nil, err
	}
	keep := make([]bool, len(g.nodes))
	for _, p := range ps {
		keep[p] = true
	}
	var kept []int
	for p, ok := range keep {
		if ok {
			kept = append(kept, p)
		}
	}

	out := NewGraph(WithCapacity(len(kept)))
	for _, p := range kept {
		out.index[g.nodes[p].Name] = len(out.nodes)
		out.nodes = append(out.nodes, g.nodes[p])
	}
	for a, i := range kept {
		for b, j := range kept {
			if m := g.mark(i, j); m != NoEndpoint {
				out.setMark(a, b, m)
				if a < b {
					out.numEdges++
				}
			}
		}
	}
	for k := range g.triples {
		for t := range g.triples[k] {
			if out.alongPath(t) == nil {
				out.triples[k][t] = out.generation
			}
		}
	}

	return out, nil
}
