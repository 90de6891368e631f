// File: methods_vertices.go
// Role: Node lifecycle & queries, plus the low-level matrix accessors every other file uses.
//
// Determinism:
//   - Nodes()/NodeNames() return insertion order; positions in the matrix follow it.
//
// Concurrency:
//   - Exported methods lock; helpers ending in Locked (and the matrix accessors)
//     assume the caller holds mu.

package core

import "fmt"

// minStride is the first matrix row length allocated on growth.
const minStride = 4

// AddNode appends a node with the given name.
//
// Returns ErrEmptyNodeName for "", ErrNodeExists if the name is taken (no mutation).
// Complexity: O(1) amortized; the matrix doubles its stride when full.
func (g *Graph) AddNode(name string, opts ...NodeOption) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	n := &Node{Name: name, Attributes: make(map[string]any)}
	for _, opt := range opts {
		opt(n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(n)
}

func (g *Graph) addNodeLocked(n *Node) error {
	if _, exists := g.index[n.Name]; exists {
		return fmt.Errorf("%w: %q", ErrNodeExists, n.Name)
	}
	if len(g.nodes) == g.stride {
		g.grow()
	}
	g.index[n.Name] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// grow doubles the matrix stride, copying the live block.
func (g *Graph) grow() {
	next := g.stride * 2
	if next < minStride {
		next = minStride
	}
	marks := make([]Endpoint, next*next)
	n := len(g.nodes)
	for i := 0; i < n; i++ {
		copy(marks[i*next:i*next+n], g.marks[i*g.stride:i*g.stride+n])
	}
	g.marks = marks
	g.stride = next
}

// RemoveNode deletes the node and, implicitly, every edge incident to it.
//
// The surviving rows and columns are compacted so positions stay dense, the
// name index is rebuilt, the triple generation is bumped and highlighting of
// the node's edges is dropped.
// Returns ErrNodeNotFound if name is absent.
// Complexity: O(n²).
func (g *Graph) RemoveNode(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	n := len(g.nodes)
	for j := 0; j < n; j++ {
		if g.mark(p, j) != NoEndpoint {
			g.numEdges--
		}
	}

	// Shift rows and columns after p one step up/left, in place.
	for i := 0; i < n; i++ {
		if i == p {
			continue
		}
		ri := i
		if i > p {
			ri = i - 1
		}
		for j := 0; j < n; j++ {
			if j == p {
				continue
			}
			rj := j
			if j > p {
				rj = j - 1
			}
			g.marks[ri*g.stride+rj] = g.marks[i*g.stride+j]
		}
	}
	// Clear the vacated last row and column.
	last := n - 1
	for k := 0; k < n; k++ {
		g.marks[last*g.stride+k] = NoEndpoint
		g.marks[k*g.stride+last] = NoEndpoint
	}

	g.nodes = append(g.nodes[:p], g.nodes[p+1:]...)
	g.reindex()
	g.generation++
	g.dropHighlightsLocked(func(e Edge) bool { return e.Contains(name) })

	return nil
}

// reindex rebuilds name → position after a structural change.
func (g *Graph) reindex() {
	g.index = make(map[string]int, len(g.nodes))
	for i, n := range g.nodes {
		g.index[n.Name] = i
	}
}

// Node returns the node with the given name.
// The returned *Node is live; treat it as read-only.
func (g *Graph) Node(name string) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return g.nodes[p], nil
}

// ContainsNode reports whether a node with this name exists.
func (g *Graph) ContainsNode(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[name]

	return ok
}

// Nodes returns the nodes in insertion order. The slice is a fresh copy.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeNames returns node names in insertion order.
func (g *Graph) NodeNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.namesLocked()
}

func (g *Graph) namesLocked() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Name
	}

	return out
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// mark returns the endpoint at node j's side of the i–j edge.
func (g *Graph) mark(i, j int) Endpoint { return g.marks[i*g.stride+j] }

func (g *Graph) setMark(i, j int, e Endpoint) { g.marks[i*g.stride+j] = e }

// positions resolves names to matrix positions.
func (g *Graph) positions(names ...string) ([]int, error) {
	out := make([]int, len(names))
	for k, name := range names {
		p, ok := g.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
		}
		out[k] = p
	}

	return out, nil
}

// pos resolves one name.
func (g *Graph) pos(name string) (int, error) {
	p, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return p, nil
}

// namesAt maps positions back to names.
func (g *Graph) namesAt(ps []int) []string {
	out := make([]string, len(ps))
	for k, p := range ps {
		out[k] = g.nodes[p].Name
	}

	return out
}
