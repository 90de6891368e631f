// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Endpoint/VariableKind enums, Node, Triple, Graph, options, sentinel errors, NewGraph.
// Concurrency:
//   - Graph is guarded by a single sync.RWMutex (mu). Readers share, writers are serialized.
//   - Triple reads may purge stale entries and therefore take the write lock.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// ErrStructuralViolation is the class of recoverable failures caused by an
// attempted mutation that would break a structural invariant of the store.
var ErrStructuralViolation = errors.New("core: structural violation")

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that the provided node name is empty.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a pair of nodes with no edge between them.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEndpoint indicates an endpoint value outside {Tail, Arrow, Circle}.
	ErrInvalidEndpoint = errors.New("core: invalid endpoint")

	// ErrNodeExists indicates a node with the same name is already present.
	ErrNodeExists = fmt.Errorf("%w: node already exists", ErrStructuralViolation)

	// ErrEdgeExists indicates an edge between the pair is already present.
	ErrEdgeExists = fmt.Errorf("%w: edge already exists", ErrStructuralViolation)

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	ErrSelfLoop = fmt.Errorf("%w: self-loop not allowed", ErrStructuralViolation)

	// ErrNotAlongPath indicates a triple whose X–Y or Y–Z pair is not adjacent.
	ErrNotAlongPath = fmt.Errorf("%w: triple does not lie along a path", ErrStructuralViolation)

	// ErrOverDetermined indicates the two matrix cells of a pair disagree about
	// whether an edge exists. The representation cannot reach this state through
	// its public API; observing it means an internal invariant is broken.
	ErrOverDetermined = errors.New("core: over-determined edge between pair")

	// ErrUnsupported indicates a query this representation does not answer.
	ErrUnsupported = errors.New("core: unsupported query")
)

// Endpoint is the mark at one end of an edge.
type Endpoint uint8

const (
	// NoEndpoint marks an absent edge; it never appears on a stored edge.
	NoEndpoint Endpoint = iota
	// Tail is the plain end of a directed or undirected edge.
	Tail
	// Arrow is the head of an arrow.
	Arrow
	// Circle is an uncertain mark (either Tail or Arrow in some member of the class).
	Circle
)

// Valid reports whether e can be stored on an edge.
func (e Endpoint) Valid() bool { return e == Tail || e == Arrow || e == Circle }

// String returns "-", ">", "o" or "" for NoEndpoint.
func (e Endpoint) String() string {
	switch e {
	case Tail:
		return "-"
	case Arrow:
		return ">"
	case Circle:
		return "o"
	default:
		return ""
	}
}

// VariableKind classifies the variable a node stands for.
type VariableKind uint8

const (
	Continuous VariableKind = iota
	Discrete
	Latent
)

func (k VariableKind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case Latent:
		return "latent"
	default:
		return "continuous"
	}
}

// ParseVariableKind maps "continuous", "discrete", "latent" (or "") to a VariableKind.
func ParseVariableKind(s string) (VariableKind, error) {
	switch s {
	case "", "continuous":
		return Continuous, nil
	case "discrete":
		return Discrete, nil
	case "latent":
		return Latent, nil
	}

	return Continuous, fmt.Errorf("core: unknown variable kind %q", s)
}

// Node is a named variable of the graph.
//
// Name is unique within one Graph and is the node's identity there.
// Attributes holds per-node annotation state; it is shared by Subgraph views
// and dropped by TransferNodesAndEdges.
type Node struct {
	Name       string
	Kind       VariableKind
	Attributes map[string]any
}

// NodeOption configures a Node when it is added.
type NodeOption func(*Node)

// WithKind sets the variable kind of the node.
func WithKind(kind VariableKind) NodeOption {
	return func(n *Node) { n.Kind = kind }
}

// WithNodeAttribute stores a single annotation on the node.
func WithNodeAttribute(key string, value any) NodeOption {
	return func(n *Node) { n.Attributes[key] = value }
}

// Triple is an ordered (X, Y, Z) of node names with Y in the middle.
type Triple struct {
	X, Y, Z string
}

func (t Triple) String() string { return "<" + t.X + ", " + t.Y + ", " + t.Z + ">" }

// tripleKind selects one of the three triple sets.
type tripleKind uint8

const (
	ambiguousTriples tripleKind = iota
	underlineTriples
	dottedUnderlineTriples
	numTripleKinds
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates the endpoint matrix for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > g.stride {
			g.stride = n
		}
	}
}

// Graph is the endpoint-matrix causal graph store.
//
// marks is a flat stride×stride matrix indexed by node position:
// marks[i*stride+j] is the mark at node j's side of the edge between node i
// and node j, NoEndpoint when they are not adjacent. Both cells of a pair are
// either set or clear together.
//
// Triples remember the generation at which they were last validated; every
// node or edge removal bumps generation so stale triples are re-checked on
// the next read or edge insertion.
type Graph struct {
	mu sync.RWMutex

	nodes    []*Node        // insertion order, position == index
	index    map[string]int // name → position
	stride   int            // row length of marks
	marks    []Endpoint
	numEdges int

	generation uint64
	validated  uint64 // generation of the last purge
	triples    [numTripleKinds]map[Triple]uint64

	highlighted map[Edge]struct{} // keyed by canonical form
	attributes  map[string]any
}

// NewGraph creates an empty Graph.
// Complexity: O(c²) for a capacity hint c, O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:       make(map[string]int),
		highlighted: make(map[Edge]struct{}),
		attributes:  make(map[string]any),
	}
	for k := range g.triples {
		g.triples[k] = make(map[Triple]uint64)
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.stride > 0 {
		g.marks = make([]Endpoint, g.stride*g.stride)
	}

	return g
}
