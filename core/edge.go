// File: edge.go
// Role: Edge value type: constructors, pure endpoint queries, notation and parsing.
// Determinism:
//   - Edge is a plain comparable value; no method mutates its receiver.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadEdgeNotation indicates text that is not of the form "A --> B".
var ErrBadEdgeNotation = errors.New("core: bad edge notation")

// Edge is a view over two nodes and the mark nearest each of them.
//
// Endpoint1 is the mark at Node1, Endpoint2 the mark at Node2, so the
// directed edge A→B is Edge{A, B, Tail, Arrow}. The Graph never stores Edge
// values; it derives them from its endpoint matrix on demand.
type Edge struct {
	Node1, Node2         string
	Endpoint1, Endpoint2 Endpoint
}

// NewEdge builds an edge with the given marks at node1 and node2.
func NewEdge(node1, node2 string, e1, e2 Endpoint) Edge {
	return Edge{Node1: node1, Node2: node2, Endpoint1: e1, Endpoint2: e2}
}

// DirectedEdge returns a → b.
func DirectedEdge(a, b string) Edge { return NewEdge(a, b, Tail, Arrow) }

// UndirectedEdge returns a --- b.
func UndirectedEdge(a, b string) Edge { return NewEdge(a, b, Tail, Tail) }

// BidirectedEdge returns a <-> b.
func BidirectedEdge(a, b string) Edge { return NewEdge(a, b, Arrow, Arrow) }

// PartiallyOrientedEdge returns a o-> b.
func PartiallyOrientedEdge(a, b string) Edge { return NewEdge(a, b, Circle, Arrow) }

// NondirectedEdge returns a o-o b.
func NondirectedEdge(a, b string) Edge { return NewEdge(a, b, Circle, Circle) }

// Contains reports whether node is one of the two ends.
func (e Edge) Contains(node string) bool { return node == e.Node1 || node == e.Node2 }

// ProximalEndpoint returns the mark nearest node, NoEndpoint if node is not on e.
func (e Edge) ProximalEndpoint(node string) Endpoint {
	switch node {
	case e.Node1:
		return e.Endpoint1
	case e.Node2:
		return e.Endpoint2
	}

	return NoEndpoint
}

// DistalEndpoint returns the mark at the far end from node, NoEndpoint if node is not on e.
func (e Edge) DistalEndpoint(node string) Endpoint {
	switch node {
	case e.Node1:
		return e.Endpoint2
	case e.Node2:
		return e.Endpoint1
	}

	return NoEndpoint
}

// DistalNode returns the other end of e, "" if node is not on e.
func (e Edge) DistalNode(node string) string {
	switch node {
	case e.Node1:
		return e.Node2
	case e.Node2:
		return e.Node1
	}

	return ""
}

// PointsTowards reports whether e has an arrowhead at node and a tail or
// circle at the other end.
func (e Edge) PointsTowards(node string) bool {
	if !e.Contains(node) {
		return false
	}
	distal := e.DistalEndpoint(node)

	return e.ProximalEndpoint(node) == Arrow && (distal == Tail || distal == Circle)
}

// IsDirected reports whether e is a tail at one end and an arrow at the other.
func (e Edge) IsDirected() bool {
	return (e.Endpoint1 == Tail && e.Endpoint2 == Arrow) || (e.Endpoint1 == Arrow && e.Endpoint2 == Tail)
}

// IsUndirected reports whether both marks are tails.
func (e Edge) IsUndirected() bool { return e.Endpoint1 == Tail && e.Endpoint2 == Tail }

// IsBidirected reports whether both marks are arrows.
func (e Edge) IsBidirected() bool { return e.Endpoint1 == Arrow && e.Endpoint2 == Arrow }

// IsPartiallyOriented reports whether one mark is a circle and the other an arrow.
func (e Edge) IsPartiallyOriented() bool {
	return (e.Endpoint1 == Circle && e.Endpoint2 == Arrow) || (e.Endpoint1 == Arrow && e.Endpoint2 == Circle)
}

// IsNondirected reports whether both marks are circles.
func (e Edge) IsNondirected() bool { return e.Endpoint1 == Circle && e.Endpoint2 == Circle }

// Reversed returns the same edge written from Node2's side.
func (e Edge) Reversed() Edge {
	return Edge{Node1: e.Node2, Node2: e.Node1, Endpoint1: e.Endpoint2, Endpoint2: e.Endpoint1}
}

// Equal reports whether e and o join the same unordered pair with the same
// mark at each node.
func (e Edge) Equal(o Edge) bool {
	if e.Node1 == o.Node1 && e.Node2 == o.Node2 {
		return e.Endpoint1 == o.Endpoint1 && e.Endpoint2 == o.Endpoint2
	}
	if e.Node1 == o.Node2 && e.Node2 == o.Node1 {
		return e.Endpoint1 == o.Endpoint2 && e.Endpoint2 == o.Endpoint1
	}

	return false
}

// canonical orders the pair by name so Equal edges share one map key.
func (e Edge) canonical() Edge {
	if e.Node2 < e.Node1 {
		return e.Reversed()
	}

	return e
}

// String renders e as "A --> B", "A <-> B", "A o-> B", "A o-o B", "A --- B", ….
func (e Edge) String() string {
	var b strings.Builder
	b.Grow(len(e.Node1) + len(e.Node2) + 5)
	b.WriteString(e.Node1)
	b.WriteByte(' ')
	b.WriteByte(leftMark(e.Endpoint1))
	b.WriteByte('-')
	b.WriteByte(rightMark(e.Endpoint2))
	b.WriteByte(' ')
	b.WriteString(e.Node2)

	return b.String()
}

func leftMark(e Endpoint) byte {
	switch e {
	case Arrow:
		return '<'
	case Circle:
		return 'o'
	}

	return '-'
}

func rightMark(e Endpoint) byte {
	switch e {
	case Arrow:
		return '>'
	case Circle:
		return 'o'
	}

	return '-'
}

// ParseEdge parses the notation produced by Edge.String, e.g. "X o-> Y".
func ParseEdge(text string) (Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 || len(fields[1]) != 3 || fields[1][1] != '-' {
		return Edge{}, fmt.Errorf("%w: %q", ErrBadEdgeNotation, text)
	}
	mark := fields[1]

	var e1, e2 Endpoint
	switch mark[0] {
	case '-':
		e1 = Tail
	case '<':
		e1 = Arrow
	case 'o':
		e1 = Circle
	default:
		return Edge{}, fmt.Errorf("%w: %q", ErrBadEdgeNotation, text)
	}
	switch mark[2] {
	case '-':
		e2 = Tail
	case '>':
		e2 = Arrow
	case 'o':
		e2 = Circle
	default:
		return Edge{}, fmt.Errorf("%w: %q", ErrBadEdgeNotation, text)
	}

	return NewEdge(fields[0], fields[2], e1, e2), nil
}
