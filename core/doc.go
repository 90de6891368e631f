// Package core provides a thread-safe, matrix-backed store for causal graphs
// whose edges carry a mark at each end.
//
// A mark (Endpoint) is one of:
//
//   - Tail   ( - )  the plain end of a directed or undirected edge
//   - Arrow  ( > )  an arrowhead
//   - Circle ( o )  undetermined: Tail in some members of the equivalence class, Arrow in others
//
// so one Graph type holds DAGs (A --> B), CPDAGs (A --- B), MAGs (A <-> B) and
// PAGs (A o-> B, A o-o B) alike.
//
// Storage:
//
//	marks[i*stride+j]  mark at node j's side of the edge between node i and node j
//	                   NoEndpoint when they are not adjacent
//
// Both cells of a pair are set or clear together; at most one edge joins any
// pair; self-loops are rejected. Positions follow insertion order, and every
// listing (Nodes, Edges, Parents, …) is returned in that order.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(name string, opts ...NodeOption) error   // O(1) amortized
//	RemoveNode(name string) error                    // O(n²): matrix compaction
//
//	// Edge lifecycle
//	AddDirectedEdge(a, b string) error               // O(1), also Undirected/Bidirected/…
//	AddEdge(e Edge) error                            // O(1)
//	RemoveEdge(a, b string) error                    // O(1)
//	SetEndpoint(from, to string, e Endpoint) error   // O(1)
//
//	// Local structure
//	Parents/Children/AdjacentNodes(name)             // O(n)
//	IsDefCollider/IsDefNoncollider(a, b, c)          // O(1)
//
//	// Transitive structure
//	Ancestors/Descendants(names...)                  // O(n²)
//	ExistsDirectedPathFromTo, ExistsSemiDirectedPathFromTo, PossibleAncestor, ExistsTrek
//
//	// Triples
//	AddAmbiguousTriple/AddUnderlineTriple/AddDottedUnderlineTriple(x, y, z)
//	Set*/Remove*/Is* and the *Triples listings
//
//	// Copying
//	Clone(), Subgraph(names...), TransferNodesAndEdges(src), Equal(other)
//
// Triples must lie along a path (x–y and y–z adjacent) when recorded. Removing
// a node or an edge bumps a generation counter; a triple stamped with an older
// generation is re-checked on the next triple read, and also before any edge is
// added, and dropped if it no longer lies along a path. A dropped triple does
// not come back when the adjacency is restored.
//
// Errors:
//
//	ErrStructuralViolation – class of rejected mutations; the following wrap it:
//	    ErrNodeExists, ErrEdgeExists, ErrSelfLoop, ErrNotAlongPath
//	ErrOverDetermined      – the two matrix cells of a pair disagree
//	ErrUnsupported         – query this store does not answer (Sepset)
//	ErrNodeNotFound, ErrEdgeNotFound, ErrEmptyNodeName, ErrInvalidEndpoint, ErrBadEdgeNotation
//
// Concurrency: a single sync.RWMutex guards the whole store. Queries share it;
// mutations and triple reads (which may purge) take it exclusively.
package core
