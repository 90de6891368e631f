// File: methods_triples.go
// Role: Ambiguous / underline / dotted-underline triple bookkeeping with
//       generation-based lazy re-validation.
// Concurrency:
//   - Every read may drop stale triples, so reads take the write lock.
// Invariant:
//   - A stored triple whose generation equals g.generation lies along a path.
//   - No stale triple survives an operation that makes a pair adjacent.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddAmbiguousTriple records <x, y, z> as ambiguous.
// Returns ErrNotAlongPath unless x–y and y–z are both edges.
func (g *Graph) AddAmbiguousTriple(x, y, z string) error {
	return g.addTriple(ambiguousTriples, Triple{X: x, Y: y, Z: z})
}

// AddUnderlineTriple records <x, y, z> as underlined (definite non-collider).
func (g *Graph) AddUnderlineTriple(x, y, z string) error {
	return g.addTriple(underlineTriples, Triple{X: x, Y: y, Z: z})
}

// AddDottedUnderlineTriple records <x, y, z> as dotted-underlined.
func (g *Graph) AddDottedUnderlineTriple(x, y, z string) error {
	return g.addTriple(dottedUnderlineTriples, Triple{X: x, Y: y, Z: z})
}

// RemoveAmbiguousTriple forgets <x, y, z>; absent triples are ignored.
func (g *Graph) RemoveAmbiguousTriple(x, y, z string) {
	g.removeTriple(ambiguousTriples, Triple{X: x, Y: y, Z: z})
}

// RemoveUnderlineTriple forgets <x, y, z>; absent triples are ignored.
func (g *Graph) RemoveUnderlineTriple(x, y, z string) {
	g.removeTriple(underlineTriples, Triple{X: x, Y: y, Z: z})
}

// RemoveDottedUnderlineTriple forgets <x, y, z>; absent triples are ignored.
func (g *Graph) RemoveDottedUnderlineTriple(x, y, z string) {
	g.removeTriple(dottedUnderlineTriples, Triple{X: x, Y: y, Z: z})
}

// SetAmbiguousTriples replaces the whole ambiguous set. Every triple is
// validated first; on error the previous set is kept.
func (g *Graph) SetAmbiguousTriples(ts []Triple) error { return g.setTriples(ambiguousTriples, ts) }

// SetUnderlineTriples replaces the whole underline set.
func (g *Graph) SetUnderlineTriples(ts []Triple) error { return g.setTriples(underlineTriples, ts) }

// SetDottedUnderlineTriples replaces the whole dotted-underline set.
func (g *Graph) SetDottedUnderlineTriples(ts []Triple) error {
	return g.setTriples(dottedUnderlineTriples, ts)
}

// AmbiguousTriples returns the live ambiguous triples in a deterministic order.
func (g *Graph) AmbiguousTriples() []Triple { return g.triplesOf(ambiguousTriples) }

// UnderlineTriples returns the live underline triples.
func (g *Graph) UnderlineTriples() []Triple { return g.triplesOf(underlineTriples) }

// DottedUnderlineTriples returns the live dotted-underline triples.
func (g *Graph) DottedUnderlineTriples() []Triple { return g.triplesOf(dottedUnderlineTriples) }

// IsAmbiguousTriple reports whether <x, y, z> is a live ambiguous triple.
func (g *Graph) IsAmbiguousTriple(x, y, z string) bool {
	return g.hasTriple(ambiguousTriples, Triple{X: x, Y: y, Z: z})
}

// IsUnderlineTriple reports whether <x, y, z> is a live underline triple.
func (g *Graph) IsUnderlineTriple(x, y, z string) bool {
	return g.hasTriple(underlineTriples, Triple{X: x, Y: y, Z: z})
}

// IsDottedUnderlineTriple reports whether <x, y, z> is a live dotted-underline triple.
func (g *Graph) IsDottedUnderlineTriple(x, y, z string) bool {
	return g.hasTriple(dottedUnderlineTriples, Triple{X: x, Y: y, Z: z})
}

// Sepset is not tracked by the endpoint-matrix store and always fails with
// ErrUnsupported.
func (g *Graph) Sepset(x, y string) ([]string, error) {
	return nil, fmt.Errorf("%w: sepset(%s, %s)", ErrUnsupported, x, y)
}

func (g *Graph) addTriple(kind tripleKind, t Triple) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.alongPath(t); err != nil {
		return err
	}
	g.triples[kind][t] = g.generation

	return nil
}

func (g *Graph) removeTriple(kind tripleKind, t Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.triples[kind], t)
}

func (g *Graph) setTriples(kind tripleKind, ts []Triple) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range ts {
		if err := g.alongPath(t); err != nil {
			return err
		}
	}
	next := make(map[Triple]uint64, len(ts))
	for _, t := range ts {
		next[t] = g.generation
	}
	g.triples[kind] = next

	return nil
}

func (g *Graph) triplesOf(kind tripleKind) []Triple {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeLocked()
	out := make([]Triple, 0, len(g.triples[kind]))
	for t := range g.triples[kind] {
		out = append(out, t)
	}
	g.sortTriples(out)

	return out
}

func (g *Graph) hasTriple(kind tripleKind, t Triple) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeLocked()
	_, ok := g.triples[kind][t]

	return ok
}

// purgeLocked re-validates, in all three sets, the triples stamped with an
// older generation. Surviving triples are re-stamped; the rest are dropped.
// It returns at once when nothing was removed since the last pass.
func (g *Graph) purgeLocked() {
	if g.validated == g.generation {
		return
	}
	for _, set := range g.triples {
		for t, gen := range set {
			if gen == g.generation {
				continue
			}
			if g.alongPath(t) != nil {
				delete(set, t)
				continue
			}
			set[t] = g.generation
		}
	}
	g.validated = g.generation
}

// alongPath checks that x, y, z are distinct present nodes with x–y and y–z adjacent.
func (g *Graph) alongPath(t Triple) error {
	if t.X == t.Y || t.Y == t.Z || t.X == t.Z {
		return fmt.Errorf("%w: %s", ErrNotAlongPath, t)
	}
	ps, err := g.positions(t.X, t.Y, t.Z)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotAlongPath, t)
	}
	if g.mark(ps[0], ps[1]) == NoEndpoint || g.mark(ps[1], ps[2]) == NoEndpoint {
		return fmt.Errorf("%w: %s", ErrNotAlongPath, t)
	}

	return nil
}

// sortTriples orders by node position of Y, then X, then Z.
func (g *Graph) sortTriples(ts []Triple) {
	key := func(t Triple) [3]int {
		return [3]int{g.index[t.Y], g.index[t.X], g.index[t.Z]}
	}
	slices.SortFunc(ts, func(a, b Triple) int {
		ka, kb := key(a), key(b)
		for k := range ka {
			if c := cmp.Compare(ka[k], kb[k]); c != 0 {
				return c
			}
		}

		return 0
	})
}
