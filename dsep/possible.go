package dsep

import (
	"github.com/katalvlaran/causal/core"
)

// PossiblyDConnected reports whether a possibly-d-connecting path might join
// x and y given cond when some marks are still circles.
//
// The search runs in stages. Stage 1 holds the edges leaving x; stage k+1
// holds every edge b–c reached from a stage-k pair (a, b) through a legal
// triple, where a – b – c is legal when
//
//   - b is a definite non-collider and b ∉ cond, or
//   - b is a definite collider and b is a possible ancestor of some node in
//     cond (b ∈ cond included).
//
// Each edge enters the per-stage matrix at most once, in either direction.
// The search ends when y is reached or a whole stage adds nothing new.
//
// Returns ErrGraphNil, ErrNodeNotFound, ErrOptionViolation, or the context
// error when cancelled.
func PossiblyDConnected(g *core.Graph, x, y string, cond []string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if err = checkNodes(g, append([]string{x, y}, cond...)); err != nil {
		return false, err
	}
	if x == y {
		return true, nil
	}

	names := g.NodeNames()
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	n := len(names)
	stageOf := make([]int, n*n) // 0 = unseen
	seen := func(a, b string) bool { return stageOf[index[a]*n+index[b]] != 0 }
	mark := func(a, b string, stage int) {
		stageOf[index[a]*n+index[b]] = stage
		stageOf[index[b]*n+index[a]] = stage
	}

	inCond := setOf(cond)
	possAnc := make(map[string]bool, n) // memo of "b ⇝ some z ∈ cond"
	possiblyAncestral := func(b string) bool {
		v, ok := possAnc[b]
		if !ok {
			for _, z := range cond {
				if g.PossibleAncestor(b, z) {
					v = true
					break
				}
			}
			possAnc[b] = v
		}

		return v
	}

	stage := 1
	var current []pair
	adj, err := g.AdjacentNodes(x)
	if err != nil {
		return false, err
	}
	for _, nb := range adj {
		if nb == y {
			return true, nil
		}
		mark(x, nb, stage)
		current = append(current, pair{a: x, b: nb})
	}

	for len(current) > 0 {
		stage++
		var next []pair
		for _, p := range current {
			select {
			case <-o.Ctx.Done():
				return false, o.Ctx.Err()
			default:
			}
			o.OnVisit(p.a, p.b)

			if adj, err = g.AdjacentNodes(p.b); err != nil {
				return false, err
			}
			for _, c := range adj {
				if c == p.a || seen(p.b, c) {
					continue
				}
				legal := (g.IsDefNoncollider(p.a, p.b, c) && !inCond[p.b]) ||
					(g.IsDefCollider(p.a, p.b, c) && possiblyAncestral(p.b))
				if !legal {
					continue
				}
				if c == y {
					return true, nil
				}
				mark(p.b, c, stage)
				next = append(next, pair{a: p.b, b: c})
			}
		}
		current = next
	}

	return false, nil
}
