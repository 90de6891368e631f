// File: estimator.go
// Role: Effect bounds over an equivalence-class graph: for every locally
//       consistent parent set of x, the |coefficient| of x regressing y.
// Determinism:
//   - Candidates are enumerated in a fixed order and each writes its own slot,
//     so the sorted output does not depend on scheduling.
// Concurrency:
//   - Candidate regressions fan out through errgroup with SetLimit(parallelism).

package effect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/regression"
	"github.com/katalvlaran/causal/subsets"
)

// Estimator computes effect bounds of x on y from a fixed graph and a
// regression capability. It never mutates the graph.
type Estimator struct {
	graph       *core.Graph
	reg         regression.Regressor
	maxSiblings int
	parallelism int
	logger      *slog.Logger
	err         error
}

// New returns an Estimator with no sibling cap, sequential regressions and
// a discarding logger, adjusted by opts.
func New(g *core.Graph, r regression.Regressor, opts ...Option) (*Estimator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if r == nil {
		return nil, ErrRegressorNil
	}
	e := &Estimator{
		graph:       g,
		reg:         r,
		parallelism: 1,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}

	return e, nil
}

// Effects returns |β_x| for every candidate parent set of x, sorted ascending.
//
// Implementation:
//   - Stage 1: siblings = adjacent(x) − parents(x) − children(x).
//   - Stage 2: for every subset S of siblings, regressors = x, parents, S
//     (duplicates collapsed, x first); skip the candidate when y is among them.
//   - Stage 3: regress y on each candidate; a failed or short regression (singular
//     design, unknown column) drops that candidate only.
//   - Stage 4: sort the magnitudes ascending.
//
// x == y yields an empty list. Returns ErrNodeNotFound, ErrTooManySiblings,
// or the context error when cancelled.
func (e *Estimator) Effects(ctx context.Context, x, y string) ([]float64, error) {
	if err := e.checkNodes(x, y); err != nil {
		return nil, err
	}
	if x == y {
		return []float64{}, nil
	}

	candidates, err := e.candidates(ctx, x, y)
	if err != nil {
		return nil, err
	}

	betas := make([]float64, len(candidates))
	ok := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, regressors := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			betas[i], ok[i] = e.coefficientOfFirst(y, regressors)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	effects := make([]float64, 0, len(candidates))
	for i, b := range betas {
		if ok[i] {
			effects = append(effects, b)
		}
	}
	sort.Float64s(effects)

	return effects, nil
}

// candidates lists the regressor sets for x in power-set order of siblings.
func (e *Estimator) candidates(ctx context.Context, x, y string) ([][]string, error) {
	parents, err := e.graph.Parents(x)
	if err != nil {
		return nil, err
	}
	children, err := e.graph.Children(x)
	if err != nil {
		return nil, err
	}
	adjacent, err := e.graph.AdjacentNodes(x)
	if err != nil {
		return nil, err
	}
	siblings := slices.DeleteFunc(adjacent, func(n string) bool {
		return slices.Contains(parents, n) || slices.Contains(children, n)
	})
	if e.maxSiblings > 0 && len(siblings) > e.maxSiblings {
		return nil, fmt.Errorf("%w: %s has %d (cap %d)", ErrTooManySiblings, x, len(siblings), e.maxSiblings)
	}
	e.logger.Debug("effect: enumerating parent sets",
		"x", x, "y", y, "parents", len(parents), "siblings", len(siblings))

	var out [][]string
	for choice := range subsets.UpToDepth(ctx, len(siblings), -1) {
		regressors := []string{x}
		for _, p := range parents {
			if !slices.Contains(regressors, p) {
				regressors = append(regressors, p)
			}
		}
		for _, k := range choice {
			if !slices.Contains(regressors, siblings[k]) {
				regressors = append(regressors, siblings[k])
			}
		}
		if slices.Contains(regressors, y) {
			continue
		}
		out = append(out, regressors)
	}
	// UpToDepth stops silently on cancellation; report it.
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// coefficientOfFirst regresses y on regressors and returns |β| of regressors[0].
func (e *Estimator) coefficientOfFirst(y string, regressors []string) (float64, bool) {
	res, err := e.reg.Regress(y, regressors)
	if err != nil {
		e.logger.Debug("effect: skipping candidate", "y", y, "regressors", regressors, "err", err)
		return 0, false
	}
	beta, err := firstCoefficient(res, len(regressors))
	if err != nil {
		e.logger.Debug("effect: skipping candidate", "y", y, "regressors", regressors, "err", err)
		return 0, false
	}

	return beta, true
}

// firstCoefficient returns |β| of the first of n regressors in res.
func firstCoefficient(res *regression.Result, n int) (float64, error) {
	if res == nil {
		return 0, fmt.Errorf("%w: no result", ErrCoefficientCount)
	}
	want := n
	if !res.ZeroIntercept {
		want++
	}
	if len(res.Coefficients) != want {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrCoefficientCount, len(res.Coefficients), want)
	}

	return math.Abs(res.Coefficient(0)), nil
}

// MinimumEffect returns the smallest |β| from Effects, ok=false if there is none.
func (e *Estimator) MinimumEffect(ctx context.Context, x, y string) (float64, bool, error) {
	effects, err := e.Effects(ctx, x, y)
	if err != nil || len(effects) == 0 {
		return 0, false, err
	}

	return effects[0], true, nil
}

// Bounds returns the smallest and largest |β| from Effects, ok=false if there is none.
func (e *Estimator) Bounds(ctx context.Context, x, y string) (lo, hi float64, ok bool, err error) {
	effects, err := e.Effects(ctx, x, y)
	if err != nil || len(effects) == 0 {
		return 0, 0, false, err
	}

	return effects[0], effects[len(effects)-1], true, nil
}

// RankedMinimumEffects computes MinimumEffect(x, y) for every other node x
// and returns them by descending magnitude. Nodes without an estimate are
// omitted; ties keep graph insertion order.
func (e *Estimator) RankedMinimumEffects(ctx context.Context, y string) ([]NodeEffect, error) {
	if err := e.checkNodes(y); err != nil {
		return nil, err
	}
	var out []NodeEffect
	for _, x := range e.graph.NodeNames() {
		if x == y {
			continue
		}
		m, ok, err := e.MinimumEffect(ctx, x, y)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, NodeEffect{Node: x, Effect: m})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Effect) > math.Abs(out[j].Effect)
	})

	return out, nil
}

// TrueEffect returns |β_x| of y regressed on x and x's parents in trueDAG,
// the reference value for offline evaluation against a known ground truth.
//
// Errors:
//   - ErrGraphNil for a nil trueDAG; ErrNodeNotFound if x is not in it.
//   - ErrTargetInRegressors if y is x or one of its parents.
//   - ErrCoefficientCount if the result does not cover every regressor.
//   - regression errors are returned as is.
func (e *Estimator) TrueEffect(ctx context.Context, x, y string, trueDAG *core.Graph) (float64, error) {
	if trueDAG == nil {
		return 0, ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	parents, err := trueDAG.Parents(x)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, x)
	}
	regressors := append([]string{x}, parents...)
	if slices.Contains(regressors, y) {
		return 0, fmt.Errorf("%w: %s", ErrTargetInRegressors, y)
	}
	res, err := e.reg.Regress(y, regressors)
	if err != nil {
		return 0, err
	}

	return firstCoefficient(res, len(regressors))
}

// TrueEffectAgainstBounds returns 0 when trueEffect lies in the interval
// spanned by minEffect and maxEffect (in either order), otherwise its
// distance to the nearer end.
func TrueEffectAgainstBounds(minEffect, maxEffect, trueEffect float64) float64 {
	lo, hi := min(minEffect, maxEffect), max(minEffect, maxEffect)
	if trueEffect >= lo && trueEffect <= hi {
		return 0
	}

	return min(math.Abs(trueEffect-lo), math.Abs(trueEffect-hi))
}

func (e *Estimator) checkNodes(names ...string) error {
	for _, n := range names {
		if !e.graph.ContainsNode(n) {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, n)
		}
	}

	return nil
}
