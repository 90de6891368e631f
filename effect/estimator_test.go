package effect_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/effect"
	"github.com/katalvlaran/causal/regression"
	"github.com/katalvlaran/causal/sem"
)

// stubRegressor reports a coefficient of -weight[first]*len(regressors) for
// the first regressor and records every call.
type stubRegressor struct {
	weight map[string]float64
	fail   map[string]bool

	mu    sync.Mutex
	calls []string
}

func (s *stubRegressor) Regress(target string, regressors []string) (*regression.Result, error) {
	key := strings.Join(regressors, ",")
	s.mu.Lock()
	s.calls = append(s.calls, target+"~"+key)
	s.mu.Unlock()
	if s.fail[key] {
		return nil, regression.ErrSingular
	}
	coef := make([]float64, len(regressors)+1)
	coef[1] = -s.weight[regressors[0]] * float64(len(regressors))

	return &regression.Result{Coefficients: coef}, nil
}

// fixedRegressor returns the same result for every call.
type fixedRegressor struct{ res *regression.Result }

func (f fixedRegressor) Regress(string, []string) (*regression.Result, error) { return f.res, nil }

func graphOf(t *testing.T, nodes []string, edges ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, text := range edges {
		e, err := core.ParseEdge(text)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

func TestNew_Validation(t *testing.T) {
	g := core.NewGraph()
	r := &stubRegressor{}

	_, err := effect.New(nil, r)
	assert.ErrorIs(t, err, effect.ErrGraphNil)
	_, err = effect.New(g, nil)
	assert.ErrorIs(t, err, effect.ErrRegressorNil)
	_, err = effect.New(g, r, effect.WithMaxSiblings(-1))
	assert.ErrorIs(t, err, effect.ErrOptionViolation)
	_, err = effect.New(g, r, effect.WithParallelism(0))
	assert.ErrorIs(t, err, effect.ErrOptionViolation)
	_, err = effect.New(g, r, effect.WithLogger(nil), effect.WithMaxSiblings(0))
	assert.NoError(t, err)
}

func TestEffects_OneSiblingNoParents(t *testing.T) {
	g := graphOf(t, []string{"S", "X", "Y"}, "S --- X", "X --> Y")
	r := &stubRegressor{weight: map[string]float64{"X": 1.5}}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.Effects(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3}, got)
	assert.ElementsMatch(t, []string{"Y~X", "Y~X,S"}, r.calls)
}

func TestEffects_ParentsAlwaysIncluded(t *testing.T) {
	g := graphOf(t, []string{"P", "S", "X", "Y"}, "P --> X", "S --- X", "X --> Y")
	r := &stubRegressor{weight: map[string]float64{"X": 1}}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.Effects(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, got)
	assert.ElementsMatch(t, []string{"Y~X,P", "Y~X,P,S"}, r.calls)
}

func TestEffects_SelfIsEmpty(t *testing.T) {
	g := graphOf(t, []string{"X"})
	r := &stubRegressor{}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.Effects(context.Background(), "X", "X")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, r.calls)

	_, ok, err := est.MinimumEffect(context.Background(), "X", "X")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEffects_TargetAmongRegressorsSkipped(t *testing.T) {
	g := graphOf(t, []string{"X", "Y"}, "X --- Y")
	r := &stubRegressor{weight: map[string]float64{"X": 1}}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.Effects(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)
	assert.Equal(t, []string{"Y~X"}, r.calls)
}

func TestEffects_SingularCandidateSkipped(t *testing.T) {
	g := graphOf(t, []string{"S", "X", "Y"}, "S --- X", "X --> Y")
	r := &stubRegressor{
		weight: map[string]float64{"X": 1},
		fail:   map[string]bool{"X,S": true},
	}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.Effects(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)

	// Every candidate failing leaves no estimate.
	r.fail["X"] = true
	lo, hi, ok, err := est.Bounds(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestEffects_Errors(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "X", "Y"}, "A --- X", "B --- X", "C --- X", "X --> Y")
	est, err := effect.New(g, &stubRegressor{}, effect.WithMaxSiblings(2))
	require.NoError(t, err)

	_, err = est.Effects(context.Background(), "X", "Y")
	assert.ErrorIs(t, err, effect.ErrTooManySiblings)

	_, err = est.Effects(context.Background(), "X", "missing")
	assert.ErrorIs(t, err, effect.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = est.Effects(ctx, "A", "X")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEffects_ParallelMatchesSerial(t *testing.T) {
	nodes := []string{"A", "B", "C", "D", "X", "Y"}
	g := graphOf(t, nodes, "A --- X", "B --- X", "C --- X", "D --> X", "X --> Y")
	weights := map[string]float64{"X": 0.25}

	serial, err := effect.New(g, &stubRegressor{weight: weights})
	require.NoError(t, err)
	parallel, err := effect.New(g, &stubRegressor{weight: weights}, effect.WithParallelism(4))
	require.NoError(t, err)

	want, err := serial.Effects(context.Background(), "X", "Y")
	require.NoError(t, err)
	require.Len(t, want, 8)
	got, err := parallel.Effects(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.IsNonDecreasing(t, got)
}

func TestRankedMinimumEffects(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "Y"}, "A --> Y", "B --> Y", "C --- A")
	r := &stubRegressor{weight: map[string]float64{"A": 1, "B": 3, "C": 0.5}}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.RankedMinimumEffects(context.Background(), "Y")
	require.NoError(t, err)
	assert.Equal(t, []effect.NodeEffect{
		{Node: "B", Effect: 3},
		{Node: "A", Effect: 1},
		{Node: "C", Effect: 0.5},
	}, got)

	_, err = est.RankedMinimumEffects(context.Background(), "missing")
	assert.ErrorIs(t, err, effect.ErrNodeNotFound)
}

func TestRankedMinimumEffects_TiesKeepInsertionOrder(t *testing.T) {
	g := graphOf(t, []string{"Y", "B", "A"}, "B --> Y", "A --> Y")
	r := &stubRegressor{weight: map[string]float64{"A": 2, "B": 2}}
	est, err := effect.New(g, r)
	require.NoError(t, err)

	got, err := est.RankedMinimumEffects(context.Background(), "Y")
	require.NoError(t, err)
	assert.Equal(t, []effect.NodeEffect{
		{Node: "B", Effect: 2},
		{Node: "A", Effect: 2},
	}, got)
}

func TestTrueEffect(t *testing.T) {
	dag := graphOf(t, []string{"P", "X", "Y"}, "P --> X", "X --> Y")
	r := &stubRegressor{weight: map[string]float64{"X": 2}}
	est, err := effect.New(core.NewGraph(), r)
	require.NoError(t, err)
	ctx := context.Background()

	got, err := est.TrueEffect(ctx, "X", "Y", dag)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
	assert.Equal(t, []string{"Y~X,P"}, r.calls)

	_, err = est.TrueEffect(ctx, "X", "P", dag)
	assert.ErrorIs(t, err, effect.ErrTargetInRegressors)
	_, err = est.TrueEffect(ctx, "X", "X", dag)
	assert.ErrorIs(t, err, effect.ErrTargetInRegressors)
	_, err = est.TrueEffect(ctx, "missing", "Y", dag)
	assert.ErrorIs(t, err, effect.ErrNodeNotFound)
	_, err = est.TrueEffect(ctx, "X", "Y", nil)
	assert.ErrorIs(t, err, effect.ErrGraphNil)

	r.fail = map[string]bool{"X,P": true}
	_, err = est.TrueEffect(ctx, "X", "Y", dag)
	assert.ErrorIs(t, err, regression.ErrSingular)
}

func TestTrueEffect_CoefficientCount(t *testing.T) {
	dag := graphOf(t, []string{"P", "X", "Y"}, "P --> X", "X --> Y")
	ctx := context.Background()

	for _, res := range []*regression.Result{
		nil,
		{},
		{Coefficients: []float64{1}},
		{Coefficients: []float64{0, 1}},
		{Coefficients: []float64{1, 2, 3}, ZeroIntercept: true},
	} {
		est, err := effect.New(core.NewGraph(), fixedRegressor{res: res})
		require.NoError(t, err)
		_, err = est.TrueEffect(ctx, "X", "Y", dag)
		assert.ErrorIs(t, err, effect.ErrCoefficientCount)
	}

	est, err := effect.New(core.NewGraph(), fixedRegressor{
		res: &regression.Result{Coefficients: []float64{-3, 5}, ZeroIntercept: true},
	})
	require.NoError(t, err)
	got, err := est.TrueEffect(ctx, "X", "Y", dag)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestEffects_SkipsShortResults(t *testing.T) {
	g := graphOf(t, []string{"X", "Y"}, "X --> Y")
	est, err := effect.New(g, fixedRegressor{res: &regression.Result{Coefficients: []float64{1}}})
	require.NoError(t, err)

	got, ok, err := est.MinimumEffect(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestTrueEffectAgainstBounds(t *testing.T) {
	cases := []struct {
		name          string
		lo, hi, truth float64
		want          float64
	}{
		{"inside", 1, 2, 1.5, 0},
		{"on lower edge", 1, 2, 1, 0},
		{"below", 1, 2, 0.25, 0.75},
		{"above", 1, 2, 2.5, 0.5},
		{"swapped bounds", 2, 1, 0.5, 0.5},
		{"degenerate interval", 1, 1, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, effect.TrueEffectAgainstBounds(tc.lo, tc.hi, tc.truth), 1e-12)
		})
	}
}

// TestMinimumEffect_EndToEnd simulates X → Y → Z, estimates from the pattern
// X–Y → Z and checks the minimum against the two regressions done by hand.
func TestMinimumEffect_EndToEnd(t *testing.T) {
	dag := graphOf(t, []string{"X", "Y", "Z"}, "X --> Y", "Y --> Z")
	model, err := sem.New(dag)
	require.NoError(t, err)
	require.NoError(t, model.SetCoefficient("X", "Y", 1.5))
	require.NoError(t, model.SetCoefficient("Y", "Z", 2))
	data, err := model.Simulate(1000, 3)
	require.NoError(t, err)

	pattern := graphOf(t, []string{"X", "Y", "Z"}, "X --- Y", "Y --> Z")
	for _, par := range []int{1, 2} {
		est, err := effect.New(pattern, data, effect.WithParallelism(par))
		require.NoError(t, err)

		got, ok, err := est.MinimumEffect(context.Background(), "X", "Z")
		require.NoError(t, err)
		require.True(t, ok)

		onX, err := data.Regress("Z", []string{"X"})
		require.NoError(t, err)
		onXY, err := data.Regress("Z", []string{"X", "Y"})
		require.NoError(t, err)
		want := min(abs(onX.Coefficient(0)), abs(onXY.Coefficient(0)))
		assert.InDelta(t, want, got, 1e-12)

		// Adjusting for Y blocks the only path, so the minimum is near zero.
		assert.Less(t, got, 0.2)

		lo, hi, ok, err := est.Bounds(context.Background(), "X", "Z")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, got, lo)
		assert.InDelta(t, 3, hi, 0.3)

		truth, err := est.TrueEffect(context.Background(), "X", "Z", dag)
		require.NoError(t, err)
		assert.Zero(t, effect.TrueEffectAgainstBounds(lo, hi, truth))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
