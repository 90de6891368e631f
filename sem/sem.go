// Package sem simulates data from a linear structural equation model over a
// DAG: every node is the weighted sum of its parents plus Gaussian noise.
//
// It exists to produce datasets with a known ground truth for the effect
// estimator: the coefficient on an edge is the direct effect along it.
package sem

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dfs"
	"github.com/katalvlaran/causal/regression"
)

var (
	// ErrNotAnEdge indicates a coefficient for a pair that is not from → to.
	ErrNotAnEdge = errors.New("sem: no directed edge")

	// ErrBadSamples indicates a non-positive sample count.
	ErrBadSamples = errors.New("sem: sample count must be positive")

	// ErrNoObserved indicates a graph with no observed (non-latent) node.
	ErrNoObserved = errors.New("sem: no observed variables")
)

// defaultCoefficient is used for edges with no explicit coefficient.
const defaultCoefficient = 1.0

// Model is a linear SEM bound to a DAG snapshot taken at construction.
type Model struct {
	graph *core.Graph
	order []string
	coef  map[[2]string]float64
	sigma map[string]float64
}

// New validates that g is a DAG with only tail–arrow edges and returns a
// model with unit coefficients and unit noise.
func New(g *core.Graph) (*Model, error) {
	order, err := dfs.TopologicalSort(g, dfs.WithStrictEdges())
	if err != nil {
		return nil, fmt.Errorf("sem: %w", err)
	}

	return &Model{
		graph: g,
		order: order,
		coef:  make(map[[2]string]float64),
		sigma: make(map[string]float64),
	}, nil
}

// SetCoefficient sets the direct effect of from on to.
func (m *Model) SetCoefficient(from, to string, w float64) error {
	if !m.graph.IsParentOf(from, to) {
		return fmt.Errorf("%w: %s --> %s", ErrNotAnEdge, from, to)
	}
	m.coef[[2]string{from, to}] = w

	return nil
}

// Coefficient returns the direct effect of from on to, 0 if there is no edge.
func (m *Model) Coefficient(from, to string) float64 {
	if !m.graph.IsParentOf(from, to) {
		return 0
	}
	if w, ok := m.coef[[2]string{from, to}]; ok {
		return w
	}

	return defaultCoefficient
}

// SetNoise sets the standard deviation of name's error term.
func (m *Model) SetNoise(name string, sigma float64) error {
	if !m.graph.ContainsNode(name) {
		return fmt.Errorf("sem: %w: %q", core.ErrNodeNotFound, name)
	}
	m.sigma[name] = sigma

	return nil
}

// Simulate draws n samples with a PCG source seeded by seed. Latent nodes
// take part in the simulation but are left out of the returned dataset.
func (m *Model) Simulate(n int, seed uint64, opts ...regression.Option) (*regression.Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSamples, n)
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)

	values := make(map[string][]float64, len(m.order))
	for _, name := range m.order {
		sigma, ok := m.sigma[name]
		if !ok {
			sigma = 1
		}
		noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
		parents, err := m.graph.Parents(name)
		if err != nil {
			return nil, err
		}
		col := make([]float64, n)
		for i := range col {
			v := noise.Rand()
			for _, p := range parents {
				v += m.Coefficient(p, name) * values[p][i]
			}
			col[i] = v
		}
		values[name] = col
	}

	var names []string
	for _, node := range m.graph.Nodes() {
		if node.Kind != core.Latent {
			names = append(names, node.Name)
		}
	}
	if len(names) == 0 {
		return nil, ErrNoObserved
	}
	data := mat.NewDense(n, len(names), nil)
	for j, name := range names {
		data.SetCol(j, values[name])
	}

	return regression.NewDataset(names, data, opts...)
}
