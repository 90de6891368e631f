// File: generator.go
// Role: Pull-style combination generator, range-over-func sequences and counting.
// Determinism:
//   - Order is fixed by (a, b); a fresh Generator always restarts from [0 … b-1].

package subsets

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidArgs indicates a universe/subset size pair outside 0 ≤ b ≤ a.
var ErrInvalidArgs = errors.New("subsets: invalid arguments")

// Option configures a Generator.
type Option func(*Generator)

// WithContext makes Next report exhaustion once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(g *Generator) { g.ctx = ctx }
}

// Generator produces every b-subset of {0, …, a-1} exactly once.
// It is not safe for concurrent use.
type Generator struct {
	a, b    int
	choice  []int
	started bool
	done    bool
	ctx     context.Context
}

// NewGenerator returns a generator for the b-subsets of a items.
func NewGenerator(a, b int, opts ...Option) (*Generator, error) {
	if a < 0 || b < 0 || b > a {
		return nil, fmt.Errorf("%w: a=%d b=%d", ErrInvalidArgs, a, b)
	}
	g := &Generator{a: a, b: b, choice: make([]int, b), ctx: context.Background()}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Next returns the next subset as a fresh slice, or (nil, false) once every
// subset has been produced or the context is done.
func (g *Generator) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if g.ctx.Err() != nil {
		g.done = true
		return nil, false
	}
	if !g.started {
		g.started = true
		for i := range g.choice {
			g.choice[i] = i
		}
		if g.b == 0 {
			g.done = true
		}

		return append([]int{}, g.choice...), true
	}

	i := g.b - 1
	for i >= 0 && g.choice[i] == i+g.a-g.b {
		i--
	}
	if i < 0 {
		g.done = true
		return nil, false
	}
	g.choice[i]++
	for j := i + 1; j < g.b; j++ {
		g.choice[j] = g.choice[j-1] + 1
	}

	return append([]int{}, g.choice...), true
}

// Combinations yields the b-subsets of a items in Generator order. Invalid
// arguments yield nothing. Each call starts over.
func Combinations(ctx context.Context, a, b int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		gen, err := NewGenerator(a, b, WithContext(ctx))
		if err != nil {
			return
		}
		for c, ok := gen.Next(); ok; c, ok = gen.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// UpToDepth yields every subset of a items with size 0, 1, …, depth in that
// order. A negative depth, or one above a, means a: the full power set.
func UpToDepth(ctx context.Context, a, depth int) iter.Seq[[]int] {
	if depth < 0 || depth > a {
		depth = a
	}

	return func(yield func([]int) bool) {
		for b := 0; b <= depth; b++ {
			for c := range Combinations(ctx, a, b) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// NumCombinations returns C(a, b) computed through log-gamma so that large a
// does not overflow intermediate factorials. It returns 0 outside 0 ≤ b ≤ a
// and saturates at math.MaxInt when the count does not fit in an int.
func NumCombinations(a, b int) int {
	if a < 0 || b < 0 || b > a {
		return 0
	}
	la, _ := math.Lgamma(float64(a + 1))
	lb, _ := math.Lgamma(float64(b + 1))
	lc, _ := math.Lgamma(float64(a - b + 1))

	v := math.Round(math.Exp(la - lb - lc))
	if v >= math.MaxInt { // float64(MaxInt) rounds up to 2^63; +Inf lands here too
		return math.MaxInt
	}

	return int(v)
}
