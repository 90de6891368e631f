// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// coefficient.go - edge-coefficient distributions for BuildModel.
//
// Every CoefficientFn returns DefaultCoefficient when the RNG is nil, so
// unseeded builds stay deterministic.

package builder

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultCoefficient is the edge coefficient used without an RNG.
const DefaultCoefficient float64 = 1

// CoefficientFn draws one edge coefficient.
type CoefficientFn func(rng *rand.Rand) float64

// DefaultCoefficientFn always returns DefaultCoefficient.
func DefaultCoefficientFn(_ *rand.Rand) float64 {
	return DefaultCoefficient
}

// ConstantCoefficientFn always returns value.
func ConstantCoefficientFn(value float64) CoefficientFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCoefficientFn draws from U[lo, hi]. Panics unless lo ≤ hi.
func UniformCoefficientFn(lo, hi float64) CoefficientFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformCoefficientFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCoefficient
		}
		if lo == hi {
			return lo
		}
		return distuv.Uniform{Min: lo, Max: hi, Src: rng}.Rand()
	}
}

// SignedUniformCoefficientFn draws a magnitude from U[lo, hi] with a random
// sign, keeping coefficients away from zero. Panics unless 0 ≤ lo ≤ hi.
func SignedUniformCoefficientFn(lo, hi float64) CoefficientFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("SignedUniformCoefficientFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	magnitude := UniformCoefficientFn(lo, hi)
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCoefficient
		}
		w := magnitude(rng)
		if rng.IntN(2) == 0 {
			return -w
		}
		return w
	}
}

// NormalCoefficientFn draws from N(mean, stddev²). Panics on negative stddev.
func NormalCoefficientFn(mean, stddev float64) CoefficientFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalCoefficientFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCoefficient
		}
		return distuv.Normal{Mu: mean, Sigma: stddev, Src: rng}.Rand()
	}
}

// WithConstantCoefficient sets every coefficient to w.
func WithConstantCoefficient(w float64) BuilderOption {
	return WithCoefficientFn(ConstantCoefficientFn(w))
}

// WithUniformCoefficient draws coefficients from U[lo, hi].
func WithUniformCoefficient(lo, hi float64) BuilderOption {
	return WithCoefficientFn(UniformCoefficientFn(lo, hi))
}

// WithSignedUniformCoefficient draws ±U[lo, hi].
func WithSignedUniformCoefficient(lo, hi float64) BuilderOption {
	return WithCoefficientFn(SignedUniformCoefficientFn(lo, hi))
}
