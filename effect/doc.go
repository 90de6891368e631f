// Package effect bounds the causal effect of one variable on another when
// only an equivalence-class graph (CPDAG) is known.
//
// Undirected neighbours of x ("siblings") may be parents of x in some member
// of the class. For every subset S of siblings the estimator regresses y on
// x, x's parents and S, and keeps |β_x|; the spread of those magnitudes
// brackets the true effect under the usual linear-Gaussian assumptions.
//
//	est, err := effect.New(pattern, dataset, effect.WithParallelism(4))
//	lo, hi, ok, err := est.Bounds(ctx, "X", "Y")
//
// The number of candidates is 2^siblings; WithMaxSiblings rejects nodes whose
// sibling count would make that impractical.
package effect
