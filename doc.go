// Package causal is an in-memory toolkit for causal graphs whose edges carry
// a mark at each end, and for the queries causal discovery and effect
// estimation run against them.
//
// What is inside:
//
//	core/        thread-safe endpoint-matrix Graph: DAGs, CPDAGs, MAGs and PAGs,
//	             ancestry, colliders, treks and triple annotations
//	dsep/        d-separation (Bayes-ball reachability) and possible d-connection
//	subsets/     deterministic k-combination and power-set enumeration
//	regression/  OLS over a named dataset (gonum QR)
//	effect/      IDA-style bounds on the effect of x on y over an equivalence class
//	sem/         linear-Gaussian simulation from a DAG
//	dfs/         causal (topological) ordering
//	builder/     fixture constructors and YAML graph documents
//	config/      YAML settings, slog logger and estimator options
//
// Quick ASCII example:
//
//	X ─── Y ──▶ Z
//
// is a pattern in which X–Y may point either way; the effect of X on Z is
// bounded by regressing Z on {X} and on {X, Y}.
//
//	go get github.com/katalvlaran/causal
package causal
