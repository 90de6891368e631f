// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders.
package builder

// Method names used to prefix errors with the constructor name.
const (
	MethodEdges     = "Edges"
	MethodChain     = "Chain"
	MethodFork      = "Fork"
	MethodCollider  = "Collider"
	MethodRandomDAG = "RandomDAG"
	MethodReorient  = "Reorient"
)

// Minimum node counts.
const (
	// MinChainNodes is the smallest chain: a single edge.
	MinChainNodes = 2
	// MinForkNodes is the smallest fork: one cause, two effects.
	MinForkNodes = 3
	// MinColliderNodes is the smallest collider: two causes, one effect.
	MinColliderNodes = 3
	// MinRandomDAGNodes allows an empty-edge single node DAG.
	MinRandomDAGNodes = 1
)

// Probability domain.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
