// Package subsets enumerates the b-element subsets of {0, …, a-1}.
//
// Subsets come out as strictly increasing index slices in a fixed order:
// the right-most index that has not reached its ceiling (index + a - b) is
// incremented and every index to its right is reset to consecutive values.
// For a = 4, b = 2:
//
//	[0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//
// b = 0 yields exactly one empty subset. Enumeration may be cancelled through
// a context.Context, observed between combinations; cancellation looks like
// ordinary exhaustion to the caller.
//
// Two shapes are offered:
//
//	Generator              pull-style, Next() ([]int, bool)
//	Combinations/UpToDepth iter.Seq[[]int] for range-over-func
package subsets
