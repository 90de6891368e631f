// Package dfs implements depth-first algorithms over the directed part of a
// core.Graph.
//
// What:
//
//   - TopologicalSort: the causal ordering of a DAG (parents before
//     children), returning ErrCycleDetected with a witness cycle otherwise.
//     Edges that are not tail–arrow are ignored, or rejected with
//     WithStrictEdges.
//
// Why:
//   - Simulating a linear structural equation model needs every parent's
//     value before its child's.
//   - Fixture builders use it to check that generated graphs are acyclic.
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  directed cycle found
//   - ErrNotDirected    non-directed edge under WithStrictEdges
//   - context.Canceled  traversal cancelled via WithCancelContext
package dfs
