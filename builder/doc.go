// Package builder provides functional-options constructors for causal graph
// fixtures and models.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates a
//     core.Graph, resolves builderConfig and applies Constructors in order.
//   - Constructors:
//     – Edges(notation...):  "X --> Y", "X o-o Y", … with implicit nodes.
//     – Chain(n), Fork(n), Collider(n): the elementary structures.
//     – RandomDAG(n, p):     forward edges i → j with probability p.
//     – Reorient(e):         overwrite every mark, e.g. the skeleton.
//   - Node naming (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, VariableIDFn.
//   - Coefficients (CoefficientFn) for BuildModel: constant, uniform,
//     signed uniform and normal draws.
//   - GraphDocument: YAML load/validate/build/export, plus Mermaid output.
//
// Guarantees:
//
//   - Option constructors panic on nil functions; Constructors never panic and
//     return errors wrapping the package sentinels.
//   - Same options, seed and constructor order ⇒ identical graphs and models.
package builder
