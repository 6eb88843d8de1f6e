// Package build provides deterministic sparsity-pattern constructors for
// tests, benchmarks and examples.
//
// Design contract (strict):
//   - Determinism: the same arguments and seed always produce the same
//     pattern or value slice; random constructors take an explicit seed.
//   - Safety: never panic; return sentinel errors on nonsensical sizes or
//     densities.
//   - Hessian constructors always emit symmetric patterns with a
//     structurally full diagonal, matching the preconditions of the star
//     and acyclic disciplines.
//
// Nothing in this package is used by the detection/coloring/decompression
// pipeline itself; it exists to assemble fixtures.
package build
