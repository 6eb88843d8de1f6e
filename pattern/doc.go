// Package pattern provides immutable boolean sparsity patterns and the
// structural views the coloring engine consumes.
//
// The pattern package provides:
//
//   - Pattern, a compressed (CSR + CSC) zero/nonzero matrix built once and
//     shared read-only afterwards.
//   - Constructors from coordinate lists, boolean rows, or any gonum
//     mat.Matrix.
//   - Structural validators (square, symmetric, full diagonal) returning
//     sentinel errors — the preconditions of the Hessian coloring theorems.
//   - Graph views: adjacency lists for symmetric matrices and transposition
//     for row-wise (reverse-mode) compression.
//
// Patterns are value-of-truth objects: every index slice they hand out is
// sorted, deterministic, and must be treated as read-only.
package pattern
