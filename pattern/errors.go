// SPDX-License-Identifier: MIT
// Package pattern: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// pattern package. All constructors and validators MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package pattern

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0, or ragged boolean rows).
	ErrBadShape = errors.New("pattern: invalid shape")

	// ErrOutOfRange indicates a coordinate outside the declared shape.
	ErrOutOfRange = errors.New("pattern: index out of range")

	// ErrNilPattern indicates a nil *Pattern receiver or argument.
	ErrNilPattern = errors.New("pattern: nil pattern")

	// ErrNotSquare signals that a square pattern was required but the
	// input was rectangular.
	ErrNotSquare = errors.New("pattern: pattern is not square")

	// ErrNotSymmetric signals that a pattern declared symmetric has an
	// entry (i,j) without its mirror (j,i). The structural assumption is
	// a precondition of the Hessian disciplines, not recoverable
	// mid-algorithm.
	ErrNotSymmetric = errors.New("pattern: pattern is not symmetric")

	// ErrZeroDiagonal signals a structurally zero diagonal entry where the
	// star/acyclic decompression theorems require every diagonal entry to
	// be present.
	ErrZeroDiagonal = errors.New("pattern: structurally zero diagonal entry")

	// ErrBadEpsilon is returned when a negative or non-finite tolerance is
	// supplied to FromMatrix.
	ErrBadEpsilon = errors.New("pattern: epsilon must be finite and >= 0")
)
