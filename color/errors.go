// SPDX-License-Identifier: MIT
// Package color: sentinel error set.
// Structural precondition failures surface as the pattern package's
// sentinels (ErrNotSymmetric, ErrZeroDiagonal) passed through unchanged;
// the sentinels below are the coloring engine's own.

package color

import "errors"

var (
	// ErrPatternNil indicates a nil *pattern.Pattern argument.
	ErrPatternNil = errors.New("color: pattern is nil")

	// ErrNilColoring indicates a nil *Coloring receiver or argument.
	ErrNilColoring = errors.New("color: coloring is nil")

	// ErrUnknownMode indicates a coloring discipline this engine does not
	// implement (e.g. asking Hessian for Distance2).
	ErrUnknownMode = errors.New("color: unknown coloring mode")

	// ErrBadColoring indicates a color slice that cannot be verified:
	// wrong length or a non-positive color id.
	ErrBadColoring = errors.New("color: malformed color assignment")

	// ErrVerifyFailed indicates a color assignment that violates the
	// discipline it claims. Colorings built by this package are verified
	// before being returned, so seeing this from a constructor means an
	// internal invariant broke; seeing it from a Verify* helper means the
	// supplied assignment is simply not valid.
	ErrVerifyFailed = errors.New("color: coloring violates its discipline")
)

// Internal panic message for option constructors (programmer error).
const panicUnknownOrdering = "color: WithOrdering: unknown ordering heuristic"
