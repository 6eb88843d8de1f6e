// SPDX-License-Identifier: MIT
// Package trace: sentinel error set.
// All detection entry points and the primitive registry return these
// sentinels; tests match them via errors.Is. Panics are reserved for
// programmer errors (mismatched bitset widths, out-of-range seeds) and use
// the stable messages below.

package trace

import "errors"

var (
	// ErrNilFunction indicates a nil callable was passed to a detection
	// entry point.
	ErrNilFunction = errors.New("trace: function is nil")

	// ErrEmptyInput indicates an empty probe point; at least one input
	// dimension is required.
	ErrEmptyInput = errors.New("trace: empty input point")

	// ErrNoOutputs indicates the traced function returned no outputs, so
	// there is no pattern to extract.
	ErrNoOutputs = errors.New("trace: function produced no outputs")

	// ErrUnsupportedOp is the hard failure for a primitive without a rule.
	// Skipping it silently would yield a falsely sparse (unsound) pattern.
	ErrUnsupportedOp = errors.New("trace: unsupported operation")

	// ErrNilRule rejects registering a nil primitive rule.
	ErrNilRule = errors.New("trace: nil primitive rule")

	// ErrDuplicateOp rejects re-registering an existing primitive name
	// (built-ins included); rules are write-once for determinism.
	ErrDuplicateOp = errors.New("trace: primitive already registered")
)

// Internal panic messages (programmer errors only, no magic strings).
const (
	panicNegativeWidth = "trace: index set width must be >= 0"
	panicIndexRange    = "trace: input index out of range for width"
	panicWidthMismatch = "trace: index sets have different widths"
)
