// SPDX-License-Identifier: MIT
// Package build: sentinel error set.

package build

import "errors"

var (
	// ErrBadSize rejects non-positive dimensions or a bandwidth that
	// cannot fit the requested size.
	ErrBadSize = errors.New("build: invalid size")

	// ErrBadDensity rejects densities outside [0, 1] or NaN.
	ErrBadDensity = errors.New("build: density must be in [0,1]")

	// ErrPatternNil rejects a nil pattern argument.
	ErrPatternNil = errors.New("build: pattern is nil")
)
