// SPDX-License-Identifier: MIT
// Package decompress: sentinel error set.

package decompress

import "errors"

var (
	// ErrNilColoring rejects a nil *color.Coloring argument.
	ErrNilColoring = errors.New("decompress: coloring is nil")

	// ErrNilProduct rejects a nil Product callback.
	ErrNilProduct = errors.New("decompress: product callback is nil")

	// ErrModeMismatch rejects a coloring whose discipline does not match
	// the decompressor (e.g. a star coloring passed to Jacobian).
	ErrModeMismatch = errors.New("decompress: coloring mode does not match decompressor")

	// ErrShapeMismatch rejects a compressed block or value slice whose
	// dimensions disagree with the coloring's pattern.
	ErrShapeMismatch = errors.New("decompress: shape mismatch")

	// ErrProductShape reports a Product callback returning a vector of the
	// wrong length.
	ErrProductShape = errors.New("decompress: product returned wrong length")

	// ErrIrrecoverable reports an entry that cannot be read from either
	// side of the compressed block; it indicates a coloring that violates
	// its discipline and should be unreachable for verified colorings.
	ErrIrrecoverable = errors.New("decompress: entry not directly recoverable")
)
