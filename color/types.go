// SPDX-License-Identifier: MIT
// Package color: result types.
//
// A Coloring is computed once, verified, and then shared read-only — the
// amortization across repeated derivative evaluations is the point of the
// whole pipeline, so nothing here mutates after construction and no
// locking is ever needed.

package color

import "github.com/katalvlaran/sparsik/pattern"

// Mode selects the coloring discipline.
type Mode int

const (
	// Distance2 compresses general (rectangular) Jacobian patterns for
	// direct decompression.
	Distance2 Mode = iota

	// Star compresses symmetric Hessian patterns for direct
	// decompression.
	Star

	// Acyclic compresses symmetric Hessian patterns for substitution
	// decompression, typically with fewer colors than Star.
	Acyclic
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Distance2:
		return "distance-2"
	case Star:
		return "star"
	case Acyclic:
		return "acyclic"
	default:
		return "unknown"
	}
}

// Orientation records which side of the matrix the color classes
// partition, and therefore which product the compressor must request.
type Orientation int

const (
	// ByColumns partitions columns; compressed products are
	// matrix-vector (JVP-style) products.
	ByColumns Orientation = iota

	// ByRows partitions rows; compressed products are vector-matrix
	// (VJP-style) products.
	ByRows
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == ByRows {
		return "rows"
	}

	return "columns"
}

// Coloring is an immutable color assignment over columns, rows, or
// (for symmetric patterns) matrix indices, with color ids 1..NumColors.
type Coloring struct {
	mode   Mode
	orient Orientation
	colors []int // len = colored side; values 1..num
	num    int
	pat    *pattern.Pattern
}

// Mode returns the discipline this coloring satisfies, which fixes the
// decompression procedure (direct vs substitution) that is valid for it.
func (c *Coloring) Mode() Mode { return c.mode }

// Orientation returns the colored side.
func (c *Coloring) Orientation() Orientation { return c.orient }

// NumColors returns the number of colors p (the compressed width).
func (c *Coloring) NumColors() int { return c.num }

// Len returns the number of colored vertices.
func (c *Coloring) Len() int { return len(c.colors) }

// ColorOf returns the color id (1..NumColors) of vertex i, or 0 for an
// out-of-range index.
func (c *Coloring) ColorOf(i int) int {
	if i < 0 || i >= len(c.colors) {
		return 0
	}

	return c.colors[i]
}

// Colors returns a copy of the full assignment.
func (c *Coloring) Colors() []int {
	return append([]int(nil), c.colors...)
}

// Classes returns the vertex indices of each color class; Classes()[k]
// holds the ascending members of color k+1.
func (c *Coloring) Classes() [][]int {
	out := make([][]int, c.num)
	for v, col := range c.colors {
		out[col-1] = append(out[col-1], v)
	}

	return out
}

// Pattern returns the sparsity pattern this coloring was computed for.
func (c *Coloring) Pattern() *pattern.Pattern { return c.pat }
