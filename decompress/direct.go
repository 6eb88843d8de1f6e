// SPDX-License-Identifier: MIT
// Package decompress: direct entry recovery.
//
// Direct recovery is pure lookup. Under a distance-2 coloring each
// nonzero J(i,j) is alone in row i among columns of color(j), so it sits
// untouched at B(i, color(j)). Under a star coloring each off-diagonal
// H(i,j) is alone in at least one of its two slots, because the
// two-colored subgraph containing the edge is a star and a spoke vertex
// has exactly one neighbor in the hub's color.

package decompress

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsik/color"
	"github.com/katalvlaran/sparsik/pattern"
)

// checkBlock validates B against the coloring's pattern and orientation.
func checkBlock(c *color.Coloring, b *mat.Dense) error {
	if c == nil {
		return ErrNilColoring
	}
	if b == nil {
		return ErrShapeMismatch
	}
	r, k := b.Dims()
	if c.Orientation() == color.ByRows {
		if r != c.NumColors() || k != c.Pattern().Cols() {
			return ErrShapeMismatch
		}

		return nil
	}
	if r != c.Pattern().Rows() || k != c.NumColors() {
		return ErrShapeMismatch
	}

	return nil
}

// Jacobian recovers the nonzero entries of a Jacobian from its compressed
// block under a Distance2 coloring. Values are returned in the pattern's
// row-major nonzero order (the order of Pattern.Coords).
// Errors: ErrNilColoring, ErrModeMismatch, ErrShapeMismatch.
// Complexity: O(nnz).
func Jacobian(c *color.Coloring, b *mat.Dense) ([]float64, error) {
	if c == nil {
		return nil, ErrNilColoring
	}
	if c.Mode() != color.Distance2 {
		return nil, ErrModeMismatch
	}
	if err := checkBlock(c, b); err != nil {
		return nil, err
	}

	p := c.Pattern()
	out := make([]float64, 0, p.NNZ())
	byRows := c.Orientation() == color.ByRows
	for _, coord := range p.Coords() {
		if byRows {
			out = append(out, b.At(c.ColorOf(coord.Row)-1, coord.Col))
		} else {
			out = append(out, b.At(coord.Row, c.ColorOf(coord.Col)-1))
		}
	}

	return out, nil
}

// HessianDirect recovers the nonzero entries of a symmetric Hessian from
// its compressed block under a Star coloring. Values are returned in the
// pattern's row-major nonzero order; mirrored entries are equal by
// construction.
// Errors: ErrNilColoring, ErrModeMismatch, ErrShapeMismatch,
// ErrIrrecoverable (unreachable for a verified coloring).
// Complexity: O(Σ_(i,j)∈nnz deg(i)).
func HessianDirect(c *color.Coloring, b *mat.Dense) ([]float64, error) {
	if c == nil {
		return nil, ErrNilColoring
	}
	if c.Mode() != color.Star {
		return nil, ErrModeMismatch
	}
	if err := checkBlock(c, b); err != nil {
		return nil, err
	}

	p := c.Pattern()
	out := make([]float64, 0, p.NNZ())
	for _, coord := range p.Coords() {
		i, j := coord.Row, coord.Col
		if i == j {
			// Properness keeps every neighbor of i out of color(i), so the
			// slot holds the diagonal alone.
			out = append(out, b.At(i, c.ColorOf(i)-1))

			continue
		}
		v, err := directEntry(p, c, b, i, j)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// directEntry reads H(i,j) from whichever side holds it alone: slot
// (i, color(j)) if j is i's only neighbor of that color, otherwise slot
// (j, color(i)).
func directEntry(p *pattern.Pattern, c *color.Coloring, b *mat.Dense, i, j int) (float64, error) {
	if uniqueInColor(p, c, i, j) {
		return b.At(i, c.ColorOf(j)-1), nil
	}
	if uniqueInColor(p, c, j, i) {
		return b.At(j, c.ColorOf(i)-1), nil
	}

	return 0, ErrIrrecoverable
}

// uniqueInColor reports whether j is the only neighbor of i carrying
// color(j).
func uniqueInColor(p *pattern.Pattern, c *color.Coloring, i, j int) bool {
	cj := c.ColorOf(j)
	for _, k := range p.RowIndices(i) {
		if k != i && k != j && c.ColorOf(k) == cj {
			return false
		}
	}

	return true
}

// ToDense scatters CSR-ordered values into a dense rows×cols matrix with
// zeros elsewhere. Handy for comparing recovered entries against a
// reference matrix.
// Errors: pattern.ErrNilPattern, ErrShapeMismatch.
func ToDense(p *pattern.Pattern, values []float64) (*mat.Dense, error) {
	if p == nil {
		return nil, pattern.ErrNilPattern
	}
	if len(values) != p.NNZ() {
		return nil, ErrShapeMismatch
	}
	d := mat.NewDense(p.Rows(), p.Cols(), nil)
	for k, coord := range p.Coords() {
		d.Set(coord.Row, coord.Col, values[k])
	}

	return d, nil
}
