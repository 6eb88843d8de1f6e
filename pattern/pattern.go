// SPDX-License-Identifier: MIT
// Package pattern: the Pattern type and its read-only accessors.
//
// Pattern stores the zero/nonzero structure of a matrix in both compressed
// row (CSR) and compressed column (CSC) form. Both index arrays are sorted,
// so membership tests are binary searches and every iteration order is
// deterministic. A Pattern never mutates after construction; it is safe to
// share across goroutines and to reuse across many compressed derivative
// evaluations.

package pattern

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Coord addresses one structural nonzero entry.
type Coord struct {
	Row, Col int
}

// Pattern is an immutable boolean sparsity pattern in CSR + CSC form.
//
// rowPtr/colInd hold the CSR view (column indices per row, sorted);
// colPtr/rowInd hold the CSC view (row indices per column, sorted).
// Invariant: both views describe the same nonzero set.
type Pattern struct {
	rows, cols int
	rowPtr     []int // len rows+1
	colInd     []int // len nnz, sorted within each row
	colPtr     []int // len cols+1
	rowInd     []int // len nnz, sorted within each column
}

// Rows returns the number of rows.
// Complexity: O(1).
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (p *Pattern) Cols() int { return p.cols }

// NNZ returns the number of structural nonzero entries.
// Complexity: O(1).
func (p *Pattern) NNZ() int { return len(p.colInd) }

// Has reports whether entry (row, col) is structurally nonzero.
// Out-of-range coordinates report false.
// Complexity: O(log nnz(row)) via binary search in the row's index list.
func (p *Pattern) Has(row, col int) bool {
	if p == nil || row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return false
	}
	// Binary-search the sorted column indices of this row.
	lo, hi := p.rowPtr[row], p.rowPtr[row+1]
	seg := p.colInd[lo:hi]
	i := sort.SearchInts(seg, col)

	return i < len(seg) && seg[i] == col
}

// RowIndices returns the sorted column indices of the nonzeros in row.
// The returned slice aliases internal storage and must not be modified.
// Complexity: O(1).
func (p *Pattern) RowIndices(row int) []int {
	if p == nil || row < 0 || row >= p.rows {
		return nil
	}

	return p.colInd[p.rowPtr[row]:p.rowPtr[row+1]]
}

// ColIndices returns the sorted row indices of the nonzeros in col.
// The returned slice aliases internal storage and must not be modified.
// Complexity: O(1).
func (p *Pattern) ColIndices(col int) []int {
	if p == nil || col < 0 || col >= p.cols {
		return nil
	}

	return p.rowInd[p.colPtr[col]:p.colPtr[col+1]]
}

// Coords returns every structural nonzero in row-major order.
// The slice is freshly allocated; callers own it.
// Complexity: O(nnz).
func (p *Pattern) Coords() []Coord {
	if p == nil {
		return nil
	}
	out := make([]Coord, 0, p.NNZ())
	for r := 0; r < p.rows; r++ {
		for _, c := range p.RowIndices(r) {
			out = append(out, Coord{Row: r, Col: c})
		}
	}

	return out
}

// Transpose returns a new Pattern with rows and columns exchanged.
// The CSR/CSC views simply swap roles, so no re-sorting is needed.
// Complexity: O(nnz) to copy the index arrays.
func (p *Pattern) Transpose() (*Pattern, error) {
	if p == nil {
		return nil, ErrNilPattern
	}

	return &Pattern{
		rows:   p.cols,
		cols:   p.rows,
		rowPtr: append([]int(nil), p.colPtr...),
		colInd: append([]int(nil), p.rowInd...),
		colPtr: append([]int(nil), p.rowPtr...),
		rowInd: append([]int(nil), p.colInd...),
	}, nil
}

// ToDense materializes the pattern as a gonum 0/1 matrix, convenient for
// brute-force checks in tests and for small worked examples.
// Complexity: O(rows*cols).
func (p *Pattern) ToDense() (*mat.Dense, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	d := mat.NewDense(p.rows, p.cols, nil)
	for r := 0; r < p.rows; r++ {
		for _, c := range p.RowIndices(r) {
			d.Set(r, c, 1)
		}
	}

	return d, nil
}

// IsSymmetric reports whether the pattern is square and every entry (i,j)
// has its mirror (j,i).
// Complexity: O(nnz log nnz_row).
func (p *Pattern) IsSymmetric() bool {
	if p == nil || p.rows != p.cols {
		return false
	}
	for r := 0; r < p.rows; r++ {
		for _, c := range p.RowIndices(r) {
			if !p.Has(c, r) {
				return false
			}
		}
	}

	return true
}
