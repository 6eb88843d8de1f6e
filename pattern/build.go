// SPDX-License-Identifier: MIT
// Package pattern: constructors.
//
// Every constructor funnels through fromCoords, which deduplicates,
// sorts, and builds both compressed views in one pass. Construction is the
// only moment a Pattern is mutable; afterwards it is shared read-only.

package pattern

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// New builds a Pattern of the given shape from an explicit coordinate list.
// Stage 1 (Validate): shape must be positive, coordinates in range.
// Stage 2 (Normalize): copy, sort row-major, deduplicate.
// Stage 3 (Compress): fill CSR then CSC index arrays.
// Duplicated coordinates are collapsed silently (a nonzero is a nonzero).
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func New(rows, cols int, coords []Coord) (*Pattern, error) {
	// Validate shape before touching coordinates.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Validate every coordinate against the declared shape.
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, ErrOutOfRange
		}
	}

	return fromCoords(rows, cols, coords), nil
}

// FromRows builds a Pattern from dense boolean rows (true = nonzero).
// All rows must have equal length; ragged input is ErrBadShape.
// Complexity: O(rows*cols).
func FromRows(rows [][]bool) (*Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	var coords []Coord
	for r, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for c, set := range row {
			if set {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}

	return fromCoords(len(rows), cols, coords), nil
}

// FromMatrix derives a Pattern from any gonum matrix: entries with
// |value| > eps are structural nonzeros. NaN entries are treated as
// nonzero (an unknown value may be anything, so soundness demands a bit).
// Complexity: O(rows*cols).
func FromMatrix(m mat.Matrix, eps float64) (*Pattern, error) {
	if m == nil {
		return nil, ErrNilPattern
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, ErrBadEpsilon
	}
	rows, cols := m.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	var coords []Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			if math.IsNaN(v) || math.Abs(v) > eps {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}

	return fromCoords(rows, cols, coords), nil
}

// fromCoords assembles both compressed views from validated coordinates.
// Callers guarantee shape positivity and coordinate range.
func fromCoords(rows, cols int, coords []Coord) *Pattern {
	// 1) Copy and sort row-major so CSR assembly is a single sweep.
	cs := append([]Coord(nil), coords...)
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}

		return cs[i].Col < cs[j].Col
	})

	// 2) Deduplicate in place (sorted ⇒ duplicates are adjacent).
	dedup := cs[:0]
	for i, c := range cs {
		if i == 0 || c != cs[i-1] {
			dedup = append(dedup, c)
		}
	}
	cs = dedup

	// 3) CSR view: count per row, prefix-sum, fill.
	p := &Pattern{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colInd: make([]int, len(cs)),
		colPtr: make([]int, cols+1),
		rowInd: make([]int, len(cs)),
	}
	for _, c := range cs {
		p.rowPtr[c.Row+1]++
	}
	for r := 0; r < rows; r++ {
		p.rowPtr[r+1] += p.rowPtr[r]
	}
	for i, c := range cs {
		p.colInd[i] = c.Col
	}

	// 4) CSC view: count per column, prefix-sum, scatter (row-major input
	//    keeps each column's row list sorted automatically).
	for _, c := range cs {
		p.colPtr[c.Col+1]++
	}
	for c := 0; c < cols; c++ {
		p.colPtr[c+1] += p.colPtr[c]
	}
	next := append([]int(nil), p.colPtr...)
	for _, c := range cs {
		p.rowInd[next[c.Col]] = c.Row
		next[c.Col]++
	}

	return p
}
