// SPDX-License-Identifier: MIT
// Package decompress: substitution recovery for acyclic colorings.
//
// Under an acyclic coloring the subgraph induced by any two colors is a
// forest. Each slot B(i, d) sums the entries H(i,k) over neighbors k of
// color d, which is one linear equation per (vertex, color) pair; the
// forest structure guarantees some equation always holds a single unknown
// (a leaf edge), so peeling leaves resolves every entry by back
// substitution.

package decompress

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsik/color"
)

// HessianSubstitution recovers the nonzero entries of a symmetric Hessian
// from its compressed block under an Acyclic coloring. Values are
// returned in the pattern's row-major nonzero order; mirrored entries are
// equal by construction.
// Errors: ErrNilColoring, ErrModeMismatch, ErrShapeMismatch,
// ErrIrrecoverable (unreachable for a verified coloring).
// Complexity: O(n·p + nnz·deg) for the scans, effectively linear on
// sparse patterns.
func HessianSubstitution(c *color.Coloring, b *mat.Dense) ([]float64, error) {
	if c == nil {
		return nil, ErrNilColoring
	}
	if c.Mode() != color.Acyclic {
		return nil, ErrModeMismatch
	}
	if err := checkBlock(c, b); err != nil {
		return nil, err
	}

	p := c.Pattern()
	n := p.Rows()
	num := c.NumColors()

	// 1) Per-(vertex,color) accumulators seeded from the block, and the
	//    count of unresolved off-diagonal edges each one covers.
	acc := make([][]float64, n)
	deg := make([][]int, n)
	for i := 0; i < n; i++ {
		acc[i] = make([]float64, num+1)
		deg[i] = make([]int, num+1)
		for d := 1; d <= num; d++ {
			acc[i][d] = b.At(i, d-1)
		}
		for _, k := range p.RowIndices(i) {
			if k != i {
				deg[i][c.ColorOf(k)]++
			}
		}
	}

	// 2) Worklist of equations with a single unknown (forest leaves).
	type eq struct{ v, d int }
	var work []eq
	for i := 0; i < n; i++ {
		for d := 1; d <= num; d++ {
			if deg[i][d] == 1 {
				work = append(work, eq{v: i, d: d})
			}
		}
	}

	// 3) Peel: resolving an edge removes one unknown from its mirror
	//    equation, which may in turn become a leaf.
	resolved := make(map[int]float64, (p.NNZ()-n)/2)
	key := func(i, j int) int {
		if i > j {
			i, j = j, i
		}

		return i*n + j
	}
	for len(work) > 0 {
		e := work[len(work)-1]
		work = work[:len(work)-1]
		if deg[e.v][e.d] != 1 {
			continue // stale entry, already peeled through the mirror side
		}
		j := -1
		for _, k := range p.RowIndices(e.v) {
			if k == e.v || c.ColorOf(k) != e.d {
				continue
			}
			if _, done := resolved[key(e.v, k)]; !done {
				j = k

				break
			}
		}
		if j < 0 {
			return nil, ErrIrrecoverable
		}

		val := acc[e.v][e.d]
		resolved[key(e.v, j)] = val
		deg[e.v][e.d] = 0

		ci := c.ColorOf(e.v)
		acc[j][ci] -= val
		deg[j][ci]--
		if deg[j][ci] == 1 {
			work = append(work, eq{v: j, d: ci})
		}
	}

	// 4) Emit in row-major nonzero order; the diagonal comes straight from
	//    the block because properness empties its slot of neighbors.
	out := make([]float64, 0, p.NNZ())
	for _, coord := range p.Coords() {
		if coord.Row == coord.Col {
			out = append(out, b.At(coord.Row, c.ColorOf(coord.Row)-1))

			continue
		}
		v, ok := resolved[key(coord.Row, coord.Col)]
		if !ok {
			return nil, ErrIrrecoverable
		}
		out = append(out, v)
	}

	return out, nil
}
