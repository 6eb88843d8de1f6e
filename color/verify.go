// SPDX-License-Identifier: MIT
// Package color: independent discipline verifiers.
//
// The decompressors cannot detect a wrong coloring at runtime — entries
// would silently overwrite one another — so validity is enforced here, at
// construction time. The verifiers are deliberately brute-force and
// share no code with the greedy algorithms: an engine bug cannot hide in
// a checker built from the same loop.

package color

import (
	"fmt"

	"github.com/katalvlaran/sparsik/pattern"
)

// verifyErrorf wraps ErrVerifyFailed with the violated clause.
func verifyErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrVerifyFailed)
}

// checkAssignment rejects malformed color slices before any structural
// work: wrong length or non-positive ids.
func checkAssignment(colors []int, want int) error {
	if len(colors) != want {
		return ErrBadColoring
	}
	for _, c := range colors {
		if c < 1 {
			return ErrBadColoring
		}
	}

	return nil
}

// VerifyDistance2 checks structural orthogonality: no two same-colored
// columns (rows under ByRows) of p share a nonzero row (column).
// Brute force over color-class pairs.
// Errors: ErrPatternNil, ErrBadColoring, ErrVerifyFailed.
// Complexity: O(n² + n·nnz) worst case.
func VerifyDistance2(p *pattern.Pattern, colors []int, orient Orientation) error {
	if p == nil {
		return ErrPatternNil
	}
	work := p
	if orient == ByRows {
		var err error
		if work, err = p.Transpose(); err != nil {
			return err
		}
	}
	if err := checkAssignment(colors, work.Cols()); err != nil {
		return err
	}

	num := 0
	for _, c := range colors {
		if c > num {
			num = c
		}
	}

	// rowOwner[r] remembers which column of the current class occupies
	// row r; a second occupant breaks orthogonality.
	rowOwner := make([]int, work.Rows())
	for c := 1; c <= num; c++ {
		for i := range rowOwner {
			rowOwner[i] = -1
		}
		for col := 0; col < work.Cols(); col++ {
			if colors[col] != c {
				continue
			}
			for _, r := range work.ColIndices(col) {
				if rowOwner[r] >= 0 {
					return verifyErrorf("columns %d and %d share row %d under color %d",
						rowOwner[r], col, r, c)
				}
				rowOwner[r] = col
			}
		}
	}

	return nil
}

// VerifyProper checks the distance-1 condition on the adjacency graph of
// a symmetric pattern: no edge joins two same-colored vertices.
// Errors: ErrPatternNil, pattern sentinels, ErrBadColoring,
// ErrVerifyFailed.
// Complexity: O(n + nnz).
func VerifyProper(p *pattern.Pattern, colors []int) error {
	if p == nil {
		return ErrPatternNil
	}
	adj, err := p.AdjacencyLists()
	if err != nil {
		return err
	}
	if err = checkAssignment(colors, len(adj)); err != nil {
		return err
	}
	for v, nbr := range adj {
		for _, w := range nbr {
			if colors[v] == colors[w] {
				return verifyErrorf("edge (%d,%d) is monochromatic", v, w)
			}
		}
	}

	return nil
}

// VerifyStar checks the star discipline: proper, and every path on four
// vertices uses at least three colors. With properness established, a
// P4 a—b—c—d is two-colored exactly when color(a)=color(c) and
// color(b)=color(d), so enumerating middle edges (b,c) suffices.
// Errors: as VerifyProper plus ErrVerifyFailed for a bad P4.
// Complexity: O(Σ_(b,c)∈E deg(b)·deg(c)).
func VerifyStar(p *pattern.Pattern, colors []int) error {
	if err := VerifyProper(p, colors); err != nil {
		return err
	}
	adj, _ := p.AdjacencyLists()

	for b, nbr := range adj {
		for _, c := range nbr {
			// Each undirected middle edge once.
			if b > c {
				continue
			}
			for _, a := range adj[b] {
				if a == c || colors[a] != colors[c] {
					continue
				}
				for _, d := range adj[c] {
					if d == b || d == a {
						continue
					}
					if colors[d] == colors[b] {
						return verifyErrorf("path %d-%d-%d-%d is two-colored", a, b, c, d)
					}
				}
			}
		}
	}

	return nil
}

// VerifyAcyclic checks the acyclic discipline: proper, and the subgraph
// induced by any two colors is a forest (equivalently, every cycle uses
// at least three colors). Each color pair gets an undirected DFS cycle
// check with parent skipping.
// Errors: as VerifyProper plus ErrVerifyFailed for a two-colored cycle.
// Complexity: O(p² · (n + nnz)).
func VerifyAcyclic(p *pattern.Pattern, colors []int) error {
	if err := VerifyProper(p, colors); err != nil {
		return err
	}
	adj, _ := p.AdjacencyLists()

	num := 0
	for _, c := range colors {
		if c > num {
			num = c
		}
	}

	for c1 := 1; c1 <= num; c1++ {
		for c2 := c1 + 1; c2 <= num; c2++ {
			if err := forestCheck(adj, colors, c1, c2); err != nil {
				return err
			}
		}
	}

	return nil
}

// forestCheck verifies the {c1,c2}-induced subgraph has no cycle via an
// iterative DFS that skips the tree edge back to the parent.
func forestCheck(adj [][]int, colors []int, c1, c2 int) error {
	n := len(adj)
	visited := make([]bool, n)

	inSub := func(v int) bool { return colors[v] == c1 || colors[v] == c2 }

	type frame struct{ v, parent int }
	for s := 0; s < n; s++ {
		if visited[s] || !inSub(s) {
			continue
		}
		stack := []frame{{v: s, parent: -1}}
		visited[s] = true
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adj[f.v] {
				if !inSub(w) || w == f.parent {
					continue
				}
				if visited[w] {
					return verifyErrorf("colors {%d,%d} induce a cycle through %d", c1, c2, w)
				}
				visited[w] = true
				stack = append(stack, frame{v: w, parent: f.v})
			}
		}
	}

	return nil
}
