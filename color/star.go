// SPDX-License-Identifier: MIT
// Package color: greedy star coloring for direct Hessian compression.
//
// A star coloring is a proper coloring in which every path on four
// vertices carries at least three colors; every two-color induced
// subgraph is then a disjoint union of stars, which is what makes every
// off-diagonal entry directly recoverable from the compressed products.
//
// The greedy loop assigns each vertex the smallest color that neither
// collides with a neighbor nor completes a two-colored four-vertex path
// among already-colored vertices. Every fully-colored P4 gets its final
// vertex checked at assignment time, so the invariant holds by
// construction for any visiting order.

package color

import "github.com/katalvlaran/sparsik/pattern"

// Hessian computes a Star or Acyclic coloring of the adjacency graph of a
// symmetric pattern with a structurally full diagonal.
//
// Stage 1 (Validate): non-nil, symmetric, full diagonal — the
// preconditions of the decompression theorems, rejected before any
// coloring work (never mid-algorithm).
// Stage 2 (Greedy): sequential coloring under the discipline's rule.
// Stage 3 (Verify): check the discipline on the finished assignment.
//
// Errors: ErrPatternNil, ErrUnknownMode, pattern.ErrNotSquare,
// pattern.ErrNotSymmetric, pattern.ErrZeroDiagonal; ErrVerifyFailed only
// on an internal invariant breach.
func Hessian(p *pattern.Pattern, mode Mode, opts ...Option) (*Coloring, error) {
	o := gatherOptions(opts...)
	if p == nil {
		return nil, ErrPatternNil
	}
	if mode != Star && mode != Acyclic {
		return nil, ErrUnknownMode
	}
	// Structural preconditions are hard failures, checked up front.
	if err := pattern.ValidateSymmetric(p); err != nil {
		return nil, err
	}
	if err := pattern.ValidateFullDiagonal(p); err != nil {
		return nil, err
	}

	adj, err := p.AdjacencyLists()
	if err != nil {
		return nil, err
	}
	order := orderVertices(adj, o.ordering)

	var colors []int
	var num int
	if mode == Star {
		colors, num = greedyStar(adj, order)
		err = VerifyStar(p, colors)
	} else {
		colors, num = greedyAcyclic(adj, order)
		err = VerifyAcyclic(p, colors)
	}
	if err != nil {
		return nil, err
	}

	return &Coloring{mode: mode, orient: ByColumns, colors: colors, num: num, pat: p}, nil
}

// greedyStar colors vertices in order, taking for each the smallest color
// that keeps the partial coloring proper and P4-safe.
// Complexity: O(Σ_v candidates(v) · deg³) worst case; pattern-scale
// graphs keep this trivial.
func greedyStar(adj [][]int, order []int) ([]int, int) {
	n := len(adj)
	colors := make([]int, n)
	num := 0

	for _, v := range order {
		// 1) Colors of direct neighbors are always forbidden (properness).
		forbidden := make(map[int]bool, len(adj[v]))
		for _, w := range adj[v] {
			if cw := colors[w]; cw > 0 {
				forbidden[cw] = true
			}
		}

		// 2) Smallest candidate passing both the properness and the
		//    two-colored-P4 test.
		c := 1
		for forbidden[c] || completesBicoloredP4(adj, colors, v, c) {
			c++
		}
		colors[v] = c
		if c > num {
			num = c
		}
	}

	return colors, num
}

// completesBicoloredP4 reports whether assigning color c to v would
// produce a path on four already-colored vertices using only two colors.
// Two placements of v are possible and both are checked:
//
//	endpoint: v(c) — w(d) — x(c) — y(d)
//	internal: u(d) — v(c) — w(d) — x(c)
func completesBicoloredP4(adj [][]int, colors []int, v, c int) bool {
	for _, w := range adj[v] {
		d := colors[w]
		if d == 0 || d == c {
			continue
		}
		for _, x := range adj[w] {
			if x == v || colors[x] != c {
				continue
			}
			// internal: a second neighbor of v colored d closes u-v-w-x.
			for _, u := range adj[v] {
				if u != w && colors[u] == d {
					return true
				}
			}
			// endpoint: a neighbor of x colored d closes v-w-x-y.
			for _, y := range adj[x] {
				if y != w && y != v && colors[y] == d {
					return true
				}
			}
		}
	}

	return false
}
