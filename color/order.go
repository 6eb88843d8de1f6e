// SPDX-License-Identifier: MIT
// Package color: greedy vertex orderings.
//
// All heuristics are deterministic: ties break toward the smaller vertex
// index, so the same graph and options always yield the same coloring.

package color

import "sort"

// orderVertices returns the visiting sequence for the greedy loop over a
// graph given as adjacency lists.
func orderVertices(adj [][]int, ord Ordering) []int {
	switch ord {
	case LargestFirst:
		return largestFirst(adj)
	case SmallestLast:
		return smallestLast(adj)
	default:
		return naturalOrder(len(adj))
	}
}

// naturalOrder returns 0..n-1.
// Complexity: O(n).
func naturalOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// largestFirst sorts vertices by descending degree, ties ascending index.
// Complexity: O(n log n).
func largestFirst(adj [][]int) []int {
	out := naturalOrder(len(adj))
	sort.SliceStable(out, func(a, b int) bool {
		da, db := len(adj[out[a]]), len(adj[out[b]])
		if da != db {
			return da > db
		}

		return out[a] < out[b]
	})

	return out
}

// smallestLast repeatedly removes a minimum-degree vertex (ties toward
// the smaller index) and returns the reverse removal order — the classic
// degeneracy ordering.
// Complexity: O(n² ) with the simple scan; graphs here are pattern-sized.
func smallestLast(adj [][]int) []int {
	n := len(adj)
	deg := make([]int, n)
	removed := make([]bool, n)
	for v := range adj {
		deg[v] = len(adj[v])
	}

	order := make([]int, n)
	for k := n - 1; k >= 0; k-- {
		// 1) Pick the unremoved vertex of minimum current degree.
		best := -1
		for v := 0; v < n; v++ {
			if removed[v] {
				continue
			}
			if best < 0 || deg[v] < deg[best] {
				best = v
			}
		}

		// 2) Remove it and shrink neighbor degrees.
		removed[best] = true
		order[k] = best
		for _, w := range adj[best] {
			if !removed[w] {
				deg[w]--
			}
		}
	}

	return order
}
