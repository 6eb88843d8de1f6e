// SPDX-License-Identifier: MIT
// Package color: greedy acyclic coloring for substitution-based Hessian
// compression.
//
// An acyclic coloring is a proper coloring in which every cycle carries
// at least three colors, so every two-color induced subgraph is a forest.
// Decompression then peels forest leaves with a substitution recurrence —
// sequential, but typically cheaper in colors than the star discipline.
//
// The greedy loop assigns each vertex the smallest color that neither
// collides with a neighbor nor closes a cycle inside a two-color induced
// subgraph. A cycle's final vertex v has two same-colored neighbors
// already connected through the two colors involved, so checking
// connectivity between same-colored neighbor pairs at assignment time
// catches every cycle exactly once.

package color

// greedyAcyclic colors vertices in order under the acyclic discipline.
// Complexity: O(Σ_v candidates(v) · (V + E)) worst case via the BFS
// connectivity probes; pattern-scale graphs keep this trivial.
func greedyAcyclic(adj [][]int, order []int) ([]int, int) {
	n := len(adj)
	colors := make([]int, n)
	num := 0

	for _, v := range order {
		// 1) Properness: neighbor colors are forbidden.
		forbidden := make(map[int]bool, len(adj[v]))
		for _, w := range adj[v] {
			if cw := colors[w]; cw > 0 {
				forbidden[cw] = true
			}
		}

		// 2) Smallest candidate that closes no two-colored cycle.
		c := 1
		for forbidden[c] || closesBicoloredCycle(adj, colors, v, c) {
			c++
		}
		colors[v] = c
		if c > num {
			num = c
		}
	}

	return colors, num
}

// closesBicoloredCycle reports whether assigning color c to v would close
// a cycle in some {c, d}-induced subgraph: that happens exactly when two
// neighbors of v share a color d and are already connected by a path
// through vertices colored c or d (v excluded).
func closesBicoloredCycle(adj [][]int, colors []int, v, c int) bool {
	// Group colored neighbors by their color.
	byColor := make(map[int][]int)
	for _, w := range adj[v] {
		if d := colors[w]; d > 0 {
			byColor[d] = append(byColor[d], w)
		}
	}

	for d, group := range byColor {
		if len(group) < 2 {
			continue // a cycle through v needs two same-colored neighbors
		}
		// Flood the {c,d} subgraph component by component: reaching a
		// group member from an earlier member's flood means the two are
		// connected without v.
		visited := make(map[int]bool, len(group))
		for _, start := range group {
			if visited[start] {
				return true
			}
			visited[start] = true
			queue := []int{start}
			for len(queue) > 0 {
				u := queue[0]
				queue = queue[1:]
				for _, w := range adj[u] {
					if w == v || visited[w] {
						continue
					}
					if cw := colors[w]; cw != c && cw != d {
						continue
					}
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	return false
}
