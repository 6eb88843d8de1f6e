// Package color computes greedy colorings of sparsity patterns so that a
// sparse matrix can be recovered from a handful of matrix-vector products.
//
// Three disciplines are offered, each with an exact correctness contract:
//
//   - Distance2 (Jacobian, rectangular patterns): columns sharing a color
//     are structurally orthogonal — no common nonzero row — so one joint
//     product recovers each of them directly. Equivalent to a distance-1
//     coloring of the column intersection graph (the square of the
//     bipartite graph restricted to columns).
//   - Star (Hessian, symmetric with full diagonal): a proper distance-1
//     coloring in which every path on four vertices uses at least three
//     colors. Every two-color induced subgraph is then a disjoint union of
//     stars and every entry decompresses directly.
//   - Acyclic (Hessian, symmetric with full diagonal): a proper distance-1
//     coloring in which every cycle uses at least three colors. Two-color
//     subgraphs are forests; decompression needs a substitution recurrence
//     but typically fewer colors than Star.
//
// For any valid adjacency graph G the minimum color counts are ordered
// ξ₁(G) ≤ ξ_acyclic(G) ≤ ξ_star(G) ≤ ξ₂(G) = ξ₁(G²); the disciplines form
// a validity chain (every distance-2 coloring is a star coloring, every
// star coloring is acyclic, every acyclic coloring is proper).
//
// All algorithms are heuristic greedy sequential colorings: exact minimum
// coloring is NP-hard and explicitly not attempted. Correctness never
// depends on the vertex order — only the color count does — and every
// returned Coloring is verified against its discipline before it reaches
// the caller. A Coloring is immutable and safe to reuse read-only across
// any number of compressed evaluations.
package color
