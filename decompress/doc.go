// Package decompress turns compressed derivative products back into the
// individual nonzero entries of a sparse Jacobian or Hessian.
//
// What
//
//	A coloring with p colors shrinks n directional products down to p:
//	each color class contributes one seed vector (the indicator of the
//	class) and one product column. Because same-colored columns are
//	structurally orthogonal (distance-2), or the coloring satisfies the
//	star/acyclic discipline on a symmetric pattern, every nonzero of the
//	original matrix can be read back out of the compressed block.
//
// Why
//
//	Computing J·v or H·v costs one forward sweep regardless of the seed,
//	so the whole Jacobian/Hessian costs p sweeps instead of n. The
//	coloring is computed once per sparsity pattern and amortized across
//	every evaluation point.
//
// How
//
//	Seeds enumerates the indicator vectors, Compress evaluates a
//	caller-supplied Product for each of them (optionally in parallel) and
//	assembles the compressed block, and Jacobian / HessianDirect /
//	HessianSubstitution recover the entries:
//
//	  - Jacobian: distance-2 coloring, one lookup per entry.
//	  - HessianDirect: star coloring, each off-diagonal entry read from
//	    whichever side holds it alone in its color slot.
//	  - HessianSubstitution: acyclic coloring, entries recovered by
//	    peeling leaves of the two-colored forests.
//
// Recovered values are exact when the products are exact: direct modes
// perform no arithmetic at all, substitution performs one subtraction
// per already-recovered sibling entry.
package decompress
