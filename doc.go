// Package sparsik is an in-memory toolkit for computing sparse Jacobians
// and Hessians through matrix compression: detect the sparsity pattern,
// color it, ask your AD engine for a handful of matrix-vector products,
// and decompress every nonzero entry exactly.
//
// 🚀 What is sparsik?
//
//	A deterministic, library-only pipeline in four stages:
//		• trace/      — operator-overloading sparsity detection (Jacobian & Hessian)
//		• pattern/    — immutable CSR/CSC boolean sparsity patterns + validators
//		• color/      — greedy distance-2, star and acyclic colorings, verified at construction
//		• decompress/ — seed vectors, compressed products, direct & substitution decoding
//
// ✨ Why choose sparsik?
//
//   - Amortization-first — pattern and coloring are computed once and reused
//     read-only across as many derivative evaluations as you like
//   - Rock-solid guarantees — every coloring is verified against its
//     discipline before it is returned; decompression never guesses
//   - Sentinel errors everywhere — match with errors.Is, no panics on user input
//   - Bring your own AD — JVP/VJP/HVP products are plain callbacks
//
// Quick sketch for a Jacobian:
//
//	pat, _ := trace.JacobianPattern(f, x)      // which entries can be nonzero
//	col, _ := color.Jacobian(pat)              // structurally orthogonal column groups
//	b,   _ := decompress.Compress(col, jvp)    // one JVP per color
//	vals, _ := decompress.Jacobian(col, b)     // every nonzero, exactly
//
// The build/ package ships seeded pattern generators for tests and
// benchmarks; examples/ holds runnable end-to-end walkthroughs.
package sparsik
