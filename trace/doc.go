// Package trace detects the sparsity pattern of Jacobians and Hessians by
// abstract interpretation: every scalar input is replaced by a tracer that
// carries the set of input indices it may depend on, the user's function
// runs unmodified over tracers, and the final dependency sets become the
// boolean pattern.
//
// The trace package provides:
//
//   - IndexSet, a fixed-width bitset over input indices (O(word) unions).
//   - Tracer for first-order (Jacobian) detection: value-preserving
//     primitives union dependency sets, locally-constant primitives clear
//     them, comparisons read the primal value so control flow follows the
//     probe point.
//   - HessTracer for second-order (Hessian) detection: alongside the
//     first-order set it accumulates unordered index pairs wherever a
//     primitive mixes its operands nonlinearly.
//   - JacobianPattern / GradientPattern / HessianPattern entry points
//     producing pattern.Pattern values.
//   - A named-primitive registry for dynamically dispatched programs; an
//     unknown name is a hard ErrUnsupportedOp, never a silent fallback.
//
// Guarantee: for programs built from the supported primitives the detected
// pattern is a sound over-approximation — every true structural nonzero is
// marked; spurious marks are possible, silence about a true dependency is
// not. The pattern is valid for all inputs sharing the probe point's
// control-flow path.
package trace
