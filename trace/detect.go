// SPDX-License-Identifier: MIT
// Package trace: detection entry points.
//
// Each call seeds fresh tracers, runs the user's function once, and reads
// the pattern off the output tracers. Tracers live only for the duration
// of the call; the returned pattern is immutable and meant to be reused
// across many compressed evaluations at the same control-flow path.

package trace

import "github.com/katalvlaran/sparsik/pattern"

// JacobianPattern detects the structural sparsity of the Jacobian of f at
// probe point x.
// Stage 1 (Validate): f non-nil, x non-empty.
// Stage 2 (Seed): input i becomes a tracer with value x[i] and set {i}.
// Stage 3 (Run): f executes unmodified over tracers.
// Stage 4 (Extract): entry (j, i) is nonzero iff i is in output j's set.
//
// The pattern is a conservative superset of the true nonzero set, valid
// for every input sharing x's control-flow path.
// Errors: ErrNilFunction, ErrEmptyInput, ErrNoOutputs.
// Complexity: one evaluation of f plus O(m·n/64) extraction.
func JacobianPattern(f func([]Tracer) []Tracer, x []float64) (*pattern.Pattern, error) {
	// Validate the callable and the probe point.
	if f == nil {
		return nil, ErrNilFunction
	}
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	// Seed one tracer per input with a singleton dependency set.
	inputs := make([]Tracer, n)
	for i, v := range x {
		inputs[i] = Input(v, i, n)
	}

	// Run the function unmodified.
	outputs := f(inputs)
	if len(outputs) == 0 {
		return nil, ErrNoOutputs
	}

	// Read the pattern off the output dependency sets.
	var coords []pattern.Coord
	for j, out := range outputs {
		for _, i := range out.Deps().Indices() {
			coords = append(coords, pattern.Coord{Row: j, Col: i})
		}
	}

	return pattern.New(len(outputs), n, coords)
}

// GradientPattern detects the 1×n sparsity of the gradient of a
// scalar-valued f at x. Convenience wrapper over JacobianPattern.
// Errors: ErrNilFunction, ErrEmptyInput.
func GradientPattern(f func([]Tracer) Tracer, x []float64) (*pattern.Pattern, error) {
	if f == nil {
		return nil, ErrNilFunction
	}

	return JacobianPattern(func(in []Tracer) []Tracer {
		return []Tracer{f(in)}
	}, x)
}

// HessianPattern detects the symmetric n×n sparsity of the Hessian of a
// scalar-valued f at probe point x, using second-order tracers (the
// structural Jacobian of the gradient).
// Stage 1 (Validate): f non-nil, x non-empty.
// Stage 2 (Seed & Run): as JacobianPattern but with HessTracer inputs.
// Stage 3 (Extract): every recorded interaction pair {i, j} produces the
// mirrored entries (i,j) and (j,i); pairs {i,i} produce the diagonal.
//
// Errors: ErrNilFunction, ErrEmptyInput.
// Complexity: one evaluation of f plus O(pairs) extraction.
func HessianPattern(f func([]HessTracer) HessTracer, x []float64) (*pattern.Pattern, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	inputs := make([]HessTracer, n)
	for i, v := range x {
		inputs[i] = HInput(v, i, n)
	}

	out := f(inputs)

	var coords []pattern.Coord
	for _, pr := range out.Pairs().Pairs() {
		coords = append(coords, pattern.Coord{Row: pr.I, Col: pr.J})
		if pr.I != pr.J {
			coords = append(coords, pattern.Coord{Row: pr.J, Col: pr.I})
		}
	}

	return pattern.New(n, n, coords)
}
