// SPDX-License-Identifier: MIT
// Package trace: first-order tracer.
//
// Tracer is the operator-overloading surface for Jacobian detection. Go has
// no operator overloading, so the closed primitive set is a method set: one
// method per supported operation, each with an explicit propagation rule.
// The rules fall into three families:
//
//   - value-combining (Add, Mul, Div, ...): union of operand sets;
//   - value-preserving unaries (Sin, Exp, ...): set passes through;
//   - locally constant (Sign, Floor, ...): set resets to empty — these are
//     flat almost everywhere, so they contribute no Jacobian entries.
//
// Each tracer also carries the primal value so that comparisons and
// piecewise primitives follow the control-flow path of the probe point.

package trace

import "math"

// Tracer is an abstract scalar: a primal value plus the set of input
// indices the value may structurally depend on.
type Tracer struct {
	val  float64
	deps IndexSet
}

// Input seeds tracer number i of width inputs with primal value v and
// dependency set {i}. Panics if i is outside [0, width).
func Input(v float64, i, width int) Tracer {
	return Tracer{val: v, deps: Singleton(width, i)}
}

// Constant lifts a plain number into a tracer with an empty dependency set.
func Constant(v float64, width int) Tracer {
	return Tracer{val: v, deps: NewIndexSet(width)}
}

// Value returns the primal value.
func (t Tracer) Value() float64 { return t.val }

// Deps returns the dependency set.
func (t Tracer) Deps() IndexSet { return t.deps }

// ---------- binary tracer × tracer ----------

// Add returns t + u; dependencies union.
func (t Tracer) Add(u Tracer) Tracer {
	return Tracer{val: t.val + u.val, deps: t.deps.Union(u.deps)}
}

// Sub returns t - u; dependencies union.
func (t Tracer) Sub(u Tracer) Tracer {
	return Tracer{val: t.val - u.val, deps: t.deps.Union(u.deps)}
}

// Mul returns t * u; dependencies union.
func (t Tracer) Mul(u Tracer) Tracer {
	return Tracer{val: t.val * u.val, deps: t.deps.Union(u.deps)}
}

// Div returns t / u; dependencies union — the quotient depends on both the
// numerator and the denominator, matching Mul.
func (t Tracer) Div(u Tracer) Tracer {
	return Tracer{val: t.val / u.val, deps: t.deps.Union(u.deps)}
}

// Pow returns t^u; dependencies union.
func (t Tracer) Pow(u Tracer) Tracer {
	return Tracer{val: math.Pow(t.val, u.val), deps: t.deps.Union(u.deps)}
}

// ---------- binary tracer × constant ----------

// AddConst returns t + c; shifting by a constant adds no dependencies.
func (t Tracer) AddConst(c float64) Tracer {
	return Tracer{val: t.val + c, deps: t.deps}
}

// SubConst returns t - c.
func (t Tracer) SubConst(c float64) Tracer {
	return Tracer{val: t.val - c, deps: t.deps}
}

// MulConst returns t * c; scaling adds no dependencies.
func (t Tracer) MulConst(c float64) Tracer {
	return Tracer{val: t.val * c, deps: t.deps}
}

// DivConst returns t / c; dividing by a plain number leaves the set alone.
func (t Tracer) DivConst(c float64) Tracer {
	return Tracer{val: t.val / c, deps: t.deps}
}

// PowConst returns t^c.
func (t Tracer) PowConst(c float64) Tracer {
	return Tracer{val: math.Pow(t.val, c), deps: t.deps}
}

// ---------- value-preserving unaries ----------

// Neg returns -t.
func (t Tracer) Neg() Tracer { return Tracer{val: -t.val, deps: t.deps} }

// Abs returns |t|; piecewise linear, set passes through.
func (t Tracer) Abs() Tracer { return Tracer{val: math.Abs(t.val), deps: t.deps} }

// Sin returns sin(t).
func (t Tracer) Sin() Tracer { return Tracer{val: math.Sin(t.val), deps: t.deps} }

// Cos returns cos(t).
func (t Tracer) Cos() Tracer { return Tracer{val: math.Cos(t.val), deps: t.deps} }

// Tan returns tan(t).
func (t Tracer) Tan() Tracer { return Tracer{val: math.Tan(t.val), deps: t.deps} }

// Exp returns e^t.
func (t Tracer) Exp() Tracer { return Tracer{val: math.Exp(t.val), deps: t.deps} }

// Log returns ln(t).
func (t Tracer) Log() Tracer { return Tracer{val: math.Log(t.val), deps: t.deps} }

// Sqrt returns √t.
func (t Tracer) Sqrt() Tracer { return Tracer{val: math.Sqrt(t.val), deps: t.deps} }

// Tanh returns tanh(t).
func (t Tracer) Tanh() Tracer { return Tracer{val: math.Tanh(t.val), deps: t.deps} }

// ---------- locally constant ----------

// Sign returns sign(t) with an empty dependency set: the function is flat
// on either side of zero, so no Jacobian entry can arise from it. The
// pattern may miss sparsity exactly at the non-differentiable boundary;
// that trade-off is intentional.
func (t Tracer) Sign() Tracer {
	s := 0.0
	switch {
	case t.val > 0:
		s = 1
	case t.val < 0:
		s = -1
	}

	return Tracer{val: s, deps: NewIndexSet(t.deps.width)}
}

// Floor returns ⌊t⌋ with an empty dependency set.
func (t Tracer) Floor() Tracer {
	return Tracer{val: math.Floor(t.val), deps: NewIndexSet(t.deps.width)}
}

// Ceil returns ⌈t⌉ with an empty dependency set.
func (t Tracer) Ceil() Tracer {
	return Tracer{val: math.Ceil(t.val), deps: NewIndexSet(t.deps.width)}
}

// Round returns round(t) with an empty dependency set.
func (t Tracer) Round() Tracer {
	return Tracer{val: math.Round(t.val), deps: NewIndexSet(t.deps.width)}
}

// ---------- comparisons (plain bool, pinned to the probe point) ----------

// Less reports t < u on primal values.
func (t Tracer) Less(u Tracer) bool { return t.val < u.val }

// LessEq reports t <= u on primal values.
func (t Tracer) LessEq(u Tracer) bool { return t.val <= u.val }

// Greater reports t > u on primal values.
func (t Tracer) Greater(u Tracer) bool { return t.val > u.val }

// GreaterEq reports t >= u on primal values.
func (t Tracer) GreaterEq(u Tracer) bool { return t.val >= u.val }

// EqualTo reports t == u on primal values.
func (t Tracer) EqualTo(u Tracer) bool { return t.val == u.val }
