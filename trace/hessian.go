// SPDX-License-Identifier: MIT
// Package trace: second-order tracer.
//
// HessTracer detects the Hessian pattern of a scalar function without
// materializing the gradient: alongside the first-order dependency set it
// carries the set of unordered input pairs (i,j) for which ∂²/∂x_i∂x_j may
// be nonzero. Linear primitives merge both structures; nonlinear
// primitives additionally cross their operands' first-order sets into new
// pairs. The result equals the pattern of the Jacobian of the gradient for
// rule-covered programs, as an over-approximation.

package trace

import (
	"math"
	"sort"
)

// Pair is an unordered index pair with I <= J.
type Pair struct {
	I, J int
}

// PairSet is an immutable set of unordered index pairs. Operations return
// new sets; teaching-scale dimensions keep the map footprint trivial.
type PairSet struct {
	m map[uint64]struct{}
}

// NewPairSet returns the empty pair set.
func NewPairSet() PairSet { return PairSet{m: map[uint64]struct{}{}} }

func pairKey(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}

	return uint64(uint32(i))<<32 | uint64(uint32(j))
}

// Has reports membership of the unordered pair {i, j}.
func (s PairSet) Has(i, j int) bool {
	_, ok := s.m[pairKey(i, j)]

	return ok
}

// Len returns the number of pairs.
func (s PairSet) Len() int { return len(s.m) }

// Pairs returns the members sorted by (I, J).
func (s PairSet) Pairs() []Pair {
	out := make([]Pair, 0, len(s.m))
	for k := range s.m {
		out = append(out, Pair{I: int(k >> 32), J: int(uint32(k))})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}

		return out[a].J < out[b].J
	})

	return out
}

// unionPairs returns a ∪ b as a fresh set.
func unionPairs(a, b PairSet) PairSet {
	u := PairSet{m: make(map[uint64]struct{}, len(a.m)+len(b.m))}
	for k := range a.m {
		u.m[k] = struct{}{}
	}
	for k := range b.m {
		u.m[k] = struct{}{}
	}

	return u
}

// crossInto adds every unordered pair of a × b into dst (in place; dst is
// always a fresh set owned by the caller).
func crossInto(dst PairSet, a, b IndexSet) {
	for _, i := range a.Indices() {
		for _, j := range b.Indices() {
			dst.m[pairKey(i, j)] = struct{}{}
		}
	}
}

// HessTracer is an abstract scalar for Hessian detection: primal value,
// first-order dependency set, and second-order interaction pairs.
type HessTracer struct {
	val   float64
	lin   IndexSet
	pairs PairSet
}

// HInput seeds Hessian tracer i of width inputs: value v, first-order set
// {i}, no interaction pairs. Panics if i is outside [0, width).
func HInput(v float64, i, width int) HessTracer {
	return HessTracer{val: v, lin: Singleton(width, i), pairs: NewPairSet()}
}

// HConstant lifts a plain number: empty set, no pairs.
func HConstant(v float64, width int) HessTracer {
	return HessTracer{val: v, lin: NewIndexSet(width), pairs: NewPairSet()}
}

// Value returns the primal value.
func (t HessTracer) Value() float64 { return t.val }

// Linear returns the first-order dependency set.
func (t HessTracer) Linear() IndexSet { return t.lin }

// Pairs returns the second-order interaction set.
func (t HessTracer) Pairs() PairSet { return t.pairs }

// linear is the shared rule for operations that are affine in their traced
// operands: first-order sets union, pair sets union, no new pairs.
func (t HessTracer) linear(val float64, u HessTracer) HessTracer {
	return HessTracer{val: val, lin: t.lin.Union(u.lin), pairs: unionPairs(t.pairs, u.pairs)}
}

// Add returns t + u (linear).
func (t HessTracer) Add(u HessTracer) HessTracer { return t.linear(t.val+u.val, u) }

// Sub returns t - u (linear).
func (t HessTracer) Sub(u HessTracer) HessTracer { return t.linear(t.val-u.val, u) }

// Mul returns t * u. The product couples every first-order dependency of t
// with every first-order dependency of u (∂²(tu)/∂t∂u = 1).
func (t HessTracer) Mul(u HessTracer) HessTracer {
	out := t.linear(t.val*u.val, u)
	crossInto(out.pairs, t.lin, u.lin)

	return out
}

// Div returns t / u. Beyond the Mul coupling, 1/u is nonlinear in u, so
// the denominator's set also crosses itself.
func (t HessTracer) Div(u HessTracer) HessTracer {
	out := t.linear(t.val/u.val, u)
	crossInto(out.pairs, t.lin, u.lin)
	crossInto(out.pairs, u.lin, u.lin)

	return out
}

// Pow returns t^u, nonlinear in both operands jointly.
func (t HessTracer) Pow(u HessTracer) HessTracer {
	out := t.linear(math.Pow(t.val, u.val), u)
	joint := t.lin.Union(u.lin)
	crossInto(out.pairs, joint, joint)

	return out
}

// ---------- constant operands (affine ⇒ no new pairs) ----------

// AddConst returns t + c.
func (t HessTracer) AddConst(c float64) HessTracer {
	return HessTracer{val: t.val + c, lin: t.lin, pairs: t.pairs}
}

// SubConst returns t - c.
func (t HessTracer) SubConst(c float64) HessTracer {
	return HessTracer{val: t.val - c, lin: t.lin, pairs: t.pairs}
}

// MulConst returns t * c.
func (t HessTracer) MulConst(c float64) HessTracer {
	return HessTracer{val: t.val * c, lin: t.lin, pairs: t.pairs}
}

// DivConst returns t / c.
func (t HessTracer) DivConst(c float64) HessTracer {
	return HessTracer{val: t.val / c, lin: t.lin, pairs: t.pairs}
}

// PowConst returns t^c. c == 1 is the identity (affine); any other
// exponent curves, so the first-order set crosses itself.
func (t HessTracer) PowConst(c float64) HessTracer {
	out := HessTracer{val: math.Pow(t.val, c), lin: t.lin, pairs: t.pairs}
	if c != 1 {
		out.pairs = unionPairs(t.pairs, NewPairSet())
		crossInto(out.pairs, t.lin, t.lin)
	}

	return out
}

// Square returns t², the common shorthand for t.Mul(t).
func (t HessTracer) Square() HessTracer { return t.PowConst(2) }

// ---------- unaries ----------

// Neg returns -t (affine).
func (t HessTracer) Neg() HessTracer {
	return HessTracer{val: -t.val, lin: t.lin, pairs: t.pairs}
}

// Abs returns |t|; piecewise affine, second derivative zero away from the
// kink, so no new pairs.
func (t HessTracer) Abs() HessTracer {
	return HessTracer{val: math.Abs(t.val), lin: t.lin, pairs: t.pairs}
}

// nonlinearUnary is the shared rule for smooth curving unaries: the
// first-order set survives and crosses itself.
func (t HessTracer) nonlinearUnary(val float64) HessTracer {
	out := HessTracer{val: val, lin: t.lin, pairs: unionPairs(t.pairs, NewPairSet())}
	crossInto(out.pairs, t.lin, t.lin)

	return out
}

// Sin returns sin(t).
func (t HessTracer) Sin() HessTracer { return t.nonlinearUnary(math.Sin(t.val)) }

// Cos returns cos(t).
func (t HessTracer) Cos() HessTracer { return t.nonlinearUnary(math.Cos(t.val)) }

// Tan returns tan(t).
func (t HessTracer) Tan() HessTracer { return t.nonlinearUnary(math.Tan(t.val)) }

// Exp returns e^t.
func (t HessTracer) Exp() HessTracer { return t.nonlinearUnary(math.Exp(t.val)) }

// Log returns ln(t).
func (t HessTracer) Log() HessTracer { return t.nonlinearUnary(math.Log(t.val)) }

// Sqrt returns √t.
func (t HessTracer) Sqrt() HessTracer { return t.nonlinearUnary(math.Sqrt(t.val)) }

// Tanh returns tanh(t).
func (t HessTracer) Tanh() HessTracer { return t.nonlinearUnary(math.Tanh(t.val)) }

// ---------- locally constant ----------

// Sign returns sign(t): everything clears, first and second order alike.
func (t HessTracer) Sign() HessTracer {
	s := 0.0
	switch {
	case t.val > 0:
		s = 1
	case t.val < 0:
		s = -1
	}

	return HConstant(s, t.lin.width)
}

// Floor returns ⌊t⌋ with cleared structure.
func (t HessTracer) Floor() HessTracer { return HConstant(math.Floor(t.val), t.lin.width) }

// Ceil returns ⌈t⌉ with cleared structure.
func (t HessTracer) Ceil() HessTracer { return HConstant(math.Ceil(t.val), t.lin.width) }

// Round returns round(t) with cleared structure.
func (t HessTracer) Round() HessTracer { return HConstant(math.Round(t.val), t.lin.width) }

// ---------- comparisons ----------

// Less reports t < u on primal values.
func (t HessTracer) Less(u HessTracer) bool { return t.val < u.val }

// Greater reports t > u on primal values.
func (t HessTracer) Greater(u HessTracer) bool { return t.val > u.val }
