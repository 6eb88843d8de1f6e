package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sparsik/trace"
)

// TestTracer_CombiningOpsUnion verifies +, -, *, /, ^ union dependency
// sets and compute the primal value.
func TestTracer_CombiningOpsUnion(t *testing.T) {
	x := trace.Input(3, 0, 4)
	y := trace.Input(5, 2, 4)

	sum := x.Add(y)
	assert.Equal(t, 8.0, sum.Value())
	assert.Equal(t, []int{0, 2}, sum.Deps().Indices())

	prod := x.Mul(y)
	assert.Equal(t, 15.0, prod.Value())
	assert.Equal(t, []int{0, 2}, prod.Deps().Indices())

	// Division by a tracer unions both operand sets, matching Mul.
	quot := x.Div(y)
	assert.Equal(t, 0.6, quot.Value())
	assert.Equal(t, []int{0, 2}, quot.Deps().Indices())

	diff := y.Sub(x)
	assert.Equal(t, []int{0, 2}, diff.Deps().Indices())

	pw := x.Pow(y)
	assert.Equal(t, []int{0, 2}, pw.Deps().Indices())
}

// TestTracer_ConstOpsPreserveDeps verifies scaling/shifting by plain
// numbers never adds or removes dependencies.
func TestTracer_ConstOpsPreserveDeps(t *testing.T) {
	x := trace.Input(8, 1, 3)

	for _, got := range []trace.Tracer{
		x.AddConst(2), x.SubConst(2), x.MulConst(2), x.DivConst(2), x.PowConst(2),
	} {
		assert.Equal(t, []int{1}, got.Deps().Indices())
	}
	assert.Equal(t, 4.0, x.DivConst(2).Value())
}

// TestTracer_SmoothUnariesPreserveDeps verifies value-preserving unaries.
func TestTracer_SmoothUnariesPreserveDeps(t *testing.T) {
	x := trace.Input(-2, 0, 2)

	for _, got := range []trace.Tracer{
		x.Neg(), x.Abs(), x.Sin(), x.Cos(), x.Tan(), x.Exp(), x.Tanh(),
	} {
		assert.Equal(t, []int{0}, got.Deps().Indices())
	}
	assert.Equal(t, 2.0, x.Abs().Value())
}

// TestTracer_LocallyConstantClears verifies sign/floor/ceil/round reset
// the dependency set to empty — they contribute no Jacobian entries.
func TestTracer_LocallyConstantClears(t *testing.T) {
	x := trace.Input(-2.7, 1, 3)

	sg := x.Sign()
	assert.Equal(t, -1.0, sg.Value())
	assert.True(t, sg.Deps().IsEmpty())

	assert.True(t, x.Floor().Deps().IsEmpty())
	assert.True(t, x.Ceil().Deps().IsEmpty())
	assert.True(t, x.Round().Deps().IsEmpty())

	// Downstream of a cleared set, dependencies stay gone.
	y := sg.Mul(trace.Input(4, 2, 3))
	assert.Equal(t, []int{2}, y.Deps().Indices())
}

// TestTracer_ComparisonsUsePrimal verifies branches follow the probe
// point's values.
func TestTracer_ComparisonsUsePrimal(t *testing.T) {
	a := trace.Input(1, 0, 2)
	b := trace.Input(2, 1, 2)

	assert.True(t, a.Less(b))
	assert.True(t, b.Greater(a))
	assert.True(t, a.LessEq(a))
	assert.True(t, a.GreaterEq(a))
	assert.True(t, a.EqualTo(a))
	assert.False(t, a.EqualTo(b))
}
