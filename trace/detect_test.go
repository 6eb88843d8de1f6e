package trace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsik/pattern"
	"github.com/katalvlaran/sparsik/trace"
)

// probe45 is the hand-constructed R^5 → R^4 function with the known 4×5
// pattern used throughout the worked examples:
//
//	y0 = x0*x1            → {0,1}
//	y1 = x1 + sin(x2)     → {1,2}
//	y2 = x2*x3 + sign(x4) → {2,3}   (sign is locally constant)
//	y3 = x4/2 - x0        → {0,4}
func probe45(x []trace.Tracer) []trace.Tracer {
	return []trace.Tracer{
		x[0].Mul(x[1]),
		x[1].Add(x[2].Sin()),
		x[2].Mul(x[3]).Add(x[4].Sign()),
		x[4].DivConst(2).Sub(x[0]),
	}
}

// TestJacobianPattern_Known4x5 reproduces the explicit worked pattern.
func TestJacobianPattern_Known4x5(t *testing.T) {
	p, err := trace.JacobianPattern(probe45, []float64{1, 2, 0.5, -1, 3})
	require.NoError(t, err)

	assert.Equal(t, 4, p.Rows())
	assert.Equal(t, 5, p.Cols())
	assert.Equal(t, []pattern.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 0}, {Row: 3, Col: 4},
	}, p.Coords())
}

// TestJacobianPattern_Validation covers the sentinel paths.
func TestJacobianPattern_Validation(t *testing.T) {
	_, err := trace.JacobianPattern(nil, []float64{1})
	assert.ErrorIs(t, err, trace.ErrNilFunction)

	_, err = trace.JacobianPattern(probe45, nil)
	assert.ErrorIs(t, err, trace.ErrEmptyInput)

	_, err = trace.JacobianPattern(func([]trace.Tracer) []trace.Tracer {
		return nil
	}, []float64{1})
	assert.ErrorIs(t, err, trace.ErrNoOutputs)
}

// TestJacobianPattern_SoundAgainstFiniteDifferences cross-checks the
// detector against a numeric Jacobian: every entry that finite
// differences sees as nonzero must be marked in the pattern (false
// negatives are forbidden; false positives are fine).
func TestJacobianPattern_SoundAgainstFiniteDifferences(t *testing.T) {
	x := []float64{0.7, -1.3, 0.4}

	traced := func(in []trace.Tracer) []trace.Tracer {
		return []trace.Tracer{
			in[0].Mul(in[1]).Add(in[2].Exp()),
			in[1].Div(in[2]),
			in[0].Tanh(),
		}
	}
	plain := func(dst, x []float64) {
		dst[0] = x[0]*x[1] + math.Exp(x[2])
		dst[1] = x[1] / x[2]
		dst[2] = math.Tanh(x[0])
	}

	p, err := trace.JacobianPattern(traced, x)
	require.NoError(t, err)

	jac := mat.NewDense(3, 3, nil)
	fd.Jacobian(jac, plain, x, nil)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(jac.At(r, c)) > 1e-6 {
				assert.Truef(t, p.Has(r, c),
					"numeric nonzero (%d,%d) missing from pattern", r, c)
			}
		}
	}
}

// TestGradientPattern_ScalarFunction verifies the 1×n convenience wrapper.
func TestGradientPattern_ScalarFunction(t *testing.T) {
	p, err := trace.GradientPattern(func(x []trace.Tracer) trace.Tracer {
		return x[0].Mul(x[2]) // x1 unused
	}, []float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 1, p.Rows())
	assert.Equal(t, 3, p.Cols())
	assert.True(t, p.Has(0, 0))
	assert.False(t, p.Has(0, 1))
	assert.True(t, p.Has(0, 2))
}

// TestHessianPattern_Tridiagonal detects the classic chain coupling
// f = Σ x_i * x_{i+1} + Σ x_i² → tridiagonal Hessian.
func TestHessianPattern_Tridiagonal(t *testing.T) {
	n := 4
	f := func(x []trace.HessTracer) trace.HessTracer {
		acc := trace.HConstant(0, n)
		for i := 0; i < n-1; i++ {
			acc = acc.Add(x[i].Mul(x[i+1]))
		}
		for i := 0; i < n; i++ {
			acc = acc.Add(x[i].Square())
		}

		return acc
	}

	p, err := trace.HessianPattern(f, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, 4, p.Rows())
	assert.True(t, p.IsSymmetric())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := int(math.Abs(float64(i-j))) <= 1
			assert.Equalf(t, want, p.Has(i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestHessianPattern_Validation covers the sentinel paths.
func TestHessianPattern_Validation(t *testing.T) {
	_, err := trace.HessianPattern(nil, []float64{1})
	assert.ErrorIs(t, err, trace.ErrNilFunction)

	_, err = trace.HessianPattern(func(x []trace.HessTracer) trace.HessTracer {
		return x[0]
	}, nil)
	assert.ErrorIs(t, err, trace.ErrEmptyInput)
}
