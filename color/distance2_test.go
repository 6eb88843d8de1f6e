// SPDX-License-Identifier: MIT

package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsik/build"
	"github.com/katalvlaran/sparsik/color"
	"github.com/katalvlaran/sparsik/pattern"
)

// chainPattern is the 4×5 pattern whose column conflicts form a path with
// one extra branch:
//
//	x x . . .
//	. x x . .
//	. . x x .
//	x . . . x
func chainPattern(t *testing.T) *pattern.Pattern {
	t.Helper()
	p, err := pattern.FromRows([][]bool{
		{true, true, false, false, false},
		{false, true, true, false, false},
		{false, false, true, true, false},
		{true, false, false, false, true},
	})
	require.NoError(t, err)

	return p
}

func TestJacobian_ChainWorkedExample(t *testing.T) {
	c, err := color.Jacobian(chainPattern(t))
	require.NoError(t, err)

	assert.Equal(t, color.Distance2, c.Mode())
	assert.Equal(t, color.ByColumns, c.Orientation())
	assert.Equal(t, []int{1, 2, 1, 2, 2}, c.Colors())
	assert.Equal(t, 2, c.NumColors())
}

func TestJacobian_ByRows(t *testing.T) {
	p := chainPattern(t)
	c, err := color.Jacobian(p, color.WithRows())
	require.NoError(t, err)

	assert.Equal(t, color.ByRows, c.Orientation())
	assert.Equal(t, p.Rows(), c.Len())
	require.NoError(t, color.VerifyDistance2(p, c.Colors(), color.ByRows))
}

func TestJacobian_RandomPatternsAreOrthogonal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		p, err := build.RandomJacobian(30, 25, 0.15, seed)
		require.NoError(t, err)

		c, err := color.Jacobian(p)
		require.NoError(t, err)
		require.NoError(t, color.VerifyDistance2(p, c.Colors(), color.ByColumns),
			"seed %d", seed)
		assert.LessOrEqual(t, c.NumColors(), p.Cols())
	}
}

func TestJacobian_OrderingsStayValid(t *testing.T) {
	p, err := build.RandomJacobian(25, 20, 0.2, 9)
	require.NoError(t, err)

	for _, ord := range []color.Ordering{
		color.NaturalOrder, color.LargestFirst, color.SmallestLast,
	} {
		c, err := color.Jacobian(p, color.WithOrdering(ord))
		require.NoError(t, err)
		require.NoError(t, color.VerifyDistance2(p, c.Colors(), color.ByColumns))
	}
}

func TestJacobian_DeterministicAcrossRuns(t *testing.T) {
	p, err := build.RandomJacobian(20, 20, 0.3, 4)
	require.NoError(t, err)

	a, err := color.Jacobian(p, color.WithOrdering(color.SmallestLast))
	require.NoError(t, err)
	b, err := color.Jacobian(p, color.WithOrdering(color.SmallestLast))
	require.NoError(t, err)

	assert.Equal(t, a.Colors(), b.Colors())
}

func TestJacobian_EmptyAndDiagonal(t *testing.T) {
	// No nonzeros at all: one color still covers every column.
	empty, err := pattern.New(3, 3, nil)
	require.NoError(t, err)
	c, err := color.Jacobian(empty)
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumColors())

	// Diagonal pattern: columns never collide, one color suffices.
	diag, err := build.BandedHessian(5, 0)
	require.NoError(t, err)
	c, err = color.Jacobian(diag)
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumColors())
}

func TestJacobian_NilPattern(t *testing.T) {
	_, err := color.Jacobian(nil)
	assert.ErrorIs(t, err, color.ErrPatternNil)
}

func TestColoring_Accessors(t *testing.T) {
	p := chainPattern(t)
	c, err := color.Jacobian(p)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 0, c.ColorOf(-1))
	assert.Equal(t, 0, c.ColorOf(99))
	assert.Same(t, p, c.Pattern())

	classes := c.Classes()
	require.Len(t, classes, c.NumColors())
	total := 0
	for k, class := range classes {
		total += len(class)
		for _, v := range class {
			assert.Equal(t, k+1, c.ColorOf(v))
		}
	}
	assert.Equal(t, c.Len(), total)
}
