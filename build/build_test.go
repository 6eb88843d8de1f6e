// SPDX-License-Identifier: MIT

package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsik/build"
	"github.com/katalvlaran/sparsik/pattern"
)

func TestRandomJacobian_Deterministic(t *testing.T) {
	a, err := build.RandomJacobian(12, 9, 0.3, 7)
	require.NoError(t, err)
	b, err := build.RandomJacobian(12, 9, 0.3, 7)
	require.NoError(t, err)

	assert.Equal(t, a.Coords(), b.Coords(), "same seed must reproduce the pattern")
	assert.Equal(t, 12, a.Rows())
	assert.Equal(t, 9, a.Cols())
}

func TestRandomJacobian_DensityExtremes(t *testing.T) {
	empty, err := build.RandomJacobian(5, 5, 0, 1)
	require.NoError(t, err)
	assert.Zero(t, empty.NNZ())

	full, err := build.RandomJacobian(5, 5, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, full.NNZ())
}

func TestRandomJacobian_Errors(t *testing.T) {
	_, err := build.RandomJacobian(0, 3, 0.5, 1)
	assert.ErrorIs(t, err, build.ErrBadSize)

	_, err = build.RandomJacobian(3, 3, 1.5, 1)
	assert.ErrorIs(t, err, build.ErrBadDensity)
}

func TestRandomHessian_SymmetricFullDiagonal(t *testing.T) {
	p, err := build.RandomHessian(20, 0.2, 42)
	require.NoError(t, err)

	assert.True(t, p.IsSymmetric())
	require.NoError(t, pattern.ValidateFullDiagonal(p))
}

func TestPathHessian(t *testing.T) {
	p, err := build.PathHessian(4)
	require.NoError(t, err)

	want := []pattern.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 2}, {Row: 3, Col: 3},
	}
	assert.Equal(t, want, p.Coords())
}

func TestBandedHessian(t *testing.T) {
	p, err := build.BandedHessian(6, 2)
	require.NoError(t, err)

	assert.True(t, p.IsSymmetric())
	for _, c := range p.Coords() {
		diff := c.Row - c.Col
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 2)
	}
	// bandwidth 0 degenerates to the identity pattern.
	ident, err := build.BandedHessian(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, ident.NNZ())
}

func TestArrowheadHessian(t *testing.T) {
	p, err := build.ArrowheadHessian(5)
	require.NoError(t, err)

	assert.True(t, p.IsSymmetric())
	assert.Equal(t, 5+2*4, p.NNZ())
	for i := 1; i < 5; i++ {
		assert.True(t, p.Has(0, i))
		assert.True(t, p.Has(i, 0))
	}
}

func TestValuesFor(t *testing.T) {
	p, err := build.PathHessian(5)
	require.NoError(t, err)

	vals, err := build.ValuesFor(p, 3)
	require.NoError(t, err)
	require.Len(t, vals, p.NNZ())

	again, err := build.ValuesFor(p, 3)
	require.NoError(t, err)
	assert.Equal(t, vals, again)

	for _, v := range vals {
		assert.Equal(t, v, float64(int(v)), "values must be exact integers")
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 9.0)
	}

	_, err = build.ValuesFor(nil, 3)
	assert.ErrorIs(t, err, build.ErrPatternNil)
}

func TestSymmetricValuesFor(t *testing.T) {
	p, err := build.RandomHessian(10, 0.4, 11)
	require.NoError(t, err)

	vals, err := build.SymmetricValuesFor(p, 5)
	require.NoError(t, err)

	// Index values by coordinate and check v(i,j) == v(j,i).
	byCoord := make(map[pattern.Coord]float64, p.NNZ())
	for k, c := range p.Coords() {
		byCoord[c] = vals[k]
	}
	for c, v := range byCoord {
		assert.Equal(t, v, byCoord[pattern.Coord{Row: c.Col, Col: c.Row}])
	}
}
