// SPDX-License-Identifier: MIT
// Package build: pattern constructors.
//
// Random constructors draw from math/rand with an explicit source so a
// fixed seed freezes the fixture; structured constructors (path, band,
// arrowhead) are pure arithmetic.

package build

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sparsik/pattern"
)

// RandomJacobian returns a rows×cols pattern where each entry is nonzero
// independently with probability density (Erdős–Rényi over cells).
// Errors: ErrBadSize, ErrBadDensity.
// Complexity: O(rows·cols).
func RandomJacobian(rows, cols int, density float64, seed int64) (*pattern.Pattern, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadSize
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, ErrBadDensity
	}

	rng := rand.New(rand.NewSource(seed))
	var coords []pattern.Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				coords = append(coords, pattern.Coord{Row: r, Col: c})
			}
		}
	}

	return pattern.New(rows, cols, coords)
}

// RandomHessian returns a symmetric n×n pattern with a full diagonal;
// each off-diagonal pair {i,j} is present with probability density
// (an Erdős–Rényi adjacency graph plus loops on every vertex).
// Errors: ErrBadSize, ErrBadDensity.
// Complexity: O(n²).
func RandomHessian(n int, density float64, seed int64) (*pattern.Pattern, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, ErrBadDensity
	}

	rng := rand.New(rand.NewSource(seed))
	coords := make([]pattern.Coord, 0, n)
	for i := 0; i < n; i++ {
		coords = append(coords, pattern.Coord{Row: i, Col: i})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				coords = append(coords,
					pattern.Coord{Row: i, Col: j},
					pattern.Coord{Row: j, Col: i})
			}
		}
	}

	return pattern.New(n, n, coords)
}

// PathHessian returns the tridiagonal n×n pattern — the path graph on n
// vertices plus a full diagonal.
// Errors: ErrBadSize.
// Complexity: O(n).
func PathHessian(n int) (*pattern.Pattern, error) {
	return BandedHessian(n, 1)
}

// BandedHessian returns the n×n pattern with full diagonal and all
// entries within the given bandwidth (|i-j| <= bandwidth).
// Errors: ErrBadSize (n <= 0 or bandwidth < 0).
// Complexity: O(n·bandwidth).
func BandedHessian(n, bandwidth int) (*pattern.Pattern, error) {
	if n <= 0 || bandwidth < 0 {
		return nil, ErrBadSize
	}

	var coords []pattern.Coord
	for i := 0; i < n; i++ {
		for j := i; j <= i+bandwidth && j < n; j++ {
			coords = append(coords, pattern.Coord{Row: i, Col: j})
			if i != j {
				coords = append(coords, pattern.Coord{Row: j, Col: i})
			}
		}
	}

	return pattern.New(n, n, coords)
}

// ArrowheadHessian returns the n×n pattern with full diagonal plus a
// dense first row and column — the star graph with hub 0.
// Errors: ErrBadSize.
// Complexity: O(n).
func ArrowheadHessian(n int) (*pattern.Pattern, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	var coords []pattern.Coord
	for i := 0; i < n; i++ {
		coords = append(coords, pattern.Coord{Row: i, Col: i})
		if i > 0 {
			coords = append(coords,
				pattern.Coord{Row: 0, Col: i},
				pattern.Coord{Row: i, Col: 0})
		}
	}

	return pattern.New(n, n, coords)
}

// ValuesFor returns one small integer value (1..9, as float64) per
// structural nonzero of p, in row-major (CSR) order. Integer values make
// compression round-trips exact, bit for bit.
// Errors: ErrPatternNil.
// Complexity: O(nnz).
func ValuesFor(p *pattern.Pattern, seed int64) ([]float64, error) {
	if p == nil {
		return nil, ErrPatternNil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, 0, p.NNZ())
	for range p.Coords() {
		out = append(out, float64(1+rng.Intn(9)))
	}

	return out, nil
}

// SymmetricValuesFor returns CSR-ordered values like ValuesFor but with
// v(i,j) == v(j,i): the value is a deterministic function of the
// unordered pair and the seed, so mirrored entries always agree.
// Errors: ErrPatternNil.
// Complexity: O(nnz).
func SymmetricValuesFor(p *pattern.Pattern, seed int64) ([]float64, error) {
	if p == nil {
		return nil, ErrPatternNil
	}
	out := make([]float64, 0, p.NNZ())
	for _, c := range p.Coords() {
		i, j := c.Row, c.Col
		if i > j {
			i, j = j, i
		}
		// Small positive integer keyed by the canonical pair.
		out = append(out, float64(1+(i*2654435761+j*40503+int(seed))%9))
	}

	return out, nil
}
