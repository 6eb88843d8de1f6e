// SPDX-License-Identifier: MIT

package decompress_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsik/color"
	"github.com/katalvlaran/sparsik/decompress"
	"github.com/katalvlaran/sparsik/pattern"
)

// ExampleHessianDirect compresses a 4×4 Hessian with a star coloring and
// reads every nonzero back out of three product columns.
func ExampleHessianDirect() {
	h := mat.NewDense(4, 4, []float64{
		1, 2, 3, 0,
		2, 4, 0, 5,
		3, 0, 6, 0,
		0, 5, 0, 7,
	})
	p, _ := pattern.FromMatrix(h, 0)
	c, _ := color.Hessian(p, color.Star)

	prod := func(seed []float64) ([]float64, error) {
		out := make([]float64, 4)
		mat.NewVecDense(4, out).MulVec(h, mat.NewVecDense(4, seed))

		return out, nil
	}
	b, _ := decompress.Compress(c, prod)
	values, _ := decompress.HessianDirect(c, b)

	fmt.Println("colors:", c.NumColors())
	fmt.Println("values:", values)
	// Output:
	// colors: 3
	// values: [1 2 3 2 4 5 3 6 5 7]
}

// ExampleJacobian recovers a sparse Jacobian from two compressed
// matrix-vector products instead of five.
func ExampleJacobian() {
	a := mat.NewDense(4, 5, []float64{
		1, 0, 2, 3, 0,
		0, 4, 0, 5, 0,
		6, 0, 0, 0, 7,
		0, 8, 0, 0, 9,
	})
	p, _ := pattern.FromMatrix(a, 0)
	c, _ := color.Jacobian(p)

	prod := func(seed []float64) ([]float64, error) {
		out := make([]float64, 4)
		mat.NewVecDense(4, out).MulVec(a, mat.NewVecDense(5, seed))

		return out, nil
	}
	b, _ := decompress.Compress(c, prod)
	values, _ := decompress.Jacobian(c, b)

	fmt.Println("colors:", c.NumColors())
	fmt.Println("values:", values)
	// Output:
	// colors: 3
	// values: [1 2 3 4 5 6 7 8 9]
}
