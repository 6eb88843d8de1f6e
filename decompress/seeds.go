// SPDX-License-Identifier: MIT
// Package decompress: seed construction and product compression.

package decompress

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsik/color"
)

// Product evaluates one compressed directional product. For a ByColumns
// coloring of an m×n pattern the seed has length n and the result must
// have length m (a J·v style product); for ByRows the seed has length m
// and the result length n (a vᵀ·J style product). Symmetric Hessian
// colorings are always ByColumns.
type Product func(seed []float64) ([]float64, error)

// Option tweaks Compress behavior.
type Option func(*options)

type options struct {
	parallel bool
}

// WithParallel evaluates the per-color products concurrently. The
// Product callback must then be safe for concurrent use.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Seeds returns one indicator vector per color class: Seeds(c)[k] has a
// one at every vertex colored k+1 and zeros elsewhere. Vector length is
// the colored side of the pattern.
// Errors: ErrNilColoring.
func Seeds(c *color.Coloring) ([][]float64, error) {
	if c == nil {
		return nil, ErrNilColoring
	}

	seeds := make([][]float64, c.NumColors())
	for k := range seeds {
		seeds[k] = make([]float64, c.Len())
	}
	for v := 0; v < c.Len(); v++ {
		seeds[c.ColorOf(v)-1][v] = 1
	}

	return seeds, nil
}

// Compress evaluates prod once per color class and assembles the
// compressed block B. For ByColumns colorings B is m×p with column k
// holding the product of seed k; for ByRows it is p×n with row k holding
// the product of seed k.
// Errors: ErrNilColoring, ErrNilProduct, ErrProductShape, and whatever
// prod returns.
// Complexity: p product evaluations plus O(m·p) assembly.
func Compress(c *color.Coloring, prod Product, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)
	if c == nil {
		return nil, ErrNilColoring
	}
	if prod == nil {
		return nil, ErrNilProduct
	}

	seeds, err := Seeds(c)
	if err != nil {
		return nil, err
	}

	// Result length depends on orientation: products map the colored side
	// to the opposite side.
	wantLen := c.Pattern().Rows()
	if c.Orientation() == color.ByRows {
		wantLen = c.Pattern().Cols()
	}

	results := make([][]float64, len(seeds))
	errs := make([]error, len(seeds))
	eval := func(k int) {
		out, perr := prod(seeds[k])
		if perr != nil {
			errs[k] = perr

			return
		}
		if len(out) != wantLen {
			errs[k] = fmt.Errorf("color %d: got %d, want %d: %w",
				k+1, len(out), wantLen, ErrProductShape)

			return
		}
		results[k] = out
	}

	if o.parallel {
		var wg sync.WaitGroup
		for k := range seeds {
			wg.Add(1)
			go func(k int) {
				defer wg.Done()
				eval(k)
			}(k)
		}
		wg.Wait()
	} else {
		for k := range seeds {
			eval(k)
		}
	}
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	p := len(seeds)
	if c.Orientation() == color.ByRows {
		b := mat.NewDense(p, wantLen, nil)
		for k, row := range results {
			b.SetRow(k, row)
		}

		return b, nil
	}
	b := mat.NewDense(wantLen, p, nil)
	for k, col := range results {
		b.SetCol(k, col)
	}

	return b, nil
}
