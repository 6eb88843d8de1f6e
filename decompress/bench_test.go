// SPDX-License-Identifier: MIT

package decompress_test

import (
	"testing"

	"github.com/katalvlaran/sparsik/build"
	"github.com/katalvlaran/sparsik/color"
	"github.com/katalvlaran/sparsik/decompress"
)

func BenchmarkHessianDirect_Banded(b *testing.B) {
	p, err := build.BandedHessian(400, 3)
	if err != nil {
		b.Fatal(err)
	}
	vals, err := build.SymmetricValuesFor(p, 1)
	if err != nil {
		b.Fatal(err)
	}
	h, err := decompress.ToDense(p, vals)
	if err != nil {
		b.Fatal(err)
	}
	c, err := color.Hessian(p, color.Star)
	if err != nil {
		b.Fatal(err)
	}
	block, err := decompress.Compress(c, matVec(h))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decompress.HessianDirect(c, block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHessianSubstitution_Banded(b *testing.B) {
	p, err := build.BandedHessian(400, 3)
	if err != nil {
		b.Fatal(err)
	}
	vals, err := build.SymmetricValuesFor(p, 1)
	if err != nil {
		b.Fatal(err)
	}
	h, err := decompress.ToDense(p, vals)
	if err != nil {
		b.Fatal(err)
	}
	c, err := color.Hessian(p, color.Acyclic)
	if err != nil {
		b.Fatal(err)
	}
	block, err := decompress.Compress(c, matVec(h))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decompress.HessianSubstitution(c, block); err != nil {
			b.Fatal(err)
		}
	}
}
