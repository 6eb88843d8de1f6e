// SPDX-License-Identifier: MIT
// Package pattern: structural precondition validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for the structural checks
//     the Hessian coloring disciplines rely on.
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can match via errors.Is and fail before any coloring work runs.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - Symmetry runs in O(nnz log nnz_row); diagonal in O(n log nnz_row).

package pattern

import "fmt"

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the pattern reference is non-nil.
// Returns ErrNilPattern otherwise.
// Complexity: O(1).
func ValidateNotNil(p *Pattern) error {
	if p == nil {
		return validatorErrorf("ValidateNotNil", ErrNilPattern)
	}

	return nil
}

// ValidateSquare checks Rows == Cols.
// Errors: ErrNilPattern if nil, ErrNotSquare otherwise.
// Complexity: O(1).
func ValidateSquare(p *Pattern) error {
	if err := ValidateNotNil(p); err != nil {
		return err
	}
	if p.rows != p.cols {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateSymmetric checks that every entry (i,j) has its mirror (j,i).
// A pattern handed to the symmetric (Hessian) disciplines without this
// property is rejected before coloring begins, never mid-algorithm.
// Errors: ErrNilPattern, ErrNotSquare, ErrNotSymmetric.
// Complexity: O(nnz log nnz_row).
func ValidateSymmetric(p *Pattern) error {
	if err := ValidateSquare(p); err != nil {
		return err
	}
	for r := 0; r < p.rows; r++ {
		for _, c := range p.RowIndices(r) {
			if !p.Has(c, r) {
				return validatorErrorf("ValidateSymmetric", ErrNotSymmetric)
			}
		}
	}

	return nil
}

// ValidateFullDiagonal checks that every diagonal entry is structurally
// nonzero. The star/acyclic recovery theorems assume it: diagonal read-off
// and the uniqueness argument both break on a hollow diagonal.
// Errors: ErrNilPattern, ErrNotSquare, ErrZeroDiagonal.
// Complexity: O(n log nnz_row).
func ValidateFullDiagonal(p *Pattern) error {
	if err := ValidateSquare(p); err != nil {
		return err
	}
	for i := 0; i < p.rows; i++ {
		if !p.Has(i, i) {
			return validatorErrorf("ValidateFullDiagonal", ErrZeroDiagonal)
		}
	}

	return nil
}
