// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Validators return the package sentinels wrapped with the validator name,
// so callers can match them with errors.Is. None of them allocate on success.

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil Matrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare rejects m unless Rows() == Cols(). m must be non-nil.
func ValidateSquare(m Matrix) error {
	if r, c := m.Rows(), m.Cols(); r != c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", r, c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil combines ValidateNotNil and ValidateSquare.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquareNonNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquareNonNil", ErrNilMatrix)
	}

	return ValidateSquare(m)
}

// ValidateFinite scans every entry and rejects the first NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite at (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateVecLen checks that x is a non-nil vector of exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	switch {
	case x == nil:
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	case len(x) != n:
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d, want %d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}
