// SPDX-License-Identifier: MIT

package matrix

// MaskLower zeroes every entry strictly below the main diagonal (row > col).
// A QBF coefficient matrix is stored upper-triangular: the pair term for
// (i,j), i<j, lives entirely in A[i][j].
//
// A matrix that is already upper triangular is left untouched, with no Set
// calls. Returns ErrNilMatrix for a nil m. Complexity: O(r*c).
func MaskLower(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("MaskLower", err)
	}
	if IsUpperTriangular(m) {
		return nil
	}

	var i, j int
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			if err := m.Set(i, j, 0); err != nil {
				return validatorErrorf("MaskLower", err)
			}
		}
	}

	return nil
}

// IsUpperTriangular reports whether every entry with row > col is exactly 0.
// A nil matrix is not upper triangular.
// Complexity: O(r*c) worst case, short-circuits on the first non-zero.
func IsUpperTriangular(m Matrix) bool {
	if m == nil {
		return false
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil || v != 0 {
				return false
			}
		}
	}

	return true
}
