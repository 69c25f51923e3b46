// Package matrix provides the dense numeric storage used by the QBF evaluator.
//
// What & Why:
//
//	Matrix is a small interface over a two-dimensional mutable array of float64
//	values. Dense is its row-major implementation. Quadratic binary functions
//	only need square coefficient matrices, but the primitives here stay generic
//	so tests and instance builders can share them.
//
// Contracts:
//   - At/Set never panic; out-of-range access returns ErrIndexOutOfBounds.
//   - Validators return plain sentinels wrapped with a call-site tag, so
//     callers match with errors.Is.
//   - MaskLower zeroes every entry with row > column. Every qbf.Evaluator
//     constructor passes its coefficient matrix through it, which enforces
//     the upper-triangular storage convention in one place.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1). Clone and MaskLower are O(r·c).
package matrix
