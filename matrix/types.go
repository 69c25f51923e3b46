// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view of a rectangular float64 array that the
// validators and the QBF evaluator accept. Dense is the only implementation.
//
// Indexers never panic: out-of-range positions yield ErrIndexOutOfBounds.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns the entry at row i, column j.
	At(i, j int) (float64, error)

	// Set stores v at row i, column j.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy; O(r*c).
	Clone() Matrix
}
