// Package qbf evaluates quadratic binary functions f(x) = xᵀAx.
//
// What & Why:
//
//	A QBF instance is a square coefficient matrix A of order n, stored
//	upper-triangular (entries with row > column are forced to zero at load
//	time). A candidate solution selects a subset of the n binary variables.
//	Evaluator scores full assignments in O(n²) and single-variable moves
//	(insertion, removal, exchange) in O(n) without recomputing the full form.
//
// Assignments are explicit:
//
//	Every delta query takes the 0/1 Assignment it is evaluated against. The
//	Evaluator holds only the immutable matrix, so one Evaluator may be shared
//	by any number of goroutines, each owning its own Assignment.
//
//	x, _ := qbf.AssignmentOf(sol, ev.Size())   // refresh from a Solution
//	gain, _ := ev.EvaluateInsertion(x, 7)      // Δf if variable 7 enters
//
// Instance format:
//
//	The first token is n, followed by n·(n+1)/2 numbers giving A[i][j] for
//	i=0..n−1, j=i..n−1 in row-major order. Tokens are separated by any
//	whitespace. See ReadInstance and WriteInstance.
//
// Errors:
//   - ErrIndexOutOfRange : variable index outside [0,n) (invalid argument).
//   - ErrNotLoaded       : zero-value Evaluator used (invalid state).
//   - ErrMalformedInstance / ErrTruncatedInstance: bad instance input.
package qbf
