package qbf

import (
	"fmt"

	"github.com/katalvlaran/qbftp/matrix"
)

// Evaluator owns the immutable coefficient matrix A of a QBF instance.
// It carries no assignment state; see Assignment.
//
// The zero value is usable only in the sense that every query fails with
// ErrNotLoaded.
type Evaluator struct {
	a    *matrix.Dense
	rows [][]float64 // read-only row views of a, rows[i][j] == A[i][j]
	n    int
}

// NewEvaluator copies a into private storage, zeroes its strict lower
// triangle, and returns an Evaluator for it.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// matrix.ErrNaNInf (non-finite coefficient).
// Complexity: O(n²).
func NewEvaluator(a matrix.Matrix) (*Evaluator, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}

	n := a.Rows()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("NewEvaluator: %w", err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewEvaluator: %w", err)
			}
		}
	}

	return newEvaluatorFromDense(d)
}

// newEvaluatorFromDense adopts d without copying and masks its strict lower
// triangle. Every constructor funnels through here, so the upper-triangular
// storage rule holds for all evaluators. d must be square.
func newEvaluatorFromDense(d *matrix.Dense) (*Evaluator, error) {
	if err := matrix.MaskLower(d); err != nil {
		return nil, err
	}

	n := d.Rows()
	rows := make([][]float64, n)

	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		if rows[i], err = d.RowView(i); err != nil {
			return nil, err
		}
	}

	return &Evaluator{a: d, rows: rows, n: n}, nil
}

// Size returns the domain size n, or 0 for an unloaded evaluator.
func (e *Evaluator) Size() int {
	if e == nil {
		return 0
	}

	return e.n
}

// Coefficient returns A[i][j]. Entries with i > j are always 0.
func (e *Evaluator) Coefficient(i, j int) (float64, error) {
	if err := e.checkIndex(i); err != nil {
		return 0, err
	}
	if err := e.checkIndex(j); err != nil {
		return 0, err
	}

	return e.rows[i][j], nil
}

// Matrix returns a deep copy of the coefficient matrix.
func (e *Evaluator) Matrix() (matrix.Matrix, error) {
	if err := e.checkLoaded(); err != nil {
		return nil, err
	}

	return e.a.Clone(), nil
}

func (e *Evaluator) checkLoaded() error {
	if e == nil || e.a == nil {
		return ErrNotLoaded
	}

	return nil
}

func (e *Evaluator) checkIndex(i int) error {
	if err := e.checkLoaded(); err != nil {
		return err
	}
	if i < 0 || i >= e.n {
		return fmt.Errorf("index %d not in [0,%d): %w", i, e.n, ErrIndexOutOfRange)
	}

	return nil
}

func (e *Evaluator) checkAssignment(x Assignment) error {
	if err := e.checkLoaded(); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(x, e.n); err != nil {
		return fmt.Errorf("%w: %w", ErrAssignmentSize, err)
	}

	return nil
}

// EvaluateFull returns xᵀAx computed as Σᵢ (Σⱼ xⱼ·A[i][j])·xᵢ.
// The all-zero assignment evaluates to 0.
// Complexity: O(n²).
func (e *Evaluator) EvaluateFull(x Assignment) (float64, error) {
	if err := e.checkAssignment(x); err != nil {
		return 0, fmt.Errorf("EvaluateFull: %w", err)
	}

	var (
		i, j     int
		aux, sum float64
		row      []float64
	)
	for i = 0; i < e.n; i++ {
		if x[i] == 0 {
			continue // the row term is multiplied by xᵢ
		}
		row = e.rows[i]
		aux = 0
		for j = 0; j < e.n; j++ {
			aux += x[j] * row[j]
		}
		sum += aux * x[i]
	}

	return sum, nil
}

// Contribution returns Σ_{j≠i} xⱼ·(A[i][j]+A[j][i]) + A[i][i]: the value
// variable i adds to f given the rest of x, ignoring xᵢ itself.
// Complexity: O(n).
func (e *Evaluator) Contribution(x Assignment, i int) (float64, error) {
	if err := e.checkAssignment(x); err != nil {
		return 0, fmt.Errorf("Contribution: %w", err)
	}
	if err := e.checkIndex(i); err != nil {
		return 0, fmt.Errorf("Contribution: %w", err)
	}

	return e.contribution(x, i), nil
}

// contribution assumes x and i are validated.
func (e *Evaluator) contribution(x Assignment, i int) float64 {
	var (
		j   int
		sum float64
		row = e.rows[i]
	)
	for j = 0; j < e.n; j++ {
		if j != i {
			sum += x[j] * (row[j] + e.rows[j][i])
		}
	}

	return sum + row[i]
}

// EvaluateInsertion returns Δf for setting xᵢ=1; 0 if it is already set.
func (e *Evaluator) EvaluateInsertion(x Assignment, i int) (float64, error) {
	if err := e.checkAssignment(x); err != nil {
		return 0, fmt.Errorf("EvaluateInsertion: %w", err)
	}
	if err := e.checkIndex(i); err != nil {
		return 0, fmt.Errorf("EvaluateInsertion: %w", err)
	}

	return e.insertion(x, i), nil
}

func (e *Evaluator) insertion(x Assignment, i int) float64 {
	if x[i] == 1 {
		return 0
	}

	return e.contribution(x, i)
}

// EvaluateRemoval returns Δf for setting xᵢ=0; 0 if it is already clear.
func (e *Evaluator) EvaluateRemoval(x Assignment, i int) (float64, error) {
	if err := e.checkAssignment(x); err != nil {
		return 0, fmt.Errorf("EvaluateRemoval: %w", err)
	}
	if err := e.checkIndex(i); err != nil {
		return 0, fmt.Errorf("EvaluateRemoval: %w", err)
	}

	return e.removal(x, i), nil
}

func (e *Evaluator) removal(x Assignment, i int) float64 {
	if x[i] == 0 {
		return 0
	}

	return -e.contribution(x, i)
}

// EvaluateExchange returns Δf for moving variable in into the selection and
// variable out of it in one step.
// MAIN DESCRIPTION:
//   - Incremental swap cost used by local moves; x is read, never modified.
//
// Implementation:
//   - Stage 1: validate x, in and out.
//   - Stage 2: resolve the degenerate cases:
//     in == out ⇒ 0; x[in] already 1 ⇒ EvaluateRemoval(out);
//     x[out] already 0 ⇒ EvaluateInsertion(in).
//   - Stage 3: contribution(in) − contribution(out) − (A[in][out]+A[out][in]).
//
// Behavior highlights:
//   - The last term removes the in/out interaction that contribution(in)
//     counts although out is leaving.
//   - Equals EvaluateFull(x with in set and out cleared) − EvaluateFull(x).
//
// Inputs:
//   - x: assignment of length n.
//   - in, out: variable indices in [0,n).
//
// Errors:
//   - ErrNotLoaded, ErrAssignmentSize, ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(n), Space O(1).
func (e *Evaluator) EvaluateExchange(x Assignment, in, out int) (float64, error) {
	if err := e.checkAssignment(x); err != nil {
		return 0, fmt.Errorf("EvaluateExchange: %w", err)
	}
	if err := e.checkIndex(in); err != nil {
		return 0, fmt.Errorf("EvaluateExchange: in: %w", err)
	}
	if err := e.checkIndex(out); err != nil {
		return 0, fmt.Errorf("EvaluateExchange: out: %w", err)
	}

	switch {
	case in == out:
		return 0, nil
	case x[in] == 1:
		return e.removal(x, out), nil
	case x[out] == 0:
		return e.insertion(x, in), nil
	}

	sum := e.contribution(x, in)
	sum -= e.contribution(x, out)
	sum -= e.rows[in][out] + e.rows[out][in]

	return sum, nil
}

// Evaluate refreshes a scratch assignment from sol, computes f, stores it in
// sol.Cost and returns it.
func (e *Evaluator) Evaluate(sol *Solution) (float64, error) {
	x, err := e.assignmentFor(sol)
	if err != nil {
		return 0, fmt.Errorf("Evaluate: %w", err)
	}
	cost, err := e.EvaluateFull(x)
	if err != nil {
		return 0, err
	}
	sol.Cost = cost

	return cost, nil
}

// InsertionCost is EvaluateInsertion against a fresh assignment of sol.
func (e *Evaluator) InsertionCost(sol *Solution, i int) (float64, error) {
	x, err := e.assignmentFor(sol)
	if err != nil {
		return 0, fmt.Errorf("InsertionCost: %w", err)
	}

	return e.EvaluateInsertion(x, i)
}

// RemovalCost is EvaluateRemoval against a fresh assignment of sol.
func (e *Evaluator) RemovalCost(sol *Solution, i int) (float64, error) {
	x, err := e.assignmentFor(sol)
	if err != nil {
		return 0, fmt.Errorf("RemovalCost: %w", err)
	}

	return e.EvaluateRemoval(x, i)
}

// ExchangeCost is EvaluateExchange against a fresh assignment of sol.
func (e *Evaluator) ExchangeCost(sol *Solution, in, out int) (float64, error) {
	x, err := e.assignmentFor(sol)
	if err != nil {
		return 0, fmt.Errorf("ExchangeCost: %w", err)
	}

	return e.EvaluateExchange(x, in, out)
}

func (e *Evaluator) assignmentFor(sol *Solution) (Assignment, error) {
	if err := e.checkLoaded(); err != nil {
		return nil, err
	}

	return AssignmentOf(sol, e.n)
}
