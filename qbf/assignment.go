package qbf

import "fmt"

// Assignment is the 0/1 variable vector x under evaluation. x[i] is exactly
// 0.0 or 1.0; float storage keeps the inner products branch-free.
type Assignment []float64

// NewAssignment returns the all-zero assignment of length n.
func NewAssignment(n int) Assignment {
	return make(Assignment, n)
}

// AssignmentOf builds the assignment that mirrors sol over a domain of size n.
func AssignmentOf(sol *Solution, n int) (Assignment, error) {
	x := NewAssignment(n)
	if err := x.Refresh(sol); err != nil {
		return nil, err
	}

	return x, nil
}

// Refresh rewrites x from sol: selected indices become 1, all others 0.
// Any delta query against sol must use an assignment refreshed from it.
func (x Assignment) Refresh(sol *Solution) error {
	if sol == nil {
		return ErrNilSolution
	}
	clear(x)
	for _, i := range sol.Elements {
		if i < 0 || i >= len(x) {
			return fmt.Errorf("Refresh: element %d: %w", i, ErrIndexOutOfRange)
		}
		x[i] = 1
	}

	return nil
}

// Selected reports whether variable i is set. Out-of-range indices are unset.
func (x Assignment) Selected(i int) bool {
	return i >= 0 && i < len(x) && x[i] == 1
}

// Count returns the number of selected variables.
func (x Assignment) Count() int {
	var c int
	for _, v := range x {
		if v == 1 {
			c++
		}
	}

	return c
}
