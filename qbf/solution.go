package qbf

import (
	"fmt"
	"slices"
)

// Solution is a set of selected variable indices plus a cached cost.
// Elements keeps insertion order; order never affects the value.
type Solution struct {
	Elements []int
	Cost     float64
}

// NewSolution returns an empty solution. The empty selection has cost 0.
func NewSolution() *Solution {
	return &Solution{Elements: make([]int, 0)}
}

// Len returns the number of selected variables.
func (s *Solution) Len() int {
	return len(s.Elements)
}

// Contains reports whether variable i is selected. O(k).
func (s *Solution) Contains(i int) bool {
	return slices.Contains(s.Elements, i)
}

// Insert appends i if it is not already selected and reports whether the
// solution changed. The cached Cost is not updated.
func (s *Solution) Insert(i int) bool {
	if s.Contains(i) {
		return false
	}
	s.Elements = append(s.Elements, i)

	return true
}

// Remove deletes i while preserving the order of the remaining elements and
// reports whether the solution changed. The cached Cost is not updated.
func (s *Solution) Remove(i int) bool {
	idx := slices.Index(s.Elements, i)
	if idx < 0 {
		return false
	}
	s.Elements = slices.Delete(s.Elements, idx, idx+1)

	return true
}

// Clone returns a deep copy including the cached cost.
func (s *Solution) Clone() *Solution {
	return &Solution{Elements: slices.Clone(s.Elements), Cost: s.Cost}
}

func (s *Solution) String() string {
	return fmt.Sprintf("Solution: cost=[%g], size=[%d], elements=%v", s.Cost, len(s.Elements), s.Elements)
}
