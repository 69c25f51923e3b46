package triple

import (
	"errors"
	"fmt"
)

var (
	// ErrDomainTooSmall indicates n < MinDomainSize.
	ErrDomainTooSmall = errors.New("triple: domain too small")

	// ErrDegenerateTriple indicates a generated triple with repeated indices.
	ErrDegenerateTriple = errors.New("triple: degenerate triple")

	// ErrBitsLength indicates a bit vector shorter than the indices it is
	// checked against.
	ErrBitsLength = errors.New("triple: bit vector too short")
)

// MinDomainSize is the smallest n for which three distinct indices exist.
const MinDomainSize = 3

// Generator constants for g and h.
const (
	gP1, gP2 = 131, 1031
	hP1, hP2 = 193, 1093
)

// Triple holds three 0-based variable indices in ascending order.
type Triple [3]int

// Distinct reports whether the three indices are pairwise different.
func (t Triple) Distinct() bool {
	return t[0] != t[1] && t[1] != t[2] && t[0] != t[2]
}

func (t Triple) String() string {
	return fmt.Sprintf("[%d, %d, %d]", t[0], t[1], t[2])
}

// newTriple sorts three indices into a Triple.
func newTriple(a, b, c int) Triple {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return Triple{a, b, c}
}
