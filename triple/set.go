package triple

import "fmt"

// Set is the fixed list of forbidden triples of an instance. Position u−1
// holds the triple generated for u. Treat a Set as read-only once built.
type Set []Triple

// Violated returns the triples whose three loci are all 1 in bits, in Set
// order. bits must cover every index referenced by s.
// Complexity: O(len(s)).
func (s Set) Violated(bits []uint8) []Triple {
	var out []Triple
	for _, t := range s {
		if bits[t[0]] == 1 && bits[t[1]] == 1 && bits[t[2]] == 1 {
			out = append(out, t)
		}
	}

	return out
}

// Feasible reports whether no triple of s is fully set in bits.
func (s Set) Feasible(bits []uint8) bool {
	for _, t := range s {
		if bits[t[0]] == 1 && bits[t[1]] == 1 && bits[t[2]] == 1 {
			return false
		}
	}

	return true
}

// Check verifies that bits is long enough for every index in s.
func (s Set) Check(bits []uint8) error {
	for _, t := range s {
		if t[2] >= len(bits) || t[0] < 0 {
			return fmt.Errorf("triple %v vs %d bits: %w", t, len(bits), ErrBitsLength)
		}
	}

	return nil
}
