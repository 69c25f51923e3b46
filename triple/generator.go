package triple

import "fmt"

// L is the linear congruential map 1 + ((p1·u + p2) mod n), valued in [1,n].
func L(p1, p2, u, n int) int {
	return 1 + ((p1*u + p2) % n)
}

// G returns l(131,1031,u,n) unless it equals u, in which case the next value
// cyclically, 1 + (l mod n).
func G(u, n int) int {
	l := L(gP1, gP2, u, n)
	if l != u {
		return l
	}

	return 1 + (l % n)
}

// H returns l(193,1093,u,n) if it differs from u and G(u,n); otherwise the
// next value 1 + (l mod n) if that differs from both; otherwise 1 + ((l+1) mod n).
func H(u, n int) int {
	l := L(hP1, hP2, u, n)
	g := G(u, n)
	if l != u && l != g {
		return l
	}
	if next := 1 + (l % n); next != u && next != g {
		return next
	}

	return 1 + ((l + 1) % n)
}

// Generate returns the n forbidden triples of a domain of size n.
// MAIN DESCRIPTION:
//   - Deterministic: the same n always yields the same Set, with no RNG.
//
// Implementation:
//   - Stage 1: reject n < MinDomainSize.
//   - Stage 2: for u = 1..n build sort{u−1, G(u,n)−1, H(u,n)−1} at position u−1.
//   - Stage 3: reject any triple that repeats an index.
//
// Behavior highlights:
//   - Duplicate triples for different u are kept as they are; the Set is
//     never deduplicated, so len(Set) == n.
//
// Errors:
//   - ErrDomainTooSmall for n < MinDomainSize.
//   - ErrDegenerateTriple if a triple repeats an index.
//
// Complexity:
//   - Time O(n), Space O(n).
func Generate(n int) (Set, error) {
	if n < MinDomainSize {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrDomainTooSmall)
	}

	set := make(Set, n)
	var u int
	for u = 1; u <= n; u++ {
		t := newTriple(u-1, G(u, n)-1, H(u, n)-1)
		if !t.Distinct() {
			return nil, fmt.Errorf("Generate(%d): u=%d %v: %w", n, u, t, ErrDegenerateTriple)
		}
		set[u-1] = t
	}

	return set, nil
}
