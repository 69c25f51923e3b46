// Package triple generates the forbidden triples of a QBFTP instance.
//
// A forbidden triple {a,b,c} states that variables a, b and c may not all be
// selected at once. For a domain of size n exactly n triples are derived from
// n alone, with no external randomness:
//
//	l(p1,p2,u,n) = 1 + ((p1·u + p2) mod n)
//	g(u,n)       = l(131,1031,u,n), bumped by one (cyclically) if it hits u
//	h(u,n)       = l(193,1093,u,n), bumped by one or two if it hits u or g(u,n)
//	T_u          = sort{u−1, g(u,n)−1, h(u,n)−1}        u = 1..n
//
// The resulting Set is immutable and safe for concurrent readers.
//
// Validation:
//
//	Generate rejects n < 3 (ErrDomainTooSmall) and any triple whose three
//	indices are not pairwise distinct (ErrDegenerateTriple). Triples are never
//	deduplicated: two u values may yield the same index set.
package triple
