package ga

import "slices"

// Chromosome is a bit string; locus i encodes decision variable i and holds
// 0 or 1.
type Chromosome []uint8

// NewChromosome returns the all-zero chromosome of length n.
func NewChromosome(n int) Chromosome {
	return make(Chromosome, n)
}

// Clone returns an independent copy of c.
func (c Chromosome) Clone() Chromosome {
	return slices.Clone(c)
}

// Equal reports whether c and o carry the same bits.
func (c Chromosome) Equal(o Chromosome) bool {
	return slices.Equal(c, o)
}

// Ones returns the number of loci set to 1.
func (c Chromosome) Ones() int {
	var k int
	for _, b := range c {
		k += int(b)
	}

	return k
}

// String renders the bits as a compact 0/1 string.
func (c Chromosome) String() string {
	buf := make([]byte, len(c))
	for i, b := range c {
		buf[i] = '0' + b
	}

	return string(buf)
}

// Population is an ordered collection of chromosomes. Crossover pairs
// positions (0,1), (2,3), … so operator inputs must have even length.
type Population []Chromosome

// Clone deep-copies every member.
func (p Population) Clone() Population {
	out := make(Population, len(p))
	for i, c := range p {
		out[i] = c.Clone()
	}

	return out
}
