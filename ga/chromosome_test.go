package ga_test

import (
	"testing"

	"github.com/katalvlaran/qbftp/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromosome_Basics(t *testing.T) {
	c := ga.Chromosome{1, 0, 1, 1}
	assert.Equal(t, 3, c.Ones())
	assert.Equal(t, "1011", c.String())

	d := c.Clone()
	d[0] = 0
	assert.False(t, c.Equal(d))
	assert.Equal(t, uint8(1), c[0], "clone must not alias")

	pop := ga.Population{c}
	cp := pop.Clone()
	cp[0][1] = 1
	assert.Equal(t, uint8(0), pop[0][1])
}

func TestMutateGene(t *testing.T) {
	c := ga.NewChromosome(3)
	require.NoError(t, ga.MutateGene(c, 1))
	assert.Equal(t, ga.Chromosome{0, 1, 0}, c)
	require.NoError(t, ga.MutateGene(c, 1))
	assert.Equal(t, ga.Chromosome{0, 0, 0}, c)

	assert.ErrorIs(t, ga.MutateGene(c, 3), ga.ErrLocusOutOfRange)
	assert.ErrorIs(t, ga.MutateGene(c, -1), ga.ErrLocusOutOfRange)
}

func TestRNG_SeedPolicy(t *testing.T) {
	a, b := ga.NewRNG(0), ga.NewRNG(1)
	assert.Equal(t, a.Int63(), b.Int63(), "seed 0 maps to the default seed")

	base1, base2 := ga.NewRNG(seedDet), ga.NewRNG(seedDet)
	s1, s2 := ga.DeriveRNG(base1, 3), ga.DeriveRNG(base2, 3)
	assert.Equal(t, s1.Int63(), s2.Int63(), "derivation is deterministic")

	base := ga.NewRNG(seedDet)
	x, y := ga.DeriveRNG(base, 0), ga.DeriveRNG(base, 1)
	assert.NotEqual(t, x.Int63(), y.Int63(), "streams must differ")
}
