package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qbftp/ga"
	"github.com/katalvlaran/qbftp/qbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperators_Errors(t *testing.T) {
	_, err := ga.NewOperators(nil, ga.DefaultOptions())
	assert.ErrorIs(t, err, ga.ErrNilEvaluator)

	opts := ga.DefaultOptions()
	opts.MutationRate = 1.5
	_, err = ga.NewOperators(newEval(t, 10, 1), opts)
	assert.ErrorIs(t, err, ga.ErrBadOptions)
}

func TestRandomChromosome_AlwaysFeasible(t *testing.T) {
	ops := newOps(t, 100, nil)
	rng := ga.NewRNG(seedDet)

	for i := 0; i < 1000; i++ {
		c, err := ops.RandomChromosome(rng)
		require.NoError(t, err)
		require.Len(t, c, 100)
		requireFeasible(t, ops, c)
	}
}

func TestDecodeAndFitness(t *testing.T) {
	const n = 20
	ev := newEval(t, n, 3)
	ops, err := ga.NewOperators(ev, ga.DefaultOptions())
	require.NoError(t, err)

	c, err := ops.RandomChromosome(ga.NewRNG(seedDet))
	require.NoError(t, err)

	sol, err := ops.Decode(c)
	require.NoError(t, err)
	assert.Equal(t, c.Ones(), sol.Len())
	for k := 1; k < sol.Len(); k++ {
		assert.Less(t, sol.Elements[k-1], sol.Elements[k], "elements ascending")
	}

	x := qbf.NewAssignment(n)
	for i, b := range c {
		x[i] = float64(b)
	}
	want, err := ev.EvaluateFull(x)
	require.NoError(t, err)
	assert.Equal(t, want, sol.Cost)

	fit, err := ops.Fitness(c)
	require.NoError(t, err)
	assert.Equal(t, want, fit)

	_, err = ops.Decode(ga.NewChromosome(n + 1))
	assert.ErrorIs(t, err, ga.ErrChromosomeLength)
}

func TestDecode_Empty(t *testing.T) {
	ops := newOps(t, 10, nil)
	sol, err := ops.Decode(ga.NewChromosome(10))
	require.NoError(t, err)
	assert.Zero(t, sol.Len())
	assert.Zero(t, sol.Cost)
}

func TestMutate_ZeroRateKeepsFeasible(t *testing.T) {
	ops := newOps(t, 30, func(o *ga.Options) { o.MutationRate = 0 })
	rng := ga.NewRNG(seedDet)

	pop := make(ga.Population, 6)
	for i := range pop {
		c, err := ops.RandomChromosome(rng)
		require.NoError(t, err)
		pop[i] = c
	}
	before := pop.Clone()

	out, err := ops.Mutate(pop, rng)
	require.NoError(t, err)
	for i := range out {
		assert.True(t, before[i].Equal(out[i]), "member %d changed", i)
	}
}

func TestMutate_FullRateRepairs(t *testing.T) {
	ops := newOps(t, 50, func(o *ga.Options) { o.MutationRate = 1 })
	rng := ga.NewRNG(seedDet)

	// every locus flips from 0 to 1, then repair must clear enough of them
	pop := ga.Population{ga.NewChromosome(50), ga.NewChromosome(50)}
	out, err := ops.Mutate(pop, rng)
	require.NoError(t, err)
	for _, c := range out {
		assert.Positive(t, c.Ones())
		requireFeasible(t, ops, c)
	}

	_, err = ops.Mutate(ga.Population{ga.NewChromosome(3)}, rng)
	assert.ErrorIs(t, err, ga.ErrChromosomeLength)
}

func TestCrossover_OddPopulation(t *testing.T) {
	ops := newOps(t, 10, nil)
	pop := ga.Population{ga.NewChromosome(10), ga.NewChromosome(10), ga.NewChromosome(10)}

	_, err := ops.Crossover(pop, ga.NewRNG(seedDet))
	assert.ErrorIs(t, err, ga.ErrOddPopulation)
}

func TestCrossoverPair_IdenticalParents(t *testing.T) {
	ops := newOps(t, 10, nil)
	p := ga.Chromosome{1, 0, 1, 0, 0, 1, 0, 0, 1, 0}

	rng := rand.New(rand.NewSource(11))
	ref := rand.New(rand.NewSource(11))

	c1, c2, err := ops.CrossoverPair(p, p.Clone(), rng)
	require.NoError(t, err)
	assert.True(t, p.Equal(c1))
	assert.True(t, p.Equal(c2))
	assert.Equal(t, ref.Int63(), rng.Int63(), "no randomness consumed")

	c1[0] = 0
	assert.Equal(t, uint8(1), p[0], "children are copies")
}

func TestCrossoverPair_Symmetry(t *testing.T) {
	ops := newOps(t, 40, nil)
	src := ga.NewRNG(seedDet)

	for trial := 0; trial < 200; trial++ {
		p1, err := ops.RandomChromosome(src)
		require.NoError(t, err)
		p2, err := ops.RandomChromosome(src)
		require.NoError(t, err)

		seed := src.Int63()
		a1, a2, err := ops.CrossoverPair(p1, p2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		b1, b2, err := ops.CrossoverPair(p2, p1, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		assert.True(t, a1.Equal(b2), "trial %d", trial)
		assert.True(t, a2.Equal(b1), "trial %d", trial)
	}
}

// TestCrossoverPair_PreservesBits checks that at every locus the two children
// carry the parents' bits, possibly swapped, and that loci outside the
// difference window are untouched.
func TestCrossoverPair_PreservesBits(t *testing.T) {
	ops := newOps(t, 12, nil)
	p1 := ga.Chromosome{1, 1, 0, 1, 0, 0, 1, 0, 0, 1, 1, 0}
	p2 := ga.Chromosome{1, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0}
	rng := ga.NewRNG(seedDet)

	for trial := 0; trial < 100; trial++ {
		c1, c2, err := ops.CrossoverPair(p1, p2, rng)
		require.NoError(t, err)
		for k := range p1 {
			same := c1[k] == p1[k] && c2[k] == p2[k]
			swapped := c1[k] == p2[k] && c2[k] == p1[k]
			assert.True(t, same || swapped, "locus %d", k)
			if k < 2 || k > 9 {
				assert.Equal(t, p1[k], c1[k])
			}
		}
	}
}

func TestCrossover_RepairFlag(t *testing.T) {
	ops := newOps(t, 60, func(o *ga.Options) { o.RepairCrossover = true })
	rng := ga.NewRNG(seedDet)

	pop := make(ga.Population, 10)
	for i := range pop {
		c := ga.NewChromosome(60)
		for k := range c {
			c[k] = uint8(rng.Intn(2))
		}
		pop[i] = c
	}

	out, err := ops.Crossover(pop, rng)
	require.NoError(t, err)
	require.Len(t, out, len(pop))
	for _, c := range out {
		requireFeasible(t, ops, c)
	}
}

// crossParents are feasible for n=10 (first triple is [0, 2, 6]) and differ
// only at loci 2 and 6; when the cut window is [2, 6) the second child
// inherits 0, 2 and 6 and violates that triple.
var crossParents = ga.Population{
	{1, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 0, 0, 1, 0, 0, 0},
}

// firstViolatingCrossover repeats Crossover on crossParents until an
// offspring violates a triple, or gives up after 200 draws.
func firstViolatingCrossover(t *testing.T, ops *ga.Operators) ga.Population {
	t.Helper()
	rng := ga.NewRNG(seedDet)
	for trial := 0; trial < 200; trial++ {
		out, err := ops.Crossover(crossParents.Clone(), rng)
		require.NoError(t, err)
		for _, c := range out {
			v, err := ops.Repairer().Violated(c)
			require.NoError(t, err)
			if len(v) > 0 {
				return out
			}
		}
	}

	return nil
}

func TestCrossover_DefaultLeavesOffspringUnrepaired(t *testing.T) {
	ops := newOps(t, 10, func(o *ga.Options) { o.MutationRate = 0 })
	for _, p := range crossParents {
		requireFeasible(t, ops, p)
	}

	out := firstViolatingCrossover(t, ops)
	require.NotNil(t, out, "raw offspring must be returned as produced")
	assert.True(t, out[1].Equal(ga.Chromosome{1, 0, 1, 0, 0, 0, 1, 0, 0, 0}))

	mutated, err := ops.Mutate(out, ga.NewRNG(seedDet))
	require.NoError(t, err)
	for _, c := range mutated {
		requireFeasible(t, ops, c)
	}
}

func TestCrossover_RepairFlagNeverEmitsViolations(t *testing.T) {
	ops := newOps(t, 10, func(o *ga.Options) { o.RepairCrossover = true })
	assert.Nil(t, firstViolatingCrossover(t, ops))
}
