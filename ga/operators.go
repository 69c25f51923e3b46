package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qbftp/qbf"
	"github.com/katalvlaran/qbftp/triple"
)

// Operators are the QBFTP genetic operators: random initialization, decoding,
// fitness, mutation and difference-window crossover, all bound to one
// evaluator and its forbidden triples.
//
// Operators hold no mutable state. Decode and Fitness are safe for
// concurrent use; the randomized operators are safe as long as each
// goroutine passes its own *rand.Rand.
type Operators struct {
	eval            *qbf.Evaluator
	repairer        *Repairer
	n               int
	mutationRate    float64
	repairCrossover bool
}

// NewOperators generates the forbidden triples for ev's domain and binds the
// operators to them. Only the operator-related fields of opts are read
// (MutationRate, RepairMode, RepairChoice, RepairCrossover, Metrics).
func NewOperators(ev *qbf.Evaluator, opts Options) (*Operators, error) {
	if ev.Size() == 0 {
		return nil, fmt.Errorf("NewOperators: %w", ErrNilEvaluator)
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return nil, fmt.Errorf("NewOperators: mutation rate %v: %w", opts.MutationRate, ErrBadOptions)
	}

	n := ev.Size()
	set, err := triple.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("NewOperators: %w", err)
	}
	rep, err := NewRepairer(set, n, opts.RepairMode, opts.RepairChoice, ev, opts.Metrics)
	if err != nil {
		return nil, fmt.Errorf("NewOperators: %w", err)
	}

	return &Operators{
		eval:            ev,
		repairer:        rep,
		n:               n,
		mutationRate:    opts.MutationRate,
		repairCrossover: opts.RepairCrossover,
	}, nil
}

// Size returns the chromosome length n.
func (o *Operators) Size() int {
	return o.n
}

// Repairer exposes the feasibility repair bound to these operators.
func (o *Operators) Repairer() *Repairer {
	return o.repairer
}

// RandomChromosome draws n independent uniform bits and repairs the result.
// The returned chromosome is always feasible.
func (o *Operators) RandomChromosome(rng *rand.Rand) (Chromosome, error) {
	c := NewChromosome(o.n)
	for i := range c {
		c[i] = uint8(rng.Intn(2))
	}
	if _, err := o.repairer.Repair(c, rng); err != nil {
		return nil, fmt.Errorf("RandomChromosome: %w", err)
	}

	return c, nil
}

// Decode builds the Solution selecting every locus equal to 1 (ascending)
// and caches its full evaluation as the solution cost.
func (o *Operators) Decode(c Chromosome) (*qbf.Solution, error) {
	if len(c) != o.n {
		return nil, fmt.Errorf("Decode: len %d, want %d: %w", len(c), o.n, ErrChromosomeLength)
	}

	sol := qbf.NewSolution()
	for locus, b := range c {
		if b == 1 {
			sol.Elements = append(sol.Elements, locus)
		}
	}
	if _, err := o.eval.Evaluate(sol); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return sol, nil
}

// Fitness is the cost of the decoded chromosome, always fully re-evaluated.
func (o *Operators) Fitness(c Chromosome) (float64, error) {
	sol, err := o.Decode(c)
	if err != nil {
		return 0, err
	}

	return sol.Cost, nil
}

// MutateGene flips the bit at locus in place.
func MutateGene(c Chromosome, locus int) error {
	if locus < 0 || locus >= len(c) {
		return fmt.Errorf("MutateGene(%d) on %d loci: %w", locus, len(c), ErrLocusOutOfRange)
	}
	c[locus] = 1 - c[locus]

	return nil
}

// Mutate flips each locus of each chromosome independently with probability
// MutationRate, then repairs the chromosome once. pop is modified in place
// and returned.
func (o *Operators) Mutate(pop Population, rng *rand.Rand) (Population, error) {
	for k, c := range pop {
		if len(c) != o.n {
			return nil, fmt.Errorf("Mutate: member %d: %w", k, ErrChromosomeLength)
		}
		for locus := range c {
			if rng.Float64() < o.mutationRate {
				c[locus] = 1 - c[locus]
			}
		}
		if _, err := o.repairer.Repair(c, rng); err != nil {
			return nil, fmt.Errorf("Mutate: member %d: %w", k, err)
		}
	}

	return pop, nil
}

// Crossover recombines parents pairwise, (0,1), (2,3), …, into a new
// population of the same size. See CrossoverPair for the per-pair rule.
//
// Offspring are repaired only when the operators were built with
// RepairCrossover; otherwise they may violate triples until the next Mutate.
func (o *Operators) Crossover(parents Population, rng *rand.Rand) (Population, error) {
	if len(parents)%2 != 0 {
		return nil, fmt.Errorf("Crossover: %d parents: %w", len(parents), ErrOddPopulation)
	}

	offspring := make(Population, 0, len(parents))
	for i := 0; i < len(parents); i += 2 {
		c1, c2, err := o.CrossoverPair(parents[i], parents[i+1], rng)
		if err != nil {
			return nil, fmt.Errorf("Crossover: pair %d: %w", i/2, err)
		}
		if o.repairCrossover {
			if _, err = o.repairer.Repair(c1, rng); err != nil {
				return nil, fmt.Errorf("Crossover: %w", err)
			}
			if _, err = o.repairer.Repair(c2, rng); err != nil {
				return nil, fmt.Errorf("Crossover: %w", err)
			}
		}
		offspring = append(offspring, c1, c2)
	}

	return offspring, nil
}

// CrossoverPair recombines two parents inside their difference window.
// MAIN DESCRIPTION:
//   - Two-point crossover whose cut points stay between the first and last
//     locus where the parents disagree.
//
// Implementation:
//   - Stage 1: [start,end] = smallest range covering every locus where p1
//     and p2 differ.
//   - Stage 2: cp1 uniform in [start,end], then cp2 uniform in [cp1,end].
//   - Stage 3: the first child takes p2's bits on [cp1,cp2) and p1's
//     elsewhere; the second child is the mirror.
//
// Behavior highlights:
//   - Identical parents yield two copies and consume no randomness.
//   - The window depends only on the unordered pair, so swapping p1 and p2
//     under the same rng state swaps the two children.
//   - Children are not repaired here; see Crossover.
//
// Errors:
//   - ErrChromosomeLength if either parent is not of length n.
//
// Determinism:
//   - At most two rng draws per pair.
//
// Complexity:
//   - Time O(n), Space O(n).
func (o *Operators) CrossoverPair(p1, p2 Chromosome, rng *rand.Rand) (Chromosome, Chromosome, error) {
	if len(p1) != o.n || len(p2) != o.n {
		return nil, nil, fmt.Errorf("CrossoverPair: lens %d/%d, want %d: %w", len(p1), len(p2), o.n, ErrChromosomeLength)
	}

	start, end := -1, -1
	for k := range p1 {
		if p1[k] != p2[k] {
			if start < 0 {
				start = k
			}
			end = k
		}
	}

	cp1, cp2 := 0, 0
	if start >= 0 {
		cp1 = start + rng.Intn(end-start+1)
		cp2 = cp1 + rng.Intn(end-cp1+1)
	}

	c1, c2 := p1.Clone(), p2.Clone()
	for k := cp1; k < cp2; k++ {
		c1[k], c2[k] = p2[k], p1[k]
	}

	return c1, c2, nil
}
