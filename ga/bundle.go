package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qbftp/qbf"
)

// Bundle is the set of operators an Engine drives. Any field may be replaced
// with a custom closure; the engine only ever calls through the bundle.
//
// Fitness is called concurrently when Options.Workers > 1. The randomized
// operators are always called from the engine goroutine with its own rng.
type Bundle struct {
	RandomInit func(rng *rand.Rand) (Chromosome, error)
	Decode     func(c Chromosome) (*qbf.Solution, error)
	Fitness    func(c Chromosome) (float64, error)
	Mutate     func(pop Population, rng *rand.Rand) (Population, error)
	Crossover  func(parents Population, rng *rand.Rand) (Population, error)
}

// Bundle returns the QBFTP operators as a Bundle.
func (o *Operators) Bundle() Bundle {
	return Bundle{
		RandomInit: o.RandomChromosome,
		Decode:     o.Decode,
		Fitness:    o.Fitness,
		Mutate:     o.Mutate,
		Crossover:  o.Crossover,
	}
}

func (b Bundle) validate() error {
	switch {
	case b.RandomInit == nil:
		return fmt.Errorf("RandomInit: %w", ErrIncompleteBundle)
	case b.Decode == nil:
		return fmt.Errorf("Decode: %w", ErrIncompleteBundle)
	case b.Fitness == nil:
		return fmt.Errorf("Fitness: %w", ErrIncompleteBundle)
	case b.Mutate == nil:
		return fmt.Errorf("Mutate: %w", ErrIncompleteBundle)
	case b.Crossover == nil:
		return fmt.Errorf("Crossover: %w", ErrIncompleteBundle)
	}

	return nil
}
