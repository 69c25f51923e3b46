package ga

import (
	"fmt"
	"log/slog"
	"time"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultPopSize is the number of chromosomes per generation.
	DefaultPopSize = 100

	// DefaultGenerations is the number of generations per run.
	DefaultGenerations = 1000

	// DefaultMutationRate is the per-locus flip probability.
	DefaultMutationRate = 1.0 / 200.0

	// DefaultTournamentSize is the number of contenders per parent draw.
	DefaultTournamentSize = 2

	// DefaultWorkers evaluates fitness sequentially.
	DefaultWorkers = 1
)

// Options configures the genetic search.
type Options struct {
	// PopSize is the population size; it must be even and at least 2.
	PopSize int

	// Generations is the number of generations after initialization (0 ⇒ only
	// the initial population is evaluated).
	Generations int

	// MutationRate is the per-locus flip probability in [0,1].
	MutationRate float64

	// Seed drives the run's random stream; 0 selects a fixed default seed.
	Seed int64

	// RepairMode and RepairChoice configure feasibility repair.
	RepairMode   RepairMode
	RepairChoice RepairChoice

	// RepairCrossover repairs offspring right after crossover. When false,
	// raw offspring stay unrepaired until the following Mutate.
	RepairCrossover bool

	// TournamentSize is the number of contenders per parent draw (≥1).
	TournamentSize int

	// Workers bounds concurrent fitness evaluations (≥1).
	Workers int

	// TimeLimit stops the run after the given wall time (0 ⇒ unlimited).
	TimeLimit time.Duration

	// Logger receives run events; nil discards them.
	Logger *slog.Logger

	// Metrics receives run metrics; nil disables them.
	Metrics *Metrics
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
func DefaultOptions() Options {
	return Options{
		PopSize:        DefaultPopSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		RepairMode:     RepairSinglePass,
		RepairChoice:   RepairUniform,
		TournamentSize: DefaultTournamentSize,
		Workers:        DefaultWorkers,
	}
}

// Validate checks every field and returns a wrapped ErrBadOptions (or
// ErrOddPopulation) on the first violation.
func (o Options) Validate() error {
	switch {
	case o.PopSize < 2:
		return fmt.Errorf("PopSize %d < 2: %w", o.PopSize, ErrBadOptions)
	case o.PopSize%2 != 0:
		return fmt.Errorf("PopSize %d: %w", o.PopSize, ErrOddPopulation)
	case o.Generations < 0:
		return fmt.Errorf("Generations %d: %w", o.Generations, ErrBadOptions)
	case o.MutationRate < 0 || o.MutationRate > 1:
		return fmt.Errorf("MutationRate %v: %w", o.MutationRate, ErrBadOptions)
	case o.RepairMode != RepairSinglePass && o.RepairMode != RepairFixedPoint:
		return fmt.Errorf("RepairMode %v: %w", o.RepairMode, ErrBadOptions)
	case o.RepairChoice != RepairUniform && o.RepairChoice != RepairGreedy:
		return fmt.Errorf("RepairChoice %v: %w", o.RepairChoice, ErrBadOptions)
	case o.TournamentSize < 1:
		return fmt.Errorf("TournamentSize %d: %w", o.TournamentSize, ErrBadOptions)
	case o.Workers < 1:
		return fmt.Errorf("Workers %d: %w", o.Workers, ErrBadOptions)
	case o.TimeLimit < 0:
		return fmt.Errorf("TimeLimit %v: %w", o.TimeLimit, ErrBadOptions)
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.DiscardHandler)
}
