package ga

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/qbftp/qbf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/katalvlaran/qbftp/ga"

// StopReason tells why a run ended.
type StopReason string

const (
	StopGenerations StopReason = "generations"
	StopTimeLimit   StopReason = "time_limit"
	StopCancelled   StopReason = "cancelled"
)

// Result is the outcome of one engine run.
type Result struct {
	RunID          string
	Best           *qbf.Solution
	BestChromosome Chromosome
	Generations    int // generations completed after initialization
	Stop           StopReason
	Elapsed        time.Duration
}

// Engine runs a generational GA over an operator bundle:
//
//  1. Initialize PopSize chromosomes with RandomInit and score them.
//  2. Each generation: draw PopSize parents by tournament, Crossover, Mutate,
//     score the offspring, then replace the worst offspring with the best
//     chromosome seen so far (elitism of one).
//  3. Stop after Generations generations, at TimeLimit, or on ctx
//     cancellation; the best chromosome is decoded into Result.Best.
//
// Fitness is maximized.
type Engine struct {
	ops  Bundle
	opts Options
}

// NewEngine validates the bundle and options.
func NewEngine(b Bundle, opts Options) (*Engine, error) {
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	return &Engine{ops: b, opts: opts}, nil
}

// Run executes one search with a fresh stream seeded from Options.Seed.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	return e.RunWithRNG(ctx, NewRNG(e.opts.Seed))
}

// RunWithRNG executes one search consuming rng. rng must not be shared with
// another goroutine for the duration of the call.
//
// Cancellation and TimeLimit are checked between generations and are not
// errors: the result holds the best chromosome found so far. Operator
// failures abort the run.
func (e *Engine) RunWithRNG(ctx context.Context, rng *rand.Rand) (res Result, err error) {
	var (
		start = time.Now()
		log   = e.opts.logger()
	)
	res.RunID = uuid.NewString()
	log = log.With("run_id", res.RunID)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "ga.Run", trace.WithAttributes(
		attribute.String("run_id", res.RunID),
		attribute.Int("population", e.opts.PopSize),
		attribute.Int("generations", e.opts.Generations),
		attribute.Float64("mutation_rate", e.opts.MutationRate),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.Float64("best_cost", res.Best.Cost),
				attribute.Int("generations_done", res.Generations),
				attribute.String("stop", string(res.Stop)),
			)
		}
		span.End()
	}()

	log.Info("ga run started",
		"population", e.opts.PopSize,
		"generations", e.opts.Generations,
		"mutation_rate", e.opts.MutationRate,
		"workers", e.opts.Workers,
	)

	pop, err := e.initialPopulation(rng)
	if err != nil {
		return res, err
	}
	fit, err := e.evaluate(pop)
	if err != nil {
		return res, err
	}

	bi := argmax(fit)
	best, bestFit := pop[bi].Clone(), fit[bi]
	e.opts.Metrics.setBest(bestFit)
	log.Debug("initial population scored", "best_cost", bestFit)

	var deadline time.Time
	if e.opts.TimeLimit > 0 {
		deadline = start.Add(e.opts.TimeLimit)
	}

	res.Stop = StopGenerations
	for g := 1; g <= e.opts.Generations; g++ {
		if ctx.Err() != nil {
			res.Stop = StopCancelled
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			res.Stop = StopTimeLimit
			break
		}

		genStart := time.Now()
		pop, fit, err = e.step(pop, fit, best, bestFit, rng)
		if err != nil {
			return res, fmt.Errorf("generation %d: %w", g, err)
		}
		e.opts.Metrics.observeGeneration(time.Since(genStart))
		res.Generations = g

		if bi = argmax(fit); fit[bi] > bestFit {
			best, bestFit = pop[bi].Clone(), fit[bi]
			e.opts.Metrics.setBest(bestFit)
			log.Debug("best improved", "generation", g, "best_cost", bestFit)
		}
	}

	if res.Best, err = e.ops.Decode(best); err != nil {
		return res, fmt.Errorf("decode best: %w", err)
	}
	res.BestChromosome = best
	res.Elapsed = time.Since(start)

	log.Info("ga run finished",
		"best_cost", res.Best.Cost,
		"selected", res.Best.Len(),
		"generations", res.Generations,
		"stop", res.Stop,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

func (e *Engine) initialPopulation(rng *rand.Rand) (Population, error) {
	pop := make(Population, e.opts.PopSize)
	for i := range pop {
		c, err := e.ops.RandomInit(rng)
		if err != nil {
			return nil, fmt.Errorf("initial population: %w", err)
		}
		pop[i] = c
	}

	return pop, nil
}

// step produces the next generation and its fitness values.
func (e *Engine) step(pop Population, fit []float64, best Chromosome, bestFit float64, rng *rand.Rand) (Population, []float64, error) {
	parents := e.selectParents(pop, fit, rng)

	offspring, err := e.ops.Crossover(parents, rng)
	if err != nil {
		return nil, nil, err
	}
	mutants, err := e.ops.Mutate(offspring, rng)
	if err != nil {
		return nil, nil, err
	}
	if len(mutants) == 0 {
		return nil, nil, ErrEmptyPopulation
	}

	mfit, err := e.evaluate(mutants)
	if err != nil {
		return nil, nil, err
	}

	worst := argmin(mfit)
	mutants[worst] = best.Clone()
	mfit[worst] = bestFit

	return mutants, mfit, nil
}

// selectParents draws PopSize parents, each the fittest of TournamentSize
// uniformly drawn contenders.
func (e *Engine) selectParents(pop Population, fit []float64, rng *rand.Rand) Population {
	parents := make(Population, e.opts.PopSize)
	for i := range parents {
		w := rng.Intn(len(pop))
		for k := 1; k < e.opts.TournamentSize; k++ {
			if c := rng.Intn(len(pop)); fit[c] > fit[w] {
				w = c
			}
		}
		parents[i] = pop[w]
	}

	return parents
}

// evaluate scores pop with at most Workers concurrent Fitness calls.
func (e *Engine) evaluate(pop Population) ([]float64, error) {
	fit := make([]float64, len(pop))
	if e.opts.Workers <= 1 {
		for i, c := range pop {
			v, err := e.ops.Fitness(c)
			if err != nil {
				return nil, fmt.Errorf("fitness of member %d: %w", i, err)
			}
			fit[i] = v
		}
		return fit, nil
	}

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for i, c := range pop {
		g.Go(func() error {
			v, err := e.ops.Fitness(c)
			if err != nil {
				return fmt.Errorf("fitness of member %d: %w", i, err)
			}
			fit[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return fit, nil
}

func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}

	return best
}

func argmin(v []float64) int {
	worst := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[worst] {
			worst = i
		}
	}

	return worst
}
