package ga

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qbftp/qbf"
	"golang.org/x/sync/errgroup"
)

// Solve builds the QBFTP operators for ev and runs one engine search.
func Solve(ctx context.Context, ev *qbf.Evaluator, opts Options) (Result, error) {
	eng, err := newQBFTPEngine(ev, opts)
	if err != nil {
		return Result{}, err
	}

	return eng.Run(ctx)
}

// SolveMulti runs restarts independent searches concurrently and returns the
// best result first, followed by the others in restart order.
//
// Each restart gets its own stream derived from Options.Seed, so the outcome
// is reproducible regardless of scheduling. The evaluator and triple set are
// shared read-only.
func SolveMulti(ctx context.Context, ev *qbf.Evaluator, opts Options, restarts int) ([]Result, error) {
	if restarts < 1 {
		return nil, fmt.Errorf("SolveMulti: restarts %d: %w", restarts, ErrBadOptions)
	}
	eng, err := newQBFTPEngine(ev, opts)
	if err != nil {
		return nil, err
	}

	base := NewRNG(opts.Seed)
	rngs := make([]*rand.Rand, restarts)
	for k := range rngs {
		rngs[k] = DeriveRNG(base, uint64(k))
	}

	results := make([]Result, restarts)
	g, gctx := errgroup.WithContext(ctx)
	for k := range results {
		g.Go(func() error {
			r, rerr := eng.RunWithRNG(gctx, rngs[k])
			if rerr != nil {
				return fmt.Errorf("restart %d: %w", k, rerr)
			}
			results[k] = r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	bi := 0
	for k := range results {
		if results[k].Best.Cost > results[bi].Best.Cost {
			bi = k
		}
	}
	results[0], results[bi] = results[bi], results[0]

	return results, nil
}

func newQBFTPEngine(ev *qbf.Evaluator, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ops, err := NewOperators(ev, opts)
	if err != nil {
		return nil, err
	}

	return NewEngine(ops.Bundle(), opts)
}
