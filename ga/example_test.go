package ga_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qbftp/ga"
	"github.com/katalvlaran/qbftp/qbf"
)

// ExampleSolve searches a random 30-variable instance and checks the answer
// against the forbidden triples.
func ExampleSolve() {
	ev, err := qbf.RandomInstance(30, -10, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := ga.DefaultOptions()
	opts.PopSize = 20
	opts.Generations = 50
	opts.Seed = 42

	res, err := ga.Solve(context.Background(), ev, opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	ops, _ := ga.NewOperators(ev, opts)
	violated, _ := ops.Repairer().Violated(res.BestChromosome)
	fmt.Println("violated triples:", len(violated))
	fmt.Println("stopped by:", res.Stop)
	// Output:
	// violated triples: 0
	// stopped by: generations
}
