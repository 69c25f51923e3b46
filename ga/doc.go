// Package ga searches for high-value QBF assignments under forbidden-triple
// constraints with a genetic algorithm.
//
// Building blocks:
//
//   - Chromosome / Population: bit strings, locus i ↔ variable i.
//   - Repairer  : restores feasibility by clearing loci of violated triples
//     (RepairUniform or RepairGreedy; RepairSinglePass or RepairFixedPoint).
//   - Operators : RandomChromosome, Decode, Fitness, Mutate and Crossover for
//     one qbf.Evaluator and its triple.Set.
//   - Bundle    : the operators as plain function values.
//   - Engine    : the generational loop driving a Bundle.
//
// Randomness is explicit: every randomized call takes a *rand.Rand, and
// NewRNG/DeriveRNG produce reproducible streams. Fitness maximizes f(x).
//
// Quick start:
//
//	ev, _ := qbf.LoadInstance("instances/qbf040")
//	opts := ga.DefaultOptions()
//	opts.Seed = 7
//	res, err := ga.Solve(ctx, ev, opts)
//	fmt.Println(res.Best)
//
// Feasibility:
//
//	RandomChromosome and Mutate always return feasible chromosomes. Raw
//	crossover offspring may violate triples until the following Mutate
//	unless Options.RepairCrossover is set.
package ga
