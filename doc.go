// Package qbftp maximizes quadratic binary functions under prohibited
// triples (MAX-QBFPT) with a genetic algorithm.
//
// 🚀 What is in the box?
//
//		• QBF evaluation: f(x) = xᵀ·A·x over an upper-triangular A, plus O(n)
//		  insertion, removal and exchange deltas
//		• Prohibited triples: a deterministic generator of n forbidden
//		  variable triples, and violation checks
//		• Feasibility repair: single-pass or fixed-point, uniform or greedy
//		• GA operators: random init, decode, fitness, mutation and a crossover
//		  whose cut points stay inside the window where the parents differ
//		• Engine: tournament selection, elitism, bounded parallel fitness,
//		  concurrent restarts, slog logging, OpenTelemetry spans and
//		  Prometheus metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    : dense float64 matrix, validators and triangle masking
//	qbf/       : Evaluator, Assignment, Solution and the instance file format
//	triple/    : the l/g/h triple generator and triple Set checks
//	ga/        : chromosomes, repair, operators, Engine, Solve/SolveMulti
//	config/    : YAML + environment configuration with validation
//	cmd/qbftp/ : the command-line front end (solve, eval, triples, gen)
//
// Quick start:
//
//	ev, _ := qbf.LoadInstance("instances/qbf040")
//	res, _ := ga.Solve(ctx, ev, ga.DefaultOptions())
//	fmt.Println(res.Best)
//
// Every randomized call takes an explicit *rand.Rand; the same seed and
// options reproduce the same run.
package qbftp
