package ga

import "errors"

var (
	// ErrNilEvaluator indicates Operators built without a loaded evaluator.
	ErrNilEvaluator = errors.New("ga: nil evaluator")

	// ErrLocusOutOfRange indicates a locus outside [0, chromosome length).
	ErrLocusOutOfRange = errors.New("ga: locus out of range")

	// ErrChromosomeLength indicates a chromosome whose length differs from n.
	ErrChromosomeLength = errors.New("ga: chromosome length mismatch")

	// ErrOddPopulation indicates a parent population that cannot be paired.
	ErrOddPopulation = errors.New("ga: population size must be even")

	// ErrBadOptions indicates an Options value that failed validation.
	ErrBadOptions = errors.New("ga: invalid options")

	// ErrIncompleteBundle indicates a Bundle with a nil operator.
	ErrIncompleteBundle = errors.New("ga: operator bundle incomplete")

	// ErrEmptyPopulation indicates an engine step on an empty population.
	ErrEmptyPopulation = errors.New("ga: empty population")
)
