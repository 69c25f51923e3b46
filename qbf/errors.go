package qbf

import "errors"

var (
	// ErrNotLoaded is returned when an Evaluator without a coefficient matrix
	// (nil or zero value) is queried.
	ErrNotLoaded = errors.New("qbf: coefficient matrix not loaded")

	// ErrIndexOutOfRange indicates a variable index outside [0,n).
	ErrIndexOutOfRange = errors.New("qbf: variable index out of range")

	// ErrAssignmentSize indicates an Assignment whose length differs from n.
	ErrAssignmentSize = errors.New("qbf: assignment length does not match domain size")

	// ErrNilSolution indicates a nil *Solution argument.
	ErrNilSolution = errors.New("qbf: nil solution")

	// ErrMalformedInstance indicates a non-numeric token or an invalid order n.
	ErrMalformedInstance = errors.New("qbf: malformed instance")

	// ErrTruncatedInstance indicates the input ended before n·(n+1)/2 coefficients.
	ErrTruncatedInstance = errors.New("qbf: truncated instance")

	// ErrInvalidRange indicates lo > hi for random instance generation.
	ErrInvalidRange = errors.New("qbf: invalid coefficient range")
)
