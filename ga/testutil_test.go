package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qbftp/ga"
	"github.com/katalvlaran/qbftp/qbf"
	"github.com/stretchr/testify/require"
)

const seedDet = int64(7)

// newEval returns a random integer instance of order n.
func newEval(t *testing.T, n int, seed int64) *qbf.Evaluator {
	t.Helper()
	ev, err := qbf.RandomInstance(n, -10, 10, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return ev
}

// newOps builds default operators for a random instance of order n.
func newOps(t *testing.T, n int, mutate func(*ga.Options)) *ga.Operators {
	t.Helper()
	opts := ga.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	ops, err := ga.NewOperators(newEval(t, n, seedDet), opts)
	require.NoError(t, err)

	return ops
}

// requireFeasible fails if c sets all three loci of any triple.
func requireFeasible(t *testing.T, ops *ga.Operators, c ga.Chromosome) {
	t.Helper()
	v, err := ops.Repairer().Violated(c)
	require.NoError(t, err)
	require.Empty(t, v, "chromosome %s violates %v", c, v)
}
