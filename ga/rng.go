package ga

import "math/rand"

// Random streams for the engine and for SolveMulti restarts.
//
// A GA run consumes its *rand.Rand in a fixed order: initialization, then per
// generation tournament draws, crossover cut points, mutation coins and repair
// choices. Giving each run a private stream keeps that order, and therefore
// the result, independent of how concurrent restarts are scheduled.
// A *rand.Rand is not safe for concurrent use.

// defaultRNGSeed replaces a zero seed so that Options{} still reproduces.
const defaultRNGSeed int64 = 1

// NewRNG returns the stream for one run. Seed 0 selects defaultRNGSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// restartSeed scrambles (parent, restart) with the SplitMix64 finalizer so
// that neighbouring restart numbers give unrelated seeds.
func restartSeed(parent int64, restart uint64) int64 {
	z := uint64(parent) ^ (restart + 0x9e3779b97f4a7c15)
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// DeriveRNG returns the private stream for restart number k.
//
// SolveMulti calls it once per restart, in restart order, before any
// goroutine starts: each call draws one value from base as the parent, so
// restart k always receives the same stream for a given Options.Seed.
// A nil base uses defaultRNGSeed as the parent and draws nothing.
func DeriveRNG(base *rand.Rand, k uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(restartSeed(parent, k)))
}
