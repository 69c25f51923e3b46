package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qbftp/qbf"
	"github.com/katalvlaran/qbftp/triple"
)

// RepairMode selects how many scans Repair performs.
type RepairMode int

const (
	// RepairSinglePass computes the violated triples once and fixes each of
	// them, without re-scanning. Every violated triple loses one of its own
	// loci and clearing never creates a violation, so the result is feasible.
	RepairSinglePass RepairMode = iota

	// RepairFixedPoint re-scans after every pass until no triple is violated.
	// With the current choices the second scan always comes back empty; the
	// mode exists for custom choices that may skip a triple.
	RepairFixedPoint
)

// RepairChoice selects which locus of a violated triple is cleared.
type RepairChoice int

const (
	// RepairUniform clears one of the three loci uniformly at random. Every
	// listed triple is fixed, even if an earlier fix in the same pass already
	// cleared one of its loci.
	RepairUniform RepairChoice = iota

	// RepairGreedy clears the locus whose removal loses the least objective
	// value, scored with qbf.Evaluator.EvaluateRemoval against the current
	// bits. Triples already fixed earlier in the pass are skipped. Ties go to
	// the lowest index; no random numbers are drawn.
	RepairGreedy
)

func (m RepairMode) String() string {
	switch m {
	case RepairSinglePass:
		return "single-pass"
	case RepairFixedPoint:
		return "fixed-point"
	}

	return fmt.Sprintf("RepairMode(%d)", int(m))
}

func (c RepairChoice) String() string {
	switch c {
	case RepairUniform:
		return "uniform"
	case RepairGreedy:
		return "greedy"
	}

	return fmt.Sprintf("RepairChoice(%d)", int(c))
}

// Repairer restores feasibility of chromosomes against a fixed triple set.
// It holds no per-call state and may be shared; the *rand.Rand passed to
// Repair may not.
type Repairer struct {
	triples triple.Set
	n       int
	mode    RepairMode
	choice  RepairChoice
	eval    *qbf.Evaluator // required for RepairGreedy
	metrics *Metrics
}

// NewRepairer builds a Repairer for chromosomes of length n.
// eval may be nil unless choice is RepairGreedy.
func NewRepairer(set triple.Set, n int, mode RepairMode, choice RepairChoice, eval *qbf.Evaluator, m *Metrics) (*Repairer, error) {
	if err := set.Check(make([]uint8, n)); err != nil {
		return nil, fmt.Errorf("NewRepairer: %w", err)
	}
	if mode != RepairSinglePass && mode != RepairFixedPoint {
		return nil, fmt.Errorf("NewRepairer: %v: %w", mode, ErrBadOptions)
	}
	switch choice {
	case RepairUniform:
	case RepairGreedy:
		if eval.Size() != n {
			return nil, fmt.Errorf("NewRepairer: greedy choice: %w", ErrNilEvaluator)
		}
	default:
		return nil, fmt.Errorf("NewRepairer: %v: %w", choice, ErrBadOptions)
	}

	return &Repairer{triples: set, n: n, mode: mode, choice: choice, eval: eval, metrics: m}, nil
}

// Triples returns the triple set the repairer enforces.
func (r *Repairer) Triples() triple.Set {
	return r.triples
}

// Violated returns the triples fully set in c.
func (r *Repairer) Violated(c Chromosome) ([]triple.Triple, error) {
	if len(c) != r.n {
		return nil, fmt.Errorf("Violated: len %d, want %d: %w", len(c), r.n, ErrChromosomeLength)
	}

	return r.triples.Violated(c), nil
}

// Repair clears loci of c in place until no triple is violated and returns
// how many loci went from 1 to 0.
// MAIN DESCRIPTION:
//   - Restores feasibility after initialization, mutation and, with
//     Options.RepairCrossover, crossover.
//
// Implementation:
//   - Stage 1: list the violated triples of c.
//   - Stage 2: fix each listed triple by clearing one of its loci, chosen by
//     RepairUniform (rng draw, even if already fixed in this pass) or
//     RepairGreedy (least removal loss, already-fixed triples skipped).
//   - Stage 3: RepairSinglePass stops; RepairFixedPoint re-scans, at most n
//     passes.
//
// Behavior highlights:
//   - Clearing a bit can never complete a triple, so one pass is already
//     feasible for both choices.
//   - Loci are only ever cleared, never set.
//
// Inputs:
//   - c: chromosome of length n, modified in place.
//   - rng: consumed only by RepairUniform; may be nil for RepairGreedy.
//
// Errors:
//   - ErrChromosomeLength; evaluator errors under RepairGreedy.
//
// Complexity:
//   - Time O(passes·(|Set| + v·n)) where v is the number of violated triples
//     (n per greedy removal score), Space O(n) for greedy.
func (r *Repairer) Repair(c Chromosome, rng *rand.Rand) (int, error) {
	if len(c) != r.n {
		return 0, fmt.Errorf("Repair: len %d, want %d: %w", len(c), r.n, ErrChromosomeLength)
	}

	var (
		cleared  int
		violated []triple.Triple
	)
	for pass := 0; pass <= r.n; pass++ {
		violated = r.triples.Violated(c)
		if len(violated) == 0 {
			break
		}

		k, err := r.fix(c, violated, rng)
		if err != nil {
			return cleared, err
		}
		cleared += k

		if r.mode == RepairSinglePass {
			break
		}
	}
	r.metrics.addRepairClears(cleared)

	return cleared, nil
}

// fix runs one pass over a precomputed violation list.
func (r *Repairer) fix(c Chromosome, violated []triple.Triple, rng *rand.Rand) (int, error) {
	var cleared int

	if r.choice == RepairUniform {
		for _, t := range violated {
			locus := t[rng.Intn(3)]
			if c[locus] == 1 {
				cleared++
			}
			c[locus] = 0
		}

		return cleared, nil
	}

	x := assignmentOf(c)
	for _, t := range violated {
		if c[t[0]] == 0 || c[t[1]] == 0 || c[t[2]] == 0 {
			continue
		}
		best, bestDelta := -1, 0.0
		for _, locus := range t {
			d, err := r.eval.EvaluateRemoval(x, locus)
			if err != nil {
				return cleared, fmt.Errorf("Repair: %w", err)
			}
			if best < 0 || d > bestDelta {
				best, bestDelta = locus, d
			}
		}
		c[best] = 0
		x[best] = 0
		cleared++
	}

	return cleared, nil
}

// assignmentOf mirrors c into a fresh qbf.Assignment.
func assignmentOf(c Chromosome) qbf.Assignment {
	x := qbf.NewAssignment(len(c))
	for i, b := range c {
		x[i] = float64(b)
	}

	return x
}
