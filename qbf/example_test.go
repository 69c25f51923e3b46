package qbf_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qbftp/qbf"
)

// ExampleEvaluator_EvaluateExchange scores a swap without re-evaluating the
// whole quadratic form.
func ExampleEvaluator_EvaluateExchange() {
	ev, _ := qbf.ReadInstance(strings.NewReader("3\n1 2 3\n4 5\n6\n"))

	sol := qbf.NewSolution()
	sol.Insert(0)
	sol.Insert(2)
	cost, _ := ev.Evaluate(sol)

	x, _ := qbf.AssignmentOf(sol, ev.Size())
	delta, _ := ev.EvaluateExchange(x, 1, 2) // 1 enters, 2 leaves

	fmt.Println(cost, delta)
	// Output: 10 -3
}
