package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/qbftp/qbf"
	"github.com/katalvlaran/qbftp/triple"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval instance [index...]",
		Short: "Score a selection of variables and report violated triples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ev, err := qbf.LoadInstance(args[0])
			if err != nil {
				return err
			}

			sol := qbf.NewSolution()
			for _, s := range args[1:] {
				i, perr := strconv.Atoi(s)
				if perr != nil {
					return fmt.Errorf("index %q: %w", s, perr)
				}
				if i < 0 || i >= ev.Size() {
					return fmt.Errorf("index %d: %w", i, qbf.ErrIndexOutOfRange)
				}
				sol.Insert(i)
			}
			if _, err = ev.Evaluate(sol); err != nil {
				return err
			}

			set, err := triple.Generate(ev.Size())
			if err != nil {
				return err
			}
			x, err := qbf.AssignmentOf(sol, ev.Size())
			if err != nil {
				return err
			}
			bits := make([]uint8, len(x))
			for i, v := range x {
				bits[i] = uint8(v)
			}
			violated := set.Violated(bits)

			a.log.Debug("evaluated selection", "size", sol.Len(), "cost", sol.Cost)
			fmt.Fprintln(a.out, sol)
			fmt.Fprintf(a.out, "violated triples: %d\n", len(violated))
			for _, t := range violated {
				fmt.Fprintln(a.out, " ", t)
			}

			return nil
		},
	}
}
