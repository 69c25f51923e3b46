package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/qbftp/ga"
	"github.com/katalvlaran/qbftp/qbf"
	"github.com/spf13/cobra"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		lo, hi int
		seed   int64
		out    string
	)

	cmd := &cobra.Command{
		Use:   "gen n",
		Short: "Write a random instance with integer coefficients",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("domain size %q: %w", args[0], err)
			}
			ev, err := qbf.RandomInstance(n, lo, hi, ga.NewRNG(seed))
			if err != nil {
				return err
			}

			if out == "" {
				err = qbf.WriteInstance(a.out, ev)
			} else {
				err = writeInstanceFile(out, ev)
			}
			if err != nil {
				return err
			}
			a.log.Info("instance written", "n", n, "out", out)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&lo, "lo", -10, "smallest coefficient")
	fl.IntVar(&hi, "hi", 10, "largest coefficient")
	fl.Int64VarP(&seed, "seed", "s", 0, "random seed (0 selects the default seed)")
	fl.StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

// writeInstanceFile writes ev to path and reports the Close error, which is
// where a failed flush of a full disk surfaces.
func writeInstanceFile(path string, ev *qbf.Evaluator) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = qbf.WriteInstance(f, ev); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
