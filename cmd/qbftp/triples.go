package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/qbftp/qbf"
	"github.com/katalvlaran/qbftp/triple"
	"github.com/spf13/cobra"
)

func newTriplesCmd(a *app) *cobra.Command {
	var instance string

	cmd := &cobra.Command{
		Use:   "triples [n]",
		Short: "Print the prohibited triples for a domain size or an instance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var n int
			switch {
			case instance != "":
				ev, err := qbf.LoadInstance(instance)
				if err != nil {
					return err
				}
				n = ev.Size()
			case len(args) == 1:
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("domain size %q: %w", args[0], err)
				}
				n = v
			default:
				return fmt.Errorf("pass a domain size or --instance")
			}

			set, err := triple.Generate(n)
			if err != nil {
				return err
			}
			a.log.Debug("generated triples", "n", n, "count", len(set))
			for _, t := range set {
				fmt.Fprintln(a.out, t)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&instance, "instance", "i", "", "take the domain size from this instance file")

	return cmd
}
