package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/qbftp/config"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand after PersistentPreRunE.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg config.Config
	log *slog.Logger

	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "qbftp",
		Short:         "Maximize quadratic binary functions under prohibited triples",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(
		newSolveCmd(a),
		newEvalCmd(a),
		newTriplesCmd(a),
		newGenCmd(a),
	)

	return root
}

// setup loads the configuration, applies the logging flags and builds the
// logger. Subcommand flags are applied by each subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.log, err = cfg.NewLogger(a.errOut); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}
