package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/qbftp/ga"
	"github.com/katalvlaran/qbftp/qbf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	population      int
	generations     int
	mutationRate    float64
	seed            int64
	repairMode      string
	repairChoice    string
	repairCrossover bool
	tournament      int
	workers         int
	timeLimit       time.Duration
	restarts        int
	metricsAddr     string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [instance]",
		Short: "Run the genetic search on an instance file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Instance = args[0]
			}
			if err := f.apply(cmd, a); err != nil {
				return err
			}
			return a.solve(cmd.Context())
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.population, "population", "p", 0, "population size (even)")
	fl.IntVarP(&f.generations, "generations", "g", 0, "number of generations")
	fl.Float64VarP(&f.mutationRate, "mutation-rate", "m", 0, "per-locus flip probability")
	fl.Int64VarP(&f.seed, "seed", "s", 0, "random seed (0 selects the default seed)")
	fl.StringVar(&f.repairMode, "repair-mode", "", "repair mode (single-pass, fixed-point)")
	fl.StringVar(&f.repairChoice, "repair-choice", "", "repair choice (uniform, greedy)")
	fl.BoolVar(&f.repairCrossover, "repair-crossover", false, "repair offspring right after crossover")
	fl.IntVar(&f.tournament, "tournament", 0, "tournament size")
	fl.IntVarP(&f.workers, "workers", "w", 0, "concurrent fitness evaluations")
	fl.DurationVarP(&f.timeLimit, "time-limit", "t", 0, "wall time limit per run")
	fl.IntVarP(&f.restarts, "restarts", "r", 0, "independent concurrent runs")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

// apply copies the flags the user set over the loaded configuration.
func (f *solveFlags) apply(cmd *cobra.Command, a *app) error {
	fl := cmd.Flags()
	c := &a.cfg

	if fl.Changed("population") {
		c.GA.Population = f.population
	}
	if fl.Changed("generations") {
		c.GA.Generations = f.generations
	}
	if fl.Changed("mutation-rate") {
		c.GA.MutationRate = f.mutationRate
	}
	if fl.Changed("seed") {
		c.GA.Seed = f.seed
	}
	if fl.Changed("repair-mode") {
		c.GA.RepairMode = f.repairMode
	}
	if fl.Changed("repair-choice") {
		c.GA.RepairChoice = f.repairChoice
	}
	if fl.Changed("repair-crossover") {
		c.GA.RepairCrossover = f.repairCrossover
	}
	if fl.Changed("tournament") {
		c.GA.TournamentSize = f.tournament
	}
	if fl.Changed("workers") {
		c.GA.Workers = f.workers
	}
	if fl.Changed("time-limit") {
		c.GA.TimeLimit = f.timeLimit
	}
	if fl.Changed("restarts") {
		c.GA.Restarts = f.restarts
	}
	if fl.Changed("metrics-addr") {
		c.Metrics.Addr = f.metricsAddr
	}

	if c.Instance == "" {
		return errors.New("no instance: pass a path or set instance in the configuration")
	}

	return c.Validate()
}

func (a *app) solve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ev, err := qbf.LoadInstance(a.cfg.Instance)
	if err != nil {
		return err
	}
	a.log.Info("instance loaded", "path", a.cfg.Instance, "n", ev.Size())

	var metrics *ga.Metrics
	if addr := a.cfg.Metrics.Addr; addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics = ga.NewMetrics(reg)

		shutdown, serr := a.serveMetrics(addr, reg)
		if serr != nil {
			return serr
		}
		defer shutdown()
	}

	opts, err := a.cfg.Options(a.log, metrics)
	if err != nil {
		return err
	}

	results, err := ga.SolveMulti(ctx, ev, opts, a.cfg.GA.Restarts)
	if err != nil {
		return err
	}

	best := results[0]
	fmt.Fprintf(a.out, "run:         %s\n", best.RunID)
	fmt.Fprintf(a.out, "stop:        %s after %d generations (%s)\n", best.Stop, best.Generations, best.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(a.out, "restarts:    %d\n", len(results))
	fmt.Fprintf(a.out, "chromosome:  %s\n", best.BestChromosome)
	fmt.Fprintln(a.out, best.Best)

	return nil
}

// serveMetrics starts a /metrics endpoint and returns its shutdown func.
func (a *app) serveMetrics(addr string, reg *prometheus.Registry) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if serr := srv.Serve(ln); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "err", serr)
		}
	}()
	a.log.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}, nil
}
