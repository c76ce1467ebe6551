//go:build cgo
// +build cgo

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vhavlena/cadical-go/cadical"
	"github.com/vhavlena/cadical-go/internal/config"
	"github.com/vhavlena/cadical-go/internal/metrics"
)

type solveOptions struct {
	root *rootOptions

	config      string
	strict      int
	proof       string
	timeout     time.Duration
	options     optionFlag
	witness     bool
	metricsFile string
	cubes       int
	workers     int
}

func newSolveCmd(root *rootOptions, intr *interrupts, code *int) *cobra.Command {
	o := &solveOptions{root: root, options: optionFlag{}}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a DIMACS CNF file",
		Long: `Solve a DIMACS CNF file and report the result like a competition solver:
"s SATISFIABLE" or "s UNSATISFIABLE" on standard output and exit status 10
or 20. Exit status 0 means the result is unknown because of a limit, the
timeout or an interrupt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			run := uuid.NewString()
			s := &session{
				cfg:     cfg,
				opts:    o,
				log:     o.root.logger(cmd.ErrOrStderr()).WithField("run", run),
				intr:    intr,
				metrics: metrics.New(run),
			}
			res, model, err := s.run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res == cadical.Unknown && intr.interrupted() {
				s.log.Warn("search interrupted")
			}
			if err := report(cmd.OutOrStdout(), res, model, o.witness); err != nil {
				return err
			}
			if o.metricsFile != "" {
				if err := s.writeMetrics(o.metricsFile); err != nil {
					return err
				}
			}
			*code = int(res)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "YAML run configuration")
	f.IntVar(&o.strict, "strict", cadical.Strict, "DIMACS strictness: 0 relaxed, 1 strict, 2 pedantic")
	f.StringVar(&o.proof, "proof", "", "write a DRAT proof to this path")
	f.DurationVar(&o.timeout, "timeout", 0, "stop searching after this duration (0 means no timeout)")
	f.Var(o.options, "option", "set an engine option, repeatable")
	f.BoolVarP(&o.witness, "witness", "w", false, "print the model as a value line")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	f.IntVar(&o.cubes, "cubes", 0, "split into cubes of this depth and solve them in parallel")
	f.IntVar(&o.workers, "workers", 1, "number of parallel cube solvers")
	return cmd
}

// load reads the configuration file and lets explicitly set flags override
// it.
func (o *solveOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	if f.Changed("strict") {
		cfg.Strict = o.strict
	}
	if f.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if f.Changed("cubes") {
		cfg.CubeDepth = o.cubes
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.CubeDepth > 0 && o.proof != "" {
		return nil, errors.New("a proof cannot be written when solving cubes")
	}
	return cfg, nil
}

type session struct {
	cfg     *config.Config
	opts    *solveOptions
	log     logrus.FieldLogger
	intr    *interrupts
	metrics *metrics.Collector
}

func (s *session) newSolver(name string) (*cadical.Solver, error) {
	return cadical.New(cadical.WithLogger(s.log.WithField("worker", name)))
}

func (s *session) run(ctx context.Context, path string) (cadical.Status, *cadical.Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	solver, err := s.newSolver("main")
	if err != nil {
		return cadical.Unknown, nil, err
	}
	defer solver.Close()
	if err := s.cfg.Apply(solver); err != nil {
		return cadical.Unknown, nil, err
	}
	for name, val := range s.opts.options {
		if err := solver.Set(name, val); err != nil {
			return cadical.Unknown, nil, err
		}
	}
	if s.opts.proof != "" && !solver.TraceProof(s.opts.proof) {
		return cadical.Unknown, nil, errors.Errorf("cannot write proof to %s", s.opts.proof)
	}

	vars, err := solver.ReadDIMACS(path, s.cfg.Strict)
	if err != nil {
		return cadical.Unknown, nil, err
	}
	s.log.WithFields(logrus.Fields{
		"path":    path,
		"vars":    vars,
		"clauses": solver.Irredundant(),
	}).Info("formula loaded")

	if s.cfg.CubeDepth > 0 {
		return s.conquer(ctx, solver)
	}
	res := s.solve(ctx, "main", solver)
	if res == cadical.Satisfiable {
		return res, solver.Model(), nil
	}
	return res, nil, nil
}

// solve runs one Solve on w, registered for interrupts and recorded in the
// metrics.
func (s *session) solve(ctx context.Context, name string, w *cadical.Solver) cadical.Status {
	if !s.intr.add(w) {
		return cadical.Unknown
	}
	start := time.Now()
	res := w.SolveContext(ctx)
	s.intr.remove(w)
	elapsed := time.Since(start)

	s.metrics.Observe(res, elapsed)
	s.metrics.Update(name, w.Stats())
	s.log.WithFields(logrus.Fields{
		"worker":  name,
		"status":  res,
		"elapsed": elapsed,
	}).Debug("solve finished")
	return res
}

func (s *session) writeMetrics(path string) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(s.metrics); err != nil {
		return errors.Wrap(err, "registering metrics")
	}
	return errors.Wrapf(prometheus.WriteToTextfile(path, reg), "writing metrics to %s", path)
}

func report(w io.Writer, res cadical.Status, model *cadical.Model, witness bool) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "s %s\n", res)
	if witness && model != nil {
		fmt.Fprintln(b, model)
	}
	return b.Flush()
}
