//go:build cgo
// +build cgo

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vhavlena/cadical-go/cadical"
)

// conquer splits the formula in root into cubes and solves one clone of
// root per cube, at most cfg.Workers at a time. The first satisfiable cube
// cancels the others. The formula is unsatisfiable only if every cube is.
func (s *session) conquer(ctx context.Context, root *cadical.Solver) (cadical.Status, *cadical.Model, error) {
	res, cubes := root.GenerateCubes(s.cfg.CubeDepth, 0)
	switch res {
	case cadical.Satisfiable:
		return res, root.Model(), nil
	case cadical.Unsatisfiable:
		return res, nil, nil
	}
	if len(cubes) == 0 {
		cubes = [][]int{nil}
	}
	s.log.WithFields(logrus.Fields{
		"cubes":   len(cubes),
		"workers": s.cfg.Workers,
	}).Info("solving cubes")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	var (
		mu      sync.Mutex
		model   *cadical.Model
		results = make([]cadical.Status, len(cubes))
	)
	for i, cube := range cubes {
		if gctx.Err() != nil || s.intr.interrupted() {
			break
		}
		name := fmt.Sprintf("cube-%d", i)
		// Clones are made here since root must not be shared between
		// goroutines.
		w, err := s.newSolver(name)
		if err != nil {
			cancel()
			_ = g.Wait()
			return cadical.Unknown, nil, err
		}
		root.CloneInto(w)
		g.Go(func() error {
			defer w.Close()
			// Only the main solver keeps its gauges, there may be many cubes.
			defer s.metrics.Forget(name)
			for _, lit := range cube {
				w.Assume(lit)
			}
			r := s.solve(gctx, name, w)
			results[i] = r
			if r == cadical.Satisfiable {
				mu.Lock()
				if model == nil {
					model = w.Model()
				}
				mu.Unlock()
				cancel()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return cadical.Unknown, nil, err
	}
	if model != nil {
		return cadical.Satisfiable, model, nil
	}
	for _, r := range results {
		if r != cadical.Unsatisfiable {
			return cadical.Unknown, nil, nil
		}
	}
	return cadical.Unsatisfiable, nil, nil
}
