//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

import (
	"context"
	"unsafe"
)

// Solve searches for a model of the clauses added so far under the current
// assumptions and constraint. It blocks until a result is found, a limit is
// hit or termination is requested, in which case Unknown is returned.
func (s *Solver) Solve() Status {
	s.require(OpSolve)
	raw := C.cadicalgo_solve(s.ptr)
	s.ensure(OpSolve)
	return statusFromRaw(int(raw))
}

// SolveContext is Solve with cancellation: once ctx is done the engine is
// asked to stop at its next terminator poll and the call returns Unknown. A
// connected Terminator keeps being consulted.
func (s *Solver) SolveContext(ctx context.Context) Status {
	s.require(OpSolve)
	if ctx.Done() == nil {
		return s.Solve()
	}
	t := &contextTerminator{ctx: ctx}
	if c := s.slots[slotTerminator]; c != nil {
		t.next = c.term
		c.term = t
		defer func() { c.term = t.next }()
	} else {
		c := s.ConnectTerminator(t)
		defer c.Disconnect()
	}
	return s.Solve()
}

type contextTerminator struct {
	ctx  context.Context
	next Terminator
}

func (t *contextTerminator) Terminate() bool {
	select {
	case <-t.ctx.Done():
		return true
	default:
	}
	return t.next != nil && t.next.Terminate()
}

// Simplify runs the engine's preprocessing for the given number of rounds
// without searching. It may already decide the formula.
func (s *Solver) Simplify(rounds int) Status {
	if rounds < 0 {
		panic(&ContractError{Op: OpSimplify, Reason: "negative number of rounds"})
	}
	s.require(OpSimplify)
	raw := C.cadicalgo_simplify(s.ptr, C.int(clamp32(rounds)))
	s.ensure(OpSimplify)
	return statusFromRaw(int(raw))
}

// Lookahead returns the most promising decision literal, or 0 when the
// formula is already decided.
func (s *Solver) Lookahead() int {
	s.require(OpLookahead)
	lit := C.cadicalgo_lookahead(s.ptr)
	s.ensure(OpLookahead)
	return int(lit)
}

// GenerateCubes splits the search space into cubes for cube-and-conquer.
// Each cube is a conjunction of literals meant to be assumed in its own
// solve. If the status is not Unknown the formula was decided while
// splitting and the cubes are of no further use.
func (s *Solver) GenerateCubes(depth, minDepth int) (Status, [][]int) {
	if depth < 0 || minDepth < 0 {
		panic(&ContractError{Op: OpGenerateCubes, Reason: "negative depth"})
	}
	s.require(OpGenerateCubes)
	var flat *C.int
	var n C.size_t
	raw := C.cadicalgo_generate_cubes(s.ptr, C.int(clamp32(depth)), C.int(clamp32(minDepth)), &flat, &n)
	defer C.cadicalgo_free_ints(flat)
	s.ensure(OpGenerateCubes)
	return statusFromRaw(int(raw)), splitCubes(flat, n)
}

// splitCubes turns a zero separated native buffer into one slice per cube.
func splitCubes(flat *C.int, n C.size_t) [][]int {
	if flat == nil || n == 0 {
		return nil
	}
	var cubes [][]int
	var cube []int
	for _, l := range unsafe.Slice(flat, int(n)) {
		if l == 0 {
			cubes = append(cubes, cube)
			cube = nil
			continue
		}
		cube = append(cube, int(l))
	}
	return cubes
}

// Terminate asks a running Solve, Simplify or Lookahead to stop. Unlike every
// other method it may be called from another goroutine, for example a
// signal handler; it only has an effect while the engine is searching.
func (s *Solver) Terminate() {
	if s == nil {
		return
	}
	if p := s.ptr; p != nil {
		C.cadicalgo_terminate(p)
	}
}
