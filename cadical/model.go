//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

// Val reports whether lit is true in the current model. The solver must be
// SATISFIED. The engine answers with lit itself for a true literal and with
// -lit for a false one, so Val(l) == !Val(-l) always holds.
func (s *Solver) Val(lit int) bool {
	if err := checkLit(OpVal, lit); err != nil {
		panic(err)
	}
	s.require(OpVal)
	return int(C.cadicalgo_val(s.ptr, C.int(lit))) == lit
}

// Flip tries to flip the value of lit without falsifying the formula and
// reports whether it succeeded. Eliminated or substituted variables cannot
// be flipped.
func (s *Solver) Flip(lit int) bool {
	if err := checkLit(OpFlip, lit); err != nil {
		panic(err)
	}
	s.require(OpFlip)
	ok := C.cadicalgo_flip(s.ptr, C.int(lit)) != 0
	s.ensure(OpFlip)
	return ok
}

// Flippable reports whether Flip(lit) would succeed, without changing the
// model.
func (s *Solver) Flippable(lit int) bool {
	if err := checkLit(OpFlippable, lit); err != nil {
		panic(err)
	}
	s.require(OpFlippable)
	return C.cadicalgo_flippable(s.ptr, C.int(lit)) != 0
}

// Failed reports whether the assumption lit took part in the reason for
// unsatisfiability. The solver must be UNSATISFIED. Literals that were not
// assumed are never reported as failed.
func (s *Solver) Failed(lit int) bool {
	if err := checkLit(OpFailed, lit); err != nil {
		panic(err)
	}
	s.require(OpFailed)
	return C.cadicalgo_failed(s.ptr, C.int(lit)) != 0
}

// ConstraintFailed reports whether the constraint clause was used to derive
// unsatisfiability.
func (s *Solver) ConstraintFailed() bool {
	s.require(OpConstraintFailed)
	return C.cadicalgo_constraint_failed(s.ptr) != 0
}

// Model copies the current assignment of variables 1..Vars(). The solver
// must be SATISFIED.
func (s *Solver) Model() *Model {
	s.require(OpVal)
	n := int(C.cadicalgo_vars(s.ptr))
	m := &Model{vals: make([]bool, n+1)}
	for v := 1; v <= n; v++ {
		m.vals[v] = int(C.cadicalgo_val(s.ptr, C.int(v))) == v
	}
	return m
}

