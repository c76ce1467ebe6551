//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

import (
	"math"
	"unsafe"
)

// Add adds lit to the clause under construction, or finishes the clause when
// lit is 0. Literals are non-zero signed variable indices.
func (s *Solver) Add(lit int) {
	op := OpAdd
	if lit == 0 {
		op = OpAddTerminator
	}
	if err := checkLitOrZero(op, lit); err != nil {
		panic(err)
	}
	s.require(op)
	C.cadicalgo_add(s.ptr, C.int(lit))
	s.ensure(op)
}

// AddClause adds all of lits as one clause in a single native call. Calling
// it without literals adds the empty clause, which makes the formula
// unsatisfiable.
func (s *Solver) AddClause(lits ...int) {
	if err := checkClause(OpClause, lits); err != nil {
		panic(err)
	}
	s.require(OpClause)
	buf := cints(lits)
	var p *C.int
	if len(buf) > 0 {
		p = &buf[0]
	}
	C.cadicalgo_clause(s.ptr, p, C.size_t(len(buf)))
	s.ensure(OpClause)
}

// AddClauses adds each element of clauses with AddClause.
func (s *Solver) AddClauses(clauses [][]int) {
	for _, c := range clauses {
		s.AddClause(c...)
	}
}

// Assume adds lit as an assumption for the next Solve. Assumptions are
// cleared once that call returns.
func (s *Solver) Assume(lit int) {
	if err := checkLit(OpAssume, lit); err != nil {
		panic(err)
	}
	s.require(OpAssume)
	C.cadicalgo_assume(s.ptr, C.int(lit))
	s.ensure(OpAssume)
}

// Constrain adds lit to the constraint clause, or finishes it when lit is 0.
// The constraint is a clause that must hold during the next Solve only; like
// assumptions it is removed afterwards.
func (s *Solver) Constrain(lit int) {
	op := OpConstrain
	if lit == 0 {
		op = OpConstrainTerminator
	}
	if err := checkLitOrZero(op, lit); err != nil {
		panic(err)
	}
	s.require(op)
	C.cadicalgo_constrain(s.ptr, C.int(lit))
	s.ensure(op)
}

// Inconsistent reports whether the empty clause has already been derived.
func (s *Solver) Inconsistent() bool {
	s.require(OpInconsistent)
	return C.cadicalgo_inconsistent(s.ptr) != 0
}

// Reserve makes sure variables up to minMaxVar exist.
func (s *Solver) Reserve(minMaxVar int) {
	if minMaxVar < 0 || minMaxVar > math.MaxInt32 {
		panic(&ContractError{Op: OpReserve, Reason: "variable index out of range"})
	}
	s.require(OpReserve)
	C.cadicalgo_reserve(s.ptr, C.int(minMaxVar))
	s.ensure(OpReserve)
}

// Vars returns the maximum variable index in use.
func (s *Solver) Vars() int {
	s.require(OpVars)
	return int(C.cadicalgo_vars(s.ptr))
}

// ResetAssumptions drops all assumptions added since the last Solve.
func (s *Solver) ResetAssumptions() {
	s.require(OpResetAssumptions)
	C.cadicalgo_reset_assumptions(s.ptr)
	s.ensure(OpResetAssumptions)
}

// ResetConstraint drops the constraint added since the last Solve.
func (s *Solver) ResetConstraint() {
	s.require(OpResetConstraint)
	C.cadicalgo_reset_constraint(s.ptr)
	s.ensure(OpResetConstraint)
}

func cints(lits []int) []C.int {
	out := make([]C.int, len(lits))
	for i, l := range lits {
		out[i] = C.int(l)
	}
	return out
}

// goInts copies n native ints starting at p into buf, growing it as needed.
func goInts(buf []int, p *C.int, n C.size_t) []int {
	buf = buf[:0]
	if n == 0 || p == nil {
		return buf
	}
	for _, l := range unsafe.Slice(p, int(n)) {
		buf = append(buf, int(l))
	}
	return buf
}

func goIDs(buf []uint64, p *C.uint64_t, n C.size_t) []uint64 {
	buf = buf[:0]
	if n == 0 || p == nil {
		return buf
	}
	for _, id := range unsafe.Slice(p, int(n)) {
		buf = append(buf, uint64(id))
	}
	return buf
}
