//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

import (
	"runtime/cgo"
	"sort"
)

// visitor lives for one traversal call only.
type visitor struct {
	clause  ClauseVisitor
	witness WitnessVisitor
	lits    []int
	aux     []int
	pending interface{}
}

func (v *visitor) catch() {
	if r := recover(); r != nil {
		v.pending = r
	}
}

func (s *Solver) traverse(v *visitor, run func(h C.uintptr_t) C.int) bool {
	s.require(OpTraverse)
	h := cgo.NewHandle(v)
	ok := run(C.uintptr_t(h)) != 0
	h.Delete()
	if v.pending != nil {
		panic(v.pending)
	}
	s.ensure(OpTraverse)
	return ok
}

// TraverseClauses calls v once per irredundant clause currently in the
// solver, including unit clauses for fixed literals. It reports false if v
// stopped the traversal.
func (s *Solver) TraverseClauses(v ClauseVisitor) bool {
	return s.traverse(&visitor{clause: v}, func(h C.uintptr_t) C.int {
		return C.cadicalgo_traverse_clauses(s.ptr, h)
	})
}

// TraverseWitnessesBackward visits the extension stack in the order in which
// model reconstruction uses it.
func (s *Solver) TraverseWitnessesBackward(v WitnessVisitor) bool {
	return s.traverse(&visitor{witness: v}, func(h C.uintptr_t) C.int {
		return C.cadicalgo_traverse_witnesses_backward(s.ptr, h)
	})
}

// TraverseWitnessesForward visits the extension stack in the order in which
// it was built.
func (s *Solver) TraverseWitnessesForward(v WitnessVisitor) bool {
	return s.traverse(&visitor{witness: v}, func(h C.uintptr_t) C.int {
		return C.cadicalgo_traverse_witnesses_forward(s.ptr, h)
	})
}

// Clauses returns a copy of the irredundant clauses, each sorted by
// variable. It is meant for small formulas and tests.
func (s *Solver) Clauses() [][]int {
	var out [][]int
	s.TraverseClauses(ClauseVisitorFunc(func(lits []int) bool {
		c := append([]int(nil), lits...)
		sort.Slice(c, func(i, j int) bool { return Var(c[i]) < Var(c[j]) })
		out = append(out, c)
		return true
	}))
	return out
}

// Witness is one entry of the extension stack.
type Witness struct {
	ID      uint64
	Clause  []int
	Witness []int
}

// Witnesses returns a copy of the extension stack in reconstruction order.
func (s *Solver) Witnesses() []Witness {
	var out []Witness
	s.TraverseWitnessesBackward(WitnessVisitorFunc(func(clause, witness []int, id uint64) bool {
		out = append(out, Witness{
			ID:      id,
			Clause:  append([]int(nil), clause...),
			Witness: append([]int(nil), witness...),
		})
		return true
	}))
	return out
}

//export cadicalgoVisitClause
func cadicalgoVisitClause(h C.uintptr_t, lits *C.int, n C.size_t) C.int {
	v := cgo.Handle(h).Value().(*visitor)
	defer v.catch()
	v.lits = goInts(v.lits, lits, n)
	return cbool(v.clause.Clause(v.lits))
}

//export cadicalgoVisitWitness
func cadicalgoVisitWitness(h C.uintptr_t, clause *C.int, n C.size_t, witness *C.int, m C.size_t, id C.uint64_t) C.int {
	v := cgo.Handle(h).Value().(*visitor)
	defer v.catch()
	v.lits = goInts(v.lits, clause, n)
	v.aux = goInts(v.aux, witness, m)
	return cbool(v.witness.Witness(v.lits, v.aux, uint64(id)))
}
