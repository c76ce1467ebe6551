//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
)

// The functions below are called by the native adapter classes. Each one
// turns the handle back into its *Connection and forwards to the Go target.
// A panic cannot unwind through native frames: it is recovered here, the
// engine is asked to terminate, and the panic is raised again once the
// native call that led to the callback has returned. In between, callbacks
// of that solver answer with neutral values.

func lookup(h C.uintptr_t) *Connection {
	return cgo.Handle(h).Value().(*Connection)
}

// inert reports whether callbacks must not reach the target anymore.
func (c *Connection) inert() bool {
	return c.s == nil || c.s.pending != nil
}

func (c *Connection) catch() {
	r := recover()
	if r == nil {
		return
	}
	s := c.s
	if s == nil {
		panic(r)
	}
	if s.pending == nil {
		s.pending = r
	}
	s.log.WithField("callback", c.kind).WithField("panic", fmt.Sprint(r)).Error("panic in callback")
	C.cadicalgo_terminate(s.ptr)
}

//export cadicalgoTerminate
func cadicalgoTerminate(h C.uintptr_t) C.int {
	c := lookup(h)
	if c.inert() {
		return 1
	}
	defer c.catch()
	return cbool(c.term.Terminate())
}

//export cadicalgoLearning
func cadicalgoLearning(h C.uintptr_t, size C.int) C.int {
	c := lookup(h)
	if c.inert() {
		return 0
	}
	defer c.catch()
	return cbool(c.learn.Learning(int(size)))
}

//export cadicalgoLearn
func cadicalgoLearn(h C.uintptr_t, lit C.int) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.learn.Learn(int(lit))
}

//export cadicalgoFixed
func cadicalgoFixed(h C.uintptr_t, lit C.int) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.fixed.NotifyFixedAssignment(int(lit))
}

//export cadicalgoNotifyAssignment
func cadicalgoNotifyAssignment(h C.uintptr_t, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.prop.NotifyAssignment(c.lits)
}

//export cadicalgoNotifyNewDecisionLevel
func cadicalgoNotifyNewDecisionLevel(h C.uintptr_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.prop.NotifyNewDecisionLevel()
}

//export cadicalgoNotifyBacktrack
func cadicalgoNotifyBacktrack(h C.uintptr_t, level C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.prop.NotifyBacktrack(int(level))
}

//export cadicalgoCheckFoundModel
func cadicalgoCheckFoundModel(h C.uintptr_t, model *C.int, n C.size_t) C.int {
	c := lookup(h)
	if c.inert() {
		return 1
	}
	defer c.catch()
	c.lits = goInts(c.lits, model, n)
	return cbool(c.prop.CheckFoundModel(c.lits))
}

//export cadicalgoDecide
func cadicalgoDecide(h C.uintptr_t) C.int {
	c := lookup(h)
	if c.inert() {
		return 0
	}
	defer c.catch()
	return C.int(c.prop.Decide())
}

//export cadicalgoPropagate
func cadicalgoPropagate(h C.uintptr_t) C.int {
	c := lookup(h)
	if c.inert() {
		return 0
	}
	defer c.catch()
	return C.int(c.prop.Propagate())
}

//export cadicalgoAddReasonClauseLit
func cadicalgoAddReasonClauseLit(h C.uintptr_t, propagated C.int) C.int {
	c := lookup(h)
	if c.inert() {
		return 0
	}
	defer c.catch()
	return C.int(c.prop.AddReasonClauseLit(int(propagated)))
}

//export cadicalgoHasExternalClause
func cadicalgoHasExternalClause(h C.uintptr_t, forgettable *C.int) C.int {
	c := lookup(h)
	if c.inert() {
		return 0
	}
	defer c.catch()
	has, f := c.prop.HasExternalClause()
	*forgettable = cbool(f)
	return cbool(has)
}

//export cadicalgoAddExternalClauseLit
func cadicalgoAddExternalClauseLit(h C.uintptr_t) C.int {
	c := lookup(h)
	if c.inert() {
		return 0
	}
	defer c.catch()
	return C.int(c.prop.AddExternalClauseLit())
}

//export cadicalgoTraceOriginal
func cadicalgoTraceOriginal(h C.uintptr_t, id C.uint64_t, redundant C.int, lits *C.int, n C.size_t, restored C.int) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.AddOriginalClause(uint64(id), redundant != 0, c.lits, restored != 0)
}

//export cadicalgoTraceDerived
func cadicalgoTraceDerived(h C.uintptr_t, id C.uint64_t, redundant C.int, lits *C.int, n C.size_t, ants *C.uint64_t, m C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.ids = goIDs(c.ids, ants, m)
	c.trace.AddDerivedClause(uint64(id), redundant != 0, c.lits, c.ids)
}

//export cadicalgoTraceDelete
func cadicalgoTraceDelete(h C.uintptr_t, id C.uint64_t, redundant C.int, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.DeleteClause(uint64(id), redundant != 0, c.lits)
}

//export cadicalgoTraceWeakenMinus
func cadicalgoTraceWeakenMinus(h C.uintptr_t, id C.uint64_t, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.WeakenMinus(uint64(id), c.lits)
}

//export cadicalgoTraceStrengthen
func cadicalgoTraceStrengthen(h C.uintptr_t, id C.uint64_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.trace.Strengthen(uint64(id))
}

//export cadicalgoTraceFinalize
func cadicalgoTraceFinalize(h C.uintptr_t, id C.uint64_t, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.FinalizeClause(uint64(id), c.lits)
}

//export cadicalgoTraceAssumption
func cadicalgoTraceAssumption(h C.uintptr_t, lit C.int) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.trace.AddAssumption(int(lit))
}

//export cadicalgoTraceConstraint
func cadicalgoTraceConstraint(h C.uintptr_t, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.AddConstraint(c.lits)
}

//export cadicalgoTraceResetAssumptions
func cadicalgoTraceResetAssumptions(h C.uintptr_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.trace.ResetAssumptions()
}

//export cadicalgoTraceAssumptionClause
func cadicalgoTraceAssumptionClause(h C.uintptr_t, id C.uint64_t, lits *C.int, n C.size_t, ants *C.uint64_t, m C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.ids = goIDs(c.ids, ants, m)
	c.trace.AddAssumptionClause(uint64(id), c.lits, c.ids)
}

//export cadicalgoTraceConcludeSat
func cadicalgoTraceConcludeSat(h C.uintptr_t, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.ConcludeSat(c.lits)
}

//export cadicalgoTraceConcludeUnsat
func cadicalgoTraceConcludeUnsat(h C.uintptr_t, conclusion C.int, ids *C.uint64_t, m C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.ids = goIDs(c.ids, ids, m)
	c.trace.ConcludeUnsat(ConclusionType(conclusion), c.ids)
}

//export cadicalgoTraceConcludeUnknown
func cadicalgoTraceConcludeUnknown(h C.uintptr_t, lits *C.int, n C.size_t) {
	c := lookup(h)
	if c.inert() {
		return
	}
	defer c.catch()
	c.lits = goInts(c.lits, lits, n)
	c.trace.ConcludeUnknown(c.lits)
}
