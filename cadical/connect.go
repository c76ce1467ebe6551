//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/pkg/errors"
)

type slot int

const (
	slotTerminator slot = iota
	slotLearner
	slotFixedListener
	slotPropagator
	numSlots

	// slotTracer is not stored in Solver.slots; tracers live in a list.
	slotTracer slot = -1
)

func (k slot) String() string {
	switch k {
	case slotTerminator:
		return "terminator"
	case slotLearner:
		return "learner"
	case slotFixedListener:
		return "fixed listener"
	case slotPropagator:
		return "external propagator"
	case slotTracer:
		return "proof tracer"
	}
	return "unknown"
}

// maxProofTracers bounds the number of proof tracers connected at once.
const maxProofTracers = 8

// Connection is the span during which a callback is connected to a solver.
// The callback target is kept alive by the connection; it is released once
// the connection ends.
//
// A connection ends with Disconnect, when a callback of the same kind is
// connected in its place, or when the solver is closed. After that the
// solver never calls the target again.
type Connection struct {
	s      *Solver
	kind   slot
	handle cgo.Handle
	native unsafe.Pointer

	term  Terminator
	learn Learner
	fixed FixedListener
	prop  ExternalPropagator
	trace ProofTracer

	// scratch buffers reused across callbacks
	lits []int
	ids  []uint64
}

// Connected reports whether the span is still open.
func (c *Connection) Connected() bool {
	return c != nil && c.s != nil
}

// Disconnect ends the span. It is safe to call multiple times.
func (c *Connection) Disconnect() {
	if !c.Connected() {
		return
	}
	s := c.s
	s.require(OpDisconnect)
	switch c.kind {
	case slotTerminator:
		C.cadicalgo_disconnect_terminator(s.ptr)
		C.cadicalgo_terminator_delete((*C.cadicalgo_terminator)(c.native))
	case slotLearner:
		C.cadicalgo_disconnect_learner(s.ptr)
		C.cadicalgo_learner_delete((*C.cadicalgo_learner)(c.native))
	case slotFixedListener:
		C.cadicalgo_disconnect_fixed_listener(s.ptr)
		C.cadicalgo_fixed_listener_delete((*C.cadicalgo_fixed_listener)(c.native))
	case slotPropagator:
		C.cadicalgo_disconnect_external_propagator(s.ptr)
		C.cadicalgo_propagator_delete((*C.cadicalgo_propagator)(c.native))
	case slotTracer:
		t := (*C.cadicalgo_tracer)(c.native)
		if C.cadicalgo_disconnect_proof_tracer(s.ptr, t) == 0 {
			s.log.Warn("proof tracer was not known to the engine")
		}
		C.cadicalgo_tracer_delete(t)
	}
	if c.kind == slotTracer {
		s.removeTracer(c)
	} else if s.slots[c.kind] == c {
		s.slots[c.kind] = nil
	}
	c.handle.Delete()
	c.s = nil
	c.native = nil
	s.log.WithField("callback", c.kind).Debug("callback disconnected")
}

// connect registers c in its slot, superseding an earlier connection of the
// same kind, and returns the handle value the native adapter stores.
func (s *Solver) connect(c *Connection) C.uintptr_t {
	s.require(OpConnect)
	if c.kind == slotTracer {
		c.s = s
		c.handle = cgo.NewHandle(c)
		return C.uintptr_t(c.handle)
	}
	if old := s.slots[c.kind]; old != nil {
		s.log.WithField("callback", c.kind).Debug("superseding previous connection")
		old.Disconnect()
	}
	c.s = s
	c.handle = cgo.NewHandle(c)
	return C.uintptr_t(c.handle)
}

func (s *Solver) attach(c *Connection, native unsafe.Pointer) *Connection {
	if native == nil {
		c.handle.Delete()
		c.s = nil
		panic(errors.Errorf("cadical: native %s allocation failed", c.kind))
	}
	c.native = native
	if c.kind == slotTracer {
		s.tracers = append(s.tracers, c)
	} else {
		s.slots[c.kind] = c
	}
	s.log.WithField("callback", c.kind).Debug("callback connected")
	return c
}

// ConnectTerminator connects t, which is then polled during search.
func (s *Solver) ConnectTerminator(t Terminator) *Connection {
	c := &Connection{kind: slotTerminator, term: t}
	h := s.connect(c)
	p := C.cadicalgo_terminator_new(h)
	s.attach(c, unsafe.Pointer(p))
	C.cadicalgo_connect_terminator(s.ptr, p)
	return c
}

// ConnectLearner connects l, which then receives learned clauses.
func (s *Solver) ConnectLearner(l Learner) *Connection {
	c := &Connection{kind: slotLearner, learn: l}
	h := s.connect(c)
	p := C.cadicalgo_learner_new(h)
	s.attach(c, unsafe.Pointer(p))
	C.cadicalgo_connect_learner(s.ptr, p)
	return c
}

// ConnectFixedListener connects f, which is then told about every literal
// fixed at the root level.
func (s *Solver) ConnectFixedListener(f FixedListener) *Connection {
	c := &Connection{kind: slotFixedListener, fixed: f}
	h := s.connect(c)
	p := C.cadicalgo_fixed_listener_new(h)
	s.attach(c, unsafe.Pointer(p))
	C.cadicalgo_connect_fixed_listener(s.ptr, p)
	return c
}

// ConnectExternalPropagator connects p. IsLazy and AreReasonsForgettable
// are read once, here. Variables must be registered with AddObservedVar
// before p is told about them.
func (s *Solver) ConnectExternalPropagator(p ExternalPropagator) *Connection {
	c := &Connection{kind: slotPropagator, prop: p}
	h := s.connect(c)
	n := C.cadicalgo_propagator_new(h, cbool(p.IsLazy()), cbool(p.AreReasonsForgettable()))
	s.attach(c, unsafe.Pointer(n))
	C.cadicalgo_connect_external_propagator(s.ptr, n)
	return c
}

func (s *Solver) requirePropagator(op Op) {
	if s.slots[slotPropagator] == nil {
		panic(&ContractError{Op: op, Reason: "no external propagator connected"})
	}
}

func checkVar(op Op, v int) {
	if v <= 0 || !validLit(v) {
		panic(&ContractError{Op: op, Reason: "invalid variable index"})
	}
}

// AddObservedVar registers v with the connected external propagator. It may
// be called during search from inside a propagator callback.
func (s *Solver) AddObservedVar(v int) {
	checkVar(OpAddObservedVar, v)
	s.require(OpAddObservedVar)
	s.requirePropagator(OpAddObservedVar)
	C.cadicalgo_add_observed_var(s.ptr, C.int(v))
}

// RemoveObservedVar unregisters v. It must not be called during search.
func (s *Solver) RemoveObservedVar(v int) {
	checkVar(OpRemoveObservedVar, v)
	s.require(OpRemoveObservedVar)
	s.requirePropagator(OpRemoveObservedVar)
	C.cadicalgo_remove_observed_var(s.ptr, C.int(v))
}

// ResetObservedVars unregisters every observed variable.
func (s *Solver) ResetObservedVars() {
	s.require(OpResetObservedVars)
	s.requirePropagator(OpResetObservedVars)
	C.cadicalgo_reset_observed_vars(s.ptr)
}

// IsDecision reports whether the observed literal lit is currently assigned
// as a decision.
func (s *Solver) IsDecision(lit int) bool {
	if err := checkLit(OpIsDecision, lit); err != nil {
		panic(err)
	}
	s.require(OpIsDecision)
	return C.cadicalgo_is_decision(s.ptr, C.int(lit)) != 0
}

// ForceBacktrack makes the engine backtrack to level before asking Decide
// again. It is only meaningful from within ExternalPropagator.Decide.
func (s *Solver) ForceBacktrack(level int) {
	if level < 0 {
		panic(&ContractError{Op: OpForceBacktrack, Reason: "negative decision level"})
	}
	s.require(OpForceBacktrack)
	C.cadicalgo_force_backtrack(s.ptr, C.size_t(level))
}
