//go:build cgo
// +build cgo

package cadical

/*
#include <stdlib.h>
#include <stdio.h>
#include <unistd.h>
#include "bridge.h"

static FILE *cadicalgo_fdopen_dup(int fd) {
	int copy = dup(fd);
	if (copy < 0)
		return NULL;
	FILE *f = fdopen(copy, "w");
	if (!f)
		close(copy);
	return f;
}
*/
import "C"

import (
	"os"
	"unsafe"
)

// TraceProof starts writing a DRAT proof (or the format selected through
// options such as "lrat" or "binary") to path. It must be called while the
// solver is CONFIGURING and reports whether the file could be opened.
func (s *Solver) TraceProof(path string) bool {
	s.require(OpTraceProof)
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))
	ok := C.cadicalgo_trace_proof_path(s.ptr, p) != 0
	s.ensure(OpTraceProof)
	if ok {
		s.proofTraced = true
		s.log.WithField("path", path).Debug("proof trace opened")
	}
	return ok
}

// TraceProofFile writes the proof to f, which stays owned by the caller. The
// solver writes through its own duplicate of f's descriptor, closed by
// CloseProofTrace or Close.
func (s *Solver) TraceProofFile(f *os.File, name string) bool {
	s.require(OpTraceProof)
	if s.proofFile != nil {
		panic(&ContractError{Op: OpTraceProof, Reason: "a proof file is already being traced"})
	}
	file := C.cadicalgo_fdopen_dup(C.int(f.Fd()))
	if file == nil {
		return false
	}
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	ok := C.cadicalgo_trace_proof_file(s.ptr, file, n) != 0
	s.ensure(OpTraceProof)
	if !ok {
		C.fclose(file)
		return false
	}
	s.proofFile = file
	s.proofTraced = true
	s.log.WithField("path", name).Debug("proof trace opened")
	return true
}

func (s *Solver) requireProofTrace(op Op) {
	if !s.proofTraced {
		panic(&ContractError{Op: op, Reason: "no proof trace open"})
	}
}

// FlushProofTrace flushes the proof written so far. With print set the
// engine reports the number of added and deleted lemmas.
func (s *Solver) FlushProofTrace(print bool) {
	s.require(OpFlushProofTrace)
	s.requireProofTrace(OpFlushProofTrace)
	C.cadicalgo_flush_proof_trace(s.ptr, cbool(print))
	if s.proofFile != nil {
		C.fflush(s.proofFile)
	}
}

// CloseProofTrace ends proof tracing and closes the trace files.
func (s *Solver) CloseProofTrace(print bool) {
	s.require(OpCloseProofTrace)
	s.requireProofTrace(OpCloseProofTrace)
	C.cadicalgo_close_proof_trace(s.ptr, cbool(print))
	s.closeProofFile()
	s.log.Debug("proof trace closed")
}

func (s *Solver) closeProofFile() {
	if s.proofFile != nil {
		C.fclose(s.proofFile)
		s.proofFile = nil
	}
	s.proofTraced = false
}

// ConnectProofTracer connects t to the proof event stream. With antecedents
// set derived clauses carry the ids of the clauses they were derived from;
// with finalize set the clauses remaining at the end are reported through
// FinalizeClause. Tracers must be connected while CONFIGURING.
func (s *Solver) ConnectProofTracer(t ProofTracer, antecedents, finalize bool) *Connection {
	s.require(OpConnectProofTracer)
	if len(s.tracers) >= maxProofTracers {
		panic(&ContractError{Op: OpConnectProofTracer, Reason: "too many proof tracers"})
	}
	c := &Connection{kind: slotTracer, trace: t}
	h := s.connect(c)
	p := C.cadicalgo_tracer_new(h)
	s.attach(c, unsafe.Pointer(p))
	C.cadicalgo_connect_proof_tracer(s.ptr, p, cbool(antecedents), cbool(finalize))
	return c
}

// DisconnectProofTracer disconnects the connection of t and reports whether
// t was connected.
func (s *Solver) DisconnectProofTracer(t ProofTracer) bool {
	s.require(OpDisconnectProofTracer)
	for _, c := range s.tracers {
		if c.trace == t {
			c.Disconnect()
			return true
		}
	}
	s.log.Warn("disconnect of unknown proof tracer ignored")
	return false
}

func (s *Solver) removeTracer(c *Connection) {
	for i, t := range s.tracers {
		if t == c {
			s.tracers = append(s.tracers[:i], s.tracers[i+1:]...)
			return
		}
	}
}

// Conclude makes the engine emit the final proof events for the current
// result: the model for SATISFIED, the conflict or failing assumptions for
// UNSATISFIED.
func (s *Solver) Conclude() {
	s.require(OpConclude)
	C.cadicalgo_conclude(s.ptr)
	s.ensure(OpConclude)
}
