//go:build cgo
// +build cgo

// Package cadical provides a Go binding to the CaDiCaL SAT solver.
//
// A Solver owns exactly one native engine instance. The engine follows an
// implicit state machine (see State); every method checks the state it
// requires before crossing into native code and panics with a
// *ContractError when called out of turn. Recoverable conditions such as a
// malformed DIMACS file or an unknown option name are returned as errors.
//
// A Solver is not safe for concurrent use. The only exception is Terminate,
// which may be called from any goroutine while a Solve is in progress.
package cadical

/*
// cgo headers (linker flags are provided via separate build-tagged files).
#cgo CXXFLAGS: -std=c++11
#include <stdlib.h>
#include <stdio.h>
#include "bridge.h"
*/
import "C"

import (
	"io"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Solver wraps a native CaDiCaL::Solver.
type Solver struct {
	ptr *C.cadicalgo_solver
	id  uint64
	log logrus.FieldLogger

	checkEnsures bool

	slots   [numSlots]*Connection
	tracers []*Connection

	proofTraced bool
	proofFile   *C.FILE

	// pending holds a panic recovered inside a callback until the native
	// call that triggered the callback has returned.
	pending interface{}
}

var lastID uint64

// Option configures a Solver during New, while the engine is still
// CONFIGURING.
type Option func(s *Solver) error

// WithLogger sets the logger that receives lifecycle and connection events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) error {
		s.log = l
		return nil
	}
}

// WithConfiguration selects a named engine configuration such as "sat",
// "unsat" or "plain".
func WithConfiguration(name string) Option {
	return func(s *Solver) error {
		return s.Configure(name)
	}
}

// WithOption sets a single engine option.
func WithOption(name string, val int) Option {
	return func(s *Solver) error {
		return s.Set(name, val)
	}
}

// WithLongOption applies a command line style option ("--name=val").
func WithLongOption(arg string) Option {
	return func(s *Solver) error {
		return s.SetLongOption(arg)
	}
}

// WithPrefix sets the prefix of the engine's verbose and statistics output.
func WithPrefix(prefix string) Option {
	return func(s *Solver) error {
		s.Prefix(prefix)
		return nil
	}
}

// WithPostconditionChecks makes every operation verify the state the engine
// reports after the call against the documented ensures set.
func WithPostconditionChecks() Option {
	return func(s *Solver) error {
		s.checkEnsures = true
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.log == nil {
			s.log = logrus.StandardLogger()
		}
		return nil
	},
}

// New creates a solver in state CONFIGURING and applies options. The
// returned solver tracks a finalizer so a leaked handle still releases its
// native engine, but callers should Close it explicitly.
//
// The finalizer only runs for a solver without connected callbacks. Each
// open Connection keeps its solver reachable, so a solver that is dropped
// with a terminator, learner, listener, propagator or tracer still
// connected is never collected. Close it, or Disconnect its callbacks.
func New(options ...Option) (*Solver, error) {
	ptr := C.cadicalgo_new()
	if ptr == nil {
		panic(errors.New("cadical: native solver allocation failed"))
	}
	s := &Solver{ptr: ptr, id: atomic.AddUint64(&lastID, 1)}
	runtime.SetFinalizer(s, func(x *Solver) { x.Close() })
	for _, option := range append(options, defaults...) {
		if err := option(s); err != nil {
			s.Close()
			return nil, err
		}
	}
	s.log = s.log.WithField("solver", s.id)
	s.log.Debug("solver created")
	return s, nil
}

// Close disconnects every callback, closes a proof trace still open and
// deletes the native engine. It is safe to call multiple times.
func (s *Solver) Close() {
	if s == nil || s.ptr == nil {
		return
	}
	for _, c := range s.slots {
		c.Disconnect()
	}
	for len(s.tracers) > 0 {
		s.tracers[len(s.tracers)-1].Disconnect()
	}
	if s.proofTraced {
		C.cadicalgo_close_proof_trace(s.ptr, 0)
		s.closeProofFile()
	}
	C.cadicalgo_delete(s.ptr)
	s.ptr = nil
	runtime.SetFinalizer(s, nil)
	if s.log != nil {
		s.log.Debug("solver closed")
	}
}

// CloneInto copies the irredundant clauses, the extension stack, options
// and variable bookkeeping of s into dst, which must be freshly created and
// still CONFIGURING. Learned clauses, callbacks and proof traces are not
// copied; dst is fully independent of s afterwards.
func (s *Solver) CloneInto(dst *Solver) {
	s.require(OpCopySource)
	dst.require(OpCopyDestination)
	C.cadicalgo_copy(s.ptr, dst.ptr)
	s.ensure(OpCopySource)
	dst.ensure(OpCopyDestination)
	s.log.WithField("destination", dst.id).Debug("solver cloned")
}

// State returns the engine's current state.
func (s *Solver) State() State {
	s.alive()
	return s.state()
}

// Status returns the result of the last Solve, Simplify or Lookahead.
func (s *Solver) Status() Status {
	s.alive()
	return statusFromRaw(int(C.cadicalgo_status(s.ptr)))
}

// Signature returns the engine's name and version, e.g. "cadical-2.1.3".
func Signature() string {
	return C.GoString(C.cadicalgo_signature())
}

// Version returns the engine's version string.
func Version() string {
	return C.GoString(C.cadicalgo_version())
}

// Build writes the engine's build information (compiler, flags, version),
// each line starting with prefix.
func Build(w io.Writer, prefix string) error {
	f := C.tmpfile()
	if f == nil {
		return errors.New("cadical: cannot create temporary file for build information")
	}
	defer C.fclose(f)
	p := C.CString(prefix)
	defer C.free(unsafe.Pointer(p))
	C.cadicalgo_build(f, p)
	return copyFile(w, f)
}

// Usage prints the engine's option summary to standard output.
func Usage() { C.cadicalgo_usage() }

// Configurations prints the named configurations to standard output.
func Configurations() { C.cadicalgo_configurations() }

func copyFile(w io.Writer, f *C.FILE) error {
	C.fflush(f)
	C.rewind(f)
	buf := make([]byte, 4096)
	for {
		n := C.fread(unsafe.Pointer(&buf[0]), 1, C.size_t(len(buf)), f)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return errors.Wrap(err, "cadical: writing build information")
			}
		}
		if n < C.size_t(len(buf)) {
			return nil
		}
	}
}

func (s *Solver) alive() {
	if s == nil || s.ptr == nil {
		panic(ErrClosed)
	}
}

func (s *Solver) state() State {
	return stateFromRaw(int(C.cadicalgo_state(s.ptr)))
}

// require panics unless the engine is in one of op's required states.
func (s *Solver) require(op Op) {
	s.alive()
	if err := checkRequires(op, s.state()); err != nil {
		panic(err)
	}
}

// ensure re-raises a panic recovered in a callback and, when enabled,
// verifies op's postcondition.
func (s *Solver) ensure(op Op) {
	s.rethrow()
	if !s.checkEnsures {
		return
	}
	if err := checkEnsures(op, s.state()); err != nil {
		panic(err)
	}
}

func (s *Solver) rethrow() {
	if p := s.pending; p != nil {
		s.pending = nil
		panic(p)
	}
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
