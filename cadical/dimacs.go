//go:build cgo
// +build cgo

package cadical

/*
#include <stdlib.h>
#include <stdio.h>
#include <unistd.h>
#include "bridge.h"

static FILE *cadicalgo_fdopen_read(int fd) {
	int copy = dup(fd);
	if (copy < 0)
		return NULL;
	FILE *f = fdopen(copy, "r");
	if (!f)
		close(copy);
	return f;
}
*/
import "C"

import (
	"math"
	"os"
	"unsafe"

	"github.com/vhavlena/cadical-go/cadical/cnf"
)

// Strictness levels for reading DIMACS.
const (
	// Relaxed accepts a missing or inaccurate header and free whitespace.
	Relaxed = 0
	// Strict requires a header but tolerates the clause count being off.
	Strict = 1
	// Pedantic additionally requires single spaces between tokens and no
	// trailing whitespace.
	Pedantic = 2
)

// checkStrict rejects negative levels. Levels above Pedantic are passed to
// the engine unchanged.
func checkStrict(strict int) {
	if strict < Relaxed || strict > math.MaxInt32 {
		panic(&ContractError{Op: OpReadDIMACS, Reason: "invalid strictness level"})
	}
}

// ReadDIMACS adds the clauses of a DIMACS file to the solver and returns the
// maximum variable index declared or used. Malformed input is reported as
// a *DIMACSError carrying the engine's diagnostic. Compressed files are
// decompressed by the engine based on their extension.
func (s *Solver) ReadDIMACS(path string, strict int) (int, error) {
	checkStrict(strict)
	s.require(OpReadDIMACS)
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))
	var vars C.int
	msg := C.cadicalgo_read_dimacs_path(s.ptr, p, &vars, C.int(strict))
	s.ensure(OpReadDIMACS)
	if err := diagnostic(path, goString(msg)); err != nil {
		return 0, err
	}
	return int(vars), nil
}

// ReadDIMACSFile is ReadDIMACS on an open file; name is used in
// diagnostics. The file's offset is advanced but it is not closed.
func (s *Solver) ReadDIMACSFile(f *os.File, name string, strict int) (int, error) {
	checkStrict(strict)
	s.require(OpReadDIMACS)
	file := C.cadicalgo_fdopen_read(C.int(f.Fd()))
	if file == nil {
		return 0, &DIMACSError{Path: name, Msg: "cannot duplicate file descriptor"}
	}
	defer C.fclose(file)
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	var vars C.int
	msg := C.cadicalgo_read_dimacs_file(s.ptr, file, n, &vars, C.int(strict))
	s.ensure(OpReadDIMACS)
	if err := diagnostic(name, goString(msg)); err != nil {
		return 0, err
	}
	return int(vars), nil
}

// INCCNF is the result of reading an incremental "p inccnf" file.
type INCCNF struct {
	Vars int
	// Incremental is set when the file had an inccnf header.
	Incremental bool
	// Cubes are the "a ... 0" lines, in file order.
	Cubes [][]int
}

// ReadINCCNF reads a DIMACS file that may use the incremental inccnf
// format. The clauses are added to the solver, the cubes are returned.
func (s *Solver) ReadINCCNF(path string, strict int) (*INCCNF, error) {
	checkStrict(strict)
	s.require(OpReadDIMACS)
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))
	var vars, incremental C.int
	var flat *C.int
	var n C.size_t
	msg := C.cadicalgo_read_inccnf_path(s.ptr, p, &vars, C.int(strict), &incremental, &flat, &n)
	defer C.cadicalgo_free_ints(flat)
	s.ensure(OpReadDIMACS)
	if err := diagnostic(path, goString(msg)); err != nil {
		return nil, err
	}
	return &INCCNF{
		Vars:        int(vars),
		Incremental: incremental != 0,
		Cubes:       splitCubes(flat, n),
	}, nil
}

// WriteDIMACS writes the irredundant clauses to path, declaring at least
// minMaxVar variables in the header.
func (s *Solver) WriteDIMACS(path string, minMaxVar int) error {
	s.require(OpWriteDIMACS)
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))
	msg := C.cadicalgo_write_dimacs(s.ptr, p, C.int(minMaxVar))
	s.ensure(OpWriteDIMACS)
	return diagnostic(path, goString(msg))
}

// WriteExtension writes the extension stack, needed to turn a model of the
// simplified formula back into a model of the original one.
func (s *Solver) WriteExtension(path string) error {
	s.require(OpWriteExtension)
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))
	msg := C.cadicalgo_write_extension(s.ptr, p)
	s.ensure(OpWriteExtension)
	return diagnostic(path, goString(msg))
}

// AddFormula adds every clause of f and reserves its variables.
func (s *Solver) AddFormula(f *cnf.Formula) {
	if f.Vars > 0 {
		s.Reserve(f.Vars)
	}
	s.AddClauses(f.Clauses)
}

// Formula returns the irredundant clauses as a cnf.Formula.
func (s *Solver) Formula() *cnf.Formula {
	f := &cnf.Formula{Vars: s.Vars()}
	f.Clauses = s.Clauses()
	return f
}

func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
