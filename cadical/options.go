//go:build cgo
// +build cgo

package cadical

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import "unsafe"

// IsValidOption reports whether name is an engine option.
func IsValidOption(name string) bool {
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	return C.cadicalgo_is_valid_option(n) != 0
}

// IsPreprocessingOption reports whether name is an option that controls
// preprocessing and is therefore affected by Optimize.
func IsPreprocessingOption(name string) bool {
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	return C.cadicalgo_is_preprocessing_option(n) != 0
}

// IsValidLongOption reports whether arg parses as "--name", "--no-name" or
// "--name=value" for an existing option.
func IsValidLongOption(arg string) bool {
	a := C.CString(arg)
	defer C.free(unsafe.Pointer(a))
	return C.cadicalgo_is_valid_long_option(a) != 0
}

// IsValidConfiguration reports whether name is a configuration accepted by
// Configure.
func IsValidConfiguration(name string) bool {
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	return C.cadicalgo_is_valid_configuration(n) != 0
}

// Get returns the current value of an option, or 0 for unknown names.
func (s *Solver) Get(name string) int {
	s.require(OpGet)
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	return int(C.cadicalgo_get(s.ptr, n))
}

// Set sets option name to val. Values outside the option's range are clamped
// to the nearest bound. Options can only be set while the solver is CONFIGURING.
func (s *Solver) Set(name string, val int) error {
	s.require(OpSet)
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	ok := C.cadicalgo_set(s.ptr, n, C.int(clamp32(val))) != 0
	s.ensure(OpSet)
	if !ok {
		return &OptionError{Kind: KindOption, Name: name}
	}
	return nil
}

// SetLongOption applies an option written as on the command line:
// "--name", "--no-name" or "--name=value" where value is true, false or
// [-]<mantissa>[e<exponent>].
func (s *Solver) SetLongOption(arg string) error {
	s.require(OpSetLongOption)
	a := C.CString(arg)
	defer C.free(unsafe.Pointer(a))
	ok := C.cadicalgo_set_long_option(s.ptr, a) != 0
	s.ensure(OpSetLongOption)
	if !ok {
		return &OptionError{Kind: KindLongOption, Name: arg}
	}
	return nil
}

// Configure selects a named set of option values, such as "sat" or
// "unsat".
func (s *Solver) Configure(name string) error {
	s.require(OpConfigure)
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	ok := C.cadicalgo_configure(s.ptr, n) != 0
	s.ensure(OpConfigure)
	if !ok {
		return &OptionError{Kind: KindConfiguration, Name: name}
	}
	return nil
}

// Optimize scales the preprocessing effort limits by a factor of 10^val.
func (s *Solver) Optimize(val int) {
	if val < 0 {
		panic(&ContractError{Op: OpOptimize, Reason: "negative optimization level"})
	}
	s.require(OpOptimize)
	C.cadicalgo_optimize(s.ptr, C.int(clamp32(val)))
	s.ensure(OpOptimize)
}

// Limit sets a search limit for the next Solve, such as "conflicts",
// "decisions", "preprocessing" or "localsearch". A negative value removes
// the limit. Values beyond the range of a C int are clamped.
func (s *Solver) Limit(name string, val int) error {
	s.require(OpLimit)
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	ok := C.cadicalgo_limit(s.ptr, n, C.int(clamp32(val))) != 0
	s.ensure(OpLimit)
	if !ok {
		return &OptionError{Kind: KindLimit, Name: name}
	}
	return nil
}

// IsValidLimit reports whether name is accepted by Limit.
func (s *Solver) IsValidLimit(name string) bool {
	s.require(OpIsValidLimit)
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	return C.cadicalgo_is_valid_limit(s.ptr, n) != 0
}

// Prefix sets the prefix prepended to every line of the engine's own
// output.
func (s *Solver) Prefix(prefix string) {
	s.require(OpPrefix)
	p := C.CString(prefix)
	defer C.free(unsafe.Pointer(p))
	C.cadicalgo_prefix(s.ptr, p)
}
