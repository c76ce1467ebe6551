//go:build cgo
// +build cgo

package cadical

/*
#include "bridge.h"
*/
import "C"

// Active returns the number of variables that are neither fixed, eliminated
// nor substituted.
func (s *Solver) Active() int {
	s.require(OpActive)
	return int(C.cadicalgo_active(s.ptr))
}

// Redundant returns the number of learned clauses.
func (s *Solver) Redundant() int64 {
	s.require(OpRedundant)
	return int64(C.cadicalgo_redundant(s.ptr))
}

// Irredundant returns the number of original clauses still in use.
func (s *Solver) Irredundant() int64 {
	s.require(OpIrredundant)
	return int64(C.cadicalgo_irredundant(s.ptr))
}

// Fixed returns 1 if lit is implied by the formula, -1 if its negation is,
// and 0 otherwise.
func (s *Solver) Fixed(lit int) int {
	if err := checkLit(OpFixed, lit); err != nil {
		panic(err)
	}
	s.require(OpFixed)
	return int(C.cadicalgo_fixed(s.ptr, C.int(lit)))
}

// Frozen reports whether lit's variable is protected from elimination.
func (s *Solver) Frozen(lit int) bool {
	if err := checkLit(OpFrozen, lit); err != nil {
		panic(err)
	}
	s.require(OpFrozen)
	return C.cadicalgo_frozen(s.ptr, C.int(lit)) != 0
}

// Freeze protects lit's variable from being eliminated, so that it can be
// used in later clauses and assumptions. Freezing is counted; each Freeze
// must be matched by a Melt.
func (s *Solver) Freeze(lit int) {
	if err := checkLit(OpFreeze, lit); err != nil {
		panic(err)
	}
	s.require(OpFreeze)
	C.cadicalgo_freeze(s.ptr, C.int(lit))
	s.ensure(OpFreeze)
}

// Melt undoes one Freeze of lit. Melting a literal that is not frozen is
// ignored with a warning and reported as false.
func (s *Solver) Melt(lit int) bool {
	if err := checkLit(OpMelt, lit); err != nil {
		panic(err)
	}
	s.require(OpMelt)
	if C.cadicalgo_frozen(s.ptr, C.int(lit)) == 0 {
		s.log.WithField("lit", lit).Warn("melt of literal that is not frozen ignored")
		return false
	}
	C.cadicalgo_melt(s.ptr, C.int(lit))
	s.ensure(OpMelt)
	return true
}

// Phase sets the preferred decision value of lit's variable to lit.
func (s *Solver) Phase(lit int) {
	if err := checkLit(OpPhase, lit); err != nil {
		panic(err)
	}
	s.require(OpPhase)
	C.cadicalgo_phase(s.ptr, C.int(lit))
	s.ensure(OpPhase)
}

// Unphase removes a phase set with Phase.
func (s *Solver) Unphase(lit int) {
	if err := checkLit(OpUnphase, lit); err != nil {
		panic(err)
	}
	s.require(OpUnphase)
	C.cadicalgo_unphase(s.ptr, C.int(lit))
	s.ensure(OpUnphase)
}

// Statistics prints search statistics to standard output.
func (s *Solver) Statistics() {
	s.require(OpStatistics)
	C.cadicalgo_statistics(s.ptr)
}

// Resources prints time and memory usage to standard output.
func (s *Solver) Resources() {
	s.require(OpResources)
	C.cadicalgo_resources(s.ptr)
}

// Options prints the current option values to standard output.
func (s *Solver) Options() {
	s.require(OpOptions)
	C.cadicalgo_options(s.ptr)
}

// Stats collects Vars, Active, Redundant and Irredundant in one call.
func (s *Solver) Stats() Stats {
	return Stats{
		Vars:        s.Vars(),
		Active:      s.Active(),
		Redundant:   s.Redundant(),
		Irredundant: s.Irredundant(),
	}
}
