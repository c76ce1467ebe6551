package cadical

import (
	"fmt"
	"strings"
)

// State is the engine's internal mode. Every value reported by the engine is
// exactly one of the eight single-bit states; the unions below are only used
// to describe the state sets an operation requires or ensures.
type State int

const (
	Initializing State = 1 << iota
	Configuring
	Steady
	Adding
	Solving
	Satisfied
	Unsatisfied
	Deleting

	// Ready is the set of states in which solving may start.
	Ready = Configuring | Steady | Satisfied | Unsatisfied
	// Valid additionally includes a partially added clause.
	Valid = Ready | Adding
	// Invalid holds the states outside the solver's usable lifetime.
	Invalid = Initializing | Deleting

	validOrSolving = Valid | Solving
	anyState       = Valid | Solving | Initializing
)

var stateNames = []struct {
	s    State
	name string
}{
	{Initializing, "INITIALIZING"},
	{Configuring, "CONFIGURING"},
	{Steady, "STEADY"},
	{Adding, "ADDING"},
	{Solving, "SOLVING"},
	{Satisfied, "SATISFIED"},
	{Unsatisfied, "UNSATISFIED"},
	{Deleting, "DELETING"},
}

// stateFromRaw converts the engine's raw state value. Anything but a single
// documented bit means the bridge and the engine disagree about the contract.
func stateFromRaw(raw int) State {
	s := State(raw)
	if !s.single() {
		panic(fmt.Errorf("cadical: engine reported undocumented state %#x", raw))
	}
	return s
}

func (s State) single() bool {
	return s != 0 && s&(s-1) == 0 && s <= Deleting
}

// In reports whether s is a member of the state set set.
func (s State) In(set State) bool {
	return s&set != 0
}

// String renders single states by name and sets as a '|' separated list,
// using the named unions where they match exactly.
func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Valid:
		return "VALID"
	case Invalid:
		return "INVALID"
	case validOrSolving:
		return "VALID|SOLVING"
	case 0:
		return "NONE"
	}
	var parts []string
	rest := s
	for _, n := range stateNames {
		if s&n.s != 0 {
			parts = append(parts, n.name)
			rest &^= n.s
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", int(rest)))
	}
	return strings.Join(parts, "|")
}
