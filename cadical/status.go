package cadical

import "fmt"

// Status is the outcome of Solve, Simplify and friends. The numeric values
// are the SAT competition exit codes and are part of the engine's contract.
type Status int

const (
	// Unknown means a limit was hit or the call was terminated.
	Unknown Status = 0
	// Satisfiable means the formula (under the assumptions) has a model.
	Satisfiable Status = 10
	// Unsatisfiable means the formula (under the assumptions) has no model.
	Unsatisfiable Status = 20
)

func statusFromRaw(raw int) Status {
	switch Status(raw) {
	case Unknown, Satisfiable, Unsatisfiable:
		return Status(raw)
	}
	panic(fmt.Errorf("cadical: engine returned undocumented status %d", raw))
}

func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	case Unknown:
		return "UNKNOWN"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ConclusionType tells a proof tracer why the formula was concluded
// unsatisfiable.
type ConclusionType int

const (
	ConclusionConflict    ConclusionType = 1
	ConclusionAssumptions ConclusionType = 2
	ConclusionConstraint  ConclusionType = 4
)

func (c ConclusionType) String() string {
	switch c {
	case ConclusionConflict:
		return "conflict"
	case ConclusionAssumptions:
		return "assumptions"
	case ConclusionConstraint:
		return "constraint"
	}
	return fmt.Sprintf("ConclusionType(%d)", int(c))
}

// Stats is a snapshot of the clause and variable counters.
type Stats struct {
	Vars        int
	Active      int
	Redundant   int64
	Irredundant int64
}
