// Package proof records, checks and serializes the proof event stream a
// cadical.Solver emits through a connected cadical.ProofTracer.
//
// Clause identifiers form an arena: every clause gets a fresh positive id
// when it is added, and every later reference (antecedents, deletions,
// conclusions) must point back into what has already been added. Verify
// checks exactly this, independently of the engine.
package proof

import (
	"fmt"

	"github.com/vhavlena/cadical-go/cadical"
)

// Kind identifies a proof event.
type Kind int

const (
	Original Kind = iota
	Derived
	Deleted
	WeakenedMinus
	Strengthened
	Finalized
	Assumption
	Constraint
	AssumptionsReset
	AssumptionClause
	ConcludedSat
	ConcludedUnsat
	ConcludedUnknown
)

var kindNames = [...]string{
	Original:         "original",
	Derived:          "derived",
	Deleted:          "deleted",
	WeakenedMinus:    "weakened",
	Strengthened:     "strengthened",
	Finalized:        "finalized",
	Assumption:       "assumption",
	Constraint:       "constraint",
	AssumptionsReset: "reset assumptions",
	AssumptionClause: "assumption clause",
	ConcludedSat:     "conclude sat",
	ConcludedUnsat:   "conclude unsat",
	ConcludedUnknown: "conclude unknown",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one recorded callback. Fields that do not apply to Kind are
// zero. Clause holds the clause for clause events, the model for
// ConcludedSat and the trail for ConcludedUnknown.
type Event struct {
	Kind        Kind
	ID          uint64
	Redundant   bool
	Restored    bool
	Lit         int
	Clause      []int
	Antecedents []uint64
	Conclusion  cadical.ConclusionType
}

// Recorder is a cadical.ProofTracer that keeps a copy of every event.
type Recorder struct {
	Events []Event
}

var _ cadical.ProofTracer = (*Recorder)(nil)

func ints(lits []int) []int {
	if len(lits) == 0 {
		return nil
	}
	return append([]int(nil), lits...)
}

func ids(in []uint64) []uint64 {
	if len(in) == 0 {
		return nil
	}
	return append([]uint64(nil), in...)
}

func (r *Recorder) add(e Event) { r.Events = append(r.Events, e) }

func (r *Recorder) AddOriginalClause(id uint64, redundant bool, clause []int, restored bool) {
	r.add(Event{Kind: Original, ID: id, Redundant: redundant, Clause: ints(clause), Restored: restored})
}

func (r *Recorder) AddDerivedClause(id uint64, redundant bool, clause []int, antecedents []uint64) {
	r.add(Event{Kind: Derived, ID: id, Redundant: redundant, Clause: ints(clause), Antecedents: ids(antecedents)})
}

func (r *Recorder) DeleteClause(id uint64, redundant bool, clause []int) {
	r.add(Event{Kind: Deleted, ID: id, Redundant: redundant, Clause: ints(clause)})
}

func (r *Recorder) WeakenMinus(id uint64, clause []int) {
	r.add(Event{Kind: WeakenedMinus, ID: id, Clause: ints(clause)})
}

func (r *Recorder) Strengthen(id uint64) {
	r.add(Event{Kind: Strengthened, ID: id})
}

func (r *Recorder) FinalizeClause(id uint64, clause []int) {
	r.add(Event{Kind: Finalized, ID: id, Clause: ints(clause)})
}

func (r *Recorder) AddAssumption(lit int) {
	r.add(Event{Kind: Assumption, Lit: lit})
}

func (r *Recorder) AddConstraint(clause []int) {
	r.add(Event{Kind: Constraint, Clause: ints(clause)})
}

func (r *Recorder) ResetAssumptions() {
	r.add(Event{Kind: AssumptionsReset})
}

func (r *Recorder) AddAssumptionClause(id uint64, clause []int, antecedents []uint64) {
	r.add(Event{Kind: AssumptionClause, ID: id, Clause: ints(clause), Antecedents: ids(antecedents)})
}

func (r *Recorder) ConcludeSat(model []int) {
	r.add(Event{Kind: ConcludedSat, Clause: ints(model)})
}

func (r *Recorder) ConcludeUnsat(conclusion cadical.ConclusionType, clauses []uint64) {
	r.add(Event{Kind: ConcludedUnsat, Conclusion: conclusion, Antecedents: ids(clauses)})
}

func (r *Recorder) ConcludeUnknown(trail []int) {
	r.add(Event{Kind: ConcludedUnknown, Clause: ints(trail)})
}

// Filter returns the events of kind k in stream order.
func (r *Recorder) Filter(k Kind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of events of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }
