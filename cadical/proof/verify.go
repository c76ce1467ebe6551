package proof

import "fmt"

// Violation describes the first event of a stream that breaks the id
// discipline.
type Violation struct {
	Index  int
	Event  Event
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("proof: event %d (%s, id %d): %s", v.Index, v.Event.Kind, v.Event.ID, v.Reason)
}

// Verify checks a recorded event stream:
//
//   - clause ids are positive and added at most once, except for original
//     clauses restored after weakening, which reuse their id;
//   - antecedents of derived and assumption clauses, and the ids of an
//     unsatisfiability conclusion, refer to live clauses added earlier and a
//     derived clause never lists itself;
//   - deletions, weakenings, strengthenings and finalizations refer to live
//     clauses; a deleted clause is dead until it is restored;
//   - derived clauses have neither duplicate nor complementary literals and
//     the empty clause is derived at most once;
//   - assumptions and model or trail literals are non-zero.
//
// Verify does not check that derivations are sound; that is the job of a
// proof checker on the serialized proof.
func Verify(events []Event) error {
	added := make(map[uint64]bool)
	deleted := make(map[uint64]bool)
	weakened := make(map[uint64]bool)
	empty := false
	for i, e := range events {
		fail := func(format string, args ...interface{}) error {
			return &Violation{Index: i, Event: e, Reason: fmt.Sprintf(format, args...)}
		}
		live := func(id uint64) error {
			if deleted[id] {
				return fail("clause %d was deleted", id)
			}
			if !added[id] {
				return fail("clause %d was never added", id)
			}
			return nil
		}
		switch e.Kind {
		case Original, Derived, AssumptionClause:
			if e.ID == 0 {
				return fail("clause id is zero")
			}
			restore := e.Kind == Original && e.Restored && weakened[e.ID]
			if (added[e.ID] || deleted[e.ID]) && !restore {
				return fail("clause id added twice")
			}
			for _, a := range e.Antecedents {
				if a == e.ID {
					return fail("clause lists itself as antecedent")
				}
				if err := live(a); err != nil {
					return err
				}
			}
			if e.Kind == Derived {
				if err := checkLits(e.Clause); err != "" {
					return fail("%s", err)
				}
				if len(e.Clause) == 0 {
					if empty {
						return fail("empty clause derived twice")
					}
					empty = true
				}
			}
			added[e.ID] = true
			delete(deleted, e.ID)
			delete(weakened, e.ID)
		case Deleted:
			if err := live(e.ID); err != nil {
				return err
			}
			delete(added, e.ID)
			deleted[e.ID] = true
		case Strengthened, Finalized:
			if err := live(e.ID); err != nil {
				return err
			}
		case WeakenedMinus:
			if err := live(e.ID); err != nil {
				return err
			}
			weakened[e.ID] = true
		case Assumption:
			if e.Lit == 0 {
				return fail("zero assumption")
			}
		case ConcludedUnsat:
			for _, a := range e.Antecedents {
				if err := live(a); err != nil {
					return err
				}
			}
		case ConcludedSat, ConcludedUnknown:
			for _, l := range e.Clause {
				if l == 0 {
					return fail("zero literal in %s", e.Kind)
				}
			}
		}
	}
	return nil
}

func checkLits(clause []int) string {
	seen := make(map[int]bool, len(clause))
	for _, l := range clause {
		if l == 0 {
			return "zero literal in clause"
		}
		if seen[l] {
			return fmt.Sprintf("duplicate literal %d", l)
		}
		if seen[-l] {
			return fmt.Sprintf("complementary literals %d and %d", l, -l)
		}
		seen[l] = true
	}
	return ""
}
