package proof

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vhavlena/cadical-go/cadical"
)

// Format selects the textual proof format produced by Writer.
type Format int

const (
	// DRAT lines list lemma literals; deletions are prefixed with "d".
	DRAT Format = iota
	// LRAT lines additionally carry the lemma id and its antecedent chain.
	// Connect the writer with antecedents enabled.
	LRAT
)

// Writer is a cadical.ProofTracer that streams derived and deleted clauses
// in DRAT or LRAT. Original clauses are not written; they are the input
// formula. The first write error is kept and reported by Flush, later
// events are dropped.
type Writer struct {
	w      *bufio.Writer
	format Format
	last   uint64
	buf    []byte
	err    error
}

var _ cadical.ProofTracer = (*Writer)(nil)

// NewWriter returns a Writer emitting format to w.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format}
}

// Flush writes buffered output and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = errors.Wrap(w.w.Flush(), "proof: flushing")
	return w.err
}

func (w *Writer) emit() {
	if w.err != nil {
		return
	}
	if _, err := w.w.Write(w.buf); err != nil {
		w.err = errors.Wrap(err, "proof: writing")
	}
}

func (w *Writer) lits(clause []int) {
	for _, l := range clause {
		w.buf = strconv.AppendInt(w.buf, int64(l), 10)
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, '0')
}

func (w *Writer) ids(ids []uint64) {
	for _, id := range ids {
		w.buf = strconv.AppendUint(w.buf, id, 10)
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, '0')
}

func (w *Writer) see(id uint64) {
	if id > w.last {
		w.last = id
	}
}

func (w *Writer) AddOriginalClause(id uint64, _ bool, _ []int, _ bool) { w.see(id) }

func (w *Writer) AddDerivedClause(id uint64, _ bool, clause []int, antecedents []uint64) {
	w.see(id)
	w.buf = w.buf[:0]
	if w.format == LRAT {
		w.buf = strconv.AppendUint(w.buf, id, 10)
		w.buf = append(w.buf, ' ')
	}
	w.lits(clause)
	if w.format == LRAT {
		w.buf = append(w.buf, ' ')
		w.ids(antecedents)
	}
	w.buf = append(w.buf, '\n')
	w.emit()
}

func (w *Writer) DeleteClause(id uint64, _ bool, clause []int) {
	w.buf = w.buf[:0]
	if w.format == LRAT {
		w.buf = strconv.AppendUint(w.buf, w.last, 10)
		w.buf = append(w.buf, " d "...)
		w.ids([]uint64{id})
	} else {
		w.buf = append(w.buf, "d "...)
		w.lits(clause)
	}
	w.buf = append(w.buf, '\n')
	w.emit()
}

func (w *Writer) WeakenMinus(uint64, []int) {}
func (w *Writer) Strengthen(uint64) {}
func (w *Writer) FinalizeClause(uint64, []int) {}
func (w *Writer) AddAssumption(int) {}
func (w *Writer) AddConstraint([]int) {}
func (w *Writer) ResetAssumptions() {}
func (w *Writer) ConcludeSat([]int) {}
func (w *Writer) ConcludeUnsat(cadical.ConclusionType, []uint64) {}
func (w *Writer) ConcludeUnknown([]int) {}

func (w *Writer) AddAssumptionClause(id uint64, _ []int, _ []uint64) { w.see(id) }

// Replay feeds recorded events to t in order.
func Replay(events []Event, t cadical.ProofTracer) {
	for _, e := range events {
		switch e.Kind {
		case Original:
			t.AddOriginalClause(e.ID, e.Redundant, e.Clause, e.Restored)
		case Derived:
			t.AddDerivedClause(e.ID, e.Redundant, e.Clause, e.Antecedents)
		case Deleted:
			t.DeleteClause(e.ID, e.Redundant, e.Clause)
		case WeakenedMinus:
			t.WeakenMinus(e.ID, e.Clause)
		case Strengthened:
			t.Strengthen(e.ID)
		case Finalized:
			t.FinalizeClause(e.ID, e.Clause)
		case Assumption:
			t.AddAssumption(e.Lit)
		case Constraint:
			t.AddConstraint(e.Clause)
		case AssumptionsReset:
			t.ResetAssumptions()
		case AssumptionClause:
			t.AddAssumptionClause(e.ID, e.Clause, e.Antecedents)
		case ConcludedSat:
			t.ConcludeSat(e.Clause)
		case ConcludedUnsat:
			t.ConcludeUnsat(e.Conclusion, e.Antecedents)
		case ConcludedUnknown:
			t.ConcludeUnknown(e.Clause)
		}
	}
}
