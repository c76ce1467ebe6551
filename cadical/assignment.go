package cadical

import (
	"strconv"
	"strings"
)

// Model is a snapshot of a satisfying assignment. Unlike Val it stays usable
// after the solver has moved on or been closed.
type Model struct {
	vals []bool // indexed by variable, vals[0] unused
}

// NewModel builds a model from signed literals, one per variable. Variables
// that do not appear are false.
func NewModel(lits []int) *Model {
	n := 0
	for _, l := range lits {
		if v := Var(l); v > n {
			n = v
		}
	}
	m := &Model{vals: make([]bool, n+1)}
	for _, l := range lits {
		m.vals[Var(l)] = l > 0
	}
	return m
}

// Vars returns the number of variables in the model.
func (m *Model) Vars() int {
	if m == nil || len(m.vals) == 0 {
		return 0
	}
	return len(m.vals) - 1
}

// Value reports whether lit is true. Variables beyond Vars are false.
func (m *Model) Value(lit int) bool {
	v := Var(lit)
	val := m != nil && v < len(m.vals) && m.vals[v]
	if lit < 0 {
		return !val
	}
	return val
}

// Satisfies reports whether at least one literal of clause is true.
func (m *Model) Satisfies(clause []int) bool {
	for _, lit := range clause {
		if m.Value(lit) {
			return true
		}
	}
	return false
}

// Lits returns the model as one signed literal per variable.
func (m *Model) Lits() []int {
	out := make([]int, 0, m.Vars())
	for v := 1; v <= m.Vars(); v++ {
		if m.vals[v] {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}

// String renders the model as a competition style value line,
// "v 1 -2 3 0".
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString("v")
	for _, lit := range m.Lits() {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(lit))
	}
	b.WriteString(" 0")
	return b.String()
}
