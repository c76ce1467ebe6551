package cnf

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Result is the outcome reported by Oracle, using the SAT competition
// codes.
type Result int

const (
	Unknown       Result = 0
	Satisfiable   Result = 10
	Unsatisfiable Result = 20
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	}
	return "UNKNOWN"
}

// Oracle decides formulas with gini, a pure Go CDCL solver. It serves as an
// independent reference to compare the native engine against.
type Oracle struct {
	g    *gini.Gini
	vars int
}

// NewOracle loads f into a fresh gini instance.
func NewOracle(f *Formula) *Oracle {
	o := &Oracle{g: gini.NewVc(f.Vars, len(f.Clauses)), vars: f.Vars}
	for _, c := range f.Clauses {
		for _, l := range c {
			o.g.Add(z.Dimacs2Lit(l))
		}
		o.g.Add(z.LitNull)
	}
	return o
}

// Solve decides the formula under assumptions, which are forgotten
// afterwards.
func (o *Oracle) Solve(assumptions ...int) Result {
	for _, l := range assumptions {
		o.g.Assume(z.Dimacs2Lit(l))
	}
	switch o.g.Solve() {
	case 1:
		return Satisfiable
	case -1:
		return Unsatisfiable
	}
	return Unknown
}

// Model returns the assignment of the last satisfiable Solve as one signed
// literal per variable.
func (o *Oracle) Model() []int {
	top := int(o.g.MaxVar())
	out := make([]int, 0, o.vars)
	for v := 1; v <= o.vars; v++ {
		if v <= top && o.g.Value(z.Dimacs2Lit(v)) {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}

// Decide is a shortcut for NewOracle(f).Solve(assumptions...).
func Decide(f *Formula, assumptions ...int) Result {
	return NewOracle(f).Solve(assumptions...)
}
