// Package cnf holds propositional formulas in conjunctive normal form in
// plain Go: reading and writing DIMACS, generating benchmark instances and
// checking assignments against a reference solver.
package cnf

// Formula is a conjunction of clauses over variables 1..Vars. Literals are
// signed variable indices as in DIMACS.
type Formula struct {
	Vars    int
	Clauses [][]int
}

// Add appends a clause and raises Vars as needed. The literal slice is
// copied.
func (f *Formula) Add(lits ...int) {
	c := make([]int, len(lits))
	copy(c, lits)
	for _, l := range c {
		if v := abs(l); v > f.Vars {
			f.Vars = v
		}
	}
	f.Clauses = append(f.Clauses, c)
}

// Len returns the number of clauses.
func (f *Formula) Len() int {
	return len(f.Clauses)
}

// Satisfied reports whether every clause has a literal for which value
// returns true.
func (f *Formula) Satisfied(value func(lit int) bool) bool {
	for _, c := range f.Clauses {
		sat := false
		for _, l := range c {
			if value(l) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

// FirstFalsified returns the index of the first clause not satisfied under
// value, or -1.
func (f *Formula) FirstFalsified(value func(lit int) bool) int {
	for i, c := range f.Clauses {
		sat := false
		for _, l := range c {
			if value(l) {
				sat = true
				break
			}
		}
		if !sat {
			return i
		}
	}
	return -1
}

func abs(l int) int {
	if l < 0 {
		return -l
	}
	return l
}
