package cadical

// Slices passed to any callback below are backed by buffers the solver
// reuses. They are valid only until the callback returns and must be copied
// to be retained.

// Terminator is polled regularly during Solve, Simplify and Lookahead.
// Returning true asks the engine to stop as soon as practical; the call then
// returns Unknown and the solver settles in STEADY.
type Terminator interface {
	Terminate() bool
}

// TerminatorFunc adapts a function to the Terminator interface.
type TerminatorFunc func() bool

func (f TerminatorFunc) Terminate() bool { return f() }

// Learner exports learned clauses. Learning is asked first with the size of
// each new clause; only if it returns true are the literals passed to Learn
// one at a time, followed by a terminating 0.
type Learner interface {
	Learning(size int) bool
	Learn(lit int)
}

// FixedListener is notified once per literal that becomes fixed at the root
// level, synchronously inside the call that fixed it.
type FixedListener interface {
	NotifyFixedAssignment(lit int)
}

// FixedListenerFunc adapts a function to the FixedListener interface.
type FixedListenerFunc func(lit int)

func (f FixedListenerFunc) NotifyFixedAssignment(lit int) { f(lit) }

// ExternalPropagator lets host code take part in search over observed
// variables. All methods are invoked on the goroutine that called Solve.
type ExternalPropagator interface {
	// IsLazy reports whether the propagator only checks complete models.
	IsLazy() bool
	// AreReasonsForgettable allows the engine to delete reason clauses.
	AreReasonsForgettable() bool
	// NotifyAssignment receives newly assigned observed literals.
	NotifyAssignment(lits []int)
	NotifyNewDecisionLevel()
	NotifyBacktrack(newLevel int)
	// CheckFoundModel is asked to accept a complete model over the observed
	// variables.
	CheckFoundModel(model []int) bool
	// Decide returns the next decision literal or 0 to let the engine decide.
	// Solver.ForceBacktrack may be called from here.
	Decide() int
	// Propagate returns a literal implied by the current assignment or 0.
	Propagate() int
	// AddReasonClauseLit streams the reason clause of propagated, one literal
	// per call, terminated by 0.
	AddReasonClauseLit(propagated int) int
	// HasExternalClause reports whether a clause is ready to be added, and if
	// so whether the engine may forget it.
	HasExternalClause() (has bool, forgettable bool)
	// AddExternalClauseLit streams the pending clause terminated by 0.
	AddExternalClauseLit() int
}

// ProofTracer receives the engine's proof events. Clause identifiers are
// positive and unique within one solver; antecedent lists refer to clauses
// seen earlier in the same stream.
type ProofTracer interface {
	AddOriginalClause(id uint64, redundant bool, clause []int, restored bool)
	AddDerivedClause(id uint64, redundant bool, clause []int, antecedents []uint64)
	DeleteClause(id uint64, redundant bool, clause []int)
	WeakenMinus(id uint64, clause []int)
	Strengthen(id uint64)
	FinalizeClause(id uint64, clause []int)
	AddAssumption(lit int)
	AddConstraint(clause []int)
	ResetAssumptions()
	AddAssumptionClause(id uint64, clause []int, antecedents []uint64)
	ConcludeSat(model []int)
	ConcludeUnsat(conclusion ConclusionType, ids []uint64)
	ConcludeUnknown(trail []int)
}

// ClauseVisitor is called once per irredundant clause. Returning false stops
// the traversal.
type ClauseVisitor interface {
	Clause(lits []int) bool
}

// ClauseVisitorFunc adapts a function to the ClauseVisitor interface.
type ClauseVisitorFunc func(lits []int) bool

func (f ClauseVisitorFunc) Clause(lits []int) bool { return f(lits) }

// WitnessVisitor is called once per clause on the extension stack together
// with its witness literals. Returning false stops the traversal.
type WitnessVisitor interface {
	Witness(clause, witness []int, id uint64) bool
}

// WitnessVisitorFunc adapts a function to the WitnessVisitor interface.
type WitnessVisitorFunc func(clause, witness []int, id uint64) bool

func (f WitnessVisitorFunc) Witness(clause, witness []int, id uint64) bool {
	return f(clause, witness, id)
}
