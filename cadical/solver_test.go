//go:build cgo
// +build cgo

package cadical

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhavlena/cadical-go/cadical/cnf"
)

func newSolver(t *testing.T, options ...Option) *Solver {
	t.Helper()
	s, err := New(append(options, WithPostconditionChecks())...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestLifecycle(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := New(WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, Configuring, s.State())
	assert.Equal(t, Unknown, s.Status())

	s.Close()
	s.Close()
	assert.PanicsWithValue(t, ErrClosed, func() { s.State() })

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, "solver created", hook.Entries[0].Message)
	assert.Equal(t, "solver closed", hook.LastEntry().Message)
	assert.Equal(t, s.id, hook.LastEntry().Data["solver"])
}

func TestCloseEndsConnections(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	conns := []*Connection{
		s.ConnectTerminator(TerminatorFunc(func() bool { return false })),
		s.ConnectLearner(&countingLearner{}),
		s.ConnectFixedListener(FixedListenerFunc(func(int) {})),
		s.ConnectExternalPropagator(&blocker{}),
	}
	for _, c := range conns {
		require.True(t, c.Connected())
	}
	s.Close()
	for _, c := range conns {
		assert.False(t, c.Connected())
		c.Disconnect()
	}
}

func TestIdentification(t *testing.T) {
	assert.NotEmpty(t, Version())
	assert.Contains(t, Signature(), Version())

	var b bytes.Buffer
	require.NoError(t, Build(&b, "c "))
	assert.Contains(t, b.String(), "c ")
}

func TestStateTransitions(t *testing.T) {
	s := newSolver(t)
	s.Add(1)
	assert.Equal(t, Adding, s.State())
	s.Add(2)
	s.Add(0)
	assert.Equal(t, Steady, s.State())

	assert.Equal(t, Satisfiable, s.Solve())
	assert.Equal(t, Satisfied, s.State())
	// Idempotent queries.
	for i := 0; i < 3; i++ {
		assert.Equal(t, Satisfied, s.State())
		assert.Equal(t, Satisfiable, s.Status())
	}

	s.AddClause(-1)
	s.AddClause(-2)
	assert.Equal(t, Steady, s.State())
	assert.Equal(t, Unsatisfiable, s.Solve())
	assert.Equal(t, Unsatisfied, s.State())
	assert.True(t, s.Inconsistent())
}

func TestContractViolationsPanic(t *testing.T) {
	s := newSolver(t)

	assertContract := func(op Op, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "%s did not panic", op)
			ce, ok := r.(*ContractError)
			require.True(t, ok, "%s panicked with %v", op, r)
			assert.Equal(t, op, ce.Op)
		}()
		fn()
	}

	assertContract(OpVal, func() { s.Val(1) })
	assertContract(OpFailed, func() { s.Failed(1) })
	assertContract(OpAssume, func() { s.Assume(0) })
	assertContract(OpClause, func() { s.AddClause(1, 0) })
	assertContract(OpForceBacktrack, func() { s.ForceBacktrack(0) })

	s.Add(1)
	assertContract(OpSolve, func() { s.Solve() })
	s.Add(0)
	assertContract(OpSet, func() { _ = s.Set("quiet", 1) })
	assertContract(OpTraceProof, func() { s.TraceProof(filepath.Join(t.TempDir(), "p")) })
	assert.Panics(t, func() { s.Reserve(-1) })
}

func TestModelSatisfiesClauses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		f := cnf.Random(rng, 25, 90, 3)
		s := newSolver(t)
		s.AddFormula(f)
		res := s.Solve()
		assert.Equal(t, Status(cnf.Decide(f)), res, "formula %d", i)
		if res != Satisfiable {
			continue
		}
		m := s.Model()
		for _, c := range f.Clauses {
			assert.True(t, m.Satisfies(c), "formula %d clause %v", i, c)
		}
		for v := 1; v <= f.Vars; v++ {
			assert.Equal(t, s.Val(v), !s.Val(-v), "polarity of %d", v)
			assert.Equal(t, s.Val(v), m.Value(v))
		}
	}
}

func TestFailedAssumptions(t *testing.T) {
	s := newSolver(t)
	s.AddClause(-1, 2)
	s.AddClause(-2, 3)
	s.AddClause(4, 5)

	s.Assume(1)
	s.Assume(-3)
	s.Assume(4)
	require.Equal(t, Unsatisfiable, s.Solve())
	assert.True(t, s.Failed(1))
	assert.True(t, s.Failed(-3))
	assert.False(t, s.Failed(4))

	// Assumptions are dropped after each solve.
	assert.Equal(t, Satisfiable, s.Solve())
}

func TestConstrain(t *testing.T) {
	s := newSolver(t)
	s.AddClause(-1)
	s.AddClause(-2)
	s.Constrain(1)
	s.Constrain(2)
	s.Constrain(0)
	require.Equal(t, Unsatisfiable, s.Solve())
	assert.True(t, s.ConstraintFailed())

	assert.Equal(t, Satisfiable, s.Solve())
}

func TestFlip(t *testing.T) {
	clauses := [][]int{{1, 2, 3}, {-1, -2}, {2, 3}, {-3, 4}}
	s := newSolver(t)
	s.AddClauses(clauses)
	for v := 1; v <= 4; v++ {
		s.Freeze(v)
	}
	require.Equal(t, Satisfiable, s.Solve())

	flipped := 0
	for v := 1; v <= 4; v++ {
		if !s.Flippable(v) {
			continue
		}
		before := s.Val(v)
		require.True(t, s.Flip(v))
		assert.NotEqual(t, before, s.Val(v), "variable %d", v)
		assert.Equal(t, Satisfied, s.State())
		m := s.Model()
		for _, c := range clauses {
			assert.True(t, m.Satisfies(c), "clause %v after flipping %d", c, v)
		}
		flipped++
	}
	assert.Positive(t, flipped)
}

func TestPhase(t *testing.T) {
	s := newSolver(t, WithOption("lucky", 0))
	s.AddClause(1, 2)
	s.Optimize(1)
	s.Phase(-1)
	s.Phase(2)
	require.Equal(t, Satisfiable, s.Solve())
	assert.True(t, s.Val(-1))
	assert.True(t, s.Val(2))

	s.Unphase(-1)
	s.Unphase(2)
	s.Phase(1)
	s.Phase(-2)
	require.Equal(t, Satisfiable, s.Solve())
	assert.True(t, s.Val(1))
	assert.True(t, s.Val(-2))
}

func TestSimplifyStates(t *testing.T) {
	s := newSolver(t)
	s.AddFormula(cnf.Pigeonhole(4, 3))
	st := s.Simplify(1)
	switch st {
	case Unknown:
		assert.Equal(t, Steady, s.State())
	case Satisfiable:
		t.Fatalf("pigeonhole formula simplified to satisfiable")
	case Unsatisfiable:
		assert.Equal(t, Unsatisfied, s.State())
	}
	assert.Equal(t, Unsatisfiable, s.Solve())

	s = newSolver(t)
	s.AddClause(1)
	s.AddClause(-1)
	assert.Equal(t, Unsatisfiable, s.Simplify(1))
	assert.Equal(t, Unsatisfied, s.State())
}

func TestLookahead(t *testing.T) {
	s := newSolver(t)
	s.AddFormula(cnf.Pigeonhole(5, 4))
	lit := s.Lookahead()
	assert.Contains(t, []State{Steady, Satisfied, Unsatisfied}, s.State())
	if lit != 0 {
		assert.True(t, validLit(lit))
		assert.LessOrEqual(t, Var(lit), s.Vars())
	}

	s = newSolver(t)
	s.AddClause(1)
	s.AddClause(-1)
	assert.Zero(t, s.Lookahead())
	assert.Contains(t, []State{Steady, Satisfied, Unsatisfied}, s.State())
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestFreezeMelt(t *testing.T) {
	s := newSolver(t)
	s.AddClause(1, 2)
	assert.False(t, s.Frozen(1))

	s.Freeze(1)
	s.Freeze(1)
	assert.True(t, s.Frozen(1))
	assert.True(t, s.Melt(1))
	assert.True(t, s.Frozen(1))
	assert.True(t, s.Melt(1))
	assert.False(t, s.Frozen(1))

	// Melting more often than frozen is absorbed.
	assert.False(t, s.Melt(1))
	assert.False(t, s.Frozen(1))
}

func TestOptions(t *testing.T) {
	assert.True(t, IsValidOption("verbose"))
	assert.False(t, IsValidOption("no-such-option"))
	assert.True(t, IsValidConfiguration("unsat"))
	assert.False(t, IsValidConfiguration("bogus"))
	assert.True(t, IsValidLongOption("--verbose=1"))

	s := newSolver(t)
	require.NoError(t, s.Set("quiet", 1))
	assert.Equal(t, 1, s.Get("quiet"))
	require.NoError(t, s.Configure("sat"))
	require.NoError(t, s.SetLongOption("--seed=3"))
	assert.Equal(t, 3, s.Get("seed"))

	var oe *OptionError
	require.ErrorAs(t, s.Set("no-such-option", 1), &oe)
	assert.Equal(t, KindOption, oe.Kind)
	require.ErrorAs(t, s.Configure("bogus"), &oe)
	assert.Equal(t, KindConfiguration, oe.Kind)
	require.ErrorAs(t, s.SetLongOption("--no-such-option"), &oe)
	assert.Equal(t, KindLongOption, oe.Kind)

	assert.True(t, s.IsValidLimit("conflicts"))
	require.NoError(t, s.Limit("conflicts", 10))
	require.ErrorAs(t, s.Limit("bogus", 1), &oe)
	assert.Equal(t, KindLimit, oe.Kind)

	_, err := New(WithOption("no-such-option", 1))
	assert.Error(t, err)
}

func TestConflictLimitYieldsUnknown(t *testing.T) {
	s := newSolver(t)
	s.AddFormula(cnf.Pigeonhole(9, 8))
	require.NoError(t, s.Limit("conflicts", 1))
	assert.Equal(t, Unknown, s.Solve())
	assert.Equal(t, Steady, s.State())
}

func TestOutOfRangeValuesAreClamped(t *testing.T) {
	s := newSolver(t)
	require.NoError(t, s.Set("seed", 1<<32))
	assert.Positive(t, s.Get("seed"))

	s.AddFormula(cnf.Pigeonhole(4, 3))
	require.NoError(t, s.Limit("conflicts", 1<<32))
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestReserveAndVars(t *testing.T) {
	s := newSolver(t)
	s.Reserve(10)
	assert.Equal(t, 10, s.Vars())
	s.AddClause(11, 12)
	assert.Equal(t, 12, s.Vars())

	st := s.Stats()
	assert.Equal(t, 12, st.Vars)
	assert.EqualValues(t, 1, st.Irredundant)
}

func TestTerminatorStopsSearch(t *testing.T) {
	s := newSolver(t)
	s.AddFormula(cnf.Pigeonhole(10, 9))
	polls := 0
	c := s.ConnectTerminator(TerminatorFunc(func() bool {
		polls++
		return true
	}))
	assert.Equal(t, Unknown, s.Solve())
	assert.Positive(t, polls)

	c.Disconnect()
	c.Disconnect()
	assert.False(t, c.Connected())
	assert.Nil(t, s.slots[slotTerminator])
}

func TestReconnectSupersedes(t *testing.T) {
	s := newSolver(t)
	first := s.ConnectTerminator(TerminatorFunc(func() bool { return true }))
	second := s.ConnectTerminator(TerminatorFunc(func() bool { return false }))
	assert.False(t, first.Connected())
	assert.True(t, second.Connected())
	assert.Same(t, second, s.slots[slotTerminator])

	s.AddFormula(cnf.Pigeonhole(3, 2))
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestSolveContext(t *testing.T) {
	s := newSolver(t)
	s.AddFormula(cnf.Pigeonhole(10, 9))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, Unknown, s.SolveContext(ctx))
	assert.Nil(t, s.slots[slotTerminator])

	c := s.ConnectTerminator(TerminatorFunc(func() bool { return false }))
	assert.Equal(t, Unknown, s.SolveContext(ctx))
	assert.Same(t, c, s.slots[slotTerminator])
	_, restored := c.term.(TerminatorFunc)
	assert.True(t, restored)

	easy := newSolver(t)
	easy.AddClause(1, 2)
	assert.Equal(t, Satisfiable, easy.SolveContext(context.Background()))
}

func TestCallbackPanicIsRethrown(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := newSolver(t, WithLogger(logger))
	s.AddFormula(cnf.Pigeonhole(8, 7))
	s.ConnectTerminator(TerminatorFunc(func() bool { panic("boom") }))

	assert.PanicsWithValue(t, "boom", func() { s.Solve() })
	assert.Nil(t, s.pending)
	assert.Equal(t, Steady, s.State())
	assert.Equal(t, "panic in callback", hook.LastEntry().Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

type countingLearner struct {
	clauses [][]int
	cur     []int
}

func (l *countingLearner) Learning(size int) bool { return size <= 10 }

func (l *countingLearner) Learn(lit int) {
	if lit != 0 {
		l.cur = append(l.cur, lit)
		return
	}
	l.clauses = append(l.clauses, l.cur)
	l.cur = nil
}

func TestLearner(t *testing.T) {
	s := newSolver(t)
	s.AddFormula(cnf.Pigeonhole(6, 5))
	l := &countingLearner{}
	s.ConnectLearner(l)
	assert.Equal(t, Unsatisfiable, s.Solve())
	require.NotEmpty(t, l.clauses)
	for _, c := range l.clauses {
		assert.LessOrEqual(t, len(c), 10)
	}
	assert.Empty(t, l.cur)
}

func TestDisconnectedCallbacksAreNotInvoked(t *testing.T) {
	s := newSolver(t)
	l := &countingLearner{}
	var fixed, polls int
	s.ConnectLearner(l).Disconnect()
	s.ConnectFixedListener(FixedListenerFunc(func(int) { fixed++ })).Disconnect()
	s.ConnectTerminator(TerminatorFunc(func() bool { polls++; return false })).Disconnect()

	s.AddFormula(cnf.Pigeonhole(6, 5))
	s.AddClause(1)
	assert.Equal(t, Unsatisfiable, s.Solve())
	assert.Empty(t, l.clauses)
	assert.Zero(t, fixed)
	assert.Zero(t, polls)
}

func TestFixedListener(t *testing.T) {
	s := newSolver(t)
	var got []int
	s.ConnectFixedListener(FixedListenerFunc(func(lit int) { got = append(got, lit) }))
	s.AddClause(1)
	s.AddClause(-2)
	require.Equal(t, Satisfiable, s.Solve())
	sort.Ints(got)
	assert.Equal(t, []int{-2, 1}, got)
	assert.Equal(t, 1, s.Fixed(1))
	assert.Equal(t, -1, s.Fixed(2))
}

func TestEmptyFormula(t *testing.T) {
	s := newSolver(t)
	var fixed int
	s.ConnectFixedListener(FixedListenerFunc(func(int) { fixed++ }))
	assert.Equal(t, Satisfiable, s.Solve())
	assert.Zero(t, s.Model().Vars())
	assert.Zero(t, fixed)
}

// blocker is a lazy propagator rejecting every model with variable 1 true.
type blocker struct {
	pending []int
	checks  int
}

func (b *blocker) IsLazy() bool { return true }
func (b *blocker) AreReasonsForgettable() bool { return false }
func (b *blocker) NotifyAssignment([]int) {}
func (b *blocker) NotifyNewDecisionLevel() {}
func (b *blocker) NotifyBacktrack(int) {}
func (b *blocker) Decide() int { return 0 }
func (b *blocker) Propagate() int { return 0 }
func (b *blocker) AddReasonClauseLit(int) int { return 0 }

func (b *blocker) CheckFoundModel(model []int) bool {
	b.checks++
	for _, l := range model {
		if l == 1 {
			for _, m := range model {
				b.pending = append(b.pending, -m)
			}
			b.pending = append(b.pending, 0)
			return false
		}
	}
	return true
}

func (b *blocker) HasExternalClause() (bool, bool) {
	return len(b.pending) > 0, false
}

func (b *blocker) AddExternalClauseLit() int {
	l := b.pending[0]
	b.pending = b.pending[1:]
	return l
}

func TestExternalPropagator(t *testing.T) {
	s := newSolver(t)
	b := &blocker{}
	s.ConnectExternalPropagator(b)
	for v := 1; v <= 3; v++ {
		s.AddObservedVar(v)
	}
	s.AddClause(1, 2, 3)
	require.Equal(t, Satisfiable, s.Solve())
	assert.False(t, s.Val(1))
	assert.Positive(t, b.checks)
	assert.Empty(t, b.pending)

	s.ResetObservedVars()
	s.slots[slotPropagator].Disconnect()
	assert.Panics(t, func() { s.AddObservedVar(1) })
}

// steering calls back into its solver from Decide and NotifyAssignment.
type steering struct {
	s         *Solver
	extra     int
	decides   int
	forced    bool
	observed  bool
	decisions int
}

func (p *steering) IsLazy() bool { return false }
func (p *steering) AreReasonsForgettable() bool { return false }
func (p *steering) NotifyNewDecisionLevel() {}
func (p *steering) NotifyBacktrack(int) {}
func (p *steering) CheckFoundModel([]int) bool { return true }
func (p *steering) Propagate() int { return 0 }
func (p *steering) AddReasonClauseLit(int) int { return 0 }
func (p *steering) HasExternalClause() (bool, bool) { return false, false }
func (p *steering) AddExternalClauseLit() int { return 0 }

func (p *steering) NotifyAssignment(lits []int) {
	for _, l := range lits {
		if p.s.IsDecision(l) {
			p.decisions++
		}
	}
	if !p.observed {
		p.observed = true
		p.s.AddObservedVar(p.extra)
	}
}

func (p *steering) Decide() int {
	p.decides++
	if !p.forced {
		p.forced = true
		p.s.ForceBacktrack(0)
	}
	return 0
}

func TestPropagatorCallsBackIntoSolver(t *testing.T) {
	clauses := [][]int{{1, 2}, {3, 4}, {-1, -3}, {5, 6}, {-2, -5}}
	s := newSolver(t)
	p := &steering{s: s, extra: 6}
	s.ConnectExternalPropagator(p)
	s.AddClauses(clauses)
	for v := 1; v <= 5; v++ {
		s.AddObservedVar(v)
	}
	require.Equal(t, Satisfiable, s.Solve())
	m := s.Model()
	for _, c := range clauses {
		assert.True(t, m.Satisfies(c), "clause %v", c)
	}
	assert.Positive(t, p.decides)
	assert.True(t, p.forced)
	assert.True(t, p.observed)
	assert.Positive(t, p.decisions)
}

func TestGenerateCubesAndClone(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5; i++ {
		f := cnf.Random(rng, 40, 170, 3)
		want := Status(cnf.Decide(f))

		s := newSolver(t)
		s.AddFormula(f)
		res, cubes := s.GenerateCubes(3, 0)
		if res != Unknown {
			assert.Equal(t, want, res)
			continue
		}
		if len(cubes) == 0 {
			cubes = [][]int{nil}
		}
		got := Unsatisfiable
		for _, cube := range cubes {
			dst := newSolver(t)
			s.CloneInto(dst)
			for _, l := range cube {
				dst.Assume(l)
			}
			if dst.Solve() == Satisfiable {
				got = Satisfiable
			}
		}
		assert.Equal(t, want, got, "formula %d", i)
	}
}

func TestCloneIntoRequiresFreshDestination(t *testing.T) {
	s := newSolver(t)
	s.AddClause(1, 2)
	dst := newSolver(t)
	dst.AddClause(3)
	assert.Panics(t, func() { s.CloneInto(dst) })
}

func TestTraverseClauses(t *testing.T) {
	s := newSolver(t)
	s.AddClause(2, 1)
	s.AddClause(-1, 3)
	s.AddClause(-3, -2)

	assert.Equal(t, [][]int{{-1, 3}, {1, 2}, {-2, -3}}, sortByFirst(s.Clauses()))

	seen := 0
	complete := s.TraverseClauses(ClauseVisitorFunc(func([]int) bool {
		seen++
		return false
	}))
	assert.False(t, complete)
	assert.Equal(t, 1, seen)

	assert.Equal(t, 3, len(s.Formula().Clauses))
	assert.Empty(t, s.Witnesses())
}

func TestTraverseWitnesses(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-2, 4}, {-3, -4, 5}, {2, 3, 6}}
	s := newSolver(t)
	s.AddClauses(clauses)
	s.Simplify(1)

	witnesses := s.Witnesses()
	require.NotEmpty(t, witnesses)
	for _, w := range witnesses {
		assert.NotEmpty(t, w.Witness)
	}

	for _, traverse := range []func(WitnessVisitor) bool{
		s.TraverseWitnessesBackward,
		s.TraverseWitnessesForward,
	} {
		seen := 0
		complete := traverse(WitnessVisitorFunc(func([]int, []int, uint64) bool {
			seen++
			return false
		}))
		assert.False(t, complete)
		assert.Equal(t, 1, seen)
	}

	forward := 0
	assert.True(t, s.TraverseWitnessesForward(WitnessVisitorFunc(func([]int, []int, uint64) bool {
		forward++
		return true
	})))
	assert.Equal(t, len(witnesses), forward)

	path := filepath.Join(t.TempDir(), "extension")
	require.NoError(t, s.WriteExtension(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	require.Equal(t, Satisfiable, s.Solve())
	m := s.Model()
	for _, c := range clauses {
		assert.True(t, m.Satisfies(c), "clause %v", c)
	}
}

func sortByFirst(clauses [][]int) [][]int {
	sort.Slice(clauses, func(i, j int) bool {
		a, b := clauses[i], clauses[j]
		if Var(a[0]) != Var(b[0]) {
			return Var(a[0]) < Var(b[0])
		}
		return a[0] < b[0]
	})
	return clauses
}

func TestDIMACSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		f := cnf.Random(rng, 20, 85, 3)
		path := filepath.Join(dir, "f.cnf")

		src := newSolver(t)
		src.AddFormula(f)
		require.NoError(t, src.WriteDIMACS(path, 0))

		dst := newSolver(t)
		vars, err := dst.ReadDIMACS(path, Strict)
		require.NoError(t, err)
		assert.LessOrEqual(t, vars, f.Vars)

		assert.Equal(t, src.Solve(), dst.Solve(), "formula %d", i)
		assert.Equal(t, Status(cnf.Decide(f)), dst.Status())
	}
}

func TestReadDIMACSErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.cnf")
	require.NoError(t, os.WriteFile(bad, []byte("p cnf 2 1\n1 x 0\n"), 0o644))

	s := newSolver(t)
	_, err := s.ReadDIMACS(bad, Strict)
	var de *DIMACSError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, bad, de.Path)
	assert.NotEmpty(t, de.Msg)

	_, err = newSolver(t).ReadDIMACS(filepath.Join(dir, "missing.cnf"), Strict)
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = newSolver(t).ReadDIMACS(bad, -1) })
}

func TestReadDIMACSAbovePedantic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.cnf")
	require.NoError(t, cnf.WriteFile(path, cnf.Pigeonhole(3, 2)))

	s := newSolver(t)
	vars, err := s.ReadDIMACS(path, Pedantic+3)
	require.NoError(t, err)
	assert.Equal(t, 6, vars)
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestReadDIMACSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.cnf")
	require.NoError(t, cnf.WriteFile(path, cnf.Pigeonhole(4, 3)))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	s := newSolver(t)
	vars, err := s.ReadDIMACSFile(f, "pigeons", Strict)
	require.NoError(t, err)
	assert.Equal(t, 12, vars)
	assert.Equal(t, Unsatisfiable, s.Solve())
}

func TestReadINCCNF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.icnf")
	data := "p inccnf\n1 2 0\n-1 2 0\na -2 0\na 1 0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := newSolver(t)
	in, err := s.ReadINCCNF(path, Strict)
	require.NoError(t, err)
	assert.True(t, in.Incremental)
	assert.Equal(t, [][]int{{-2}, {1}}, in.Cubes)

	s.Assume(-2)
	assert.Equal(t, Unsatisfiable, s.Solve())
	s.Assume(1)
	assert.Equal(t, Satisfiable, s.Solve())
}

func TestTraceProofFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.drat")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	s := newSolver(t)
	require.True(t, s.TraceProofFile(f, path))
	assert.Panics(t, func() { s.TraceProofFile(f, path) })
	s.AddFormula(cnf.Pigeonhole(4, 3))
	require.Equal(t, Unsatisfiable, s.Solve())
	s.FlushProofTrace(false)
	s.CloseProofTrace(false)
	assert.Nil(t, s.proofFile)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestTraceProofPathClosedByClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.drat")
	s, err := New()
	require.NoError(t, err)
	require.True(t, s.TraceProof(path))
	s.AddFormula(cnf.Pigeonhole(3, 2))
	require.Equal(t, Unsatisfiable, s.Solve())
	s.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
