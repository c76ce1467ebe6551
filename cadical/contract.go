package cadical

import "fmt"

// Op names a facade operation that crosses into the engine. Each Op has a
// requires set (checked before the crossing) and an ensures set (checked
// after it when postcondition checks are enabled).
type Op int

const (
	OpAdd Op = iota
	OpAddTerminator
	OpClause
	OpAssume
	OpSolve
	OpVal
	OpFlip
	OpFlippable
	OpFailed
	OpConnect
	OpDisconnect
	OpAddObservedVar
	OpRemoveObservedVar
	OpResetObservedVars
	OpIsDecision
	OpForceBacktrack
	OpConstrain
	OpConstrainTerminator
	OpConstraintFailed
	OpLookahead
	OpGenerateCubes
	OpResetAssumptions
	OpResetConstraint
	OpCopySource
	OpCopyDestination
	OpVars
	OpReserve
	OpGet
	OpPrefix
	OpSet
	OpSetLongOption
	OpConfigure
	OpOptimize
	OpLimit
	OpIsValidLimit
	OpActive
	OpRedundant
	OpIrredundant
	OpSimplify
	OpTerminate
	OpFrozen
	OpFreeze
	OpMelt
	OpFixed
	OpPhase
	OpUnphase
	OpTraceProof
	OpFlushProofTrace
	OpCloseProofTrace
	OpConnectProofTracer
	OpDisconnectProofTracer
	OpConclude
	OpStatistics
	OpResources
	OpOptions
	OpTraverse
	OpReadDIMACS
	OpWriteDIMACS
	OpWriteExtension
	OpInconsistent
	numOps
)

type contract struct {
	name     string
	requires State
	ensures  State
}

// contracts transcribes the require/ensure annotations of the engine API.
// Where the engine leaves a requirement implicit the stricter of the
// plausible sets is used.
var contracts = [numOps]contract{
	OpAdd:                   {"add", Valid, Adding},
	OpAddTerminator:         {"add(0)", Valid, Steady},
	OpClause:                {"clause", Valid, Steady},
	OpAssume:                {"assume", Ready, Steady},
	OpSolve:                 {"solve", Ready, Steady | Satisfied | Unsatisfied},
	OpVal:                   {"val", Satisfied, Satisfied},
	OpFlip:                  {"flip", Satisfied, Satisfied},
	OpFlippable:             {"flippable", Satisfied, Satisfied},
	OpFailed:                {"failed", Unsatisfied, Unsatisfied},
	OpConnect:               {"connect", Valid, Valid},
	OpDisconnect:            {"disconnect", Valid, Valid},
	OpAddObservedVar:        {"add_observed_var", validOrSolving, validOrSolving},
	OpRemoveObservedVar:     {"remove_observed_var", Valid, Valid},
	OpResetObservedVars:     {"reset_observed_vars", Valid, Valid},
	OpIsDecision:            {"is_decision", validOrSolving, validOrSolving},
	OpForceBacktrack:        {"force_backtrack", Solving, Solving},
	OpConstrain:             {"constrain", Valid, Adding},
	OpConstrainTerminator:   {"constrain(0)", Valid, Valid},
	OpConstraintFailed:      {"constraint_failed", Unsatisfied, Unsatisfied},
	OpLookahead:             {"lookahead", Ready, Steady | Satisfied | Unsatisfied},
	OpGenerateCubes:         {"generate_cubes", Ready, Steady | Satisfied | Unsatisfied},
	OpResetAssumptions:      {"reset_assumptions", Ready, Steady},
	OpResetConstraint:       {"reset_constraint", Ready, Steady},
	OpCopySource:            {"copy", Ready, Ready},
	OpCopyDestination:       {"copy(destination)", Configuring, Configuring | Steady},
	OpVars:                  {"vars", validOrSolving, validOrSolving},
	OpReserve:               {"reserve", Ready, Steady},
	OpGet:                   {"get", validOrSolving, validOrSolving},
	OpPrefix:                {"prefix", Valid, Valid},
	OpSet:                   {"set", Configuring, Configuring},
	OpSetLongOption:         {"set_long_option", Configuring, Configuring},
	OpConfigure:             {"configure", Configuring, Configuring},
	OpOptimize:              {"optimize", Ready, Ready},
	OpLimit:                 {"limit", Ready, Ready},
	OpIsValidLimit:          {"is_valid_limit", Valid, Valid},
	OpActive:                {"active", Valid, Valid},
	OpRedundant:             {"redundant", Valid, Valid},
	OpIrredundant:           {"irredundant", Valid, Valid},
	OpSimplify:              {"simplify", Ready, Steady | Satisfied | Unsatisfied},
	OpTerminate:             {"terminate", Solving | Ready, Solving | Ready},
	OpFrozen:                {"frozen", Valid, Valid},
	OpFreeze:                {"freeze", Valid, Valid},
	OpMelt:                  {"melt", Valid, Valid},
	OpFixed:                 {"fixed", Valid, Valid},
	OpPhase:                 {"phase", Valid, Valid},
	OpUnphase:               {"unphase", Valid, Valid},
	OpTraceProof:            {"trace_proof", Configuring, Configuring},
	OpFlushProofTrace:       {"flush_proof_trace", Valid, Valid},
	OpCloseProofTrace:       {"close_proof_trace", Valid, Valid},
	OpConnectProofTracer:    {"connect_proof_tracer", Configuring, Configuring},
	OpDisconnectProofTracer: {"disconnect_proof_tracer", Valid, Valid},
	OpConclude:              {"conclude", Satisfied | Unsatisfied, Satisfied | Unsatisfied},
	OpStatistics:            {"statistics", anyState, anyState},
	OpResources:             {"resources", anyState, anyState},
	OpOptions:               {"options", Valid, Valid},
	OpTraverse:              {"traverse", Valid, Valid},
	OpReadDIMACS:            {"read_dimacs", Configuring, Valid},
	OpWriteDIMACS:           {"write_dimacs", Valid, Valid},
	OpWriteExtension:        {"write_extension", Valid, Valid},
	OpInconsistent:          {"inconsistent", Valid, Valid},
}

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return contracts[op].name
}

// Requires returns the set of states op may be invoked in.
func (op Op) Requires() State { return contracts[op].requires }

// Ensures returns the set of states the engine is in after op returns.
func (op Op) Ensures() State { return contracts[op].ensures }

// ContractError reports an operation attempted outside its required state
// set, or with an argument the engine does not accept. The facade panics with
// a *ContractError instead of letting the engine run into undefined
// behavior.
type ContractError struct {
	Op       Op
	State    State
	Required State
	// Reason is set for argument violations and for postcondition failures.
	Reason string
}

func (e *ContractError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cadical: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("cadical: %s requires state %s, solver is %s", e.Op, e.Required, e.State)
}

// checkRequires is the pure part of the precondition check.
func checkRequires(op Op, current State) error {
	c := contracts[op]
	if current.In(c.requires) {
		return nil
	}
	return &ContractError{Op: op, State: current, Required: c.requires}
}

// checkEnsures validates the state after op returned.
func checkEnsures(op Op, current State) error {
	c := contracts[op]
	if current.In(c.ensures) {
		return nil
	}
	return &ContractError{
		Op:       op,
		State:    current,
		Required: c.ensures,
		Reason:   fmt.Sprintf("engine left state %s, expected %s", current, c.ensures),
	}
}
