package cadical

import (
	"fmt"
	"math"
)

// validLit reports whether lit may cross into the engine as a literal: it
// must fit a C int and be neither 0 nor INT_MIN.
func validLit(lit int) bool {
	return lit != 0 && lit > math.MinInt32 && lit <= math.MaxInt32
}

func checkLit(op Op, lit int) error {
	if validLit(lit) {
		return nil
	}
	return &ContractError{Op: op, Reason: fmt.Sprintf("invalid literal %d", lit)}
}

// checkLitOrZero accepts the clause terminator as well.
func checkLitOrZero(op Op, lit int) error {
	if lit == 0 {
		return nil
	}
	return checkLit(op, lit)
}

func checkClause(op Op, lits []int) error {
	for _, lit := range lits {
		if err := checkLit(op, lit); err != nil {
			return err
		}
	}
	return nil
}

// Var returns the variable index of lit.
func Var(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}

// clamp32 limits v to the range of a C int. Option values, limits and
// effort levels are clamped rather than truncated when they cross.
func clamp32(v int) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return v
}
