// Package milp - result types and sentinel error set.
package milp

import "errors"

// ErrInvalidOptions is returned when an Options field is out of range
// (negative tolerance, negative budget, and so on).
var ErrInvalidOptions = errors.New("milp: invalid options")

// Status classifies the outcome of a branch-and-bound run. All four values
// are legitimate results, not errors; callers must branch on the variant.
type Status uint8

const (
	// Optimal: an integer-feasible assignment with proven minimal cost.
	Optimal Status = iota

	// Infeasible: no integer assignment satisfies every constraint.
	Infeasible

	// Unbounded: the relaxation admits an unbounded improving ray. Excluded
	// structurally for positive-cost models but detected and reported rather
	// than looped on.
	Unbounded

	// LimitReached: a time or node budget expired before optimality was
	// proven; the Result carries the best incumbent found, if any.
	LimitReached
)

// String implements fmt.Stringer for diagnostics and reports.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case LimitReached:
		return "limit reached"
	default:
		return "unknown"
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Status selects which of the remaining fields are meaningful.
	Status Status

	// Cost is the achieved objective for Optimal, or the best incumbent
	// cost for LimitReached when X is non-nil. Stabilized to 1e-9.
	Cost float64

	// X holds one integral value per variable, in model order. Nil for
	// Infeasible, Unbounded, and for LimitReached without an incumbent.
	X []float64

	// Nodes counts solved relaxations (the root included).
	Nodes int64
}
