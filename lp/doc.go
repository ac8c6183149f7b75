// Package lp implements a minimal linear-programming core over normalized
// range-constraint models. It is the continuous half of the dietlp engine:
// the milp package calls into it for every branch-and-bound relaxation, and
// callers that prefer a continuous (non-integer) reading of a model can use
// it directly.
//
// # Model
//
// A Model is a uniform, fully enumerated list of range rows over n variables:
//
//	minimize   Obj · x
//	subject to Lo_k ≤ Coeffs_k · x ≤ Hi_k   for every Constraint k
//	           x ≥ 0
//
// Each Constraint carries both bounds in one row (Lo may be math.Inf(-1),
// Hi may be math.Inf(1), Lo == Hi is an equality). No deferred or lazy
// constraint objects exist anywhere: builders enumerate rows up front and
// the solver consumes them as plain data.
//
// # Algorithm
//
// Solve runs the classic two-phase dense simplex:
//
//  1. standardize — every range row is split into at most two one-sided rows,
//     right-hand sides are normalized to be non-negative, slack columns are
//     attached to ≤ rows, surplus plus artificial columns to ≥ rows, and a
//     bare artificial to equality rows.
//  2. phase 1 — minimize the artificial sum from the all-artificial basis;
//     a positive optimum (beyond tolerance) proves infeasibility, otherwise
//     remaining basic artificials are pivoted out (or sit on redundant rows
//     at level zero).
//  3. phase 2 — re-price with the true objective and iterate to optimality.
//
// Pivoting uses Bland's rule (smallest eligible entering index, smallest
// basis index on ratio-test ties), which excludes cycling; an iteration
// ceiling still guards the loop defensively (ErrIterLimit).
//
// Complexity:
//   - Per pivot: O(m·(n+m)) row operations on the dense tableau.
//   - Memory:    O(m·(n+m)) for the tableau.
//
// # Errors
//
//	ErrEmptyModel        - no variables in Obj.
//	ErrDimensionMismatch - a Constraint row length differs from len(Obj).
//	ErrNaNCoefficient    - NaN in the objective, a row, or a bound.
//	ErrInfeasible        - no x ≥ 0 satisfies all rows (includes Lo > Hi rows).
//	ErrUnbounded         - the objective has no finite minimum.
//	ErrIterLimit         - defensive iteration ceiling reached.
//	ErrSingular          - defensive; a pivot column degenerated numerically.
//
// Infeasible and unbounded are reported as errors at this level because a
// continuous solve has no partial result to return; the milp package maps
// them onto Result statuses.
//
// Costs returned by Solve are stabilized to 1e-9 absolute precision to keep
// results identical across platforms.
package lp
