// Package lp - model types and sentinel error set.
//
// This file defines ONLY the value types consumed by Solve and the
// package-level sentinels. All solver paths MUST return these sentinels and
// tests MUST check them via errors.Is. No code here panics on user input.
package lp

import (
	"errors"
	"math"
)

var (
	// ErrEmptyModel is returned when the model has no variables.
	ErrEmptyModel = errors.New("lp: empty model")

	// ErrDimensionMismatch is returned when a constraint row length differs
	// from the number of objective coefficients.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNaNCoefficient is returned when NaN appears in the objective, a
	// constraint row, or a bound. ±Inf bounds are legal; ±Inf coefficients
	// are not.
	ErrNaNCoefficient = errors.New("lp: NaN or Inf coefficient")

	// ErrInfeasible signals that no x ≥ 0 satisfies every constraint row.
	// A row with Lo > Hi is infeasible by construction and reported the
	// same way.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded signals that the objective can decrease without limit
	// over the feasible region.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrIterLimit is the defensive pivot ceiling. Bland's rule already
	// excludes cycling, so reaching this sentinel indicates a numerically
	// pathological instance.
	ErrIterLimit = errors.New("lp: simplex iteration limit exceeded")

	// ErrSingular is defensive: a chosen pivot element collapsed below
	// tolerance, which a correct ratio test should never allow.
	ErrSingular = errors.New("lp: singular pivot")
)

// Constraint is one normalized range row: Lo ≤ Coeffs·x ≤ Hi.
//
//   - Lo may be math.Inf(-1) (no lower bound).
//   - Hi may be math.Inf(1) (no upper bound).
//   - Lo == Hi expresses an equality.
//
// The row carries both bounds at the API level; splitting into one-sided
// rows happens only inside the standard-form conversion.
type Constraint struct {
	Coeffs []float64
	Lo, Hi float64
}

// AtMost builds the row Coeffs·x ≤ hi.
func AtMost(coeffs []float64, hi float64) Constraint {
	return Constraint{Coeffs: coeffs, Lo: math.Inf(-1), Hi: hi}
}

// AtLeast builds the row Coeffs·x ≥ lo.
func AtLeast(coeffs []float64, lo float64) Constraint {
	return Constraint{Coeffs: coeffs, Lo: lo, Hi: math.Inf(1)}
}

// Between builds the range row lo ≤ Coeffs·x ≤ hi.
func Between(coeffs []float64, lo, hi float64) Constraint {
	return Constraint{Coeffs: coeffs, Lo: lo, Hi: hi}
}

// Exactly builds the equality row Coeffs·x = v.
func Exactly(coeffs []float64, v float64) Constraint {
	return Constraint{Coeffs: coeffs, Lo: v, Hi: v}
}

// Model is a fully enumerated minimization problem over x ≥ 0.
type Model struct {
	// Obj holds one cost coefficient per variable; Solve minimizes Obj·x.
	Obj []float64

	// Constraints is the uniform row list. Rows with Lo=-Inf and Hi=+Inf
	// are vacuous and ignored.
	Constraints []Constraint
}

// Vars reports the number of decision variables.
func (m Model) Vars() int { return len(m.Obj) }

// Solution is an optimal basic feasible assignment.
type Solution struct {
	// X holds one value per variable, in model order.
	X []float64

	// Obj is the achieved objective value, stabilized to 1e-9.
	Obj float64
}

// validate performs the shape and numeric-policy checks shared by all
// entry points. Rows with reversed finite bounds are NOT rejected here;
// they surface as ErrInfeasible from the solve (a data property, not a
// shape defect).
//
// Complexity: O(m·n).
func (m Model) validate() error {
	if len(m.Obj) == 0 {
		return ErrEmptyModel
	}
	var (
		n = len(m.Obj)
		j int
		k int
	)
	for j = 0; j < n; j++ {
		if math.IsNaN(m.Obj[j]) || math.IsInf(m.Obj[j], 0) {
			return ErrNaNCoefficient
		}
	}
	for k = range m.Constraints {
		if len(m.Constraints[k].Coeffs) != n {
			return ErrDimensionMismatch
		}
		for j = 0; j < n; j++ {
			if math.IsNaN(m.Constraints[k].Coeffs[j]) || math.IsInf(m.Constraints[k].Coeffs[j], 0) {
				return ErrNaNCoefficient
			}
		}
		if math.IsNaN(m.Constraints[k].Lo) || math.IsNaN(m.Constraints[k].Hi) {
			return ErrNaNCoefficient
		}
	}

	return nil
}

// roundScale controls final objective stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps objective values stable across platforms without affecting optimality.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
