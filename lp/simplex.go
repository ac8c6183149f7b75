// Package lp - two-phase dense tableau simplex.
//
// The solver keeps the classic full tableau: the constraint block is held as
// B⁻¹A throughout (updated in place by pivots), b as B⁻¹b, plus one reduced-
// cost row re-priced at each phase boundary. Entering columns follow Bland's
// rule (smallest eligible index); the ratio test breaks ties on the smallest
// basis index. Together these exclude cycling, so the iteration ceiling is a
// purely defensive guard.
//
// Row kernels (scaling and elimination) go through gonum's floats package to
// keep the pivot loop allocation-free.
package lp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// pivotTol is the minimum magnitude for a usable pivot element and the
	// threshold below which a reduced cost counts as non-negative.
	pivotTol = 1e-9

	// feasTol bounds the acceptable phase-1 residual: a larger artificial
	// sum proves infeasibility.
	feasTol = 1e-7

	// ratioTieTol groups ratio-test candidates that are numerically equal
	// before the smallest-basis-index tie-break.
	ratioTieTol = 1e-12

	// zeroClampTol absorbs tiny negative drift in basic values after a pivot.
	zeroClampTol = 1e-11
)

// tableau is the mutable simplex state over a standardForm.
type tableau struct {
	m, cols int
	a       *mat.Dense // m × cols, kept as B⁻¹A
	b       []float64  // m, kept as B⁻¹b (≥ 0 up to drift)
	basis   []int      // m, basic column per row
	red     []float64  // cols, reduced costs for the current phase
}

func newTableau(sf *standardForm) *tableau {
	return &tableau{
		m:     sf.m,
		cols:  sf.cols,
		a:     sf.a,
		b:     sf.b,
		basis: sf.basis,
		red:   make([]float64, sf.cols),
	}
}

// price recomputes the reduced-cost row for cost vector cv against the
// current basis: red_j = cv_j − Σ_i cv[basis[i]] · a[i][j]. Valid at any
// point because a is maintained as B⁻¹A.
//
// Complexity: O(m·cols).
func (t *tableau) price(cv []float64) {
	copy(t.red, cv)
	var (
		i  int
		cb float64
	)
	for i = 0; i < t.m; i++ {
		cb = cv[t.basis[i]]
		if cb != 0 {
			floats.AddScaled(t.red, -cb, t.a.RawRowView(i))
		}
	}
}

// objective evaluates cv over the current basic solution.
func (t *tableau) objective(cv []float64) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < t.m; i++ {
		sum += cv[t.basis[i]] * t.b[i]
	}

	return sum
}

// pivot performs the Gauss-Jordan step that makes column c basic in row r.
//
// Complexity: O(m·cols).
func (t *tableau) pivot(r, c int) error {
	piv := t.a.At(r, c)
	if math.Abs(piv) < pivotTol {
		return ErrSingular
	}

	prow := t.a.RawRowView(r)
	floats.Scale(1/piv, prow)
	t.b[r] /= piv

	var (
		i int
		f float64
	)
	for i = 0; i < t.m; i++ {
		if i == r {
			continue
		}
		f = t.a.At(i, c)
		if f == 0 {
			continue
		}
		floats.AddScaled(t.a.RawRowView(i), -f, prow)
		t.b[i] -= f * t.b[r]
		if t.b[i] < 0 && t.b[i] > -zeroClampTol {
			t.b[i] = 0
		}
	}

	// Keep the reduced-cost row consistent without a full re-price.
	f = t.red[c]
	if f != 0 {
		floats.AddScaled(t.red, -f, prow)
	}

	t.basis[r] = c

	return nil
}

// iterate runs pivots until optimality for the currently priced objective.
// Only columns below limit may enter the basis; phase 2 passes art0 so that
// artificial columns stay out.
//
// Returns nil at optimality, ErrUnbounded when an improving column has no
// positive entry, ErrIterLimit past the defensive ceiling.
func (t *tableau) iterate(limit, maxIters int) error {
	var (
		iter  int
		e     int
		r     int
		i     int
		j     int
		d     float64
		ratio float64
		best  float64
	)
	for iter = 0; iter < maxIters; iter++ {
		// Entering column: Bland — smallest index with a negative reduced cost.
		e = -1
		for j = 0; j < limit; j++ {
			if t.red[j] < -pivotTol {
				e = j

				break
			}
		}
		if e < 0 {
			return nil // optimal for this phase
		}

		// Ratio test: min b_i / a_ie over a_ie > 0; ties → smallest basis index.
		r = -1
		best = math.Inf(1)
		for i = 0; i < t.m; i++ {
			d = t.a.At(i, e)
			if d <= pivotTol {
				continue
			}
			ratio = t.b[i] / d
			if ratio < best-ratioTieTol {
				best = ratio
				r = i
			} else if ratio <= best+ratioTieTol && r >= 0 && t.basis[i] < t.basis[r] {
				r = i
			}
		}
		if r < 0 {
			return ErrUnbounded
		}

		if err := t.pivot(r, e); err != nil {
			return err
		}
	}

	return ErrIterLimit
}

// Solve minimizes m.Obj·x over all rows of m with x ≥ 0 and returns an
// optimal basic feasible solution.
//
// Contracts:
//   - Shape and numeric policy per Model.validate (sentinels from types.go).
//   - A model with only vacuous (or no) rows solves trivially: x = 0 when
//     every cost is non-negative, ErrUnbounded otherwise.
//
// Errors: ErrEmptyModel, ErrDimensionMismatch, ErrNaNCoefficient,
// ErrInfeasible, ErrUnbounded, ErrIterLimit, ErrSingular.
//
// Complexity: O(pivots · m·(n+m)); the pivot count is finite under Bland's
// rule and additionally capped defensively.
func Solve(m Model) (Solution, error) {
	if err := m.validate(); err != nil {
		return Solution{}, err
	}

	rows, err := expandRows(m)
	if err != nil {
		return Solution{}, err
	}

	n := len(m.Obj)
	if len(rows) == 0 {
		// Unconstrained: any negative cost lets x_j grow without limit.
		var j int
		for j = 0; j < n; j++ {
			if m.Obj[j] < 0 {
				return Solution{}, ErrUnbounded
			}
		}

		return Solution{X: make([]float64, n), Obj: 0}, nil
	}

	sf := buildStandard(n, rows)
	copy(sf.c, m.Obj) // phase-2 costs; slack/surplus/artificial columns stay 0

	t := newTableau(sf)
	maxIters := 1000 + 200*(sf.m+sf.cols)

	// Phase 1: drive the artificial sum to zero.
	if sf.nArt > 0 {
		c1 := make([]float64, sf.cols)
		var j int
		for j = sf.art0; j < sf.cols; j++ {
			c1[j] = 1
		}
		t.price(c1)
		if err = t.iterate(sf.cols, maxIters); err != nil {
			if err == ErrUnbounded {
				// The artificial sum is bounded below by zero; an unbounded
				// ray here is numeric breakage, not a model property.
				return Solution{}, ErrSingular
			}

			return Solution{}, err
		}
		if t.objective(c1) > feasTol {
			return Solution{}, ErrInfeasible
		}
		if err = t.evictArtificials(sf.art0); err != nil {
			return Solution{}, err
		}
	}

	// Phase 2: true costs, artificial columns barred from entering.
	t.price(sf.c)
	if err = t.iterate(sf.art0, maxIters); err != nil {
		return Solution{}, err
	}

	// Extract the original variables from the basic solution.
	x := make([]float64, n)
	var i int
	for i = 0; i < t.m; i++ {
		if t.basis[i] < n {
			if t.b[i] < 0 {
				x[t.basis[i]] = 0 // clamp drift; feasibility holds within tolerance
			} else {
				x[t.basis[i]] = t.b[i]
			}
		}
	}

	return Solution{X: x, Obj: round1e9(floats.Dot(m.Obj, x))}, nil
}

// evictArtificials pivots basic artificials (stuck at level zero after a
// feasible phase 1) onto any structural column with a usable coefficient.
// A row with no such coefficient is redundant: it is zero across every
// structural column, so no later pivot can move its artificial off zero.
//
// Complexity: O(m²·cols) worst case, in practice a handful of pivots.
func (t *tableau) evictArtificials(art0 int) error {
	var (
		i int
		j int
	)
	for i = 0; i < t.m; i++ {
		if t.basis[i] < art0 {
			continue
		}
		for j = 0; j < art0; j++ {
			if math.Abs(t.a.At(i, j)) > pivotTol {
				if err := t.pivot(i, j); err != nil {
					return err
				}

				break
			}
		}
	}

	return nil
}
