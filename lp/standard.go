// Package lp - standard-form conversion.
//
// This file turns a Model of range rows into the equality system the
// simplex core consumes:
//
//	minimize   c·x'
//	subject to A·x' = b,  x' ≥ 0,  b ≥ 0
//
// where x' stacks the original variables, slack columns (≤ rows), surplus
// columns (≥ rows) and phase-1 artificial columns (≥ and = rows). The split
// of a range row into its one-sided parts happens here and ONLY here; the
// public API keeps both bounds on a single Constraint.
//
// Complexity: O(m·n) time, O(m·(n+m)) space for the dense system.
package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// relation of a one-sided row after range splitting.
type relation uint8

const (
	relLE relation = iota // Coeffs·x ≤ rhs
	relGE                 // Coeffs·x ≥ rhs
	relEQ                 // Coeffs·x = rhs
)

// onesided is a single split row with a finite right-hand side.
type onesided struct {
	coeffs []float64
	rhs    float64
	rel    relation
}

// standardForm is the assembled equality system plus the bookkeeping the
// two-phase simplex needs: the first artificial column and the initial basis.
type standardForm struct {
	n    int // original variable count
	m    int // equality rows
	cols int // n + slack/surplus + artificials
	art0 int // index of the first artificial column
	nArt int

	a     *mat.Dense // m × cols
	b     []float64  // m, all ≥ 0
	c     []float64  // cols, phase-2 costs (zero beyond originals)
	basis []int      // m, initial basic column per row
}

// expandRows splits every range row into at most two one-sided rows and
// normalizes right-hand sides to be non-negative (flipping the relation
// when a row is negated). Vacuous rows (-Inf, +Inf) are dropped.
//
// Structural impossibilities are reported as ErrInfeasible:
//   - Lo > Hi (reversed range),
//   - Lo = +Inf (nothing is ≥ +Inf),
//   - Hi = -Inf (nothing is ≤ -Inf).
func expandRows(m Model) ([]onesided, error) {
	var (
		out []onesided
		k   int
		lo  float64
		hi  float64
	)
	for k = range m.Constraints {
		lo, hi = m.Constraints[k].Lo, m.Constraints[k].Hi
		if math.IsInf(lo, 1) || math.IsInf(hi, -1) || lo > hi {
			return nil, ErrInfeasible
		}
		if math.IsInf(lo, -1) && math.IsInf(hi, 1) {
			continue // vacuous
		}
		if lo == hi {
			out = append(out, newOnesided(m.Constraints[k].Coeffs, lo, relEQ))

			continue
		}
		if !math.IsInf(hi, 1) {
			out = append(out, newOnesided(m.Constraints[k].Coeffs, hi, relLE))
		}
		if !math.IsInf(lo, -1) {
			out = append(out, newOnesided(m.Constraints[k].Coeffs, lo, relGE))
		}
	}

	return out, nil
}

// newOnesided copies the coefficient row (the conversion must never mutate
// the caller's Model) and normalizes the right-hand side sign.
func newOnesided(coeffs []float64, rhs float64, rel relation) onesided {
	row := onesided{coeffs: make([]float64, len(coeffs)), rhs: rhs, rel: rel}
	copy(row.coeffs, coeffs)
	if row.rhs < 0 {
		var j int
		for j = range row.coeffs {
			row.coeffs[j] = -row.coeffs[j]
		}
		row.rhs = -row.rhs
		switch row.rel {
		case relLE:
			row.rel = relGE
		case relGE:
			row.rel = relLE
		case relEQ:
			// equality is sign-agnostic
		}
	}

	return row
}

// buildStandard lays out the dense equality system:
//
//	columns [0, n)          original variables
//	columns [n, art0)       slack (≤) and surplus (≥), one per such row
//	columns [art0, cols)    artificials, one per ≥ or = row
//
// The initial basis is the slack column for ≤ rows and the artificial for
// ≥ / = rows, which is feasible because every b entry is non-negative.
func buildStandard(n int, rows []onesided) *standardForm {
	var (
		m     = len(rows)
		nSS   int // slack + surplus columns
		nArt  int
		i     int
		j     int
		ssCol int
		aCol  int
	)
	for i = range rows {
		switch rows[i].rel {
		case relLE:
			nSS++
		case relGE:
			nSS++
			nArt++
		case relEQ:
			nArt++
		}
	}

	sf := &standardForm{
		n:    n,
		m:    m,
		cols: n + nSS + nArt,
		art0: n + nSS,
		nArt: nArt,
	}
	sf.a = mat.NewDense(m, sf.cols, nil)
	sf.b = make([]float64, m)
	sf.c = make([]float64, sf.cols)
	sf.basis = make([]int, m) // phase-2 costs in sf.c are filled by Solve

	ssCol = n
	aCol = sf.art0
	for i = range rows {
		for j = 0; j < n; j++ {
			sf.a.Set(i, j, rows[i].coeffs[j])
		}
		sf.b[i] = rows[i].rhs
		switch rows[i].rel {
		case relLE:
			sf.a.Set(i, ssCol, 1)
			sf.basis[i] = ssCol
			ssCol++
		case relGE:
			sf.a.Set(i, ssCol, -1)
			ssCol++
			sf.a.Set(i, aCol, 1)
			sf.basis[i] = aCol
			aCol++
		case relEQ:
			sf.a.Set(i, aCol, 1)
			sf.basis[i] = aCol
			aCol++
		}
	}

	return sf
}
