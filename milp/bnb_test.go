// Package milp_test validates the branch-and-bound engine on tiny models.
// Focus:
//  1. Status taxonomy: Optimal / Infeasible / Unbounded / LimitReached.
//  2. Branching correctness on fractional roots.
//  3. Option validation sentinels.
//  4. Budget ("anytime") behavior.
package milp_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dietlp/lp"
	"github.com/katalvlaran/dietlp/milp"
)

// TestSolve_IntegralRoot: the relaxation is already integral, so no
// branching happens and exactly one node is solved.
func TestSolve_IntegralRoot(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1, 1},
		Constraints: []lp.Constraint{lp.AtLeast([]float64{1, 0}, 2)},
	}

	res, err := milp.Solve(m, milp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, milp.Optimal, res.Status)
	require.InDelta(t, 2.0, res.Cost, 1e-9)
	require.Equal(t, []float64{2, 0}, res.X)
	require.Equal(t, int64(1), res.Nodes)
}

// TestSolve_FractionalRoot: min x with x ≥ 2.5 relaxes to 2.5; the down
// branch (x ≤ 2) is infeasible and the up branch lands on 3.
func TestSolve_FractionalRoot(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1},
		Constraints: []lp.Constraint{lp.AtLeast([]float64{1}, 2.5)},
	}

	res, err := milp.Solve(m, milp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, milp.Optimal, res.Status)
	require.InDelta(t, 3.0, res.Cost, 1e-9)
	require.Equal(t, []float64{3}, res.X)
	require.Greater(t, res.Nodes, int64(1))
}

// TestSolve_RoundsUpSum: min x+y with x+y ≥ 1.5 has continuous optimum 1.5
// but integer optimum 2.
func TestSolve_RoundsUpSum(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1, 1},
		Constraints: []lp.Constraint{lp.AtLeast([]float64{1, 1}, 1.5)},
	}

	res, err := milp.Solve(m, milp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, milp.Optimal, res.Status)
	require.InDelta(t, 2.0, res.Cost, 1e-9)
}

// TestSolve_IntegerInfeasible: 2x + 2y = 3 has continuous solutions but no
// integer ones; the LP is feasible, the MIP is not.
func TestSolve_IntegerInfeasible(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1, 1},
		Constraints: []lp.Constraint{lp.Exactly([]float64{2, 2}, 3)},
	}

	res, err := milp.Solve(m, milp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, milp.Infeasible, res.Status)
	require.Nil(t, res.X)
}

// TestSolve_LPInfeasible: contradictory rows fail at the root.
func TestSolve_LPInfeasible(t *testing.T) {
	m := lp.Model{
		Obj: []float64{1},
		Constraints: []lp.Constraint{
			lp.AtMost([]float64{1}, 1),
			lp.AtLeast([]float64{1}, 2),
		},
	}

	res, err := milp.Solve(m, milp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, milp.Infeasible, res.Status)
	require.Equal(t, int64(1), res.Nodes)
}

// TestSolve_Unbounded: a negative cost with nothing binding is reported as
// a status, not an error, and does not loop.
func TestSolve_Unbounded(t *testing.T) {
	m := lp.Model{Obj: []float64{-1}}

	res, err := milp.Solve(m, milp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, milp.Unbounded, res.Status)
	require.Nil(t, res.X)
}

// TestSolve_BadModel: lp shape sentinels pass through as errors.
func TestSolve_BadModel(t *testing.T) {
	_, err := milp.Solve(lp.Model{}, milp.DefaultOptions())
	require.ErrorIs(t, err, lp.ErrEmptyModel)
}

// TestSolve_InvalidOptions: every out-of-range knob is rejected up front.
func TestSolve_InvalidOptions(t *testing.T) {
	m := lp.Model{Obj: []float64{1}}

	for _, opts := range []milp.Options{
		{IntTol: 0, Eps: 0},                     // IntTol must be > 0
		{IntTol: 0.5, Eps: 0},                   // and < 0.5
		{IntTol: 1e-6, Eps: -1},                 // Eps ≥ 0
		{IntTol: 1e-6, TimeLimit: -time.Second}, // TimeLimit ≥ 0
		{IntTol: 1e-6, NodeLimit: -1},           // NodeLimit ≥ 0
		{IntTol: math.NaN(), Eps: 0},            // NaN fails the range check
	} {
		_, err := milp.Solve(m, opts)
		require.ErrorIs(t, err, milp.ErrInvalidOptions)
	}
}

// TestSolve_NodeLimit: a budget of one node stops before any branching and
// reports LimitReached with no incumbent.
func TestSolve_NodeLimit(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1},
		Constraints: []lp.Constraint{lp.AtLeast([]float64{1}, 2.5)},
	}

	opts := milp.DefaultOptions()
	opts.NodeLimit = 1

	res, err := milp.Solve(m, opts)
	require.NoError(t, err)
	require.Equal(t, milp.LimitReached, res.Status)
	require.Nil(t, res.X)
	require.Equal(t, int64(1), res.Nodes)
}

// TestSolve_TimeLimit: an already-expired deadline still returns cleanly.
// The root relaxation always runs, so the fractional root is counted and
// the search stops at the first budget check.
func TestSolve_TimeLimit(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1},
		Constraints: []lp.Constraint{lp.AtLeast([]float64{1}, 2.5)},
	}

	opts := milp.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := milp.Solve(m, opts)
	require.NoError(t, err)
	require.Equal(t, milp.LimitReached, res.Status)
}

// TestSolve_IntegralRootBeatsNodeLimit: an integral root is Optimal even
// under the tightest budget — the limit only interrupts branching.
func TestSolve_IntegralRootBeatsNodeLimit(t *testing.T) {
	m := lp.Model{
		Obj:         []float64{1},
		Constraints: []lp.Constraint{lp.AtLeast([]float64{1}, 2)},
	}

	opts := milp.DefaultOptions()
	opts.NodeLimit = 1

	res, err := milp.Solve(m, opts)
	require.NoError(t, err)
	require.Equal(t, milp.Optimal, res.Status)
	require.InDelta(t, 2.0, res.Cost, 1e-9)
}

// TestStatus_String covers the Stringer used by reports.
func TestStatus_String(t *testing.T) {
	require.Equal(t, "optimal", milp.Optimal.String())
	require.Equal(t, "infeasible", milp.Infeasible.String())
	require.Equal(t, "unbounded", milp.Unbounded.String())
	require.Equal(t, "limit reached", milp.LimitReached.String())
	require.Equal(t, "unknown", milp.Status(255).String())
}
