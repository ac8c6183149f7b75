// Package milp - depth-first branch-and-bound over the lp relaxation.
//
// Rationale (succinct):
//  1. Subproblems are the base model plus appended single-coefficient bound
//     rows; nothing is copied except the constraint slice header and the
//     bound rows themselves, so a node is cheap to materialize.
//  2. Children relaxations are solved eagerly at branch time: infeasible
//     children vanish immediately, integral children feed the incumbent,
//     and surviving children are ordered tighter-bound-first so the DFS
//     tightens the incumbent early and prunes aggressively.
//  3. Pruning: a subtree dies when its relaxation bound is ≥ best − Eps.
//     Bound validity is inherited from the relaxation (a child's feasible
//     region is a subset of its parent's).
//  4. Budgets are checked at node granularity — every node already pays for
//     a full LP solve, so the check is effectively free.
package milp

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dietlp/lp"
)

// branchBound is one appended bound row: x_v ≤ val (upper) or x_v ≥ val.
type branchBound struct {
	v     int
	upper bool
	val   float64
}

// bbNode couples a bound set with its already-solved relaxation.
type bbNode struct {
	bounds []branchBound
	relax  lp.Solution
}

// engine holds all search data and policies. A dedicated struct (instead of
// closures) keeps the shared state explicit: workers touch only the atomic
// counters and the mutex-guarded incumbent.
type engine struct {
	model lp.Model
	n     int
	opts  Options

	useDeadline bool
	deadline    time.Time

	nodes    atomic.Int64
	limitHit atomic.Bool

	mu       sync.Mutex
	bestCost float64
	bestX    []float64
	found    bool

	grp *errgroup.Group // nil in sequential mode
}

// Solve minimizes m.Obj·x over all rows of m with every x_j a non-negative
// integer. See the package documentation for the status taxonomy.
//
// Errors are reserved for malformed inputs (ErrInvalidOptions, forwarded lp
// shape sentinels) and numeric breakage inside a relaxation; infeasibility,
// unboundedness and expired budgets are Result statuses.
func Solve(m lp.Model, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	e := &engine{model: m, n: m.Vars(), opts: opts}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.bestCost = math.Inf(1)

	// Root relaxation decides the cheap outcomes outright.
	root, err := e.solveNode(nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return Result{Status: Infeasible, Nodes: e.nodes.Load()}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return Result{Status: Unbounded, Nodes: e.nodes.Load()}, nil
	case err != nil:
		return Result{}, err
	}

	if mostFractional(root.X, opts.IntTol) < 0 {
		e.offer(root) // relaxation already integral
	} else {
		rootNode := bbNode{relax: root}
		if opts.Parallelism > 1 {
			g := new(errgroup.Group)
			g.SetLimit(opts.Parallelism)
			e.grp = g
			derr := e.dfs(rootNode)
			if werr := g.Wait(); derr == nil {
				derr = werr
			}
			if derr != nil {
				return Result{}, derr
			}
		} else if err = e.dfs(rootNode); err != nil {
			return Result{}, err
		}
	}

	nodes := e.nodes.Load()
	switch {
	case e.limitHit.Load():
		if e.found {
			return Result{Status: LimitReached, Cost: e.bestCost, X: e.bestX, Nodes: nodes}, nil
		}

		return Result{Status: LimitReached, Nodes: nodes}, nil
	case e.found:
		return Result{Status: Optimal, Cost: e.bestCost, X: e.bestX, Nodes: nodes}, nil
	default:
		return Result{Status: Infeasible, Nodes: nodes}, nil
	}
}

// dfs explores one node whose relaxation is already solved.
func (e *engine) dfs(nd bbNode) error {
	if e.overBudget() {
		return nil
	}
	// The incumbent may have improved since this node was pushed.
	if e.prunable(nd.relax.Obj) {
		return nil
	}

	v := mostFractional(nd.relax.X, e.opts.IntTol)
	if v < 0 {
		e.offer(nd.relax)

		return nil
	}

	// Branch: x_v ≤ ⌊val⌋ and x_v ≥ ⌈val⌉.
	floor := math.Floor(nd.relax.X[v])
	splits := [2]branchBound{
		{v: v, upper: true, val: floor},
		{v: v, upper: false, val: floor + 1},
	}

	kids := make([]bbNode, 0, 2)
	for _, split := range splits {
		if e.overBudget() {
			return nil
		}

		bounds := make([]branchBound, len(nd.bounds)+1)
		copy(bounds, nd.bounds)
		bounds[len(nd.bounds)] = split

		sol, err := e.solveNode(bounds)
		if errors.Is(err, lp.ErrInfeasible) {
			continue
		}
		if err != nil {
			// Includes lp.ErrUnbounded: a child cannot be less constrained
			// than the root, so an unbounded child is numeric breakage and
			// must surface rather than loop.
			return err
		}

		if mostFractional(sol.X, e.opts.IntTol) < 0 {
			e.offer(sol)

			continue
		}
		if !e.prunable(sol.Obj) {
			kids = append(kids, bbNode{bounds: bounds, relax: sol})
		}
	}

	// Tighter (lower) bound first: depth-first with best-bound tie-break.
	if len(kids) == 2 && kids[1].relax.Obj < kids[0].relax.Obj {
		kids[0], kids[1] = kids[1], kids[0]
	}

	for i := range kids {
		kid := kids[i]
		if e.grp != nil && i > 0 && e.grp.TryGo(func() error { return e.dfs(kid) }) {
			continue // sibling subtree handed to a free worker
		}
		if err := e.dfs(kid); err != nil {
			return err
		}
	}

	return nil
}

// solveNode counts one relaxation and solves the base model plus bound rows.
func (e *engine) solveNode(bounds []branchBound) (lp.Solution, error) {
	e.nodes.Add(1)

	cons := make([]lp.Constraint, 0, len(e.model.Constraints)+len(bounds))
	cons = append(cons, e.model.Constraints...)
	var b branchBound
	for _, b = range bounds {
		coeffs := make([]float64, e.n)
		coeffs[b.v] = 1
		if b.upper {
			cons = append(cons, lp.AtMost(coeffs, b.val))
		} else {
			cons = append(cons, lp.AtLeast(coeffs, b.val))
		}
	}

	return lp.Solve(lp.Model{Obj: e.model.Obj, Constraints: cons})
}

// offer commits an integral relaxation as the incumbent if it improves.
// Values are rounded to exact integers and the cost is recomputed from the
// rounded assignment, so the reported cost is an exact weighted sum.
func (e *engine) offer(sol lp.Solution) {
	x := make([]float64, e.n)
	var j int
	for j = 0; j < e.n; j++ {
		x[j] = math.Round(sol.X[j])
		if x[j] == 0 {
			x[j] = 0 // normalize -0
		}
	}
	cost := round1e9(floats.Dot(e.model.Obj, x))

	e.mu.Lock()
	if !e.found || cost < e.bestCost {
		e.found = true
		e.bestCost = cost
		e.bestX = x
	}
	e.mu.Unlock()
}

// prunable reports whether a relaxation bound cannot beat the incumbent.
func (e *engine) prunable(bound float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.found && bound >= e.bestCost-e.opts.Eps
}

// overBudget checks (and latches) the node and wall-clock budgets.
func (e *engine) overBudget() bool {
	if e.limitHit.Load() {
		return true
	}
	if e.opts.NodeLimit > 0 && e.nodes.Load() >= e.opts.NodeLimit {
		e.limitHit.Store(true)

		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.limitHit.Store(true)

		return true
	}

	return false
}

// mostFractional returns the index whose value deviates most from the
// nearest integer (deviation beyond tol; −1 when the vector is integral).
// Ties keep the smallest index for determinism.
func mostFractional(x []float64, tol float64) int {
	var (
		best    = -1
		bestDev = tol
		j       int
		dev     float64
	)
	for j = range x {
		dev = math.Abs(x[j] - math.Round(x[j]))
		if dev > bestDev {
			best = j
			bestDev = dev
		}
	}

	return best
}

// roundScale controls cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
