// Package milp solves small mixed-integer minimization problems by
// branch-and-bound over the lp package's continuous relaxation. Every
// variable of the model is treated as a non-negative integer; callers who
// want the continuous reading of the same model use lp.Solve directly.
//
// # Algorithm
//
// Solve first runs the LP relaxation of the whole model:
//
//   - relaxation infeasible  → Result{Status: Infeasible}
//   - relaxation unbounded   → Result{Status: Unbounded}
//   - relaxation integral    → Result{Status: Optimal} immediately
//
// Otherwise a depth-first branch-and-bound search starts:
//
//  1. Branching rule: the MOST FRACTIONAL variable (deviation closest to
//     0.5 from the nearest integer; smallest index on ties) splits the node
//     into x_i ≤ ⌊v⌋ and x_i ≥ ⌈v⌉ children, expressed as appended
//     single-coefficient bound rows.
//  2. Both children's relaxations are solved eagerly. Infeasible children
//     are dropped; integral children update the incumbent; fractional
//     children are pruned when their bound is no better than the incumbent
//     (bound ≥ best − Eps) and otherwise explored tighter-bound-first, so
//     the DFS dives toward good integer solutions quickly.
//  3. A variable counts as integral within IntTol (1e-6 default) of the
//     nearest integer; accepted assignments are rounded and their cost
//     recomputed from the rounded values, so reported costs are exact sums.
//
// The search tree is finite whenever the feasible region is bounded (for
// diet-style models the volume cap bounds every variable by Vmax/V_i); the
// optional budgets below guard pathological inputs regardless.
//
// # Budgets ("anytime" behavior)
//
// Options.TimeLimit and Options.NodeLimit stop the search early. On expiry
// Solve returns Status LimitReached carrying the best integer-feasible
// incumbent found so far (Result.X is nil when none exists). A zero budget
// means unlimited.
//
// # Parallelism
//
// With Options.Parallelism > 1, sibling subtrees may be explored by up to
// that many goroutines (errgroup with TryGo; a subtree runs inline when no
// worker slot is free). Workers share only the read-only model, one
// mutex-guarded incumbent record and an atomic node counter, so bound
// pruning always sees a current best. The default is sequential.
//
// # Outcomes vs. errors
//
// Infeasible, Unbounded and LimitReached are legitimate solve outcomes and
// are reported as Result statuses, never as errors. Errors are reserved for
// malformed models (forwarded lp sentinels such as lp.ErrEmptyModel) and for
// numeric breakage inside the relaxation (lp.ErrIterLimit, lp.ErrSingular).
//
// Costs are stabilized to 1e-9 absolute precision.
package milp
