// Package dietlp is a small, self-contained linear / integer programming
// core built around the classic Diet Problem: choose non-negative integer
// serving counts of foods so that every nutrient total lands inside its
// [min, max] range, total volume stays under a cap, and total cost is minimal.
//
// 🚀 What is dietlp?
//
//	A deterministic, pure-Go optimization core with no external solver binary:
//		• Model building: foods, nutrients and per-serving amounts validated
//		  into an immutable Problem, then normalized into a uniform list of
//		  {coefficients, lower, upper} range rows
//		• Continuous engine: a two-phase dense simplex over the standard-form
//		  conversion (slack / surplus / artificial columns, Bland's rule)
//		• Integer engine: depth-first branch-and-bound on the LP relaxation
//		  with most-fractional branching, bound pruning and optional
//		  time / node budgets ("anytime" results)
//		• Reporting: a stable Summary with the chosen servings and recomputed
//		  nutrient / volume diagnostics for verification
//
// ✨ Why choose dietlp?
//
//   - Outcomes are values – Infeasible / Unbounded / LimitReached are Result
//     statuses, never panics and never ambiguous errors
//   - Strict sentinels – malformed input fails fast with errors.Is-friendly
//     sentinels before any solving work begins
//   - Deterministic – no randomness; identical inputs give identical costs
//   - Pure Go – no cgo, no solver process to install
//
// Everything is organized under four subpackages, leaf-first:
//
//	lp/     — normalized range-constraint models + two-phase simplex
//	milp/   — branch-and-bound integer engine on top of lp
//	diet/   — the Diet Problem model builder (validation + normalization)
//	report/ — pure Result → Summary transformation
//
// Quick sketch:
//
//	foods → diet.NewProblem → lp.Model → milp.Solve → report.Build
//
// Dive into each package's doc.go for contracts, complexity notes and the
// worked nine-food scenario.
//
//	go get github.com/katalvlaran/dietlp
package dietlp
