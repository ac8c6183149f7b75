// Package diet builds validated, immutable Diet Problem instances and
// normalizes them into the uniform range-row models the lp and milp engines
// consume.
//
// # The problem
//
// Given a menu of foods (each with a positive unit cost, a positive unit
// volume and a per-serving nutrient profile), nutrient requirements (each a
// [Min, Max] range, Max possibly unbounded) and a global volume cap, choose
// non-negative integer serving counts x_i that
//
//	minimize   Σ_i Cost_i · x_i
//	subject to Min_j ≤ Σ_i amount_ij · x_i ≤ Max_j   for every nutrient j
//	           Σ_i Volume_i · x_i ≤ MaxVolume
//	           x_i ≥ 0, integer
//
// # Construction and validation
//
// NewProblem is the only constructor. It performs staged validation and
// fails fast — before any solving work — on structural defects, each a
// distinct sentinel wrapped in ErrMalformedData:
//
//	stage 1: non-empty food and nutrient sets, positive (or +Inf) volume cap;
//	stage 2: foods — non-empty unique names, finite positive cost and volume;
//	stage 3: nutrients — non-empty unique names, finite non-negative Min,
//	         non-negative Max (+Inf allowed);
//	stage 4: amounts — declared food and nutrient references only, finite
//	         non-negative per-serving values, no duplicate (food, nutrient)
//	         pairs. Unlisted pairs default to zero.
//
// Min > Max is deliberately NOT rejected here: an empty nutrient range is a
// property of the data, discovered as an Infeasible solve outcome, not a
// shape defect.
//
// A constructed Problem is read-only; accessors return copies. One Problem
// may be solved any number of times, concurrently or not.
//
// # Normalization
//
// Problem.Model enumerates the constraint rows eagerly into an lp.Model:
// one range row per nutrient and one volume row, objective = costs. There
// are no deferred rule objects; the model is plain data from here on.
//
// # Errors
//
// All sentinels satisfy errors.Is(err, ErrMalformedData); see types.go for
// the full set.
package diet
