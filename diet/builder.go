// Package diet - staged validation and model normalization.
//
// Design principles:
//   - Deterministic, side-effect free: NewProblem either returns a complete
//     immutable Problem or a sentinel from types.go; nothing half-built.
//   - Fail fast: the first defect aborts construction, wrapped with enough
//     context (the offending identifier) for the caller to act on.
//   - Eager normalization: Model enumerates every constraint row up front;
//     the solvers see plain data, never rule callbacks.
package diet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dietlp/lp"
)

// Minimum builds a nutrient with a lower bound only (Max unbounded).
func Minimum(name string, min float64) Nutrient {
	return Nutrient{Name: name, Min: min, Max: math.Inf(1)}
}

// Range builds a nutrient whose total must land inside [min, max].
func Range(name string, min, max float64) Nutrient {
	return Nutrient{Name: name, Min: min, Max: max}
}

// NewProblem validates raw tabular data and assembles an immutable Problem.
//
// Contracts:
//   - foods and nutrients are non-empty with unique, non-empty names;
//   - every food has finite positive Cost and Volume;
//   - every nutrient has finite non-negative Min and non-negative Max
//     (math.Inf(1) allowed for Max); Min > Max is accepted here and shows
//     up as an Infeasible solve outcome;
//   - every amount references declared identifiers, is finite and
//     non-negative, and no (food, nutrient) pair repeats;
//   - maxVolume is positive (math.Inf(1) means no cap).
//
// Errors: sentinels from types.go, all wrapping ErrMalformedData.
//
// Complexity: O(F·N) time and space for the dense content matrix.
func NewProblem(foods []Food, nutrients []Nutrient, amounts []Amount, maxVolume float64) (*Problem, error) {
	// Stage 1: set-level shape.
	if len(foods) == 0 {
		return nil, ErrNoFoods
	}
	if len(nutrients) == 0 {
		return nil, ErrNoNutrients
	}
	if math.IsNaN(maxVolume) || maxVolume <= 0 {
		return nil, ErrNonPositiveMaxVolume
	}

	p := &Problem{
		foods:     make([]Food, len(foods)),
		nutrients: make([]Nutrient, len(nutrients)),
		amount:    make([]float64, len(foods)*len(nutrients)),
		maxVolume: maxVolume,
		foodIdx:   make(map[string]int, len(foods)),
		nutrIdx:   make(map[string]int, len(nutrients)),
	}
	copy(p.foods, foods)
	copy(p.nutrients, nutrients)

	// Stage 2: foods.
	var i int
	for i = range p.foods {
		f := &p.foods[i]
		if f.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := p.foodIdx[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFood, f.Name)
		}
		if !(f.Cost > 0) || math.IsInf(f.Cost, 0) {
			return nil, fmt.Errorf("%w: %q", ErrNonPositiveCost, f.Name)
		}
		if !(f.Volume > 0) || math.IsInf(f.Volume, 0) {
			return nil, fmt.Errorf("%w: %q", ErrNonPositiveVolume, f.Name)
		}
		p.foodIdx[f.Name] = i
	}

	// Stage 3: nutrients.
	var j int
	for j = range p.nutrients {
		nu := &p.nutrients[j]
		if nu.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := p.nutrIdx[nu.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNutrient, nu.Name)
		}
		if math.IsNaN(nu.Min) || math.IsInf(nu.Min, 0) || nu.Min < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNegativeBound, nu.Name)
		}
		if math.IsNaN(nu.Max) || nu.Max < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNegativeBound, nu.Name)
		}
		p.nutrIdx[nu.Name] = j
	}

	// Stage 4: the content matrix.
	seen := make(map[[2]int]bool, len(amounts))
	var (
		a  Amount
		fi int
		ni int
		ok bool
	)
	for _, a = range amounts {
		if fi, ok = p.foodIdx[a.Food]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFood, a.Food)
		}
		if ni, ok = p.nutrIdx[a.Nutrient]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNutrient, a.Nutrient)
		}
		if math.IsNaN(a.PerServing) || math.IsInf(a.PerServing, 0) || a.PerServing < 0 {
			return nil, fmt.Errorf("%w: %q/%q", ErrNegativeAmount, a.Food, a.Nutrient)
		}
		key := [2]int{fi, ni}
		if seen[key] {
			return nil, fmt.Errorf("%w: %q/%q", ErrDuplicateAmount, a.Food, a.Nutrient)
		}
		seen[key] = true
		p.amount[fi*len(p.nutrients)+ni] = a.PerServing
	}

	return p, nil
}

// Model normalizes the problem into the uniform range-row form consumed by
// lp.Solve and milp.Solve: variable i is the serving count of food i, one
// range row per nutrient, one volume row. Rows that cannot bind are left
// out (a zero Min is implied by x ≥ 0 and non-negative amounts; an infinite
// cap never binds).
//
// Pure; callers own the returned model.
//
// Complexity: O(F·N).
func (p *Problem) Model() lp.Model {
	var (
		nF = len(p.foods)
		nN = len(p.nutrients)
		i  int
		j  int
	)

	obj := make([]float64, nF)
	for i = range p.foods {
		obj[i] = p.foods[i].Cost
	}

	cons := make([]lp.Constraint, 0, nN+1)
	for j = 0; j < nN; j++ {
		coeffs := make([]float64, nF)
		for i = 0; i < nF; i++ {
			coeffs[i] = p.amount[i*nN+j]
		}
		lo := p.nutrients[j].Min
		if lo <= 0 {
			lo = math.Inf(-1) // implied by x ≥ 0 with non-negative amounts
		}
		cons = append(cons, lp.Between(coeffs, lo, p.nutrients[j].Max))
	}

	if !math.IsInf(p.maxVolume, 1) {
		vol := make([]float64, nF)
		for i = range p.foods {
			vol[i] = p.foods[i].Volume
		}
		cons = append(cons, lp.AtMost(vol, p.maxVolume))
	}

	return lp.Model{Obj: obj, Constraints: cons}
}
