// Package diet - value types and the malformed-data sentinel set.
//
// Every sentinel below wraps ErrMalformedData, so callers can branch on the
// whole class (errors.Is(err, ErrMalformedData)) or on a specific defect.
// These errors are raised by NewProblem only — never by the solvers — and
// abort a solve before it starts.
package diet

import (
	"errors"
	"fmt"
)

// ErrMalformedData is the umbrella sentinel for every structural defect in
// raw input data.
var ErrMalformedData = errors.New("diet: malformed data")

var (
	// ErrNoFoods: the food set is empty.
	ErrNoFoods = fmt.Errorf("%w: no foods", ErrMalformedData)

	// ErrNoNutrients: the nutrient set is empty.
	ErrNoNutrients = fmt.Errorf("%w: no nutrients", ErrMalformedData)

	// ErrEmptyName: a food or nutrient has an empty identifier.
	ErrEmptyName = fmt.Errorf("%w: empty name", ErrMalformedData)

	// ErrDuplicateFood: two foods share a name.
	ErrDuplicateFood = fmt.Errorf("%w: duplicate food", ErrMalformedData)

	// ErrDuplicateNutrient: two nutrients share a name.
	ErrDuplicateNutrient = fmt.Errorf("%w: duplicate nutrient", ErrMalformedData)

	// ErrUnknownFood: an amount (or lookup) references an undeclared food.
	ErrUnknownFood = fmt.Errorf("%w: unknown food", ErrMalformedData)

	// ErrUnknownNutrient: an amount (or lookup) references an undeclared nutrient.
	ErrUnknownNutrient = fmt.Errorf("%w: unknown nutrient", ErrMalformedData)

	// ErrDuplicateAmount: the same (food, nutrient) pair is listed twice.
	ErrDuplicateAmount = fmt.Errorf("%w: duplicate amount entry", ErrMalformedData)

	// ErrNonPositiveCost: a food cost is zero, negative, or not finite.
	ErrNonPositiveCost = fmt.Errorf("%w: non-positive cost", ErrMalformedData)

	// ErrNonPositiveVolume: a food volume is zero, negative, or not finite.
	ErrNonPositiveVolume = fmt.Errorf("%w: non-positive volume", ErrMalformedData)

	// ErrNegativeBound: a nutrient Min/Max is negative or NaN (Min must also
	// be finite; Max may be +Inf).
	ErrNegativeBound = fmt.Errorf("%w: negative nutrient bound", ErrMalformedData)

	// ErrNegativeAmount: a per-serving amount is negative or not finite.
	ErrNegativeAmount = fmt.Errorf("%w: negative amount", ErrMalformedData)

	// ErrNonPositiveMaxVolume: the volume cap is zero, negative, or NaN
	// (+Inf means "no cap" and is allowed).
	ErrNonPositiveMaxVolume = fmt.Errorf("%w: non-positive volume cap", ErrMalformedData)
)

// Food is one menu entry. Cost and Volume are per serving and must be
// strictly positive and finite.
type Food struct {
	Name   string
	Cost   float64
	Volume float64
}

// Nutrient is one requirement: the weighted total over all servings must
// land inside [Min, Max]. Use math.Inf(1) for Max when there is no upper
// bound; the Minimum and Range constructors cover the two common shapes.
type Nutrient struct {
	Name string
	Min  float64
	Max  float64
}

// Amount is one cell of the nutrient-content matrix: how much of a nutrient
// one serving of a food supplies. Pairs not listed default to zero.
type Amount struct {
	Food       string
	Nutrient   string
	PerServing float64
}

// Problem is an immutable, validated Diet Problem instance. Construct with
// NewProblem; the zero value is not usable.
type Problem struct {
	foods     []Food
	nutrients []Nutrient
	amount    []float64 // len(foods)·len(nutrients), food-major
	maxVolume float64
	foodIdx   map[string]int
	nutrIdx   map[string]int
}

// Foods returns a copy of the food set, in declaration order.
func (p *Problem) Foods() []Food {
	out := make([]Food, len(p.foods))
	copy(out, p.foods)

	return out
}

// Nutrients returns a copy of the nutrient set, in declaration order.
func (p *Problem) Nutrients() []Nutrient {
	out := make([]Nutrient, len(p.nutrients))
	copy(out, p.nutrients)

	return out
}

// MaxVolume returns the global volume cap (+Inf when uncapped).
func (p *Problem) MaxVolume() float64 { return p.maxVolume }

// Amount returns the per-serving nutrient content for a (food, nutrient)
// pair, or ErrUnknownFood / ErrUnknownNutrient for undeclared identifiers.
func (p *Problem) Amount(food, nutrient string) (float64, error) {
	i, ok := p.foodIdx[food]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFood, food)
	}
	j, ok := p.nutrIdx[nutrient]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNutrient, nutrient)
	}

	return p.amount[i*len(p.nutrients)+j], nil
}
