// Package diet_test validates staged construction and normalization.
// Focus:
//  1. Strict sentinels for every malformed-data shape, all matching
//     ErrMalformedData as a class.
//  2. Accessor contracts (copies, unknown-identifier lookups).
//  3. Model normalization: row shapes, vacuous-row elision, volume row.
package diet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dietlp/diet"
)

// tinyFoods is a minimal valid menu for defect injection.
func tinyFoods() []diet.Food {
	return []diet.Food{
		{Name: "Bread", Cost: 1.0, Volume: 2.0},
		{Name: "Milk", Cost: 0.5, Volume: 1.0},
	}
}

func tinyNutrients() []diet.Nutrient {
	return []diet.Nutrient{
		diet.Minimum("Protein", 10),
		diet.Range("Sugar", 0, 30),
	}
}

func tinyAmounts() []diet.Amount {
	return []diet.Amount{
		{Food: "Bread", Nutrient: "Protein", PerServing: 4},
		{Food: "Milk", Nutrient: "Protein", PerServing: 3},
		{Food: "Milk", Nutrient: "Sugar", PerServing: 5},
	}
}

func TestNewProblem_Valid(t *testing.T) {
	p, err := diet.NewProblem(tinyFoods(), tinyNutrients(), tinyAmounts(), 50)
	require.NoError(t, err)
	require.Equal(t, 50.0, p.MaxVolume())

	a, err := p.Amount("Milk", "Sugar")
	require.NoError(t, err)
	require.Equal(t, 5.0, a)

	// Unlisted pairs default to zero.
	a, err = p.Amount("Bread", "Sugar")
	require.NoError(t, err)
	require.Equal(t, 0.0, a)
}

// TestNewProblem_Sentinels injects one defect per case and checks both the
// specific sentinel and the ErrMalformedData umbrella.
func TestNewProblem_Sentinels(t *testing.T) {
	inf := math.Inf(1)

	cases := []struct {
		name      string
		foods     []diet.Food
		nutrients []diet.Nutrient
		amounts   []diet.Amount
		maxVolume float64
		want      error
	}{
		{"no foods", nil, tinyNutrients(), nil, 50, diet.ErrNoFoods},
		{"no nutrients", tinyFoods(), nil, nil, 50, diet.ErrNoNutrients},
		{"zero cap", tinyFoods(), tinyNutrients(), nil, 0, diet.ErrNonPositiveMaxVolume},
		{"NaN cap", tinyFoods(), tinyNutrients(), nil, math.NaN(), diet.ErrNonPositiveMaxVolume},
		{"empty food name",
			[]diet.Food{{Name: "", Cost: 1, Volume: 1}},
			tinyNutrients(), nil, 50, diet.ErrEmptyName},
		{"duplicate food",
			[]diet.Food{{Name: "Bread", Cost: 1, Volume: 1}, {Name: "Bread", Cost: 2, Volume: 1}},
			tinyNutrients(), nil, 50, diet.ErrDuplicateFood},
		{"zero cost",
			[]diet.Food{{Name: "Bread", Cost: 0, Volume: 1}},
			tinyNutrients(), nil, 50, diet.ErrNonPositiveCost},
		{"infinite cost",
			[]diet.Food{{Name: "Bread", Cost: inf, Volume: 1}},
			tinyNutrients(), nil, 50, diet.ErrNonPositiveCost},
		{"negative volume",
			[]diet.Food{{Name: "Bread", Cost: 1, Volume: -1}},
			tinyNutrients(), nil, 50, diet.ErrNonPositiveVolume},
		{"empty nutrient name",
			tinyFoods(),
			[]diet.Nutrient{diet.Minimum("", 1)}, nil, 50, diet.ErrEmptyName},
		{"duplicate nutrient",
			tinyFoods(),
			[]diet.Nutrient{diet.Minimum("Protein", 1), diet.Minimum("Protein", 2)},
			nil, 50, diet.ErrDuplicateNutrient},
		{"negative min",
			tinyFoods(),
			[]diet.Nutrient{diet.Range("Protein", -1, 5)}, nil, 50, diet.ErrNegativeBound},
		{"infinite min",
			tinyFoods(),
			[]diet.Nutrient{diet.Minimum("Protein", inf)}, nil, 50, diet.ErrNegativeBound},
		{"negative max",
			tinyFoods(),
			[]diet.Nutrient{diet.Range("Protein", 0, -2)}, nil, 50, diet.ErrNegativeBound},
		{"unknown food in amount",
			tinyFoods(), tinyNutrients(),
			[]diet.Amount{{Food: "Tofu", Nutrient: "Protein", PerServing: 1}},
			50, diet.ErrUnknownFood},
		{"unknown nutrient in amount",
			tinyFoods(), tinyNutrients(),
			[]diet.Amount{{Food: "Bread", Nutrient: "Zinc", PerServing: 1}},
			50, diet.ErrUnknownNutrient},
		{"negative amount",
			tinyFoods(), tinyNutrients(),
			[]diet.Amount{{Food: "Bread", Nutrient: "Protein", PerServing: -1}},
			50, diet.ErrNegativeAmount},
		{"duplicate amount",
			tinyFoods(), tinyNutrients(),
			[]diet.Amount{
				{Food: "Bread", Nutrient: "Protein", PerServing: 1},
				{Food: "Bread", Nutrient: "Protein", PerServing: 2},
			},
			50, diet.ErrDuplicateAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := diet.NewProblem(tc.foods, tc.nutrients, tc.amounts, tc.maxVolume)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, diet.ErrMalformedData)
		})
	}
}

// TestNewProblem_ReversedRangeAccepted: Min > Max is a data property that
// surfaces at solve time, not a construction defect.
func TestNewProblem_ReversedRangeAccepted(t *testing.T) {
	nutrients := []diet.Nutrient{diet.Range("Protein", 10, 5)}
	_, err := diet.NewProblem(tinyFoods(), nutrients, tinyAmounts()[:2], 50)
	require.NoError(t, err)
}

// TestProblem_AccessorsCopy: mutating returned slices must not touch the
// Problem.
func TestProblem_AccessorsCopy(t *testing.T) {
	p, err := diet.NewProblem(tinyFoods(), tinyNutrients(), tinyAmounts(), 50)
	require.NoError(t, err)

	foods := p.Foods()
	foods[0].Cost = 999
	require.Equal(t, 1.0, p.Foods()[0].Cost)

	nutrients := p.Nutrients()
	nutrients[0].Min = 999
	require.Equal(t, 10.0, p.Nutrients()[0].Min)
}

// TestProblem_AmountUnknown: lookups share the construction sentinels.
func TestProblem_AmountUnknown(t *testing.T) {
	p, err := diet.NewProblem(tinyFoods(), tinyNutrients(), tinyAmounts(), 50)
	require.NoError(t, err)

	_, err = p.Amount("Tofu", "Protein")
	require.ErrorIs(t, err, diet.ErrUnknownFood)

	_, err = p.Amount("Bread", "Zinc")
	require.ErrorIs(t, err, diet.ErrUnknownNutrient)
}

// TestProblem_Model checks the normalized shape of the sample scenario:
// nine variables, seven nutrient rows plus the volume row, and the exact
// bounds on the ranged rows.
func TestProblem_Model(t *testing.T) {
	p := diet.SampleMenu()
	m := p.Model()

	require.Equal(t, 9, m.Vars())
	require.Len(t, m.Constraints, 8)

	// Objective is the cost vector in menu order.
	require.Equal(t, 1.84, m.Obj[0])
	require.Equal(t, 0.72, m.Obj[8])

	// Row 1 is the Carbo range.
	carbo := m.Constraints[1]
	require.Equal(t, 350.0, carbo.Lo)
	require.Equal(t, 375.0, carbo.Hi)
	require.Equal(t, 34.0, carbo.Coeffs[0]) // Cheeseburger carbs

	// Row 0 is the Cal minimum, unbounded above.
	cal := m.Constraints[0]
	require.Equal(t, 2000.0, cal.Lo)
	require.True(t, math.IsInf(cal.Hi, 1))

	// Last row is the volume cap.
	vol := m.Constraints[7]
	require.True(t, math.IsInf(vol.Lo, -1))
	require.Equal(t, 75.0, vol.Hi)
	require.Equal(t, 4.0, vol.Coeffs[0]) // Cheeseburger volume
}

// TestProblem_ModelVacuousBounds: a zero minimum relaxes to an unbounded row
// and an infinite cap produces no volume row.
func TestProblem_ModelVacuousBounds(t *testing.T) {
	nutrients := []diet.Nutrient{diet.Minimum("Protein", 0)}
	p, err := diet.NewProblem(tinyFoods(), nutrients,
		[]diet.Amount{{Food: "Bread", Nutrient: "Protein", PerServing: 4}}, math.Inf(1))
	require.NoError(t, err)

	m := p.Model()
	require.Equal(t, 2, m.Vars())

	// The one nutrient row is unbounded on both sides; no volume row.
	require.Len(t, m.Constraints, 1)
	require.True(t, math.IsInf(m.Constraints[0].Lo, -1))
	require.True(t, math.IsInf(m.Constraints[0].Hi, 1))
}
