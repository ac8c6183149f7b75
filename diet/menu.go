// Package diet - the worked nine-food scenario.
//
// This is the classic fast-food instance used throughout the documentation,
// examples and tests: nine menu items, seven nutrient requirements, a
// 75-unit volume cap. Its known integer optimum costs 15.05 with
// 4 Cheeseburgers, 5 Fries, 1 Fish Sandwich and 4 Lowfat Milks.
package diet

// SampleMenu returns the nine-food scenario as a freshly built Problem.
// The data is fixed and known-valid, so construction cannot fail.
func SampleMenu() *Problem {
	foods := []Food{
		{Name: "Cheeseburger", Cost: 1.84, Volume: 4.0},
		{Name: "Ham Sandwich", Cost: 2.19, Volume: 7.5},
		{Name: "Hamburger", Cost: 1.84, Volume: 3.5},
		{Name: "Fish Sandwich", Cost: 1.44, Volume: 5.0},
		{Name: "Chicken Sandwich", Cost: 2.29, Volume: 7.3},
		{Name: "Fries", Cost: 0.77, Volume: 2.6},
		{Name: "Sausage Biscuit", Cost: 1.29, Volume: 4.1},
		{Name: "Lowfat Milk", Cost: 0.60, Volume: 8.0},
		{Name: "Orange Juice", Cost: 0.72, Volume: 12.0},
	}

	nutrients := []Nutrient{
		Minimum("Cal", 2000),
		Range("Carbo", 350, 375),
		Minimum("Protein", 55),
		Minimum("VitA", 100),
		Minimum("VitC", 100),
		Minimum("Calc", 100),
		Minimum("Iron", 100),
	}

	// Per-serving content, food-major in nutrient order
	// (Cal, Carbo, Protein, VitA, VitC, Calc, Iron).
	content := map[string][7]float64{
		"Cheeseburger":     {510, 34, 28, 15, 6, 30, 20},
		"Ham Sandwich":     {370, 35, 24, 15, 10, 20, 20},
		"Hamburger":        {500, 42, 25, 6, 2, 25, 20},
		"Fish Sandwich":    {370, 38, 14, 2, 0, 15, 10},
		"Chicken Sandwich": {400, 42, 31, 8, 15, 15, 8},
		"Fries":            {220, 26, 3, 0, 15, 0, 2},
		"Sausage Biscuit":  {345, 27, 15, 4, 0, 20, 15},
		"Lowfat Milk":      {110, 12, 9, 10, 4, 30, 0},
		"Orange Juice":     {80, 20, 1, 2, 120, 2, 2},
	}

	var amounts []Amount
	for _, f := range foods {
		row := content[f.Name]
		for j, nu := range nutrients {
			if row[j] == 0 {
				continue // unlisted pairs default to zero
			}
			amounts = append(amounts, Amount{Food: f.Name, Nutrient: nu.Name, PerServing: row[j]})
		}
	}

	p, err := NewProblem(foods, nutrients, amounts, 75.0)
	if err != nil {
		panic("diet: SampleMenu data must validate: " + err.Error())
	}

	return p
}
