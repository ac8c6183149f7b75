package report

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/dietlp/diet"
	"github.com/katalvlaran/dietlp/milp"
)

var (
	// ErrNilProblem is returned when Build receives a nil Problem.
	ErrNilProblem = errors.New("report: nil problem")

	// ErrAssignmentMismatch is returned when the result's assignment length
	// differs from the problem's food count.
	ErrAssignmentMismatch = errors.New("report: assignment does not match problem")
)

// Serving is one positive entry of the chosen assignment.
type Serving struct {
	Food  string
	Count int
}

// NutrientTotal is one recomputed diagnostic row: the achieved total for a
// nutrient next to its required range.
type NutrientTotal struct {
	Name  string
	Total float64
	Min   float64
	Max   float64
}

// Summary is the stable output structure of a solve.
type Summary struct {
	Status milp.Status

	// Cost is meaningful when Servings is non-nil.
	Cost float64

	// Servings lists only positive counts, in the problem's food order.
	// Nil when the result carries no assignment.
	Servings []Serving

	// Nutrients holds one diagnostic row per declared nutrient, in
	// declaration order. Nil when the result carries no assignment.
	Nutrients []NutrientTotal

	TotalVolume float64
	MaxVolume   float64
	Nodes       int64
}

// Build computes the Summary for a solved problem. Pure: neither argument
// is mutated.
//
// Errors: ErrNilProblem, ErrAssignmentMismatch; statuses without an
// assignment (Infeasible, Unbounded, LimitReached with no incumbent)
// produce a Summary with nil Servings and diagnostics.
//
// Complexity: O(F·N).
func Build(p *diet.Problem, res milp.Result) (Summary, error) {
	if p == nil {
		return Summary{}, ErrNilProblem
	}

	s := Summary{
		Status:    res.Status,
		Nodes:     res.Nodes,
		MaxVolume: p.MaxVolume(),
	}
	if res.X == nil {
		return s, nil
	}

	foods := p.Foods()
	if len(res.X) != len(foods) {
		return Summary{}, ErrAssignmentMismatch
	}
	s.Cost = res.Cost

	nutrients := p.Nutrients()
	totals := make([]float64, len(nutrients))
	var (
		i     int
		j     int
		count int
	)
	for i = range foods {
		count = int(math.Round(res.X[i]))
		if count <= 0 {
			continue
		}
		s.Servings = append(s.Servings, Serving{Food: foods[i].Name, Count: count})
		s.TotalVolume += foods[i].Volume * float64(count)
		for j = range nutrients {
			a, err := p.Amount(foods[i].Name, nutrients[j].Name)
			if err != nil {
				return Summary{}, err // unreachable for a well-formed Problem
			}
			totals[j] += a * float64(count)
		}
	}
	s.TotalVolume = round1e9(s.TotalVolume)

	s.Nutrients = make([]NutrientTotal, len(nutrients))
	for j = range nutrients {
		s.Nutrients[j] = NutrientTotal{
			Name:  nutrients[j].Name,
			Total: round1e9(totals[j]),
			Min:   nutrients[j].Min,
			Max:   nutrients[j].Max,
		}
	}

	return s, nil
}

// String renders the Summary deterministically. Money goes through
// shopspring/decimal so that e.g. 15.049999999999999 prints as "15.05".
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "status: %s\n", s.Status)
	if s.Servings == nil {
		return b.String()
	}

	fmt.Fprintf(&b, "cost: %s\n", decimal.NewFromFloat(s.Cost).StringFixed(2))
	b.WriteString("servings:\n")
	for _, sv := range s.Servings {
		fmt.Fprintf(&b, "  %s x%d\n", sv.Food, sv.Count)
	}

	if math.IsInf(s.MaxVolume, 1) {
		fmt.Fprintf(&b, "volume: %.2f (no cap)\n", s.TotalVolume)
	} else {
		fmt.Fprintf(&b, "volume: %.2f / %.2f\n", s.TotalVolume, s.MaxVolume)
	}

	b.WriteString("nutrients:\n")
	for _, nt := range s.Nutrients {
		if math.IsInf(nt.Max, 1) {
			fmt.Fprintf(&b, "  %s: %.2f in [%.2f, +Inf)\n", nt.Name, nt.Total, nt.Min)
		} else {
			fmt.Fprintf(&b, "  %s: %.2f in [%.2f, %.2f]\n", nt.Name, nt.Total, nt.Min, nt.Max)
		}
	}

	return b.String()
}

// roundScale controls diagnostic stabilization precision (1e-9).
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
