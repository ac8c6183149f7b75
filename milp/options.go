// Package milp - engine configuration.
package milp

import "time"

// Default tolerances and budgets; see Options for semantics.
const (
	// DefaultIntTol treats a relaxation value within 1e-6 of the nearest
	// integer as integral, avoiding infinite branching on FP noise.
	DefaultIntTol = 1e-6

	// DefaultEps is the bound-pruning tolerance: a node survives only when
	// its relaxation bound is at least Eps below the incumbent cost.
	DefaultEps = 1e-9
)

// Options configures one Solve call.
//
//   - IntTol:      integrality tolerance (> 0).
//   - Eps:         pruning tolerance (≥ 0).
//   - TimeLimit:   wall-clock budget; 0 means unlimited.
//   - NodeLimit:   solved-relaxation budget; 0 means unlimited.
//   - Parallelism: max goroutines exploring sibling subtrees; ≤ 1 keeps the
//     search sequential and fully deterministic in exploration order.
type Options struct {
	IntTol      float64
	Eps         float64
	TimeLimit   time.Duration
	NodeLimit   int64
	Parallelism int
}

// DefaultOptions returns production-safe defaults: sequential search, no
// budgets, standard tolerances.
func DefaultOptions() Options {
	return Options{
		IntTol: DefaultIntTol,
		Eps:    DefaultEps,
	}
}

// validate rejects nonsensical knob combinations with ErrInvalidOptions.
//
// Complexity: O(1).
func (o Options) validate() error {
	if !(o.IntTol > 0 && o.IntTol < 0.5) { // rejects NaN as well
		return ErrInvalidOptions
	}
	if o.Eps < 0 {
		return ErrInvalidOptions
	}
	if o.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	if o.NodeLimit < 0 {
		return ErrInvalidOptions
	}

	return nil
}
