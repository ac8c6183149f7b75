// Package report turns a solve outcome into a stable, verification-friendly
// Summary: the achieved cost, the positive serving counts in menu order, and
// recomputed constraint diagnostics (per-nutrient totals against their
// bounds plus the volume total against the cap).
//
// Build is a pure transformation — it reads the Problem and the Result and
// touches nothing else — so callers can render the Summary however they
// like; String provides a deterministic plain-text rendering with the cost
// formatted as exact two-decimal money (no floating-point artifacts).
//
// Diagnostics are recomputed from the reported assignment, not copied from
// solver internals, so a reader can check every constraint (volume under
// cap, nutrient totals inside their ranges) directly from the output.
package report
