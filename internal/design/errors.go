package design

import (
	"fmt"
	"sort"
	"strings"
)

// The error taxonomy separates four failure modes:
//
//   - ValidationError: bad input, correctable before any calculation.
//   - DesignError: the code cannot be satisfied by this
//     geometry/material/demand combination; a different section is
//     needed, not corrected input.
//   - ComplianceError: the numeric answer exists but violates a
//     code-mandated bound (min/max steel, spacing, anchorage fit).
//   - CalculationError: numerical degeneracy; indicates a bug or an
//     input combination outside intended coverage.
//
// Every error answers three questions: what failed (actual value), why
// it violates a rule (bound and clause), and how to fix it.

// ValidationError reports an input that fails range or enumeration
// checks before any calculation runs.
type ValidationError struct {
	Field      string
	Actual     string
	Bound      string
	Clause     string
	Suggestion string
}

func (e *ValidationError) Error() string {
	return format("invalid input", e.Field+" = "+e.Actual, "bound "+e.Bound, e.Clause, e.Suggestion)
}

// DesignError reports a demand the section cannot resist at all.
type DesignError struct {
	Quantity   string
	Demand     float64
	Capacity   float64
	Unit       string
	Clause     string
	Suggestion string
}

func (e *DesignError) Error() string {
	what := fmt.Sprintf("%s demand %.2f %s", e.Quantity, e.Demand, e.Unit)
	why := fmt.Sprintf("exceeds capacity %.2f %s by %.2f %s", e.Capacity, e.Unit, e.Demand-e.Capacity, e.Unit)
	return format("design infeasible", what, why, e.Clause, e.Suggestion)
}

// ComplianceError reports a mathematically valid result that violates a
// code-mandated bound.
type ComplianceError struct {
	Quantity   string
	Actual     float64
	Limit      float64
	Unit       string
	LowerBound bool // true when Actual fell below Limit
	Clause     string
	Suggestion string
}

func (e *ComplianceError) Error() string {
	rel := "exceeds maximum"
	if e.LowerBound {
		rel = "is below minimum"
	}
	what := fmt.Sprintf("%s = %.2f %s", e.Quantity, e.Actual, e.Unit)
	why := fmt.Sprintf("%s %.2f %s", rel, e.Limit, e.Unit)
	return format("non-compliant", what, why, e.Clause, e.Suggestion)
}

// CalculationError reports a numerical failure. It carries every
// intermediate value available at the failure point so the input
// combination can be diagnosed; no NaN or Inf ever escapes silently.
type CalculationError struct {
	Stage         string
	Reason        string
	Intermediates map[string]float64
}

func (e *CalculationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "calculation failed in %s: %s", e.Stage, e.Reason)
	if len(e.Intermediates) > 0 {
		keys := make([]string, 0, len(e.Intermediates))
		for k := range e.Intermediates {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%.6g", k, e.Intermediates[k]))
		}
		b.WriteString(" [" + strings.Join(parts, ", ") + "]")
	}
	return b.String()
}

func format(kind, what, why, clause, suggestion string) string {
	var b strings.Builder
	b.WriteString(kind + ": " + what + " " + why)
	if clause != "" {
		b.WriteString(" (" + clause + ")")
	}
	if suggestion != "" {
		b.WriteString("; suggestion: " + suggestion)
	}
	return b.String()
}
