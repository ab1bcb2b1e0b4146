package design

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{
		Field:      "width",
		Actual:     "150.0 mm",
		Bound:      "[200, 1000] mm",
		Clause:     "NSCP 2015 Section 409.3",
		Suggestion: "use a width of at least 200 mm",
	}

	msg := err.Error()
	assert.Contains(t, msg, "width = 150.0 mm")
	assert.Contains(t, msg, "[200, 1000] mm")
	assert.Contains(t, msg, "NSCP 2015 Section 409.3")
	assert.Contains(t, msg, "use a width of at least 200 mm")
}

func TestDesignErrorMessage(t *testing.T) {
	err := &DesignError{
		Quantity: "moment", Demand: 450, Capacity: 405, Unit: "kN-m",
		Suggestion: "increase the depth",
	}

	msg := err.Error()
	assert.Contains(t, msg, "moment demand 450.00 kN-m")
	assert.Contains(t, msg, "exceeds capacity 405.00 kN-m")
	assert.Contains(t, msg, "by 45.00 kN-m")
	assert.Contains(t, msg, "increase the depth")
}

func TestComplianceErrorMessage(t *testing.T) {
	low := &ComplianceError{Quantity: "tension steel area", Actual: 55.4, Limit: 490.9, Unit: "mm²", LowerBound: true}
	assert.Contains(t, low.Error(), "is below minimum 490.90 mm²")

	high := &ComplianceError{Quantity: "tension steel area", Actual: 2800, Limit: 2659.7, Unit: "mm²"}
	assert.Contains(t, high.Error(), "exceeds maximum 2659.70 mm²")
}

func TestCalculationErrorMessage(t *testing.T) {
	err := &CalculationError{
		Stage:  "flexure",
		Reason: "degenerate lever arm",
		Intermediates: map[string]float64{
			"c":  -1.5,
			"a":  0,
			"Rn": 2.36,
		},
	}

	// Intermediates print sorted by key, so the message is stable.
	assert.Equal(t,
		"calculation failed in flexure: degenerate lever arm [Rn=2.36, a=0, c=-1.5]",
		err.Error())
}

func TestErrorsAsDiscrimination(t *testing.T) {
	for _, err := range []error{
		&ValidationError{Field: "width"},
		&DesignError{Quantity: "moment"},
		&ComplianceError{Quantity: "steel"},
		&CalculationError{Stage: "flexure"},
	} {
		wrapped := fmt.Errorf("design failed: %w", err)

		var ve *ValidationError
		var de *DesignError
		var ce *ComplianceError
		var le *CalculationError
		matched := 0
		if errors.As(wrapped, &ve) {
			matched++
		}
		if errors.As(wrapped, &de) {
			matched++
		}
		if errors.As(wrapped, &ce) {
			matched++
		}
		if errors.As(wrapped, &le) {
			matched++
		}
		require.Equal(t, 1, matched, "each error matches exactly one kind: %T", err)
	}
}
