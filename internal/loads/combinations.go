// Package loads derives factored design forces from unfactored load
// effects using strength-design load combinations. Sign conventions are
// normalized here, at the boundary, so the calculation engines only
// ever see non-negative magnitudes.
package loads

import (
	"math"

	"github.com/structcalc/beamcheck/internal/model"
)

// Combination is one strength-design load combination.
// Based on NSCP 2015 Section 203.3 / ACI 318 Section 5.3.
type Combination struct {
	ID          string
	Description string
	// Load factors per load type
	Dead       float64 // D
	Live       float64 // L
	Roof       float64 // Lr
	Wind       float64 // W
	Earthquake float64 // E
	Rain       float64 // R
}

// Effects holds one unfactored load effect (a moment in kN-m or a
// shear in kN) per load type.
type Effects struct {
	Dead       float64 `json:"dead,omitempty" yaml:"dead,omitempty"`
	Live       float64 `json:"live,omitempty" yaml:"live,omitempty"`
	Roof       float64 `json:"roof,omitempty" yaml:"roof,omitempty"`
	Wind       float64 `json:"wind,omitempty" yaml:"wind,omitempty"`
	Earthquake float64 `json:"earthquake,omitempty" yaml:"earthquake,omitempty"`
	Rain       float64 `json:"rain,omitempty" yaml:"rain,omitempty"`
}

// Combinations returns the basic strength-design load combinations.
func Combinations() []Combination {
	return []Combination{
		{ID: "1", Description: "1.4D", Dead: 1.4},
		{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
		{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
		{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
		{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
		{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
		{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
	}
}

// Simplified returns the two gravity-only combinations that govern most
// beam designs.
func Simplified() []Combination {
	return []Combination{
		{ID: "1", Description: "1.4D", Dead: 1.4},
		{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
	}
}

// Apply computes the factored effect for this combination.
func (c Combination) Apply(e Effects) float64 {
	return c.Dead*e.Dead +
		c.Live*e.Live +
		c.Roof*e.Roof +
		c.Wind*e.Wind +
		c.Earthquake*e.Earthquake +
		c.Rain*e.Rain
}

// Governing returns the largest factored effect magnitude across the
// combinations and the combination that produced it.
func Governing(e Effects, combos []Combination) (float64, Combination) {
	var max float64
	var governing Combination
	for _, c := range combos {
		if v := math.Abs(c.Apply(e)); v > max {
			max = v
			governing = c
		}
	}
	return max, governing
}

// Factored builds the design forces for one critical location from
// unfactored moment and shear effects, taking the governing combination
// for each independently.
func Factored(moments, shears Effects, combos []Combination) model.FactoredForces {
	mu, _ := Governing(moments, combos)
	vu, _ := Governing(shears, combos)
	return model.FactoredForces{Moment: mu, Shear: vu}
}
