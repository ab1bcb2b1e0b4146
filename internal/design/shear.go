package design

import (
	"math"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

// ShearOptions tune the stirrup configuration.
type ShearOptions struct {
	BarDiameter float64 // stirrup bar (mm), default 10
	Legs        int     // vertical legs, default 2
}

func (o ShearOptions) withDefaults() ShearOptions {
	if o.BarDiameter == 0 {
		o.BarDiameter = 10
	}
	if o.Legs == 0 {
		o.Legs = 2
	}
	return o
}

// DesignShear sizes vertical stirrups for a factored shear force (kN).
//
// The concrete's own capacity depends on the tension-steel ratio from
// the flexure result. A spacing above the code cap is clamped to the
// cap and flagged, not treated as an error, since the capped design is
// merely more conservative. Only a demand beyond what minimum-spacing
// stirrups can carry fails, with a *DesignError.
func (d Designer) DesignShear(geom model.SectionGeometry, mat model.MaterialGrade, flex *model.FlexureResult, shearKN float64, opts ShearOptions) (*model.ShearResult, error) {
	opts = opts.withDefaults()
	fc, _ := mat.Fc()
	fy, _ := mat.Fy()
	p := d.Profile

	// Yield strength of shear reinforcement is capped at 415 MPa.
	fyt := math.Min(fy, 415)
	sqrtFc := math.Sqrt(fc)
	bd := geom.Width * geom.EffectiveDepth

	// Detailed concrete shear capacity, a function of the tension
	// steel ratio, with its upper cap.
	vc := (p.ShearRhoCoeffA*sqrtFc + p.ShearRhoCoeffB*flex.SteelRatio) * bd // N
	vc = math.Min(vc, p.ShearVcCap*sqrtFc*bd)
	phiVc := p.PhiShear * vc
	vu := shearKN * 1000 // N

	av := float64(opts.Legs) * math.Pi / 4 * opts.BarDiameter * opts.BarDiameter
	// Minimum web reinforcement.
	avsMin := math.Max(0.062*sqrtFc*geom.Width/fyt, 0.35*geom.Width/fyt)

	maxSpacing := math.Min(geom.EffectiveDepth/2, p.MaxStirrupSpacing)

	if vu <= phiVc {
		// Concrete alone carries the demand; provide minimum stirrups.
		spacing := math.Min(av/avsMin, maxSpacing)
		return &model.ShearResult{
			ConcreteCapacity: vc / 1000,
			StirrupDemand:    avsMin,
			StirrupSpacing:   spacing,
			MaxSpacing:       maxSpacing,
			BarDiameter:      opts.BarDiameter,
			Legs:             opts.Legs,
			MinimumOnly:      true,
		}, nil
	}

	vs := vu/p.PhiShear - vc // N, to be carried by stirrups
	if vs > p.ShearVsCap*sqrtFc*bd {
		return nil, &DesignError{
			Quantity:   "shear",
			Demand:     shearKN,
			Capacity:   p.PhiShear * (vc + p.ShearVsCap*sqrtFc*bd) / 1000,
			Unit:       "kN",
			Clause:     p.Clause(code.RuleShearStirrups),
			Suggestion: "increase the section size or concrete grade; stirrups alone cannot carry this demand",
		}
	}

	// High stirrup demand halves the spacing cap.
	if vs > p.ShearTightLimit*sqrtFc*bd {
		maxSpacing = math.Min(geom.EffectiveDepth/4, p.MaxStirrupSpacing/2)
	}

	avs := math.Max(vs/(fyt*geom.EffectiveDepth), avsMin)
	spacing := av / avs
	if !isFinite(spacing) || spacing <= 0 {
		return nil, &CalculationError{
			Stage:  "shear",
			Reason: "degenerate stirrup spacing",
			Intermediates: map[string]float64{
				"vs": vs, "avs": avs, "av": av, "vc": vc,
			},
		}
	}

	governed := false
	if spacing > maxSpacing {
		spacing = maxSpacing
		governed = true
	}

	return &model.ShearResult{
		ConcreteCapacity: vc / 1000,
		StirrupDemand:    avs,
		StirrupSpacing:   spacing,
		MaxSpacing:       maxSpacing,
		BarDiameter:      opts.BarDiameter,
		Legs:             opts.Legs,
		SpacingGoverned:  governed,
	}, nil
}
