package design

import (
	"math"

	"github.com/structcalc/beamcheck/internal/model"
)

// CheckServiceability performs the span/depth and crack-control checks
// for a designed section. barDb is the main tension bar diameter used
// for the crack-control spacing, matching the detailing layout;
// zero falls back to the default bar. Failures here are advisory: the
// result carries pass/fail flags and the aggregator surfaces them as
// warning diagnostics (fatal only under strict mode).
func (d Designer) CheckServiceability(geom model.SectionGeometry, mat model.MaterialGrade, flex *model.FlexureResult, spanM float64, support model.SupportCondition, barDb float64) (*model.ServiceabilityResult, error) {
	fy, _ := mat.Fy()
	p := d.Profile

	base, ok := p.BaseSpanDepth(support)
	if !ok {
		return nil, &ValidationError{
			Field:      "support condition",
			Actual:     string(support),
			Bound:      "one of " + supportList(),
			Suggestion: "pick a recognized support condition",
		}
	}

	actual := spanM * 1000 / geom.EffectiveDepth

	// Service-level steel stress, assuming provided steel equals the
	// required steel.
	fs := 0.58 * fy

	// Tension-steel modification factor (SP-24 regression fit),
	// clamped so the check stays defined at very low steel percentages.
	rhoPct := 100 * flex.SteelRatio
	denom := 0.225 + 0.00322*fs - 0.625*math.Log10(rhoPct)
	mf := p.ModFactorMax
	if denom > 0 {
		mf = clamp(1/denom, p.ModFactorMin, p.ModFactorMax)
	}
	permissible := base * mf

	// Crack-control limit on flexural bar spacing, checked against the
	// same bar layout the detailing stage uses.
	if barDb == 0 {
		barDb = defaultMainBar
	}
	crackLimit := math.Min(380*(280/fs)-2.5*geom.Cover, 300*(280/fs))
	_, _, ccSpacing := layoutBars(geom, flex.AsRequired, barDb)

	return &model.ServiceabilityResult{
		ActualSpanDepth:      actual,
		PermissibleSpanDepth: permissible,
		ModificationFactor:   mf,
		DeflectionOK:         actual <= permissible,
		CrackSpacingLimit:    crackLimit,
		BarSpacing:           ccSpacing,
		CrackControlOK:       ccSpacing <= crackLimit,
	}, nil
}

func supportList() string {
	s := ""
	for i, sc := range model.SupportConditions() {
		if i > 0 {
			s += ", "
		}
		s += string(sc)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
