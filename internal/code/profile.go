package code

import (
	"math"

	"github.com/structcalc/beamcheck/internal/model"
)

// Rule identifies a code provision for clause-reference lookup.
type Rule string

const (
	RuleStressBlock    Rule = "stress_block"
	RuleStrengthPhi    Rule = "strength_phi"
	RuleMinSteel       Rule = "min_steel"
	RuleMaxSteel       Rule = "max_steel"
	RuleShearConcrete  Rule = "shear_concrete"
	RuleShearStirrups  Rule = "shear_stirrups"
	RuleStirrupSpacing Rule = "stirrup_spacing"
	RuleSpanDepth      Rule = "span_depth"
	RuleCrackControl   Rule = "crack_control"
	RuleDevelopment    Rule = "development_length"
	RuleBarSpacing     Rule = "bar_spacing"
	RuleGeometryBounds Rule = "geometry_bounds"
)

// GeometryBounds are the practical input limits a profile enforces at
// validation time (mm).
type GeometryBounds struct {
	MinWidth          float64
	MaxWidth          float64
	MinEffectiveDepth float64
	MaxDepth          float64
	MinCover          float64
	MaxCover          float64
}

// Profile is an explicit, immutable description of one structural
// design code. A profile is passed into every top-level call; there is
// no ambient "current code" state, so two profiles can be used side by
// side in the same process.
type Profile struct {
	Name string

	// Strain and material model
	EpsilonCU         float64 // ultimate concrete strain
	Es                float64 // steel modulus of elasticity (MPa)
	TensionCtrlStrain float64 // εt at/above which the section is tension-controlled

	// Strength reduction factors
	PhiFlexure     float64
	PhiShear       float64
	PhiCompression float64

	// Equivalent rectangular stress block
	Beta1Max      float64
	Beta1Min      float64
	Beta1RefFc    float64 // f'c below which β1 stays at Beta1Max
	Beta1Slope    float64 // reduction per MPa above Beta1RefFc

	// Minimum reinforcement: ρmin = max(MinSteelSqrtCoeff·√f'c/fy, MinSteelFloor/fy)
	MinSteelSqrtCoeff float64
	MinSteelFloor     float64

	// Shear: Vc = (ShearRhoCoeffA·√f'c + ShearRhoCoeffB·ρw)·b·d,
	// capped at ShearVcCap·√f'c·b·d. Stirrup demand Vs is capped at
	// ShearVsCap·√f'c·b·d; closer spacing is required above
	// ShearTightLimit·√f'c·b·d.
	ShearRhoCoeffA    float64
	ShearRhoCoeffB    float64
	ShearVcCap        float64
	ShearVsCap        float64
	ShearTightLimit   float64
	MaxStirrupSpacing float64 // absolute cap (mm)

	// Serviceability
	SpanDepthBase map[model.SupportCondition]float64
	ModFactorMin  float64
	ModFactorMax  float64

	// Detailing: ld = fy·db / (DevSmallDivisor·√f'c) for db ≤ DevSmallBarLimit,
	// fy·db / (DevLargeDivisor·√f'c) above, floor DevLengthMin.
	DevSmallBarLimit float64
	DevSmallDivisor  float64
	DevLargeDivisor  float64
	DevLengthMin     float64
	MinClearSpacing  float64 // absolute floor; governing is max(this, db)

	Bounds  GeometryBounds
	Clauses map[Rule]string
}

// Clause returns the clause reference for a rule, or empty when the
// profile does not cite one.
func (p Profile) Clause(r Rule) string {
	return p.Clauses[r]
}

// Beta1 returns the equivalent rectangular stress block factor.
func (p Profile) Beta1(fc float64) float64 {
	if fc <= p.Beta1RefFc {
		return p.Beta1Max
	}
	beta1 := p.Beta1Max - p.Beta1Slope*(fc-p.Beta1RefFc)
	return math.Max(beta1, p.Beta1Min)
}

// Phi returns the strength reduction factor for a tensile strain,
// interpolating through the transition zone.
func (p Profile) Phi(epsilonT, fy float64) float64 {
	epsilonTY := fy / p.Es
	switch {
	case epsilonT >= epsilonTY+0.003:
		return p.PhiFlexure
	case epsilonT <= epsilonTY:
		return p.PhiCompression
	default:
		return p.PhiCompression + (p.PhiFlexure-p.PhiCompression)*(epsilonT-epsilonTY)/0.003
	}
}

// RhoMin returns the minimum reinforcement ratio.
func (p Profile) RhoMin(fc, fy float64) float64 {
	rho1 := p.MinSteelSqrtCoeff * math.Sqrt(fc) / fy
	rho2 := p.MinSteelFloor / fy
	return math.Max(rho1, rho2)
}

// RhoMax returns the maximum reinforcement ratio for a
// tension-controlled section (εt at the tension-controlled limit).
func (p Profile) RhoMax(fc, fy float64) float64 {
	beta1 := p.Beta1(fc)
	return 0.85 * beta1 * (fc / fy) * (p.EpsilonCU / (p.EpsilonCU + p.TensionCtrlStrain))
}

// RhoBalanced returns the balanced reinforcement ratio.
func (p Profile) RhoBalanced(fc, fy float64) float64 {
	beta1 := p.Beta1(fc)
	epsilonTY := fy / p.Es
	cb := p.EpsilonCU / (p.EpsilonCU + epsilonTY)
	return 0.85 * beta1 * (fc / fy) * cb
}

// BaseSpanDepth returns the basic permissible span/effective-depth
// ratio for a support condition, before steel-percentage modification.
func (p Profile) BaseSpanDepth(sc model.SupportCondition) (float64, bool) {
	r, ok := p.SpanDepthBase[sc]
	return r, ok
}

// DevelopmentLength returns the tension development length for a bar
// diameter (mm).
func (p Profile) DevelopmentLength(fy, fc, db float64) float64 {
	divisor := p.DevLargeDivisor
	if db <= p.DevSmallBarLimit {
		divisor = p.DevSmallDivisor
	}
	ld := fy * db / (divisor * math.Sqrt(fc))
	return math.Max(ld, p.DevLengthMin)
}
