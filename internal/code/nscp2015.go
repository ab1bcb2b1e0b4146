package code

import "github.com/structcalc/beamcheck/internal/model"

// NSCP2015 returns the profile for the National Structural Code of the
// Philippines 2015 (Volume 1).
func NSCP2015() Profile {
	return Profile{
		Name: "NSCP 2015",

		EpsilonCU:         0.003, // Section 422.2.2.1
		Es:                200000,
		TensionCtrlStrain: 0.005,

		PhiFlexure:     0.90, // Section 421.2.2, tension-controlled
		PhiShear:       0.75,
		PhiCompression: 0.65,

		Beta1Max:   0.85, // Section 422.2.2.4.3
		Beta1Min:   0.65,
		Beta1RefFc: 28,
		Beta1Slope: 0.05 / 7,

		MinSteelSqrtCoeff: 0.25, // Section 409.6.1.2
		MinSteelFloor:     1.4,

		ShearRhoCoeffA:    0.16, // Section 422.5.5.1, detailed Vc
		ShearRhoCoeffB:    17,
		ShearVcCap:        0.29,
		ShearVsCap:        0.66, // Section 422.5.1.2
		ShearTightLimit:   0.33,
		MaxStirrupSpacing: 600, // Section 409.7.6.2.2

		SpanDepthBase: map[model.SupportCondition]float64{
			model.SupportCantilever:        7,
			model.SupportSimple:            20,
			model.SupportOneEndContinuous:  24,
			model.SupportBothEndContinuous: 26,
		},
		ModFactorMin: 0.8,
		ModFactorMax: 2.0,

		DevSmallBarLimit: 20, // Section 425.4.2.2
		DevSmallDivisor:  2.1,
		DevLargeDivisor:  1.7,
		DevLengthMin:     300,
		MinClearSpacing:  25, // Section 425.2.1

		Bounds: GeometryBounds{
			MinWidth:          200,
			MaxWidth:          1000,
			MinEffectiveDepth: 150,
			MaxDepth:          2000,
			MinCover:          40,
			MaxCover:          100,
		},

		Clauses: map[Rule]string{
			RuleStressBlock:    "NSCP 2015 Section 422.2.2.4.3",
			RuleStrengthPhi:    "NSCP 2015 Section 421.2.2",
			RuleMinSteel:       "NSCP 2015 Section 409.6.1.2",
			RuleMaxSteel:       "NSCP 2015 Section 421.2.2 (tension-controlled limit)",
			RuleShearConcrete:  "NSCP 2015 Section 422.5.5.1",
			RuleShearStirrups:  "NSCP 2015 Section 422.5.10.5.3",
			RuleStirrupSpacing: "NSCP 2015 Section 409.7.6.2.2",
			RuleSpanDepth:      "NSCP 2015 Table 409.3.1.1",
			RuleCrackControl:   "NSCP 2015 Section 424.3.2",
			RuleDevelopment:    "NSCP 2015 Section 425.4.2.2",
			RuleBarSpacing:     "NSCP 2015 Section 425.2.1",
			RuleGeometryBounds: "NSCP 2015 Section 409.3 (practical limits)",
		},
	}
}
