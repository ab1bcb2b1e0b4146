package code

import "github.com/structcalc/beamcheck/internal/model"

// ACI318M19 returns the profile for ACI 318M-19 (metric). The NSCP is
// an adaptation of ACI 318, so the two profiles share formulas and
// differ mainly in clause labels and span/depth base ratios.
func ACI318M19() Profile {
	return Profile{
		Name: "ACI 318M-19",

		EpsilonCU:         0.003, // 22.2.2.1
		Es:                200000,
		TensionCtrlStrain: 0.005,

		PhiFlexure:     0.90, // Table 21.2.2
		PhiShear:       0.75,
		PhiCompression: 0.65,

		Beta1Max:   0.85, // Table 22.2.2.4.3
		Beta1Min:   0.65,
		Beta1RefFc: 28,
		Beta1Slope: 0.05 / 7,

		MinSteelSqrtCoeff: 0.25, // 9.6.1.2
		MinSteelFloor:     1.4,

		ShearRhoCoeffA:    0.16,
		ShearRhoCoeffB:    17,
		ShearVcCap:        0.29,
		ShearVsCap:        0.66, // 22.5.1.2
		ShearTightLimit:   0.33,
		MaxStirrupSpacing: 600, // Table 9.7.6.2.2

		// ACI Table 9.3.1.1 gives minimum depths as span fractions
		// (l/16 simple, l/18.5, l/21, l/8 cantilever); expressed here
		// as permissible span/depth ratios.
		SpanDepthBase: map[model.SupportCondition]float64{
			model.SupportCantilever:        8,
			model.SupportSimple:            16,
			model.SupportOneEndContinuous:  18.5,
			model.SupportBothEndContinuous: 21,
		},
		ModFactorMin: 0.8,
		ModFactorMax: 2.0,

		DevSmallBarLimit: 19, // Table 25.4.2.3 splits at No. 19
		DevSmallDivisor:  2.1,
		DevLargeDivisor:  1.7,
		DevLengthMin:     300,
		MinClearSpacing:  25, // 25.2.1

		Bounds: GeometryBounds{
			MinWidth:          200,
			MaxWidth:          1000,
			MinEffectiveDepth: 150,
			MaxDepth:          2000,
			MinCover:          40,
			MaxCover:          100,
		},

		Clauses: map[Rule]string{
			RuleStressBlock:    "ACI 318M-19 Table 22.2.2.4.3",
			RuleStrengthPhi:    "ACI 318M-19 Table 21.2.2",
			RuleMinSteel:       "ACI 318M-19 Section 9.6.1.2",
			RuleMaxSteel:       "ACI 318M-19 Section 21.2.2 (tension-controlled limit)",
			RuleShearConcrete:  "ACI 318M-19 Table 22.5.5.1",
			RuleShearStirrups:  "ACI 318M-19 Section 22.5.10.5.3",
			RuleStirrupSpacing: "ACI 318M-19 Table 9.7.6.2.2",
			RuleSpanDepth:      "ACI 318M-19 Table 9.3.1.1",
			RuleCrackControl:   "ACI 318M-19 Section 24.3.2",
			RuleDevelopment:    "ACI 318M-19 Table 25.4.2.3",
			RuleBarSpacing:     "ACI 318M-19 Section 25.2.1",
			RuleGeometryBounds: "ACI 318M-19 Section 9.3 (practical limits)",
		},
	}
}

// Profiles returns the available code profiles keyed by the names the
// CLI accepts.
func Profiles() map[string]Profile {
	return map[string]Profile{
		"nscp2015": NSCP2015(),
		"aci318m":  ACI318M19(),
	}
}
