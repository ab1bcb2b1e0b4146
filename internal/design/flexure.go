package design

import (
	"fmt"
	"math"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

// FlexureOptions tune the flexure engine.
type FlexureOptions struct {
	// CompressionSteel allows the doubly-reinforced fallback when the
	// demand exceeds the singly-reinforced limiting moment. Without it
	// the engine fails with a DesignError instead.
	CompressionSteel bool

	// CompressionCover is d', the cover to the centroid of compression
	// steel (mm). Defaults to the tension cover when zero.
	CompressionCover float64
}

// tolerance for classifying a section sitting on the neutral-axis limit.
const classifyTol = 1e-3

// LimitingMoment returns the design moment capacity φMn,max (kN-m) of
// the section at the maximum permitted neutral-axis depth, i.e. the
// largest moment a singly reinforced section may be designed for.
func (d Designer) LimitingMoment(geom model.SectionGeometry, mat model.MaterialGrade) float64 {
	fc, _ := mat.Fc()
	fy, _ := mat.Fy()
	p := d.Profile

	rhoMax := p.RhoMax(fc, fy)
	aMax := rhoMax * fy * geom.EffectiveDepth / (0.85 * fc)
	return p.PhiFlexure * 0.85 * fc * geom.Width * aMax * (geom.EffectiveDepth - aMax/2) / 1e6
}

// SinglyFeasible reports whether the moment can be resisted without
// compression reinforcement. Optimizers probe feasibility through this
// predicate; the error path is reserved for caller-facing failures.
func (d Designer) SinglyFeasible(geom model.SectionGeometry, mat model.MaterialGrade, momentKNm float64) bool {
	return momentKNm <= d.LimitingMoment(geom, mat)
}

// DesignFlexure computes the required tension (and, when permitted,
// compression) reinforcement for a factored moment (kN-m).
//
// Fails with *DesignError when the section cannot resist the moment
// within the permitted neutral-axis depth, *ComplianceError when the
// required steel violates the minimum/maximum bounds, and
// *CalculationError on numerical degeneracy. The boundary at the
// limiting moment is inclusive.
func (d Designer) DesignFlexure(geom model.SectionGeometry, mat model.MaterialGrade, momentKNm float64, opts FlexureOptions) (*model.FlexureResult, error) {
	fc, _ := mat.Fc()
	fy, _ := mat.Fy()
	p := d.Profile

	beta1 := p.Beta1(fc)
	rhoMin := p.RhoMin(fc, fy)
	rhoMax := p.RhoMax(fc, fy)
	asMin := rhoMin * geom.Width * geom.EffectiveDepth
	asMax := rhoMax * geom.Width * geom.EffectiveDepth

	aMax := rhoMax * fy * geom.EffectiveDepth / (0.85 * fc)
	cMax := aMax / beta1
	limiting := p.PhiFlexure * 0.85 * fc * geom.Width * aMax * (geom.EffectiveDepth - aMax/2) / 1e6

	if momentKNm > limiting {
		if !opts.CompressionSteel {
			return nil, &DesignError{
				Quantity:   "moment",
				Demand:     momentKNm,
				Capacity:   limiting,
				Unit:       "kN-m",
				Clause:     p.Clause(code.RuleMaxSteel),
				Suggestion: "increase the depth, add compression steel, or use a higher concrete grade",
			}
		}
		return d.designDoubly(geom, fc, fy, momentKNm, opts, beta1, asMin, asMax, aMax, cMax, limiting)
	}

	// Singly reinforced: closed-form lever-arm solution from
	// force equilibrium and strain compatibility.
	muNmm := momentKNm * 1e6
	rn := muNmm / (p.PhiFlexure * geom.Width * geom.EffectiveDepth * geom.EffectiveDepth)
	term := 2 * rn / (0.85 * fc)
	if term > 1 || math.IsNaN(term) {
		// Unreachable for demand at or below the limiting moment;
		// trips only on degenerate intermediates.
		return nil, &CalculationError{
			Stage:  "flexure",
			Reason: "stress-block discriminant out of range",
			Intermediates: map[string]float64{
				"Rn": rn, "term": term, "mu": momentKNm, "phiMnMax": limiting,
			},
		}
	}

	rhoReq := (0.85 * fc / fy) * (1 - math.Sqrt(1-term))
	asReq := rhoReq * geom.Width * geom.EffectiveDepth

	a := asReq * fy / (0.85 * fc * geom.Width)
	c := a / beta1
	leverArm := geom.EffectiveDepth - a/2
	if !isFinite(asReq) || !isFinite(c) || leverArm < 1e-9*geom.EffectiveDepth {
		return nil, &CalculationError{
			Stage:  "flexure",
			Reason: "degenerate lever arm",
			Intermediates: map[string]float64{
				"asReq": asReq, "a": a, "c": c, "leverArm": leverArm, "rhoReq": rhoReq,
			},
		}
	}

	if asReq < asMin {
		return nil, &ComplianceError{
			Quantity:   "tension steel area",
			Actual:     asReq,
			Limit:      asMin,
			Unit:       "mm²",
			LowerBound: true,
			Clause:     p.Clause(code.RuleMinSteel),
			Suggestion: fmt.Sprintf("provide the minimum steel area %.0f mm² or reduce the section size", asMin),
		}
	}
	// Small relative tolerance keeps the inclusive boundary at the
	// limiting moment from tripping on floating-point error.
	if asReq > asMax*(1+1e-9) {
		return nil, &ComplianceError{
			Quantity:   "tension steel area",
			Actual:     asReq,
			Limit:      asMax,
			Unit:       "mm²",
			Clause:     p.Clause(code.RuleMaxSteel),
			Suggestion: "increase the section size or add compression steel",
		}
	}

	epsilonT := p.EpsilonCU * (geom.EffectiveDepth - c) / c
	phi := p.Phi(epsilonT, fy)

	return &model.FlexureResult{
		AsRequired:          asReq,
		AsMin:               asMin,
		AsMax:               asMax,
		NeutralAxisDepth:    c,
		MaxNeutralAxisDepth: cMax,
		LimitingMoment:      limiting,
		SteelRatio:          rhoReq,
		TensileStrain:       epsilonT,
		Phi:                 phi,
		DesignCapacity:      phi * asReq * fy * leverArm / 1e6,
		Classification:      classify(c, cMax),
	}, nil
}

// designDoubly resolves the two-unknown system for a doubly reinforced
// section: tension steel pinned at the ductility limit plus a steel
// couple carrying the excess moment.
func (d Designer) designDoubly(geom model.SectionGeometry, fc, fy, momentKNm float64, opts FlexureOptions, beta1, asMin, asMax, aMax, cMax, limiting float64) (*model.FlexureResult, error) {
	p := d.Profile

	coverComp := opts.CompressionCover
	if coverComp == 0 {
		coverComp = geom.Cover
	}

	mu2 := momentKNm - limiting
	leverArm := geom.EffectiveDepth - coverComp
	if leverArm <= 0 {
		return nil, &CalculationError{
			Stage:  "flexure",
			Reason: "compression cover at or below effective depth",
			Intermediates: map[string]float64{
				"d": geom.EffectiveDepth, "dPrime": coverComp,
			},
		}
	}

	// Compression steel stress from strain compatibility at c = cMax.
	epsilonSc := p.EpsilonCU * (cMax - coverComp) / cMax
	if epsilonSc <= 0 {
		return nil, &CalculationError{
			Stage:  "flexure",
			Reason: "compression steel below the neutral axis",
			Intermediates: map[string]float64{
				"cMax": cMax, "dPrime": coverComp, "epsilonSc": epsilonSc,
			},
		}
	}
	fsc := math.Min(epsilonSc*p.Es, fy)

	as2 := mu2 * 1e6 / (p.PhiFlexure * fy * leverArm)
	ascReq := as2 * fy / fsc
	asTotal := asMax + as2

	if ascReq > asMax {
		return nil, &DesignError{
			Quantity:   "moment",
			Demand:     momentKNm,
			Capacity:   limiting + p.PhiFlexure*asMax*fsc*leverArm/1e6,
			Unit:       "kN-m",
			Clause:     p.Clause(code.RuleMaxSteel),
			Suggestion: "the section is too small even with compression steel; increase the depth or concrete grade",
		}
	}

	mn1 := asMax * fy * (geom.EffectiveDepth - aMax/2)
	mn2 := as2 * fy * leverArm
	phiMn := p.PhiFlexure * (mn1 + mn2) / 1e6

	return &model.FlexureResult{
		AsRequired:          asTotal,
		AsMin:               asMin,
		AsMax:               asMax,
		AsCompression:       ascReq,
		NeutralAxisDepth:    cMax,
		MaxNeutralAxisDepth: cMax,
		LimitingMoment:      limiting,
		SteelRatio:          asTotal / (geom.Width * geom.EffectiveDepth),
		TensileStrain:       p.TensionCtrlStrain,
		Phi:                 p.PhiFlexure,
		DesignCapacity:      phiMn,
		Classification:      model.AtLimit,
		DoublyReinforced:    true,
	}, nil
}

// AnalyzeFlexure computes the design capacity of a section with a given
// tension steel area (mm²). It backs the curtailment computation and is
// independently callable for capacity checks.
func (d Designer) AnalyzeFlexure(geom model.SectionGeometry, mat model.MaterialGrade, as float64) (*model.FlexureResult, error) {
	if as <= 0 {
		return nil, &ValidationError{
			Field:      "steel area",
			Actual:     fmt.Sprintf("%.2f mm²", as),
			Bound:      "> 0",
			Suggestion: "provide a positive reinforcement area",
		}
	}

	fc, _ := mat.Fc()
	fy, _ := mat.Fy()
	p := d.Profile

	beta1 := p.Beta1(fc)
	rhoMin := p.RhoMin(fc, fy)
	rhoMax := p.RhoMax(fc, fy)
	aMax := rhoMax * fy * geom.EffectiveDepth / (0.85 * fc)
	cMax := aMax / beta1

	a := as * fy / (0.85 * fc * geom.Width)
	c := a / beta1
	if !isFinite(c) || c <= 0 {
		return nil, &CalculationError{
			Stage:         "flexure",
			Reason:        "degenerate neutral-axis depth",
			Intermediates: map[string]float64{"as": as, "a": a, "c": c},
		}
	}

	epsilonT := p.EpsilonCU * (geom.EffectiveDepth - c) / c
	phi := p.Phi(epsilonT, fy)

	return &model.FlexureResult{
		AsRequired:          as,
		AsMin:               rhoMin * geom.Width * geom.EffectiveDepth,
		AsMax:               rhoMax * geom.Width * geom.EffectiveDepth,
		NeutralAxisDepth:    c,
		MaxNeutralAxisDepth: cMax,
		LimitingMoment:      d.LimitingMoment(geom, mat),
		SteelRatio:          geom.SteelRatio(as),
		TensileStrain:       epsilonT,
		Phi:                 phi,
		DesignCapacity:      phi * as * fy * (geom.EffectiveDepth - a/2) / 1e6,
		Classification:      classify(c, cMax),
	}, nil
}

func classify(c, cMax float64) model.Classification {
	ratio := c / cMax
	switch {
	case ratio < 1-classifyTol:
		return model.UnderReinforced
	case ratio <= 1+classifyTol:
		return model.AtLimit
	default:
		return model.OverReinforced
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
