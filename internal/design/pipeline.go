package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

// Options are the switches of the top-level pipeline. SkipValidation
// and Strict are orthogonal: one disables input checking (for
// pre-validated batch use), the other escalates advisory findings to
// hard failures. Neither implies the other.
type Options struct {
	SkipValidation   bool
	Strict           bool
	CompressionSteel bool
	CompressionCover float64 // d' (mm)
	MainBar          float64 // tension bar diameter (mm)
	StirrupBar       float64 // stirrup diameter (mm)
	StirrupLegs      int
}

// Input is one complete design call.
type Input struct {
	Geometry model.SectionGeometry  `json:"geometry"`
	Material model.MaterialGrade    `json:"material"`
	Forces   model.FactoredForces   `json:"forces"`
	Span     float64                `json:"span"` // meters
	Support  model.SupportCondition `json:"support"`
	Options  Options                `json:"-"`
}

// DesignBeam runs the full compliance pipeline:
//
//	PENDING → VALIDATED → FLEXURE_DONE → SHEAR_DONE →
//	SERVICEABILITY_DONE → DETAILING_DONE → COMPLETE
//
// with ABORTED terminal on any fatal error. Fatal errors are returned
// alongside the partial verdict; advisory findings (serviceability,
// detailing bounds) become diagnostics and the pipeline runs to
// COMPLETE with OverallPassed = false, unless Strict escalates them.
// Error types the pipeline does not classify are returned unchanged.
func (d Designer) DesignBeam(in Input) (*model.ComplianceVerdict, error) {
	v := &model.ComplianceVerdict{
		Code:        d.Profile.Name,
		State:       model.StatePending,
		Geometry:    in.Geometry,
		Material:    in.Material,
		Forces:      in.Forces,
		Diagnostics: []model.Diagnostic{},
	}

	if !in.Options.SkipValidation {
		if err := d.Validate(in.Geometry, in.Material, in.Forces); err != nil {
			return abort(v, "validation", err)
		}
		if err := d.validateSpan(in.Span, in.Support); err != nil {
			return abort(v, "validation", err)
		}
	}
	if in.Forces.Axial != 0 {
		v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
			Severity: model.SeverityInfo,
			Code:     model.CauseAxialIgnored,
			Stage:    "validation",
			Message:  fmt.Sprintf("axial force %.2f kN is reported but not used; the engine designs pure flexural members", in.Forces.Axial),
		})
	}
	v.State = model.StateValidated

	flex, err := d.DesignFlexure(in.Geometry, in.Material, in.Forces.Moment, FlexureOptions{
		CompressionSteel: in.Options.CompressionSteel,
		CompressionCover: in.Options.CompressionCover,
	})
	if err != nil {
		// Flexure is a required stage; every error kind is fatal here.
		return abort(v, "flexure", err)
	}
	v.Flexure = flex
	if flex.DoublyReinforced {
		v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
			Severity: model.SeverityInfo,
			Code:     model.CauseMomentOverCapacity,
			Stage:    "flexure",
			Message: fmt.Sprintf("demand %.2f kN-m exceeds the singly reinforced limit %.2f kN-m; compression steel %.0f mm² added",
				in.Forces.Moment, flex.LimitingMoment, flex.AsCompression),
			Clause: d.Profile.Clause(code.RuleMaxSteel),
		})
	}
	v.State = model.StateFlexureDone

	shear, err := d.DesignShear(in.Geometry, in.Material, flex, in.Forces.Shear, ShearOptions{
		BarDiameter: in.Options.StirrupBar,
		Legs:        in.Options.StirrupLegs,
	})
	if err != nil {
		// Shear capacity failure is fatal as well.
		return abort(v, "shear", err)
	}
	v.Shear = shear
	if shear.SpacingGoverned {
		v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
			Severity: model.SeverityInfo,
			Code:     model.CauseSpacingCapApplied,
			Stage:    "shear",
			Message: fmt.Sprintf("calculated stirrup spacing exceeded the cap; using %.0f mm (more conservative, still safe)",
				shear.StirrupSpacing),
			Clause: d.Profile.Clause(code.RuleStirrupSpacing),
		})
	}
	v.State = model.StateShearDone

	svc, err := d.CheckServiceability(in.Geometry, in.Material, flex, in.Span, in.Support, in.Options.MainBar)
	if err != nil {
		return abort(v, "serviceability", err)
	}
	v.Serviceability = svc
	if !svc.DeflectionOK {
		diag := model.Diagnostic{
			Severity: model.SeverityWarning,
			Code:     model.CauseDeflectionLimit,
			Stage:    "serviceability",
			Message: fmt.Sprintf("span/depth ratio %.1f exceeds permissible %.1f",
				svc.ActualSpanDepth, svc.PermissibleSpanDepth),
			Clause:     d.Profile.Clause(code.RuleSpanDepth),
			Suggestion: "increase the effective depth or reduce the span",
		}
		if in.Options.Strict {
			return abort(v, "serviceability", escalate(diag, svc.ActualSpanDepth, svc.PermissibleSpanDepth, ""))
		}
		v.Diagnostics = append(v.Diagnostics, diag)
	}
	if !svc.CrackControlOK {
		diag := model.Diagnostic{
			Severity: model.SeverityWarning,
			Code:     model.CauseCrackControlSpacing,
			Stage:    "serviceability",
			Message: fmt.Sprintf("bar spacing %.0f mm exceeds the crack-control limit %.0f mm",
				svc.BarSpacing, svc.CrackSpacingLimit),
			Clause:     d.Profile.Clause(code.RuleCrackControl),
			Suggestion: "use more, smaller bars to tighten the spacing",
		}
		if in.Options.Strict {
			return abort(v, "serviceability", escalate(diag, svc.BarSpacing, svc.CrackSpacingLimit, "mm"))
		}
		v.Diagnostics = append(v.Diagnostics, diag)
	}
	v.State = model.StateServiceabilityDone

	det, err := d.ComputeDetailing(in.Geometry, in.Material, flex, shear, in.Span, DetailingOptions{
		BarDiameter: in.Options.MainBar,
	})
	if err != nil {
		var ce *ComplianceError
		var de *DesignError
		if (errors.As(err, &ce) || errors.As(err, &de)) && !in.Options.Strict {
			// Advisory stage: compliance findings become diagnostics.
			v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
				Severity:   model.SeverityWarning,
				Code:       model.CauseAnchorageMisfit,
				Stage:      "detailing",
				Message:    err.Error(),
				Suggestion: "adjust the bar layout or anchorage",
			})
		} else {
			// Calculation errors and unclassified error types always
			// propagate; masking them would hide programming errors.
			return abort(v, "detailing", err)
		}
	} else {
		v.Detailing = det
		if !det.SpacingOK {
			v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
				Severity: model.SeverityWarning,
				Code:     model.CauseBarSpacingTight,
				Stage:    "detailing",
				Message: fmt.Sprintf("clear bar spacing %.0f mm is below the minimum %.0f mm",
					det.ClearSpacing, det.MinClearSpacing),
				Clause:     d.Profile.Clause(code.RuleBarSpacing),
				Suggestion: "widen the beam or place bars in two layers",
			})
		}
	}
	v.State = model.StateDetailingDone

	v.State = model.StateComplete
	v.OverallPassed = passed(v.Diagnostics)
	return v, nil
}

func (d Designer) validateSpan(spanM float64, support model.SupportCondition) error {
	if spanM <= 0 || math.IsNaN(spanM) || math.IsInf(spanM, 0) {
		return &ValidationError{
			Field:      "span",
			Actual:     fmt.Sprintf("%v m", spanM),
			Bound:      "> 0",
			Suggestion: "provide the member span in meters",
		}
	}
	if _, ok := d.Profile.BaseSpanDepth(support); !ok {
		return &ValidationError{
			Field:      "support condition",
			Actual:     string(support),
			Bound:      "one of " + supportList(),
			Suggestion: "pick a recognized support condition",
		}
	}
	return nil
}

// abort records the fatal error on the verdict and returns both.
func abort(v *model.ComplianceVerdict, stage string, err error) (*model.ComplianceVerdict, error) {
	v.State = model.StateAborted
	v.OverallPassed = false
	v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
		Severity: model.SeverityError,
		Code:     causeOf(err),
		Stage:    stage,
		Message:  err.Error(),
	})
	return v, err
}

// escalate turns an advisory finding into a ComplianceError for strict mode.
func escalate(diag model.Diagnostic, actual, limit float64, unit string) error {
	return &ComplianceError{
		Quantity:   string(diag.Code),
		Actual:     actual,
		Limit:      limit,
		Unit:       unit,
		Clause:     diag.Clause,
		Suggestion: diag.Suggestion,
	}
}

func causeOf(err error) model.CauseCode {
	var ve *ValidationError
	var de *DesignError
	var ce *ComplianceError
	var le *CalculationError
	switch {
	case errors.As(err, &ve):
		return model.CauseInputOutOfRange
	case errors.As(err, &de):
		if de.Quantity == "shear" {
			return model.CauseShearOverCapacity
		}
		return model.CauseMomentOverCapacity
	case errors.As(err, &ce):
		if ce.LowerBound {
			return model.CauseBelowMinimumSteel
		}
		return model.CauseAboveMaximumSteel
	case errors.As(err, &le):
		return model.CauseNumericalFailure
	default:
		// An error type the pipeline does not classify.
		return model.CauseInternalError
	}
}

func passed(diags []model.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity != model.SeverityInfo {
			return false
		}
	}
	return true
}
