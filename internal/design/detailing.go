package design

import (
	"fmt"
	"math"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

const (
	defaultMainBar = 20 // mm
	sideCover      = 40 // clear side cover to the outermost bar (mm)
)

// DetailingOptions tune the bar layout assumptions.
type DetailingOptions struct {
	BarDiameter float64 // main tension bar (mm), default 20
}

// layoutBars distributes a steel area over equal bars in one layer and
// returns the bar count, the clear spacing between bars, and the
// center-to-center spacing.
func layoutBars(geom model.SectionGeometry, as, db float64) (count int, clear, centers float64) {
	barArea := math.Pi / 4 * db * db
	count = int(math.Ceil(as / barArea))
	if count < 2 {
		count = 2
	}
	clear = (geom.Width - 2*sideCover - float64(count)*db) / float64(count-1)
	centers = clear + db
	return count, clear, centers
}

// ComputeDetailing derives development length, bar layout, and the
// curtailment point for the designed section.
//
// Fails with *ComplianceError when the required development length
// cannot physically fit in the available embedment - a geometric
// infeasibility distinct from a strength one.
func (d Designer) ComputeDetailing(geom model.SectionGeometry, mat model.MaterialGrade, flex *model.FlexureResult, shear *model.ShearResult, spanM float64, opts DetailingOptions) (*model.DetailingResult, error) {
	fc, _ := mat.Fc()
	fy, _ := mat.Fy()
	p := d.Profile

	db := opts.BarDiameter
	if db == 0 {
		db = defaultMainBar
	}

	ld := p.DevelopmentLength(fy, fc, db)

	// Embedment available for the critical bar: half the span on each
	// side of midspan, less the end cover.
	available := spanM*1000/2 - geom.Cover
	if ld > available {
		return nil, &ComplianceError{
			Quantity:   "development length",
			Actual:     ld,
			Limit:      available,
			Unit:       "mm",
			Clause:     p.Clause(code.RuleDevelopment),
			Suggestion: fmt.Sprintf("use smaller bars (more of them) or hooked anchorage; %.0f mm must fit within %.0f mm", ld, available),
		}
	}

	count, clear, _ := layoutBars(geom, flex.AsRequired, db)
	minClear := math.Max(p.MinClearSpacing, db)

	// Curtailment: under a parabolic moment envelope, the distance from
	// the support where half the bars may be cut, extended by the
	// greater of d and 12 bar diameters.
	curtailed := float64(count/2) * math.Pi / 4 * db * db
	remaining := flex.AsRequired - curtailed
	var curtailment float64
	if remaining > 0 && !flex.DoublyReinforced {
		capRemaining, err := d.AnalyzeFlexure(geom, mat, remaining)
		if err == nil && flex.DesignCapacity > 0 {
			// M(x) = Mu·4x(L-x)/L², solve M(x) = capacity of the
			// continuing bars.
			frac := capRemaining.DesignCapacity / flex.DesignCapacity
			if frac < 1 {
				spanMm := spanM * 1000
				x := spanMm / 2 * (1 - math.Sqrt(1-frac))
				ext := math.Max(geom.EffectiveDepth, 12*db)
				curtailment = math.Max(x-ext, 0)
			}
		}
	}

	return &model.DetailingResult{
		DevelopmentLength:   ld,
		AvailableEmbedment:  available,
		AnchorageOK:         true,
		BarDiameter:         db,
		BarCount:            count,
		ClearSpacing:        clear,
		MinClearSpacing:     minClear,
		SpacingOK:           clear >= minClear,
		CurtailmentDistance: curtailment,
	}, nil
}
