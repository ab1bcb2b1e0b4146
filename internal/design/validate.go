package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

// Validate performs the eager range and enumeration checks on a design
// call's inputs. On success it returns nil; on the first violation it
// returns a *ValidationError naming the field, its value, the violated
// bound, and a corrective suggestion. Downstream engines assume valid
// input and do not re-check.
func (d Designer) Validate(geom model.SectionGeometry, mat model.MaterialGrade, forces model.FactoredForces) error {
	b := d.Profile.Bounds
	clause := d.Profile.Clause(code.RuleGeometryBounds)

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"width", geom.Width},
		{"depth", geom.Depth},
		{"effective depth", geom.EffectiveDepth},
		{"cover", geom.Cover},
		{"moment", forces.Moment},
		{"shear", forces.Shear},
		{"axial", forces.Axial},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{
				Field:      f.name,
				Actual:     fmt.Sprintf("%v", f.value),
				Bound:      "finite number",
				Suggestion: "provide a finite numeric value",
			}
		}
	}

	if geom.Width < b.MinWidth || geom.Width > b.MaxWidth {
		return &ValidationError{
			Field:      "width",
			Actual:     fmt.Sprintf("%.1f mm", geom.Width),
			Bound:      fmt.Sprintf("[%.0f, %.0f] mm", b.MinWidth, b.MaxWidth),
			Clause:     clause,
			Suggestion: fmt.Sprintf("use a width of at least %.0f mm", b.MinWidth),
		}
	}
	if geom.Depth <= 0 || geom.Depth > b.MaxDepth {
		return &ValidationError{
			Field:      "depth",
			Actual:     fmt.Sprintf("%.1f mm", geom.Depth),
			Bound:      fmt.Sprintf("(0, %.0f] mm", b.MaxDepth),
			Clause:     clause,
			Suggestion: "use a positive overall depth within practical limits",
		}
	}
	if geom.EffectiveDepth < b.MinEffectiveDepth {
		return &ValidationError{
			Field:      "effective depth",
			Actual:     fmt.Sprintf("%.1f mm", geom.EffectiveDepth),
			Bound:      fmt.Sprintf(">= %.0f mm", b.MinEffectiveDepth),
			Clause:     clause,
			Suggestion: fmt.Sprintf("increase the overall depth so d >= %.0f mm", b.MinEffectiveDepth),
		}
	}
	if geom.EffectiveDepth >= geom.Depth {
		return &ValidationError{
			Field:      "effective depth",
			Actual:     fmt.Sprintf("%.1f mm", geom.EffectiveDepth),
			Bound:      fmt.Sprintf("< overall depth %.1f mm", geom.Depth),
			Suggestion: "set effective depth = depth - cover",
		}
	}
	if geom.Cover < b.MinCover || geom.Cover > b.MaxCover {
		return &ValidationError{
			Field:      "cover",
			Actual:     fmt.Sprintf("%.1f mm", geom.Cover),
			Bound:      fmt.Sprintf("[%.0f, %.0f] mm", b.MinCover, b.MaxCover),
			Clause:     clause,
			Suggestion: fmt.Sprintf("use a cover between %.0f and %.0f mm", b.MinCover, b.MaxCover),
		}
	}

	if _, ok := mat.Fc(); !ok {
		return &ValidationError{
			Field:      "concrete grade",
			Actual:     string(mat.Concrete),
			Bound:      "one of " + gradeList(model.ConcreteGrades()),
			Suggestion: "pick a standard concrete grade",
		}
	}
	if _, ok := mat.Fy(); !ok {
		return &ValidationError{
			Field:      "steel grade",
			Actual:     string(mat.Steel),
			Bound:      "one of " + gradeList(model.SteelGrades()),
			Suggestion: "pick a standard steel grade",
		}
	}

	if forces.Moment < 0 {
		return &ValidationError{
			Field:      "moment",
			Actual:     fmt.Sprintf("%.2f kN-m", forces.Moment),
			Bound:      ">= 0",
			Suggestion: "normalize the sign convention before calling the engine",
		}
	}
	if forces.Shear < 0 {
		return &ValidationError{
			Field:      "shear",
			Actual:     fmt.Sprintf("%.2f kN", forces.Shear),
			Bound:      ">= 0",
			Suggestion: "normalize the sign convention before calling the engine",
		}
	}

	return nil
}

func gradeList[T ~string](grades []T) string {
	names := make([]string, len(grades))
	for i, g := range grades {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
