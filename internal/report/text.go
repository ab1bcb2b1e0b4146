// Package report renders a compliance verdict for humans: a tabwriter
// text report, an ASCII cross-section diagram, and image export of the
// designed section.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/structcalc/beamcheck/internal/model"
)

// WriteVerdict writes the full text report for a verdict.
func WriteVerdict(w io.Writer, v *model.ComplianceVerdict) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\nBEAM DESIGN VERDICT (%s)\n", v.Code)
	fmt.Fprintln(tw, strings.Repeat("─", 48))
	fmt.Fprintf(tw, "State:\t%s\n", v.State)
	fmt.Fprintf(tw, "Overall:\t%s\n", passFail(v.OverallPassed))

	fmt.Fprintln(tw, "\nINPUT")
	fmt.Fprintf(tw, "  Section:\t%.0f × %.0f mm (d = %.0f mm, cover %.0f mm)\n",
		v.Geometry.Width, v.Geometry.Depth, v.Geometry.EffectiveDepth, v.Geometry.Cover)
	fmt.Fprintf(tw, "  Materials:\t%s / %s\n", v.Material.Concrete, v.Material.Steel)
	fmt.Fprintf(tw, "  Forces:\tMu = %.2f kN-m, Vu = %.2f kN\n", v.Forces.Moment, v.Forces.Shear)

	if f := v.Flexure; f != nil {
		fmt.Fprintln(tw, "\nFLEXURE")
		fmt.Fprintf(tw, "  As required:\t%.0f mm²\t(min %.0f, max %.0f)\n", f.AsRequired, f.AsMin, f.AsMax)
		if f.DoublyReinforced {
			fmt.Fprintf(tw, "  A's required:\t%.0f mm²\t(compression steel)\n", f.AsCompression)
		}
		fmt.Fprintf(tw, "  Neutral axis:\tc = %.1f mm\t(limit %.1f mm)\n", f.NeutralAxisDepth, f.MaxNeutralAxisDepth)
		fmt.Fprintf(tw, "  Capacity:\tφMn = %.2f kN-m\t(limit %.2f kN-m)\n", f.DesignCapacity, f.LimitingMoment)
		fmt.Fprintf(tw, "  Classification:\t%s\t(εt = %.4f, φ = %.2f)\n", f.Classification, f.TensileStrain, f.Phi)
	}

	if s := v.Shear; s != nil {
		fmt.Fprintln(tw, "\nSHEAR")
		fmt.Fprintf(tw, "  Concrete capacity:\tVc = %.2f kN\n", s.ConcreteCapacity)
		if s.MinimumOnly {
			fmt.Fprintf(tw, "  Stirrups:\tminimum only, %d-leg %.0f mm @ %.0f mm\n", s.Legs, s.BarDiameter, s.StirrupSpacing)
		} else {
			fmt.Fprintf(tw, "  Stirrups:\t%d-leg %.0f mm @ %.0f mm\t(cap %.0f mm)\n", s.Legs, s.BarDiameter, s.StirrupSpacing, s.MaxSpacing)
		}
	}

	if sv := v.Serviceability; sv != nil {
		fmt.Fprintln(tw, "\nSERVICEABILITY")
		fmt.Fprintf(tw, "  Span/depth:\t%.1f vs %.1f permissible\t%s\n",
			sv.ActualSpanDepth, sv.PermissibleSpanDepth, passFail(sv.DeflectionOK))
		fmt.Fprintf(tw, "  Crack control:\tspacing %.0f mm vs %.0f mm limit\t%s\n",
			sv.BarSpacing, sv.CrackSpacingLimit, passFail(sv.CrackControlOK))
	}

	if dt := v.Detailing; dt != nil {
		fmt.Fprintln(tw, "\nDETAILING")
		fmt.Fprintf(tw, "  Bars:\t%d × %.0f mm\t(clear spacing %.0f mm, min %.0f mm)\n",
			dt.BarCount, dt.BarDiameter, dt.ClearSpacing, dt.MinClearSpacing)
		fmt.Fprintf(tw, "  Development:\tld = %.0f mm\t(available %.0f mm)\n", dt.DevelopmentLength, dt.AvailableEmbedment)
		if dt.CurtailmentDistance > 0 {
			fmt.Fprintf(tw, "  Curtailment:\thalf the bars may stop %.0f mm from the support\n", dt.CurtailmentDistance)
		}
	}

	if len(v.Diagnostics) > 0 {
		fmt.Fprintln(tw, "\nDIAGNOSTICS")
		for _, diag := range v.Diagnostics {
			fmt.Fprintf(tw, "  [%s]\t%s: %s\n", strings.ToUpper(string(diag.Severity)), diag.Stage, diag.Message)
			if diag.Suggestion != "" {
				fmt.Fprintf(tw, "  \t→ %s\n", diag.Suggestion)
			}
		}
	}
	fmt.Fprintln(tw)

	return tw.Flush()
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
