package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcheck/internal/design"
	"github.com/structcalc/beamcheck/internal/model"
)

var (
	flexWidth       float64
	flexDepth       float64
	flexCover       float64
	flexConcrete    string
	flexSteel       string
	flexMu          float64
	flexCompression bool
)

var beamFlexureCmd = &cobra.Command{
	Use:   "flexure",
	Short: "Run the flexure stage only",
	Long: `Compute the required tension reinforcement for a factored moment
without running the rest of the compliance pipeline. Useful for quick
sizing and for callers that assemble their own checks.

Example:
  beamcheck beam flexure -b 300 --depth 550 -c 65 --concrete C28 --steel G415 -m 150`,
	RunE: runBeamFlexure,
}

func init() {
	beamCmd.AddCommand(beamFlexureCmd)

	beamFlexureCmd.Flags().Float64VarP(&flexWidth, "width", "b", 0, "Beam width (mm) [required]")
	beamFlexureCmd.Flags().Float64Var(&flexDepth, "depth", 0, "Beam overall depth (mm) [required]")
	beamFlexureCmd.Flags().Float64VarP(&flexCover, "cover", "c", 65, "Effective cover to steel centroid (mm)")
	beamFlexureCmd.Flags().StringVar(&flexConcrete, "concrete", "C28", "Concrete grade")
	beamFlexureCmd.Flags().StringVar(&flexSteel, "steel", "G415", "Steel grade")
	beamFlexureCmd.Flags().Float64VarP(&flexMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	beamFlexureCmd.Flags().BoolVar(&flexCompression, "compression-steel", false, "Allow doubly reinforced fallback")

	beamFlexureCmd.MarkFlagRequired("width")
	beamFlexureCmd.MarkFlagRequired("depth")
	beamFlexureCmd.MarkFlagRequired("mu")
}

func runBeamFlexure(cmd *cobra.Command, args []string) error {
	p, err := profile()
	if err != nil {
		return err
	}

	concrete, ok := model.ParseConcreteGrade(flexConcrete)
	if !ok {
		return fmt.Errorf("unknown concrete grade %q", flexConcrete)
	}
	steel, ok := model.ParseSteelGrade(flexSteel)
	if !ok {
		return fmt.Errorf("unknown steel grade %q", flexSteel)
	}

	geom := model.NewSectionGeometry(flexWidth, flexDepth, flexCover)
	mat := model.MaterialGrade{Concrete: concrete, Steel: steel}

	d := design.New(p)
	if err := d.Validate(geom, mat, model.FactoredForces{Moment: flexMu}); err != nil {
		return err
	}

	result, err := d.DesignFlexure(geom, mat, flexMu, design.FlexureOptions{
		CompressionSteel: flexCompression,
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nFLEXURE DESIGN (%s)\n", p.Name)
	fmt.Fprintf(tw, "As required:\t%.0f mm²\n", result.AsRequired)
	fmt.Fprintf(tw, "As min / max:\t%.0f / %.0f mm²\n", result.AsMin, result.AsMax)
	if result.DoublyReinforced {
		fmt.Fprintf(tw, "A's required:\t%.0f mm²\n", result.AsCompression)
	}
	fmt.Fprintf(tw, "Neutral axis:\tc = %.1f mm (limit %.1f mm)\n", result.NeutralAxisDepth, result.MaxNeutralAxisDepth)
	fmt.Fprintf(tw, "Capacity:\tφMn = %.2f kN-m (limit %.2f kN-m)\n", result.DesignCapacity, result.LimitingMoment)
	fmt.Fprintf(tw, "Classification:\t%s (εt = %.4f, φ = %.2f)\n", result.Classification, result.TensileStrain, result.Phi)
	fmt.Fprintln(tw)
	return tw.Flush()
}
