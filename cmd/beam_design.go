package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/structcalc/beamcheck/internal/design"
	"github.com/structcalc/beamcheck/internal/model"
	"github.com/structcalc/beamcheck/internal/report"
)

var (
	designWidth    float64
	designDepth    float64
	designCover    float64
	designConcrete string
	designSteel    string
	designMu       float64
	designVu       float64
	designSpan     float64
	designSupport  string

	designStrict      bool
	designNoValidate  bool
	designCompression bool
	designJSON        bool
	designShowDiagram bool
	designExportFile  string
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Run the full design & compliance pipeline for one beam",
	Long: `Design the reinforcement for a rectangular beam and check every
code criterion: flexure, shear, serviceability, and detailing. The
result is a single compliance verdict with capacity margins and
actionable diagnostics.

Examples:
  # Design a 300x550 beam for Mu=150 kN-m, Vu=120 kN over a 6 m simple span
  beamcheck beam design -b 300 --depth 550 -c 65 --concrete C28 --steel G415 \
      -m 150 -s 120 --span 6 --support simple

  # Escalate serviceability warnings to hard failures
  beamcheck beam design -b 300 --depth 550 -m 150 -s 120 --span 9 --strict`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	beamDesignCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Beam width (mm) [required]")
	beamDesignCmd.Flags().Float64Var(&designDepth, "depth", 0, "Beam overall depth (mm) [required]")
	beamDesignCmd.Flags().Float64VarP(&designCover, "cover", "c", 65, "Effective cover to steel centroid (mm)")

	beamDesignCmd.Flags().StringVar(&designConcrete, "concrete", "C28", "Concrete grade (C21, C28, C35, C42)")
	beamDesignCmd.Flags().StringVar(&designSteel, "steel", "G415", "Steel grade (G275, G415, G520)")

	beamDesignCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	beamDesignCmd.Flags().Float64VarP(&designVu, "vu", "s", 0, "Factored shear Vu (kN)")
	beamDesignCmd.Flags().Float64Var(&designSpan, "span", 0, "Member span (m) [required]")
	beamDesignCmd.Flags().StringVar(&designSupport, "support", "simple", "Support condition (cantilever, simple, one-end-continuous, continuous)")

	beamDesignCmd.Flags().BoolVar(&designStrict, "strict", false, "Escalate advisory findings to hard failures")
	beamDesignCmd.Flags().BoolVar(&designNoValidate, "no-validate", false, "Skip input validation (pre-validated inputs only)")
	beamDesignCmd.Flags().BoolVar(&designCompression, "compression-steel", false, "Allow doubly reinforced fallback")
	beamDesignCmd.Flags().BoolVar(&designJSON, "json", false, "Emit the verdict as JSON")
	beamDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section diagram")
	beamDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")

	beamDesignCmd.MarkFlagRequired("width")
	beamDesignCmd.MarkFlagRequired("depth")
	beamDesignCmd.MarkFlagRequired("mu")
	beamDesignCmd.MarkFlagRequired("span")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	p, err := profile()
	if err != nil {
		return err
	}

	concrete, ok := model.ParseConcreteGrade(designConcrete)
	if !ok {
		return fmt.Errorf("unknown concrete grade %q", designConcrete)
	}
	steel, ok := model.ParseSteelGrade(designSteel)
	if !ok {
		return fmt.Errorf("unknown steel grade %q", designSteel)
	}
	support, ok := model.ParseSupportCondition(designSupport)
	if !ok {
		return fmt.Errorf("unknown support condition %q", designSupport)
	}

	d := design.New(p)
	verdict, designErr := d.DesignBeam(design.Input{
		Geometry: model.NewSectionGeometry(designWidth, designDepth, designCover),
		Material: model.MaterialGrade{Concrete: concrete, Steel: steel},
		Forces:   model.FactoredForces{Moment: designMu, Shear: designVu},
		Span:     designSpan,
		Support:  support,
		Options: design.Options{
			SkipValidation:   designNoValidate,
			Strict:           designStrict,
			CompressionSteel: designCompression,
			MainBar:          viper.GetFloat64("bars.main"),
			StirrupBar:       viper.GetFloat64("bars.stirrup"),
			StirrupLegs:      viper.GetInt("bars.legs"),
		},
	})

	if designJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(verdict); err != nil {
			return err
		}
	} else {
		if err := report.WriteVerdict(os.Stdout, verdict); err != nil {
			return err
		}
		if designShowDiagram && verdict.Flexure != nil {
			fc, _ := verdict.Material.Fc()
			fmt.Print(report.ASCIISection(verdict.Geometry, verdict.Flexure, p.EpsilonCU, p.Beta1(fc)))
		}
	}

	if designExportFile != "" && verdict.Flexure != nil {
		fc, _ := verdict.Material.Fc()
		if err := report.ExportSection(verdict.Geometry, verdict.Flexure, p.Beta1(fc), designExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Section diagram exported to %s\n", designExportFile)
	}

	if designErr != nil {
		logger.Error().Err(designErr).Msg("design aborted")
		os.Exit(2)
	}
	return nil
}
