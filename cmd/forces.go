package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcheck/internal/loads"
)

var (
	momentEffects loads.Effects
	shearEffects  loads.Effects

	forcesShowAll    bool
	forcesSimplified bool
)

var forcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Compute factored design forces from unfactored load effects",
	Long: `Compute the governing factored moment and shear from unfactored
load effects using the strength-design load combinations.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Example:
  beamcheck forces --md 50 --ml 30 --vd 40 --vl 25`,
	RunE: runForces,
}

func init() {
	rootCmd.AddCommand(forcesCmd)

	forcesCmd.Flags().Float64Var(&momentEffects.Dead, "md", 0, "Dead load moment (kN-m)")
	forcesCmd.Flags().Float64Var(&momentEffects.Live, "ml", 0, "Live load moment (kN-m)")
	forcesCmd.Flags().Float64Var(&momentEffects.Roof, "mlr", 0, "Roof live load moment (kN-m)")
	forcesCmd.Flags().Float64Var(&momentEffects.Wind, "mw", 0, "Wind load moment (kN-m)")
	forcesCmd.Flags().Float64Var(&momentEffects.Earthquake, "me", 0, "Earthquake load moment (kN-m)")
	forcesCmd.Flags().Float64Var(&momentEffects.Rain, "mr", 0, "Rain load moment (kN-m)")

	forcesCmd.Flags().Float64Var(&shearEffects.Dead, "vd", 0, "Dead load shear (kN)")
	forcesCmd.Flags().Float64Var(&shearEffects.Live, "vl", 0, "Live load shear (kN)")
	forcesCmd.Flags().Float64Var(&shearEffects.Roof, "vlr", 0, "Roof live load shear (kN)")
	forcesCmd.Flags().Float64Var(&shearEffects.Wind, "vw", 0, "Wind load shear (kN)")
	forcesCmd.Flags().Float64Var(&shearEffects.Earthquake, "ve", 0, "Earthquake load shear (kN)")
	forcesCmd.Flags().Float64Var(&shearEffects.Rain, "vr", 0, "Rain load shear (kN)")

	forcesCmd.Flags().BoolVar(&forcesShowAll, "all", false, "Show every combination, not just the governing one")
	forcesCmd.Flags().BoolVar(&forcesSimplified, "simplified", false, "Use the gravity-only combinations (1.4D, 1.2D+1.6L)")
}

func runForces(cmd *cobra.Command, args []string) error {
	combos := loads.Combinations()
	if forcesSimplified {
		combos = loads.Simplified()
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	if forcesShowAll {
		fmt.Fprintln(tw, "\nID\tCombination\tMu (kN-m)\tVu (kN)")
		for _, c := range combos {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\n", c.ID, c.Description, c.Apply(momentEffects), c.Apply(shearEffects))
		}
	}

	mu, muCombo := loads.Governing(momentEffects, combos)
	vu, vuCombo := loads.Governing(shearEffects, combos)

	fmt.Fprintln(tw, "\nGOVERNING FACTORED FORCES")
	fmt.Fprintf(tw, "Mu:\t%.2f kN-m\t(%s)\n", mu, muCombo.Description)
	fmt.Fprintf(tw, "Vu:\t%.2f kN\t(%s)\n", vu, vuCombo.Description)
	fmt.Fprintln(tw)
	return tw.Flush()
}
