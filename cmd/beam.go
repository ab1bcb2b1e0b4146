package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam design commands",
	Long: `Design rectangular reinforced concrete beam sections.

Subcommands run the full compliance pipeline or individual stages
(flexure only) for a given geometry, material grades, and factored
forces.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
