package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/structcalc/beamcheck/internal/batch"
	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/design"
)

var (
	batchWorkers int
	batchJSON    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <job-file.yaml>",
	Short: "Design many independent beams from a YAML job file",
	Long: `Run the compliance pipeline over every beam in a job file on a
stateless worker pool. Beams are fully isolated: one beam's failure
never affects another's result, and output order matches input order.

Job file:

  name: tower-b2-beams
  code: nscp2015
  beams:
    - name: B-101
      geometry: {width: 300, depth: 550, cover: 65}
      material: {concrete: C28, steel: G415}
      forces: {moment: 150, shear: 120}
      span: 6.0
      support: simple`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Worker count (default: number of CPUs)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit results as JSON lines")
}

func runBatch(cmd *cobra.Command, args []string) error {
	job, err := batch.LoadJob(args[0])
	if err != nil {
		return err
	}

	p, err := profile()
	if err != nil {
		return err
	}
	if job.Code != "" {
		jp, ok := code.Profiles()[strings.ToLower(job.Code)]
		if !ok {
			return fmt.Errorf("job file: unknown code profile %q", job.Code)
		}
		p = jp
	}

	inputs := make([]design.Input, len(job.Beams))
	names := make([]string, len(job.Beams))
	for i, b := range job.Beams {
		in, err := b.Input(job.Strict)
		if err != nil {
			return err
		}
		inputs[i] = in
		names[i] = b.Name
	}

	workers := batchWorkers
	if workers == 0 {
		workers = job.Workers
	}
	if workers == 0 {
		workers = viper.GetInt("batch.workers")
	}

	runner := batch.Runner{
		Designer: design.New(p),
		Workers:  workers,
		Logger:   logger,
	}
	run := runner.Run(context.Background(), inputs, names)

	failed := 0
	enc := json.NewEncoder(os.Stdout)
	for _, r := range run.Results {
		switch {
		case batchJSON:
			if err := enc.Encode(r.Verdict); err != nil {
				return err
			}
		case r.Err != nil:
			failed++
			fmt.Printf("FAIL  %-12s %v\n", r.Name, r.Err)
		case !r.Verdict.OverallPassed:
			failed++
			fmt.Printf("FAIL  %-12s %d diagnostic(s)\n", r.Name, len(r.Verdict.Diagnostics))
		default:
			fmt.Printf("PASS  %-12s As = %.0f mm²\n", r.Name, r.Verdict.Flexure.AsRequired)
		}
	}

	if !batchJSON {
		fmt.Printf("\nrun %s: %d beams, %d failed\n", run.RunID, len(run.Results), failed)
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
