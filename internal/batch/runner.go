// Package batch runs the design pipeline over many independent beams.
// Every beam is one task on a stateless worker pool: no shared mutable
// state, results land in per-index slots, and one beam's failure never
// affects another beam's result.
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/structcalc/beamcheck/internal/design"
	"github.com/structcalc/beamcheck/internal/model"
)

// BeamSpec is one beam entry in a job file.
type BeamSpec struct {
	Name     string `yaml:"name"`
	Geometry struct {
		Width          float64 `yaml:"width"`
		Depth          float64 `yaml:"depth"`
		Cover          float64 `yaml:"cover"`
		EffectiveDepth float64 `yaml:"effective_depth,omitempty"`
	} `yaml:"geometry"`
	Material struct {
		Concrete string `yaml:"concrete"`
		Steel    string `yaml:"steel"`
	} `yaml:"material"`
	Forces struct {
		Moment float64 `yaml:"moment"`
		Shear  float64 `yaml:"shear"`
		Axial  float64 `yaml:"axial,omitempty"`
	} `yaml:"forces"`
	Span    float64 `yaml:"span"`
	Support string  `yaml:"support"`
}

// Job is a batch job file.
type Job struct {
	Name    string     `yaml:"name,omitempty"`
	Code    string     `yaml:"code,omitempty"`
	Workers int        `yaml:"workers,omitempty"`
	Strict  bool       `yaml:"strict,omitempty"`
	Beams   []BeamSpec `yaml:"beams"`
}

// LoadJob reads and parses a YAML job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if len(job.Beams) == 0 {
		return nil, fmt.Errorf("job file %s: no beams", path)
	}
	return &job, nil
}

// Input converts a beam spec into a design input.
func (b BeamSpec) Input(strict bool) (design.Input, error) {
	geom := model.NewSectionGeometry(b.Geometry.Width, b.Geometry.Depth, b.Geometry.Cover)
	if b.Geometry.EffectiveDepth > 0 {
		geom.EffectiveDepth = b.Geometry.EffectiveDepth
	}

	concrete, ok := model.ParseConcreteGrade(b.Material.Concrete)
	if !ok {
		return design.Input{}, fmt.Errorf("beam %q: unknown concrete grade %q", b.Name, b.Material.Concrete)
	}
	steel, ok := model.ParseSteelGrade(b.Material.Steel)
	if !ok {
		return design.Input{}, fmt.Errorf("beam %q: unknown steel grade %q", b.Name, b.Material.Steel)
	}
	support, ok := model.ParseSupportCondition(b.Support)
	if !ok {
		return design.Input{}, fmt.Errorf("beam %q: unknown support condition %q", b.Name, b.Support)
	}

	return design.Input{
		Geometry: geom,
		Material: model.MaterialGrade{Concrete: concrete, Steel: steel},
		Forces: model.FactoredForces{
			Moment: b.Forces.Moment,
			Shear:  b.Forces.Shear,
			Axial:  b.Forces.Axial,
		},
		Span:    b.Span,
		Support: support,
		Options: design.Options{Strict: strict},
	}, nil
}

// Result is the outcome for one beam, identified by its job index.
type Result struct {
	Index   int
	Name    string
	Verdict *model.ComplianceVerdict
	Err     error
}

// RunResult collects a whole run.
type RunResult struct {
	RunID   string
	Results []Result
}

// Runner executes design calls on a bounded worker pool.
type Runner struct {
	Designer design.Designer
	Workers  int
	Logger   zerolog.Logger
}

// Run designs every input. Results are collected by index, so the
// output order matches the input order regardless of interleaving.
// Cancelling the context stops dispatching new tasks; beams not yet
// processed report the context error.
func (r Runner) Run(ctx context.Context, inputs []design.Input, names []string) RunResult {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	runID := uuid.NewString()
	log := r.Logger.With().Str("run_id", runID).Logger()
	log.Info().Int("beams", len(inputs)).Int("workers", workers).Msg("starting batch run")

	results := make([]Result, len(inputs))
	tasks := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				name := ""
				if i < len(names) {
					name = names[i]
				}
				verdict, err := r.Designer.DesignBeam(inputs[i])
				results[i] = Result{Index: i, Name: name, Verdict: verdict, Err: err}
				if err != nil {
					log.Warn().Int("beam", i).Str("name", name).Err(err).Msg("beam aborted")
				} else {
					log.Debug().Int("beam", i).Str("name", name).Msg("beam designed")
				}
			}
		}()
	}

dispatch:
	for i := range inputs {
		select {
		case tasks <- i:
		case <-ctx.Done():
			results[i] = Result{Index: i, Err: ctx.Err()}
			for j := i + 1; j < len(inputs); j++ {
				results[j] = Result{Index: j, Err: ctx.Err()}
			}
			break dispatch
		}
	}
	close(tasks)
	wg.Wait()

	log.Info().Msg("batch run finished")
	return RunResult{RunID: runID, Results: results}
}
