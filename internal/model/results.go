package model

// Classification describes the flexural behavior of a designed section
// based on the ratio of neutral-axis depth to its permitted maximum.
type Classification string

const (
	UnderReinforced Classification = "under-reinforced"
	AtLimit         Classification = "at-limit"
	OverReinforced  Classification = "over-reinforced"
)

// FlexureResult holds the outcome of flexural design.
// Lengths in mm, areas in mm², moments in kN-m.
type FlexureResult struct {
	AsRequired    float64 `json:"as_required"`
	AsMin         float64 `json:"as_min"`
	AsMax         float64 `json:"as_max"`
	AsCompression float64 `json:"as_compression,omitempty"`

	NeutralAxisDepth    float64 `json:"neutral_axis_depth"`
	MaxNeutralAxisDepth float64 `json:"max_neutral_axis_depth"`
	LimitingMoment      float64 `json:"limiting_moment"`

	SteelRatio     float64        `json:"steel_ratio"`
	TensileStrain  float64        `json:"tensile_strain"`
	Phi            float64        `json:"phi"`
	DesignCapacity float64        `json:"design_capacity"` // φMn
	Classification Classification `json:"classification"`

	DoublyReinforced bool `json:"doubly_reinforced"`
}

// IsUnderReinforced reports whether the section fails in the ductile,
// steel-yield-first mode.
func (r *FlexureResult) IsUnderReinforced() bool {
	return r.Classification == UnderReinforced
}

// ShearResult holds the outcome of shear design.
type ShearResult struct {
	ConcreteCapacity float64 `json:"concrete_capacity"` // Vc (kN)
	StirrupDemand    float64 `json:"stirrup_demand"`    // Av/s required (mm²/mm)
	StirrupSpacing   float64 `json:"stirrup_spacing"`   // governing spacing (mm)
	MaxSpacing       float64 `json:"max_spacing"`       // code cap (mm)
	BarDiameter      float64 `json:"bar_diameter"`      // stirrup bar (mm)
	Legs             int     `json:"legs"`

	MinimumOnly     bool `json:"minimum_only"`     // demand carried by concrete alone
	SpacingGoverned bool `json:"spacing_governed"` // cap, not demand, set the spacing
}

// ServiceabilityResult holds the span/depth and crack-control checks.
// Failures here are advisory: they are surfaced as diagnostics, not errors.
type ServiceabilityResult struct {
	ActualSpanDepth      float64 `json:"actual_span_depth"`
	PermissibleSpanDepth float64 `json:"permissible_span_depth"`
	ModificationFactor   float64 `json:"modification_factor"`
	DeflectionOK         bool    `json:"deflection_ok"`

	CrackSpacingLimit float64 `json:"crack_spacing_limit"` // mm
	BarSpacing        float64 `json:"bar_spacing"`         // provided c/c spacing (mm)
	CrackControlOK    bool    `json:"crack_control_ok"`
}

// DetailingResult holds development length, bar layout, and curtailment.
type DetailingResult struct {
	DevelopmentLength  float64 `json:"development_length"` // mm
	AvailableEmbedment float64 `json:"available_embedment"`
	AnchorageOK        bool    `json:"anchorage_ok"`

	BarDiameter     float64 `json:"bar_diameter"`
	BarCount        int     `json:"bar_count"`
	ClearSpacing    float64 `json:"clear_spacing"`
	MinClearSpacing float64 `json:"min_clear_spacing"`
	SpacingOK       bool    `json:"spacing_ok"`

	CurtailmentDistance float64 `json:"curtailment_distance"` // from support (mm)
}

// PipelineState identifies how far the design pipeline progressed.
type PipelineState string

const (
	StatePending            PipelineState = "PENDING"
	StateValidated          PipelineState = "VALIDATED"
	StateFlexureDone        PipelineState = "FLEXURE_DONE"
	StateShearDone          PipelineState = "SHEAR_DONE"
	StateServiceabilityDone PipelineState = "SERVICEABILITY_DONE"
	StateDetailingDone      PipelineState = "DETAILING_DONE"
	StateComplete           PipelineState = "COMPLETE"
	StateAborted            PipelineState = "ABORTED"
)

// ComplianceVerdict is the terminal artifact of a design call: every
// sub-result, the final pipeline state, and the ordered diagnostics.
// It serializes flat to JSON for the external reporting layer.
type ComplianceVerdict struct {
	Code  string        `json:"code"` // design code profile name
	State PipelineState `json:"state"`

	Geometry SectionGeometry `json:"geometry"`
	Material MaterialGrade   `json:"material"`
	Forces   FactoredForces  `json:"forces"`

	Flexure        *FlexureResult        `json:"flexure,omitempty"`
	Shear          *ShearResult          `json:"shear,omitempty"`
	Serviceability *ServiceabilityResult `json:"serviceability,omitempty"`
	Detailing      *DetailingResult      `json:"detailing,omitempty"`

	OverallPassed bool         `json:"overall_passed"`
	Diagnostics   []Diagnostic `json:"diagnostics"`
}
