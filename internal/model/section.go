package model

// SectionGeometry describes a rectangular beam cross-section.
// All lengths are in millimeters. Values are set once per design call
// and never mutated afterwards.
type SectionGeometry struct {
	Width          float64 `json:"width"`           // b - beam width
	Depth          float64 `json:"depth"`           // h - overall depth
	EffectiveDepth float64 `json:"effective_depth"` // d - depth to centroid of tension steel
	Cover          float64 `json:"cover"`           // effective cover to steel centroid
}

// NewSectionGeometry builds a geometry with the effective depth derived
// from the overall depth and cover, matching common design practice.
func NewSectionGeometry(width, depth, cover float64) SectionGeometry {
	return SectionGeometry{
		Width:          width,
		Depth:          depth,
		Cover:          cover,
		EffectiveDepth: depth - cover,
	}
}

// SteelRatio returns the reinforcement ratio for a steel area (mm²).
func (g SectionGeometry) SteelRatio(as float64) float64 {
	return as / (g.Width * g.EffectiveDepth)
}

// FactoredForces holds the design internal forces at one critical
// location, already inflated by load factors. Magnitudes are
// non-negative by convention; sign normalization happens where the
// forces are produced, never inside the engines.
type FactoredForces struct {
	Moment float64 `json:"moment"`          // Mu (kN-m)
	Shear  float64 `json:"shear"`           // Vu (kN)
	Axial  float64 `json:"axial,omitempty"` // Pu (kN), informational
}

// SupportCondition describes the end restraint of the member for
// serviceability span/depth limits.
type SupportCondition string

const (
	SupportCantilever        SupportCondition = "cantilever"
	SupportSimple            SupportCondition = "simple"
	SupportOneEndContinuous  SupportCondition = "one-end-continuous"
	SupportBothEndContinuous SupportCondition = "continuous"
)

// SupportConditions returns the recognized support conditions.
func SupportConditions() []SupportCondition {
	return []SupportCondition{
		SupportCantilever,
		SupportSimple,
		SupportOneEndContinuous,
		SupportBothEndContinuous,
	}
}

// ParseSupportCondition resolves a support condition name.
func ParseSupportCondition(s string) (SupportCondition, bool) {
	for _, sc := range SupportConditions() {
		if string(sc) == s {
			return sc, true
		}
	}
	return "", false
}
