package model

// Severity ranks a diagnostic finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// CauseCode is a machine-readable identifier for a diagnostic finding.
type CauseCode string

const (
	CauseInputOutOfRange     CauseCode = "INPUT_OUT_OF_RANGE"
	CauseUnknownGrade        CauseCode = "UNKNOWN_GRADE"
	CauseNonFiniteInput      CauseCode = "NON_FINITE_INPUT"
	CauseMomentOverCapacity  CauseCode = "MOMENT_OVER_CAPACITY"
	CauseShearOverCapacity   CauseCode = "SHEAR_OVER_CAPACITY"
	CauseBelowMinimumSteel   CauseCode = "BELOW_MINIMUM_STEEL"
	CauseAboveMaximumSteel   CauseCode = "ABOVE_MAXIMUM_STEEL"
	CauseSpacingCapApplied   CauseCode = "SPACING_CAP_APPLIED"
	CauseDeflectionLimit     CauseCode = "DEFLECTION_LIMIT"
	CauseCrackControlSpacing CauseCode = "CRACK_CONTROL_SPACING"
	CauseAnchorageMisfit     CauseCode = "ANCHORAGE_MISFIT"
	CauseBarSpacingTight     CauseCode = "BAR_SPACING_TIGHT"
	CauseAxialIgnored        CauseCode = "AXIAL_IGNORED"
	CauseNumericalFailure    CauseCode = "NUMERICAL_FAILURE"
	CauseInternalError       CauseCode = "INTERNAL_ERROR"
)

// Diagnostic is one finding attached to a verdict: what happened, how
// bad it is, and what to do about it.
type Diagnostic struct {
	Severity   Severity  `json:"severity"`
	Code       CauseCode `json:"code"`
	Stage      string    `json:"stage"`
	Message    string    `json:"message"`
	Clause     string    `json:"clause,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}
