package design

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

func testInput() Input {
	geom, mat := testSection()
	return Input{
		Geometry: geom,
		Material: mat,
		Forces:   model.FactoredForces{Moment: 150, Shear: 80},
		Span:     6,
		Support:  model.SupportSimple,
	}
}

func TestDesignBeamComplete(t *testing.T) {
	d := New(code.NSCP2015())

	v, err := d.DesignBeam(testInput())
	require.NoError(t, err)

	assert.Equal(t, model.StateComplete, v.State)
	assert.True(t, v.OverallPassed)
	assert.Empty(t, v.Diagnostics)
	assert.Equal(t, "NSCP 2015", v.Code)

	require.NotNil(t, v.Flexure)
	require.NotNil(t, v.Shear)
	require.NotNil(t, v.Serviceability)
	require.NotNil(t, v.Detailing)
	assert.Equal(t, model.UnderReinforced, v.Flexure.Classification)
	assert.True(t, v.Shear.MinimumOnly)
}

func TestDesignBeamDeterministic(t *testing.T) {
	d := New(code.NSCP2015())

	a, err := d.DesignBeam(testInput())
	require.NoError(t, err)
	b, err := d.DesignBeam(testInput())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDesignBeamValidationAbort(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Geometry = model.NewSectionGeometry(100, 550, 65)

	v, err := d.DesignBeam(in)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	assert.Equal(t, model.StateAborted, v.State)
	assert.False(t, v.OverallPassed)
	assert.Nil(t, v.Flexure)
	require.Len(t, v.Diagnostics, 1)
	assert.Equal(t, model.SeverityError, v.Diagnostics[0].Severity)
	assert.Equal(t, model.CauseInputOutOfRange, v.Diagnostics[0].Code)
	assert.Equal(t, "validation", v.Diagnostics[0].Stage)
}

func TestDesignBeamMinimumSteelAbort(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Forces.Moment = 10

	v, err := d.DesignBeam(in)
	var ce *ComplianceError
	require.ErrorAs(t, err, &ce)

	assert.Equal(t, model.StateAborted, v.State)
	require.Len(t, v.Diagnostics, 1)
	assert.Equal(t, model.CauseBelowMinimumSteel, v.Diagnostics[0].Code)
	assert.Equal(t, "flexure", v.Diagnostics[0].Stage)
}

func TestDesignBeamOverCapacityAbort(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Forces.Moment = 450

	v, err := d.DesignBeam(in)
	var de *DesignError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, model.StateAborted, v.State)
	assert.Equal(t, model.CauseMomentOverCapacity, v.Diagnostics[0].Code)

	// The same demand passes once compression steel is allowed.
	in.Options.CompressionSteel = true
	v, err = d.DesignBeam(in)
	require.NoError(t, err)
	assert.Equal(t, model.StateComplete, v.State)
	assert.True(t, v.Flexure.DoublyReinforced)
	// The fallback is announced, not silent.
	found := false
	for _, diag := range v.Diagnostics {
		if diag.Code == model.CauseMomentOverCapacity && diag.Severity == model.SeverityInfo {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDesignBeamAdvisoryDeflection(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Span = 10

	v, err := d.DesignBeam(in)
	require.NoError(t, err)

	// Advisory failure: the pipeline still completes, but the verdict
	// carries a warning and does not pass.
	assert.Equal(t, model.StateComplete, v.State)
	assert.False(t, v.OverallPassed)
	require.NotEmpty(t, v.Diagnostics)
	assert.Equal(t, model.CauseDeflectionLimit, v.Diagnostics[0].Code)
	assert.Equal(t, model.SeverityWarning, v.Diagnostics[0].Severity)
}

func TestDesignBeamStrictEscalation(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Span = 10
	in.Options.Strict = true

	v, err := d.DesignBeam(in)
	var ce *ComplianceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, model.StateAborted, v.State)
}

func TestDesignBeamDetailingMisfitAdvisory(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Span = 1.2

	v, err := d.DesignBeam(in)
	require.NoError(t, err)

	// Development length cannot fit in a 1.2 m span; advisory unless strict.
	assert.Equal(t, model.StateComplete, v.State)
	assert.False(t, v.OverallPassed)
	assert.Nil(t, v.Detailing)
	found := false
	for _, diag := range v.Diagnostics {
		if diag.Code == model.CauseAnchorageMisfit {
			found = true
		}
	}
	assert.True(t, found)

	in.Options.Strict = true
	_, err = d.DesignBeam(in)
	var ce *ComplianceError
	require.ErrorAs(t, err, &ce)
}

func TestDesignBeamAxialInfo(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Forces.Axial = 50

	v, err := d.DesignBeam(in)
	require.NoError(t, err)

	// Axial load is carried through but not designed for; the verdict
	// says so and still passes.
	assert.True(t, v.OverallPassed)
	require.Len(t, v.Diagnostics, 1)
	assert.Equal(t, model.CauseAxialIgnored, v.Diagnostics[0].Code)
	assert.Equal(t, model.SeverityInfo, v.Diagnostics[0].Severity)
}

func TestDesignBeamSkipValidation(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Options.SkipValidation = true

	v, err := d.DesignBeam(in)
	require.NoError(t, err)
	assert.Equal(t, model.StateComplete, v.State)
}

func TestCauseOf(t *testing.T) {
	assert.Equal(t, model.CauseInputOutOfRange, causeOf(&ValidationError{Field: "width"}))
	assert.Equal(t, model.CauseMomentOverCapacity, causeOf(&DesignError{Quantity: "moment"}))
	assert.Equal(t, model.CauseShearOverCapacity, causeOf(&DesignError{Quantity: "shear"}))
	assert.Equal(t, model.CauseBelowMinimumSteel, causeOf(&ComplianceError{LowerBound: true}))
	assert.Equal(t, model.CauseAboveMaximumSteel, causeOf(&ComplianceError{}))
	assert.Equal(t, model.CauseNumericalFailure, causeOf(&CalculationError{Stage: "flexure"}))
	// Unclassified error types get their own code, not a numerical one.
	assert.Equal(t, model.CauseInternalError, causeOf(errors.New("unexpected")))
}

func TestDesignBeamVerdictJSON(t *testing.T) {
	d := New(code.NSCP2015())

	v, err := d.DesignBeam(testInput())
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var got model.ComplianceVerdict
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *v, got)
}
