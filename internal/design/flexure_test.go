package design

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

// The shared test section: 300x550 with 65 mm effective cover, C28
// concrete and Grade 415 steel.
func testSection() (model.SectionGeometry, model.MaterialGrade) {
	return model.NewSectionGeometry(300, 550, 65),
		model.MaterialGrade{Concrete: model.ConcreteC28, Steel: model.SteelG415}
}

func TestDesignFlexureSingly(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	res, err := d.DesignFlexure(geom, mat, 150, FlexureOptions{})
	require.NoError(t, err)

	assert.InDelta(t, 873.8, res.AsRequired, 1.0)
	assert.InDelta(t, 490.85, res.AsMin, 0.5)
	assert.InDelta(t, 2659.7, res.AsMax, 1.0)
	assert.InDelta(t, 59.75, res.NeutralAxisDepth, 0.1)
	assert.InDelta(t, 181.9, res.MaxNeutralAxisDepth, 0.5)
	assert.InDelta(t, 405.0, res.LimitingMoment, 0.5)
	assert.Equal(t, 0.90, res.Phi)
	assert.Equal(t, model.UnderReinforced, res.Classification)
	assert.True(t, res.IsUnderReinforced())
	assert.False(t, res.DoublyReinforced)

	// The required steel reproduces the demand moment exactly.
	assert.InDelta(t, 150.0, res.DesignCapacity, 0.1)
}

func TestDesignFlexureBelowMinimumSteel(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	_, err := d.DesignFlexure(geom, mat, 10, FlexureOptions{})
	require.Error(t, err)

	var ce *ComplianceError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.LowerBound)
	assert.InDelta(t, 490.85, ce.Limit, 0.5)
	assert.Less(t, ce.Actual, ce.Limit)
	assert.Contains(t, err.Error(), "below minimum")
	assert.NotEmpty(t, ce.Suggestion)
}

func TestDesignFlexureLimitingBoundaryInclusive(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	limiting := d.LimitingMoment(geom, mat)
	assert.InDelta(t, 405.0, limiting, 0.5)

	// Exactly at the limit: succeeds via the singly path, sitting at
	// the neutral-axis cap.
	res, err := d.DesignFlexure(geom, mat, limiting, FlexureOptions{})
	require.NoError(t, err)
	assert.InDelta(t, res.AsMax, res.AsRequired, 1e-6*res.AsMax)
	assert.Equal(t, model.AtLimit, res.Classification)

	// Just above: fails with a DesignError naming both values.
	over := limiting + 1
	_, err = d.DesignFlexure(geom, mat, over, FlexureOptions{})
	require.Error(t, err)
	var de *DesignError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, over, de.Demand)
	assert.InDelta(t, limiting, de.Capacity, 1e-9)
	assert.Contains(t, err.Error(), fmt.Sprintf("%.2f", over))
	assert.Contains(t, err.Error(), fmt.Sprintf("%.2f", limiting))
}

func TestDesignFlexureMonotonic(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	prev := 0.0
	for _, mu := range []float64{50, 100, 150, 200, 250, 300, 350, 400} {
		res, err := d.DesignFlexure(geom, mat, mu, FlexureOptions{})
		require.NoError(t, err, "Mu = %v", mu)
		assert.Greater(t, res.AsRequired, prev, "Mu = %v", mu)
		prev = res.AsRequired
	}
}

func TestDesignFlexureDoubly(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	res, err := d.DesignFlexure(geom, mat, 450, FlexureOptions{CompressionSteel: true})
	require.NoError(t, err)

	assert.True(t, res.DoublyReinforced)
	assert.Equal(t, model.AtLimit, res.Classification)
	assert.Equal(t, 0.90, res.Phi)
	assert.InDelta(t, 2946.4, res.AsRequired, 2.0)
	// εsc ≈ 0.00193 < εy: compression steel does not yield, so its
	// area is inflated by fy/fsc.
	assert.InDelta(t, 308.6, res.AsCompression, 1.0)
	assert.InDelta(t, 450.0, res.DesignCapacity, 0.5)
	assert.Equal(t, res.MaxNeutralAxisDepth, res.NeutralAxisDepth)
}

func TestDesignFlexureDoublyRequiresOptIn(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	_, err := d.DesignFlexure(geom, mat, 450, FlexureOptions{})
	var de *DesignError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "moment", de.Quantity)
}

func TestSinglyFeasible(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())
	limiting := d.LimitingMoment(geom, mat)

	assert.True(t, d.SinglyFeasible(geom, mat, 150))
	assert.True(t, d.SinglyFeasible(geom, mat, limiting))
	assert.False(t, d.SinglyFeasible(geom, mat, limiting+1))
}

func TestAnalyzeFlexure(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	// Round-trip: analyzing the designed steel reproduces the design
	// capacity.
	res, err := d.DesignFlexure(geom, mat, 150, FlexureOptions{})
	require.NoError(t, err)
	check, err := d.AnalyzeFlexure(geom, mat, res.AsRequired)
	require.NoError(t, err)
	assert.InDelta(t, res.DesignCapacity, check.DesignCapacity, 0.01)
	assert.Equal(t, res.Classification, check.Classification)

	_, err = d.AnalyzeFlexure(geom, mat, 0)
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, model.UnderReinforced, classify(50, 180))
	assert.Equal(t, model.AtLimit, classify(180, 180))
	assert.Equal(t, model.OverReinforced, classify(200, 180))
}
