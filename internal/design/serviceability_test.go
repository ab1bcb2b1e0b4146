package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

func TestCheckServiceabilityPasses(t *testing.T) {
	d := New(code.NSCP2015())
	fx := designedFlexure(t, d)

	res, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportSimple, 0)
	require.NoError(t, err)

	assert.InDelta(t, 12.37, res.ActualSpanDepth, 0.01)
	// Lightly reinforced section earns a modification factor below 1.
	assert.InDelta(t, 0.878, res.ModificationFactor, 0.005)
	assert.InDelta(t, 17.57, res.PermissibleSpanDepth, 0.1)
	assert.True(t, res.DeflectionOK)

	assert.InDelta(t, 279.5, res.CrackSpacingLimit, 0.5)
	assert.InDelta(t, 100.0, res.BarSpacing, 0.5)
	assert.True(t, res.CrackControlOK)
}

func TestCheckServiceabilitySlenderSpanFails(t *testing.T) {
	d := New(code.NSCP2015())
	fx := designedFlexure(t, d)

	res, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 10, model.SupportSimple, 0)
	require.NoError(t, err)

	assert.InDelta(t, 20.62, res.ActualSpanDepth, 0.01)
	assert.False(t, res.DeflectionOK)
}

func TestCheckServiceabilitySupportRatios(t *testing.T) {
	d := New(code.NSCP2015())
	fx := designedFlexure(t, d)

	simple, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportSimple, 0)
	require.NoError(t, err)
	cont, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportBothEndContinuous, 0)
	require.NoError(t, err)
	cant, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportCantilever, 0)
	require.NoError(t, err)

	// Continuity relaxes the limit; cantilevers tighten it.
	assert.Greater(t, cont.PermissibleSpanDepth, simple.PermissibleSpanDepth)
	assert.Less(t, cant.PermissibleSpanDepth, simple.PermissibleSpanDepth)
}

func TestCheckServiceabilityBarDiameter(t *testing.T) {
	d := New(code.NSCP2015())
	fx := designedFlexure(t, d)

	// The crack-control spacing follows the configured bar: 874 mm²
	// lays out as three 20 mm bars at 100 mm centers, or two 25 mm
	// bars at 195 mm centers.
	db20, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportSimple, 20)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, db20.BarSpacing, 0.5)

	db25, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportSimple, 25)
	require.NoError(t, err)
	assert.InDelta(t, 195.0, db25.BarSpacing, 0.5)

	// Zero falls back to the default 20 mm bar.
	fallback, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportSimple, 0)
	require.NoError(t, err)
	assert.Equal(t, db20.BarSpacing, fallback.BarSpacing)
}

func TestDesignBeamServiceabilityMatchesDetailing(t *testing.T) {
	d := New(code.NSCP2015())
	in := testInput()
	in.Options.MainBar = 25

	v, err := d.DesignBeam(in)
	require.NoError(t, err)

	// Serviceability and detailing describe the same layout.
	require.NotNil(t, v.Serviceability)
	require.NotNil(t, v.Detailing)
	assert.InDelta(t, v.Detailing.ClearSpacing+v.Detailing.BarDiameter,
		v.Serviceability.BarSpacing, 1e-9)
}

func TestCheckServiceabilityUnknownSupport(t *testing.T) {
	d := New(code.NSCP2015())
	fx := designedFlexure(t, d)

	_, err := d.CheckServiceability(fx.geom, fx.mat, fx.flex, 6, model.SupportCondition("fixed"), 0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "support condition", ve.Field)
}
