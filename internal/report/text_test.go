package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/design"
	"github.com/structcalc/beamcheck/internal/model"
)

func testVerdict(t *testing.T) *model.ComplianceVerdict {
	t.Helper()
	d := design.New(code.NSCP2015())
	v, err := d.DesignBeam(design.Input{
		Geometry: model.NewSectionGeometry(300, 550, 65),
		Material: model.MaterialGrade{Concrete: model.ConcreteC28, Steel: model.SteelG415},
		Forces:   model.FactoredForces{Moment: 150, Shear: 80},
		Span:     6,
		Support:  model.SupportSimple,
	})
	require.NoError(t, err)
	return v
}

func TestWriteVerdict(t *testing.T) {
	v := testVerdict(t)

	var buf bytes.Buffer
	require.NoError(t, WriteVerdict(&buf, v))
	out := buf.String()

	assert.Contains(t, out, "NSCP 2015")
	assert.Contains(t, out, "COMPLETE")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FLEXURE")
	assert.Contains(t, out, "SHEAR")
	assert.Contains(t, out, "SERVICEABILITY")
	assert.Contains(t, out, "DETAILING")
	assert.Contains(t, out, "under-reinforced")
	assert.Contains(t, out, "minimum only")
	assert.NotContains(t, out, "DIAGNOSTICS")
}

func TestWriteVerdictWithDiagnostics(t *testing.T) {
	v := testVerdict(t)
	v.OverallPassed = false
	v.Diagnostics = append(v.Diagnostics, model.Diagnostic{
		Severity:   model.SeverityWarning,
		Code:       model.CauseDeflectionLimit,
		Stage:      "serviceability",
		Message:    "span/depth ratio 20.6 exceeds permissible 17.6",
		Suggestion: "increase the effective depth or reduce the span",
	})

	var buf bytes.Buffer
	require.NoError(t, WriteVerdict(&buf, v))
	out := buf.String()

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "DIAGNOSTICS")
	assert.Contains(t, out, "[WARNING]")
	assert.Contains(t, out, "increase the effective depth")
}

func TestASCIISection(t *testing.T) {
	v := testVerdict(t)
	p := code.NSCP2015()

	out := ASCIISection(v.Geometry, v.Flexure, p.EpsilonCU, p.Beta1(28))

	assert.Contains(t, out, "BEAM SECTION")
	assert.Contains(t, out, "STRAIN")
	assert.Contains(t, out, "N.A.")
	assert.Contains(t, out, "tension steel")
	assert.NotContains(t, out, "compression steel")

	// Every body line stays rune-aligned.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			assert.True(t, strings.Contains(line, "│"), line)
		}
	}
}

func TestASCIISectionDoubly(t *testing.T) {
	d := design.New(code.NSCP2015())
	v, err := d.DesignBeam(design.Input{
		Geometry: model.NewSectionGeometry(300, 550, 65),
		Material: model.MaterialGrade{Concrete: model.ConcreteC28, Steel: model.SteelG415},
		Forces:   model.FactoredForces{Moment: 450, Shear: 80},
		Span:     6,
		Support:  model.SupportSimple,
		Options:  design.Options{CompressionSteel: true},
	})
	require.NoError(t, err)

	p := code.NSCP2015()
	out := ASCIISection(v.Geometry, v.Flexure, p.EpsilonCU, p.Beta1(28))
	assert.Contains(t, out, "compression steel")
}

func TestSummaryBox(t *testing.T) {
	out := SummaryBox("RESULT", []string{"As = 874 mm²", "PASS"})

	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "As = 874 mm²")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
}
