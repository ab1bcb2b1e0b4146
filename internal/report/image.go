package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/structcalc/beamcheck/internal/model"
)

// ExportSection writes a scaled drawing of the designed section to an
// image file (.png, .svg or .pdf by extension).
func ExportSection(geom model.SectionGeometry, flex *model.FlexureResult, beta1 float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Designed Beam Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: geom.Width, Y: 0},
		{X: geom.Width, Y: geom.Depth},
		{X: 0, Y: geom.Depth},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Equivalent rectangular stress block.
	a := flex.NeutralAxisDepth * beta1
	block, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: geom.Depth},
		{X: geom.Width, Y: geom.Depth},
		{X: geom.Width, Y: geom.Depth - a},
		{X: 0, Y: geom.Depth - a},
	})
	if err != nil {
		return err
	}
	block.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	block.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(block)

	// Neutral axis.
	naY := geom.Depth - flex.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -20, Y: naY},
		{X: geom.Width + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// Tension steel at the effective-depth level.
	steelY := geom.Depth - geom.EffectiveDepth
	tension, err := plotter.NewScatter(plotter.XYs{
		{X: geom.Width * 0.3, Y: steelY},
		{X: geom.Width * 0.5, Y: steelY},
		{X: geom.Width * 0.7, Y: steelY},
	})
	if err != nil {
		return err
	}
	tension.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	tension.GlyphStyle.Radius = vg.Points(6)
	tension.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tension)

	if flex.DoublyReinforced {
		compY := geom.Depth - geom.Cover
		comp, err := plotter.NewScatter(plotter.XYs{
			{X: geom.Width * 0.35, Y: compY},
			{X: geom.Width * 0.65, Y: compY},
		})
		if err != nil {
			return err
		}
		comp.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		comp.GlyphStyle.Radius = vg.Points(5)
		comp.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(comp)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: geom.Width + 30, Y: naY},
			{X: geom.Width + 30, Y: geom.Depth - a/2},
			{X: geom.Width * 0.5, Y: steelY - 25},
		},
		Labels: []string{
			"N.A.",
			fmt.Sprintf("a=%.1fmm", a),
			fmt.Sprintf("As=%.0fmm²", flex.AsRequired),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(8*vg.Inch, 6*vg.Inch, filename)
	default:
		return p.Save(8*vg.Inch, 6*vg.Inch, filename+".png")
	}
}
