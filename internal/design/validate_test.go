package design

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/model"
)

func TestValidateAccepts(t *testing.T) {
	geom, mat := testSection()
	d := New(code.NSCP2015())

	assert.NoError(t, d.Validate(geom, mat, model.FactoredForces{Moment: 150, Shear: 80}))
}

func TestValidateRejects(t *testing.T) {
	goodGeom, goodMat := testSection()
	forces := model.FactoredForces{Moment: 150, Shear: 80}
	d := New(code.NSCP2015())

	cases := []struct {
		name  string
		geom  model.SectionGeometry
		mat   model.MaterialGrade
		fs    model.FactoredForces
		field string
	}{
		{"narrow width", model.NewSectionGeometry(150, 550, 65), goodMat, forces, "width"},
		{"excessive width", model.NewSectionGeometry(1200, 550, 65), goodMat, forces, "width"},
		{"excessive depth", model.NewSectionGeometry(300, 2500, 65), goodMat, forces, "depth"},
		{"shallow effective depth", model.NewSectionGeometry(300, 200, 65), goodMat, forces, "effective depth"},
		{"thin cover", model.NewSectionGeometry(300, 550, 30), goodMat, forces, "cover"},
		{"thick cover", model.NewSectionGeometry(300, 550, 120), goodMat, forces, "cover"},
		{"d not below h", model.SectionGeometry{Width: 300, Depth: 550, EffectiveDepth: 550, Cover: 65}, goodMat, forces, "effective depth"},
		{"unknown concrete", goodGeom, model.MaterialGrade{Concrete: "C30", Steel: model.SteelG415}, forces, "concrete grade"},
		{"unknown steel", goodGeom, model.MaterialGrade{Concrete: model.ConcreteC28, Steel: "G500"}, forces, "steel grade"},
		{"negative moment", goodGeom, goodMat, model.FactoredForces{Moment: -10}, "moment"},
		{"negative shear", goodGeom, goodMat, model.FactoredForces{Shear: -5}, "shear"},
		{"NaN moment", goodGeom, goodMat, model.FactoredForces{Moment: math.NaN()}, "moment"},
		{"infinite shear", goodGeom, goodMat, model.FactoredForces{Shear: math.Inf(1)}, "shear"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := d.Validate(tc.geom, tc.mat, tc.fs)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.NotEmpty(t, ve.Suggestion)
		})
	}
}
