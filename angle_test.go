package svgdom

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseAngle(t *testing.T) {
	var tts = []struct {
		s     string
		unit  AngleUnit
		value float64
		deg   float64
	}{
		{"45", AngleUnspecified, 45.0, 45.0},
		{"45deg", AngleDeg, 45.0, 45.0},
		{"100grad", AngleGrad, 100.0, 90.0},
		{"-2GRAD", AngleGrad, -2.0, -1.8},
		{"1.5e1deg", AngleDeg, 15.0, 15.0},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			a, err := ParseAngle(tt.s)
			test.Error(t, err)
			test.T(t, a.Unit(), tt.unit)
			test.Float(t, a.ValueInSpecifiedUnits(), tt.value)
			test.That(t, math.Abs(a.Value()-tt.deg) < 1e-9, a.Value(), tt.deg)
		})
	}

	a, err := ParseAngle("3.14159265rad")
	test.Error(t, err)
	test.That(t, math.Abs(a.Value()-180.0) < 1e-6, a.Value())

	_, err = ParseAngle("deg")
	test.That(t, errors.Is(err, ErrSyntax), err)
	_, err = ParseAngle("5turn")
	test.That(t, errors.Is(err, ErrInvalidValue), err)
}

func TestAngleConvert(t *testing.T) {
	a, err := NewAngle(90.0, AngleDeg)
	test.Error(t, err)
	test.String(t, a.String(), "90deg")

	b, err := a.ConvertToSpecifiedUnits(AngleGrad)
	test.Error(t, err)
	test.T(t, b.Unit(), AngleGrad)
	test.That(t, math.Abs(b.ValueInSpecifiedUnits()-100.0) < 1e-9)

	b, err = a.ConvertToSpecifiedUnits(AngleRad)
	test.Error(t, err)
	test.That(t, math.Abs(b.ValueInSpecifiedUnits()-math.Pi/2.0) < 1e-12)
	test.That(t, math.Abs(b.Value()-90.0) < 1e-9)

	b, err = a.ConvertToSpecifiedUnits(AngleUnspecified)
	test.Error(t, err)
	test.String(t, b.String(), "90")

	_, err = a.ConvertToSpecifiedUnits(AngleUnknown)
	test.That(t, errors.Is(err, ErrInvalidValue))
	_, err = NewAngle(1.0, AngleUnknown)
	test.That(t, errors.Is(err, ErrInvalidValue))
}
