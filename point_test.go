package svgdom

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePoints(t *testing.T) {
	var tts = []struct {
		s      string
		points []Point
	}{
		{"", []Point{}},
		{"  ", []Point{}},
		{"1,2", []Point{{1, 2}}},
		{"1 2 3 4", []Point{{1, 2}, {3, 4}}},
		{"1,2 3,4", []Point{{1, 2}, {3, 4}}},
		{" 1, 2,\n3\t4 ", []Point{{1, 2}, {3, 4}}},
		{"1-2-3.5.5", []Point{{1, -2}, {-3.5, 0.5}}},
		{"1e1,2E-1", []Point{{10, 0.2}}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			points, err := ParsePoints(tt.s)
			test.Error(t, err)
			test.T(t, points, tt.points)
		})
	}

	_, err := ParsePoints("1 2 3")
	test.That(t, errors.Is(err, ErrInvalidValue), err)
	_, err = ParsePoints("1 2 x 4")
	test.That(t, errors.Is(err, ErrSyntax), err)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.T(t, p.MatrixTransform(Identity.Translate(1, 1)), Point{4, 5})
	test.T(t, p.Equals(Point{3, 4 + 1e-12}), true)
	test.T(t, p.Equals(Point{3, 5}), false)
	test.String(t, p.String(), "3,4")
}
