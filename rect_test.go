package svgdom

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
)

func TestParseRect(t *testing.T) {
	var tts = []struct {
		s string
		r Rect
	}{
		{"0 0 100 50", Rect{0, 0, 100, 50}},
		{"-10,-20,30,40", Rect{-10, -20, 30, 40}},
		{"  1, 2 3 ,4 ", Rect{1, 2, 3, 4}},
		{"100 50", Rect{0, 0, 100, 50}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			r, err := ParseRect(tt.s)
			test.Error(t, err)
			test.T(t, r, tt.r)
		})
	}

	for _, s := range []string{"", "1", "1 2 3", "1 2 3 4 5"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseRect(s)
			test.That(t, errors.Is(err, ErrInvalidValue), err)
		})
	}
	_, err := ParseRect("1,,2")
	test.That(t, errors.Is(err, ErrSyntax), err)
	_, err = ParseRect("a b")
	test.That(t, errors.Is(err, ErrSyntax), err)
}

func TestRect(t *testing.T) {
	r := Rect{0, 0, 5, 5}
	test.T(t, r.IsEmpty(), false)
	test.T(t, Rect{0, 0, 0, 5}.IsEmpty(), true)
	test.T(t, Rect{0, 0, 5, -1}.IsEmpty(), true)
	test.T(t, r.Equals(Rect{0, 0, 5, 5 + 1e-12}), true)
	test.T(t, r.Equals(Rect{0, 0, 5, 6}), false)

	test.T(t, r.Union(Rect{5, 5, 5, 5}), Rect{0, 0, 10, 10})
	test.T(t, r.Union(Rect{5, 5, 0, 5}), r)
	test.T(t, Rect{5, 5, 0, 5}.Union(r), r)

	test.T(t, r.Intersect(Rect{3, 3, 5, 5}), Rect{3, 3, 2, 2})
	test.T(t, r.Intersect(Rect{6, 6, 5, 5}), Rect{})
	test.T(t, r.Intersects(Rect{3, -3, 5, 5}), true)
	test.T(t, r.Intersects(Rect{5, 0, 5, 5}), false)

	test.T(t, r.Contains(Rect{1, 1, 3, 3}), true)
	test.T(t, r.Contains(Rect{1, 1, 5, 3}), false)
	test.T(t, r.ContainsPoint(Point{5, 0}), true)
	test.T(t, r.ContainsPoint(Point{5.1, 0}), false)

	test.T(t, r.Inflate(1, 2), Rect{-1, -2, 7, 9})
	test.T(t, r.Transform(Identity.Translate(1, 2).Scale(2)), Rect{1, 2, 10, 10})
	test.That(t, r.Transform(Identity.Rotate(90)).Equals(Rect{-5, 0, 5, 5}))

	test.String(t, Rect{0, 0, 100, -50}.String(), "0 0 100 -50")
	test.T(t, Rect{1, 2, 3, 4.5}.Fixed(), fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 64, Y: 128},
		Max: fixed.Point26_6{X: 256, Y: 416},
	})
}
