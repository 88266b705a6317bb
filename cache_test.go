package svgdom

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestAttrCache(t *testing.T) {
	el := newTestElement()
	calls := 0
	c := NewAttrCache(el, "r", func(owner Element, s string, ok bool) (float64, error) {
		calls++
		if !ok {
			return 0.0, nil
		}
		return ParseNumber(s)
	})
	test.String(t, c.Name(), "r")

	f, err := c.Get()
	test.Error(t, err)
	test.Float(t, f, 0.0)
	test.T(t, c.Valid(), true)
	test.T(t, calls, 1)

	el.SetAttribute("r", "5")
	test.T(t, c.Valid(), false)
	f, err = c.Get()
	test.Error(t, err)
	test.Float(t, f, 5.0)
	_, _ = c.Get()
	test.T(t, calls, 2)

	// other attributes don't invalidate
	el.SetAttribute("cx", "1")
	test.T(t, c.Valid(), true)

	el.SetAttribute("r", "x")
	_, err = c.Get()
	test.That(t, errors.Is(err, ErrSyntax), err)
	test.T(t, calls, 3)
}

func TestViewBoxAttr(t *testing.T) {
	el := newTestElement()
	vb := NewViewBoxAttr(el)
	r, err := vb.Get()
	test.Error(t, err)
	test.T(t, r, Rect{})

	el.SetAttribute("viewBox", "0 0 100 50")
	r, err = vb.Get()
	test.Error(t, err)
	test.T(t, r, Rect{0, 0, 100, 50})

	el.SetAttribute("viewBox", "0 0 100")
	_, err = vb.Get()
	test.That(t, errors.Is(err, ErrInvalidValue), err)
}

func TestAspectRatioAttr(t *testing.T) {
	el := newTestElement()
	par := NewAspectRatioAttr(el)
	v, err := par.Get()
	test.Error(t, err)
	test.T(t, v, DefaultAspectRatio)

	el.SetAttribute("preserveAspectRatio", "xMinYMax slice")
	v, err = par.Get()
	test.Error(t, err)
	test.T(t, v, PreserveAspectRatio{AlignXMinYMax, Slice, false})
}

func TestTransformAttr(t *testing.T) {
	reg := NewRegistry()
	el := newTestElement()
	el.attrs["transform"] = "translate(10,20) rotate(90)"
	tr := NewTransformAttr(el, reg)

	l, err := tr.Get()
	test.Error(t, err)
	test.That(t, l.TotalMatrix().Equals(Matrix2D{0, 1, -1, 0, 10, 20}))
	test.T(t, reg.Len(), 2)

	l2, err := tr.Get()
	test.Error(t, err)
	test.T(t, l2 == l, true)

	el.SetAttribute("transform", "scale(2)")
	test.T(t, l.NumberOfItems(), 0)
	test.T(t, reg.Len(), 0)
	l, err = tr.Get()
	test.Error(t, err)
	test.T(t, l.TotalMatrix(), Identity.Scale(2.0))
	test.T(t, reg.Len(), 1)
}

func TestLengthAttr(t *testing.T) {
	el := newTestElement()
	el.viewport = testViewport{Rect{0, 0, 200, 100}}
	width := NewLengthAttr(el, "width", Horizontal, "100%")

	l, err := width.Get()
	test.Error(t, err)
	px, _ := l.Value()
	test.Float(t, px, 200.0)

	el.SetAttribute("width", "2in")
	l, err = width.Get()
	test.Error(t, err)
	px, _ = l.Value()
	test.Float(t, px, 192.0)
}
