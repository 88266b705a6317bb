package document

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"


	"github.com/tdewolff/svgdom"
	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<!-- test -->
<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" style="font-size: 10px">
	<g id="group" transform="translate(10,20) rotate(90)">
		<rect id="rect" x="50%" y="50%" width="10%" height="25%" r="50%"/>
	</g>
	<svg id="inner" x="20" y="10" width="100" height="50" viewBox="0 0 50 50" preserveAspectRatio="xMinYMin meet">
		<circle id="circle" r="50%" font-size="2em"/>
	</svg>
	<linearGradient id="gradient">
		<stop id="stop" offset="50%"/>
	</linearGradient>
	<text id="text">a &amp; b</text>
</svg>`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(testSVG), DefaultOptions)
	test.Error(t, err)
	test.That(t, doc.Root != nil)
	test.String(t, doc.Root.Tag, "svg")
	test.T(t, len(doc.Root.Children()), 4)

	rect := doc.GetElementByID("rect")
	test.That(t, rect != nil)
	test.String(t, rect.Parent().Tag, "g")
	test.T(t, rect.AttributeNames(), []string{"id", "x", "y", "width", "height", "r"})

	text := doc.GetElementByID("text")
	test.That(t, text != nil)
	test.String(t, text.Text, "a & b")

	count := 0
	doc.Walk(func(el *Element) bool {
		count++
		return el.Tag != "linearGradient"
	})
	test.T(t, count, 7)
}

func TestParseErrors(t *testing.T) {
	var tts = []string{
		``,
		`<g/>`,
		`<svg><g></svg>`,
		`<svg></g></svg>`,
		`<svg>`,
		`<svg/><svg/>`,
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt), DefaultOptions)
			test.That(t, err != nil)
		})
	}
}

func TestParseCharset(t *testing.T) {
	src := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><text id=\"t\">caf\xe9</text></svg>")
	doc, err := Parse(bytes.NewReader(src), DefaultOptions)
	test.Error(t, err)
	test.String(t, doc.GetElementByID("t").Text, "café")

	doc, err = Parse(strings.NewReader("<svg><text id=\"t\">café</text></svg>"), DefaultOptions)
	test.Error(t, err)
	test.String(t, doc.GetElementByID("t").Text, "café")
}

func TestPercentageResolution(t *testing.T) {
	doc, err := Parse(strings.NewReader(testSVG), DefaultOptions)
	test.Error(t, err)
	rect := doc.GetElementByID("rect")

	x, err := rect.Length("x", svgdom.Horizontal, "0")
	test.Error(t, err)
	v, err := x.Value()
	test.Error(t, err)
	test.T(t, v, 100.0)

	y, err := rect.Length("y", svgdom.Vertical, "0")
	test.Error(t, err)
	v, err = y.Value()
	test.Error(t, err)
	test.T(t, v, 50.0)

	r, err := rect.Length("r", svgdom.Diagonal, "0")
	test.Error(t, err)
	v, err = r.Value()
	test.Error(t, err)
	test.FloatDiff(t, v, 79.057, 1e-3)

	// inner viewport uses its viewBox
	circle := doc.GetElementByID("circle")
	r, err = circle.Length("r", svgdom.Diagonal, "0")
	test.Error(t, err)
	v, err = r.Value()
	test.Error(t, err)
	test.FloatDiff(t, v, 25.0, 1e-9)

	// gradient stops are relative to themselves
	stop := doc.GetElementByID("stop")
	offset, err := stop.Length("offset", svgdom.Horizontal, "0")
	test.Error(t, err)
	v, err = offset.Value()
	test.Error(t, err)
	test.FloatDiff(t, v, 0.5, 1e-12)
}

func TestOutermostViewport(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg width="50%"><rect id="r" width="10%" height="10%"/></svg>`), Options{400, 300})
	test.Error(t, err)
	test.That(t, doc.Root.Capabilities().Has(svgdom.OutermostViewport))
	test.T(t, doc.Root.ViewportElement(), nil)

	vp, err := doc.Root.Viewport()
	test.Error(t, err)
	test.T(t, vp, svgdom.Rect{Width: 200, Height: 300})

	rect := doc.GetElementByID("r")
	test.T(t, rect.Capabilities(), svgdom.Capability(0))
	w, err := rect.resolve("width", svgdom.Horizontal, "0")
	test.Error(t, err)
	test.T(t, w, 20.0)
	h, err := rect.resolve("height", svgdom.Vertical, "0")
	test.Error(t, err)
	test.T(t, h, 30.0)
}

func TestComputedStyle(t *testing.T) {
	doc, err := Parse(strings.NewReader(testSVG), DefaultOptions)
	test.Error(t, err)

	fontSize, ok := doc.GetElementByID("rect").ComputedStyle("font-size")
	test.That(t, ok)
	test.String(t, fontSize, "10px")

	fontSize, ok = doc.GetElementByID("circle").ComputedStyle("font-size")
	test.That(t, ok)
	test.String(t, fontSize, "20px")

	el := doc.GetElementByID("group")
	el.SetAttribute("style", "fill: red; stroke:blue")
	fill, ok := doc.GetElementByID("rect").ComputedStyle("fill")
	test.That(t, ok)
	test.String(t, fill, "red")

	_, ok = doc.GetElementByID("rect").ComputedStyle("opacity")
	test.That(t, !ok)

	em, err := svgdom.ParseLength(doc.GetElementByID("circle"), "1em", svgdom.Horizontal)
	test.Error(t, err)
	v, err := em.Value()
	test.Error(t, err)
	test.T(t, v, 20.0)
}

func TestTransformCache(t *testing.T) {
	doc, err := Parse(strings.NewReader(testSVG), DefaultOptions)
	test.Error(t, err)
	group := doc.GetElementByID("group")

	l, err := group.Transform()
	test.Error(t, err)
	test.That(t, l.TotalMatrix().Equals(svgdom.Matrix2D{A: 0, B: 1, C: -1, D: 0, E: 10, F: 20}))
	test.T(t, doc.Registry().Len(), 2)

	group.SetAttribute("transform", "scale(2)")
	l, err = group.Transform()
	test.Error(t, err)
	test.T(t, l.TotalMatrix(), svgdom.Identity.Scale(2.0))
	test.T(t, doc.Registry().Len(), 1)

	group.RemoveAttribute("transform")
	l, err = group.Transform()
	test.Error(t, err)
	test.T(t, l.NumberOfItems(), 0)
	test.T(t, doc.Registry().Len(), 0)

	group.SetAttribute("transform", "rotate(1 2)")
	_, err = group.Transform()
	test.That(t, errors.Is(err, svgdom.ErrArgumentCount), err)
}

func TestCTM(t *testing.T) {
	doc, err := Parse(strings.NewReader(testSVG), DefaultOptions)
	test.Error(t, err)

	ctm, err := doc.GetElementByID("rect").CTM()
	test.Error(t, err)
	p := ctm.Apply(svgdom.Point{X: 1, Y: 0})
	test.FloatDiff(t, p.X, 10.0, 1e-9)
	test.FloatDiff(t, p.Y, 21.0, 1e-9)

	inner := doc.GetElementByID("inner")
	test.T(t, inner.ViewportBox(), svgdom.Rect{X: 0, Y: 0, Width: 50, Height: 50})
	ctm, err = doc.GetElementByID("circle").CTM()
	test.Error(t, err)
	test.That(t, ctm.Equals(svgdom.Matrix2D{A: 1, B: 0, C: 0, D: 1, E: 20, F: 10}), ctm)

	inner.SetAttribute("preserveAspectRatio", "none")
	ctm, err = doc.GetElementByID("circle").CTM()
	test.Error(t, err)
	test.That(t, ctm.Equals(svgdom.Matrix2D{A: 2, B: 0, C: 0, D: 1, E: 20, F: 10}), ctm)

	inner.SetAttribute("viewBox", "0 0 0 50")
	test.T(t, inner.ViewportBox(), svgdom.Rect{Width: 100, Height: 50})
	test.That(t, !math.IsNaN(inner.ViewportBox().Width))
}

func TestAttributes(t *testing.T) {
	doc := New(DefaultOptions)
	el := doc.CreateElement("rect")
	var changes []string
	el.OnAttributeChange(func(name, value string) {
		changes = append(changes, name+"="+value)
	})

	el.SetAttribute("id", "a")
	el.SetAttribute("width", "5")
	test.That(t, el.HasAttribute("width"))
	test.T(t, doc.GetElementByID("a"), el)

	el.SetAttribute("id", "b")
	test.T(t, doc.GetElementByID("a"), (*Element)(nil))
	test.T(t, doc.GetElementByID("b"), el)

	el.RemoveAttribute("width")
	el.RemoveAttribute("height")
	test.That(t, !el.HasAttribute("width"))
	test.T(t, changes, []string{"id=a", "width=5", "id=b", "width="})

	parent := doc.CreateElement("g")
	other := doc.CreateElement("g")
	parent.AppendChild(el)
	other.AppendChild(el)
	test.T(t, len(parent.Children()), 0)
	test.T(t, el.Parent(), other)
	other.RemoveChild(el)
	test.T(t, el.Parent(), (*Element)(nil))
}

func TestDeviceBox(t *testing.T) {
	doc, err := Parse(strings.NewReader(testSVG), DefaultOptions)
	test.Error(t, err)

	box, err := doc.Root.DeviceBox()
	test.Error(t, err)
	test.T(t, box, fixed.R(0, 0, 200, 100))

	box, err = doc.GetElementByID("inner").DeviceBox()
	test.Error(t, err)
	test.T(t, box, fixed.R(20, 10, 70, 60))

	doc.GetElementByID("inner").SetAttribute("transform", "translate(1 2)")
	box, err = doc.GetElementByID("inner").DeviceBox()
	test.Error(t, err)
	test.T(t, box, fixed.R(21, 12, 71, 62))
}

func TestOrient(t *testing.T) {
	doc := New(DefaultOptions)
	marker := doc.CreateElement("marker")

	a, ok, err := marker.Orient()
	test.Error(t, err)
	test.That(t, ok)
	test.T(t, a.Value(), 0.0)

	marker.SetAttribute("orient", "0.5rad")
	a, ok, err = marker.Orient()
	test.Error(t, err)
	test.That(t, ok)
	test.T(t, a.Unit(), svgdom.AngleRad)
	test.FloatDiff(t, a.Value(), 90.0/math.Pi, 1e-9)

	marker.SetAttribute("orient", "auto-start-reverse")
	_, ok, err = marker.Orient()
	test.Error(t, err)
	test.That(t, !ok)

	marker.SetAttribute("orient", "1turn")
	_, _, err = marker.Orient()
	test.That(t, errors.Is(err, svgdom.ErrInvalidValue), err)
}
