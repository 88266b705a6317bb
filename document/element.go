package document

import (
	"strconv"
	"strings"

	"github.com/tdewolff/svgdom"
	"golang.org/x/image/math/fixed"
)

// inherited lists the properties whose computed value is taken from the parent when not specified.
var inherited = map[string]bool{
	"font-size":   true,
	"font-family": true,
	"font-style":  true,
	"font-weight": true,
	"fill":        true,
	"stroke":      true,
	"visibility":  true,
}

// Element is a node of a Document.
type Element struct {
	Tag  string
	Text string

	doc      *Document
	parent   *Element
	children []*Element

	attrs     map[string]string
	attrNames []string
	style     map[string]string // inline style declarations
	listeners []func(string, string)

	transform   *svgdom.AttrCache[*svgdom.TransformList]
	viewBox     *svgdom.AttrCache[svgdom.Rect]
	aspectRatio *svgdom.AttrCache[svgdom.PreserveAspectRatio]
}

func (el *Element) Document() *Document {
	return el.doc
}

func (el *Element) Parent() *Element {
	return el.parent
}

// Children returns a copy of the child elements.
func (el *Element) Children() []*Element {
	return append([]*Element{}, el.children...)
}

// AppendChild moves child to the end of the children of el.
func (el *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = el
	el.children = append(el.children, child)
}

// RemoveChild detaches child from el.
func (el *Element) RemoveChild(child *Element) {
	for i, c := range el.children {
		if c == child {
			el.children = append(el.children[:i], el.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (el *Element) walk(f func(*Element) bool) {
	if !f(el) {
		return
	}
	for _, child := range el.children {
		child.walk(f)
	}
}

func (el *Element) GetAttribute(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

// AttributeNames returns the attribute names in the order they were first set.
func (el *Element) AttributeNames() []string {
	return append([]string{}, el.attrNames...)
}

func (el *Element) HasAttribute(name string) bool {
	_, ok := el.attrs[name]
	return ok
}

// SetAttribute sets an attribute and notifies all listeners.
func (el *Element) SetAttribute(name, value string) {
	old, ok := el.attrs[name]
	if !ok {
		el.attrNames = append(el.attrNames, name)
	}
	el.attrs[name] = value
	switch name {
	case "id":
		if ok && el.doc.ids[old] == el {
			delete(el.doc.ids, old)
		}
		el.doc.ids[value] = el
	case "style":
		el.style = parseInlineStyle(value)
	}
	el.notify(name, value)
}

// RemoveAttribute removes an attribute and notifies all listeners with an empty value.
func (el *Element) RemoveAttribute(name string) {
	old, ok := el.attrs[name]
	if !ok {
		return
	}
	delete(el.attrs, name)
	for i, attrName := range el.attrNames {
		if attrName == name {
			el.attrNames = append(el.attrNames[:i], el.attrNames[i+1:]...)
			break
		}
	}
	switch name {
	case "id":
		if el.doc.ids[old] == el {
			delete(el.doc.ids, old)
		}
	case "style":
		el.style = map[string]string{}
	}
	el.notify(name, "")
}

func (el *Element) notify(name, value string) {
	for _, f := range el.listeners {
		f(name, value)
	}
}

func (el *Element) OnAttributeChange(f func(name, value string)) {
	el.listeners = append(el.listeners, f)
}

// ComputedStyle returns the value of a property from the inline style, or else from the presentation
// attribute, or else from the parent for inherited properties. The font-size is always known and returned
// as an absolute length in px.
func (el *Element) ComputedStyle(name string) (string, bool) {
	if name == "font-size" {
		return strconv.FormatFloat(el.fontSize(), 'f', -1, 64) + "px", true
	}
	return el.specifiedStyle(name)
}

func (el *Element) declared(name string) (string, bool) {
	if v, ok := el.style[name]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	} else if v, ok := el.attrs[name]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}

func (el *Element) specifiedStyle(name string) (string, bool) {
	v, ok := el.declared(name)
	if ok && v != "inherit" {
		return v, true
	} else if el.parent != nil && (inherited[name] || v == "inherit") {
		return el.parent.specifiedStyle(name)
	}
	return "", false
}

// fontSize returns the font size in px, relative sizes are resolved against the parent's font size.
func (el *Element) fontSize() float64 {
	parent := svgdom.DefaultFontSize
	if el.parent != nil {
		parent = el.parent.fontSize()
	}
	v, ok := el.declared("font-size")
	if !ok || v == "inherit" {
		return parent
	}
	l, err := svgdom.ParseLength(nil, v, svgdom.Horizontal)
	if err != nil {
		return parent
	}
	switch l.UnitType() {
	case svgdom.UnitEms:
		return l.ValueInSpecifiedUnits() * parent
	case svgdom.UnitExs:
		return l.ValueInSpecifiedUnits() * parent / 2.0
	case svgdom.UnitPercentage:
		return l.ValueInSpecifiedUnits() * parent / 100.0
	}
	px, err := l.Value()
	if err != nil {
		return parent
	}
	return px
}

// ViewportElement returns the nearest ancestor svg element.
func (el *Element) ViewportElement() svgdom.ViewportElement {
	if vp := el.viewportElement(); vp != nil {
		return vp
	}
	return nil
}

func (el *Element) viewportElement() *Element {
	for p := el.parent; p != nil; p = p.parent {
		if p.Tag == "svg" {
			return p
		}
	}
	return nil
}

func (el *Element) Window() svgdom.Window {
	if el.doc == nil {
		return nil
	}
	return el.doc
}

// Capabilities returns PercentageSelfRelative for gradient stops and OutermostViewport for the outermost
// svg element.
func (el *Element) Capabilities() svgdom.Capability {
	var caps svgdom.Capability
	switch el.Tag {
	case "stop":
		caps |= svgdom.PercentageSelfRelative
	case "svg":
		if el.viewportElement() == nil {
			caps |= svgdom.OutermostViewport
		}
	}
	return caps
}

// Length returns a length attribute resolved against the element, using def when absent.
func (el *Element) Length(name string, direction svgdom.Direction, def string) (*svgdom.Length, error) {
	return svgdom.NewLength(el, name, svgdom.SourceXML, direction, def)
}

// Transform returns the parsed transform attribute.
func (el *Element) Transform() (*svgdom.TransformList, error) {
	return el.transform.Get()
}

// ViewBox returns the parsed viewBox attribute, which is the zero Rect when absent.
func (el *Element) ViewBox() (svgdom.Rect, error) {
	return el.viewBox.Get()
}

// PreserveAspectRatio returns the parsed preserveAspectRatio attribute.
func (el *Element) PreserveAspectRatio() svgdom.PreserveAspectRatio {
	par, _ := el.aspectRatio.Get()
	return par
}

// Viewport returns the position and size of the viewport established by an svg element. The outermost svg
// element is positioned at the origin.
func (el *Element) Viewport() (svgdom.Rect, error) {
	w, err := el.resolve("width", svgdom.Horizontal, "100%")
	if err != nil {
		return svgdom.Rect{}, err
	}
	h, err := el.resolve("height", svgdom.Vertical, "100%")
	if err != nil {
		return svgdom.Rect{}, err
	}
	if el.Capabilities().Has(svgdom.OutermostViewport) {
		return svgdom.Rect{Width: w, Height: h}, nil
	}
	x, err := el.resolve("x", svgdom.Horizontal, "0")
	if err != nil {
		return svgdom.Rect{}, err
	}
	y, err := el.resolve("y", svgdom.Vertical, "0")
	if err != nil {
		return svgdom.Rect{}, err
	}
	return svgdom.Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// ViewportBox returns the viewBox when set and not empty, otherwise the size of the viewport.
func (el *Element) ViewportBox() svgdom.Rect {
	if vb, err := el.ViewBox(); err == nil && !vb.IsEmpty() {
		return vb
	}
	vp, err := el.Viewport()
	if err != nil {
		return svgdom.Rect{}
	}
	return svgdom.Rect{Width: vp.Width, Height: vp.Height}
}

// LocalMatrix returns the transformation from the coordinate system of the element to that of its parent.
// For svg elements this includes the viewport position and viewBox fitting.
func (el *Element) LocalMatrix() (svgdom.Matrix2D, error) {
	m := svgdom.Identity
	if el.Tag == "svg" {
		vp, err := el.Viewport()
		if err != nil {
			return svgdom.Matrix2D{}, err
		}
		vb, err := el.ViewBox()
		if err != nil {
			return svgdom.Matrix2D{}, err
		}
		m = m.Translate(vp.X, vp.Y)
		m = m.Multiply(el.PreserveAspectRatio().ViewBoxTransform(vb, svgdom.Rect{Width: vp.Width, Height: vp.Height}))
	}
	transform, err := el.Transform()
	if err != nil {
		return svgdom.Matrix2D{}, err
	}
	return m.Multiply(transform.TotalMatrix()), nil
}

// CTM returns the transformation from the coordinate system of the element to that of the window.
func (el *Element) CTM() (svgdom.Matrix2D, error) {
	m, err := el.LocalMatrix()
	if err != nil {
		return svgdom.Matrix2D{}, err
	}
	if el.parent != nil {
		parent, err := el.parent.CTM()
		if err != nil {
			return svgdom.Matrix2D{}, err
		}
		m = parent.Multiply(m)
	}
	return m, nil
}

// DeviceBox returns the bounding box in window coordinates of the viewport box of an svg element, rounded to
// 26.6 fixed point.
func (el *Element) DeviceBox() (fixed.Rectangle26_6, error) {
	ctm, err := el.CTM()
	if err != nil {
		return fixed.Rectangle26_6{}, err
	}
	return el.ViewportBox().Transform(ctm).Fixed(), nil
}

// Orient returns the orient attribute of a marker. The second return value is false for auto and
// auto-start-reverse, in which case the angle follows the path direction.
func (el *Element) Orient() (svgdom.Angle, bool, error) {
	v, ok := el.GetAttribute("orient")
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		a, err := svgdom.NewAngle(0.0, svgdom.AngleUnspecified)
		return a, true, err
	} else if v == "auto" || v == "auto-start-reverse" {
		return svgdom.Angle{}, false, nil
	}
	a, err := svgdom.ParseAngle(v)
	if err != nil {
		return svgdom.Angle{}, false, err
	}
	return a, true, nil
}

func (el *Element) resolve(name string, direction svgdom.Direction, def string) (float64, error) {
	l, err := el.Length(name, direction, def)
	if err != nil {
		return 0.0, err
	}
	return l.Value()
}
