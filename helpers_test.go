package svgdom

type testViewport struct {
	box Rect
}

func (vp testViewport) ViewportBox() Rect {
	return vp.box
}

type testWindow struct {
	w, h float64
}

func (win testWindow) InnerWidth() float64 {
	return win.w
}

func (win testWindow) InnerHeight() float64 {
	return win.h
}

// testElement is a minimal element store.
type testElement struct {
	attrs     map[string]string
	style     map[string]string
	viewport  ViewportElement
	window    Window
	caps      Capability
	listeners []func(string, string)
}

func newTestElement() *testElement {
	return &testElement{
		attrs: map[string]string{},
		style: map[string]string{},
	}
}

func (el *testElement) GetAttribute(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

func (el *testElement) SetAttribute(name, value string) {
	el.attrs[name] = value
	for _, f := range el.listeners {
		f(name, value)
	}
}

func (el *testElement) HasAttribute(name string) bool {
	_, ok := el.attrs[name]
	return ok
}

func (el *testElement) ComputedStyle(name string) (string, bool) {
	v, ok := el.style[name]
	return v, ok
}

func (el *testElement) ViewportElement() ViewportElement {
	return el.viewport
}

func (el *testElement) Window() Window {
	return el.window
}

func (el *testElement) Capabilities() Capability {
	return el.caps
}

func (el *testElement) OnAttributeChange(f func(string, string)) {
	el.listeners = append(el.listeners, f)
}
