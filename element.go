package svgdom

// Capability describes how an element takes part in resolving lengths and viewports.
type Capability uint32

const (
	// PercentageSelfRelative elements, such as gradient stops, read percentages as fractions and not
	// relative to a viewport.
	PercentageSelfRelative Capability = 1 << iota
	// OutermostViewport is the root svg element of a document.
	OutermostViewport
)

// Has returns true if all bits of c2 are set.
func (c Capability) Has(c2 Capability) bool {
	return c&c2 == c2
}

// Element is the element store the kernel reads attributes and coordinate context from.
type Element interface {
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	HasAttribute(name string) bool

	// ComputedStyle returns the resolved value of a CSS property.
	ComputedStyle(name string) (string, bool)

	// ViewportElement returns the nearest ancestor that establishes a viewport, or nil for the outermost one.
	ViewportElement() ViewportElement
	Window() Window
	Capabilities() Capability

	// OnAttributeChange registers a callback that is called after every attribute change.
	OnAttributeChange(func(name, value string))
}

// ViewportElement establishes a viewport for its descendants.
type ViewportElement interface {
	// ViewportBox returns the viewBox when set, otherwise the viewport's own size.
	ViewportBox() Rect
}

// Window is the view a document is shown in.
type Window interface {
	InnerWidth() float64
	InnerHeight() float64
}
