// Package document is an element store for SVG documents that provides the coordinate context needed to
// resolve lengths, viewBoxes and transforms.
package document

import (
	"github.com/tdewolff/svgdom"
)

// Options are the document settings.
type Options struct {
	// WindowWidth and WindowHeight are the size of the view the document is shown in, in user units.
	WindowWidth  float64
	WindowHeight float64
}

// DefaultOptions are the default document settings.
var DefaultOptions = Options{
	WindowWidth:  800.0,
	WindowHeight: 600.0,
}

// Document is a tree of elements. All lists created for its elements share one registry.
type Document struct {
	Root *Element

	opts Options
	reg  *svgdom.Registry
	ids  map[string]*Element
}

// New returns an empty document.
func New(opts Options) *Document {
	return &Document{
		opts: opts,
		reg:  svgdom.NewRegistry(),
		ids:  map[string]*Element{},
	}
}

// Registry returns the list ownership registry of the document.
func (doc *Document) Registry() *svgdom.Registry {
	return doc.reg
}

func (doc *Document) InnerWidth() float64 {
	return doc.opts.WindowWidth
}

func (doc *Document) InnerHeight() float64 {
	return doc.opts.WindowHeight
}

// CreateElement returns a new element that is not yet part of the tree.
func (doc *Document) CreateElement(tag string) *Element {
	el := &Element{
		Tag:   tag,
		doc:   doc,
		attrs: map[string]string{},
		style: map[string]string{},
	}
	el.transform = svgdom.NewTransformAttr(el, doc.reg)
	el.viewBox = svgdom.NewViewBoxAttr(el)
	el.aspectRatio = svgdom.NewAspectRatioAttr(el)
	return el
}

// GetElementByID returns the element with the given id, or nil.
func (doc *Document) GetElementByID(id string) *Element {
	return doc.ids[id]
}

// Walk calls f for every element in document order. Returning false skips the children of an element.
func (doc *Document) Walk(f func(*Element) bool) {
	if doc.Root != nil {
		doc.Root.walk(f)
	}
}
