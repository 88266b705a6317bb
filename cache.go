package svgdom

// AttrCache holds the parsed value of one attribute of an element. The value is parsed on first use and
// dropped whenever the attribute changes.
type AttrCache[T any] struct {
	owner Element
	name  string
	parse func(Element, string, bool) (T, error)

	valid bool
	value T
	err   error
}

// NewAttrCache binds a cache to the attribute name of owner. The parse function receives the attribute
// value and whether it is set.
func NewAttrCache[T any](owner Element, name string, parse func(owner Element, value string, ok bool) (T, error)) *AttrCache[T] {
	c := &AttrCache[T]{
		owner: owner,
		name:  name,
		parse: parse,
	}
	owner.OnAttributeChange(func(name, _ string) {
		if name == c.name {
			c.Invalidate()
		}
	})
	return c
}

// Name returns the attribute name.
func (c *AttrCache[T]) Name() string {
	return c.name
}

// Get returns the parsed attribute value.
func (c *AttrCache[T]) Get() (T, error) {
	if !c.valid {
		s, ok := c.owner.GetAttribute(c.name)
		c.value, c.err = c.parse(c.owner, s, ok)
		c.valid = true
	}
	return c.value, c.err
}

// Invalidate drops the cached value. Cached lists are cleared so that their items no longer count as owned.
func (c *AttrCache[T]) Invalidate() {
	if c.valid && c.err == nil {
		if l, ok := any(c.value).(interface{ Clear() }); ok {
			l.Clear()
		}
	}
	var zero T
	c.valid = false
	c.value = zero
	c.err = nil
}

// Valid returns true if a parsed value is cached.
func (c *AttrCache[T]) Valid() bool {
	return c.valid
}

// NewViewBoxAttr caches the viewBox attribute, which is the zero Rect when absent.
func NewViewBoxAttr(owner Element) *AttrCache[Rect] {
	return NewAttrCache(owner, "viewBox", func(_ Element, s string, ok bool) (Rect, error) {
		if !ok {
			return Rect{}, nil
		}
		return ParseRect(s)
	})
}

// NewAspectRatioAttr caches the preserveAspectRatio attribute.
func NewAspectRatioAttr(owner Element) *AttrCache[PreserveAspectRatio] {
	return NewAttrCache(owner, "preserveAspectRatio", func(_ Element, s string, _ bool) (PreserveAspectRatio, error) {
		return ParsePreserveAspectRatio(s), nil
	})
}

// NewTransformAttr caches the transform attribute. Lists share the registry reg, which may be nil.
func NewTransformAttr(owner Element, reg *Registry) *AttrCache[*TransformList] {
	return NewAttrCache(owner, "transform", func(_ Element, s string, _ bool) (*TransformList, error) {
		return ParseTransformList(reg, s)
	})
}

// NewLengthAttr caches a length attribute, using def when it is absent or empty.
func NewLengthAttr(owner Element, name string, direction Direction, def string) *AttrCache[*Length] {
	return NewAttrCache(owner, name, func(owner Element, _ string, _ bool) (*Length, error) {
		return NewLength(owner, name, SourceXML, direction, def)
	})
}
