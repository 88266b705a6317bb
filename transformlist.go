package svgdom

import (
	"regexp"
	"strings"
)

var transformFunction = regexp.MustCompile(`[A-Za-z]+\s*\([^)]*\)`)

// TransformList is the value of a transform attribute.
type TransformList struct {
	*OwnedList[Transform]
}

// NewTransformList returns an empty list, reg may be nil.
func NewTransformList(reg *Registry) *TransformList {
	return &TransformList{NewOwnedList[Transform](reg)}
}

// ParseTransformList parses every transform function in s in order. Text in between functions is ignored.
func ParseTransformList(reg *Registry, s string) (*TransformList, error) {
	l := NewTransformList(reg)
	for _, fun := range transformFunction.FindAllString(s, -1) {
		t, err := ParseTransform(fun)
		if err != nil {
			l.Clear()
			return nil, err
		}
		if _, err := l.AppendItem(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// TotalMatrix returns the product of all transforms, so that the last transform is applied first.
func (l *TransformList) TotalMatrix() Matrix2D {
	m := Identity
	for _, t := range l.items {
		m = m.Multiply(t.Matrix)
	}
	return m
}

// Consolidate replaces all transforms by a single matrix transform and returns it. An empty list stays
// empty and returns nil.
func (l *TransformList) Consolidate() *Transform {
	if len(l.items) == 0 {
		return nil
	}
	t := l.CreateSVGTransformFromMatrix(l.TotalMatrix())
	if _, err := l.Initialize(t); err != nil {
		return nil
	}
	return t
}

// CreateSVGTransformFromMatrix returns a new matrix transform that does not belong to any list.
func (l *TransformList) CreateSVGTransformFromMatrix(m Matrix2D) *Transform {
	t := &Transform{}
	t.SetMatrix(m)
	return t
}

// String returns the list as a transform attribute.
func (l *TransformList) String() string {
	sb := strings.Builder{}
	for _, t := range l.items {
		if s := t.String(); s != "" {
			if sb.Len() != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
		}
	}
	return sb.String()
}
