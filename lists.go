package svgdom

import (
	"strings"
)

// NumberList is the value of attributes such as stdDeviation or rotate.
type NumberList struct {
	*OwnedList[Number]
}

// NewNumberList returns an empty list, reg may be nil.
func NewNumberList(reg *Registry) *NumberList {
	return &NumberList{NewOwnedList[Number](reg)}
}

// ParseNumberList parses a comma and/or whitespace separated list of numbers.
func ParseNumberList(reg *Registry, s string) (*NumberList, error) {
	items, err := SplitList(s)
	if err != nil {
		return nil, err
	}
	l := NewNumberList(reg)
	for _, item := range items {
		n, err := ParseNumberValue(item)
		if err != nil {
			l.Clear()
			return nil, err
		}
		if _, err := l.AppendItem(&n); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Values returns the numbers.
func (l *NumberList) Values() []float64 {
	fs := make([]float64, len(l.items))
	for i, n := range l.items {
		fs[i] = n.Value
	}
	return fs
}

func (l *NumberList) String() string {
	return joinNums(" ", l.Values()...)
}

////////////////////////////////////////////////////////////////

// LengthList is the value of attributes such as x, y, dx or dy of text elements.
type LengthList struct {
	*OwnedList[Length]
	owner     Element
	direction Direction
}

// NewLengthList returns an empty list whose lengths resolve against owner, reg may be nil.
func NewLengthList(reg *Registry, owner Element, direction Direction) *LengthList {
	return &LengthList{NewOwnedList[Length](reg), owner, direction}
}

// ParseLengthList parses a comma and/or whitespace separated list of lengths.
func ParseLengthList(reg *Registry, owner Element, s string, direction Direction) (*LengthList, error) {
	items, err := SplitList(s)
	if err != nil {
		return nil, err
	}
	l := NewLengthList(reg, owner, direction)
	for _, item := range items {
		length, err := ParseLength(l.owner, item, l.direction)
		if err != nil {
			l.Clear()
			return nil, err
		}
		if _, err := l.AppendItem(length); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Owner returns the element the lengths resolve against.
func (l *LengthList) Owner() Element {
	return l.owner
}

// Values returns the lengths in user units.
func (l *LengthList) Values() ([]float64, error) {
	fs := make([]float64, len(l.items))
	for i, length := range l.items {
		f, err := length.Value()
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

func (l *LengthList) String() string {
	ss := make([]string, len(l.items))
	for i, length := range l.items {
		ss[i] = length.ValueAsString()
	}
	return strings.Join(ss, " ")
}

////////////////////////////////////////////////////////////////

// StringList is the value of attributes such as requiredExtensions or systemLanguage.
type StringList struct {
	*OwnedList[string]
}

// NewStringList returns an empty list, reg may be nil.
func NewStringList(reg *Registry) *StringList {
	return &StringList{NewOwnedList[string](reg)}
}

// ParseStringList parses a comma and/or whitespace separated list. Unlike other lists, an empty string
// gives a list with one empty string.
func ParseStringList(reg *Registry, s string) (*StringList, error) {
	l := NewStringList(reg)
	if strings.TrimSpace(s) == "" {
		empty := ""
		if _, err := l.AppendItem(&empty); err != nil {
			return nil, err
		}
		return l, nil
	}
	items, err := SplitList(s)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if _, err := l.AppendItem(&items[i]); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Values returns the strings.
func (l *StringList) Values() []string {
	ss := make([]string, len(l.items))
	for i, s := range l.items {
		ss[i] = *s
	}
	return ss
}

func (l *StringList) String() string {
	return strings.Join(l.Values(), " ")
}

////////////////////////////////////////////////////////////////

// PointList is the value of the points attribute of polylines and polygons.
type PointList struct {
	*OwnedList[Point]
}

// NewPointList returns an empty list, reg may be nil.
func NewPointList(reg *Registry) *PointList {
	return &PointList{NewOwnedList[Point](reg)}
}

// ParsePointList parses coordinate pairs, see ParsePoints.
func ParsePointList(reg *Registry, s string) (*PointList, error) {
	points, err := ParsePoints(s)
	if err != nil {
		return nil, err
	}
	l := NewPointList(reg)
	for i := range points {
		if _, err := l.AppendItem(&points[i]); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Values returns the points.
func (l *PointList) Values() []Point {
	ps := make([]Point, len(l.items))
	for i, p := range l.items {
		ps[i] = *p
	}
	return ps
}

func (l *PointList) String() string {
	ss := make([]string, len(l.items))
	for i, p := range l.items {
		ss[i] = p.String()
	}
	return strings.Join(ss, " ")
}
