package svgdom

import (
	"fmt"
	"math"
	"strings"
)

// DefaultFontSize in user units is used to resolve em and ex units when no font-size is available.
var DefaultFontSize = 16.0

// percentageFallback replaces lengths whose percentage could not be resolved.
const percentageFallback = 10.0

// LengthUnit is the unit of a Length.
type LengthUnit int

// see LengthUnit
const (
	UnitUnknown LengthUnit = iota
	UnitNumber
	UnitPercentage
	UnitEms
	UnitExs
	UnitPx
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitPc
)

var unitNames = map[LengthUnit]string{
	UnitNumber:     "",
	UnitPercentage: "%",
	UnitEms:        "em",
	UnitExs:        "ex",
	UnitPx:         "px",
	UnitCm:         "cm",
	UnitMm:         "mm",
	UnitIn:         "in",
	UnitPt:         "pt",
	UnitPc:         "pc",
}

// user units per unit for the absolute units
var unitFactors = map[LengthUnit]float64{
	UnitNumber: 1.0,
	UnitPx:     1.0,
	UnitCm:     96.0 / 2.54,
	UnitMm:     96.0 / 25.4,
	UnitIn:     96.0,
	UnitPt:     96.0 / 72.0,
	UnitPc:     96.0 / 6.0,
}

func (u LengthUnit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

func parseUnit(s string) LengthUnit {
	s = strings.ToLower(strings.TrimSpace(s))
	for unit, name := range unitNames {
		if name == s {
			return unit
		}
	}
	return UnitUnknown
}

// Direction selects the viewport dimension percentages refer to.
type Direction int

// see Direction
const (
	Horizontal Direction = iota
	Vertical
	Diagonal
)

// LengthSource is where a length's text comes from.
type LengthSource int

// see LengthSource
const (
	SourceXML LengthSource = iota
	SourceCSS
)

// parseLengthText parses a number followed by an optional unit. Any unrecognized suffix gives UnitUnknown.
func parseLengthText(s string) (float64, LengthUnit, string, error) {
	s = ScientificToDecimal(strings.TrimSpace(s))
	b := []byte(s)
	nn := numberLength(b)
	if nn == 0 {
		return 0.0, UnitUnknown, "", fmt.Errorf("%w: bad length %q", ErrSyntax, s)
	}
	f, err := parseFloat(b[:nn])
	if err != nil {
		return 0.0, UnitUnknown, "", err
	}
	suffix := s[nn:]
	return f, parseUnit(suffix), suffix, nil
}

// Length is a value with a unit that resolves to user units in the coordinate context of its owner element.
type Length struct {
	owner     Element
	direction Direction
	unit      LengthUnit
	suffix    string // suffix as written when the unit is unknown
	value     float64
}

// NewLength reads the attribute (SourceXML) or computed property (SourceCSS) name of owner, falling back to
// def when it is absent or empty.
func NewLength(owner Element, name string, source LengthSource, direction Direction, def string) (*Length, error) {
	var s string
	var ok bool
	if owner != nil {
		if source == SourceCSS {
			s, ok = owner.ComputedStyle(name)
		} else {
			s, ok = owner.GetAttribute(name)
		}
	}
	if !ok || strings.TrimSpace(s) == "" {
		s = def
	}
	return ParseLength(owner, s, direction)
}

// ParseLength parses s into a length resolved against owner, which may be nil.
func ParseLength(owner Element, s string, direction Direction) (*Length, error) {
	l := &Length{
		owner:     owner,
		direction: direction,
	}
	if err := l.SetValueAsString(s); err != nil {
		return nil, err
	}
	return l, nil
}

// Owner returns the element the length is resolved against.
func (l *Length) Owner() Element {
	return l.owner
}

// Direction returns the direction percentages refer to.
func (l *Length) Direction() Direction {
	return l.direction
}

// UnitType returns the unit as specified.
func (l *Length) UnitType() LengthUnit {
	return l.unit
}

// ValueInSpecifiedUnits returns the value as specified.
func (l *Length) ValueInSpecifiedUnits() float64 {
	return l.value
}

// SetValueInSpecifiedUnits sets the value and keeps the unit.
func (l *Length) SetValueInSpecifiedUnits(f float64) {
	l.value = f
}

// ValueAsString returns the value and unit as attribute text.
func (l *Length) ValueAsString() string {
	if l.unit == UnitUnknown {
		return num(l.value).String() + l.suffix
	}
	return num(l.value).String() + l.unit.String()
}

// SetValueAsString replaces value and unit. On error the length is unchanged.
func (l *Length) SetValueAsString(s string) error {
	f, unit, suffix, err := parseLengthText(s)
	if err != nil {
		return err
	}
	l.value, l.unit, l.suffix = f, unit, ""
	if unit == UnitUnknown {
		l.suffix = suffix
	}
	return nil
}

// NewValueSpecifiedUnits replaces value and unit.
func (l *Length) NewValueSpecifiedUnits(unit LengthUnit, f float64) error {
	if _, ok := unitNames[unit]; !ok {
		return fmt.Errorf("%w: unknown length unit", ErrInvalidValue)
	}
	l.value, l.unit, l.suffix = f, unit, ""
	return nil
}

// Value returns the length in user units. Percentages that cannot be resolved return 10.
func (l *Length) Value() (float64, error) {
	factor, err := l.userUnitsPer(l.unit)
	if err != nil {
		return 0.0, err
	}
	v := l.value * factor
	if !IsValid(v) {
		Logger.Debug("unresolvable length, substituting fallback", "length", l.ValueAsString(), "fallback", percentageFallback)
		v = percentageFallback
	}
	return v, nil
}

// SetValue sets the length in user units and converts it back to the specified unit. A length with an
// unknown unit becomes a px length. On error the length is unchanged.
func (l *Length) SetValue(f float64) error {
	if l.unit == UnitUnknown {
		l.value, l.unit, l.suffix = f, UnitPx, ""
		return nil
	}
	factor, err := l.userUnitsPer(l.unit)
	if err != nil {
		return err
	} else if factor == 0.0 || !IsValid(f/factor) {
		return fmt.Errorf("%w: cannot express %v user units in %s", ErrInvalidValue, f, l.unit)
	}
	l.value = f / factor
	return nil
}

// ConvertToSpecifiedUnits changes the unit while keeping the same length.
func (l *Length) ConvertToSpecifiedUnits(unit LengthUnit) error {
	if _, ok := unitNames[unit]; !ok {
		return fmt.Errorf("%w: unknown length unit", ErrInvalidValue)
	}
	v, err := l.Value()
	if err != nil {
		return err
	}
	factor, err := l.userUnitsPer(unit)
	if err != nil {
		return err
	} else if factor == 0.0 || !IsValid(v/factor) {
		return fmt.Errorf("%w: cannot convert %s to %s", ErrInvalidValue, l.ValueAsString(), unit)
	}
	l.value, l.unit, l.suffix = v/factor, unit, ""
	return nil
}

func (l *Length) userUnitsPer(unit LengthUnit) (float64, error) {
	if factor, ok := unitFactors[unit]; ok {
		return factor, nil
	}
	switch unit {
	case UnitEms:
		return l.fontSize(), nil
	case UnitExs:
		return l.fontSize() / 2.0, nil
	case UnitPercentage:
		return l.percentage(), nil
	}
	return 0.0, fmt.Errorf("%w: unknown length unit %q", ErrInvalidValue, l.suffix)
}

// percentage returns the user units of 1%.
func (l *Length) percentage() float64 {
	if l.owner != nil && l.owner.Capabilities().Has(PercentageSelfRelative) {
		return 0.01
	}
	w, h := l.viewportSize()
	switch l.direction {
	case Horizontal:
		return w / 100.0
	case Vertical:
		return h / 100.0
	}
	return math.Sqrt(w*w+h*h) / math.Sqrt2 / 100.0
}

// viewportSize returns the size of the nearest viewport, or of the window when there is none.
func (l *Length) viewportSize() (float64, float64) {
	if l.owner == nil {
		return math.NaN(), math.NaN()
	}
	if vp := l.owner.ViewportElement(); vp != nil {
		box := vp.ViewportBox()
		return box.Width, box.Height
	}
	if win := l.owner.Window(); win != nil {
		return win.InnerWidth(), win.InnerHeight()
	}
	return math.NaN(), math.NaN()
}

func (l *Length) fontSize() float64 {
	if l.owner == nil {
		return DefaultFontSize
	}
	s, ok := l.owner.ComputedStyle("font-size")
	if !ok {
		return DefaultFontSize
	}
	f, unit, _, err := parseLengthText(s)
	if err != nil {
		return DefaultFontSize
	}
	switch unit {
	case UnitEms:
		return f * DefaultFontSize
	case UnitExs:
		return f * DefaultFontSize / 2.0
	case UnitPercentage:
		return f * DefaultFontSize / 100.0
	}
	if factor, ok := unitFactors[unit]; ok {
		return f * factor
	}
	return DefaultFontSize
}

func (l *Length) String() string {
	return l.ValueAsString()
}
