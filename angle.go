package svgdom

import (
	"fmt"
	"math"
	"strings"
)

// AngleUnit is the unit of an Angle.
type AngleUnit int

// see AngleUnit
const (
	AngleUnknown AngleUnit = iota
	AngleUnspecified
	AngleDeg
	AngleRad
	AngleGrad
)

func (u AngleUnit) String() string {
	switch u {
	case AngleUnspecified:
		return ""
	case AngleDeg:
		return "deg"
	case AngleRad:
		return "rad"
	case AngleGrad:
		return "grad"
	}
	return "unknown"
}

// Angle is a value with an angle unit, such as the orient attribute of markers.
type Angle struct {
	value float64
	unit  AngleUnit
}

// NewAngle returns an angle in the given unit.
func NewAngle(value float64, unit AngleUnit) (Angle, error) {
	if unit == AngleUnknown || AngleGrad < unit {
		return Angle{}, fmt.Errorf("%w: unknown angle unit", ErrInvalidValue)
	}
	return Angle{value, unit}, nil
}

// ParseAngle parses a number with an optional deg, rad or grad suffix.
func ParseAngle(s string) (Angle, error) {
	s = ScientificToDecimal(strings.TrimSpace(s))
	b := []byte(s)
	n := numberLength(b)
	if n == 0 {
		return Angle{}, fmt.Errorf("%w: bad angle %q", ErrSyntax, s)
	}
	f, err := parseFloat(b[:n])
	if err != nil {
		return Angle{}, err
	}
	var unit AngleUnit
	switch strings.ToLower(strings.TrimSpace(s[n:])) {
	case "":
		unit = AngleUnspecified
	case "deg":
		unit = AngleDeg
	case "rad":
		unit = AngleRad
	case "grad":
		unit = AngleGrad
	default:
		return Angle{}, fmt.Errorf("%w: unknown angle unit in %q", ErrInvalidValue, s)
	}
	return Angle{f, unit}, nil
}

// Unit returns the unit as specified.
func (a Angle) Unit() AngleUnit {
	return a.unit
}

// ValueInSpecifiedUnits returns the value as specified.
func (a Angle) ValueInSpecifiedUnits() float64 {
	return a.value
}

// Value returns the angle in degrees.
func (a Angle) Value() float64 {
	switch a.unit {
	case AngleRad:
		return a.value * 180.0 / math.Pi
	case AngleGrad:
		return a.value * 0.9
	}
	return a.value
}

// ConvertToSpecifiedUnits returns the same angle expressed in unit.
func (a Angle) ConvertToSpecifiedUnits(unit AngleUnit) (Angle, error) {
	deg := a.Value()
	switch unit {
	case AngleUnspecified, AngleDeg:
		return Angle{deg, unit}, nil
	case AngleRad:
		return Angle{deg * math.Pi / 180.0, unit}, nil
	case AngleGrad:
		return Angle{deg / 0.9, unit}, nil
	}
	return Angle{}, fmt.Errorf("%w: unknown angle unit", ErrInvalidValue)
}

func (a Angle) String() string {
	return num(a.value).String() + a.unit.String()
}
