package svgdom

import (
	"fmt"
	"strings"
	"unicode"
)

// TransformKind is the transform function of a Transform.
type TransformKind int

// see TransformKind
const (
	TransformUnknown TransformKind = iota
	TransformMatrix
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
)

var transformNames = map[TransformKind]string{
	TransformMatrix:    "matrix",
	TransformTranslate: "translate",
	TransformScale:     "scale",
	TransformRotate:    "rotate",
	TransformSkewX:     "skewX",
	TransformSkewY:     "skewY",
}

func (k TransformKind) String() string {
	if name, ok := transformNames[k]; ok {
		return name
	}
	return "unknown"
}

// Transform is a single transform function such as rotate(45). Args holds the arguments as written, so that
// serialization does not go through the matrix.
type Transform struct {
	Kind   TransformKind
	Matrix Matrix2D
	Angle  float64
	Args   []float64
}

// NewTransform returns an identity matrix transform.
func NewTransform() *Transform {
	t := &Transform{}
	t.SetMatrix(Identity)
	return t
}

func (t *Transform) SetMatrix(m Matrix2D) {
	*t = Transform{
		Kind:   TransformMatrix,
		Matrix: m,
		Args:   []float64{m.A, m.B, m.C, m.D, m.E, m.F},
	}
}

func (t *Transform) SetTranslate(tx, ty float64) {
	*t = Transform{
		Kind:   TransformTranslate,
		Matrix: Identity.Translate(tx, ty),
		Args:   []float64{tx, ty},
	}
}

func (t *Transform) SetScale(sx, sy float64) {
	*t = Transform{
		Kind:   TransformScale,
		Matrix: Identity.ScaleNonUniform(sx, sy),
		Args:   []float64{sx, sy},
	}
}

// SetRotate sets a rotation of angle degrees around (cx,cy).
func (t *Transform) SetRotate(angle, cx, cy float64) {
	*t = Transform{
		Kind:   TransformRotate,
		Matrix: Identity.Translate(cx, cy).Rotate(angle).Translate(-cx, -cy),
		Angle:  angle,
		Args:   []float64{angle, cx, cy},
	}
	if cx == 0.0 && cy == 0.0 {
		t.Args = t.Args[:1]
	}
}

func (t *Transform) SetSkewX(angle float64) {
	*t = Transform{
		Kind:   TransformSkewX,
		Matrix: Identity.SkewX(angle),
		Angle:  angle,
		Args:   []float64{angle},
	}
}

func (t *Transform) SetSkewY(angle float64) {
	*t = Transform{
		Kind:   TransformSkewY,
		Matrix: Identity.SkewY(angle),
		Angle:  angle,
		Args:   []float64{angle},
	}
}

// parseTransformArgs splits on any run of commas and whitespace.
func parseTransformArgs(s string) ([]float64, error) {
	items := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	args := make([]float64, 0, len(items))
	for _, item := range items {
		b := []byte(item)
		if n := numberLength(b); n != len(b) {
			return nil, fmt.Errorf("%w: bad transform argument %q", ErrSyntax, item)
		}
		f, err := parseFloat(b)
		if err != nil {
			return nil, err
		}
		args = append(args, f)
	}
	return args, nil
}

// ParseTransform parses a single transform function such as "translate(10,20)". An unknown function name
// returns an identity transform of kind TransformUnknown.
func ParseTransform(s string) (*Transform, error) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open == -1 || end < open {
		return nil, fmt.Errorf("%w: bad transform function %q", ErrSyntax, s)
	}
	name := strings.TrimSpace(s[:open])
	d, err := parseTransformArgs(s[open+1 : end])
	if err != nil {
		return nil, err
	}

	t := &Transform{}
	switch name {
	case "matrix":
		if len(d) != 6 {
			return nil, fmt.Errorf("%w: matrix takes 6 arguments, got %d", ErrArgumentCount, len(d))
		}
		t.SetMatrix(Matrix2D{d[0], d[1], d[2], d[3], d[4], d[5]})
	case "translate":
		if len(d) != 1 && len(d) != 2 {
			return nil, fmt.Errorf("%w: translate takes 1 or 2 arguments, got %d", ErrArgumentCount, len(d))
		} else if len(d) == 1 {
			t.SetTranslate(d[0], 0.0)
		} else {
			t.SetTranslate(d[0], d[1])
		}
	case "scale":
		if len(d) != 1 && len(d) != 2 {
			return nil, fmt.Errorf("%w: scale takes 1 or 2 arguments, got %d", ErrArgumentCount, len(d))
		} else if len(d) == 1 {
			t.SetScale(d[0], d[0])
		} else {
			t.SetScale(d[0], d[1])
		}
	case "rotate":
		if len(d) != 1 && len(d) != 3 {
			return nil, fmt.Errorf("%w: rotate takes 1 or 3 arguments, got %d", ErrArgumentCount, len(d))
		} else if len(d) == 1 {
			t.SetRotate(d[0], 0.0, 0.0)
		} else {
			t.SetRotate(d[0], d[1], d[2])
		}
	case "skewX":
		if len(d) != 1 {
			return nil, fmt.Errorf("%w: skewX takes 1 argument, got %d", ErrArgumentCount, len(d))
		}
		t.SetSkewX(d[0])
	case "skewY":
		if len(d) != 1 {
			return nil, fmt.Errorf("%w: skewY takes 1 argument, got %d", ErrArgumentCount, len(d))
		}
		t.SetSkewY(d[0])
	default:
		Logger.Debug("unknown transform function, using identity", "function", name)
		t.Kind = TransformUnknown
		t.Matrix = Identity
	}
	t.Args = d
	return t, nil
}

// String returns the transform function with its arguments as written.
func (t *Transform) String() string {
	if t.Kind == TransformUnknown {
		return ""
	}
	return t.Kind.String() + "(" + joinNums(" ", t.Args...) + ")"
}
