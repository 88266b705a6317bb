package svgdom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix2D is an affine transformation [[A C E] [B D F] [0 0 1]] mapping (x,y) to (A*x+C*y+E, B*x+D*y+F).
// Operations return a new matrix and post-multiply the elementary transformation, so that in
// Identity.Translate(10,0).Rotate(90) points are rotated first and translated second, as in the
// transform attribute "translate(10,0) rotate(90)".
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transformation.
var Identity = Matrix2D{1.0, 0.0, 0.0, 1.0, 0.0, 0.0}

// Multiply returns m*q, meaning q is applied first.
func (m Matrix2D) Multiply(q Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*q.A + m.C*q.B,
		B: m.B*q.A + m.D*q.B,
		C: m.A*q.C + m.C*q.D,
		D: m.B*q.C + m.D*q.D,
		E: m.A*q.E + m.C*q.F + m.E,
		F: m.B*q.E + m.D*q.F + m.F,
	}
}

// Apply returns the transformed point.
func (m Matrix2D) Apply(p Point) Point {
	return Point{
		m.A*p.X + m.C*p.Y + m.E,
		m.B*p.X + m.D*p.Y + m.F,
	}
}

func (m Matrix2D) Translate(x, y float64) Matrix2D {
	return m.Multiply(Matrix2D{1.0, 0.0, 0.0, 1.0, x, y})
}

func (m Matrix2D) Scale(s float64) Matrix2D {
	return m.ScaleNonUniform(s, s)
}

func (m Matrix2D) ScaleNonUniform(x, y float64) Matrix2D {
	return m.Multiply(Matrix2D{x, 0.0, 0.0, y, 0.0, 0.0})
}

// Rotate rotates by rot degrees, clockwise in the y-down SVG coordinate system.
func (m Matrix2D) Rotate(rot float64) Matrix2D {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Multiply(Matrix2D{costheta, sintheta, -sintheta, costheta, 0.0, 0.0})
}

// RotateFromVector rotates by the angle of the vector (x,y). Both components must be non-zero.
func (m Matrix2D) RotateFromVector(x, y float64) (Matrix2D, error) {
	if x == 0.0 || y == 0.0 {
		return Matrix2D{}, fmt.Errorf("%w: zero component in rotation vector (%v,%v)", ErrInvalidValue, x, y)
	}
	return m.Rotate(math.Atan2(y, x) * 180.0 / math.Pi), nil
}

// SkewX skews along the x-axis by angle degrees.
func (m Matrix2D) SkewX(angle float64) Matrix2D {
	return m.Multiply(Matrix2D{1.0, 0.0, math.Tan(angle * math.Pi / 180.0), 1.0, 0.0, 0.0})
}

// SkewY skews along the y-axis by angle degrees.
func (m Matrix2D) SkewY(angle float64) Matrix2D {
	return m.Multiply(Matrix2D{1.0, math.Tan(angle * math.Pi / 180.0), 0.0, 1.0, 0.0, 0.0})
}

func (m Matrix2D) FlipX() Matrix2D {
	return m.ScaleNonUniform(-1.0, 1.0)
}

func (m Matrix2D) FlipY() Matrix2D {
	return m.ScaleNonUniform(1.0, -1.0)
}

func (m Matrix2D) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse transformation, or ErrNotInvertible if the determinant is zero.
func (m Matrix2D) Inverse() (Matrix2D, error) {
	det := m.Det()
	if det == 0.0 {
		return Matrix2D{}, fmt.Errorf("%w: %v", ErrNotInvertible, m)
	}
	return Matrix2D{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, nil
}

func (m Matrix2D) IsIdentity() bool {
	return m == Identity
}

// Equals returns true if all components are equal with tolerance Epsilon.
func (m Matrix2D) Equals(q Matrix2D) bool {
	return equal(m.A, q.A) && equal(m.B, q.B) && equal(m.C, q.C) && equal(m.D, q.D) && equal(m.E, q.E) && equal(m.F, q.F)
}

// Decompose returns the translation, the rotation in degrees and the scale factors of the transformation,
// ignoring skew.
func (m Matrix2D) Decompose() (tx, ty, rot, sx, sy float64) {
	sx = math.Copysign(math.Hypot(m.A, m.B), m.A)
	sy = math.Copysign(math.Hypot(m.C, m.D), m.D)
	rot = math.Atan2(m.B, m.A) * 180.0 / math.Pi
	return m.E, m.F, rot, sx, sy
}

// Aff3 returns the matrix in the row-major layout used by golang.org/x/image.
func (m Matrix2D) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}

// String returns the matrix as a transform attribute.
func (m Matrix2D) String() string {
	return "matrix(" + joinNums(" ", m.A, m.B, m.C, m.D, m.E, m.F) + ")"
}
