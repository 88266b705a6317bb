package svgdom

import (
	"fmt"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Point is a coordinate in user units.
type Point struct {
	X, Y float64
}

// MatrixTransform returns the point transformed by m.
func (p Point) MatrixTransform(m Matrix2D) Point {
	return m.Apply(p)
}

// Equals returns true if both points are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

func (p Point) String() string {
	return joinNums(",", p.X, p.Y)
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// ParsePoints parses the points attribute of polylines and polygons. Coordinates are paired in order and an
// odd number of coordinates returns ErrInvalidValue.
func ParsePoints(s string) ([]Point, error) {
	b := []byte(s)
	coords := []float64{}
	i := skipCommaWhitespace(b)
	for i < len(b) {
		n := numberLength(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: bad coordinate at position %d of %q", ErrSyntax, i, s)
		}
		f, m := pstrconv.ParseFloat(b[i : i+n])
		if m != n || !IsValid(f) {
			return nil, fmt.Errorf("%w: bad coordinate %q", ErrSyntax, b[i:i+n])
		}
		coords = append(coords, f)
		i += n
		i += skipCommaWhitespace(b[i:])
	}
	if len(coords)%2 == 1 {
		return nil, fmt.Errorf("%w: odd number of coordinates in %q", ErrInvalidValue, s)
	}
	points := make([]Point, 0, len(coords)/2)
	for j := 0; j < len(coords); j += 2 {
		points = append(points, Point{coords[j], coords[j+1]})
	}
	return points, nil
}
