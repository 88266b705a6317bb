package svgdom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Rect is a rectangle with origin (X,Y), such as a viewBox.
type Rect struct {
	X, Y, Width, Height float64
}

// ParseRect parses "x y width height" or "width height", separated by commas and/or whitespace.
func ParseRect(s string) (Rect, error) {
	items, err := SplitList(s)
	if err != nil {
		return Rect{}, err
	}
	if len(items) != 2 && len(items) != 4 {
		return Rect{}, fmt.Errorf("%w: rect takes 2 or 4 numbers, got %d", ErrInvalidValue, len(items))
	}
	d := make([]float64, len(items))
	for i, item := range items {
		if d[i], err = ParseNumber(item); err != nil {
			return Rect{}, err
		}
	}
	if len(d) == 2 {
		return Rect{0.0, 0.0, d[0], d[1]}, nil
	}
	return Rect{d[0], d[1], d[2], d[3]}, nil
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0.0 || r.Height <= 0.0
}

// Equals returns true if both rectangles are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	return equal(r.X, q.X) && equal(r.Y, q.Y) && equal(r.Width, q.Width) && equal(r.Height, q.Height)
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Union returns the smallest rectangle containing both, empty rectangles are ignored.
func (r Rect) Union(q Rect) Rect {
	if q.IsEmpty() {
		return r
	} else if r.IsEmpty() {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.Right(), q.Right())
	y1 := math.Max(r.Bottom(), q.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Intersect returns the overlapping area, or the zero Rect if there is none.
func (r Rect) Intersect(q Rect) Rect {
	x0 := math.Max(r.X, q.X)
	y0 := math.Max(r.Y, q.Y)
	x1 := math.Min(r.Right(), q.Right())
	y1 := math.Min(r.Bottom(), q.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Intersects returns true if both rectangles overlap.
func (r Rect) Intersects(q Rect) bool {
	return !r.Intersect(q).IsEmpty()
}

// Contains returns true if q lies inside r.
func (r Rect) Contains(q Rect) bool {
	return r.X <= q.X && r.Y <= q.Y && q.Right() <= r.Right() && q.Bottom() <= r.Bottom()
}

// ContainsPoint returns true if p lies inside r or on its boundary.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X <= p.X && p.X <= r.Right() && r.Y <= p.Y && p.Y <= r.Bottom()
}

// Inflate grows the rectangle by dx on the left and right and dy on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X - dx, r.Y - dy, r.Width + 2.0*dx, r.Height + 2.0*dy}
}

// Transform returns the bounding box of the transformed rectangle.
func (r Rect) Transform(m Matrix2D) Rect {
	p0 := m.Apply(Point{r.X, r.Y})
	p1 := m.Apply(Point{r.Right(), r.Y})
	p2 := m.Apply(Point{r.Right(), r.Bottom()})
	p3 := m.Apply(Point{r.X, r.Bottom()})
	x0 := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	y0 := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	x1 := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	y1 := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Fixed returns the rectangle in the 26.6 fixed point format of golang.org/x/image rasterizers.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.X), Y: toFixed(r.Y)},
		Max: fixed.Point26_6{X: toFixed(r.Right()), Y: toFixed(r.Bottom())},
	}
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64.0))
}

// String returns the rectangle as a viewBox attribute.
func (r Rect) String() string {
	return joinNums(" ", r.X, r.Y, r.Width, r.Height)
}
