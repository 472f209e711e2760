// Geometric primitives for overlay layout.
// Screen-space values are pixels relative to the overlay centre with Y up,
// the same orientation as world coordinates.

package overlay

import "math"

// Point represents a 2D coordinate or vector.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Len2 returns the squared length of p.
func (p Point) Len2() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Len returns the length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) &&
		!math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Rect is an axis-aligned rectangle given by its lower-left corner and size.
type Rect struct {
	X, Y float64 // Lower-left corner
	W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Centre returns the centre point of the rectangle.
func (r Rect) Centre() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2*d, r.H + 2*d}
}

// Touches reports whether two rectangles overlap or share an edge.
// This is the test the collision primitive uses.
func (r Rect) Touches(o Rect) bool {
	if r.Right() < o.X || r.X > o.Right() {
		return false
	}
	if r.Top() < o.Y || r.Y > o.Top() {
		return false
	}
	return true
}

// Intersect returns the overlapping region of two rectangles.
// The result has zero size when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Top(), o.Top())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// sign returns 1 for positive values and -1 otherwise, zero included.
func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
