package clippath

import "math"

// Point represents a 2D point or vector in the target's logical units
// (or in device pixels, once emitted into a path).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Size represents a 2D extent. Negative extents are permitted; degenerate
// geometry flows through path generation unclamped.
type Size struct {
	W, H float64
}

// Div returns the size divided by a scalar.
func (s Size) Div(d float64) Size {
	return Size{W: s.W / d, H: s.H / d}
}

// IsZero reports whether both extents are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}
