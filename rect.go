package clippath

import "math"

// Rect is an axis-aligned rectangle described by its origin and extent,
// in the target's logical units.
type Rect struct {
	X, Y, W, H float64
}

// XMost returns the right edge of the rectangle.
func (r Rect) XMost() float64 {
	return r.X + r.W
}

// YMost returns the bottom edge of the rectangle.
func (r Rect) YMost() float64 {
	return r.Y + r.H
}

// Div returns the rectangle with all coordinates divided by a scalar.
func (r Rect) Div(s float64) Rect {
	return Rect{X: r.X / s, Y: r.Y / s, W: r.W / s, H: r.H / s}
}

// SnapToPixels rounds each edge of the rectangle to the nearest device
// pixel boundary, where unitsPerPixel is the number of logical units per
// device pixel. The result stays in logical units. Snapping the reference
// box before shape generation prevents hairline seams along fractional
// pixel boundaries.
func (r Rect) SnapToPixels(unitsPerPixel float64) Rect {
	left := math.Round(r.X/unitsPerPixel) * unitsPerPixel
	top := math.Round(r.Y/unitsPerPixel) * unitsPerPixel
	right := math.Round(r.XMost()/unitsPerPixel) * unitsPerPixel
	bottom := math.Round(r.YMost()/unitsPerPixel) * unitsPerPixel
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}
