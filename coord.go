package clippath

import "math"

// Coord is a style coordinate: a fixed length, a percentage, or a calc()
// combination of both. The zero value is a zero length.
//
// A single struct covers all three cases: a pure length has Percent == 0,
// a pure percentage has Length == 0, and calc() carries both.
type Coord struct {
	// Length is the fixed component, in logical units.
	Length float64
	// Percent is the percentage component, resolved against a reference
	// length supplied at resolution time. Expressed as a percentage,
	// so 50 means 50%.
	Percent float64
}

// Len returns a fixed-length coordinate.
func Len(v float64) Coord {
	return Coord{Length: v}
}

// Pct returns a percentage coordinate. Pct(50) is 50%.
func Pct(p float64) Coord {
	return Coord{Percent: p}
}

// Calc returns a coordinate combining a fixed length with a percentage,
// the resolved form of a CSS calc() expression.
func Calc(length, percent float64) Coord {
	return Coord{Length: length, Percent: percent}
}

// Resolve computes the coordinate against a reference length. The fixed
// component passes through, the percentage component scales by ref, and
// the two sum. Resolve is pure and total.
func (c Coord) Resolve(ref float64) float64 {
	return c.Length + c.Percent/100*ref
}

// IsZero reports whether the coordinate resolves to zero for every
// reference length.
func (c Coord) IsZero() bool {
	return c.Length == 0 && c.Percent == 0
}

// RadiusKeyword selects keyword-relative radius resolution for circles
// and ellipses.
type RadiusKeyword int

const (
	// KeywordNone means the radius is an explicit coordinate.
	KeywordNone RadiusKeyword = iota
	// ClosestSide resolves to the distance from the center to the
	// nearest side of the reference box on the queried axis.
	ClosestSide
	// FarthestSide resolves to the distance from the center to the
	// farthest side of the reference box on the queried axis.
	FarthestSide
)

// Resolve computes the keyword radius for one axis, given the shape center
// and the reference box extent [boxMin, boxMax] on that axis. Axes are
// resolved independently; the shape generator combines them afterwards.
func (k RadiusKeyword) Resolve(center, boxMin, boxMax float64) float64 {
	d1 := math.Abs(boxMin - center)
	d2 := math.Abs(boxMax - center)
	switch k {
	case FarthestSide:
		return math.Max(d1, d2)
	case ClosestSide:
		return math.Min(d1, d2)
	}
	panic("clippath: Resolve called on a non-keyword radius")
}

// Radius is a shape radius: either an explicit coordinate or a side
// keyword. When Keyword is KeywordNone, Coord is used.
type Radius struct {
	Keyword RadiusKeyword
	Coord   Coord
}

// CoordRadius returns a radius backed by an explicit coordinate.
func CoordRadius(c Coord) Radius {
	return Radius{Coord: c}
}

// KeywordRadius returns a keyword-relative radius.
func KeywordRadius(k RadiusKeyword) Radius {
	return Radius{Keyword: k}
}

// Position is a resolved anchor-point descriptor, one coordinate per axis.
// Style resolution reduces CSS <position> keywords to percentage/offset
// pairs before they reach this package, so "center" arrives as Pct(50) on
// both axes.
type Position struct {
	X, Y Coord
}

// Center returns the position anchored at the middle of the box.
func Center() Position {
	return Position{X: Pct(50), Y: Pct(50)}
}

// Anchor resolves the position against a reference box, returning the
// absolute anchor point in logical units.
func (p Position) Anchor(ref Rect) Point {
	return Point{
		X: ref.X + p.X.Resolve(ref.W),
		Y: ref.Y + p.Y.Resolve(ref.H),
	}
}

// CoordPair is an (x, y) pair of coordinates, used for polygon vertices
// and corner radii.
type CoordPair struct {
	X, Y Coord
}

// CornerRadii holds the four corner radius pairs of an inset rectangle,
// ordered top-left, top-right, bottom-right, bottom-left.
type CornerRadii [4]CoordPair

// Corner indices into CornerRadii.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// HasNonZero reports whether any corner carries a non-zero radius
// component.
func (cr CornerRadii) HasNonZero() bool {
	for _, c := range cr {
		if !c.X.IsZero() || !c.Y.IsZero() {
			return true
		}
	}
	return false
}
