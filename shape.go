package clippath

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Shape is a CSS basic shape. Exactly four types implement it: Circle,
// Ellipse, Polygon, and Inset. Each variant carries exactly the fields its
// geometry needs, so malformed argument counts cannot be constructed.
type Shape interface {
	isShape()
}

// Circle is the circle() basic shape: a single radius around an anchor
// position.
type Circle struct {
	Radius   Radius
	Position Position
}

func (Circle) isShape() {}

// Ellipse is the ellipse() basic shape: independent horizontal and
// vertical radii around an anchor position.
type Ellipse struct {
	RadiusX  Radius
	RadiusY  Radius
	Position Position
}

func (Ellipse) isShape() {}

// Polygon is the polygon() basic shape: an ordered vertex list with a
// fill rule. Vertex order is significant and preserved exactly as
// authored. A polygon must carry at least one vertex; an empty vertex
// list is a caller contract violation.
type Polygon struct {
	Fill     FillRule
	Vertices []CoordPair
}

func (Polygon) isShape() {}

// Inset is the inset() basic shape: a rectangle inset from the reference
// box edges, with optional rounded corners.
type Inset struct {
	Top    Coord
	Right  Coord
	Bottom Coord
	Left   Coord
	Radii  CornerRadii
}

func (Inset) isShape() {}

// ReferenceBox selects which rectangle of the target box percentage
// coordinates and shape extents resolve against. The zero value is
// BorderBox, the default.
type ReferenceBox int

const (
	// BorderBox uses the border rectangle.
	BorderBox ReferenceBox = iota
	// ContentBox uses the content rectangle.
	ContentBox
	// PaddingBox uses the padding rectangle.
	PaddingBox
	// MarginBox uses the margin rectangle.
	MarginBox
)

// SourceKind tags the clip-path source. The style system never hands this
// package a clip-path of "none".
type SourceKind int

const (
	// SourceShape is an explicit basic shape.
	SourceShape SourceKind = iota
	// SourceBox is a geometry box with no explicit shape.
	SourceBox
	// SourceURL references an external <clipPath> element. URL sources
	// short-circuit in ApplyClip and HitTestClip; they never reach path
	// generation.
	SourceURL
)

// Source is a resolved clip-path value: a source kind, the shape when
// Kind is SourceShape, and the geometry box to resolve against.
type Source struct {
	Kind  SourceKind
	Shape Shape
	Box   ReferenceBox
}
