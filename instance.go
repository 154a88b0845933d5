package clippath

import "math"

// Instance binds one clip target to one clip-path source for the duration
// of a single evaluation. Instances are cheap, hold no derived state, and
// are discarded after use; CreateClipPath may be called repeatedly and is
// idempotent.
type Instance struct {
	provider BoxProvider
	src      Source
}

// New creates an instance for one (target, source) pair.
func New(provider BoxProvider, src Source) *Instance {
	return &Instance{provider: provider, src: src}
}

// CreateClipPath resolves the source against the target box and builds
// the clip path on the given draw target.
//
// A source without an explicit shape yields an empty path, so everything
// is clipped out.
func (in *Instance) CreateClipPath(dt DrawTarget) Path {
	ref := referenceRect(in.provider, in.src.Box)

	if in.src.Kind != SourceShape || in.src.Shape == nil {
		// TODO: clip to the border-radius of the reference box when no
		// shape is given.
		Logger().Debug("clippath: source has no explicit shape, emitting empty path",
			"kind", in.src.Kind)
		return dt.NewPathBuilder(FillRuleNonZero).Finish()
	}

	scale := in.provider.UnitsPerDevPixel()
	ref = ref.SnapToPixels(scale)

	switch sh := in.src.Shape.(type) {
	case Circle:
		return in.circlePath(dt, sh, ref, scale)
	case Ellipse:
		return in.ellipsePath(dt, sh, ref, scale)
	case Polygon:
		return in.polygonPath(dt, sh, ref, scale)
	case Inset:
		return in.insetPath(dt, sh, ref, scale)
	}
	panic("clippath: unknown shape type")
}

// circlePath resolves circle(). A percentage radius resolves against the
// diagonal-over-sqrt2 reference length; a keyword radius resolves per
// axis and then combines, closest-side taking the minimum and
// farthest-side the maximum of the two axes.
func (in *Instance) circlePath(dt DrawTarget, sh Circle, ref Rect, scale float64) Path {
	b := dt.NewPathBuilder(FillRuleNonZero)

	center := sh.Position.Anchor(ref)

	var r float64
	if sh.Radius.Keyword != KeywordNone {
		horizontal := sh.Radius.Keyword.Resolve(center.X, ref.X, ref.XMost())
		vertical := sh.Radius.Keyword.Resolve(center.Y, ref.Y, ref.YMost())
		if sh.Radius.Keyword == FarthestSide {
			r = math.Max(horizontal, vertical)
		} else {
			r = math.Min(horizontal, vertical)
		}
	} else {
		referenceLength := math.Sqrt((ref.W*ref.W + ref.H*ref.H) / 2)
		r = sh.Radius.Coord.Resolve(referenceLength)
	}

	b.Arc(center.Div(scale), r/scale, 0, 2*math.Pi)
	b.Close()
	return b.Finish()
}

// ellipsePath resolves ellipse(). The horizontal radius resolves against
// the box width and the vertical radius against the box height, with no
// combination step.
func (in *Instance) ellipsePath(dt DrawTarget, sh Ellipse, ref Rect, scale float64) Path {
	b := dt.NewPathBuilder(FillRuleNonZero)

	center := sh.Position.Anchor(ref)

	var rx, ry float64
	if sh.RadiusX.Keyword != KeywordNone {
		rx = sh.RadiusX.Keyword.Resolve(center.X, ref.X, ref.XMost())
	} else {
		rx = sh.RadiusX.Coord.Resolve(ref.W)
	}
	if sh.RadiusY.Keyword != KeywordNone {
		ry = sh.RadiusY.Keyword.Resolve(center.Y, ref.Y, ref.YMost())
	} else {
		ry = sh.RadiusY.Coord.Resolve(ref.H)
	}

	AppendEllipse(b, center.Div(scale), rx/scale, ry/scale)
	b.Close()
	return b.Finish()
}

// polygonPath resolves polygon(), preserving authored vertex order.
func (in *Instance) polygonPath(dt DrawTarget, sh Polygon, ref Rect, scale float64) Path {
	if len(sh.Vertices) == 0 {
		panic("clippath: polygon source with no vertices")
	}

	b := dt.NewPathBuilder(sh.Fill)

	for i, v := range sh.Vertices {
		pt := Point{
			X: ref.X + v.X.Resolve(ref.W),
			Y: ref.Y + v.Y.Resolve(ref.H),
		}.Div(scale)
		if i == 0 {
			b.MoveTo(pt)
		} else {
			b.LineTo(pt)
		}
	}
	b.Close()
	return b.Finish()
}

// insetPath resolves inset(). Extents are not clamped; a fully inset box
// produces a degenerate rectangle and an empty visual region.
func (in *Instance) insetPath(dt DrawTarget, sh Inset, ref Rect, scale float64) Path {
	b := dt.NewPathBuilder(FillRuleNonZero)

	top := sh.Top.Resolve(ref.H)
	right := sh.Right.Resolve(ref.W)
	bottom := sh.Bottom.Resolve(ref.H)
	left := sh.Left.Resolve(ref.W)

	rect := Rect{
		X: ref.X + left,
		Y: ref.Y + top,
		W: ref.W - left - right,
		H: ref.H - top - bottom,
	}.Div(scale)

	if sh.Radii.HasNonZero() {
		var corners [4]Size
		for i, c := range sh.Radii {
			corners[i] = Size{
				W: c.X.Resolve(ref.W),
				H: c.Y.Resolve(ref.H),
			}.Div(scale)
		}
		appendRoundedRect(b, rect, corners)
	} else {
		appendRect(b, rect)
	}
	return b.Finish()
}

// appendRect appends a closed rectangle, clockwise from the top-left in
// y-down coordinates.
func appendRect(b PathBuilder, r Rect) {
	b.MoveTo(Point{X: r.X, Y: r.Y})
	b.LineTo(Point{X: r.XMost(), Y: r.Y})
	b.LineTo(Point{X: r.XMost(), Y: r.YMost()})
	b.LineTo(Point{X: r.X, Y: r.YMost()})
	b.Close()
}

// appendRoundedRect appends a closed rectangle with per-corner elliptical
// radii, walking the corners clockwise from the top-left. Zero-radius
// corners emit no curve.
func appendRoundedRect(b PathBuilder, r Rect, corners [4]Size) {
	tl := corners[CornerTopLeft]
	tr := corners[CornerTopRight]
	br := corners[CornerBottomRight]
	bl := corners[CornerBottomLeft]

	x0, y0 := r.X, r.Y
	x1, y1 := r.XMost(), r.YMost()

	b.MoveTo(Point{X: x0 + tl.W, Y: y0})

	b.LineTo(Point{X: x1 - tr.W, Y: y0})
	if !tr.IsZero() {
		b.CubicTo(
			Point{X: x1 - tr.W + kappa*tr.W, Y: y0},
			Point{X: x1, Y: y0 + tr.H - kappa*tr.H},
			Point{X: x1, Y: y0 + tr.H})
	}

	b.LineTo(Point{X: x1, Y: y1 - br.H})
	if !br.IsZero() {
		b.CubicTo(
			Point{X: x1, Y: y1 - br.H + kappa*br.H},
			Point{X: x1 - br.W + kappa*br.W, Y: y1},
			Point{X: x1 - br.W, Y: y1})
	}

	b.LineTo(Point{X: x0 + bl.W, Y: y1})
	if !bl.IsZero() {
		b.CubicTo(
			Point{X: x0 + bl.W - kappa*bl.W, Y: y1},
			Point{X: x0, Y: y1 - bl.H + kappa*bl.H},
			Point{X: x0, Y: y1 - bl.H})
	}

	b.LineTo(Point{X: x0, Y: y0 + tl.H})
	if !tl.IsZero() {
		b.CubicTo(
			Point{X: x0, Y: y0 + tl.H - kappa*tl.H},
			Point{X: x0 + tl.W - kappa*tl.W, Y: y0},
			Point{X: x0 + tl.W, Y: y0})
	}

	b.Close()
}
