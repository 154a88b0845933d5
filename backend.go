package clippath

import "honnef.co/go/curve"

// DrawTarget abstracts the graphics backend that owns path construction.
// The default software target (see ScreenReferenceTarget) is sufficient
// for hit testing; rendering hosts inject their own.
type DrawTarget interface {
	// NewPathBuilder starts an empty path with the given fill rule.
	NewPathBuilder(rule FillRule) PathBuilder
}

// PathBuilder accumulates path operations in device pixels. It is
// append-only: operations are recorded in call order and frozen by Finish.
// A builder must not be used after Finish returns.
type PathBuilder interface {
	// MoveTo starts a new subpath at p.
	MoveTo(p Point)
	// LineTo draws a line from the current point to p.
	LineTo(p Point)
	// CubicTo draws a cubic Bezier curve to p with control points c1, c2.
	CubicTo(c1, c2, p Point)
	// Arc draws a circular arc around center from startAngle to endAngle,
	// in radians. If the path is empty the arc starts a subpath, otherwise
	// a line connects the current point to the arc's start.
	Arc(center Point, radius, startAngle, endAngle float64)
	// Close closes the current subpath.
	Close()
	// Finish freezes the accumulated operations into an immutable Path.
	Finish() Path
}

// Path is a frozen sequence of path operations with a fill rule, in
// device pixels. The caller owns the returned Path and discards it after
// use; paths are never cached across evaluations.
type Path interface {
	// FillRule returns the path's fill rule.
	FillRule() FillRule
	// Elements returns the recorded operations. The slice must not be
	// mutated.
	Elements() []curve.PathElement
	// Contains reports whether the point, in device pixels, lies inside
	// the path under its fill rule. Behavior for points exactly on the
	// path edge is backend-defined.
	Contains(p Point) bool
}

// ClipContext is the mutable drawing surface ApplyClip installs a clip
// region on. It is the only side-effecting collaborator of this package.
type ClipContext interface {
	// DrawTarget returns the target used to build the clip path.
	DrawTarget() DrawTarget
	// Clip intersects the active clip region with the path.
	Clip(path Path)
}
