package clippath

// kappa is the control-point offset factor for approximating a quarter
// circle with one cubic Bezier: 4/3 * (sqrt(2) - 1). Four such curves
// minimize the maximum radial deviation of a full ellipse.
const kappa = 0.5522847498307936

// AppendEllipse appends a closed four-curve cubic Bezier approximation of
// an ellipse to the builder, one curve per quadrant, starting at the
// rightmost point. Coordinates are in whatever unit the builder expects.
// A circle is the rx == ry case.
func AppendEllipse(b PathBuilder, center Point, rx, ry float64) {
	cx, cy := center.X, center.Y
	ox := rx * kappa
	oy := ry * kappa

	b.MoveTo(Point{X: cx + rx, Y: cy})
	b.CubicTo(Point{X: cx + rx, Y: cy + oy}, Point{X: cx + ox, Y: cy + ry}, Point{X: cx, Y: cy + ry})
	b.CubicTo(Point{X: cx - ox, Y: cy + ry}, Point{X: cx - rx, Y: cy + oy}, Point{X: cx - rx, Y: cy})
	b.CubicTo(Point{X: cx - rx, Y: cy - oy}, Point{X: cx - ox, Y: cy - ry}, Point{X: cx, Y: cy - ry})
	b.CubicTo(Point{X: cx + ox, Y: cy - ry}, Point{X: cx + rx, Y: cy - oy}, Point{X: cx + rx, Y: cy})
}
