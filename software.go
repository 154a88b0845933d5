package clippath

import (
	"math"

	"honnef.co/go/curve"
)

// SoftwareTarget is a DrawTarget that records paths as Bezier element
// sequences and tests containment by winding number. It needs no GPU or
// rasterizer and is the reference target for hit testing.
type SoftwareTarget struct{}

// NewSoftwareTarget creates a software draw target.
func NewSoftwareTarget() *SoftwareTarget {
	return &SoftwareTarget{}
}

// NewPathBuilder starts an empty path with the given fill rule.
func (*SoftwareTarget) NewPathBuilder(rule FillRule) PathBuilder {
	return &softwareBuilder{rule: rule}
}

// screenReference is stateless, so a single shared instance serves all
// hit tests.
var screenReference = NewSoftwareTarget()

// ScreenReferenceTarget returns the shared neutral draw target used when
// a path is needed without a live drawing context, e.g. for hit testing.
func ScreenReferenceTarget() DrawTarget {
	return screenReference
}

type softwareBuilder struct {
	path curve.BezPath
	rule FillRule
}

func toCurvePoint(p Point) curve.Point {
	return curve.Point{X: p.X, Y: p.Y}
}

func (b *softwareBuilder) MoveTo(p Point) {
	b.path.MoveTo(toCurvePoint(p))
}

func (b *softwareBuilder) LineTo(p Point) {
	b.path.LineTo(toCurvePoint(p))
}

func (b *softwareBuilder) CubicTo(c1, c2, p Point) {
	b.path.CubicTo(toCurvePoint(c1), toCurvePoint(c2), toCurvePoint(p))
}

// Arc approximates the arc with cubic Bezier segments of at most 90
// degrees each.
func (b *softwareBuilder) Arc(center Point, radius, startAngle, endAngle float64) {
	const twoPi = 2 * math.Pi
	for endAngle < startAngle {
		endAngle += twoPi
	}

	start := Point{
		X: center.X + radius*math.Cos(startAngle),
		Y: center.Y + radius*math.Sin(startAngle),
	}
	if len(b.path) == 0 {
		b.MoveTo(start)
	} else {
		b.LineTo(start)
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((endAngle - startAngle) / maxAngle))
	if numSegments == 0 {
		numSegments = 1
	}
	angleStep := (endAngle - startAngle) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := startAngle + float64(i)*angleStep
		b.arcSegment(center, radius, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees. The
// current point must already be at the segment start.
func (b *softwareBuilder) arcSegment(center Point, r, a1, a2 float64) {
	// Control point offset for the cubic Bezier approximation of a
	// circular arc of sweep a2-a1.
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	p1 := Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
	p2 := Point{X: center.X + r*cos2, Y: center.Y + r*sin2}

	c1 := Point{X: p1.X - alpha*r*sin1, Y: p1.Y + alpha*r*cos1}
	c2 := Point{X: p2.X + alpha*r*sin2, Y: p2.Y - alpha*r*cos2}

	b.CubicTo(c1, c2, p2)
}

func (b *softwareBuilder) Close() {
	b.path.ClosePath()
}

func (b *softwareBuilder) Finish() Path {
	p := &softwarePath{path: b.path, rule: b.rule}
	b.path = nil
	return p
}

type softwarePath struct {
	path curve.BezPath
	rule FillRule
}

func (p *softwarePath) FillRule() FillRule {
	return p.rule
}

func (p *softwarePath) Elements() []curve.PathElement {
	return p.path
}

// Contains tests the point against the path's winding number: non-zero
// winding for FillRuleNonZero, winding parity for FillRuleEvenOdd.
func (p *softwarePath) Contains(pt Point) bool {
	w := p.path.Winding(toCurvePoint(pt))
	if p.rule == FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}
