// Package clippath resolves CSS basic-shape clip-path descriptors into
// concrete vector paths.
//
// # Overview
//
// clippath is a pure Go geometry-resolution engine. It takes a declarative
// shape description (circle, ellipse, polygon, or inset rectangle, authored
// in lengths, percentages, and keyword radii relative to a reference box) and
// produces a device-pixel path suitable for clipping and hit testing.
//
// # Quick Start
//
//	import "github.com/gogpu/clippath"
//
//	metrics := clippath.BoxMetrics{
//	    Border:      clippath.Rect{W: 200, H: 100},
//	    UnitsPerDev: 1,
//	    UnitsPerCSS: 1,
//	}
//
//	src := clippath.Source{
//	    Kind:  clippath.SourceShape,
//	    Shape: clippath.Circle{Radius: clippath.CoordRadius(clippath.Pct(50))},
//	}
//
//	inst := clippath.New(metrics, src)
//	path := inst.CreateClipPath(clippath.ScreenReferenceTarget())
//	inside := path.Contains(clippath.Pt(100, 50))
//
// # Architecture
//
// The library is organized into:
//   - Shape model: Source and the Shape variants (Circle, Ellipse, Polygon, Inset)
//   - Resolution: Coord, Radius, and Position values against a reference box
//   - Generation: Instance drives box selection, pixel snapping, and dispatch
//   - Backend: DrawTarget/PathBuilder/Path interfaces with a software
//     implementation built on honnef.co/go/curve
//
// All geometry is computed in the target's logical unit and converted to
// device pixels only when path operations are emitted. The core holds no
// persistent state; every evaluation is an independent pure computation.
package clippath
