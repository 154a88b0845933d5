package clippath

// BoxProvider supplies the rectangles and unit scales of the clip target.
// Rectangles are relative to the target itself, in logical units. The
// provider is a read-only collaborator; this package never mutates it.
//
// UnitsPerDevPixel is the number of logical units per device pixel and
// UnitsPerCSSPixel the number of logical units per CSS pixel. Hosts whose
// logical unit is the CSS pixel return 1 from both.
type BoxProvider interface {
	ContentRect() Rect
	PaddingRect() Rect
	BorderRect() Rect
	MarginRect() Rect
	UnitsPerDevPixel() float64
	UnitsPerCSSPixel() float64
}

// BoxMetrics is the stock BoxProvider: a plain snapshot of the target's
// rectangles and scales.
type BoxMetrics struct {
	Content     Rect
	Padding     Rect
	Border      Rect
	Margin      Rect
	UnitsPerDev float64
	UnitsPerCSS float64
}

func (m BoxMetrics) ContentRect() Rect { return m.Content }

func (m BoxMetrics) PaddingRect() Rect { return m.Padding }

func (m BoxMetrics) BorderRect() Rect { return m.Border }

func (m BoxMetrics) MarginRect() Rect { return m.Margin }

func (m BoxMetrics) UnitsPerDevPixel() float64 { return m.UnitsPerDev }

func (m BoxMetrics) UnitsPerCSSPixel() float64 { return m.UnitsPerCSS }

// referenceRect maps a geometry box to the matching rectangle of the
// provider. Unrecognized values fall back to the border box.
func referenceRect(provider BoxProvider, box ReferenceBox) Rect {
	switch box {
	case ContentBox:
		return provider.ContentRect()
	case PaddingBox:
		return provider.PaddingRect()
	case MarginBox:
		return provider.MarginRect()
	default:
		return provider.BorderRect()
	}
}
