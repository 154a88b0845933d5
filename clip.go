package clippath

// ApplyClip resolves the clip-path source against the target box and
// installs the resulting path as the active clip region on the context.
//
// URL-referenced clip paths are not handled here and return without
// clipping.
func ApplyClip(cc ClipContext, provider BoxProvider, src Source) {
	if src.Kind == SourceURL {
		return
	}

	path := New(provider, src).CreateClipPath(cc.DrawTarget())
	cc.Clip(path)
}

// HitTestOption configures HitTestClip.
// Use functional options to customize hit-test behavior.
type HitTestOption func(*hitTestOptions)

type hitTestOptions struct {
	target DrawTarget
}

// WithDrawTarget makes the hit test build its path on a custom draw
// target instead of the shared screen-reference target. Use this for
// dependency injection of a host graphics backend whose containment
// semantics should decide the test.
func WithDrawTarget(dt DrawTarget) HitTestOption {
	return func(o *hitTestOptions) {
		o.target = dt
	}
}

// HitTestClip reports whether a point lies inside the clip-path shape.
// The point is in CSS pixels relative to the target origin; it is scaled
// into the target's device pixel space before the containment test.
//
// URL-referenced clip paths always report false.
func HitTestClip(provider BoxProvider, src Source, pt Point, opts ...HitTestOption) bool {
	if src.Kind == SourceURL {
		return false
	}

	o := hitTestOptions{target: ScreenReferenceTarget()}
	for _, opt := range opts {
		opt(&o)
	}

	path := New(provider, src).CreateClipPath(o.target)
	pixelRatio := provider.UnitsPerCSSPixel() / provider.UnitsPerDevPixel()
	return path.Contains(pt.Mul(pixelRatio))
}
