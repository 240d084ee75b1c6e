package scenic

import "github.com/gogpu/scenic/text"

// Drawable is the single-method capability implemented by everything that
// can lower itself into a scene: it receives the scene, composes its local
// transform with the scene's global transform, resolves its brush, and emits
// backend commands. New primitive kinds are added by implementing Drawable,
// not by extending the scene.
type Drawable interface {
	Draw(s *Scene)
}

// Glyph is one positioned glyph within a glyph run. Positions are in text
// space, relative to the run's transform.
type Glyph struct {
	// ID is the glyph id in the run's font.
	ID uint32

	// X, Y is the pen position of the glyph.
	X, Y float64
}

// GlyphRun is a resolved run of positioned glyphs in a single font and size,
// ready for a backend to rasterize. Outline extraction and hinting are the
// backend's job; scenic only computes layout.
type GlyphRun struct {
	// Font is the shared font resource the glyph ids refer to.
	Font *text.FontSource

	// Size is the font size in points.
	Size float64

	// Transform positions the whole run (global, local, and alignment
	// correction already composed).
	Transform Affine

	// GlyphTransform is an optional extra transform applied to each glyph
	// around its own pen position.
	GlyphTransform *Affine

	// Color fills the glyphs.
	Color RGBA

	// Glyphs are the positioned glyphs, in text order.
	Glyphs []Glyph
}

// Backend consumes the resolved command stream a scene produces. A backend
// must support arbitrary nesting of layer brackets and is free to lower the
// commands however it likes; the Recorder backend records them for replay.
//
// All transforms arriving at a backend already include the scene's global
// transform. Brush transforms arrive separately and may be nil.
type Backend interface {
	// Fill renders the interior of shape under the winding rule.
	Fill(rule FillRule, transform Affine, brush Brush, brushTransform *Affine, shape Shape)

	// Stroke renders the outline of shape.
	Stroke(style *StrokeStyle, transform Affine, brush Brush, brushTransform *Affine, shape Shape)

	// PushLayer opens a compositing bracket. Content drawn until the
	// matching PopLayer is composited with the given mix and composite
	// modes at the given alpha, clipped to clip under clipTransform.
	PushLayer(mix MixMode, composite CompositeMode, alpha float64, clipTransform Affine, clip Shape)

	// PopLayer closes the most recently opened bracket.
	PopLayer()

	// GlyphRun renders a run of positioned glyphs.
	GlyphRun(run GlyphRun)

	// Append splices a previously recorded command stream into this
	// backend, with transform composed onto every command. This is how
	// pre-rendered sub-scenes are embedded.
	Append(enc *Encoding, transform Affine)
}
