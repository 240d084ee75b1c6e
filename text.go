package scenic

import "github.com/gogpu/scenic/text"

// Text is a drawable run of formatted text anchored at (X, Y) in scene
// space.
//
// Layout is two-pass: the glyphs are first laid out with the pen at the
// origin, then the whole run is shifted by a correction computed from the
// final extent and the alignment. The correction is a pre-translate on top
// of the composed global and local transforms.
type Text struct {
	// X, Y anchor the text in local space.
	X, Y float64

	// Content is the text to lay out. Newlines break lines.
	Content string

	// Size is the font size in points.
	Size float64

	// Color fills the glyphs.
	Color RGBA

	// Font is the shared font resource.
	Font *text.FontSource

	// Align and VAlign place the laid-out block relative to the anchor.
	Align  text.Alignment
	VAlign text.VerticalAlignment

	// Transform maps local space into scene space; the scene's global
	// transform is applied on top at draw time.
	Transform Affine

	// GlyphTransform is an optional per-glyph transform (e.g. a skew for
	// synthetic italics), passed through to the backend.
	GlyphTransform *Affine
}

// NewText creates a left-anchored text drawable with the natural alignment
// for its content: left-aligned for LTR text, right-aligned for RTL.
func NewText(content string, x, y, size float64, color RGBA, font *text.FontSource) *Text {
	return &Text{
		X:         x,
		Y:         y,
		Content:   content,
		Size:      size,
		Color:     color,
		Font:      font,
		Align:     text.BaseDirection(content).DefaultAlignment(),
		Transform: Identity(),
	}
}

// Draw lays the text out and emits one glyph run, implementing Drawable.
//
// Draw panics if Font is nil: a frame with a broken font has no sensible
// partial-rendering fallback. Runes the font cannot map are not errors;
// they lay out as the notdef glyph.
func (t *Text) Draw(s *Scene) {
	if t.Font == nil {
		panic("scenic: Text has no font")
	}

	face := t.Font.Face(t.Size)
	layout := text.LayoutString(face, t.Content)

	dx, dy := layout.AlignOffset(t.Align, t.VAlign)
	transform := s.Transform().
		Mul(t.Transform).
		PreTranslate(t.X+dx, t.Y+dy)

	glyphs := make([]Glyph, len(layout.Glyphs))
	for i, g := range layout.Glyphs {
		glyphs[i] = Glyph{ID: uint32(g.ID), X: g.X, Y: g.Y}
	}

	s.backend.GlyphRun(GlyphRun{
		Font:           t.Font,
		Size:           t.Size,
		Transform:      transform,
		GlyphTransform: t.GlyphTransform,
		Color:          t.Color,
		Glyphs:         glyphs,
	})
}
