package text

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Glyph maps a rune to its glyph id and advance width at this size.
	// A rune without a mapping yields the notdef glyph (id 0), never an
	// error; text layout must tolerate unmappable characters.
	Glyph(r rune) (GlyphID, float64)

	// Advance returns the total advance width of the text.
	Advance(text string) float64

	// HasGlyph reports whether the font maps the given rune.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in points.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	fontMetrics := f.source.Parsed().Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline);
	// Metrics.Descent is positive (absolute distance from baseline).
	descent := fontMetrics.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:  fontMetrics.Ascent,
		Descent: descent,
		LineGap: fontMetrics.LineGap,
	}
}

// Glyph implements Face.Glyph.
func (f *sourceFace) Glyph(r rune) (GlyphID, float64) {
	parsed := f.source.Parsed()
	gid := parsed.GlyphIndex(r)
	return GlyphID(gid), parsed.GlyphAdvance(gid, f.size)
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		_, advance := f.Glyph(r)
		total += advance
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

func (f *sourceFace) private() {}
