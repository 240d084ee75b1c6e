package text

// Alignment controls horizontal placement of laid-out text relative to its
// anchor point.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment controls vertical placement of laid-out text relative
// to its anchor point.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// LaidGlyph is one glyph positioned by LayoutString. X, Y is the pen
// position the glyph starts at, relative to the layout origin.
type LaidGlyph struct {
	ID   GlyphID
	Rune rune
	X, Y float64
}

// Layout is the result of laying out a string: positioned glyphs plus the
// total extent of the text block.
type Layout struct {
	Glyphs []LaidGlyph

	// Width is the pen's final horizontal position.
	Width float64

	// Height is the total vertical extent, including the last line.
	Height float64

	// LineHeight is the baseline-to-baseline distance used for newlines.
	LineHeight float64
}

// LayoutString walks content one rune at a time, left to right, starting
// with the pen at the origin.
//
// A newline resets the pen to the start of the next line (horizontal 0,
// vertical advanced by the face's line height) and emits no glyph. Every
// other rune maps to a glyph - runes without a mapping fall back to the
// notdef glyph rather than failing, since most text workloads must tolerate
// unmappable characters - takes the current pen position, and advances the
// pen by its advance width.
//
// Alignment depends on the total extent, which is only known after the walk
// completes; use AlignOffset on the result to compute the corrective
// translation for a two-pass aligned placement.
func LayoutString(face Face, content string) Layout {
	metrics := face.Metrics()
	lineHeight := metrics.LineHeight()

	var penX, penY float64
	glyphs := make([]LaidGlyph, 0, len(content))

	for _, r := range content {
		if r == '\n' {
			penX = 0
			penY += lineHeight
			continue
		}
		gid, advance := face.Glyph(r)
		glyphs = append(glyphs, LaidGlyph{ID: gid, Rune: r, X: penX, Y: penY})
		penX += advance
	}

	return Layout{
		Glyphs:     glyphs,
		Width:      penX,
		Height:     penY + lineHeight,
		LineHeight: lineHeight,
	}
}

// AlignOffset returns the corrective translation that realizes the given
// alignment: it is applied on top of the text's transform after layout, once
// the full extent is known.
func (l Layout) AlignOffset(align Alignment, valign VerticalAlignment) (dx, dy float64) {
	switch align {
	case AlignCenter:
		dx = -l.Width / 2
	case AlignRight:
		dx = -l.Width
	}

	switch valign {
	case AlignMiddle:
		dy = l.Height / 2
	case AlignBottom:
		dy = l.Height
	}

	return dx, dy
}
