package text

import "testing"

// stubFont gives every supported rune a fixed advance so layout positions
// are exact. Ascent 8 + descent 2 + no gap = line height 10.
type stubFont struct{}

func (stubFont) Name() string    { return "Stub" }
func (stubFont) UnitsPerEm() int { return 1000 }

func (stubFont) GlyphIndex(r rune) uint16 {
	switch r {
	case 'A':
		return 1
	case 'B':
		return 2
	case 'C':
		return 3
	}
	return 0
}

func (stubFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	switch glyphIndex {
	case 1:
		return 10
	case 2:
		return 12
	case 3:
		return 7
	}
	return 5
}

func (stubFont) Metrics(size float64) FontMetrics {
	return FontMetrics{Ascent: 8, Descent: -2, LineGap: 0}
}

type stubParser struct{}

func (stubParser) Parse(data []byte, variations []Variation) (ParsedFont, error) {
	return stubFont{}, nil
}

func stubFace(t *testing.T, size float64) Face {
	t.Helper()
	RegisterParser("stub", stubParser{})
	source, err := NewFontSource([]byte{0x01}, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	return source.Face(size)
}

func TestLayoutStringPenWalk(t *testing.T) {
	layout := LayoutString(stubFace(t, 16), "ABC")

	want := []LaidGlyph{
		{ID: 1, Rune: 'A', X: 0, Y: 0},
		{ID: 2, Rune: 'B', X: 10, Y: 0},
		{ID: 3, Rune: 'C', X: 22, Y: 0},
	}
	if len(layout.Glyphs) != len(want) {
		t.Fatalf("laid out %d glyphs, want %d", len(layout.Glyphs), len(want))
	}
	for i, g := range want {
		if layout.Glyphs[i] != g {
			t.Errorf("glyph %d = %+v, want %+v", i, layout.Glyphs[i], g)
		}
	}

	if layout.Width != 29 {
		t.Errorf("Width = %v, want 29", layout.Width)
	}
	if layout.Height != 10 {
		t.Errorf("Height = %v, want 10", layout.Height)
	}
	if layout.LineHeight != 10 {
		t.Errorf("LineHeight = %v, want 10", layout.LineHeight)
	}
}

func TestLayoutStringNewline(t *testing.T) {
	layout := LayoutString(stubFace(t, 16), "AB\nC")

	if len(layout.Glyphs) != 3 {
		t.Fatalf("laid out %d glyphs, want 3 (newline emits none)", len(layout.Glyphs))
	}
	// The pen resets to the line start and drops one line height.
	if g := layout.Glyphs[2]; g.X != 0 || g.Y != 10 {
		t.Errorf("glyph after newline at (%v, %v), want (0, 10)", g.X, g.Y)
	}
	if layout.Height != 20 {
		t.Errorf("Height = %v, want 20 for two lines", layout.Height)
	}
}

func TestLayoutStringEmpty(t *testing.T) {
	layout := LayoutString(stubFace(t, 16), "")

	if len(layout.Glyphs) != 0 || layout.Width != 0 {
		t.Errorf("empty layout = %d glyphs, width %v", len(layout.Glyphs), layout.Width)
	}
	// An empty block still occupies one line.
	if layout.Height != 10 {
		t.Errorf("Height = %v, want 10", layout.Height)
	}
}

func TestLayoutStringUnmappedRune(t *testing.T) {
	layout := LayoutString(stubFace(t, 16), "A?")

	if layout.Glyphs[1].ID != 0 {
		t.Errorf("unmapped rune glyph = %d, want notdef (0)", layout.Glyphs[1].ID)
	}
	if layout.Width != 15 {
		t.Errorf("Width = %v, want 15 (notdef advances the pen)", layout.Width)
	}
}

func TestAlignOffset(t *testing.T) {
	layout := Layout{Width: 22, Height: 10}

	tests := []struct {
		name   string
		align  Alignment
		valign VerticalAlignment
		dx, dy float64
	}{
		{"left top", AlignLeft, AlignTop, 0, 0},
		{"center", AlignCenter, AlignTop, -11, 0},
		{"right", AlignRight, AlignTop, -22, 0},
		{"middle", AlignLeft, AlignMiddle, 0, 5},
		{"bottom", AlignLeft, AlignBottom, 0, 10},
		{"center middle", AlignCenter, AlignMiddle, -11, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := layout.AlignOffset(tt.align, tt.valign)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("AlignOffset() = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestMetricsLineHeight(t *testing.T) {
	m := Metrics{Ascent: 12, Descent: 3, LineGap: 1}
	if got := m.LineHeight(); got != 16 {
		t.Errorf("LineHeight() = %v, want 16", got)
	}
}

func TestFontMetricsHeight(t *testing.T) {
	m := FontMetrics{Ascent: 12, Descent: -3, LineGap: 1}
	if got := m.Height(); got != 16 {
		t.Errorf("Height() = %v, want 16", got)
	}
}
