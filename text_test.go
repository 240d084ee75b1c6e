package scenic

import (
	"testing"

	"github.com/gogpu/scenic/text"
)

// fakeParsedFont maps a handful of runes to fixed advances so layout math
// is exact without real font bytes.
type fakeParsedFont struct{}

func (fakeParsedFont) Name() string    { return "Fake Sans" }
func (fakeParsedFont) UnitsPerEm() int { return 1000 }

func (fakeParsedFont) GlyphIndex(r rune) uint16 {
	switch r {
	case 'A':
		return 1
	case 'B':
		return 2
	}
	return 0
}

func (fakeParsedFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	switch glyphIndex {
	case 1:
		return 10
	case 2:
		return 12
	}
	return 5
}

func (fakeParsedFont) Metrics(size float64) text.FontMetrics {
	return text.FontMetrics{Ascent: 8, Descent: -2, LineGap: 0}
}

type fakeParser struct{}

func (fakeParser) Parse(data []byte, variations []text.Variation) (text.ParsedFont, error) {
	return fakeParsedFont{}, nil
}

func fakeFont(t *testing.T) *text.FontSource {
	t.Helper()
	text.RegisterParser("fake", fakeParser{})
	font, err := text.NewFontSource([]byte{0x01}, text.WithParser("fake"))
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	return font
}

func TestNewTextDefaults(t *testing.T) {
	font := fakeFont(t)

	txt := NewText("hello", 3, 4, 16, White, font)
	if txt.Align != text.AlignLeft {
		t.Errorf("Align for LTR content = %v, want AlignLeft", txt.Align)
	}
	if !txt.Transform.IsIdentity() {
		t.Errorf("Transform = %+v, want identity", txt.Transform)
	}

	rtl := NewText("שלום", 0, 0, 16, White, font)
	if rtl.Align != text.AlignRight {
		t.Errorf("Align for RTL content = %v, want AlignRight", rtl.Align)
	}
}

func TestTextDrawEmitsGlyphRun(t *testing.T) {
	rec := NewRecorder()
	sc := NewScene(Black, 200, 100, WithBackend(rec), WithOrigin(OriginTopLeft))

	font := fakeFont(t)
	sc.Draw(&Text{
		X: 20, Y: 30,
		Content:   "AB",
		Size:      16,
		Color:     White,
		Font:      font,
		Transform: Identity(),
	})

	runs := rec.Encoding().glyphRuns
	if len(runs) != 1 {
		t.Fatalf("recorded %d glyph runs, want 1", len(runs))
	}
	run := runs[0]

	if run.Font != font || run.Size != 16 || run.Color != White {
		t.Errorf("run = font %v size %v color %+v", run.Font.Name(), run.Size, run.Color)
	}
	if len(run.Glyphs) != 2 {
		t.Fatalf("run holds %d glyphs, want 2", len(run.Glyphs))
	}
	// Glyph positions are pen-relative; the anchor lives in the run
	// transform.
	if run.Glyphs[0] != (Glyph{ID: 1, X: 0, Y: 0}) {
		t.Errorf("glyph 0 = %+v, want A at pen origin", run.Glyphs[0])
	}
	if run.Glyphs[1] != (Glyph{ID: 2, X: 10, Y: 0}) {
		t.Errorf("glyph 1 = %+v, want B at x=10", run.Glyphs[1])
	}
	if want := Translate(20, 30); run.Transform != want {
		t.Errorf("run transform = %+v, want %+v", run.Transform, want)
	}
}

// "AB" is 22 units wide under the fake font, so centering shifts the run
// left by 11.
func TestTextDrawCenterAlignment(t *testing.T) {
	rec := NewRecorder()
	sc := NewScene(Black, 200, 100, WithBackend(rec), WithOrigin(OriginTopLeft))

	sc.Draw(&Text{
		Content:   "AB",
		Size:      16,
		Color:     White,
		Font:      fakeFont(t),
		Align:     text.AlignCenter,
		Transform: Identity(),
	})

	run := rec.Encoding().glyphRuns[0]
	if want := Translate(-11, 0); run.Transform != want {
		t.Errorf("centered run transform = %+v, want %+v", run.Transform, want)
	}
}

func TestTextDrawComposesTransforms(t *testing.T) {
	rec := NewRecorder()
	sc := NewScene(Black, 200, 100, WithBackend(rec)) // centered origin

	sc.Draw(&Text{
		X: 5, Y: 7,
		Content:   "A",
		Size:      16,
		Color:     White,
		Font:      fakeFont(t),
		Transform: Scale(2, 2),
	})

	// global, then local, then the anchor pre-translate, innermost first.
	want := Translate(100, 50).Mul(Scale(2, 2)).PreTranslate(5, 7)
	if got := rec.Encoding().glyphRuns[0].Transform; got != want {
		t.Errorf("run transform = %+v, want %+v", got, want)
	}
}

func TestTextDrawUnmappedRune(t *testing.T) {
	rec := NewRecorder()
	sc := NewScene(Black, 100, 100, WithBackend(rec), WithOrigin(OriginTopLeft))

	sc.Draw(&Text{
		Content:   "A?B",
		Size:      16,
		Color:     White,
		Font:      fakeFont(t),
		Transform: Identity(),
	})

	run := rec.Encoding().glyphRuns[0]
	if len(run.Glyphs) != 3 {
		t.Fatalf("run holds %d glyphs, want 3", len(run.Glyphs))
	}
	if run.Glyphs[1].ID != 0 {
		t.Errorf("unmapped rune glyph = %d, want notdef (0)", run.Glyphs[1].ID)
	}
	// The notdef still advances the pen.
	if run.Glyphs[2].X != 15 {
		t.Errorf("glyph after notdef at x=%v, want 15", run.Glyphs[2].X)
	}
}

func TestTextDrawNilFontPanics(t *testing.T) {
	sc := NewScene(Black, 100, 100)

	defer func() {
		if recover() == nil {
			t.Error("drawing text without a font should panic")
		}
	}()
	sc.Draw(&Text{Content: "x", Size: 12, Transform: Identity()})
}
