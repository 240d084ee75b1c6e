package text

import (
	"errors"
	"testing"
)

func TestNewFontSourceEmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte{}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(empty) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceMalformed(t *testing.T) {
	// Garbage bytes through the real default parser.
	if _, err := NewFontSource([]byte("definitely not a font")); err == nil {
		t.Error("NewFontSource() with garbage data succeeded, want error")
	}
}

func TestFontSourceWithParser(t *testing.T) {
	RegisterParser("stub", stubParser{})

	source, err := NewFontSource([]byte{0x01}, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	if source.Name() != "Stub" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Stub")
	}
	if source.Parsed().UnitsPerEm() != 1000 {
		t.Errorf("UnitsPerEm() = %d, want 1000", source.Parsed().UnitsPerEm())
	}
}

func TestUnknownParserFallsBack(t *testing.T) {
	// An unregistered name selects the default parser, which rejects the
	// stub bytes.
	if _, err := NewFontSource([]byte{0x01}, WithParser("no-such-parser")); err == nil {
		t.Error("expected the default parser to reject stub bytes")
	}
}

func TestFaceNilSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face() on a nil source should panic")
		}
	}()
	var s *FontSource
	s.Face(12)
}

func TestFontSourceCopyPanics(t *testing.T) {
	source, err := NewFontSource([]byte{0x01}, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("using a copied FontSource should panic")
		}
	}()
	copied := *source
	copied.Face(12)
}

func TestFaceBasics(t *testing.T) {
	face := stubFace(t, 16)

	if face.Size() != 16 {
		t.Errorf("Size() = %v, want 16", face.Size())
	}
	if face.Source() == nil {
		t.Error("Source() = nil")
	}

	gid, advance := face.Glyph('A')
	if gid != 1 || advance != 10 {
		t.Errorf("Glyph('A') = (%d, %v), want (1, 10)", gid, advance)
	}

	if !face.HasGlyph('A') || face.HasGlyph('?') {
		t.Error("HasGlyph should reflect the font's rune coverage")
	}

	if got := face.Advance("ABC"); got != 29 {
		t.Errorf("Advance(\"ABC\") = %v, want 29", got)
	}
}

// The face flips the parser's negative descent into a positive distance.
func TestFaceMetricsDescentSign(t *testing.T) {
	m := stubFace(t, 16).Metrics()
	if m.Descent != 2 {
		t.Errorf("Descent = %v, want positive 2", m.Descent)
	}
	if m.LineHeight() != 10 {
		t.Errorf("LineHeight() = %v, want 10", m.LineHeight())
	}
}

func TestNewFontSourceFromFileMissing(t *testing.T) {
	if _, err := NewFontSourceFromFile("testdata/does-not-exist.ttf"); err == nil {
		t.Error("NewFontSourceFromFile() with missing file succeeded, want error")
	}
}
