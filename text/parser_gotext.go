package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Unlike the ximage backend it understands variable fonts, so variation
// settings are applied to the parsed face.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte, variations []Variation) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	if len(variations) > 0 {
		face.SetVariations(mapVariations(variations))
	}

	return &gotextParsedFont{face: face}, nil
}

// mapVariations converts axis settings to go-text variations.
func mapVariations(variations []Variation) []font.Variation {
	out := make([]font.Variation, 0, len(variations))
	for _, v := range variations {
		out = append(out, font.Variation{
			Tag:   axisTag(v.Tag),
			Value: float32(v.Value),
		})
	}
	return out
}

// axisTag packs an axis name like "wght" into an OpenType tag,
// space-padding short names.
func axisTag(s string) ot.Tag {
	var b [4]byte
	for i := range b {
		if i < len(s) {
			b[i] = s[i]
		} else {
			b[i] = ' '
		}
	}
	return ot.NewTag(b[0], b[1], b[2], b[3])
}

// gotextParsedFont implements ParsedFont using a go-text face.
//
// font.Face is not safe for concurrent use (it caches glyph lookups), so
// all access goes through a mutex.
type gotextParsedFont struct {
	mu   sync.Mutex
	face *font.Face
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
// go-text reports advances in font units; they are scaled to the size here.
func (f *gotextParsedFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	advance := float64(f.face.HorizontalAdvance(font.GID(glyphIndex)))
	return advance * size / float64(f.face.Upem())
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(size float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	extents, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}

	scale := size / float64(f.face.Upem())
	return FontMetrics{
		Ascent:  float64(extents.Ascender) * scale,
		Descent: float64(extents.Descender) * scale,
		LineGap: float64(extents.LineGap) * scale,
	}
}
