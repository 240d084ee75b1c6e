package text

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application;
// it is immutable after creation and safe for concurrent use.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	parsed ParsedFont
	name   string
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// Malformed font data is reported here, not at draw time.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data, config.variations)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		parsed: parsed,
		name:   parsed.Name(),
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in points).
// Multiple faces can be created from the same FontSource; a Face is a
// lightweight view and shares the parsed font.
//
// Panics if s is nil (e.g. when the NewFontSource error was ignored).
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("text: FontSource is nil - did you check the error from NewFontSource?")
	}
	s.copyCheck()

	return &sourceFace{
		source: s,
		size:   size,
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the underlying parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// copyCheck panics if the FontSource was copied by value after creation.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied after creation")
	}
}

// sourceConfig holds FontSource configuration.
type sourceConfig struct {
	parserName string
	variations []Variation
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// SourceOption configures a FontSource during creation.
type SourceOption func(*sourceConfig)

// WithParser selects the font parser backend by registry name
// ("ximage" or "gotext" by default).
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithVariations sets variable-font axis values, passed through opaquely to
// the parser backend. Parsers for static font formats ignore them.
func WithVariations(variations ...Variation) SourceOption {
	return func(c *sourceConfig) {
		c.variations = variations
	}
}
