// Package text provides font loading and glyph-advance text layout for
// scenic.
//
// The package computes layout only: glyph ids, pen positions, and line
// extents. Outline extraction, hinting and rasterization belong to the
// rendering backend.
//
// A FontSource is a parsed font file, heavyweight and shared; a Face is a
// FontSource at a size. Font parsing is pluggable through the FontParser
// registry: the default "ximage" backend uses golang.org/x/image/font,
// and the "gotext" backend uses github.com/go-text/typesetting, which also
// understands variable-font axes.
package text
