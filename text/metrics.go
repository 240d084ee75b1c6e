package text

// Metrics holds font metrics at a specific face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font. Stored as a positive distance below the baseline, unlike
	// FontMetrics.Descent.
	Descent float64

	// LineGap is the recommended extra gap between lines (leading).
	LineGap float64
}

// LineHeight returns the baseline-to-baseline distance between consecutive
// lines (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
