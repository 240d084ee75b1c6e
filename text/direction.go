package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base direction of a paragraph of text.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// BaseDirection resolves the base direction of a paragraph using the
// Unicode bidirectional algorithm: the direction of the first strong run
// decides. Neutral-only text is LTR.
//
// Callers use this to pick a default alignment for text whose direction is
// not known up front.
func BaseDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}

	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// DefaultAlignment returns the natural alignment for the direction:
// left for LTR, right for RTL.
func (d Direction) DefaultAlignment() Alignment {
	if d == DirectionRTL {
		return AlignRight
	}
	return AlignLeft
}
