package scenic

const unknownStr = "Unknown"

// FillRule selects the winding rule for fills.
type FillRule int

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillRule = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// Style selects how a shape is rendered: filled or stroked.
//
// This is a sealed interface - only Fill and Stroke implement it.
type Style interface {
	styleMarker()
}

// Fill renders the interior of a shape under a winding rule.
type Fill struct {
	Rule FillRule
}

func (Fill) styleMarker() {}

// Stroke renders the outline of a shape.
type Stroke struct {
	Style *StrokeStyle
}

func (Stroke) styleMarker() {}

// Join represents the shape drawn at the corners of a stroked path.
type Join int

const (
	JoinBevel Join = iota
	JoinMiter
	JoinRound
)

// Cap represents the shape drawn at the ends of a stroked path.
type Cap int

const (
	CapButt Cap = iota
	CapSquare
	CapRound
)

// StrokeStyle contains stroke parameters.
type StrokeStyle struct {
	Width      float64
	Join       Join
	MiterLimit float64
	StartCap   Cap
	EndCap     Cap

	// Dashes is an ordered sequence of dash groups, each four lengths of
	// alternating on/off segments. Empty means a solid stroke.
	Dashes [][4]float64

	// DashOffset is the distance into the dash pattern at which the
	// stroke starts.
	DashOffset float64
}

// DefaultStrokeStyle returns default stroke parameters: a solid 1-unit
// miter-joined, butt-capped stroke.
func DefaultStrokeStyle() *StrokeStyle {
	return &StrokeStyle{
		Width:      1.0,
		Join:       JoinMiter,
		MiterLimit: 10.0,
		StartCap:   CapButt,
		EndCap:     CapButt,
	}
}

// MixMode specifies how a layer's colors mix with the content below it.
type MixMode int

const (
	MixNormal MixMode = iota
	MixClip
	MixMultiply
)

// String returns a human-readable name for the mix mode.
func (m MixMode) String() string {
	switch m {
	case MixNormal:
		return "Normal"
	case MixClip:
		return "Clip"
	case MixMultiply:
		return "Multiply"
	default:
		return unknownStr
	}
}

// CompositeMode specifies the Porter-Duff compositing operator applied when
// a layer is merged with the content below it.
type CompositeMode int

const (
	CompositeSourceOver CompositeMode = iota
	CompositeDestinationOver
	CompositeSourceIn
	CompositeDestinationIn
	CompositeSourceOut
	CompositeDestinationOut
	CompositeSourceAtop
	CompositeDestinationAtop
	CompositeLighter
	CompositeCopy
	CompositeXor
)

// String returns a human-readable name for the composite mode.
func (m CompositeMode) String() string {
	switch m {
	case CompositeSourceOver:
		return "SourceOver"
	case CompositeDestinationOver:
		return "DestinationOver"
	case CompositeSourceIn:
		return "SourceIn"
	case CompositeDestinationIn:
		return "DestinationIn"
	case CompositeSourceOut:
		return "SourceOut"
	case CompositeDestinationOut:
		return "DestinationOut"
	case CompositeSourceAtop:
		return "SourceAtop"
	case CompositeDestinationAtop:
		return "DestinationAtop"
	case CompositeLighter:
		return "Lighter"
	case CompositeCopy:
		return "Copy"
	case CompositeXor:
		return "Xor"
	default:
		return unknownStr
	}
}

// ImageFit is the policy for mapping an image's native pixel extent onto a
// target geometric region.
//
// This is a sealed interface - only types in this package implement it.
type ImageFit interface {
	imageFitMarker()
}

// FitOriginal keeps the image at its natural pixel size (brush space equals
// image pixel space 1:1).
type FitOriginal struct{}

func (FitOriginal) imageFitMarker() {}

// FitFill stretches the image to fill the target region exactly.
type FitFill struct{}

func (FitFill) imageFitMarker() {}

// FitExact scales the image to the given size regardless of the target
// region's dimensions.
type FitExact struct {
	Width, Height float64
}

func (FitExact) imageFitMarker() {}
