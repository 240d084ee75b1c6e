package scenic

// ExtendMode defines how gradients and textures extend beyond their defined
// bounds.
type ExtendMode int

const (
	// ExtendPad extends by repeating the edge color (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the pattern.
	ExtendRepeat
	// ExtendReflect mirrors the pattern.
	ExtendReflect
)

// String returns a human-readable name for the extend mode.
func (m ExtendMode) String() string {
	switch m {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return unknownStr
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// GradientKind describes the geometry of a gradient.
//
// This is a sealed interface - only types in this package implement it.
type GradientKind interface {
	gradientKindMarker()
}

// LinearGradient transitions between two or more colors along a line.
type LinearGradient struct {
	Start Point // Starting point.
	End   Point // Ending point.
}

func (LinearGradient) gradientKindMarker() {}

// RadialGradient transitions between two or more colors that radiate from an
// origin, interpolating between a start and an end circle.
type RadialGradient struct {
	StartCenter Point   // Center of the start circle.
	StartRadius float64 // Radius of the start circle.
	EndCenter   Point   // Center of the end circle.
	EndRadius   float64 // Radius of the end circle.
}

func (RadialGradient) gradientKindMarker() {}

// SweepGradient transitions between two or more colors that rotate around a
// center point. Angles are counter-clockwise of the x-axis.
type SweepGradient struct {
	Center     Point
	StartAngle float64
	EndAngle   float64
}

func (SweepGradient) gradientKindMarker() {}

// Gradient describes a multi-stop gradient fill.
//
// Stops are used as given: they are not re-sorted or de-duplicated, and
// offsets should be monotonically non-decreasing. Ordering is the caller's
// responsibility; Valid reports whether a stop list is well formed.
type Gradient struct {
	Extend ExtendMode
	Kind   GradientKind
	Stops  []ColorStop
}

// NewEquidistant creates a gradient with the given colors evenly spaced
// across [0, 1]: color i sits at offset i/(N-1).
//
// NewEquidistant panics if fewer than two colors are given; a gradient with
// one color has no defined interpolation span.
func NewEquidistant(extend ExtendMode, kind GradientKind, colors []RGBA) Gradient {
	if len(colors) < 2 {
		panic("scenic: NewEquidistant requires at least two colors")
	}

	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		stops[i] = ColorStop{
			Offset: float64(i) / float64(len(colors)-1),
			Color:  c,
		}
	}
	return Gradient{Extend: extend, Kind: kind, Stops: stops}
}

// NewLinear creates an equidistant linear gradient from start to end.
func NewLinear(start, end Point, colors ...RGBA) Gradient {
	return NewEquidistant(ExtendPad, LinearGradient{Start: start, End: end}, colors)
}

// NewRadial creates an equidistant radial gradient from a center point out
// to the given radius.
func NewRadial(center Point, radius float64, colors ...RGBA) Gradient {
	kind := RadialGradient{
		StartCenter: center,
		StartRadius: 0,
		EndCenter:   center,
		EndRadius:   radius,
	}
	return NewEquidistant(ExtendPad, kind, colors)
}

// NewSweep creates an equidistant sweep gradient around a center point.
func NewSweep(center Point, startAngle, endAngle float64, colors ...RGBA) Gradient {
	kind := SweepGradient{
		Center:     center,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
	return NewEquidistant(ExtendPad, kind, colors)
}

// AddStop appends a color stop and returns the gradient for chaining.
// The caller keeps stops ordered by offset.
func (g Gradient) AddStop(offset float64, c RGBA) Gradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// Valid reports whether the gradient has at least two stops, every offset is
// inside [0, 1], and offsets are monotonically non-decreasing. Backends may
// misbehave on unsorted stops; callers that build stop lists by hand can use
// Valid as a pre-flight check.
func (g Gradient) Valid() bool {
	if len(g.Stops) < 2 || g.Kind == nil {
		return false
	}
	prev := 0.0
	for _, s := range g.Stops {
		if s.Offset < prev || s.Offset > 1 {
			return false
		}
		prev = s.Offset
	}
	return true
}
