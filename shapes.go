package scenic

import "math"

// Shape is the closed set of geometric primitives a backend must understand.
// Shapes carry no transform; transforms are applied externally when a shape
// is drawn.
//
// This is a sealed interface - only types in this package implement it.
type Shape interface {
	// Bounds returns the axis-aligned bounding rectangle of the shape.
	Bounds() Rect

	// shapeMarker is an unexported method that seals this interface.
	shapeMarker()
}

// Circle is a circle described by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

func (Circle) shapeMarker() {}

// Bounds returns the bounding rectangle.
func (c Circle) Bounds() Rect {
	return Rect{
		MinX: c.Center.X - c.Radius,
		MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius,
		MaxY: c.Center.Y + c.Radius,
	}
}

// Rectangle is an axis-aligned rectangle described by two opposite corners.
type Rectangle struct {
	A, B Point
}

// NewRectangle creates a rectangle from its top-left corner and dimensions.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{
		A: Point{X: x, Y: y},
		B: Point{X: x + width, Y: y + height},
	}
}

func (Rectangle) shapeMarker() {}

// Bounds returns the bounding rectangle.
func (r Rectangle) Bounds() Rect {
	return Rect{
		MinX: math.Min(r.A.X, r.B.X),
		MinY: math.Min(r.A.Y, r.B.Y),
		MaxX: math.Max(r.A.X, r.B.X),
		MaxY: math.Max(r.A.Y, r.B.Y),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 {
	return math.Abs(r.B.X - r.A.X)
}

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 {
	return math.Abs(r.B.Y - r.A.Y)
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: (r.A.X + r.B.X) / 2, Y: (r.A.Y + r.B.Y) / 2}
}

// RoundedRectangle is a rectangle with rounded corners, described by two
// opposite corners and a single corner radius.
type RoundedRectangle struct {
	A, B   Point
	Radius float64
}

func (RoundedRectangle) shapeMarker() {}

// Bounds returns the bounding rectangle.
func (r RoundedRectangle) Bounds() Rect {
	return Rectangle{A: r.A, B: r.B}.Bounds()
}

// Rect represents a min/max bounding rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Transform returns the bounding rectangle of the four transformed corners.
func (r Rect) Transform(a Affine) Rect {
	if r.IsEmpty() {
		return r
	}
	if a.IsIdentity() {
		return r
	}

	corners := []Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}

	result := EmptyRect()
	for _, c := range corners {
		result = result.UnionPoint(a.Apply(c))
	}
	return result
}
