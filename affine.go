package scenic

import "math"

// Affine represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Affine is an immutable value type; all methods return new values.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation transformation.
func Translate(x, y float64) Affine {
	return Affine{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling transformation.
func Scale(x, y float64) Affine {
	return Affine{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation transformation (angle in radians).
func Rotate(angle float64) Affine {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Mul composes two transformations. The result applies b first, then a:
// a.Mul(b).Apply(p) == a.Apply(b.Apply(p)).
//
// This is the single composition convention used throughout scenic. A
// drawable's effective transform is global.Mul(local).
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// Apply transforms a point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// PreTranslate composes a translation that is applied before a:
// a.PreTranslate(x, y) == a.Mul(Translate(x, y)).
func (a Affine) PreTranslate(x, y float64) Affine {
	return a.Mul(Translate(x, y))
}

// Invert returns the inverse transformation.
// Degenerate transforms are accepted everywhere else in scenic and simply
// produce degenerate geometry; Invert returns the identity for them.
func (a Affine) Invert() Affine {
	det := a.A*a.E - a.B*a.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Affine{
		A: a.E * invDet,
		B: -a.B * invDet,
		C: (a.B*a.F - a.C*a.E) * invDet,
		D: -a.D * invDet,
		E: a.A * invDet,
		F: (a.C*a.D - a.A*a.F) * invDet,
	}
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}
