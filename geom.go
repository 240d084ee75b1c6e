package scenic

// Geom bundles a shape, a style, a brush, an object transform, and an
// independent brush transform into one drawable value.
//
// Transform and BrushTransform are deliberately decoupled: the brush does
// NOT follow the object transform. With a nil BrushTransform, gradient
// brushes live in the shape's local (pre-Transform) space, and texture
// brushes in the image's natural pixel space. This lets a fill pattern
// stay fixed while the shape animates, or vice versa.
type Geom struct {
	Style Style
	Shape Shape
	Brush Brush

	// Transform maps the shape's local space into the scene's space.
	// The scene's global transform is applied on top at draw time.
	// The zero value is treated as the identity.
	Transform Affine

	// BrushTransform maps the shape's local space into brush space.
	// Nil means the brush keeps its natural coordinate space.
	BrushTransform *Affine
}

// Draw lowers the geometry into the scene under the current global
// transform, implementing Drawable.
//
// Draw panics if a stroke style is combined with a texture brush: stroked
// textured geometry is unsupported, and silently filling instead would mask
// the bug.
func (g *Geom) Draw(s *Scene) {
	local := g.Transform
	if local == (Affine{}) {
		local = Identity()
	}
	transform := s.Transform().Mul(local)

	switch style := g.Style.(type) {
	case Fill:
		s.backend.Fill(style.Rule, transform, g.Brush, g.BrushTransform, g.Shape)
	case Stroke:
		if _, ok := g.Brush.(TextureBrush); ok {
			panic("scenic: stroke styling is unsupported for texture brushes")
		}
		stroke := style.Style
		if stroke == nil {
			stroke = DefaultStrokeStyle()
		}
		s.backend.Stroke(stroke, transform, g.Brush, g.BrushTransform, g.Shape)
	default:
		panic("scenic: Geom has no style")
	}
}

// NewImageGeom builds a fill geometry that draws an image inside a rectangle
// centered at (x, y) with the given width and height.
//
// The brush transform is derived from the fit mode. Brush space for an image
// is anchored at the image's own (0,0), not at the shape's center, so under
// FitFill the image is first scaled to the rectangle's size and then
// translated to the rectangle's top-left corner. The translate must come
// after the scale; composing them the other way leaves the image offset by
// half its size.
func NewImageGeom(img *Image, x, y, width, height float64, transform Affine, fit ImageFit) Geom {
	shape := Rectangle{
		A: Point{X: x - width/2, Y: y - height/2},
		B: Point{X: x + width/2, Y: y + height/2},
	}

	orgWidth := float64(img.Width)
	orgHeight := float64(img.Height)

	var brushTransform *Affine
	switch f := fit.(type) {
	case FitOriginal:
		// Brush space = image pixel space 1:1.
	case FitFill:
		t := Translate(x-width/2, y-height/2).
			Mul(Scale(width/orgWidth, height/orgHeight))
		brushTransform = &t
	case FitExact:
		t := Translate(x-width/2, y-height/2).
			Mul(Scale(f.Width/orgWidth, f.Height/orgHeight))
		brushTransform = &t
	}

	return Geom{
		Style:          Fill{Rule: FillNonZero},
		Shape:          shape,
		Brush:          TextureBrush{Image: img, Fit: fit, Edge: ExtendPad},
		Transform:      transform,
		BrushTransform: brushTransform,
	}
}
