package scenic

// Brush describes what fills a shape, independent of where: the mapping from
// shape-local space into brush space is supplied separately by a brush
// transform (see Geom.BrushTransform).
//
// This is a sealed interface - only types in this package implement it.
// Backends switch on the concrete type:
//   - SolidBrush: a single solid color
//   - GradientBrush: a multi-stop gradient
//   - TextureBrush: a raster image
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates an opaque SolidBrush from RGB components (0-1 range).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// GradientBrush paints with a gradient.
type GradientBrush struct {
	Gradient Gradient
}

func (GradientBrush) brushMarker() {}

// GradientOf wraps a gradient as a brush.
func GradientOf(g Gradient) GradientBrush {
	return GradientBrush{Gradient: g}
}

// TextureBrush paints with a raster image. Placement is entirely carried by
// the brush transform; the fit mode records how that transform was derived
// (see NewImageGeom) and Edge governs sampling outside the image extent.
type TextureBrush struct {
	Image *Image
	Fit   ImageFit
	Edge  ExtendMode

	// OffsetX, OffsetY shift the image inside brush space.
	OffsetX, OffsetY float64
}

func (TextureBrush) brushMarker() {}

// Texture creates a TextureBrush over the image with 1:1 pixel mapping and
// pad extension.
func Texture(img *Image) TextureBrush {
	return TextureBrush{Image: img, Fit: FitOriginal{}, Edge: ExtendPad}
}
