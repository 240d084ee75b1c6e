package scenic

import (
	"fmt"
	"image"
	"sync/atomic"

	xdraw "golang.org/x/image/draw"
)

// imageID assigns a process-unique identity to each Image.
var imageID atomic.Uint64

// Image is an immutable raster image resource: RGBA pixel data plus
// dimensions. Images are created once and shared by reference; they are safe
// for concurrent reads.
//
// An Image carries no backend state. Backends that keep GPU-resident copies
// key them off ID in a side table (see TextureCache) rather than mutating
// the image itself.
type Image struct {
	id uint64

	// Data holds the pixel data in RGBA order, 4 bytes per pixel,
	// row-major.
	Data []byte

	// Width and Height are the dimensions in pixels.
	Width  int
	Height int
}

// NewImage creates an image from raw RGBA pixel bytes.
// Data length must be exactly width*height*4.
func NewImage(data []byte, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scenic: invalid image dimensions %dx%d", width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("scenic: image data is %d bytes, want %d for %dx%d RGBA",
			len(data), width*height*4, width, height)
	}
	return &Image{
		id:     imageID.Add(1),
		Data:   data,
		Width:  width,
		Height: height,
	}, nil
}

// FromImage converts any image.Image into an Image, re-encoding the pixels
// as RGBA.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)

	return &Image{
		id:     imageID.Add(1),
		Data:   rgba.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

// ID returns the image's stable identity. Backends use it to key caches of
// uploaded GPU textures.
func (img *Image) ID() uint64 {
	return img.id
}

// Bounds returns the image extent as a Rect anchored at the origin.
func (img *Image) Bounds() Rect {
	return Rect{
		MinX: 0,
		MinY: 0,
		MaxX: float64(img.Width),
		MaxY: float64(img.Height),
	}
}

// IsEmpty returns true if the image has no pixels.
func (img *Image) IsEmpty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0
}
