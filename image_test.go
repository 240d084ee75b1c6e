package scenic

import (
	"image"
	"image/color"
	"testing"
)

func TestNewImage(t *testing.T) {
	img, err := NewImage(make([]byte, 4*4*4), 4, 4)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Errorf("size = %dx%d, want 4x4", img.Width, img.Height)
	}
	if img.Bounds() != (Rect{MaxX: 4, MaxY: 4}) {
		t.Errorf("Bounds() = %+v", img.Bounds())
	}
	if img.IsEmpty() {
		t.Error("4x4 image reported empty")
	}
}

func TestNewImageValidation(t *testing.T) {
	tests := []struct {
		name   string
		data   int
		w, h   int
	}{
		{"zero width", 0, 0, 4},
		{"negative height", 0, 4, -1},
		{"short data", 10, 4, 4},
		{"long data", 100, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewImage(make([]byte, tt.data), tt.w, tt.h); err == nil {
				t.Error("NewImage() succeeded, want error")
			}
		})
	}
}

func TestImageIDsUnique(t *testing.T) {
	a, _ := NewImage(make([]byte, 4), 1, 1)
	b, _ := NewImage(make([]byte, 4), 1, 1)
	if a.ID() == b.ID() {
		t.Error("distinct images must have distinct IDs")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	img := FromImage(src)
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", img.Width, img.Height)
	}
	if len(img.Data) != 2*1*4 {
		t.Fatalf("data length = %d, want 8", len(img.Data))
	}
	if img.Data[0] != 255 || img.Data[3] != 255 {
		t.Errorf("pixel 0 = %v, want opaque red", img.Data[0:4])
	}
	if img.Data[6] != 255 {
		t.Errorf("pixel 1 = %v, want opaque blue", img.Data[4:8])
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Subimages with non-zero Min must be re-anchored at the origin.
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	img := FromImage(src)
	if img.Width != 3 || img.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", img.Width, img.Height)
	}
}

func TestImageIsEmptyNil(t *testing.T) {
	var img *Image
	if !img.IsEmpty() {
		t.Error("nil image should be empty")
	}
}
