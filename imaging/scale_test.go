package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestScale(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			src.SetGray16(x, y, color.Gray16{Y: 0x8000})
		}
	}

	dst, err := Scale(src, 32, 16)
	if err != nil {
		t.Fatalf("Scale() = %v", err)
	}
	if b := dst.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("bounds = %v, want 32x16", b)
	}

	// A flat image stays flat.
	for _, p := range []image.Point{{0, 0}, {15, 8}, {31, 15}} {
		c := dst.NRGBAAt(p.X, p.Y)
		if c.R < 127 || c.R > 129 || c.A != 255 {
			t.Errorf("pixel %v = %v, want gray ~128", p, c)
		}
	}
}

func TestScale_InvalidSize(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 2))
	for _, size := range [][2]int{{0, 4}, {4, -1}} {
		if _, err := Scale(src, size[0], size[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Scale(%v) = %v, want ErrInvalidDimensions", size, err)
		}
	}
}
