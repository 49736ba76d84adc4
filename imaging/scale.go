package imaging

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale resamples src to width×height with a Catmull-Rom filter.
func Scale(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
