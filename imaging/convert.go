package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
)

// ErrInvalidDimensions is returned when a sample grid does not match its
// stated dimensions or a target size is not positive.
var ErrInvalidDimensions = errors.New("imaging: invalid dimensions")

func checkGrid(samples []float32, width, height int) error {
	if width <= 0 || height <= 0 || height > math.MaxInt/width || len(samples) != width*height {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidDimensions, len(samples), width, height)
	}
	return nil
}

// unit maps a noise sample to [0, 1]. NaN maps to 0.
func unit(v float32) float64 {
	u := float64(v)*0.5 + 0.5
	if !(u > 0) {
		return 0
	}
	return math.Min(u, 1)
}

// Gray16 converts a row-major sample grid to a 16-bit grayscale image.
func Gray16(samples []float32, width, height int) (*image.Gray16, error) {
	if err := checkGrid(samples, width, height); err != nil {
		return nil, err
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	parallel.For(height, func(y, _ int) {
		row := samples[y*width : (y+1)*width]
		for x, v := range row {
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(unit(v) * 0xFFFF))})
		}
	})
	return img, nil
}

// Colorize converts a sample grid to an image by mixing linearly from first
// (at -1) to second (at +1).
func Colorize(samples []float32, width, height int, first, second color.Color) (*image.NRGBA, error) {
	if err := checkGrid(samples, width, height); err != nil {
		return nil, err
	}

	a := color.NRGBAModel.Convert(first).(color.NRGBA)
	b := color.NRGBAModel.Convert(second).(color.NRGBA)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	parallel.For(height, func(y, _ int) {
		row := samples[y*width : (y+1)*width]
		for x, v := range row {
			img.SetNRGBA(x, y, mix(a, b, unit(v)))
		}
	})
	return img, nil
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
