package noise

import (
	"fmt"
	"math"

	"github.com/gogpu/noise/internal/parallel"
)

// seamlessMargin is where FillSeamless starts blending toward the opposite
// edge of the unit square.
const seamlessMargin = 0.75

// Fill samples the unit square into buf, a row-major width×height grid.
//
// Cell (x, y) is sampled at (x/width, 1-y/height), so row 0 is the top of
// the sample domain. With octaves > 1 the layers from Octaves(octaves) are
// summed and normalized by their total amplitude; with a single octave each
// cell holds exactly float32(Eval2D(x/width, 1-y/height)).
//
// Fill returns an error wrapping ErrInvalidArgument, and writes nothing, if
// width, height, or octaves is not positive or len(buf) != width*height.
func (c *Context) Fill(buf []float32, width, height, octaves int, opts ...FillOption) error {
	if octaves <= 0 {
		return fmt.Errorf("%w: octaves=%d (must be > 0)", ErrInvalidArgument, octaves)
	}
	return c.FillOctaves(buf, width, height, Octaves(octaves), opts...)
}

// FillOctaves is like Fill but takes an explicit octave list.
// The list must be non-empty and its amplitudes must sum to a positive value.
func (c *Context) FillOctaves(buf []float32, width, height int, octaves []Octave, opts ...FillOption) error {
	total, err := checkFill(buf, width, height, octaves)
	if err != nil {
		return err
	}
	c.fill(buf, width, height, func(x, y float64) float64 {
		return c.sample(octaves, total, x, y)
	}, opts)
	return nil
}

// FillSeamless is like FillOctaves but produces a grid that tiles: cells
// within the last quarter of either axis are blended toward the samples one
// unit to the left and below, so the right edge continues into the left edge
// and the bottom row into the top row.
//
// Cells outside the blend margin hold the same values FillOctaves writes.
func (c *Context) FillSeamless(buf []float32, width, height int, octaves []Octave, opts ...FillOption) error {
	total, err := checkFill(buf, width, height, octaves)
	if err != nil {
		return err
	}
	c.fill(buf, width, height, func(x, y float64) float64 {
		return c.seamless(octaves, total, x, y)
	}, opts)
	return nil
}

// seamless blends a layered sample across the margin toward (x-1, y-1).
func (c *Context) seamless(octaves []Octave, total, x, y float64) float64 {
	get := func(x, y float64) float64 {
		return c.sample(octaves, total, x, y)
	}
	if x < seamlessMargin && y <= seamlessMargin {
		return get(x, y)
	}

	weightX := math.Max(0, (x-seamlessMargin)*4)
	weightY := math.Max(0, (y-seamlessMargin)*4)

	near := mix(get(x, y), get(x-1, y), weightX)
	far := mix(get(x, y-1), get(x-1, y-1), weightX)
	return mix(near, far, weightY)
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// fill writes every cell with value(sampleX, sampleY), on a row pool when
// the options ask for one.
func (c *Context) fill(buf []float32, width, height int, value func(x, y float64) float64, opts []FillOption) {
	o := defaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.pool == nil && o.workers < 2 {
		fillRows(buf, width, height, parallel.Band{Start: 0, End: height}, value)
		return
	}

	pool := o.pool
	if pool == nil {
		pool = parallel.NewRowPool(o.workers)
		defer pool.Close()
	}

	Logger().Debug("noise: parallel fill",
		"width", width, "height", height, "workers", pool.Workers())

	ran := pool.Rows(height, func(b parallel.Band) {
		fillRows(buf, width, height, b, value)
	})
	if !ran {
		Logger().Warn("noise: row pool closed, filling sequentially")
		fillRows(buf, width, height, parallel.Band{Start: 0, End: height}, value)
	}
}

// fillRows writes the rows of band b.
func fillRows(buf []float32, width, height int, b parallel.Band, value func(x, y float64) float64) {
	for y := b.Start; y < b.End; y++ {
		sampleY := 1 - float64(y)/float64(height)
		row := buf[y*width : (y+1)*width]
		for x := range row {
			row[x] = float32(value(float64(x)/float64(width), sampleY))
		}
	}
}

// GridLen returns width*height, the buffer length a grid of that size needs.
// It returns an error wrapping ErrInvalidArgument if either dimension is not
// positive or the product does not fit in an int.
func GridLen(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidArgument, width, height)
	}
	if height > math.MaxInt/width {
		return 0, fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidArgument, width, height)
	}
	return width * height, nil
}

// checkFill validates a fill request and returns the total octave amplitude.
func checkFill(buf []float32, width, height int, octaves []Octave) (float64, error) {
	n, err := GridLen(width, height)
	if err != nil {
		return 0, err
	}
	if len(buf) != n {
		return 0, fmt.Errorf("%w: buffer length %d, want %d (%dx%d)",
			ErrInvalidArgument, len(buf), n, width, height)
	}
	if len(octaves) == 0 {
		return 0, fmt.Errorf("%w: empty octave list", ErrInvalidArgument)
	}
	total := totalAmplitude(octaves)
	if !(total > 0) {
		return 0, fmt.Errorf("%w: total amplitude %v (must be > 0)", ErrInvalidArgument, total)
	}
	return total, nil
}
