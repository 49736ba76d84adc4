package noise

const (
	stretch2D = -0.211324865405187 // (1/sqrt(2+1)-1)/2
	squish2D  = 0.366025403784439  // (sqrt(2+1)-1)/2
	norm2D    = 47.0
)

// gradients2D approximates the directions from the center of an octagon
// to its vertices, stored as interleaved (x, y) pairs.
var gradients2D = [16]int8{
	5, 2, 2, 5,
	-5, 2, -2, 5,
	5, -2, 2, -5,
	-5, -2, -2, -5,
}

// Context is a seeded 2D OpenSimplex noise generator.
//
// A Context is immutable after New returns. Eval2D and Fill never mutate
// it, so a single Context may be shared by any number of goroutines.
type Context struct {
	seed int64
	perm PermutationTable
}

// New creates a noise context from a 64-bit seed.
// Two contexts built from the same seed produce identical output.
func New(seed int64) *Context {
	c := &Context{
		seed: seed,
		perm: buildPermutation(seed),
	}
	Logger().Debug("noise: context created", "seed", seed)
	return c
}

// Seed returns the seed the context was built from.
func (c *Context) Seed() int64 {
	return c.seed
}

// Permutation returns a copy of the context's permutation table.
func (c *Context) Permutation() PermutationTable {
	return c.perm
}

// Eval2D returns the noise value at (x, y).
//
// The result lies roughly in [-1, 1] but is not clamped. The function is
// pure: the same context and coordinates always give the same value.
// Results for NaN or infinite coordinates are unspecified.
func (c *Context) Eval2D(x, y float64) float64 {
	// Place input coordinates onto the stretched grid.
	stretchOffset := (x + y) * stretch2D
	xs := x + stretchOffset
	ys := y + stretchOffset

	// Rhombus super-cell origin.
	xsb := fastFloor(xs)
	ysb := fastFloor(ys)

	squishOffset := float64(xsb+ysb) * squish2D
	xb := float64(xsb) + squishOffset
	yb := float64(ysb) + squishOffset

	xins := xs - float64(xsb)
	yins := ys - float64(ysb)
	inSum := xins + yins

	dx0 := x - xb
	dy0 := y - yb

	var value float64

	// (1,0)
	dx1 := dx0 - 1 - squish2D
	dy1 := dy0 - 0 - squish2D
	if attn1 := 2 - dx1*dx1 - dy1*dy1; attn1 > 0 {
		attn1 *= attn1
		value += attn1 * attn1 * c.extrapolate(xsb+1, ysb+0, dx1, dy1)
	}

	// (0,1)
	dx2 := dx0 - 0 - squish2D
	dy2 := dy0 - 1 - squish2D
	if attn2 := 2 - dx2*dx2 - dy2*dy2; attn2 > 0 {
		attn2 *= attn2
		value += attn2 * attn2 * c.extrapolate(xsb+0, ysb+1, dx2, dy2)
	}

	var (
		dxExt, dyExt float64
		xsvExt       int
		ysvExt       int
	)

	if inSum <= 1 {
		// Inside the triangle at (0,0).
		zins := 1 - inSum
		if zins > xins || zins > yins {
			// (0,0) is one of the two closest vertices.
			if xins > yins {
				xsvExt = xsb + 1
				ysvExt = ysb - 1
				dxExt = dx0 - 1
				dyExt = dy0 + 1
			} else {
				xsvExt = xsb - 1
				ysvExt = ysb + 1
				dxExt = dx0 + 1
				dyExt = dy0 - 1
			}
		} else {
			// (1,0) and (0,1) are the closest.
			xsvExt = xsb + 1
			ysvExt = ysb + 1
			dxExt = dx0 - 1 - 2*squish2D
			dyExt = dy0 - 1 - 2*squish2D
		}
	} else {
		// Inside the triangle at (1,1).
		zins := 2 - inSum
		if zins < xins || zins < yins {
			if xins > yins {
				xsvExt = xsb + 2
				ysvExt = ysb + 0
				dxExt = dx0 - 2 - 2*squish2D
				dyExt = dy0 + 0 - 2*squish2D
			} else {
				xsvExt = xsb + 0
				ysvExt = ysb + 2
				dxExt = dx0 + 0 - 2*squish2D
				dyExt = dy0 - 2 - 2*squish2D
			}
		} else {
			dxExt = dx0
			dyExt = dy0
			xsvExt = xsb
			ysvExt = ysb
		}
		xsb++
		ysb++
		dx0 = dx0 - 1 - 2*squish2D
		dy0 = dy0 - 1 - 2*squish2D
	}

	// (0,0) or (1,1)
	if attn0 := 2 - dx0*dx0 - dy0*dy0; attn0 > 0 {
		attn0 *= attn0
		value += attn0 * attn0 * c.extrapolate(xsb, ysb, dx0, dy0)
	}

	// Extra vertex.
	if attnExt := 2 - dxExt*dxExt - dyExt*dyExt; attnExt > 0 {
		attnExt *= attnExt
		value += attnExt * attnExt * c.extrapolate(xsvExt, ysvExt, dxExt, dyExt)
	}

	return value / norm2D
}

// extrapolate returns the dot product of the lattice point's gradient
// with the offset (dx, dy).
func (c *Context) extrapolate(xsb, ysb int, dx, dy float64) float64 {
	index := c.perm[(int(c.perm[xsb&0xFF])+ysb)&0xFF] & 0x0E
	return float64(gradients2D[index])*dx + float64(gradients2D[index+1])*dy
}

// fastFloor rounds toward negative infinity.
func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
