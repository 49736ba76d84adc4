// Package noise provides seedable 2D OpenSimplex gradient noise.
//
// # Overview
//
// A Context is built from a 64-bit seed. The seed drives a 64-bit LCG that
// shuffles a 256-entry permutation table; the table picks one of eight
// octagon gradients for every lattice point of the simplex grid. The same
// seed always produces the same table and the same noise field.
//
// # Quick Start
//
//	ctx := noise.New(42)
//
//	// Single sample, roughly in [-1, 1]
//	v := ctx.Eval2D(0.5, 0.5)
//
//	// Fill a 256x256 grid covering the unit square
//	buf := make([]float32, 256*256)
//	if err := ctx.Fill(buf, 256, 256, 4, noise.WithWorkers(8)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Grids
//
// Fill samples cell (x, y) at (x/width, 1-y/height), so row 0 is the top of
// the domain. Multiple octaves double the frequency and halve the amplitude
// per layer and are normalized by the total amplitude. DetailOctaves builds
// layers from a zoom scale and a 0..100 detail level instead, and
// FillSeamless blends the last quarter of each axis so the grid tiles.
//
// # Handles
//
// Registry maps opaque Handle values to contexts for callers that cannot
// hold Go pointers. Destroyed handles are detected and rejected with
// ErrInvalidHandle rather than left undefined.
//
// # Concurrency
//
// A Context is immutable after New, so Eval2D and Fill may run from any
// number of goroutines at once.
package noise
