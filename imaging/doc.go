// Package imaging turns noise grids produced by noise.Context.Fill into
// images and writes them out.
//
// Samples are mapped from [-1, 1] to [0, 1] with n*0.5+0.5 and clamped,
// then stored as 16-bit gray or mixed between two colors. Images can be
// resampled with a Catmull-Rom filter and encoded as PNG, BMP, or TIFF.
package imaging
