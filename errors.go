package noise

import "errors"

// Errors returned by noise operations. Details are attached with
// fmt.Errorf("%w: ...") so callers should match them with errors.Is.
var (
	// ErrInvalidArgument is returned when fill dimensions, octave counts,
	// or buffer lengths are not usable. Nothing is written in that case.
	ErrInvalidArgument = errors.New("noise: invalid argument")

	// ErrAllocationFailure is returned when a new context cannot be handed out.
	// The accompanying Handle is always the null handle.
	ErrAllocationFailure = errors.New("noise: allocation failure")

	// ErrInvalidHandle is returned when a handle was never created or has
	// already been destroyed.
	ErrInvalidHandle = errors.New("noise: invalid handle")
)
