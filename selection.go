// Package selection implements selection masks for a pixel editor.
//
// The package works on two raster types: [PixelBuffer], a row-major RGBA
// image, and [Mask], a row-major one-byte-per-pixel selection where
// [Selected] marks a selected pixel. Masks are produced by flood fill
// ([AutoSelect]), lasso polygons ([Lasso]) and rectangles
// ([Mask.FillRect]), combined with [Combine], traced into outlines with
// [Trace] and [TracePath], and used to move pixels with [Crop], [Slice],
// [Patch] and [MoveSelection].
//
// All functions are synchronous and deterministic. Malformed input is
// reported through the error values defined in this package; no function
// reads or writes outside the buffers it is given.
package selection

import "errors"

// Errors returned for malformed input.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("selection: invalid dimensions")

	// ErrSizeMismatch is returned when a buffer or mask length does not
	// match its dimensions, or when two operands differ in size.
	ErrSizeMismatch = errors.New("selection: size mismatch")

	// ErrSeedOutOfBounds is returned when a fill seed lies outside the buffer.
	ErrSeedOutOfBounds = errors.New("selection: seed out of bounds")

	// ErrSeedNotAllowed is returned when a fill seed violates the limit mode.
	ErrSeedNotAllowed = errors.New("selection: seed outside allowed region")

	// ErrTooFewPoints is returned for polygons with fewer than three vertices.
	ErrTooFewPoints = errors.New("selection: polygon needs at least 3 points")

	// ErrInvalidPolygon is returned for odd-length coordinate lists and
	// non-finite coordinates.
	ErrInvalidPolygon = errors.New("selection: invalid polygon")

	// ErrBoxOutOfBounds is returned when a trim or tile box is empty or
	// does not lie within the source.
	ErrBoxOutOfBounds = errors.New("selection: box out of bounds")
)
