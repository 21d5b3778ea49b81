package grid

import "errors"

var (
	// ErrEmptyMask indicates the mask has no rows or no columns.
	ErrEmptyMask = errors.New("grid: mask must have at least one row and one column")
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all mask rows must have the same length")
	// ErrBadPixelScale indicates a non-positive or non-finite pixel scale.
	ErrBadPixelScale = errors.New("grid: pixel scales must be finite and > 0")
	// ErrShape is the shape-error class: the grid is not uniform, or too small,
	// or its length does not match a companion array.
	ErrShape = errors.New("grid: invalid grid shape")
	// ErrFullyMasked indicates that no unmasked pixel exists.
	ErrFullyMasked = errors.New("grid: every pixel is masked")
)
