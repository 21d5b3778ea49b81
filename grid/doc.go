// Package grid supplies the (y,x) coordinate grids every lensing calculation
// is evaluated on.
//
// What:
//
//   - Mask2D describes a rectangular pixel geometry (shape, pixel scales,
//     origin) and which pixels are excluded from an analysis.
//   - Grid2D is a uniform, row-major grid of pixel-centre coordinates built
//     from a Mask2D. Only uniform grids can feed finite-difference gradients.
//   - Irregular is an arbitrary ordered set of (y,x) points, used for
//     critical curves, caustics and shifted copies of other grids.
//
// Conventions:
//
//   - Coordinates are in arc-seconds, ordered (y, x).
//   - Row 0 is the top of the image: y decreases as the row index grows,
//     x increases with the column index.
//   - Pixel (row, col) has scaled centre
//     y = -(row - (rows-1)/2)*psY + originY, x = (col - (cols-1)/2)*psX + originX.
//
// Complexity:
//
//   - Uniform / FromMask: O(rows×cols) time and memory.
//   - ZoomRegion:         O(rows×cols).
//   - Shift:              O(n) for n points.
//
// Errors:
//
//   - ErrEmptyMask:       mask has no rows or no columns.
//   - ErrNonRectangular:  mask rows have differing lengths.
//   - ErrBadPixelScale:   pixel scale is non-positive or non-finite.
//   - ErrShape:           a grid does not have the shape an operation requires.
//   - ErrFullyMasked:     every pixel is masked, so no zoom region exists.
package grid
