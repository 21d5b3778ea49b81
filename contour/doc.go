// Package contour extracts iso-lines from a 2D scalar array with marching
// squares.
//
// What:
//
//	Find(values, level) returns every connected iso-line of values at level
//	as an ordered polyline of fractional (row, col) positions. Each vertex
//	lies on a cell edge, linearly interpolated between the two corner values
//	that straddle the level. A closed contour repeats its first vertex at the
//	end; an open contour starts and ends on the array boundary or next to a
//	non-finite value.
//
// Conventions:
//
//   - A corner is "above" when its value is strictly greater than level.
//   - Cells with a non-finite corner produce no segments.
//   - Saddle cells (diagonal corners on the same side) are disambiguated by
//     the mean of the four corners.
//
// Complexity:
//
//	O(rows×cols) time and memory.
package contour
