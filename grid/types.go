package grid

// Coordinates is the read-only view shared by uniform and irregular grids.
// Implementations return points in a fixed order; derived fields are aligned
// index-by-index with that order.
type Coordinates interface {
	// Len returns the number of (y,x) points.
	Len() int
	// YX returns the i-th point.
	YX(i int) (y, x float64)
}

// PixelScales holds the (y, x) size of a pixel in arc-seconds.
type PixelScales [2]float64

// Square returns PixelScales with both axes set to ps.
func Square(ps float64) PixelScales {
	return PixelScales{ps, ps}
}

// Origin is the scaled (y, x) coordinate the grid is centred on.
type Origin [2]float64
