package grid

// Grid2D is a uniform grid of pixel-centre coordinates laid out row-major
// over every pixel of its Mask, masked or not, so that native 2D arrays and
// finite differences along rows and columns stay well defined. Derived
// fields carry the Mask and use it to blank excluded pixels.
//
// IsEvaluationGrid marks a grid that was built for critical-curve work at a
// bounded resolution; operations that would rebuild an evaluation grid reuse
// a grid carrying this flag as-is.
type Grid2D struct {
	Mask             *Mask2D
	IsEvaluationGrid bool
	points           [][2]float64
}

// Uniform builds an unmasked rows×cols grid with the given pixel scales,
// centred on origin.
// Returns ErrEmptyMask or ErrBadPixelScale.
// Complexity: O(rows×cols).
func Uniform(rows, cols int, pixelScales PixelScales, origin Origin) (*Grid2D, error) {
	m, err := Unmasked(rows, cols, pixelScales, origin)
	if err != nil {
		return nil, err
	}

	return FromMask(m), nil
}

// FromMask builds the uniform grid of pixel centres covering m.
func FromMask(m *Mask2D) *Grid2D {
	pts := make([][2]float64, m.Rows*m.Cols)
	for idx := range pts {
		r, c := m.Coordinate(idx)
		y, x := m.ScaledFromPixel(float64(r), float64(c))
		pts[idx] = [2]float64{y, x}
	}

	return &Grid2D{Mask: m, points: pts}
}

// Len returns rows×cols.
func (g *Grid2D) Len() int {
	return len(g.points)
}

// YX returns the i-th (row-major) pixel centre.
func (g *Grid2D) YX(i int) (float64, float64) {
	return g.points[i][0], g.points[i][1]
}

// ShapeNative returns (rows, cols).
func (g *Grid2D) ShapeNative() (rows, cols int) {
	return g.Mask.Rows, g.Mask.Cols
}

// PixelScale returns the (square) pixel scale of the grid.
func (g *Grid2D) PixelScale() float64 {
	return g.Mask.PixelScale()
}

// Index maps (row, col) to the row-major point index.
func (g *Grid2D) Index(row, col int) int {
	return g.Mask.index(row, col)
}

// Native reshapes a per-point slice aligned with g into a rows×cols array,
// setting masked pixels to zero.
// Returns ErrShape if len(values) != g.Len().
func (g *Grid2D) Native(values []float64) ([][]float64, error) {
	if len(values) != g.Len() {
		return nil, ErrShape
	}
	rows, cols := g.ShapeNative()
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			if !g.Mask.IsMasked(r, c) {
				out[r][c] = values[g.Index(r, c)]
			}
		}
	}

	return out, nil
}
