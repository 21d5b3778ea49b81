package grid

// Irregular is an ordered set of (y,x) points with no shape or spacing
// requirement. Critical curves, caustics and shifted grids are Irregular.
type Irregular struct {
	points [][2]float64
}

// NewIrregular copies points into a new Irregular grid.
func NewIrregular(points [][2]float64) *Irregular {
	cp := make([][2]float64, len(points))
	copy(cp, points)

	return &Irregular{points: cp}
}

// Len returns the number of points.
func (g *Irregular) Len() int {
	return len(g.points)
}

// YX returns the i-th point.
func (g *Irregular) YX(i int) (float64, float64) {
	return g.points[i][0], g.points[i][1]
}

// Points returns a copy of the points.
func (g *Irregular) Points() [][2]float64 {
	cp := make([][2]float64, len(g.points))
	copy(cp, g.points)

	return cp
}

// Shift returns a copy of g with every point moved by (dy, dx).
// Complexity: O(n).
func Shift(g Coordinates, dy, dx float64) *Irregular {
	pts := make([][2]float64, g.Len())
	for i := range pts {
		y, x := g.YX(i)
		pts[i] = [2]float64{y + dy, x + dx}
	}

	return &Irregular{points: pts}
}

// Subtract returns g minus the aligned per-point offsets (dy[i], dx[i]).
// Returns ErrShape if lengths differ.
func Subtract(g Coordinates, dy, dx []float64) (*Irregular, error) {
	n := g.Len()
	if len(dy) != n || len(dx) != n {
		return nil, ErrShape
	}
	pts := make([][2]float64, n)
	for i := range pts {
		y, x := g.YX(i)
		pts[i] = [2]float64{y - dy[i], x - dx[i]}
	}

	return &Irregular{points: pts}, nil
}
