package lensing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/lensing"
	"github.com/katalvlaran/lensing/mass"
)

func uniform(t testing.TB, rows, cols int, ps float64) *grid.Grid2D {
	t.Helper()
	g, err := grid.Uniform(rows, cols, grid.Square(ps), grid.Origin{})
	require.NoError(t, err)

	return g
}

func sis(einsteinRadius float64) *mass.Galaxy {
	return mass.NewGalaxy(mass.IsothermalSph{EinsteinRadius: einsteinRadius})
}

func sie() *mass.Galaxy {
	return mass.NewGalaxy(
		mass.Isothermal{Centre: mass.Centre{0.05, -0.05}, EllComps: [2]float64{0.1, 0.05}, EinsteinRadius: 1.1},
		mass.ExternalShear{Gamma1: 0.03, Gamma2: -0.02},
	)
}

func newOperator(t testing.TB, d lensing.Deflector, opts ...lensing.Option) *lensing.Operator {
	t.Helper()
	op, err := lensing.NewOperator(d, opts...)
	require.NoError(t, err)

	return op
}

// interior returns the indices of g that are off the grid border and whose
// radius from the origin lies in [rMin, rMax].
func interior(g *grid.Grid2D, rMin, rMax float64) []int {
	rows, cols := g.ShapeNative()
	var idx []int
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			i := g.Index(r, c)
			y, x := g.YX(i)
			if rr := math.Hypot(y, x); rr >= rMin && rr <= rMax {
				idx = append(idx, i)
			}
		}
	}

	return idx
}

// counting wraps a deflector and counts Deflections calls.
type counting struct {
	d     lensing.Deflector
	calls int
}

func (c *counting) Deflections(g grid.Coordinates) (field.VectorYX, error) {
	c.calls++
	return c.d.Deflections(g)
}
