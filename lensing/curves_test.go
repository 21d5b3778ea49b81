package lensing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/lensing"
	"github.com/katalvlaran/lensing/logging"
	"github.com/katalvlaran/lensing/mass"
)

//--------------------------------------------------------------------------------
// evaluation grid

// TestEvaluationGridGeometry_NeverExceedsMax sweeps pixel-scale ratios,
// including ones that would need grids far beyond the cap.
func TestEvaluationGridGeometry_NeverExceedsMax(t *testing.T) {
	for _, zoom := range [][2]int{{100, 100}, {30, 120}, {7, 3}} {
		for ps := 0.0005; ps < 0.5; ps *= 1.7 {
			geo := lensing.EvaluationGridGeometry(zoom[0], zoom[1], 0.05, ps, 1000)
			assert.LessOrEqual(t, geo.Rows, 1000)
			assert.LessOrEqual(t, geo.Cols, 1000)
			assert.GreaterOrEqual(t, geo.Rows, 2)
			assert.GreaterOrEqual(t, geo.Cols, 2)
		}
	}
}

// TestEvaluationGridGeometry_Clamp checks the clamped shape and the pixel
// scale that keeps the zoom region covered.
func TestEvaluationGridGeometry_Clamp(t *testing.T) {
	cases := []struct {
		name             string
		zoomRows, zoomCs int
		gridPS, ps       float64
		max              int
		want             lensing.EvaluationGeometry
	}{
		{"Unclamped", 40, 40, 0.1, 0.05, 1000, lensing.EvaluationGeometry{Rows: 80, Cols: 80, PixelScale: 0.05}},
		{"Ratio5000", 100, 100, 0.05, 0.001, 1000, lensing.EvaluationGeometry{Rows: 1000, Cols: 1000, PixelScale: 0.005, Clamped: true}},
		{"WideZoom", 30, 120, 0.05, 0.005, 1000, lensing.EvaluationGeometry{Rows: 1000, Cols: 1000, PixelScale: 0.006, Clamped: true}},
		{"TinyZoom", 1, 1, 0.05, 0.05, 1000, lensing.EvaluationGeometry{Rows: 2, Cols: 2, PixelScale: 0.05}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			geo := lensing.EvaluationGridGeometry(tc.zoomRows, tc.zoomCs, tc.gridPS, tc.ps, tc.max)
			assert.Equal(t, tc.want.Rows, geo.Rows)
			assert.Equal(t, tc.want.Cols, geo.Cols)
			assert.Equal(t, tc.want.Clamped, geo.Clamped)
			assert.InDelta(t, tc.want.PixelScale, geo.PixelScale, 1e-12)
		})
	}
}

// TestEvaluationGrid builds grids over a circular mask's zoom region, with
// and without clamping, and checks reuse of a marked grid.
func TestEvaluationGrid(t *testing.T) {
	m, err := grid.Circular(100, 100, grid.Square(0.1), 2, grid.Origin{})
	require.NoError(t, err)
	g := grid.FromMask(m)

	core, logs := observer.New(zapcore.Level(-logging.DEBUG))
	op := newOperator(t, sis(1), lensing.WithLogger(logging.NewWithCore(core)))
	eg, err := op.EvaluationGrid(g, 0.05)
	require.NoError(t, err)
	assert.True(t, eg.IsEvaluationGrid)
	rows, cols := eg.ShapeNative()
	assert.Equal(t, [2]int{80, 80}, [2]int{rows, cols})
	assert.InDelta(t, 0.05, eg.PixelScale(), 1e-12)
	assert.Zero(t, logs.Len())

	again, err := op.EvaluationGrid(eg, 0.01)
	require.NoError(t, err)
	assert.Same(t, eg, again)

	capped := newOperator(t, sis(1), lensing.WithMaxEvaluationGridSize(50), lensing.WithLogger(logging.NewWithCore(core)))
	eg, err = capped.EvaluationGrid(g, 0.05)
	require.NoError(t, err)
	rows, cols = eg.ShapeNative()
	assert.Equal(t, [2]int{50, 50}, [2]int{rows, cols})
	assert.InDelta(t, 0.08, eg.PixelScale(), 1e-12)
	assert.Equal(t, 1, logs.FilterMessage("evaluation grid clamped").Len())

	// Offset masks centre the evaluation grid on the zoom region.
	off, err := grid.Circular(100, 100, grid.Square(0.1), 1, grid.Origin{1, -2})
	require.NoError(t, err)
	eg, err = op.EvaluationGrid(grid.FromMask(off), 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, eg.Mask.Origin[0], 1e-9)
	assert.InDelta(t, -2.0, eg.Mask.Origin[1], 1e-9)

	_, err = op.EvaluationGrid(g, 0)
	assert.ErrorIs(t, err, lensing.ErrInvalidPixelScale)

	empty, err := grid.NewMask2D([][]bool{{true, true}, {true, true}}, grid.Square(0.1), grid.Origin{})
	require.NoError(t, err)
	_, err = op.EvaluationGrid(grid.FromMask(empty), 0.05)
	assert.ErrorIs(t, err, grid.ErrFullyMasked)
}

//--------------------------------------------------------------------------------
// critical curves, caustics, Einstein quantities

// TestEinsteinRadius_SIS checks the tangential critical curve of a singular
// isothermal sphere is the circle r = θE.
func TestEinsteinRadius_SIS(t *testing.T) {
	g := uniform(t, 100, 100, 0.05)
	op := newOperator(t, sis(1))

	curves, err := op.TangentialCriticalCurveList(g, 0.05)
	require.NoError(t, err)
	require.Len(t, curves, 1)
	pts := curves[0].Points()
	assert.Equal(t, pts[0], pts[len(pts)-1], "closed curve")
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Hypot(p[0], p[1]), 0.02)
	}

	radius, err := op.EinsteinRadius(g, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, radius, 0.02)

	angular, err := op.EinsteinMassAngular(g, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, angular, 0.1)

	caustics, err := op.TangentialCausticList(g, 0.05)
	require.NoError(t, err)
	require.Len(t, caustics, 1)
	assert.Equal(t, curves[0].Len(), caustics[0].Len())
	for _, p := range caustics[0].Points() {
		assert.InDelta(t, 0.0, math.Hypot(p[0], p[1]), 0.02, "SIS caustic collapses to the centre")
	}
}

// TestRadialCurves_SIS checks an isothermal sphere has no radial critical
// curve when differentiated exactly.
func TestRadialCurves_SIS(t *testing.T) {
	g := uniform(t, 60, 60, 0.05)
	op := newOperator(t, sis(1), lensing.WithBackend(lensing.AutoDiff{}))

	curves, err := op.RadialCriticalCurveList(g, 0.05)
	require.NoError(t, err)
	assert.Empty(t, curves)

	caustics, err := op.RadialCausticList(g, 0.05)
	require.NoError(t, err)
	assert.Empty(t, caustics)

	areas, err := op.RadialCriticalCurveAreaList(g, 0.05)
	require.NoError(t, err)
	assert.Empty(t, areas)

	areas, err = op.TangentialCriticalCurveAreaList(g, 0.05)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.InDelta(t, math.Pi, areas[0], 0.1)
}

// TestEinstein_NoCurve checks every Einstein accessor fails when there is no
// tangential critical curve.
func TestEinstein_NoCurve(t *testing.T) {
	g := uniform(t, 20, 20, 0.1)
	op := newOperator(t, mass.NewGalaxy(mass.MassSheet{Kappa: 0.1}))

	curves, err := op.TangentialCriticalCurveList(g, 0.1)
	require.NoError(t, err)
	assert.Empty(t, curves)

	_, err = op.EinsteinRadiusList(g, 0.1)
	assert.ErrorIs(t, err, lensing.ErrEinsteinRadiusUnavailable)
	_, err = op.EinsteinRadius(g, 0.1)
	assert.ErrorIs(t, err, lensing.ErrEinsteinRadiusUnavailable)
	_, err = op.EinsteinMassAngularList(g, 0.1)
	assert.ErrorIs(t, err, lensing.ErrEinsteinRadiusUnavailable)
	_, err = op.EinsteinMassAngular(g, 0.1)
	assert.ErrorIs(t, err, lensing.ErrEinsteinRadiusUnavailable)
}

// TestEinstein_MultipleCurves checks the radius sums the curves, the mass
// takes the first, and both log a note.
func TestEinstein_MultipleCurves(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gal := mass.NewGalaxy(
		mass.IsothermalSph{Centre: mass.Centre{0, -1.2}, EinsteinRadius: 0.5},
		mass.IsothermalSph{Centre: mass.Centre{0, 1.2}, EinsteinRadius: 0.5},
	)
	op := newOperator(t, gal, lensing.WithLogger(logging.NewWithCore(core)))
	g := uniform(t, 80, 120, 0.05)

	radii, err := op.EinsteinRadiusList(g, 0.05)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(radii), 2)
	masses, err := op.EinsteinMassAngularList(g, 0.05)
	require.NoError(t, err)
	require.Len(t, masses, len(radii))

	sum := 0.0
	for i, r := range radii {
		sum += r
		assert.InDelta(t, math.Pi*r*r, masses[i], 1e-12)
	}
	radius, err := op.EinsteinRadius(g, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, sum, radius, 1e-12)

	first, err := op.EinsteinMassAngular(g, 0.05)
	require.NoError(t, err)
	assert.Equal(t, masses[0], first)

	assert.Equal(t, 2, logs.FilterMessageSnippet("multiple tangential critical curves").Len())
}

// TestAreaWithinCurveList covers a sampled circle and the open-polygon sum.
func TestAreaWithinCurveList(t *testing.T) {
	const n, r = 2000, 2.0
	circle := make([][2]float64, n+1)
	for i := range circle {
		s, c := math.Sincos(2 * math.Pi * float64(i) / n)
		circle[i] = [2]float64{r * s, r * c}
	}
	triangle := [][2]float64{{1, 1}, {3, 1}, {1, 3}}
	closed := append(append([][2]float64{}, triangle...), triangle[0])

	areas := lensing.AreaWithinCurveList([]*grid.Irregular{
		grid.NewIrregular(circle),
		grid.NewIrregular(triangle),
		grid.NewIrregular(closed),
		grid.NewIrregular(nil),
	})
	require.Len(t, areas, 4)
	assert.InEpsilon(t, math.Pi*r*r, areas[0], 1e-4)
	assert.InDelta(t, 3.0, areas[1], 1e-12, "last point is not joined to the first")
	assert.InDelta(t, 2.0, areas[2], 1e-12)
	assert.Zero(t, areas[3])

	assert.Empty(t, lensing.AreaWithinCurveList(nil))
}
