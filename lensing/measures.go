package lensing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lensing/grid"
)

// AreaWithinCurveList returns the area enclosed by each curve with the
// shoelace sum over consecutive points, |½ Σ (y_i·Δx_i − x_i·Δy_i)|, where
// (x_i, y_i) are the two stored coordinates of point i. The last point is not
// joined back to the first; closed marching-squares curves already repeat
// their first point.
func AreaWithinCurveList(curves []*grid.Irregular) []float64 {
	areas := make([]float64, len(curves))
	for k, curve := range curves {
		var sum float64
		for i := 0; i+1 < curve.Len(); i++ {
			x0, y0 := curve.YX(i)
			x1, y1 := curve.YX(i + 1)
			sum += y0*(x1-x0) - x0*(y1-y0)
		}
		areas[k] = math.Abs(0.5 * sum)
	}

	return areas
}

// TangentialCriticalCurveAreaList returns the area within each tangential
// critical curve.
func (o *Operator) TangentialCriticalCurveAreaList(g *grid.Grid2D, pixelScale float64) ([]float64, error) {
	curves, err := o.TangentialCriticalCurveList(g, pixelScale)
	if err != nil {
		return nil, err
	}

	return AreaWithinCurveList(curves), nil
}

// RadialCriticalCurveAreaList returns the area within each radial critical
// curve.
func (o *Operator) RadialCriticalCurveAreaList(g *grid.Grid2D, pixelScale float64) ([]float64, error) {
	curves, err := o.RadialCriticalCurveList(g, pixelScale)
	if err != nil {
		return nil, err
	}

	return AreaWithinCurveList(curves), nil
}

// EinsteinRadiusList returns sqrt(area/π) for each tangential critical curve:
// the radius of the circle with the same area.
// Returns ErrEinsteinRadiusUnavailable when there is no tangential critical
// curve.
func (o *Operator) EinsteinRadiusList(g *grid.Grid2D, pixelScale float64) ([]float64, error) {
	areas, err := o.TangentialCriticalCurveAreaList(g, pixelScale)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("%w: no tangential critical curve on the evaluation grid", ErrEinsteinRadiusUnavailable)
	}
	radii := make([]float64, len(areas))
	for i, a := range areas {
		radii[i] = math.Sqrt(a / math.Pi)
	}

	return radii, nil
}

// EinsteinRadius returns the sum of EinsteinRadiusList. Several tangential
// critical curves are logged at info level since the sum is then not the
// radius of a single curve.
func (o *Operator) EinsteinRadius(g *grid.Grid2D, pixelScale float64) (float64, error) {
	radii, err := o.EinsteinRadiusList(g, pixelScale)
	if err != nil {
		return 0, err
	}
	if len(radii) > 1 {
		o.opts.Logger.Info("multiple tangential critical curves, Einstein radius is their sum",
			"curves", len(radii), "radii", radii)
	}

	return floats.Sum(radii), nil
}

// EinsteinMassAngularList returns π·r² for each entry of EinsteinRadiusList,
// in arcsec².
func (o *Operator) EinsteinMassAngularList(g *grid.Grid2D, pixelScale float64) ([]float64, error) {
	radii, err := o.EinsteinRadiusList(g, pixelScale)
	if err != nil {
		return nil, err
	}
	masses := make([]float64, len(radii))
	for i, r := range radii {
		masses[i] = math.Pi * r * r
	}

	return masses, nil
}

// EinsteinMassAngular returns the first entry of EinsteinMassAngularList.
// Unlike EinsteinRadius it does not sum; several curves are logged at info
// level.
func (o *Operator) EinsteinMassAngular(g *grid.Grid2D, pixelScale float64) (float64, error) {
	masses, err := o.EinsteinMassAngularList(g, pixelScale)
	if err != nil {
		return 0, err
	}
	if len(masses) > 1 {
		o.opts.Logger.Info("multiple tangential critical curves, Einstein mass is that of the first",
			"curves", len(masses), "masses", masses)
	}

	return masses[0], nil
}
