package lensing

import (
	"fmt"

	"github.com/katalvlaran/lensing/contour"
	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/logging"
)

// TangentialCriticalCurveList returns one ordered point sequence per
// tangential critical curve found by marching squares on the evaluation grid
// of g (see EvaluationGrid). Closed curves repeat their first point at the
// end. No curve found yields an empty list.
func (o *Operator) TangentialCriticalCurveList(g *grid.Grid2D, pixelScale float64) ([]*grid.Irregular, error) {
	return o.criticalCurveList(g, pixelScale, Tangential)
}

// RadialCriticalCurveList is TangentialCriticalCurveList for the radial
// eigenvalue.
func (o *Operator) RadialCriticalCurveList(g *grid.Grid2D, pixelScale float64) ([]*grid.Irregular, error) {
	return o.criticalCurveList(g, pixelScale, Radial)
}

func (o *Operator) criticalCurveList(g *grid.Grid2D, pixelScale float64, kind CurveKind) ([]*grid.Irregular, error) {
	eg, err := o.EvaluationGrid(g, pixelScale)
	if err != nil {
		return nil, err
	}
	eigen, err := o.eigenValue(eg, nil, kind)
	if err != nil {
		return nil, fmt.Errorf("lensing: %s eigenvalue: %w", kind, err)
	}
	native, err := eigen.NativeUnmasked()
	if err != nil {
		return nil, fmt.Errorf("lensing: %s eigenvalue: %w", kind, err)
	}

	lines := contour.Find(native, 0)
	curves := make([]*grid.Irregular, 0, len(lines))
	for _, line := range lines {
		pts := make([][2]float64, len(line))
		for i, p := range line {
			pts[i][0], pts[i][1] = eg.Mask.ScaledFromPixel(p[0], p[1])
		}
		curves = append(curves, grid.NewIrregular(pts))
	}
	o.opts.Metrics.CriticalCurvesFound(kind.String(), len(curves))

	return curves, nil
}

// TangentialCausticList maps each tangential critical curve to the source
// plane, β = θ − α(θ), keeping the curve order.
func (o *Operator) TangentialCausticList(g *grid.Grid2D, pixelScale float64) ([]*grid.Irregular, error) {
	curves, err := o.TangentialCriticalCurveList(g, pixelScale)
	if err != nil {
		return nil, err
	}

	return o.CausticsFrom(curves)
}

// RadialCausticList maps each radial critical curve to the source plane.
func (o *Operator) RadialCausticList(g *grid.Grid2D, pixelScale float64) ([]*grid.Irregular, error) {
	curves, err := o.RadialCriticalCurveList(g, pixelScale)
	if err != nil {
		return nil, err
	}

	return o.CausticsFrom(curves)
}

// CausticsFrom ray-traces already computed critical curves, including the
// point clouds of the Newton tracer.
func (o *Operator) CausticsFrom(curves []*grid.Irregular) ([]*grid.Irregular, error) {
	caustics := make([]*grid.Irregular, 0, len(curves))
	for i, curve := range curves {
		def, err := o.deflector.Deflections(curve)
		if err != nil {
			return nil, fmt.Errorf("lensing: caustic %d: %w", i, err)
		}
		caustic, err := grid.Subtract(curve, def.Y, def.X)
		if err != nil {
			return nil, fmt.Errorf("lensing: caustic %d: %w", i, err)
		}
		caustics = append(caustics, caustic)
	}

	return caustics, nil
}

// TangentialCriticalCurveNewton traces tangential critical points with the
// radial Newton tracer. The result is an unordered point cloud, not a closed
// contour.
// Returns ErrAutoDiffUnavailable unless SupportsAutoDiff.
func (o *Operator) TangentialCriticalCurveNewton(opts NewtonOptions) (*grid.Irregular, error) {
	return o.newton(Tangential, opts)
}

// RadialCriticalCurveNewton is TangentialCriticalCurveNewton for the radial
// eigenvalue.
func (o *Operator) RadialCriticalCurveNewton(opts NewtonOptions) (*grid.Irregular, error) {
	return o.newton(Radial, opts)
}

func (o *Operator) newton(kind CurveKind, opts NewtonOptions) (*grid.Irregular, error) {
	pts, err := o.opts.Backend.NewtonTrace(o.deflector, kind, opts)
	if err != nil {
		return nil, err
	}
	o.opts.Metrics.NewtonPoints(pts.Len(), opts.NPoints-pts.Len())
	o.opts.Logger.V(logging.DEBUG).Info("newton trace", "kind", kind.String(), "kept", pts.Len(), "seeds", opts.NPoints)

	return pts, nil
}
