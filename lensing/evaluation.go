package lensing

import (
	"fmt"

	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/logging"
)

// EvaluationGeometry is the shape and pixel scale of an evaluation grid.
type EvaluationGeometry struct {
	Rows, Cols int
	PixelScale float64
	Clamped    bool
}

// EvaluationGridGeometry scales a zoom region of zoomRows×zoomCols pixels of
// size gridPixelScale to the requested pixelScale. When either side would
// exceed maxSize the grid becomes maxSize×maxSize with the pixel scale
// enlarged so that it spans the longer side of the zoom region. Sides never
// drop below 2 pixels.
func EvaluationGridGeometry(zoomRows, zoomCols int, gridPixelScale, pixelScale float64, maxSize int) EvaluationGeometry {
	ratio := gridPixelScale / pixelScale
	geo := EvaluationGeometry{
		Rows:       max(int(ratio*float64(zoomRows)), 2),
		Cols:       max(int(ratio*float64(zoomCols)), 2),
		PixelScale: pixelScale,
	}
	if geo.Rows > maxSize || geo.Cols > maxSize {
		geo.PixelScale = float64(max(zoomRows, zoomCols)) * gridPixelScale / float64(maxSize)
		geo.Rows, geo.Cols = maxSize, maxSize
		geo.Clamped = true
	}

	return geo
}

// EvaluationGrid returns a uniform grid covering the zoom region of g's mask
// at pixelScale, capped by the operator's maximum evaluation grid size and
// centred on the zoom offset. A grid already marked IsEvaluationGrid is
// returned unchanged.
// Returns ErrInvalidPixelScale, or grid.ErrFullyMasked if g has no unmasked
// pixel.
// Complexity: O(rows×cols) of g plus of the new grid.
func (o *Operator) EvaluationGrid(g *grid.Grid2D, pixelScale float64) (*grid.Grid2D, error) {
	if g.IsEvaluationGrid {
		return g, nil
	}
	if !(pixelScale > 0) || !isFinite(pixelScale) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidPixelScale, pixelScale)
	}
	zoomRows, zoomCols, err := g.Mask.ZoomShapeNative()
	if err != nil {
		return nil, fmt.Errorf("lensing: evaluation grid: %w", err)
	}
	oy, ox, err := g.Mask.ZoomOffsetScaled()
	if err != nil {
		return nil, fmt.Errorf("lensing: evaluation grid: %w", err)
	}

	geo := EvaluationGridGeometry(zoomRows, zoomCols, g.PixelScale(), pixelScale, o.opts.MaxEvaluationGridSize)
	if geo.Clamped {
		o.opts.Logger.V(logging.DEBUG).Info("evaluation grid clamped",
			"requestedPixelScale", pixelScale,
			"pixelScale", geo.PixelScale,
			"shape", [2]int{geo.Rows, geo.Cols},
			"max", o.opts.MaxEvaluationGridSize)
	}
	eg, err := grid.Uniform(geo.Rows, geo.Cols, grid.Square(geo.PixelScale), grid.Origin{oy, ox})
	if err != nil {
		return nil, fmt.Errorf("lensing: evaluation grid: %w", err)
	}
	eg.IsEvaluationGrid = true
	o.opts.Metrics.EvaluationGridBuilt(geo.Rows, geo.Cols, geo.Clamped)

	return eg, nil
}
