package lensing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lensing/autodiff"
	"github.com/katalvlaran/lensing/grid"
)

// NewtonOptions seeds and bounds the Newton critical-curve tracer.
//
// InitR     – radius of the ring of seed points (arc-seconds), > 0.
// InitCentre – (y, x) centre of the ring.
// NPoints   – seed points, evenly spaced in angle, ≥ 1.
// NSteps    – Newton iterations per point, ≥ 0.
// Threshold – points whose |eigenvalue| exceeds this after NSteps are dropped.
type NewtonOptions struct {
	InitR      float64
	InitCentre [2]float64
	NPoints    int
	NSteps     int
	Threshold  float64
}

// DefaultNewtonOptions returns the defaults for kind: a 0.1" ring for
// tangential curves, 0.01" for radial ones, 300 points, 20 steps, 1e-5.
func DefaultNewtonOptions(kind CurveKind) NewtonOptions {
	initR := 0.1
	if kind == Radial {
		initR = 0.01
	}

	return NewtonOptions{
		InitR:     initR,
		NPoints:   300,
		NSteps:    20,
		Threshold: 1e-5,
	}
}

func (o NewtonOptions) validate() error {
	switch {
	case !(o.InitR > 0) || math.IsInf(o.InitR, 0):
		return fmt.Errorf("%w: InitR=%g", ErrInvalidNewtonOptions, o.InitR)
	case o.NPoints < 1:
		return fmt.Errorf("%w: NPoints=%d", ErrInvalidNewtonOptions, o.NPoints)
	case o.NSteps < 0:
		return fmt.Errorf("%w: NSteps=%d", ErrInvalidNewtonOptions, o.NSteps)
	case !(o.Threshold >= 0):
		return fmt.Errorf("%w: Threshold=%g", ErrInvalidNewtonOptions, o.Threshold)
	}

	return nil
}

// eigenValueAlongRay returns the eigenvalue of kind at (y, x) as a Dual whose
// derivative is taken along the unit direction (sinθ, cosθ).
func eigenValueAlongRay(d HyperDualDeflector, kind CurveKind, y, x, sin, cos float64) autodiff.Dual {
	ayA, axA := d.DeflectionsHyperDual(autodiff.Seed(y, 1, sin), autodiff.Seed(x, 0, cos))
	ayB, axB := d.DeflectionsHyperDual(autodiff.Seed(y, 0, sin), autodiff.Seed(x, 1, cos))
	yy, xy := ayA.Partial1(), axA.Partial1()
	yx, xx := ayB.Partial1(), axB.Partial1()

	kappa := yy.Add(xx).Scale(0.5)
	cross, diff := yx.Add(xy), yy.Sub(xx)
	gamma := cross.Mul(cross).Add(diff.Mul(diff)).Sqrt().Scale(0.5)

	f := autodiff.Const(1).Sub(kappa)
	if kind == Radial {
		return f.Add(gamma)
	}

	return f.Sub(gamma)
}

// newtonTrace moves each seed point along its ray with r ← |r − f/f'|, then
// keeps the finite points whose |f| is within the threshold.
func newtonTrace(d HyperDualDeflector, kind CurveKind, opts NewtonOptions) *grid.Irregular {
	cy, cx := opts.InitCentre[0], opts.InitCentre[1]
	kept := make([][2]float64, 0, opts.NPoints)
	for i := 0; i < opts.NPoints; i++ {
		theta := 2 * math.Pi * float64(i) / float64(opts.NPoints)
		sin, cos := math.Sincos(theta)
		r := opts.InitR
		for step := 0; step < opts.NSteps; step++ {
			f := eigenValueAlongRay(d, kind, r*sin+cy, r*cos+cx, sin, cos)
			r = math.Abs(r - f.V/f.D)
		}
		y, x := r*sin+cy, r*cos+cx
		if math.IsNaN(y) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		f := eigenValueAlongRay(d, kind, y, x, sin, cos)
		if math.Abs(f.V) <= opts.Threshold {
			kept = append(kept, [2]float64{y, x})
		}
	}

	return grid.NewIrregular(kept)
}
