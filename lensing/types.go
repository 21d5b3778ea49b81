package lensing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lensing/autodiff"
	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
)

// Deflector produces deflection angles (arc-seconds) at every coordinate of a
// grid, aligned index-by-index with it.
type Deflector interface {
	Deflections(g grid.Coordinates) (field.VectorYX, error)
}

// DeflectionFunc adapts a function to Deflector.
type DeflectionFunc func(g grid.Coordinates) (field.VectorYX, error)

// Deflections calls f(g).
func (f DeflectionFunc) Deflections(g grid.Coordinates) (field.VectorYX, error) {
	return f(g)
}

// HyperDualDeflector can also evaluate its deflection at a single coordinate
// in hyper-dual arithmetic, which enables the AutoDiff backend and the Newton
// critical-curve tracer.
type HyperDualDeflector interface {
	Deflector
	DeflectionsHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual)
}

// JacobianProvider supplies an analytic lensing Jacobian that replaces the
// finite-difference one.
type JacobianProvider interface {
	Jacobian(g grid.Coordinates) (*Jacobian, error)
}

// asCapability finds a T in d or in any Deflector it wraps.
func asCapability[T any](d Deflector) (T, bool) {
	for d != nil {
		if t, ok := d.(T); ok {
			return t, true
		}
		u, ok := d.(interface{ Unwrap() Deflector })
		if !ok {
			break
		}
		d = u.Unwrap()
	}
	var zero T

	return zero, false
}

// CurveKind selects the tangential or radial eigenvalue.
type CurveKind int

const (
	Tangential CurveKind = iota
	Radial
)

func (k CurveKind) String() string {
	if k == Radial {
		return "radial"
	}

	return "tangential"
}

// Jacobian is the lensing Jacobian A = I − ∂α/∂θ as four aligned fields:
//
//	A11 = 1 − ∂αx/∂x   A12 = −∂αx/∂y
//	A21 = −∂αy/∂x      A22 = 1 − ∂αy/∂y
//
// Mask is the mask of the grid it was computed on, nil for irregular grids.
type Jacobian struct {
	A11, A12, A21, A22 []float64
	Mask               *grid.Mask2D
}

func newJacobian(n int, mask *grid.Mask2D) *Jacobian {
	return &Jacobian{
		A11:  make([]float64, n),
		A12:  make([]float64, n),
		A21:  make([]float64, n),
		A22:  make([]float64, n),
		Mask: mask,
	}
}

// Len returns the number of coordinates.
func (j *Jacobian) Len() int {
	return len(j.A11)
}

// Determinant returns a11·a22 − a12·a21 per coordinate.
func (j *Jacobian) Determinant() []float64 {
	out := make([]float64, j.Len())
	for i := range out {
		out[i] = j.A11[i]*j.A22[i] - j.A12[i]*j.A21[i]
	}

	return out
}

// MatrixAt returns the 2×2 Jacobian at coordinate i.
func (j *Jacobian) MatrixAt(i int) *mat.Dense {
	return mat.NewDense(2, 2, []float64{j.A11[i], j.A12[i], j.A21[i], j.A22[i]})
}

// Hessian holds the four partial derivatives of the deflection field:
// YY = ∂αy/∂y, XY = ∂αx/∂y, YX = ∂αy/∂x, XX = ∂αx/∂x.
type Hessian struct {
	YY, XY, YX, XX []float64
	Mask           *grid.Mask2D
}

func newHessian(n int, mask *grid.Mask2D) *Hessian {
	return &Hessian{
		YY:   make([]float64, n),
		XY:   make([]float64, n),
		YX:   make([]float64, n),
		XX:   make([]float64, n),
		Mask: mask,
	}
}

// Len returns the number of coordinates.
func (h *Hessian) Len() int {
	return len(h.YY)
}

func maskOf(g grid.Coordinates) *grid.Mask2D {
	if u, ok := g.(*grid.Grid2D); ok {
		return u.Mask
	}

	return nil
}
