package lensing

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
)

// Every method below takes an optional precomputed *Jacobian or *Hessian;
// nil means compute it on g first. A precomputed value must be aligned with g.

// ConvergenceViaJacobian returns κ = 1 − ½(a11 + a22).
func (o *Operator) ConvergenceViaJacobian(g grid.Coordinates, jac *Jacobian) (field.Scalar, error) {
	jac, err := o.jacobian(g, jac)
	if err != nil {
		return field.Scalar{}, err
	}
	k := make([]float64, jac.Len())
	floats.AddTo(k, jac.A11, jac.A22)
	floats.Scale(-0.5, k)
	floats.AddConst(1, k)

	return field.NewScalar(k, jac.Mask), nil
}

// ConvergenceViaHessian returns κ = ½(yy + xx).
func (o *Operator) ConvergenceViaHessian(g grid.Coordinates, h *Hessian) (field.Scalar, error) {
	h, err := o.hessian(g, h)
	if err != nil {
		return field.Scalar{}, err
	}
	k := make([]float64, h.Len())
	floats.AddTo(k, h.YY, h.XX)
	floats.Scale(0.5, k)

	return field.NewScalar(k, h.Mask), nil
}

// ShearViaJacobian returns γ2 = −½(a12 + a21), γ1 = ½(a22 − a11).
func (o *Operator) ShearViaJacobian(g grid.Coordinates, jac *Jacobian) (field.ShearYX, error) {
	jac, err := o.jacobian(g, jac)
	if err != nil {
		return field.ShearYX{}, err
	}
	n := jac.Len()
	s := field.ShearYX{Gamma2: make([]float64, n), Gamma1: make([]float64, n), Mask: jac.Mask}
	floats.AddTo(s.Gamma2, jac.A12, jac.A21)
	floats.Scale(-0.5, s.Gamma2)
	floats.SubTo(s.Gamma1, jac.A22, jac.A11)
	floats.Scale(0.5, s.Gamma1)

	return s, nil
}

// ShearViaHessian returns γ2 = xy, γ1 = ½(xx − yy).
func (o *Operator) ShearViaHessian(g grid.Coordinates, h *Hessian) (field.ShearYX, error) {
	h, err := o.hessian(g, h)
	if err != nil {
		return field.ShearYX{}, err
	}
	n := h.Len()
	s := field.ShearYX{Gamma2: make([]float64, n), Gamma1: make([]float64, n), Mask: h.Mask}
	copy(s.Gamma2, h.XY)
	floats.SubTo(s.Gamma1, h.XX, h.YY)
	floats.Scale(0.5, s.Gamma1)

	return s, nil
}

// TangentialEigenValue returns 1 − κ − |γ|, both via the Jacobian.
func (o *Operator) TangentialEigenValue(g grid.Coordinates, jac *Jacobian) (field.Scalar, error) {
	return o.eigenValue(g, jac, Tangential)
}

// RadialEigenValue returns 1 − κ + |γ|, both via the Jacobian.
func (o *Operator) RadialEigenValue(g grid.Coordinates, jac *Jacobian) (field.Scalar, error) {
	return o.eigenValue(g, jac, Radial)
}

func (o *Operator) eigenValue(g grid.Coordinates, jac *Jacobian, kind CurveKind) (field.Scalar, error) {
	jac, err := o.jacobian(g, jac)
	if err != nil {
		return field.Scalar{}, err
	}
	kappa, err := o.ConvergenceViaJacobian(g, jac)
	if err != nil {
		return field.Scalar{}, err
	}
	shear, err := o.ShearViaJacobian(g, jac)
	if err != nil {
		return field.Scalar{}, err
	}
	sign := -1.0
	if kind == Radial {
		sign = 1
	}
	out := shear.Magnitudes()
	floats.Scale(sign, out)
	floats.Sub(out, kappa.Values)
	floats.AddConst(1, out)

	return field.NewScalar(out, jac.Mask), nil
}

// MagnificationViaJacobian returns 1 / det(A).
func (o *Operator) MagnificationViaJacobian(g grid.Coordinates, jac *Jacobian) (field.Scalar, error) {
	jac, err := o.jacobian(g, jac)
	if err != nil {
		return field.Scalar{}, err
	}
	out := jac.Determinant()
	for i, d := range out {
		out[i] = 1 / d
	}

	return field.NewScalar(out, jac.Mask), nil
}

// MagnificationViaHessian returns 1 / [(1 − xx)(1 − yy) − xy·yx].
func (o *Operator) MagnificationViaHessian(g grid.Coordinates, h *Hessian) (field.Scalar, error) {
	h, err := o.hessian(g, h)
	if err != nil {
		return field.Scalar{}, err
	}
	out := make([]float64, h.Len())
	for i := range out {
		out[i] = 1 / ((1-h.XX[i])*(1-h.YY[i]) - h.XY[i]*h.YX[i])
	}

	return field.NewScalar(out, h.Mask), nil
}

// ShearMagnitudeAndAngle is a convenience over ShearViaHessian for irregular
// point sets: per-point |γ| and angle in degrees.
func (o *Operator) ShearMagnitudeAndAngle(g grid.Coordinates, h *Hessian) (magnitude, angle []float64, err error) {
	s, err := o.ShearViaHessian(g, h)
	if err != nil {
		return nil, nil, err
	}

	return s.Magnitudes(), s.Angles(), nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
