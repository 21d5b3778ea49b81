package lensing

import (
	"fmt"

	"github.com/katalvlaran/lensing/grid"
)

// Backend names.
const (
	BackendFiniteDifference = "finite-difference"
	BackendAutoDiff         = "autodiff"
)

// DifferentialBackend computes derivatives of a deflection field. An
// Operator selects one backend at construction and uses it for every call.
type DifferentialBackend interface {
	// Name identifies the backend in logs and configuration.
	Name() string
	// Jacobian returns the lensing Jacobian of d on g.
	Jacobian(d Deflector, g grid.Coordinates) (*Jacobian, error)
	// Hessian returns the deflection-field Hessian of d on g. buffer is the
	// finite-difference step where the backend needs one.
	Hessian(d Deflector, g grid.Coordinates, buffer float64) (*Hessian, error)
	// NewtonTrace returns the critical-curve points of kind found by the
	// radial Newton tracer.
	NewtonTrace(d Deflector, kind CurveKind, opts NewtonOptions) (*grid.Irregular, error)
}

// FiniteDifference differentiates numerically. Its Jacobian needs a uniform
// grid unless the deflector is a JacobianProvider; its Hessian works on any
// grid. It cannot trace critical curves with Newton's method.
type FiniteDifference struct{}

// Name returns BackendFiniteDifference.
func (FiniteDifference) Name() string { return BackendFiniteDifference }

// Jacobian uses the deflector's analytic Jacobian when it has one, otherwise
// JacobianFromGradient.
func (FiniteDifference) Jacobian(d Deflector, g grid.Coordinates) (*Jacobian, error) {
	if p, ok := asCapability[JacobianProvider](d); ok {
		jac, err := p.Jacobian(g)
		if err != nil {
			return nil, fmt.Errorf("lensing: analytic Jacobian: %w", err)
		}
		return jac, nil
	}

	return JacobianFromGradient(d, g)
}

// Hessian is HessianFrom over d.Deflections.
func (FiniteDifference) Hessian(d Deflector, g grid.Coordinates, buffer float64) (*Hessian, error) {
	return HessianFrom(d.Deflections, g, buffer)
}

// NewtonTrace always returns ErrAutoDiffUnavailable.
func (FiniteDifference) NewtonTrace(Deflector, CurveKind, NewtonOptions) (*grid.Irregular, error) {
	return nil, fmt.Errorf("%w: backend %s", ErrAutoDiffUnavailable, BackendFiniteDifference)
}

// AutoDiff differentiates exactly with hyper-dual numbers, point by point,
// on uniform or irregular grids. The deflector must be a HyperDualDeflector.
type AutoDiff struct{}

// Name returns BackendAutoDiff.
func (AutoDiff) Name() string { return BackendAutoDiff }

func hyperDual(d Deflector) (HyperDualDeflector, error) {
	hd, ok := asCapability[HyperDualDeflector](d)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no hyper-dual deflections", ErrAutoDiffUnavailable, d)
	}

	return hd, nil
}

// Jacobian returns JacobianFromAutoDiff.
func (AutoDiff) Jacobian(d Deflector, g grid.Coordinates) (*Jacobian, error) {
	hd, err := hyperDual(d)
	if err != nil {
		return nil, err
	}

	return JacobianFromAutoDiff(hd, g), nil
}

// Hessian returns HessianFromAutoDiff; buffer is ignored.
func (AutoDiff) Hessian(d Deflector, g grid.Coordinates, _ float64) (*Hessian, error) {
	hd, err := hyperDual(d)
	if err != nil {
		return nil, err
	}

	return HessianFromAutoDiff(hd, g), nil
}

// NewtonTrace runs the radial Newton tracer.
func (AutoDiff) NewtonTrace(d Deflector, kind CurveKind, opts NewtonOptions) (*grid.Irregular, error) {
	hd, err := hyperDual(d)
	if err != nil {
		return nil, err
	}
	if err = opts.validate(); err != nil {
		return nil, err
	}

	return newtonTrace(hd, kind, opts), nil
}

// BackendByName returns the backend called name.
// Returns ErrUnknownBackend otherwise.
func BackendByName(name string) (DifferentialBackend, error) {
	switch name {
	case BackendFiniteDifference:
		return FiniteDifference{}, nil
	case BackendAutoDiff:
		return AutoDiff{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
