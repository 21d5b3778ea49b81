package lensing

import "errors"

var (
	// ErrNilDeflector indicates NewOperator was given no deflection provider.
	ErrNilDeflector = errors.New("lensing: nil deflector")

	// ErrInvalidBuffer indicates a Hessian step that is not finite and > 0.
	ErrInvalidBuffer = errors.New("lensing: hessian buffer must be finite and > 0")

	// ErrInvalidGridSize indicates a maximum evaluation grid size below 2.
	ErrInvalidGridSize = errors.New("lensing: max evaluation grid size must be at least 2")

	// ErrInvalidPixelScale indicates an evaluation pixel scale that is not finite and > 0.
	ErrInvalidPixelScale = errors.New("lensing: evaluation pixel scale must be finite and > 0")

	// ErrUnknownBackend indicates a backend name BackendByName does not know.
	ErrUnknownBackend = errors.New("lensing: unknown differential backend")

	// ErrAutoDiffUnavailable is the disabled-feature signal: the backend or the
	// deflector cannot differentiate automatically. Check SupportsAutoDiff first.
	ErrAutoDiffUnavailable = errors.New("lensing: automatic differentiation unavailable")

	// ErrEinsteinRadiusUnavailable indicates no tangential critical curve was
	// found, so no Einstein radius or mass is defined.
	ErrEinsteinRadiusUnavailable = errors.New("lensing: unable to estimate Einstein radius")

	// ErrLengthMismatch indicates a precomputed Jacobian or Hessian that is not
	// aligned with the grid it is used with.
	ErrLengthMismatch = errors.New("lensing: precomputed field length does not match grid")

	// ErrInvalidNewtonOptions indicates NewtonOptions out of range.
	ErrInvalidNewtonOptions = errors.New("lensing: invalid Newton options")
)
