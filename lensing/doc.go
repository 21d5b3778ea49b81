// Package lensing derives second-order lensing quantities from any object
// that produces a deflection-angle field, and the critical curves, caustics
// and Einstein radius that follow from them.
//
// What:
//
//   - Jacobian A = I − ∂α/∂θ and Hessian ∂α/∂θ of the deflection field,
//     through a DifferentialBackend chosen once per Operator:
//     FiniteDifference (gradient on uniform grids, four-point symmetric
//     differences on any grid) or AutoDiff (exact, hyper-dual numbers).
//   - Convergence, shear, tangential/radial eigenvalues and magnification,
//     each via the Jacobian and, where defined, via the Hessian.
//   - Evaluation grids: uniform grids over a mask's zoom region at a
//     requested resolution, capped at a maximum side length.
//   - Critical curves by marching squares on the eigenvalue fields, caustics
//     by ray-tracing them, enclosed areas, Einstein radius and angular mass.
//   - A grid-free Newton tracer for critical points (AutoDiff only).
//
// Conventions:
//
//   - Coordinates and deflections are (y, x) in arc-seconds.
//   - Shear is stored γ2 first, γ1 second (field.ShearYX).
//   - Methods accepting a *Jacobian or *Hessian use it when non-nil instead
//     of recomputing it, so several quantities can share one derivative pass.
//   - Fields carry the mask of the grid they were computed on.
//
// Complexity:
//
//   - Gradient Jacobian: one deflection evaluation over the grid.
//   - Finite-difference Hessian: four deflection evaluations over the grid.
//   - Critical curves: one Jacobian plus O(rows×cols) marching squares on an
//     evaluation grid of at most MaxEvaluationGridSize² pixels.
//   - Newton tracer: 2·NPoints·(NSteps+1) hyper-dual evaluations.
//
// Errors:
//
//   - grid.ErrShape: gradient Jacobian on an irregular or sub-2×2 grid.
//   - ErrInvalidBuffer, ErrInvalidGridSize, ErrInvalidPixelScale,
//     ErrInvalidNewtonOptions: out-of-range parameters.
//   - ErrAutoDiffUnavailable: Newton tracer or AutoDiff backend without
//     hyper-dual support; check SupportsAutoDiff.
//   - ErrEinsteinRadiusUnavailable: no tangential critical curve.
//   - Errors from the Deflector are wrapped and returned.
//
// NaN and ±Inf in intermediate fields are not errors: they propagate to the
// output as "undefined at that coordinate". Only the Newton tracer filters
// them.
package lensing
