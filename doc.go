// Package lensing is a toolkit for the strong-lensing analysis of mass
// models: derivatives of a deflection-angle field and everything that
// follows from them.
//
// 🚀 What is in the module?
//
//	• Deflection providers: singular isothermal sphere and ellipsoid, point
//	  mass, external shear, mass sheet, summed into a Galaxy or loaded from YAML
//	• Differential operators: Jacobian and Hessian by finite differences or
//	  exact hyper-dual automatic differentiation
//	• Scalar fields: convergence, shear, tangential/radial eigenvalues and
//	  magnification
//	• Critical curves and caustics: marching squares or a grid-free Newton tracer
//	• Measures: enclosed areas, Einstein radius and angular Einstein mass
//
// Under the hood the module is split into focused subpackages:
//
//	autodiff/  dual and hyper-dual numbers
//	grid/      masks, zoom regions, uniform and irregular coordinate grids
//	field/     scalar, deflection and shear fields aligned with a grid
//	convert/   ellipticity and shear parameter conversions
//	mass/      analytic mass profiles and the YAML model loader
//	contour/   marching-squares iso-lines
//	lensing/   the Operator that ties all of the above together
//	config/    viper-backed settings
//	logging/   zap-backed logr loggers
//	metrics/   Prometheus collectors for evaluation counts
//
// Quick example:
//
//	lens := mass.NewGalaxy(mass.IsothermalSph{EinsteinRadius: 1.2})
//	op, _ := lensing.NewOperator(lens)
//	g, _ := grid.Uniform(100, 100, grid.Square(0.05), grid.Origin{})
//	r, _ := op.EinsteinRadius(g, 0.02) // ≈ 1.2
//
// The lensops command (cmd/lensops) exposes the same operations on the
// command line.
package lensing
