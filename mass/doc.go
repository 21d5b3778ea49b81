// Package mass provides closed-form deflection providers used to drive and
// validate the lensing operators: singular isothermal sphere and ellipsoid,
// point mass, external shear and a uniform mass sheet, plus Galaxy, which
// sums any number of them.
//
// Every profile evaluates deflection angles in arc-seconds at a single (y,x)
// coordinate, in plain float64 and in hyper-dual arithmetic; the latter makes
// a Galaxy usable by the automatic-differentiation backend of package
// lensing. Profiles that also have a closed-form convergence implement
// ConvergenceProfile.
//
// Coordinates closer to a profile centre than RadialMinimum are evaluated at
// RadialMinimum so that central pixels never produce 0/0.
//
// LoadModel reads a Galaxy from a YAML document of the form
//
//	profiles:
//	  - type: isothermal_sph
//	    centre: [0.0, 0.0]
//	    einstein_radius: 1.2
//	  - type: external_shear
//	    gamma_1: 0.05
//	    gamma_2: -0.02
package mass
