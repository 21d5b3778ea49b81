package mass

import (
	"errors"
	"math"

	"github.com/katalvlaran/lensing/autodiff"
)

// RadialMinimum is the smallest radius (arc-seconds) a profile is evaluated at.
const RadialMinimum = 1e-8

var (
	// ErrUnknownProfile indicates a model entry with an unrecognised type.
	ErrUnknownProfile = errors.New("mass: unknown profile type")
	// ErrBadParameter indicates a profile parameter outside its valid range.
	ErrBadParameter = errors.New("mass: invalid profile parameter")
	// ErrNoConvergence indicates a profile without a closed-form convergence.
	ErrNoConvergence = errors.New("mass: profile has no closed-form convergence")
)

// Profile is a mass distribution that deflects light.
type Profile interface {
	// DeflectionYX returns the (y, x) deflection angle at (y, x).
	DeflectionYX(y, x float64) (float64, float64)
	// DeflectionHyperDual evaluates the same deflection in hyper-dual arithmetic.
	DeflectionHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual)
}

// ConvergenceProfile is a Profile with a closed-form convergence.
type ConvergenceProfile interface {
	Profile
	ConvergenceYX(y, x float64) float64
}

// Centre is the (y, x) centre of a profile in arc-seconds.
type Centre [2]float64

func radius(dy, dx float64) float64 {
	r := dy*dy + dx*dx
	if r < RadialMinimum*RadialMinimum {
		return RadialMinimum
	}

	return math.Sqrt(r)
}

func radiusHD(dy, dx autodiff.HyperDual) autodiff.HyperDual {
	r := autodiff.Hypot(dy, dx)
	if r.Re < RadialMinimum {
		r.Re = RadialMinimum
	}

	return r
}
