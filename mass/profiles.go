package mass

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lensing/autodiff"
	"github.com/katalvlaran/lensing/convert"
)

// IsothermalSph is a singular isothermal sphere: α = θE·r̂, κ = θE/(2r).
type IsothermalSph struct {
	Centre         Centre
	EinsteinRadius float64
}

func (p IsothermalSph) DeflectionYX(y, x float64) (float64, float64) {
	dy, dx := y-p.Centre[0], x-p.Centre[1]
	r := radius(dy, dx)

	return p.EinsteinRadius * dy / r, p.EinsteinRadius * dx / r
}

func (p IsothermalSph) DeflectionHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual) {
	dy, dx := y.AddConst(-p.Centre[0]), x.AddConst(-p.Centre[1])
	inv := radiusHD(dy, dx).Recip().Scale(p.EinsteinRadius)

	return dy.Mul(inv), dx.Mul(inv)
}

func (p IsothermalSph) ConvergenceYX(y, x float64) float64 {
	return p.EinsteinRadius / (2 * radius(y-p.Centre[0], x-p.Centre[1]))
}

// Isothermal is a singular isothermal ellipsoid parameterised by elliptical
// components. Near-circular ellipsoids fall back to IsothermalSph.
type Isothermal struct {
	Centre         Centre
	EllComps       [2]float64
	EinsteinRadius float64
}

// circularLimit is the axis ratio above which the SIE is treated as circular.
const circularLimit = 0.99999

func (p Isothermal) geometry() (q, sinPhi, cosPhi, factor float64) {
	q, angle := convert.AxisRatioAndAngleFrom(p.EllComps[0], p.EllComps[1])
	sinPhi, cosPhi = math.Sincos(angle * math.Pi / 180)
	rescaled := p.EinsteinRadius / (1 + q)
	factor = 2 * rescaled * q / math.Sqrt(1-q*q)

	return q, sinPhi, cosPhi, factor
}

func (p Isothermal) DeflectionYX(y, x float64) (float64, float64) {
	q, s, c, factor := p.geometry()
	if q > circularLimit {
		return IsothermalSph{Centre: p.Centre, EinsteinRadius: p.EinsteinRadius}.DeflectionYX(y, x)
	}
	dy, dx := y-p.Centre[0], x-p.Centre[1]
	ry := -dx*s + dy*c
	rx := dx*c + dy*s
	psi := math.Max(math.Sqrt(q*q*rx*rx+ry*ry), RadialMinimum)
	e := math.Sqrt(1 - q*q)
	ay := factor * math.Atanh(e*ry/psi)
	ax := factor * math.Atan(e*rx/psi)

	return ay*c + ax*s, ax*c - ay*s
}

func (p Isothermal) DeflectionHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual) {
	q, s, c, factor := p.geometry()
	if q > circularLimit {
		return IsothermalSph{Centre: p.Centre, EinsteinRadius: p.EinsteinRadius}.DeflectionHyperDual(y, x)
	}
	dy, dx := y.AddConst(-p.Centre[0]), x.AddConst(-p.Centre[1])
	ry := dx.Scale(-s).Add(dy.Scale(c))
	rx := dx.Scale(c).Add(dy.Scale(s))
	psi := autodiff.Hypot(rx.Scale(q), ry)
	if psi.Re < RadialMinimum {
		psi.Re = RadialMinimum
	}
	e := math.Sqrt(1 - q*q)
	inv := psi.Recip().Scale(e)
	ay := ry.Mul(inv).Atanh().Scale(factor)
	ax := rx.Mul(inv).Atan().Scale(factor)

	return ay.Scale(c).Add(ax.Scale(s)), ax.Scale(c).Sub(ay.Scale(s))
}

// ConvergenceYX returns κ = θE·q / ((1+q)·ψ) with ψ the elliptical radius.
func (p Isothermal) ConvergenceYX(y, x float64) float64 {
	q, s, c, _ := p.geometry()
	if q > circularLimit {
		return IsothermalSph{Centre: p.Centre, EinsteinRadius: p.EinsteinRadius}.ConvergenceYX(y, x)
	}
	dy, dx := y-p.Centre[0], x-p.Centre[1]
	ry := -dx*s + dy*c
	rx := dx*c + dy*s
	psi := math.Max(math.Sqrt(q*q*rx*rx+ry*ry), RadialMinimum)

	return p.EinsteinRadius * q / ((1 + q) * psi)
}

// PointMass deflects as α = θE²·r̂/r.
type PointMass struct {
	Centre         Centre
	EinsteinRadius float64
}

func (p PointMass) DeflectionYX(y, x float64) (float64, float64) {
	dy, dx := y-p.Centre[0], x-p.Centre[1]
	r := radius(dy, dx)
	k := p.EinsteinRadius * p.EinsteinRadius / (r * r)

	return k * dy, k * dx
}

func (p PointMass) DeflectionHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual) {
	dy, dx := y.AddConst(-p.Centre[0]), x.AddConst(-p.Centre[1])
	r := radiusHD(dy, dx)
	k := r.Square().Recip().Scale(p.EinsteinRadius * p.EinsteinRadius)

	return dy.Mul(k), dx.Mul(k)
}

func (p PointMass) ConvergenceYX(float64, float64) float64 {
	return 0
}

// ExternalShear is the potential ψ = ½γ1(x²−y²) + γ2·x·y about the origin.
type ExternalShear struct {
	Gamma1, Gamma2 float64
}

func (p ExternalShear) DeflectionYX(y, x float64) (float64, float64) {
	return p.Gamma2*x - p.Gamma1*y, p.Gamma1*x + p.Gamma2*y
}

func (p ExternalShear) DeflectionHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual) {
	return x.Scale(p.Gamma2).Sub(y.Scale(p.Gamma1)), x.Scale(p.Gamma1).Add(y.Scale(p.Gamma2))
}

func (p ExternalShear) ConvergenceYX(float64, float64) float64 {
	return 0
}

// MagnitudeAndAngle returns the shear magnitude and angle in degrees.
func (p ExternalShear) MagnitudeAndAngle() (float64, float64) {
	return convert.ShearMagnitudeAndAngleFrom(p.Gamma1, p.Gamma2)
}

// MassSheet is a uniform convergence κ: α = κ·(y, x) about its centre.
type MassSheet struct {
	Centre Centre
	Kappa  float64
}

func (p MassSheet) DeflectionYX(y, x float64) (float64, float64) {
	return p.Kappa * (y - p.Centre[0]), p.Kappa * (x - p.Centre[1])
}

func (p MassSheet) DeflectionHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual) {
	return y.AddConst(-p.Centre[0]).Scale(p.Kappa), x.AddConst(-p.Centre[1]).Scale(p.Kappa)
}

func (p MassSheet) ConvergenceYX(float64, float64) float64 {
	return p.Kappa
}

func validateEinsteinRadius(name string, r float64) error {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: %s einstein_radius=%g", ErrBadParameter, name, r)
	}

	return nil
}
