package convert

import "math"

// MaxEllipticalFactor caps sqrt(ellY²+ellX²) to keep the axis ratio physical.
const MaxEllipticalFactor = 0.999

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// EllCompsFrom returns the elliptical components (ellY, ellX) for an axis
// ratio and a position angle in degrees.
func EllCompsFrom(axisRatio, angle float64) (ellY, ellX float64) {
	fac := (1 - axisRatio) / (1 + axisRatio)
	s, c := math.Sincos(2 * angle * degToRad)

	return fac * s, fac * c
}

// AxisRatioAndAngleFrom returns the axis ratio and position angle in degrees,
// in (-45, 135], for elliptical components (ellY, ellX). The elliptical factor
// is clamped at MaxEllipticalFactor.
func AxisRatioAndAngleFrom(ellY, ellX float64) (axisRatio, angle float64) {
	angle = math.Atan2(ellY, ellX) / 2 * radToDeg
	if angle <= -45 {
		angle += 180
	}
	fac := math.Min(math.Hypot(ellY, ellX), MaxEllipticalFactor)

	return (1 - fac) / (1 + fac), angle
}

// AxisRatioFrom returns only the axis ratio of AxisRatioAndAngleFrom.
func AxisRatioFrom(ellY, ellX float64) float64 {
	q, _ := AxisRatioAndAngleFrom(ellY, ellX)
	return q
}

// AngleFrom returns only the angle of AxisRatioAndAngleFrom.
func AngleFrom(ellY, ellX float64) float64 {
	_, a := AxisRatioAndAngleFrom(ellY, ellX)
	return a
}

// ShearGamma12From returns (γ1, γ2) for a shear magnitude and angle in degrees.
func ShearGamma12From(magnitude, angle float64) (gamma1, gamma2 float64) {
	s, c := math.Sincos(2 * angle * degToRad)

	return magnitude * c, magnitude * s
}

// ShearMagnitudeAndAngleFrom returns the shear magnitude and its angle in
// degrees, in [0, 180).
func ShearMagnitudeAndAngleFrom(gamma1, gamma2 float64) (magnitude, angle float64) {
	angle = math.Atan2(gamma2, gamma1) / 2 * radToDeg
	if angle < 0 {
		angle += 180
	}

	return math.Hypot(gamma1, gamma2), angle
}

// ShearMagnitudeFrom returns sqrt(γ1²+γ2²).
func ShearMagnitudeFrom(gamma1, gamma2 float64) float64 {
	return math.Hypot(gamma1, gamma2)
}

// ShearAngleFrom returns only the angle of ShearMagnitudeAndAngleFrom.
func ShearAngleFrom(gamma1, gamma2 float64) float64 {
	_, a := ShearMagnitudeAndAngleFrom(gamma1, gamma2)
	return a
}

// PositionAngleFrom maps 0.5·atan2(γ2, γ1) into (-45, 135] degrees, the
// convention shear fields use for per-pixel orientation.
func PositionAngleFrom(gamma1, gamma2 float64) float64 {
	angle := math.Atan2(gamma2, gamma1) / 2 * radToDeg
	if angle <= -45 {
		angle += 180
	}

	return angle
}
