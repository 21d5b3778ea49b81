// Package convert maps between the parameterisations used for elliptical
// profiles and external shear.
//
// Elliptical components (ellY, ellX) relate to axis ratio q and position
// angle φ (degrees, counter-clockwise from +x) by
//
//	ellY = (1-q)/(1+q) · sin(2φ)
//	ellX = (1-q)/(1+q) · cos(2φ)
//
// Shear components relate to magnitude γ and angle φ by
//
//	γ1 = γ·cos(2φ),  γ2 = γ·sin(2φ)
//
// Angles returned from elliptical components lie in (-45°, 135°] so that
// marginalised angle estimates do not jump between equivalent branches.
// Shear angles lie in [0°, 180°).
package convert
