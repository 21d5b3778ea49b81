package convert_test

import (
	"fmt"

	"github.com/katalvlaran/lensing/convert"
)

// ExampleAxisRatioAndAngleFrom round-trips an ellipse through its elliptical
// components.
func ExampleAxisRatioAndAngleFrom() {
	ey, ex := convert.EllCompsFrom(0.5, 30)
	q, angle := convert.AxisRatioAndAngleFrom(ey, ex)
	fmt.Printf("ell_comps: (%.4f, %.4f)\n", ey, ex)
	fmt.Printf("axis ratio: %.2f, angle: %.1f\n", q, angle)
	// Output:
	// ell_comps: (0.2887, 0.1667)
	// axis ratio: 0.50, angle: 30.0
}

// ExampleShearMagnitudeAndAngleFrom recovers magnitude and angle from
// shear components.
func ExampleShearMagnitudeAndAngleFrom() {
	g1, g2 := convert.ShearGamma12From(0.05, 120)
	m, angle := convert.ShearMagnitudeAndAngleFrom(g1, g2)
	fmt.Printf("gamma: (%.4f, %.4f)\n", g1, g2)
	fmt.Printf("magnitude: %.2f, angle: %.1f\n", m, angle)
	// Output:
	// gamma: (-0.0250, -0.0433)
	// magnitude: 0.05, angle: 120.0
}
