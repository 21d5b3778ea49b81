package convert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lensing/convert"
)

// TestEllCompsFrom checks known values.
func TestEllCompsFrom(t *testing.T) {
	ellY, ellX := convert.EllCompsFrom(0.5, 0)
	assert.InDelta(t, 0.0, ellY, 1e-12)
	assert.InDelta(t, 1.0/3.0, ellX, 1e-12)

	ellY, ellX = convert.EllCompsFrom(0.5, 45)
	assert.InDelta(t, 1.0/3.0, ellY, 1e-12)
	assert.InDelta(t, 0.0, ellX, 1e-12)

	ellY, ellX = convert.EllCompsFrom(1, 30)
	assert.Equal(t, 0.0, ellY)
	assert.Equal(t, 0.0, ellX)
}

// TestAxisRatioAndAngle_RoundTrip sweeps axis ratios and angles over
// (-45, 135] and verifies both directions of the conversion.
func TestAxisRatioAndAngle_RoundTrip(t *testing.T) {
	for q := 0.05; q < 1; q += 0.1 {
		for angle := -44.0; angle <= 135; angle += 7 {
			ellY, ellX := convert.EllCompsFrom(q, angle)

			gotQ, gotAngle := convert.AxisRatioAndAngleFrom(ellY, ellX)
			assert.Greater(t, gotAngle, -45.0)
			assert.LessOrEqual(t, gotAngle, 135.0)
			assert.InDelta(t, q, gotQ, 1e-9, "q=%g angle=%g", q, angle)
			assert.InDelta(t, angle, gotAngle, 1e-9, "q=%g angle=%g", q, angle)

			backY, backX := convert.EllCompsFrom(gotQ, gotAngle)
			assert.InDelta(t, ellY, backY, 1e-12)
			assert.InDelta(t, ellX, backX, 1e-12)
		}
	}
}

// TestAxisRatioAndAngle_Branches pins the (-45, 135] wrap and factor clamp.
func TestAxisRatioAndAngle_Branches(t *testing.T) {
	cases := []struct {
		name      string
		ellY      float64
		ellX      float64
		wantQ     float64
		wantAngle float64
	}{
		{"PositiveX", 0, 0.2, (1 - 0.2) / 1.2, 0},
		{"NegativeY", -0.2, 0, (1 - 0.2) / 1.2, 135},
		{"NegativeX", 0, -0.2, (1 - 0.2) / 1.2, 90},
		{"Clamped", 0, 2, (1 - 0.999) / 1.999, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, angle := convert.AxisRatioAndAngleFrom(tc.ellY, tc.ellX)
			assert.InDelta(t, tc.wantQ, q, 1e-12)
			assert.InDelta(t, tc.wantAngle, angle, 1e-12)
			assert.InDelta(t, q, convert.AxisRatioFrom(tc.ellY, tc.ellX), 0)
			assert.InDelta(t, angle, convert.AngleFrom(tc.ellY, tc.ellX), 0)
		})
	}
}

// TestShear_RoundTrip checks that gamma↔(magnitude, angle) are mutual inverses.
func TestShear_RoundTrip(t *testing.T) {
	for _, mag := range []float64{0.01, 0.1, 0.3} {
		for angle := 0.0; angle < 180; angle += 11 {
			g1, g2 := convert.ShearGamma12From(mag, angle)

			gotMag, gotAngle := convert.ShearMagnitudeAndAngleFrom(g1, g2)
			assert.InDelta(t, mag, gotMag, 1e-12)
			assert.InDelta(t, angle, gotAngle, 1e-9)
			assert.GreaterOrEqual(t, gotAngle, 0.0)
			assert.Less(t, gotAngle, 180.0)

			b1, b2 := convert.ShearGamma12From(gotMag, gotAngle)
			assert.InDelta(t, g1, b1, 1e-12)
			assert.InDelta(t, g2, b2, 1e-12)
		}
	}
}

// TestShearHelpers checks the single-value accessors.
func TestShearHelpers(t *testing.T) {
	assert.InDelta(t, 0.5, convert.ShearMagnitudeFrom(0.3, 0.4), 1e-12)
	assert.InDelta(t, 135.0, convert.ShearAngleFrom(0, -0.1), 1e-12)
	assert.InDelta(t, 45.0, convert.ShearAngleFrom(0, 0.1), 1e-12)

	assert.InDelta(t, 135.0, convert.PositionAngleFrom(0, -0.1), 1e-12)
	assert.InDelta(t, 90.0, convert.PositionAngleFrom(-0.1, 0), 1e-12)
	assert.InDelta(t, -22.5, convert.PositionAngleFrom(math.Sqrt2, -math.Sqrt2), 1e-12)
}
