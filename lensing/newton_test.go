package lensing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/lensing"
	"github.com/katalvlaran/lensing/mass"
)

// TestNewton_SIS checks every seed converges onto the Einstein ring.
func TestNewton_SIS(t *testing.T) {
	op := newOperator(t, sis(1), lensing.WithBackend(lensing.AutoDiff{}))
	require.True(t, op.SupportsAutoDiff())

	opts := lensing.DefaultNewtonOptions(lensing.Tangential)
	pts, err := op.TangentialCriticalCurveNewton(opts)
	require.NoError(t, err)
	require.Equal(t, opts.NPoints, pts.Len())
	for _, p := range pts.Points() {
		assert.InDelta(t, 1.0, math.Hypot(p[0], p[1]), 1e-6)
	}

	caustics, err := op.CausticsFrom([]*grid.Irregular{pts})
	require.NoError(t, err)
	for _, p := range caustics[0].Points() {
		assert.InDelta(t, 0.0, math.Hypot(p[0], p[1]), 1e-6)
	}

	// The SIS radial eigenvalue is identically one: nothing converges.
	radial, err := op.RadialCriticalCurveNewton(lensing.DefaultNewtonOptions(lensing.Radial))
	require.NoError(t, err)
	assert.Zero(t, radial.Len())
}

// TestNewton_OffCentre checks the seed ring follows InitCentre.
func TestNewton_OffCentre(t *testing.T) {
	gal := mass.NewGalaxy(mass.IsothermalSph{Centre: mass.Centre{0.3, -0.4}, EinsteinRadius: 0.8})
	op := newOperator(t, gal, lensing.WithBackend(lensing.AutoDiff{}))

	opts := lensing.DefaultNewtonOptions(lensing.Tangential)
	opts.InitCentre = [2]float64{0.3, -0.4}
	opts.NPoints = 64
	pts, err := op.TangentialCriticalCurveNewton(opts)
	require.NoError(t, err)
	require.Equal(t, 64, pts.Len())
	for _, p := range pts.Points() {
		assert.InDelta(t, 0.8, math.Hypot(p[0]-0.3, p[1]+0.4), 1e-6)
	}
}

// TestNewton_ResidualFilter checks every kept point of an elliptical lens
// satisfies the threshold.
func TestNewton_ResidualFilter(t *testing.T) {
	op := newOperator(t, sie(), lensing.WithBackend(lensing.AutoDiff{}))
	opts := lensing.DefaultNewtonOptions(lensing.Tangential)
	pts, err := op.TangentialCriticalCurveNewton(opts)
	require.NoError(t, err)
	require.NotZero(t, pts.Len())
	assert.LessOrEqual(t, pts.Len(), opts.NPoints)

	eig, err := op.TangentialEigenValue(pts, nil)
	require.NoError(t, err)
	for _, v := range eig.Values {
		assert.LessOrEqual(t, math.Abs(v), opts.Threshold+1e-9)
	}
}

// TestNewton_Unavailable checks the disabled-feature signal.
func TestNewton_Unavailable(t *testing.T) {
	opts := lensing.DefaultNewtonOptions(lensing.Tangential)

	fd := newOperator(t, sis(1))
	assert.False(t, fd.SupportsAutoDiff())
	_, err := fd.TangentialCriticalCurveNewton(opts)
	assert.ErrorIs(t, err, lensing.ErrAutoDiffUnavailable)

	plain := newOperator(t, lensing.DeflectionFunc(sis(1).Deflections), lensing.WithBackend(lensing.AutoDiff{}))
	assert.False(t, plain.SupportsAutoDiff())
	_, err = plain.RadialCriticalCurveNewton(opts)
	assert.ErrorIs(t, err, lensing.ErrAutoDiffUnavailable)
	_, err = plain.Jacobian(uniform(t, 4, 4, 0.1))
	assert.ErrorIs(t, err, lensing.ErrAutoDiffUnavailable)
	_, err = plain.Hessian(uniform(t, 4, 4, 0.1))
	assert.ErrorIs(t, err, lensing.ErrAutoDiffUnavailable)
}

// TestNewton_InvalidOptions covers option validation.
func TestNewton_InvalidOptions(t *testing.T) {
	op := newOperator(t, sis(1), lensing.WithBackend(lensing.AutoDiff{}))
	cases := map[string]func(*lensing.NewtonOptions){
		"InitR":     func(o *lensing.NewtonOptions) { o.InitR = 0 },
		"NPoints":   func(o *lensing.NewtonOptions) { o.NPoints = 0 },
		"NSteps":    func(o *lensing.NewtonOptions) { o.NSteps = -1 },
		"Threshold": func(o *lensing.NewtonOptions) { o.Threshold = math.NaN() },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			opts := lensing.DefaultNewtonOptions(lensing.Tangential)
			modify(&opts)
			_, err := op.TangentialCriticalCurveNewton(opts)
			assert.ErrorIs(t, err, lensing.ErrInvalidNewtonOptions)
		})
	}
}
