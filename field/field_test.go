package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
)

func TestScalar_Native(t *testing.T) {
	m, err := grid.NewMask2D([][]bool{{false, true}, {false, false}}, grid.Square(1), grid.Origin{})
	require.NoError(t, err)

	s := field.NewScalar([]float64{1, 2, 3, 4}, m)
	native, err := s.Native()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {3, 4}}, native)

	raw, err := s.NativeUnmasked()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, raw)

	_, err = field.NewScalar([]float64{1, 2}, nil).Native()
	require.ErrorIs(t, err, grid.ErrShape)
}

func TestVectorYX_AddAndMagnitudes(t *testing.T) {
	a := field.VectorYX{Y: []float64{3, 0}, X: []float64{0, 1}}
	b := field.VectorYX{Y: []float64{0, 1}, X: []float64{4, 0}}

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, sum.Y)
	assert.Equal(t, []float64{4, 1}, sum.X)
	assert.InDeltaSlice(t, []float64{5, 1.4142135623730951}, sum.Magnitudes(), 1e-12)

	y, x := sum.At(0)
	assert.Equal(t, 3.0, y)
	assert.Equal(t, 4.0, x)

	_, err = a.Add(field.NewVectorYX(3))
	require.ErrorIs(t, err, field.ErrLengthMismatch)
}

// TestShearYX_Convention pins the γ2-first storage order.
func TestShearYX_Convention(t *testing.T) {
	s := field.ShearYX{
		Gamma2: []float64{0, 0.1, -0.1},
		Gamma1: []float64{0.2, 0, 0},
	}

	assert.InDeltaSlice(t, []float64{0.2, 0.1, 0.1}, s.Magnitudes(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 45, 135}, s.Angles(), 1e-12)
	assert.Nil(t, s.MagnitudeScalar().Mask)
}
