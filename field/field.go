package field

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lensing/convert"
	"github.com/katalvlaran/lensing/grid"
)

// ErrLengthMismatch indicates fields of different lengths were combined.
var ErrLengthMismatch = errors.New("field: length mismatch")

// Scalar is one float per grid coordinate.
type Scalar struct {
	Values []float64
	Mask   *grid.Mask2D // nil for irregular grids
}

// NewScalar wraps values with an optional mask.
func NewScalar(values []float64, mask *grid.Mask2D) Scalar {
	return Scalar{Values: values, Mask: mask}
}

// Len returns the number of values.
func (s Scalar) Len() int {
	return len(s.Values)
}

// Native reshapes the field into rows×cols with masked pixels set to zero.
// Returns grid.ErrShape when the field has no mask or the wrong length.
func (s Scalar) Native() ([][]float64, error) {
	if s.Mask == nil || len(s.Values) != s.Mask.Rows*s.Mask.Cols {
		return nil, grid.ErrShape
	}
	out := make([][]float64, s.Mask.Rows)
	for r := range out {
		out[r] = make([]float64, s.Mask.Cols)
		for c := range out[r] {
			if !s.Mask.IsMasked(r, c) {
				out[r][c] = s.Values[r*s.Mask.Cols+c]
			}
		}
	}

	return out, nil
}

// NativeUnmasked reshapes the field into rows×cols keeping every value,
// masked or not. Contouring uses this so the zero level is not distorted by
// blanked pixels.
func (s Scalar) NativeUnmasked() ([][]float64, error) {
	if s.Mask == nil || len(s.Values) != s.Mask.Rows*s.Mask.Cols {
		return nil, grid.ErrShape
	}
	out := make([][]float64, s.Mask.Rows)
	for r := range out {
		out[r] = s.Values[r*s.Mask.Cols : (r+1)*s.Mask.Cols : (r+1)*s.Mask.Cols]
	}

	return out, nil
}

// VectorYX is one (y, x) vector per grid coordinate, stored as two aligned
// slices. Deflection angles are VectorYX.
type VectorYX struct {
	Y, X []float64
}

// NewVectorYX allocates a zeroed VectorYX of length n.
func NewVectorYX(n int) VectorYX {
	return VectorYX{Y: make([]float64, n), X: make([]float64, n)}
}

// Len returns the number of vectors.
func (v VectorYX) Len() int {
	return len(v.Y)
}

// At returns the i-th vector.
func (v VectorYX) At(i int) (y, x float64) {
	return v.Y[i], v.X[i]
}

// Add returns v + w.
// Returns ErrLengthMismatch if the lengths differ.
func (v VectorYX) Add(w VectorYX) (VectorYX, error) {
	if v.Len() != w.Len() {
		return VectorYX{}, ErrLengthMismatch
	}
	out := NewVectorYX(v.Len())
	floats.AddTo(out.Y, v.Y, w.Y)
	floats.AddTo(out.X, v.X, w.X)

	return out, nil
}

// Magnitudes returns sqrt(y²+x²) per vector.
func (v VectorYX) Magnitudes() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = math.Hypot(v.Y[i], v.X[i])
	}

	return out
}

// ShearYX is a shear field stored with γ2 first and γ1 second.
type ShearYX struct {
	Gamma2 []float64 // y component
	Gamma1 []float64 // x component
	Mask   *grid.Mask2D
}

// Len returns the number of shear vectors.
func (s ShearYX) Len() int {
	return len(s.Gamma1)
}

// Magnitudes returns sqrt(γ1²+γ2²) per coordinate.
func (s ShearYX) Magnitudes() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = convert.ShearMagnitudeFrom(s.Gamma1[i], s.Gamma2[i])
	}

	return out
}

// Angles returns 0.5·atan2(γ2, γ1) per coordinate in degrees, in (-45, 135].
func (s ShearYX) Angles() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = convert.PositionAngleFrom(s.Gamma1[i], s.Gamma2[i])
	}

	return out
}

// MagnitudeScalar wraps Magnitudes as a Scalar carrying the shear's mask.
func (s ShearYX) MagnitudeScalar() Scalar {
	return Scalar{Values: s.Magnitudes(), Mask: s.Mask}
}
