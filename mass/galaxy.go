package mass

import (
	"fmt"

	"github.com/katalvlaran/lensing/autodiff"
	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
)

// Galaxy sums the deflections of its profiles. A Galaxy with no profiles
// deflects nothing.
type Galaxy struct {
	Profiles []Profile
}

// NewGalaxy returns a Galaxy over the given profiles.
func NewGalaxy(profiles ...Profile) *Galaxy {
	return &Galaxy{Profiles: profiles}
}

// Deflections evaluates the summed deflection angles at every coordinate of g.
// Complexity: O(len(g)·len(Profiles)).
func (gal *Galaxy) Deflections(g grid.Coordinates) (field.VectorYX, error) {
	out := field.NewVectorYX(g.Len())
	for i := 0; i < g.Len(); i++ {
		y, x := g.YX(i)
		for _, p := range gal.Profiles {
			ay, ax := p.DeflectionYX(y, x)
			out.Y[i] += ay
			out.X[i] += ax
		}
	}

	return out, nil
}

// DeflectionsHyperDual evaluates the summed deflection at one coordinate in
// hyper-dual arithmetic.
func (gal *Galaxy) DeflectionsHyperDual(y, x autodiff.HyperDual) (autodiff.HyperDual, autodiff.HyperDual) {
	var sy, sx autodiff.HyperDual
	for _, p := range gal.Profiles {
		ay, ax := p.DeflectionHyperDual(y, x)
		sy, sx = sy.Add(ay), sx.Add(ax)
	}

	return sy, sx
}

// Convergence evaluates the summed closed-form convergence at every coordinate
// of g. The result carries g's mask when g is a *grid.Grid2D.
// Returns ErrNoConvergence if any profile lacks a closed form.
func (gal *Galaxy) Convergence(g grid.Coordinates) (field.Scalar, error) {
	profiles := make([]ConvergenceProfile, len(gal.Profiles))
	for i, p := range gal.Profiles {
		cp, ok := p.(ConvergenceProfile)
		if !ok {
			return field.Scalar{}, fmt.Errorf("%w: %T", ErrNoConvergence, p)
		}
		profiles[i] = cp
	}
	values := make([]float64, g.Len())
	for i := range values {
		y, x := g.YX(i)
		for _, p := range profiles {
			values[i] += p.ConvergenceYX(y, x)
		}
	}
	var mask *grid.Mask2D
	if u, ok := g.(*grid.Grid2D); ok {
		mask = u.Mask
	}

	return field.NewScalar(values, mask), nil
}
