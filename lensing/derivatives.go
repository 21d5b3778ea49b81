package lensing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lensing/autodiff"
	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
)

// JacobianFromGradient differentiates the deflections of d along the native
// axes of the uniform grid g: central differences inside the grid, one-sided
// differences on its edges, each divided by the coordinate difference it
// spans.
// Returns grid.ErrShape if g is not a *grid.Grid2D with at least two rows
// and two columns; errors from d are wrapped.
// Complexity: one deflection evaluation of len(g) points, O(len(g)) work.
func JacobianFromGradient(d Deflector, g grid.Coordinates) (*Jacobian, error) {
	u, ok := g.(*grid.Grid2D)
	if !ok {
		return nil, fmt.Errorf("lensing: gradient Jacobian needs a uniform grid, got %T: %w", g, grid.ErrShape)
	}
	rows, cols := u.ShapeNative()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("lensing: gradient Jacobian needs at least 2×2 pixels, got %d×%d: %w", rows, cols, grid.ErrShape)
	}
	def, err := d.Deflections(u)
	if err != nil {
		return nil, fmt.Errorf("lensing: deflections: %w", err)
	}
	if def.Len() != u.Len() {
		return nil, fmt.Errorf("lensing: deflections returned %d points for %d: %w", def.Len(), u.Len(), ErrLengthMismatch)
	}

	jac := newJacobian(u.Len(), u.Mask)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := u.Index(r, c)
			// neighbours along y (rows) and x (cols)
			up, down := u.Index(max(r-1, 0), c), u.Index(min(r+1, rows-1), c)
			left, right := u.Index(r, max(c-1, 0)), u.Index(r, min(c+1, cols-1))

			yDown, _ := u.YX(down)
			yUp, _ := u.YX(up)
			_, xRight := u.YX(right)
			_, xLeft := u.YX(left)
			dy, dx := yDown-yUp, xRight-xLeft

			jac.A11[i] = 1 - (def.X[right]-def.X[left])/dx
			jac.A12[i] = -(def.X[down] - def.X[up]) / dy
			jac.A21[i] = -(def.Y[right] - def.Y[left]) / dx
			jac.A22[i] = 1 - (def.Y[down]-def.Y[up])/dy
		}
	}

	return jac, nil
}

// HessianFrom evaluates fn on four copies of g shifted by ±buffer along y and
// x and forms symmetric differences:
//
//	YY = (αy(y+b) − αy(y−b)) / 2b    XY = (αx(y+b) − αx(y−b)) / 2b
//	YX = (αy(x+b) − αy(x−b)) / 2b    XX = (αx(x+b) − αx(x−b)) / 2b
//
// g may be uniform or irregular.
// Returns ErrInvalidBuffer; errors from fn are wrapped and returned as-is.
// Complexity: four deflection evaluations of len(g) points.
func HessianFrom(fn DeflectionFunc, g grid.Coordinates, buffer float64) (*Hessian, error) {
	if !(buffer > 0) || math.IsInf(buffer, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidBuffer, buffer)
	}
	shifts := [4][2]float64{{buffer, 0}, {-buffer, 0}, {0, buffer}, {0, -buffer}}
	var def [4]field.VectorYX
	for k, s := range shifts {
		v, err := fn(grid.Shift(g, s[0], s[1]))
		if err != nil {
			return nil, fmt.Errorf("lensing: deflections at shift (%g, %g): %w", s[0], s[1], err)
		}
		if v.Len() != g.Len() {
			return nil, fmt.Errorf("lensing: deflections returned %d points for %d: %w", v.Len(), g.Len(), ErrLengthMismatch)
		}
		def[k] = v
	}

	h := newHessian(g.Len(), maskOf(g))
	half := 0.5 / buffer
	for i := 0; i < g.Len(); i++ {
		h.YY[i] = (def[0].Y[i] - def[1].Y[i]) * half
		h.XY[i] = (def[0].X[i] - def[1].X[i]) * half
		h.YX[i] = (def[2].Y[i] - def[3].Y[i]) * half
		h.XX[i] = (def[2].X[i] - def[3].X[i]) * half
	}

	return h, nil
}

// partials returns (∂αy/∂y, ∂αx/∂y, ∂αy/∂x, ∂αx/∂x) at (y, x) from one
// hyper-dual evaluation with y on ε1 and x on ε2.
func partials(d HyperDualDeflector, y, x float64) (yy, xy, yx, xx float64) {
	ay, ax := d.DeflectionsHyperDual(autodiff.Seed(y, 1, 0), autodiff.Seed(x, 0, 1))

	return ay.E1, ax.E1, ay.E2, ax.E2
}

// JacobianFromAutoDiff differentiates d exactly at every coordinate of g,
// uniform or irregular.
// Complexity: len(g) hyper-dual evaluations.
func JacobianFromAutoDiff(d HyperDualDeflector, g grid.Coordinates) *Jacobian {
	jac := newJacobian(g.Len(), maskOf(g))
	for i := 0; i < g.Len(); i++ {
		y, x := g.YX(i)
		yy, xy, yx, xx := partials(d, y, x)
		jac.A11[i] = 1 - xx
		jac.A12[i] = -xy
		jac.A21[i] = -yx
		jac.A22[i] = 1 - yy
	}

	return jac
}

// HessianFromAutoDiff is the exact counterpart of HessianFrom.
func HessianFromAutoDiff(d HyperDualDeflector, g grid.Coordinates) *Hessian {
	h := newHessian(g.Len(), maskOf(g))
	for i := 0; i < g.Len(); i++ {
		y, x := g.YX(i)
		h.YY[i], h.XY[i], h.YX[i], h.XX[i] = partials(d, y, x)
	}

	return h
}

// EigenValuesAt returns the eigenvalues of the symmetrised Jacobian at
// coordinate i, smallest first. For a curl-free deflection field these are
// the tangential and radial eigenvalues.
// Returns false if the decomposition fails (non-finite entries).
func EigenValuesAt(jac *Jacobian, i int) (tangential, radial float64, ok bool) {
	off := 0.5 * (jac.A12[i] + jac.A21[i])
	sym := mat.NewSymDense(2, []float64{jac.A11[i], off, off, jac.A22[i]})
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return 0, 0, false
	}
	vals := eig.Values(nil)

	return vals[0], vals[1], true
}
