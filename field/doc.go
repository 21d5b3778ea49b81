// Package field holds per-coordinate quantities derived on a grid: scalar
// maps (convergence, eigenvalues, magnification), (y,x) vector maps
// (deflection angles) and shear fields.
//
// Every field is aligned index-by-index with the grid it was computed on.
// Fields derived on a uniform grid keep a pointer to that grid's mask so they
// can be reshaped into a native 2D image; fields derived on an irregular grid
// carry a nil mask.
//
// Shear storage convention: ShearYX keeps γ2 as its first (y) component and
// γ1 as its second (x) component. Consumers must respect this ordering.
package field
