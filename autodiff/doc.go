// Package autodiff provides forward-mode automatic differentiation through
// dual and hyper-dual numbers.
//
// Dual carries a value and one directional derivative:
//
//	f(a + bε) = f(a) + f'(a)·b·ε,   ε² = 0
//
// HyperDual carries two independent infinitesimals and their product, which
// yields exact first and mixed second derivatives in a single evaluation:
//
//	x = a + b·ε1 + c·ε2 + d·ε1ε2,   ε1² = ε2² = 0
//	f(x) = f(a) + f'(a)·b·ε1 + f'(a)·c·ε2 + (f'(a)·d + f''(a)·b·c)·ε1ε2
//
// Lensing code seeds ε1 along a Cartesian axis and ε2 along a polar radius,
// so E1 of a deflection component is a Jacobian entry and E12 is that
// entry's radial derivative.
//
// Every elementary function is applied through the chain rule above; no
// derivative is ever approximated by differences.
package autodiff
