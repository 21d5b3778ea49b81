package autodiff

import "math"

// Dual is a first-order dual number V + D·ε.
type Dual struct {
	V float64 // value
	D float64 // derivative
}

// Const returns a Dual with zero derivative.
func Const(v float64) Dual { return Dual{V: v} }

// Var returns a Dual seeded with unit derivative.
func Var(v float64) Dual { return Dual{V: v, D: 1} }

func (a Dual) Add(b Dual) Dual { return Dual{a.V + b.V, a.D + b.D} }
func (a Dual) Sub(b Dual) Dual { return Dual{a.V - b.V, a.D - b.D} }
func (a Dual) Mul(b Dual) Dual { return Dual{a.V * b.V, a.D*b.V + a.V*b.D} }
func (a Dual) Scale(k float64) Dual {
	return Dual{k * a.V, k * a.D}
}
func (a Dual) AddConst(k float64) Dual { return Dual{a.V + k, a.D} }
func (a Dual) Neg() Dual               { return Dual{-a.V, -a.D} }

// Div returns a/b.
func (a Dual) Div(b Dual) Dual {
	return Dual{a.V / b.V, (a.D*b.V - a.V*b.D) / (b.V * b.V)}
}

// Sqrt returns √a. The derivative is infinite at zero.
func (a Dual) Sqrt() Dual {
	s := math.Sqrt(a.V)
	return Dual{s, a.D / (2 * s)}
}

// Abs returns |a|.
func (a Dual) Abs() Dual {
	if a.V < 0 {
		return a.Neg()
	}
	return a
}

// IsFinite reports whether both parts are finite.
func (a Dual) IsFinite() bool {
	return !math.IsNaN(a.V) && !math.IsInf(a.V, 0) && !math.IsNaN(a.D) && !math.IsInf(a.D, 0)
}
