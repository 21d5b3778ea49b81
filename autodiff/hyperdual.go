package autodiff

import "math"

// HyperDual is Re + E1·ε1 + E2·ε2 + E12·ε1ε2.
type HyperDual struct {
	Re, E1, E2, E12 float64
}

// HConst returns a HyperDual with no infinitesimal parts.
func HConst(v float64) HyperDual { return HyperDual{Re: v} }

// Seed returns a HyperDual with the given value and ε1, ε2 directions.
func Seed(v, e1, e2 float64) HyperDual { return HyperDual{Re: v, E1: e1, E2: e2} }

func (a HyperDual) Add(b HyperDual) HyperDual {
	return HyperDual{a.Re + b.Re, a.E1 + b.E1, a.E2 + b.E2, a.E12 + b.E12}
}

func (a HyperDual) Sub(b HyperDual) HyperDual {
	return HyperDual{a.Re - b.Re, a.E1 - b.E1, a.E2 - b.E2, a.E12 - b.E12}
}

func (a HyperDual) Mul(b HyperDual) HyperDual {
	return HyperDual{
		Re:  a.Re * b.Re,
		E1:  a.Re*b.E1 + a.E1*b.Re,
		E2:  a.Re*b.E2 + a.E2*b.Re,
		E12: a.Re*b.E12 + a.E1*b.E2 + a.E2*b.E1 + a.E12*b.Re,
	}
}

func (a HyperDual) Scale(k float64) HyperDual {
	return HyperDual{k * a.Re, k * a.E1, k * a.E2, k * a.E12}
}

func (a HyperDual) AddConst(k float64) HyperDual {
	return HyperDual{a.Re + k, a.E1, a.E2, a.E12}
}

func (a HyperDual) Neg() HyperDual { return a.Scale(-1) }

// Div returns a/b.
func (a HyperDual) Div(b HyperDual) HyperDual {
	return a.Mul(b.Recip())
}

// apply lifts a scalar function with first and second derivatives f1, f2
// evaluated at a.Re.
func (a HyperDual) apply(f, f1, f2 float64) HyperDual {
	return HyperDual{
		Re:  f,
		E1:  f1 * a.E1,
		E2:  f1 * a.E2,
		E12: f1*a.E12 + f2*a.E1*a.E2,
	}
}

// Recip returns 1/a.
func (a HyperDual) Recip() HyperDual {
	inv := 1 / a.Re
	return a.apply(inv, -inv*inv, 2*inv*inv*inv)
}

// Square returns a².
func (a HyperDual) Square() HyperDual {
	return a.Mul(a)
}

// Sqrt returns √a.
func (a HyperDual) Sqrt() HyperDual {
	s := math.Sqrt(a.Re)
	return a.apply(s, 0.5/s, -0.25/(s*a.Re))
}

// Atan returns arctan(a).
func (a HyperDual) Atan() HyperDual {
	d := 1 + a.Re*a.Re
	return a.apply(math.Atan(a.Re), 1/d, -2*a.Re/(d*d))
}

// Atanh returns artanh(a).
func (a HyperDual) Atanh() HyperDual {
	d := 1 - a.Re*a.Re
	return a.apply(math.Atanh(a.Re), 1/d, 2*a.Re/(d*d))
}

// Log returns ln(a).
func (a HyperDual) Log() HyperDual {
	return a.apply(math.Log(a.Re), 1/a.Re, -1/(a.Re*a.Re))
}

// Hypot returns √(a² + b²).
func Hypot(a, b HyperDual) HyperDual {
	return a.Square().Add(b.Square()).Sqrt()
}

// Partial1 returns the ε1 part as a Dual whose derivative is the ε2 part of
// that ε1 derivative, i.e. (∂f/∂ε1, ∂²f/∂ε1∂ε2).
func (a HyperDual) Partial1() Dual {
	return Dual{V: a.E1, D: a.E12}
}
