package op

import "math"

// Dual is a forward-mode automatic-differentiation tuple (value, tangent),
// the "forward-mode AD tuples" operand domain. Each elementary function
// implements the standard dual-number chain rule, so a Dual carries its
// own first derivative through every operation the algebra dispatches,
// including, recursively, through the op table's own partial-derivative
// rules when T = Dual.
type Dual struct {
	V float64 // value
	D float64 // tangent (derivative with respect to the seeded variable)
}

// NewDual seeds a variable: value v, tangent 1.
func NewDual(v float64) Dual { return Dual{V: v, D: 1} }

// Constant wraps a value with a zero tangent.
func Constant(v float64) Dual { return Dual{V: v, D: 0} }

func (x Dual) Add(y Dual) Dual { return Dual{V: x.V + y.V, D: x.D + y.D} }
func (x Dual) Sub(y Dual) Dual { return Dual{V: x.V - y.V, D: x.D - y.D} }
func (x Dual) Mul(y Dual) Dual { return Dual{V: x.V * y.V, D: x.D*y.V + x.V*y.D} }
func (x Dual) Div(y Dual) Dual {
	return Dual{V: x.V / y.V, D: (x.D*y.V - x.V*y.D) / (y.V * y.V)}
}
func (x Dual) Neg() Dual { return Dual{V: -x.V, D: -x.D} }

func (x Dual) Exp() Dual {
	v := math.Exp(x.V)
	return Dual{V: v, D: v * x.D}
}

func (x Dual) Log() Dual { return Dual{V: math.Log(x.V), D: x.D / x.V} }

func (x Dual) Sqrt() Dual {
	v := math.Sqrt(x.V)
	return Dual{V: v, D: x.D / (2 * v)}
}

func (x Dual) Sin() Dual { return Dual{V: math.Sin(x.V), D: math.Cos(x.V) * x.D} }
func (x Dual) Cos() Dual { return Dual{V: math.Cos(x.V), D: -math.Sin(x.V) * x.D} }

func (x Dual) Tan() Dual {
	c := math.Cos(x.V)
	return Dual{V: math.Tan(x.V), D: x.D / (c * c)}
}

func (x Dual) Asin() Dual {
	return Dual{V: math.Asin(x.V), D: x.D / math.Sqrt(1-x.V*x.V)}
}

func (x Dual) Acos() Dual {
	return Dual{V: math.Acos(x.V), D: -x.D / math.Sqrt(1-x.V*x.V)}
}

func (x Dual) Atan() Dual {
	return Dual{V: math.Atan(x.V), D: x.D / (1 + x.V*x.V)}
}

func (x Dual) Sinh() Dual { return Dual{V: math.Sinh(x.V), D: math.Cosh(x.V) * x.D} }

// Cosh uses the mathematically correct derivative, +sinh(x).
func (x Dual) Cosh() Dual { return Dual{V: math.Cosh(x.V), D: math.Sinh(x.V) * x.D} }

func (x Dual) Tanh() Dual {
	v := math.Tanh(x.V)
	return Dual{V: v, D: (1 - v*v) * x.D}
}

func (x Dual) Erf() Dual {
	return Dual{V: math.Erf(x.V), D: (2 / math.Sqrt(math.Pi)) * math.Exp(-x.V*x.V) * x.D}
}

func (x Dual) Pow(y Dual) Dual {
	v := math.Pow(x.V, y.V)
	d := y.V*math.Pow(x.V, y.V-1)*x.D + v*math.Log(x.V)*y.D
	return Dual{V: v, D: d}
}

func (x Dual) Fmin(y Dual) Dual {
	if x.V <= y.V {
		return x
	}
	return y
}

func (x Dual) Fmax(y Dual) Dual {
	if x.V >= y.V {
		return x
	}
	return y
}

func (x Dual) Floor() Dual { return Dual{V: math.Floor(x.V), D: 0} }
func (x Dual) Ceil() Dual  { return Dual{V: math.Ceil(x.V), D: 0} }

func (x Dual) GeZero() Dual {
	if x.V >= 0 {
		return Dual{V: 1}
	}
	return Dual{V: 0}
}

func (x Dual) LeEq(y Dual) Dual {
	if x.V <= y.V {
		return Dual{V: 1}
	}
	return Dual{V: 0}
}

func (x Dual) Eq(y Dual) Dual {
	if x.V == y.V {
		return Dual{V: 1}
	}
	return Dual{V: 0}
}

func (x Dual) Zero() Dual           { return Dual{} }
func (x Dual) One() Dual            { return Dual{V: 1} }
func (x Dual) Const(v float64) Dual { return Dual{V: v} }
