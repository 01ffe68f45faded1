package op

import "math"

// Interval is a closed bounded interval [Lo, Hi], the "interval/bounded
// values" operand domain: it runs the same operation catalogue generically
// over bounds instead of single values, enclosing every reachable result.
//
// Interval arithmetic here is exact for the monotonic elementary
// functions and for SIN and COS (endpoints plus interior critical
// points). TAN evaluates the endpoints only, which encloses the range
// only when the interval does not straddle an asymptote.
type Interval struct {
	Lo, Hi float64
}

func NewInterval(lo, hi float64) Interval {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Interval{Lo: lo, Hi: hi}
}

func degenerate(v float64) Interval { return Interval{Lo: v, Hi: v} }

func (x Interval) Add(y Interval) Interval {
	return Interval{Lo: x.Lo + y.Lo, Hi: x.Hi + y.Hi}
}

func (x Interval) Sub(y Interval) Interval {
	return Interval{Lo: x.Lo - y.Hi, Hi: x.Hi - y.Lo}
}

func (x Interval) Mul(y Interval) Interval {
	candidates := [4]float64{x.Lo * y.Lo, x.Lo * y.Hi, x.Hi * y.Lo, x.Hi * y.Hi}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	return Interval{Lo: lo, Hi: hi}
}

func (x Interval) Div(y Interval) Interval {
	if y.Lo <= 0 && y.Hi >= 0 {
		return Interval{Lo: math.NaN(), Hi: math.NaN()}
	}
	return x.Mul(Interval{Lo: 1 / y.Hi, Hi: 1 / y.Lo})
}

func (x Interval) Neg() Interval { return Interval{Lo: -x.Hi, Hi: -x.Lo} }

func (x Interval) Exp() Interval  { return Interval{Lo: math.Exp(x.Lo), Hi: math.Exp(x.Hi)} }
func (x Interval) Log() Interval  { return Interval{Lo: math.Log(x.Lo), Hi: math.Log(x.Hi)} }
func (x Interval) Sqrt() Interval { return Interval{Lo: math.Sqrt(x.Lo), Hi: math.Sqrt(x.Hi)} }

// periodicExtrema brackets f over [x.Lo, x.Hi] by evaluating the endpoints
// plus every critical point of the form phase + k*math.Pi inside the
// interval, which is exact for SIN and COS (whose derivatives, cos and
// -sin, vanish exactly at those points).
func periodicExtrema(x Interval, f func(float64) float64, phase float64) Interval {
	lo, hi := f(x.Lo), f(x.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	k := math.Ceil((x.Lo - phase) / math.Pi)
	for cp := phase + k*math.Pi; cp <= x.Hi; cp += math.Pi {
		if cp < x.Lo {
			continue
		}
		v := f(cp)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return Interval{Lo: lo, Hi: hi}
}

func (x Interval) Sin() Interval {
	return periodicExtrema(x, math.Sin, math.Pi/2)
}

func (x Interval) Cos() Interval {
	return periodicExtrema(x, math.Cos, 0)
}

func (x Interval) Tan() Interval {
	// Assumes the interval does not straddle an asymptote; tan is
	// monotonic increasing between consecutive asymptotes.
	return Interval{Lo: math.Tan(x.Lo), Hi: math.Tan(x.Hi)}
}

func (x Interval) Asin() Interval { return Interval{Lo: math.Asin(x.Lo), Hi: math.Asin(x.Hi)} }
func (x Interval) Acos() Interval { return Interval{Lo: math.Acos(x.Hi), Hi: math.Acos(x.Lo)} }
func (x Interval) Atan() Interval { return Interval{Lo: math.Atan(x.Lo), Hi: math.Atan(x.Hi)} }
func (x Interval) Sinh() Interval { return Interval{Lo: math.Sinh(x.Lo), Hi: math.Sinh(x.Hi)} }

func (x Interval) Cosh() Interval {
	switch {
	case x.Lo >= 0:
		return Interval{Lo: math.Cosh(x.Lo), Hi: math.Cosh(x.Hi)}
	case x.Hi <= 0:
		return Interval{Lo: math.Cosh(x.Hi), Hi: math.Cosh(x.Lo)}
	default:
		return Interval{Lo: 1, Hi: math.Max(math.Cosh(x.Lo), math.Cosh(x.Hi))}
	}
}

func (x Interval) Tanh() Interval { return Interval{Lo: math.Tanh(x.Lo), Hi: math.Tanh(x.Hi)} }
func (x Interval) Erf() Interval  { return Interval{Lo: math.Erf(x.Lo), Hi: math.Erf(x.Hi)} }

func (x Interval) Pow(y Interval) Interval {
	return x.Log().Mul(y).Exp()
}

func (x Interval) Fmin(y Interval) Interval {
	return Interval{Lo: math.Min(x.Lo, y.Lo), Hi: math.Min(x.Hi, y.Hi)}
}

func (x Interval) Fmax(y Interval) Interval {
	return Interval{Lo: math.Max(x.Lo, y.Lo), Hi: math.Max(x.Hi, y.Hi)}
}

func (x Interval) Floor() Interval { return Interval{Lo: math.Floor(x.Lo), Hi: math.Floor(x.Hi)} }
func (x Interval) Ceil() Interval  { return Interval{Lo: math.Ceil(x.Lo), Hi: math.Ceil(x.Hi)} }

func (x Interval) GeZero() Interval {
	switch {
	case x.Lo >= 0:
		return degenerate(1)
	case x.Hi < 0:
		return degenerate(0)
	default:
		return Interval{Lo: 0, Hi: 1}
	}
}

func (x Interval) LeEq(y Interval) Interval {
	switch {
	case x.Hi <= y.Lo:
		return degenerate(1)
	case x.Lo > y.Hi:
		return degenerate(0)
	default:
		return Interval{Lo: 0, Hi: 1}
	}
}

func (x Interval) Eq(y Interval) Interval {
	switch {
	case x.Lo == x.Hi && y.Lo == y.Hi && x.Lo == y.Lo:
		return degenerate(1)
	case x.Hi < y.Lo || y.Hi < x.Lo:
		return degenerate(0)
	default:
		return Interval{Lo: 0, Hi: 1}
	}
}

func (x Interval) Zero() Interval           { return degenerate(0) }
func (x Interval) One() Interval            { return degenerate(1) }
func (x Interval) Const(v float64) Interval { return degenerate(v) }
