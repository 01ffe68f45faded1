package op

import "math"

// FloatT is the concrete 64-bit floating-point operand type: the
// framework's primary numeric T, used for direct evaluation, finite-
// difference verification, and the CLI's default operand kind.
type FloatT float64

func (x FloatT) Add(y FloatT) FloatT { return x + y }
func (x FloatT) Sub(y FloatT) FloatT { return x - y }
func (x FloatT) Mul(y FloatT) FloatT { return x * y }
func (x FloatT) Div(y FloatT) FloatT { return x / y }
func (x FloatT) Neg() FloatT         { return -x }

func (x FloatT) Exp() FloatT  { return FloatT(math.Exp(float64(x))) }
func (x FloatT) Log() FloatT  { return FloatT(math.Log(float64(x))) }
func (x FloatT) Sqrt() FloatT { return FloatT(math.Sqrt(float64(x))) }
func (x FloatT) Sin() FloatT  { return FloatT(math.Sin(float64(x))) }
func (x FloatT) Cos() FloatT  { return FloatT(math.Cos(float64(x))) }
func (x FloatT) Tan() FloatT  { return FloatT(math.Tan(float64(x))) }
func (x FloatT) Asin() FloatT { return FloatT(math.Asin(float64(x))) }
func (x FloatT) Acos() FloatT { return FloatT(math.Acos(float64(x))) }
func (x FloatT) Atan() FloatT { return FloatT(math.Atan(float64(x))) }
func (x FloatT) Sinh() FloatT { return FloatT(math.Sinh(float64(x))) }
func (x FloatT) Cosh() FloatT { return FloatT(math.Cosh(float64(x))) }
func (x FloatT) Tanh() FloatT { return FloatT(math.Tanh(float64(x))) }
func (x FloatT) Erf() FloatT  { return FloatT(math.Erf(float64(x))) }

func (x FloatT) Pow(y FloatT) FloatT  { return FloatT(math.Pow(float64(x), float64(y))) }
func (x FloatT) Fmin(y FloatT) FloatT { return FloatT(math.Min(float64(x), float64(y))) }
func (x FloatT) Fmax(y FloatT) FloatT { return FloatT(math.Max(float64(x), float64(y))) }
func (x FloatT) Floor() FloatT        { return FloatT(math.Floor(float64(x))) }
func (x FloatT) Ceil() FloatT         { return FloatT(math.Ceil(float64(x))) }

func (x FloatT) GeZero() FloatT {
	if x >= 0 {
		return 1
	}
	return 0
}

func (x FloatT) LeEq(y FloatT) FloatT {
	if x <= y {
		return 1
	}
	return 0
}

func (x FloatT) Eq(y FloatT) FloatT {
	if x == y {
		return 1
	}
	return 0
}

func (x FloatT) Zero() FloatT           { return 0 }
func (x FloatT) One() FloatT            { return 1 }
func (x FloatT) Const(v float64) FloatT { return FloatT(v) }
