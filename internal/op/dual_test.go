package op

import (
	"math"
	"testing"
)

func TestDualPropagatesTangentThroughChain(t *testing.T) {
	// d/dx sin(x^2) at x=1.3 is cos(x^2) * 2x.
	x := NewDual(1.3)
	sq := Eval[Dual](MUL, x, x)
	got := Eval[Dual](SIN, sq, Dual{})

	want := math.Cos(1.3*1.3) * 2 * 1.3
	if math.Abs(got.D-want) > 1e-9 {
		t.Errorf("d/dx sin(x^2) at 1.3 = %v, want %v", got.D, want)
	}
	if math.Abs(got.V-math.Sin(1.3*1.3)) > 1e-9 {
		t.Errorf("sin(x^2) value = %v, want %v", got.V, math.Sin(1.3*1.3))
	}
}

func TestDualEvalAndPartialsAgreesWithTangent(t *testing.T) {
	x := NewDual(2.0)
	y := Constant(3.0)
	f, d0, _ := EvalAndPartials[Dual](DIV, x, y)
	if math.Abs(f.D-d0.V) > 1e-9 {
		t.Errorf("DIV: tangent of f (%v) should equal d0's value (%v)", f.D, d0.V)
	}
}

func TestDualFminFmaxSelectsBranch(t *testing.T) {
	x := NewDual(1.0)
	y := NewDual(2.0)
	if got := Eval[Dual](FMIN, x, y); got.V != 1 || got.D != 1 {
		t.Errorf("fmin(1,2) = %+v, want {1,1}", got)
	}
	if got := Eval[Dual](FMAX, x, y); got.V != 2 || got.D != 1 {
		t.Errorf("fmax(1,2) = %+v, want {2,1}", got)
	}
}

func TestDualCoshDerivativeIsPositiveSinh(t *testing.T) {
	x := NewDual(0.7)
	got := x.Cosh()
	want := math.Sinh(0.7)
	if math.Abs(got.D-want) > 1e-9 {
		t.Errorf("Cosh'(0.7) = %v, want %v", got.D, want)
	}
}
