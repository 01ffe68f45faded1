package symop

import "testing"

func TestEngineFloat(t *testing.T) {
	e := New[Float](WithPrecision(4))
	f, d0, d1 := e.EvalAndPartials(ADD, 2, 3)
	if f != 5 || d0 != 1 || d1 != 1 {
		t.Errorf("ADD(2,3) = (%v,%v,%v), want (5,1,1)", f, d0, d1)
	}
	if e.Precision() != 4 {
		t.Errorf("Precision() = %d, want 4", e.Precision())
	}
}

func TestEngineDual(t *testing.T) {
	e := New[Dual]()
	x := NewDual(2.0)
	f := e.Eval(SQRT, x, Dual{})
	if f.V*f.V < 3.999 || f.V*f.V > 4.001 {
		t.Errorf("sqrt(2)^2 = %v, want ~4", f.V*f.V)
	}
}

func TestEngineSymbol(t *testing.T) {
	e := New[Symbol]()
	_ = e // symbolic engine is usable the same way as the numeric ones
	x := NewVariable("x")
	expr := e.Eval(SIN, x, x)
	if expr.String() != "sin(x)" {
		t.Errorf("expr.String() = %q", expr.String())
	}
}

func TestDescribe(t *testing.T) {
	d := Describe(ADD)
	if d.Arity != 2 || !d.Commutative {
		t.Errorf("Describe(ADD) = %+v", d)
	}
}
