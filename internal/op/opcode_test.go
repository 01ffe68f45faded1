package op

import "testing"

func TestOpCodeOrder(t *testing.T) {
	// the catalogue's ordinal order is part of its contract; this pins it.
	want := []Code{
		ADD, SUB, MUL, DIV, NEG, EXP, LOG, POW, CONSTPOW, SQRT, SIN, COS, TAN,
		ASIN, ACOS, ATAN, STEP, FLOOR, CEIL, EQUALITY, ERF, FMIN, FMAX, INV,
		SINH, COSH, TANH, PRINTME,
	}
	for i, c := range want {
		if int(c) != i {
			t.Errorf("op %s has ordinal %d, want %d", c, c, i)
		}
	}
	if int(NumBuiltInOps) != len(want) {
		t.Errorf("NumBuiltInOps = %d, want %d", NumBuiltInOps, len(want))
	}
}

func TestOpCodeString(t *testing.T) {
	cases := map[Code]string{
		ADD: "ADD", DIV: "DIV", PRINTME: "PRINTME", COSH: "COSH",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
	if got := Code(255).String(); got != "OP(255)" {
		t.Errorf("out-of-range Code.String() = %q, want OP(255)", got)
	}
}

func TestOpCodeValid(t *testing.T) {
	if !ADD.Valid() {
		t.Error("ADD should be valid")
	}
	if NumBuiltInOps.Valid() {
		t.Error("NumBuiltInOps itself should not be a valid code")
	}
}
