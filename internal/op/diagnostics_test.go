package op

import "testing"

func TestPrintmeIsIdentityInX(t *testing.T) {
	f, d0, d1 := EvalAndPartials[FloatT](PRINTME, 4.2, 9.9)
	if f != 4.2 {
		t.Errorf("PRINTME f = %v, want 4.2", f)
	}
	// PRINTME's partials are (1, 0): it is the identity in x.
	if d0 != 1 || d1 != 0 {
		t.Errorf("PRINTME partials = (%v,%v), want (1,0)", d0, d1)
	}
}

func TestPrintmeSilentForNonFloatOperands(t *testing.T) {
	// Interval, Dual and Symbol don't implement the OnPrintme policy; the
	// op must still behave as the identity.
	got := Eval[Interval](PRINTME, NewInterval(1, 1), NewInterval(2, 2))
	if got.Lo != 1 || got.Hi != 1 {
		t.Errorf("PRINTME on Interval = %+v, want [1,1]", got)
	}
}
