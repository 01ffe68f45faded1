package op

import "testing"

func TestDescriptorTableCompleteness(t *testing.T) {
	// every catalogued op has a valid arity.
	for c := Code(0); c < NumBuiltInOps; c++ {
		d := DescriptorOf(c)
		if d.Arity != 1 && d.Arity != 2 {
			t.Errorf("%s: invalid arity %d", c, d.Arity)
		}
	}
}

func TestDescriptorOfPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range op code")
		}
	}()
	DescriptorOf(Code(200))
}

func TestCommutativityFlags(t *testing.T) {
	commutative := map[Code]bool{
		ADD: true, MUL: true, FMIN: true, FMAX: true,
		SUB: false, DIV: false, POW: false, CONSTPOW: false,
		// EQUALITY is mathematically symmetric but recorded as
		// non-commutative: the flag governs canonicalization order, not
		// mathematical symmetry.
		EQUALITY: false,
		PRINTME:  false,
	}
	for code, want := range commutative {
		if got := IsCommutative(code); got != want {
			t.Errorf("IsCommutative(%s) = %v, want %v", code, got, want)
		}
	}
}

func TestZeroAbsorptionFlagsPerCatalogue(t *testing.T) {
	cases := []struct {
		code          Code
		f00, f0x, fx0 bool
	}{
		{ADD, true, false, false},
		{SUB, true, false, false},
		{MUL, true, true, true},
		{DIV, false, true, false},
		{NEG, true, false, false},
		{EXP, false, false, false},
		{SQRT, true, false, false},
		{SIN, true, false, false},
		{COS, false, false, false},
		{STEP, false, false, false},
		{FLOOR, true, false, false},
		{CEIL, true, false, false},
		{EQUALITY, false, false, false},
		{ERF, true, false, false},
		{FMIN, true, false, false},
		{FMAX, true, false, false},
		{INV, false, false, false},
		{SINH, true, false, false},
		{COSH, false, false, false},
		{TANH, true, false, false},
		{PRINTME, false, false, false},
	}
	for _, c := range cases {
		d := DescriptorOf(c.code)
		if d.F00IsZero != c.f00 || d.F0xIsZero != c.f0x || d.Fx0IsZero != c.fx0 {
			t.Errorf("%s: zero flags = (%v,%v,%v), want (%v,%v,%v)",
				c.code, d.F00IsZero, d.F0xIsZero, d.Fx0IsZero, c.f00, c.f0x, c.fx0)
		}
	}
}

func TestGrammarUnaryHasEmptySeparatorWhenRendered(t *testing.T) {
	// unary ops print with an empty separator.
	for c := Code(0); c < NumBuiltInOps; c++ {
		if Arity(c) != 1 {
			continue
		}
		if DescriptorOf(c).Grammar.Separator != "" {
			t.Errorf("%s: unary op has non-empty separator %q", c, DescriptorOf(c).Grammar.Separator)
		}
	}
}
