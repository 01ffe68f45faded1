package op

import "github.com/pkg/errors"

// Grammar describes how an operation renders as text: prefix, the binary
// separator (empty for unary ops), and postfix, so that printing always
// produces "prefix x separator y postfix".
type Grammar struct {
	Prefix    string
	Separator string
	Postfix   string
}

// Descriptor is the static, compile-time-constant record for one Code:
// arity, commutativity, the three zero-absorption flags, and the print
// grammar. Descriptor values never depend on an operand type.
type Descriptor struct {
	Code Code
	// Arity is 1 or 2.
	Arity int
	// Commutative describes the mathematical operation, not the evaluator;
	// see the note on EQUALITY at IsCommutative below.
	Commutative bool
	// F00IsZero is true when f(0,0) is exactly zero.
	F00IsZero bool
	// F0xIsZero is true when f(0,y) is exactly zero for any y.
	F0xIsZero bool
	// Fx0IsZero is true when f(x,0) is exactly zero for any x.
	Fx0IsZero bool
	Grammar   Grammar
}

// descriptors is the dense catalogue, indexed by Code ordinal. It is built
// once by init and never mutated afterwards.
var descriptors [NumBuiltInOps]Descriptor

func d(code Code, arity int, commutative, f00, f0x, fx0 bool, prefix, sep, postfix string) Descriptor {
	return Descriptor{
		Code:        code,
		Arity:       arity,
		Commutative: commutative,
		F00IsZero:   f00,
		F0xIsZero:   f0x,
		Fx0IsZero:   fx0,
		Grammar:     Grammar{Prefix: prefix, Separator: sep, Postfix: postfix},
	}
}

func init() {
	descriptors = [NumBuiltInOps]Descriptor{
		ADD:      d(ADD, 2, true, true, false, false, "(", "+", ")"),
		SUB:      d(SUB, 2, false, true, false, false, "(", "-", ")"),
		MUL:      d(MUL, 2, true, true, true, true, "(", "*", ")"),
		DIV:      d(DIV, 2, false, false, true, false, "(", "/", ")"),
		NEG:      d(NEG, 1, true, true, false, false, "(-", "", ")"),
		EXP:      d(EXP, 1, true, false, false, false, "exp(", "", ")"),
		LOG:      d(LOG, 1, true, false, false, false, "log(", "", ")"),
		POW:      d(POW, 2, false, false, false, false, "pow(", ",", ")"),
		CONSTPOW: d(CONSTPOW, 2, false, false, false, false, "pow(", ",", ")"),
		SQRT:     d(SQRT, 1, true, true, false, false, "sqrt(", "", ")"),
		SIN:      d(SIN, 1, true, true, false, false, "sin(", "", ")"),
		COS:      d(COS, 1, true, false, false, false, "cos(", "", ")"),
		TAN:      d(TAN, 1, true, true, false, false, "tan(", "", ")"),
		ASIN:     d(ASIN, 1, true, true, false, false, "asin(", "", ")"),
		ACOS:     d(ACOS, 1, true, false, false, false, "acos(", "", ")"),
		ATAN:     d(ATAN, 1, true, true, false, false, "atan(", "", ")"),
		STEP:     d(STEP, 1, true, false, false, false, "(", "", ">=0)"),
		FLOOR:    d(FLOOR, 1, true, true, false, false, "floor(", "", ")"),
		CEIL:     d(CEIL, 1, true, true, false, false, "ceil(", "", ")"),
		EQUALITY: d(EQUALITY, 2, false, false, false, false, "(", "==", ")"),
		ERF:      d(ERF, 1, true, true, false, false, "erf(", "", ")"),
		FMIN:     d(FMIN, 2, true, true, false, false, "fmin(", ",", ")"),
		FMAX:     d(FMAX, 2, true, true, false, false, "fmax(", ",", ")"),
		INV:      d(INV, 1, true, false, false, false, "(1/", "", ")"),
		SINH:     d(SINH, 1, true, true, false, false, "sinh(", "", ")"),
		COSH:     d(COSH, 1, true, false, false, false, "cosh(", "", ")"),
		TANH:     d(TANH, 1, true, true, false, false, "tanh(", "", ")"),
		PRINTME:  d(PRINTME, 2, false, false, false, false, "printme(", ",", ")"),
	}

	for c := Code(0); c < NumBuiltInOps; c++ {
		if descriptors[c].Arity != 1 && descriptors[c].Arity != 2 {
			panic(errors.Errorf("op: descriptor for %s has invalid arity %d", c, descriptors[c].Arity))
		}
	}
}

// DescriptorOf returns the static descriptor for code. It panics on an
// out-of-range code: an invalid op-code ordinal is never recoverable and
// indicates a caller bug, not a runtime condition to tolerate.
func DescriptorOf(code Code) Descriptor {
	if !code.Valid() {
		panic(errors.Errorf("op: out-of-range op code %d", uint8(code)))
	}
	return descriptors[code]
}

// Arity returns 1 or 2 for code.
func Arity(code Code) int { return DescriptorOf(code).Arity }

// IsCommutative reports the commutativity flag for code.
//
// Note: EQUALITY is mathematically symmetric but is recorded here as
// non-commutative: the flag drives canonicalization/CSE ordering, which
// EQUALITY never participates in, not mathematical symmetry.
func IsCommutative(code Code) bool { return DescriptorOf(code).Commutative }

// F00IsZero reports whether f(0,0) is exact zero for code.
func F00IsZero(code Code) bool { return DescriptorOf(code).F00IsZero }

// F0xIsZero reports whether f(0,y) is exact zero for code, for any y.
func F0xIsZero(code Code) bool { return DescriptorOf(code).F0xIsZero }

// Fx0IsZero reports whether f(x,0) is exact zero for code, for any x.
func Fx0IsZero(code Code) bool { return DescriptorOf(code).Fx0IsZero }
