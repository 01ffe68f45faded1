package op

// Scalar is the arithmetic surface an operand type T must provide for the
// algebra to dispatch evaluation and differentiation rules against it. It
// covers the full "operand value T" contract: the four arithmetic operations,
// unary minus, the elementary function set, and comparisons that yield a
// T rather than a bool, so that STEP, FMIN/FMAX's derivative selectors,
// and EQUALITY stay inside the T domain (a symbolic node's "x <= y" is
// itself a T, not a host bool).
//
// Evaluators receive operands as T and return a new T; the algebra never
// mutates an operand in place. Most domains (FloatT, Interval, Dual)
// implement Scalar with value receivers; Symbol implements it with a
// pointer receiver since a symbolic node is a graph node, not a value to
// copy, but the contract above is the same either way.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	Exp() T
	Log() T
	Sqrt() T
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	Sinh() T
	Cosh() T
	Tanh() T
	Erf() T
	Pow(T) T
	Fmin(T) T
	Fmax(T) T
	Floor() T
	Ceil() T

	// GeZero returns One() if the receiver is >= the domain's zero,
	// Zero() otherwise. Backs STEP.
	GeZero() T
	// LeEq returns One() if the receiver is <= other, Zero() otherwise.
	// Backs the FMIN/FMAX derivative selectors.
	LeEq(other T) T
	// Eq returns One() if the receiver equals other, Zero() otherwise.
	// Backs EQUALITY.
	Eq(other T) T

	Zero() T
	One() T
	// Const embeds a host float64 literal into T's domain, for derivative
	// rules that need an irrational constant not reachable from Zero/One
	// alone (ERF's 2/sqrt(pi)).
	Const(float64) T
}
