// Package symop is the public facade over the scalar-operation algebra: a
// thin surface that wraps the core dispatch tables in internal/op for a
// chosen concrete operand type. It does not bind an integrator (CVODES/
// IDAS) or a wrapper-callback user-data object; those are an external
// collaborator's concern, not this layer's.
package symop

import "github.com/cwbudde/go-symop/internal/op"

// Code identifies one built-in scalar operation; see the op.Code
// constants re-exported below.
type Code = op.Code

// The full, closed operation catalogue.
const (
	ADD      = op.ADD
	SUB      = op.SUB
	MUL      = op.MUL
	DIV      = op.DIV
	NEG      = op.NEG
	EXP      = op.EXP
	LOG      = op.LOG
	POW      = op.POW
	CONSTPOW = op.CONSTPOW
	SQRT     = op.SQRT
	SIN      = op.SIN
	COS      = op.COS
	TAN      = op.TAN
	ASIN     = op.ASIN
	ACOS     = op.ACOS
	ATAN     = op.ATAN
	STEP     = op.STEP
	FLOOR    = op.FLOOR
	CEIL     = op.CEIL
	EQUALITY = op.EQUALITY
	ERF      = op.ERF
	FMIN     = op.FMIN
	FMAX     = op.FMAX
	INV      = op.INV
	SINH     = op.SINH
	COSH     = op.COSH
	TANH     = op.TANH
	PRINTME  = op.PRINTME

	NumBuiltInOps = op.NumBuiltInOps
)

// Descriptor is the static per-op record: arity, commutativity, the three
// zero-absorption flags, and the print grammar.
type Descriptor = op.Descriptor

// Describe returns the static descriptor for code.
func Describe(code Code) Descriptor { return op.DescriptorOf(code) }

// Scalar is the arithmetic contract a concrete operand type T must
// satisfy to be usable with Engine[T].
type Scalar[T any] = op.Scalar[T]

// The concrete operand types internal/op ships: numeric, interval,
// forward-mode dual, and symbolic, all behaving uniformly under Engine[T].
type (
	Float    = op.FloatT
	Interval = op.Interval
	Dual     = op.Dual
	// Symbol is a pointer type: internal/op.Symbol's arithmetic methods
	// have pointer receivers since a symbolic node is a graph node, not a
	// value to copy.
	Symbol = *op.Symbol
)

var (
	NewInterval = op.NewInterval
	NewDual     = op.NewDual
	NewVariable = op.NewVariable
	NewConstant = op.NewConstant
)

// Engine is a function-object facade bound to one concrete operand type
// T: the Eval/Partials/EvalAndPartials dispatch surface plus the static
// Describe accessor, all parameterized by T so callers never touch
// internal/op directly.
type Engine[T Scalar[T]] struct {
	precision int
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	precision int
}

// WithPrecision sets the decimal precision Engine.Precision reports for
// callers that format float output; it has no effect on Eval/Partials
// themselves.
func WithPrecision(p int) Option {
	return func(c *engineConfig) { c.precision = p }
}

// New builds an Engine for operand type T using the functional-options
// pattern.
func New[T Scalar[T]](opts ...Option) *Engine[T] {
	cfg := engineConfig{precision: 6}
	for _, o := range opts {
		o(&cfg)
	}
	return &Engine[T]{precision: cfg.precision}
}

// Eval applies code's numeric rule to (x, y); y is ignored for unary codes.
func (e *Engine[T]) Eval(code Code, x, y T) T {
	return op.Eval(code, x, y)
}

// Partials returns (d0, d1) for code given x, y and the already-computed f.
func (e *Engine[T]) Partials(code Code, x, y, f T) (T, T) {
	return op.Partials(code, x, y, f)
}

// EvalAndPartials computes f, then the partials from that same f, which
// is required since several rules (DIV, EXP, TANH, INV, SQRT) express
// their derivative in terms of f.
func (e *Engine[T]) EvalAndPartials(code Code, x, y T) (f, d0, d1 T) {
	return op.EvalAndPartials(code, x, y)
}

// Describe returns the static descriptor for code.
func (e *Engine[T]) Describe(code Code) Descriptor {
	return op.DescriptorOf(code)
}

// Precision returns the engine's configured float rendering precision.
func (e *Engine[T]) Precision() int { return e.precision }
