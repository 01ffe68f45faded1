package op

import "strconv"

// Symbol is a minimal symbolic expression node, the "symbolic nodes"
// operand domain. It is deliberately thin, a leaf (constant or named
// variable) or an operation applied to one or two child nodes, and
// carries none of the common-subexpression elimination, sparsity
// inference or code-generation machinery an external expression-graph
// consumer would own.
type Symbol struct {
	isOp bool
	code Code

	// Leaf fields.
	name    string
	isConst bool
	value   float64

	// Operation fields.
	left, right *Symbol
}

// NewVariable creates a named leaf node.
func NewVariable(name string) *Symbol {
	return &Symbol{name: name}
}

// NewConstant creates a constant leaf node.
func NewConstant(v float64) *Symbol {
	return &Symbol{isConst: true, value: v}
}

func opNode(code Code, left, right *Symbol) *Symbol {
	return &Symbol{isOp: true, code: code, left: left, right: right}
}

// String renders the expression using the op catalogue's printing
// grammar, recursively.
func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	if !s.isOp {
		if s.isConst {
			return strconv.FormatFloat(s.value, 'g', -1, 64)
		}
		return s.name
	}
	right := ""
	if Arity(s.code) == 2 {
		right = s.right.String()
	}
	return Render(s.code, s.left.String(), right)
}

func (x *Symbol) Add(y *Symbol) *Symbol { return opNode(ADD, x, y) }
func (x *Symbol) Sub(y *Symbol) *Symbol { return opNode(SUB, x, y) }
func (x *Symbol) Mul(y *Symbol) *Symbol { return opNode(MUL, x, y) }
func (x *Symbol) Div(y *Symbol) *Symbol { return opNode(DIV, x, y) }
func (x *Symbol) Neg() *Symbol          { return opNode(NEG, x, nil) }

func (x *Symbol) Exp() *Symbol  { return opNode(EXP, x, nil) }
func (x *Symbol) Log() *Symbol  { return opNode(LOG, x, nil) }
func (x *Symbol) Sqrt() *Symbol { return opNode(SQRT, x, nil) }
func (x *Symbol) Sin() *Symbol  { return opNode(SIN, x, nil) }
func (x *Symbol) Cos() *Symbol  { return opNode(COS, x, nil) }
func (x *Symbol) Tan() *Symbol  { return opNode(TAN, x, nil) }
func (x *Symbol) Asin() *Symbol { return opNode(ASIN, x, nil) }
func (x *Symbol) Acos() *Symbol { return opNode(ACOS, x, nil) }
func (x *Symbol) Atan() *Symbol { return opNode(ATAN, x, nil) }
func (x *Symbol) Sinh() *Symbol { return opNode(SINH, x, nil) }
func (x *Symbol) Cosh() *Symbol { return opNode(COSH, x, nil) }
func (x *Symbol) Tanh() *Symbol { return opNode(TANH, x, nil) }
func (x *Symbol) Erf() *Symbol  { return opNode(ERF, x, nil) }

func (x *Symbol) Pow(y *Symbol) *Symbol  { return opNode(POW, x, y) }
func (x *Symbol) Fmin(y *Symbol) *Symbol { return opNode(FMIN, x, y) }
func (x *Symbol) Fmax(y *Symbol) *Symbol { return opNode(FMAX, x, y) }
func (x *Symbol) Floor() *Symbol         { return opNode(FLOOR, x, nil) }
func (x *Symbol) Ceil() *Symbol          { return opNode(CEIL, x, nil) }

// GeZero builds the symbolic STEP node [x>=0]; it does not evaluate.
func (x *Symbol) GeZero() *Symbol { return opNode(STEP, x, nil) }

// LeEq builds the symbolic node for [x<=y] as STEP(y-x): 1 exactly when
// y-x is non-negative.
func (x *Symbol) LeEq(y *Symbol) *Symbol { return opNode(STEP, y.Sub(x), nil) }

// Eq builds the symbolic EQUALITY node [x==y]; it does not evaluate.
func (x *Symbol) Eq(y *Symbol) *Symbol { return opNode(EQUALITY, x, y) }

func (x *Symbol) Zero() *Symbol           { return NewConstant(0) }
func (x *Symbol) One() *Symbol            { return NewConstant(1) }
func (x *Symbol) Const(v float64) *Symbol { return NewConstant(v) }
