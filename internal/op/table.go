package op

import (
	"math"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// evaluator computes f(x, y) for one op; y is ignored (but must be a
// well-formed T) for unary ops.
type evaluator[T Scalar[T]] func(x, y T) T

// partialer computes (d0, d1) given x, y and the already-computed f; d1 is
// conventionally zero for unary ops.
type partialer[T Scalar[T]] func(x, y, f T) (T, T)

// Table is the per-operand-type dispatch table: for every Code, one
// evaluator and one partial-derivative rule. It is built exhaustively once
// per T and never mutated afterwards.
type Table[T Scalar[T]] struct {
	eval     [NumBuiltInOps]evaluator[T]
	partials [NumBuiltInOps]partialer[T]
}

var tableCache sync.Map // map[reflect.Type]*sync.Once paired with the built table, see tableCacheEntry

type tableCacheEntry struct {
	once  sync.Once
	table any
}

// TableFor returns the shared Table[T], building it on first use for T and
// reusing it for every subsequent call (and goroutine) afterwards. The
// table is published to other goroutines only after construction
// completes, via sync.Once.
func TableFor[T Scalar[T]]() *Table[T] {
	var zero T
	key := reflect.TypeOf(&zero).Elem()

	entryAny, _ := tableCache.LoadOrStore(key, &tableCacheEntry{})
	entry := entryAny.(*tableCacheEntry)

	entry.once.Do(func() {
		entry.table = buildTable[T]()
	})
	return entry.table.(*Table[T])
}

func buildTable[T Scalar[T]]() *Table[T] {
	t := &Table[T]{}

	set := func(code Code, ev evaluator[T], pa partialer[T]) {
		t.eval[code] = ev
		t.partials[code] = pa
	}

	set(ADD,
		func(x, y T) T { return x.Add(y) },
		func(x, y, f T) (T, T) { return x.One(), x.One() },
	)
	set(SUB,
		func(x, y T) T { return x.Sub(y) },
		func(x, y, f T) (T, T) { return x.One(), x.One().Neg() },
	)
	set(MUL,
		func(x, y T) T { return x.Mul(y) },
		func(x, y, f T) (T, T) { return y, x },
	)
	set(DIV,
		func(x, y T) T { return x.Div(y) },
		func(x, y, f T) (T, T) { return x.One().Div(y), f.Div(y).Neg() },
	)
	set(NEG,
		func(x, y T) T { return x.Neg() },
		func(x, y, f T) (T, T) { return x.One().Neg(), x.Zero() },
	)
	set(EXP,
		func(x, y T) T { return x.Exp() },
		func(x, y, f T) (T, T) { return f, x.Zero() },
	)
	set(LOG,
		func(x, y T) T { return x.Log() },
		func(x, y, f T) (T, T) { return x.One().Div(x), x.Zero() },
	)
	set(POW,
		func(x, y T) T { return x.Pow(y) },
		func(x, y, f T) (T, T) {
			d0 := y.Mul(x.Pow(y.Sub(x.One())))
			d1 := x.Log().Mul(f)
			return d0, d1
		},
	)
	set(CONSTPOW,
		func(x, y T) T { return x.Pow(y) },
		func(x, y, f T) (T, T) {
			d0 := y.Mul(x.Pow(y.Sub(x.One())))
			return d0, x.Zero()
		},
	)
	set(SQRT,
		func(x, y T) T { return x.Sqrt() },
		func(x, y, f T) (T, T) { return x.One().Div(f.Add(f)), x.Zero() },
	)
	set(SIN,
		func(x, y T) T { return x.Sin() },
		func(x, y, f T) (T, T) { return x.Cos(), x.Zero() },
	)
	set(COS,
		func(x, y T) T { return x.Cos() },
		func(x, y, f T) (T, T) { return x.Sin().Neg(), x.Zero() },
	)
	set(TAN,
		func(x, y T) T { return x.Tan() },
		func(x, y, f T) (T, T) {
			c := x.Cos()
			return x.One().Div(c.Mul(c)), x.Zero()
		},
	)
	set(ASIN,
		func(x, y T) T { return x.Asin() },
		func(x, y, f T) (T, T) {
			return x.One().Div(x.One().Sub(x.Mul(x)).Sqrt()), x.Zero()
		},
	)
	set(ACOS,
		func(x, y T) T { return x.Acos() },
		func(x, y, f T) (T, T) {
			return x.One().Div(x.One().Sub(x.Mul(x)).Sqrt()).Neg(), x.Zero()
		},
	)
	set(ATAN,
		func(x, y T) T { return x.Atan() },
		func(x, y, f T) (T, T) {
			return x.One().Div(x.One().Add(x.Mul(x))), x.Zero()
		},
	)
	set(STEP,
		func(x, y T) T { return x.GeZero() },
		func(x, y, f T) (T, T) { return x.Zero(), x.Zero() },
	)
	set(FLOOR,
		func(x, y T) T { return x.Floor() },
		func(x, y, f T) (T, T) { return x.Zero(), x.Zero() },
	)
	set(CEIL,
		func(x, y T) T { return x.Ceil() },
		func(x, y, f T) (T, T) { return x.Zero(), x.Zero() },
	)
	set(EQUALITY,
		func(x, y T) T { return x.Eq(y) },
		func(x, y, f T) (T, T) { return x.Zero(), x.Zero() },
	)
	set(ERF,
		func(x, y T) T { return x.Erf() },
		func(x, y, f T) (T, T) {
			coeff := x.Const(2 / math.Sqrt(math.Pi))
			return coeff.Mul(x.Mul(x).Neg().Exp()), x.Zero()
		},
	)
	set(FMIN,
		func(x, y T) T { return x.Fmin(y) },
		func(x, y, f T) (T, T) {
			sel := x.LeEq(y)
			return sel, x.One().Sub(sel)
		},
	)
	set(FMAX,
		func(x, y T) T { return x.Fmax(y) },
		func(x, y, f T) (T, T) {
			sel := y.LeEq(x)
			return sel, x.One().Sub(sel)
		},
	)
	set(INV,
		func(x, y T) T { return x.One().Div(x) },
		func(x, y, f T) (T, T) { return f.Mul(f).Neg(), x.Zero() },
	)
	set(SINH,
		func(x, y T) T { return x.Sinh() },
		func(x, y, f T) (T, T) { return x.Cosh(), x.Zero() },
	)
	set(COSH,
		func(x, y T) T { return x.Cosh() },
		// The derivative is +sinh(x), matching the standard identity;
		// see dual.go's Cosh for the same correction.
		func(x, y, f T) (T, T) { return x.Sinh(), x.Zero() },
	)
	set(TANH,
		func(x, y T) T { return x.Tanh() },
		func(x, y, f T) (T, T) { return x.One().Sub(f.Mul(f)), x.Zero() },
	)
	set(PRINTME,
		func(x, y T) T {
			onPrintme(x, y)
			return x
		},
		// PRINTME is the identity in x; its partials are (1, 0), not the
		// TANH rule a naive copy-paste would wire up here.
		func(x, y, f T) (T, T) { return x.One(), x.Zero() },
	)

	for c := Code(0); c < NumBuiltInOps; c++ {
		if t.eval[c] == nil || t.partials[c] == nil {
			panic(errors.Errorf("op: trait table for %T incomplete at %s", *new(T), c))
		}
	}

	return t
}

// Eval applies code's numeric rule to (x, y). For unary codes y is ignored
// but must be a well-formed T.
func Eval[T Scalar[T]](code Code, x, y T) T {
	return TableFor[T]().eval[code](x, y)
}

// Partials returns (d0, d1) for code given operands x, y and the
// already-computed output f. d1 is zero for unary codes.
func Partials[T Scalar[T]](code Code, x, y, f T) (T, T) {
	return TableFor[T]().partials[code](x, y, f)
}

// EvalAndPartials computes f first, then the partials from that same f,
// which is required because DIV, EXP, TANH, INV and SQRT express their
// derivative in terms of f. Input references and the
// output may alias safely: f is a local value, never written back through
// x or y.
func EvalAndPartials[T Scalar[T]](code Code, x, y T) (f, d0, d1 T) {
	tbl := TableFor[T]()
	f = tbl.eval[code](x, y)
	d0, d1 = tbl.partials[code](x, y, f)
	return f, d0, d1
}
