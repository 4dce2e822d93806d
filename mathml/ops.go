package mathml

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/plotcore/rational"
)

// Op is an operator that can be applied to arguments.
type Op int8

const (
	opNone Op = iota

	Plus
	Minus
	Times
	Divide
	Power
	Root
	Sin
	Cos
	Tan
	Abs
	Ln
	Log

	opCount
)

// index is the wrapper a two-argument operator requires on its first
// argument.
type index int8

const (
	noIndex index = iota
	degreeIndex
	logbaseIndex
)

// operator is a row of the operator table. Each evaluator has a unary and a
// binary entry; the accepted arities are those with a numeric entry. A nil
// exact entry means the operator has no exact form.
type operator struct {
	name string
	idx  index

	num1 func(a float64) float64
	num2 func(a, b float64) float64

	exact1 func(a rational.Rational) (rational.Rational, error)
	exact2 func(a, b rational.Rational) (rational.Rational, error)

	big1 func(ctx *Context, z, a *big.Float) error
	big2 func(ctx *Context, z, a, b *big.Float) error
}

var operators = [opCount]operator{
	Plus: {
		name:   "plus",
		num2:   func(a, b float64) float64 { return a + b },
		exact2: rational.Rational.Add,
		big2:   func(ctx *Context, z, a, b *big.Float) error { z.Add(a, b); return nil },
	},
	Minus: {
		name:   "minus",
		num1:   func(a float64) float64 { return -a },
		num2:   func(a, b float64) float64 { return a - b },
		exact1: func(a rational.Rational) (rational.Rational, error) { return a.Neg(), nil },
		exact2: rational.Rational.Sub,
		big1:   func(ctx *Context, z, a *big.Float) error { z.Neg(a); return nil },
		big2:   func(ctx *Context, z, a, b *big.Float) error { z.Sub(a, b); return nil },
	},
	Times: {
		name:   "times",
		num2:   func(a, b float64) float64 { return a * b },
		exact2: rational.Rational.Mul,
		big2:   func(ctx *Context, z, a, b *big.Float) error { z.Mul(a, b); return nil },
	},
	Divide: {
		name:   "divide",
		num2:   func(a, b float64) float64 { return a / b },
		exact2: rational.Rational.Quo,
		big2:   bigQuo,
	},
	Power: {
		name:   "power",
		num2:   math.Pow,
		exact2: rational.Rational.Pow,
		big2:   func(ctx *Context, z, a, b *big.Float) error { return bigPow(z, a, b, Power) },
	},
	Root: {
		name:   "root",
		idx:    degreeIndex,
		num1:   math.Sqrt,
		num2:   nroot,
		exact1: func(a rational.Rational) (rational.Rational, error) { return exactRoot(a, rational.Int(2)) },
		exact2: func(n, a rational.Rational) (rational.Rational, error) { return exactRoot(a, n) },
		big1:   bigSqrt,
		big2:   bigRoot,
	},
	Sin: {name: "sin", num1: math.Sin, big1: viaFloat64(Sin, math.Sin)},
	Cos: {name: "cos", num1: math.Cos, big1: viaFloat64(Cos, math.Cos)},
	Tan: {name: "tan", num1: math.Tan, big1: viaFloat64(Tan, math.Tan)},
	Abs: {
		name:   "abs",
		num1:   math.Abs,
		exact1: func(a rational.Rational) (rational.Rational, error) { return a.Abs(), nil },
		big1:   func(ctx *Context, z, a *big.Float) error { z.Abs(a); return nil },
	},
	Ln: {name: "ln", num1: math.Log, big1: bigLn},
	Log: {
		name: "log",
		idx:  logbaseIndex,
		num1: func(a float64) float64 { return logBase(10, a) },
		num2: logBase,
		big1: bigLog10,
		big2: bigLogBase,
	},
}

// String returns the tag name of the operator.
func (op Op) String() string {
	if op <= opNone || op >= opCount {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return operators[op].name
}

// lookupOp finds the operator with the given tag name.
func lookupOp(name string) (Op, bool) {
	for op := opNone + 1; op < opCount; op++ {
		if operators[op].name == name {
			return op, true
		}
	}
	return opNone, false
}

// arities lists the argument counts op accepts.
func (op Op) arities() []int {
	var r []int
	if operators[op].num1 != nil {
		r = append(r, 1)
	}
	if operators[op].num2 != nil {
		r = append(r, 2)
	}
	return r
}

// check validates the shape of an application: the argument count, and for
// operators taking an index, that the index is the first of two arguments
// and wrapped in the matching element.
func (n *apply) check() error {
	o := &operators[n.op]
	if !(len(n.args) == 1 && o.num1 != nil || len(n.args) == 2 && o.num2 != nil) {
		return &ArityError{Op: n.op, Want: n.op.arities(), Got: len(n.args)}
	}
	if len(n.args) != 2 || o.idx == noIndex {
		return nil
	}
	first, second := wrapper(n.args[0]), wrapper(n.args[1])
	switch {
	case first == noIndex:
		return &ArgumentError{Op: n.op, Arg: 1, Reason: "must be wrapped in <" + o.idx.String() + ">"}
	case first != o.idx:
		return &ArgumentError{Op: n.op, Arg: 1, Reason: "<" + first.String() + "> cannot index " + n.op.String()}
	case second != noIndex:
		return &ArgumentError{Op: n.op, Arg: 2, Reason: "unexpected <" + second.String() + ">"}
	}
	return nil
}

// wrapper returns the index kind a node wraps its child in, if any.
func wrapper(n node) index {
	switch n.(type) {
	case *degree:
		return degreeIndex
	case *logbase:
		return logbaseIndex
	default:
		return noIndex
	}
}

func (i index) String() string {
	switch i {
	case degreeIndex:
		return "degree"
	case logbaseIndex:
		return "logbase"
	default:
		return "none"
	}
}

// nroot computes the n-th root of a. Negative radicands have real roots for
// odd integer n.
func nroot(n, a float64) float64 {
	switch {
	case n == 2:
		return math.Sqrt(a)
	case n == 3:
		return math.Cbrt(a)
	case a < 0 && n == math.Trunc(n) && math.Mod(n, 2) != 0:
		return -math.Pow(-a, 1/n)
	}
	return math.Pow(a, 1/n)
}

// logBase computes the base-b logarithm of a. When a is an integer power of
// b, the result is that integer exactly.
func logBase(b, a float64) float64 {
	var r float64
	switch b {
	case 2:
		r = math.Log2(a)
	case 10:
		r = math.Log10(a)
	default:
		r = math.Log(a) / math.Log(b)
	}
	if k := math.Round(r); k != r && math.Pow(b, k) == a {
		return k
	}
	return r
}

// exactRoot computes the exact n-th root of a when one exists.
func exactRoot(a, n rational.Rational) (rational.Rational, error) {
	if !n.IsInt() || n.Num() <= 0 {
		return rational.Rational{}, &ExactError{Op: Root, Reason: "degree " + n.String() + " is not a positive integer"}
	}
	k := n.Num()
	if a.Factor()%k != 0 {
		return rational.Rational{}, &ExactError{Op: Root, Reason: a.String() + " is not a perfect power"}
	}
	neg := a.Num() < 0
	if neg && k%2 == 0 {
		return rational.Rational{}, &ExactError{Op: Root, Reason: "even root of negative " + a.String()}
	}
	num, ok := iroot(abs64(a.Num()), k)
	if !ok {
		return rational.Rational{}, &ExactError{Op: Root, Reason: a.String() + " is not a perfect power"}
	}
	den, ok := iroot(a.Den(), k)
	if !ok {
		return rational.Rational{}, &ExactError{Op: Root, Reason: a.String() + " is not a perfect power"}
	}
	if neg {
		num = -num
	}
	return rational.NewSymbolic(num, den, a.Symbol(), a.Factor()/k)
}

// iroot finds the integer k-th root of a >= 0, if there is one.
func iroot(a, k int64) (int64, bool) {
	if a <= 1 || k == 1 {
		return a, true
	}
	r := int64(math.Round(math.Pow(float64(a), 1/float64(k))))
	for c := r - 1; c <= r+1; c++ {
		if c < 2 {
			continue
		}
		if p, ok := checkedPow(c, k); ok && p == a {
			return c, true
		}
	}
	return 0, false
}

// checkedPow computes b**k for b >= 2, reporting false on overflow.
func checkedPow(b, k int64) (int64, bool) {
	r := int64(1)
	for ; k > 0; k-- {
		if r > math.MaxInt64/b {
			return 0, false
		}
		r *= b
	}
	return r, true
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// bigQuo divides, guarding against the invalid divisions 0/0 and inf/inf.
func bigQuo(ctx *Context, z, a, b *big.Float) error {
	if a.Sign() == 0 && b.Sign() == 0 || a.IsInf() && b.IsInf() {
		return &DomainError{X: b, Arg: 2, Op: Divide}
	}
	z.Quo(a, b)
	return nil
}

// bigPow computes a^b. Negative bases are allowed only with integer
// exponents.
func bigPow(z, a, b *big.Float, op Op) error {
	switch {
	case a.Sign() == 0:
		switch b.Sign() {
		case 1:
			z.SetInt64(0)
		case 0:
			z.SetInt64(1)
		default:
			z.SetInf(false)
		}
		return nil
	case a.Signbit():
		if !b.IsInt() {
			return &DomainError{X: a, Arg: 1, Op: op}
		}
		odd := false
		if i, acc := b.Int(nil); acc == big.Exact {
			odd = i.Bit(0) == 1
		}
		var m big.Float
		m.SetPrec(z.Prec()).Abs(a)
		bigfloat.Pow(z, &m, b)
		if odd {
			z.Neg(z)
		}
		return nil
	}
	bigfloat.Pow(z, a, b)
	return nil
}

func bigSqrt(ctx *Context, z, a *big.Float) error {
	if a.Signbit() && a.Sign() != 0 {
		return &DomainError{X: a, Arg: 1, Op: Root}
	}
	z.Sqrt(a)
	return nil
}

// bigRoot computes the n-th root of a. Negative radicands have real roots
// only for odd integer n.
func bigRoot(ctx *Context, z, n, a *big.Float) error {
	if n.Sign() == 0 {
		return &DomainError{X: n, Arg: 1, Op: Root}
	}
	e := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
	e.Quo(e, n)
	if !a.Signbit() || a.Sign() == 0 {
		return bigPow(z, a, e, Root)
	}
	odd := false
	if n.IsInt() {
		if i, acc := n.Int(nil); acc == big.Exact {
			odd = i.Bit(0) == 1
		}
	}
	if !odd {
		return &DomainError{X: a, Arg: 2, Op: Root}
	}
	m := new(big.Float).SetPrec(z.Prec()).Abs(a)
	bigfloat.Pow(z, m, e)
	z.Neg(z)
	return nil
}

func bigLn(ctx *Context, z, a *big.Float) error {
	switch {
	case a.Sign() < 0:
		return &DomainError{X: a, Arg: 1, Op: Ln}
	case a.Sign() == 0:
		z.SetInf(true)
		return nil
	}
	bigfloat.Log(z, a)
	return nil
}

func bigLog10(ctx *Context, z, a *big.Float) error {
	ten := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
	return bigLogBase(ctx, z, ten, a)
}

func bigLogBase(ctx *Context, z, b, a *big.Float) error {
	if b.Sign() <= 0 || b.Cmp(new(big.Float).SetInt64(1)) == 0 {
		return &DomainError{X: b, Arg: 1, Op: Log}
	}
	if a.Sign() < 0 {
		return &DomainError{X: a, Arg: 2, Op: Log}
	}
	if a.Sign() == 0 {
		// The sign of log 0 depends on whether the base is above 1.
		z.SetInf(b.Cmp(new(big.Float).SetInt64(1)) > 0)
		return nil
	}
	lb := new(big.Float).SetPrec(z.Prec())
	bigfloat.Log(lb, b)
	bigfloat.Log(z, a)
	z.Quo(z, lb)
	return nil
}

// viaFloat64 evaluates f at float64 precision regardless of the context's
// precision. bigfloat has no trigonometric functions.
func viaFloat64(op Op, f func(float64) float64) func(ctx *Context, z, a *big.Float) error {
	return func(ctx *Context, z, a *big.Float) error {
		x, _ := a.Float64()
		r := f(x)
		if math.IsNaN(r) {
			return &DomainError{X: a, Arg: 1, Op: op}
		}
		z.SetFloat64(r)
		return nil
	}
}
