package rational

import (
	"math"
	"math/bits"
	"strconv"
)

// Symbol is the irrational constant tracked by a Rational.
type Symbol int8

const (
	// None is the symbol of plain rational values.
	None Symbol = iota
	// Pi is π.
	Pi
	// E is Euler's number.
	E
)

// String returns the glyph used to draw the symbol.
func (s Symbol) String() string {
	switch s {
	case None:
		return ""
	case Pi:
		return "π"
	case E:
		return "e"
	default:
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
}

// Value returns the floating-point value of the symbol. The value of None
// is 1.
func (s Symbol) Value() float64 {
	switch s {
	case Pi:
		return math.Pi
	case E:
		return math.E
	default:
		return 1
	}
}

// Rational is an exact number (num/den)·sym^factor. Rationals are immutable;
// every operation returns a new value. Every Rational is in lowest terms with
// a positive denominator. The zero value is 0.
type Rational struct {
	num int64
	// den is the denominator, or 0 for the zero value, which means 1.
	den    int64
	factor int64
	sym    Symbol
}

// New returns num/den in lowest terms.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, &ValueError{Value: strconv.FormatInt(num, 10) + "/0", Reason: "zero denominator"}
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Rational{}, &ValueError{Value: strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10), Reason: "out of range"}
	}
	return normalize(num, den, None, 0), nil
}

// NewSymbolic returns (num/den)·sym^factor in lowest terms.
func NewSymbolic(num, den int64, sym Symbol, factor int64) (Rational, error) {
	switch {
	case sym < None || sym > E:
		return Rational{}, &ValueError{Value: sym.String(), Reason: "unknown symbol"}
	case sym == None && factor != 0:
		return Rational{}, &ValueError{Value: strconv.FormatInt(factor, 10), Reason: "symbolic factor without a symbol"}
	}
	r, err := New(num, den)
	if err != nil {
		return Rational{}, err
	}
	return normalize(r.num, r.d(), sym, factor), nil
}

// Int returns the integer n.
func Int(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Must is a helper that wraps a call to a constructor returning (Rational,
// error) and panics if the error is non-nil.
func Must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}
	return r
}

// normalize reduces a fraction to lowest terms with a positive denominator.
// Zero drops any symbol, as does a zero factor.
func normalize(num, den int64, sym Symbol, factor int64) Rational {
	if g := gcd(abs64(num), abs64(den)); g > 1 {
		num /= g
		den /= g
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational{num: 0, den: 1}
	}
	if factor == 0 || sym == None {
		sym, factor = None, 0
	}
	return Rational{num: num, den: den, factor: factor, sym: sym}
}

// gcd computes the greatest common divisor of nonnegative a and b by the
// Euclidean algorithm.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// ipow computes b**n for n >= 0 by squaring, reporting false on overflow.
func ipow(b, n int64) (int64, bool) {
	r := int64(1)
	for n > 0 {
		var ok bool
		if n&1 != 0 {
			if r, ok = mul64(r, b); !ok {
				return 0, false
			}
		}
		n >>= 1
		if n > 0 {
			if b, ok = mul64(b, b); !ok {
				return 0, false
			}
		}
	}
	return r, true
}

// mul64 computes a*b, reporting false if the product does not fit. The most
// negative int64 counts as not fitting, so results can always be negated.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(abs64(a)), uint64(abs64(b)))
	if hi != 0 || lo > math.MaxInt64 || a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}
	if a < 0 != (b < 0) {
		return -int64(lo), true
	}
	return int64(lo), true
}

// add64 computes a+b, reporting false if the sum does not fit. As with
// mul64, the most negative int64 counts as not fitting.
func add64(a, b int64) (int64, bool) {
	r := a + b
	if a > 0 && b > 0 && r < 0 || a < 0 && b < 0 && r >= 0 || r == math.MinInt64 {
		return 0, false
	}
	return r, true
}

// frac builds a Rational from an unreduced numerator and denominator
// computed with checked arithmetic. ok is the conjunction of the checks; if
// it is false, the result is a range error for x op y.
func frac(op string, x, y Rational, num, den int64, sym Symbol, factor int64, ok bool) (Rational, error) {
	if !ok {
		return Rational{}, &ValueError{Value: x.String() + " " + op + " " + y.String(), Reason: "out of range"}
	}
	return normalize(num, den, sym, factor), nil
}

// d returns the denominator, accounting for the zero value.
func (x Rational) d() int64 {
	if x.den == 0 {
		return 1
	}
	return x.den
}

// Num returns the numerator of x.
func (x Rational) Num() int64 {
	return x.num
}

// Den returns the denominator of x, which is always positive.
func (x Rational) Den() int64 {
	return x.d()
}

// Symbol returns the symbol x carries, or None if its factor is zero.
func (x Rational) Symbol() Symbol {
	return x.sym
}

// Factor returns the exponent of x's symbol.
func (x Rational) Factor() int64 {
	return x.factor
}

// IsZero reports whether x is zero.
func (x Rational) IsZero() bool {
	return x.num == 0
}

// IsInt reports whether x is an integer with no symbol.
func (x Rational) IsInt() bool {
	return x.d() == 1 && x.factor == 0
}

func (x Rational) sameSymbol(y Rational) bool {
	return x.sym == y.sym && x.factor == y.factor
}

// Add returns x + y. Both operands must carry the same symbol and factor
// unless one of them is zero.
func (x Rational) Add(y Rational) (Rational, error) {
	switch {
	case y.num == 0:
		return x, nil
	case x.num == 0:
		return y, nil
	case !x.sameSymbol(y):
		return Rational{}, &SymbolError{Op: "+", X: x, Y: y}
	}
	// Scale by the lcm of the denominators rather than their product to keep
	// intermediates small.
	g := gcd(x.d(), y.d())
	a, ok1 := mul64(x.num, y.d()/g)
	b, ok2 := mul64(y.num, x.d()/g)
	num, ok3 := add64(a, b)
	den, ok4 := mul64(x.d(), y.d()/g)
	return frac("+", x, y, num, den, x.sym, x.factor, ok1 && ok2 && ok3 && ok4)
}

// Sub returns x - y. Both operands must carry the same symbol and factor
// unless one of them is zero.
func (x Rational) Sub(y Rational) (Rational, error) {
	r, err := x.Add(y.Neg())
	if err != nil {
		switch err := err.(type) {
		case *SymbolError:
			return Rational{}, &SymbolError{Op: "-", X: x, Y: y}
		case *ValueError:
			return Rational{}, &ValueError{Value: x.String() + " - " + y.String(), Reason: err.Reason}
		}
		return Rational{}, err
	}
	return r, nil
}

// combine finds the symbol and factor of a product or quotient. yf is the
// factor y contributes, negated for division.
func combine(op string, x, y Rational, yf int64) (Symbol, int64, error) {
	switch {
	case x.sym == None:
		return y.sym, yf, nil
	case y.sym == None:
		return x.sym, x.factor, nil
	case x.sym != y.sym:
		return None, 0, &SymbolError{Op: op, X: x, Y: y}
	}
	f, ok := add64(x.factor, yf)
	if !ok {
		return None, 0, &ValueError{Value: x.String() + " " + op + " " + y.String(), Reason: "out of range"}
	}
	return x.sym, f, nil
}

// Mul returns x × y. The operands may not carry different symbols.
func (x Rational) Mul(y Rational) (Rational, error) {
	sym, f, err := combine("×", x, y, y.factor)
	if err != nil {
		return Rational{}, err
	}
	// Cross-reduce first so that products of values in lowest terms only
	// overflow when the result does.
	g1, g2 := gcd(abs64(x.num), y.d()), gcd(abs64(y.num), x.d())
	num, ok1 := mul64(x.num/g1, y.num/g2)
	den, ok2 := mul64(x.d()/g2, y.d()/g1)
	return frac("×", x, y, num, den, sym, f, ok1 && ok2)
}

// Quo returns x ÷ y. The operands may not carry different symbols, and y
// must be nonzero.
func (x Rational) Quo(y Rational) (Rational, error) {
	if y.num == 0 {
		return Rational{}, &ValueError{Value: x.String() + "/0", Reason: "division by zero"}
	}
	sym, f, err := combine("÷", x, y, -y.factor)
	if err != nil {
		return Rational{}, err
	}
	g1, g2 := gcd(abs64(x.num), abs64(y.num)), gcd(x.d(), y.d())
	num, ok1 := mul64(x.num/g1, y.d()/g2)
	den, ok2 := mul64(x.d()/g2, y.num/g1)
	return frac("÷", x, y, num, den, sym, f, ok1 && ok2)
}

// Pow returns x^y. The exponent must be an integer with no symbol.
func (x Rational) Pow(y Rational) (Rational, error) {
	if !y.IsInt() {
		return Rational{}, &OperationError{Op: "^", Arg: y}
	}
	n := y.num
	num, den := x.num, x.d()
	if n < 0 {
		if num == 0 {
			return Rational{}, &ValueError{Value: x.String() + "^" + y.String(), Reason: "division by zero"}
		}
		num, den = den, num
	}
	k := abs64(n)
	pn, ok1 := ipow(num, k)
	pd, ok2 := ipow(den, k)
	f, ok3 := mul64(x.factor, n)
	return frac("^", x, y, pn, pd, x.sym, f, ok1 && ok2 && ok3)
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	if x.num < 0 {
		return x.Neg()
	}
	return x
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	x.num = -x.num
	return x
}

// Equal reports whether x and y are the same value. All zeros are equal
// regardless of symbol.
func (x Rational) Equal(y Rational) bool {
	if x.num == 0 || y.num == 0 {
		return x.num == y.num
	}
	return x.num == y.num && x.d() == y.d() && x.sameSymbol(y)
}

// Approx returns the floating-point value of x.
func (x Rational) Approx() float64 {
	v := float64(x.num)
	if x.factor != 0 {
		v *= math.Pow(x.sym.Value(), float64(x.factor))
	}
	return v / float64(x.d())
}

// Cmp compares the approximations of x and y, returning -1, 0, or +1.
func (x Rational) Cmp(y Rational) int {
	return cmpFloat(x.Approx(), y.Approx())
}

// Greater reports whether x > y, comparing approximations.
func (x Rational) Greater(y Rational) bool {
	return x.Approx() > y.Approx()
}

// Less reports whether x < y, comparing approximations.
func (x Rational) Less(y Rational) bool {
	return x.Approx() < y.Approx()
}

// GreaterFloat reports whether x > f.
func (x Rational) GreaterFloat(f float64) bool {
	return x.Approx() > f
}

// LessFloat reports whether x < f.
func (x Rational) LessFloat(f float64) bool {
	return x.Approx() < f
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats x the way it is drawn, e.g. "-2π", "π/2", or "3/4".
func (x Rational) String() string {
	return x.Label().String()
}
