package plotcore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zephyrtronium/plotcore/mathml"
	"github.com/zephyrtronium/plotcore/rational"
)

// Kind is the kind of value an attribute holds.
type Kind int8

const (
	kindNone Kind = iota

	// KindNumber is a single exact number like "pi/2".
	KindNumber
	// KindTuple is a parenthesized tuple like "(-1, 1)".
	KindTuple
	// KindExpr is a MathML expression.
	KindExpr
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTuple:
		return "tuple"
	case KindExpr:
		return "expression"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Attr is a parsed attribute value. The zero Attr holds nothing; use
// ParseAttr to create one.
type Attr struct {
	kind  Kind
	num   rational.Rational
	tuple rational.Tuple
	expr  *mathml.Expr
}

// ParseAttr parses an attribute string. Leading and trailing whitespace is
// ignored. Text starting with '<' is parsed as MathML, text starting with '('
// as a tuple, and anything else as a number.
func ParseAttr(s string) (Attr, error) {
	t := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(t, "<"):
		e, err := mathml.ParseString(t)
		if err != nil {
			return Attr{}, fmt.Errorf("parsing %s %q: %w", KindExpr, s, err)
		}
		return Attr{kind: KindExpr, expr: e}, nil
	case strings.HasPrefix(t, "("):
		tup, err := rational.ParseTuple(t)
		if err != nil {
			return Attr{}, fmt.Errorf("parsing %s %q: %w", KindTuple, s, err)
		}
		return Attr{kind: KindTuple, tuple: tup}, nil
	default:
		r, err := rational.Parse(t)
		if err != nil {
			return Attr{}, fmt.Errorf("parsing %s %q: %w", KindNumber, s, err)
		}
		return Attr{kind: KindNumber, num: r}, nil
	}
}

// Kind returns the kind of the attribute.
func (a Attr) Kind() Kind {
	return a.kind
}

// Number returns the exact number the attribute holds. An expression
// attribute is evaluated exactly.
func (a Attr) Number() (rational.Rational, error) {
	switch a.kind {
	case KindNumber:
		return a.num, nil
	case KindExpr:
		return a.expr.Rational()
	default:
		return rational.Rational{}, &KindError{Want: KindNumber, Got: a.kind}
	}
}

// Tuple returns the exact tuple the attribute holds. A list expression
// attribute is evaluated exactly.
func (a Attr) Tuple() (rational.Tuple, error) {
	switch a.kind {
	case KindTuple:
		return a.tuple, nil
	case KindExpr:
		return a.expr.Tuple()
	default:
		return rational.Tuple{}, &KindError{Want: KindTuple, Got: a.kind}
	}
}

// Expr returns the expression the attribute holds, or nil if it is not an
// expression.
func (a Attr) Expr() *mathml.Expr {
	return a.expr
}

// Approx approximates the attribute's value at x. Numbers give one value and
// tuples give one per element. Expressions are compiled and evaluated at x,
// giving one value per list item or a single value otherwise.
func (a Attr) Approx(x float64) ([]float64, error) {
	switch a.kind {
	case KindNumber:
		return []float64{a.num.Approx()}, nil
	case KindTuple:
		return a.tuple.Approx(), nil
	case KindExpr:
		if a.expr.IsList() {
			f, err := a.expr.ExecList()
			if err != nil {
				return nil, err
			}
			return f(x), nil
		}
		f, err := a.expr.Exec()
		if err != nil {
			return nil, err
		}
		return []float64{f(x)}, nil
	default:
		return nil, &KindError{Want: KindNumber, Got: a.kind}
	}
}

// String formats the attribute's value.
func (a Attr) String() string {
	switch a.kind {
	case KindNumber:
		return a.num.String()
	case KindTuple:
		return a.tuple.String()
	case KindExpr:
		return a.expr.String()
	default:
		return ""
	}
}

// KindError is an error indicating an attribute of the wrong kind.
type KindError struct {
	Want, Got Kind
}

func (err *KindError) Error() string {
	return "expected " + err.Want.String() + " attribute, got " + err.Got.String()
}

// ParseRange parses a range attribute: a tuple or MathML list of exactly two
// values with the first less than the second.
func ParseRange(s string) (rational.Tuple, error) {
	a, err := ParseAttr(s)
	if err != nil {
		return rational.Tuple{}, err
	}
	t, err := a.Tuple()
	if err != nil {
		return rational.Tuple{}, fmt.Errorf("parsing range %q: %w", s, err)
	}
	if t.Len() != 2 {
		return rational.Tuple{}, &rational.ValueError{Value: s, Reason: "range needs exactly two elements"}
	}
	if !t.At(0).Less(t.At(1)) {
		return rational.Tuple{}, &rational.ValueError{Value: s, Reason: "range must be increasing"}
	}
	return t, nil
}
